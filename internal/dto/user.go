package dto

import (
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
)

type CreateUserDto struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=8,max=48"`
}

type SignInDto struct {
	EmailOrUsername string `json:"email_or_username" binding:"required"`
	Password        string `json:"password" binding:"required,min=8,max=48"`
}

type GetUserDto struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name"`
	Bio         *string   `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
}

func GetUserDtoFromUser(user model.User) GetUserDto {
	return GetUserDto{
		ID: user.ID,
		Email: user.Email,
		Username: user.Username,
		DisplayName: user.DisplayName,
		Bio: user.Bio,
		CreatedAt: user.CreatedAt,
	}
}
