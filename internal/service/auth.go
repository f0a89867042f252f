package service

import (
	"context"
	"os"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/repository/redisrepo"
	"github.com/BloggingApp/blog-service/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenExpiry  = time.Hour * 3
	refreshTokenExpiry = time.Hour * 24 * 7 * 2

	userCacheTTL = time.Hour * 3
)

type authService struct {
	logger *zap.Logger
	repo *repository.Repository
}

func newAuthService(logger *zap.Logger, repo *repository.Repository) Auth {
	return &authService{
		logger: logger,
		repo: repo,
	}
}

func (s *authService) SignUp(ctx context.Context, createUserDto dto.CreateUserDto) (*dto.GetUserDto, *utils.JWTPair, error) {
	existing, err := s.repo.Postgres.User.FindByEmailOrUsername(ctx, createUserDto.Email, createUserDto.Username)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to check user(email: %s, username: %s) in postgres: %s", createUserDto.Email, createUserDto.Username, err.Error())
		return nil, nil, ErrInternal
	}
	if existing != nil {
		return nil, nil, ErrEmailOrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(createUserDto.Password), 10)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate password hash: %s", err.Error())
		return nil, nil, ErrInternal
	}

	user := model.User{
		Email: createUserDto.Email,
		Username: createUserDto.Username,
		PasswordHash: string(passwordHash),
	}
	createdUser, err := s.repo.Postgres.User.Create(ctx, user)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user in postgres: %s", err.Error())
		return nil, nil, ErrInternal
	}

	jwtPair, err := s.generatePair(createdUser.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate jwt pair: %s", err.Error())
		return nil, nil, ErrInternal
	}

	userDto := dto.GetUserDtoFromUser(*createdUser)
	return &userDto, jwtPair, nil
}

func (s *authService) SignIn(ctx context.Context, signInDto dto.SignInDto) (*dto.GetUserDto, *utils.JWTPair, error) {
	user, err := s.repo.Postgres.User.FindByEmailOrUsername(ctx, signInDto.EmailOrUsername, signInDto.EmailOrUsername)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, ErrInvalidCredentials
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from postgres: %s", signInDto.EmailOrUsername, err.Error())
		return nil, nil, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(signInDto.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	jwtPair, err := s.generatePair(user.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate jwt pair: %s", err.Error())
		return nil, nil, ErrInternal
	}

	userDto := dto.GetUserDtoFromUser(*user)
	return &userDto, jwtPair, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*utils.JWTPair, error) {
	claims, err := utils.DecodeJWT(refreshToken, []byte(os.Getenv("REFRESH_SECRET")))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if _, err := s.findByID(ctx, id); err != nil {
		return nil, err
	}

	jwtPair, err := s.generatePair(id)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate jwt pair: %s", err.Error())
		return nil, ErrInternal
	}

	return jwtPair, nil
}

func (s *authService) UserFromAccessToken(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.findByID(ctx, id)
}

func (s *authService) findByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.repo.Redis != nil {
		userCache, err := redisrepo.Get[model.User](s.repo.Redis.Default, ctx, redisrepo.UserKey(id.String()))
		if err == nil && userCache != nil {
			return userCache, nil
		}
		if err != nil && err != redis.Nil {
			s.logger.Sugar().Errorf("failed to get user(%s) from redis: %s", id.String(), err.Error())
		}
	}

	user, err := s.repo.Postgres.User.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	if s.repo.Redis != nil {
		if err := s.repo.Redis.SetJSON(ctx, redisrepo.UserKey(id.String()), user, userCacheTTL); err != nil {
			s.logger.Sugar().Errorf("failed to set user(%s) in redis: %s", id.String(), err.Error())
		}
	}

	return user, nil
}

func (s *authService) generatePair(userID uuid.UUID) (*utils.JWTPair, error) {
	return utils.GenerateJWTPair(utils.GenerateJWTPairDto{
		Method: jwt.SigningMethodHS256,
		AccessSecret: []byte(os.Getenv("ACCESS_SECRET")),
		AccessClaims: jwt.MapClaims{
			"id": userID.String(),
		},
		AccessExpiry: accessTokenExpiry,
		RefreshSecret: []byte(os.Getenv("REFRESH_SECRET")),
		RefreshClaims: jwt.MapClaims{
			"id": userID.String(),
		},
		RefreshExpiry: refreshTokenExpiry,
	})
}
