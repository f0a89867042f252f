package dto

import "github.com/google/uuid"

type NewPostQueueDto struct {
	PostID         int64     `json:"post_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
}

type FollowQueueDto struct {
	UserID   uuid.UUID `json:"user_id"`
	AuthorID uuid.UUID `json:"author_id"`
}
