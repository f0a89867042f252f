package model

import "github.com/google/uuid"

type Follow struct {
	UserID   uuid.UUID `json:"user_id"`
	AuthorID uuid.UUID `json:"author_id"`
}
