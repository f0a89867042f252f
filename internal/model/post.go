package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID       int64     `json:"id"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
	AuthorID uuid.UUID `json:"author_id"`
	GroupID  *int64    `json:"group_id"`
	Image    *string   `json:"image"`
}

type FullPost struct {
	Post   Post       `json:"post"`
	Author PostAuthor `json:"author"`
	Group  *Group     `json:"group"`
}
