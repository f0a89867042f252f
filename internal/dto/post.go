package dto

import (
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/pagination"
)

type CreatePostRequest struct {
	Text    string `form:"text" binding:"required"`
	GroupID *int64 `form:"group_id"`
}

type UpdatePostRequest struct {
	Text    *string `form:"text"`
	GroupID *int64  `form:"group_id"`
}

type GroupPostsResponse struct {
	Group model.Group                       `json:"group"`
	Page  pagination.Page[*model.FullPost] `json:"page"`
}

type ProfileResponse struct {
	Author     model.PostAuthor                  `json:"author"`
	PostsCount int64                             `json:"posts_count"`
	Following  bool                              `json:"following"`
	Page       pagination.Page[*model.FullPost] `json:"page"`
}

type PostDetailResponse struct {
	Post          model.FullPost        `json:"post"`
	Comments      []*model.FullComment  `json:"comments"`
	CommentsCount int64                 `json:"comments_count"`
}

type PostFormResponse struct {
	Groups []*model.Group `json:"groups"`
	Post   *model.FullPost `json:"post,omitempty"`
}
