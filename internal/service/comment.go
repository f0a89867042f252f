package service

import (
	"context"
	"strings"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo: repo,
	}
}

func (s *commentService) Create(ctx context.Context, postID int64, author model.User, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextIsRequired
	}

	if _, err := s.repo.Postgres.Post.FindByID(ctx, postID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%d) in postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	comment := model.Comment{
		PostID: postID,
		AuthorID: author.ID,
		Text: text,
	}
	createdComment, err := s.repo.Postgres.Comment.Create(ctx, comment)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create comment on post(%d) in postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return createdComment, nil
}
