package service

import (
	"context"
	"encoding/json"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/rabbitmq"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type followService struct {
	logger *zap.Logger
	repo *repository.Repository
	mq *rabbitmq.MQConn
}

func newFollowService(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn) Follow {
	return &followService{
		logger: logger,
		repo: repo,
		mq: mq,
	}
}

func (s *followService) Follow(ctx context.Context, user model.User, authorUsername string) error {
	author, err := s.findAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}

	if author.ID == user.ID {
		return ErrCannotFollowSelf
	}

	created, err := s.repo.Postgres.Follow.Create(ctx, model.Follow{UserID: user.ID, AuthorID: author.ID})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create follow(%s -> %s) in postgres: %s", user.ID.String(), author.ID.String(), err.Error())
		return ErrInternal
	}

	if created {
		s.publishFollow(user, author)
	}

	return nil
}

func (s *followService) Unfollow(ctx context.Context, user model.User, authorUsername string) error {
	author, err := s.findAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}

	if err := s.repo.Postgres.Follow.Delete(ctx, model.Follow{UserID: user.ID, AuthorID: author.ID}); err != nil {
		s.logger.Sugar().Errorf("failed to delete follow(%s -> %s) from postgres: %s", user.ID.String(), author.ID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

func (s *followService) findAuthor(ctx context.Context, username string) (*model.User, error) {
	author, err := s.repo.Postgres.User.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	return author, nil
}

func (s *followService) publishFollow(user model.User, author *model.User) {
	if s.mq == nil {
		return
	}

	queueData, err := json.Marshal(&dto.FollowQueueDto{
		UserID: user.ID,
		AuthorID: author.ID,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to marshal json: %s", err.Error())
		return
	}

	if err := s.mq.Publish(rabbitmq.FOLLOWS_QUEUE, queueData); err != nil {
		s.logger.Sugar().Errorf("failed to publish to rabbitmq queue(%s): %s", rabbitmq.FOLLOWS_QUEUE, err.Error())
	}
}
