package service

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/pagecache"
	"github.com/BloggingApp/blog-service/internal/pagination"
	"github.com/BloggingApp/blog-service/internal/rabbitmq"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo *repository.Repository
	cache pagecache.Store
	mq *rabbitmq.MQConn
}

func newPostService(logger *zap.Logger, repo *repository.Repository, cache pagecache.Store, mq *rabbitmq.MQConn) Post {
	return &postService{
		logger: logger,
		repo: repo,
		cache: cache,
		mq: mq,
	}
}

func (s *postService) Create(ctx context.Context, author model.User, input dto.CreatePostRequest, image *multipart.FileHeader) (*model.Post, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrTextIsRequired
	}

	if input.GroupID != nil {
		if _, err := s.findGroup(ctx, *input.GroupID); err != nil {
			return nil, err
		}
	}

	var imagePath *string
	if image != nil {
		path, err := s.saveImage(image)
		if err != nil {
			s.logger.Sugar().Errorf("failed to save post image: %s", err.Error())
			return nil, ErrInternal
		}
		imagePath = &path
	}

	post := model.Post{
		Text: text,
		AuthorID: author.ID,
		GroupID: input.GroupID,
		Image: imagePath,
	}
	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post in postgres: %s", err.Error())
		return nil, ErrInternal
	}

	s.clearIndexCache(ctx)
	s.publishNewPost(createdPost, author)

	return createdPost, nil
}

func (s *postService) Update(ctx context.Context, postID int64, editor model.User, input dto.UpdatePostRequest, image *multipart.FileHeader) (*model.FullPost, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, postID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%d) in postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	if post.Author.ID != editor.ID {
		return nil, ErrNotPostAuthor
	}

	updates := make(map[string]interface{})
	if input.Text != nil {
		text := strings.TrimSpace(*input.Text)
		if text == "" {
			return nil, ErrTextIsRequired
		}
		updates["text"] = text
	}
	if input.GroupID != nil {
		if _, err := s.findGroup(ctx, *input.GroupID); err != nil {
			return nil, err
		}
		updates["group_id"] = *input.GroupID
	}
	if image != nil {
		path, err := s.saveImage(image)
		if err != nil {
			s.logger.Sugar().Errorf("failed to save post image: %s", err.Error())
			return nil, ErrInternal
		}
		updates["image"] = path
	}

	if err := s.repo.Postgres.Post.UpdateByID(ctx, postID, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update post(%d) in postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	s.clearIndexCache(ctx)

	updatedPost, err := s.repo.Postgres.Post.FindByID(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) in postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return updatedPost, nil
}

func (s *postService) GetByID(ctx context.Context, postID int64) (*dto.PostDetailResponse, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, postID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%d) in postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	comments, err := s.repo.Postgres.Comment.FindByPost(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find comments of post(%d) in postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}
	if comments == nil {
		comments = []*model.FullComment{}
	}

	commentsCount, err := s.repo.Postgres.Comment.CountByPost(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count comments of post(%d) in postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return &dto.PostDetailResponse{
		Post: *post,
		Comments: comments,
		CommentsCount: commentsCount,
	}, nil
}

func (s *postService) ListIndex(ctx context.Context, page int) (*pagination.Page[*model.FullPost], error) {
	count, err := s.repo.Postgres.Post.CountAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count posts in postgres: %s", err.Error())
		return nil, ErrInternal
	}

	limit, offset, current := pagination.Window(count, perPage(), page)
	posts, err := s.repo.Postgres.Post.FindAll(ctx, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts in postgres: %s", err.Error())
		return nil, ErrInternal
	}

	result := pagination.New(posts, count, limit, current)
	return &result, nil
}

func (s *postService) ListByGroup(ctx context.Context, slug string, page int) (*dto.GroupPostsResponse, error) {
	group, err := s.repo.Postgres.Group.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGroupNotFound
		}

		s.logger.Sugar().Errorf("failed to find group(%s) in postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	count, err := s.repo.Postgres.Post.CountByGroup(ctx, group.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count posts of group(%s) in postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	limit, offset, current := pagination.Window(count, perPage(), page)
	posts, err := s.repo.Postgres.Post.FindByGroup(ctx, group.ID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts of group(%s) in postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	return &dto.GroupPostsResponse{
		Group: *group,
		Page: pagination.New(posts, count, limit, current),
	}, nil
}

func (s *postService) ListByAuthor(ctx context.Context, username string, viewer *model.User, page int) (*dto.ProfileResponse, error) {
	author, err := s.repo.Postgres.User.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	count, err := s.repo.Postgres.Post.CountByAuthor(ctx, author.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count posts of user(%s) in postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	limit, offset, current := pagination.Window(count, perPage(), page)
	posts, err := s.repo.Postgres.Post.FindByAuthor(ctx, author.ID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts of user(%s) in postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	following := false
	if viewer != nil {
		following, err = s.repo.Postgres.Follow.Exists(ctx, model.Follow{UserID: viewer.ID, AuthorID: author.ID})
		if err != nil {
			s.logger.Sugar().Errorf("failed to check follow(%s -> %s) in postgres: %s", viewer.ID.String(), author.ID.String(), err.Error())
			return nil, ErrInternal
		}
	}

	return &dto.ProfileResponse{
		Author: model.PostAuthor{
			ID: author.ID,
			Username: author.Username,
			DisplayName: author.DisplayName,
		},
		PostsCount: count,
		Following: following,
		Page: pagination.New(posts, count, limit, current),
	}, nil
}

func (s *postService) Feed(ctx context.Context, userID uuid.UUID, page int) (*pagination.Page[*model.FullPost], error) {
	count, err := s.repo.Postgres.Post.CountFeed(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count feed posts of user(%s) in postgres: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	limit, offset, current := pagination.Window(count, perPage(), page)
	posts, err := s.repo.Postgres.Post.FindFeed(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find feed posts of user(%s) in postgres: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	result := pagination.New(posts, count, limit, current)
	return &result, nil
}

func (s *postService) Groups(ctx context.Context) ([]*model.Group, error) {
	groups, err := s.repo.Postgres.Group.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find groups in postgres: %s", err.Error())
		return nil, ErrInternal
	}
	if groups == nil {
		groups = []*model.Group{}
	}

	return groups, nil
}

func (s *postService) findGroup(ctx context.Context, groupID int64) (*model.Group, error) {
	group, err := s.repo.Postgres.Group.FindByID(ctx, groupID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGroupNotFound
		}

		s.logger.Sugar().Errorf("failed to find group(%d) in postgres: %s", groupID, err.Error())
		return nil, ErrInternal
	}

	return group, nil
}

func (s *postService) saveImage(image *multipart.FileHeader) (string, error) {
	src, err := image.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(image.Filename)
	dir := filepath.Join(uploadsDir(), "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.Join("posts", name), nil
}

func (s *postService) clearIndexCache(ctx context.Context) {
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Sugar().Errorf("failed to clear index page cache: %s", err.Error())
	}
}

func (s *postService) publishNewPost(post *model.Post, author model.User) {
	if s.mq == nil {
		return
	}

	queueData, err := json.Marshal(&dto.NewPostQueueDto{
		PostID: post.ID,
		AuthorID: author.ID,
		AuthorUsername: author.Username,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to marshal json: %s", err.Error())
		return
	}

	if err := s.mq.Publish(rabbitmq.NEW_POST_NOTIFICATIONS_QUEUE, queueData); err != nil {
		s.logger.Sugar().Errorf("failed to publish to rabbitmq queue(%s): %s", rabbitmq.NEW_POST_NOTIFICATIONS_QUEUE, err.Error())
	}
}

func perPage() int {
	if v := viper.GetInt("posts.per_page"); v > 0 {
		return v
	}
	return pagination.DefaultPerPage
}

func uploadsDir() string {
	if dir := viper.GetString("uploads.dir"); dir != "" {
		return dir
	}
	return "./uploads"
}
