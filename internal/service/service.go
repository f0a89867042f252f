package service

import (
	"context"
	"mime/multipart"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/pagecache"
	"github.com/BloggingApp/blog-service/internal/pagination"
	"github.com/BloggingApp/blog-service/internal/rabbitmq"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Auth interface {
	SignUp(ctx context.Context, createUserDto dto.CreateUserDto) (*dto.GetUserDto, *utils.JWTPair, error)
	SignIn(ctx context.Context, signInDto dto.SignInDto) (*dto.GetUserDto, *utils.JWTPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*utils.JWTPair, error)
	UserFromAccessToken(ctx context.Context, accessToken string) (*model.User, error)
}

type Post interface {
	Create(ctx context.Context, author model.User, input dto.CreatePostRequest, image *multipart.FileHeader) (*model.Post, error)
	Update(ctx context.Context, postID int64, editor model.User, input dto.UpdatePostRequest, image *multipart.FileHeader) (*model.FullPost, error)
	GetByID(ctx context.Context, postID int64) (*dto.PostDetailResponse, error)
	ListIndex(ctx context.Context, page int) (*pagination.Page[*model.FullPost], error)
	ListByGroup(ctx context.Context, slug string, page int) (*dto.GroupPostsResponse, error)
	ListByAuthor(ctx context.Context, username string, viewer *model.User, page int) (*dto.ProfileResponse, error)
	Feed(ctx context.Context, userID uuid.UUID, page int) (*pagination.Page[*model.FullPost], error)
	Groups(ctx context.Context) ([]*model.Group, error)
}

type Comment interface {
	Create(ctx context.Context, postID int64, author model.User, text string) (*model.Comment, error)
}

type Follow interface {
	Follow(ctx context.Context, user model.User, authorUsername string) error
	Unfollow(ctx context.Context, user model.User, authorUsername string) error
}

type Service struct {
	Auth
	Post
	Comment
	Follow
}

func New(logger *zap.Logger, repo *repository.Repository, cache pagecache.Store, mq *rabbitmq.MQConn) *Service {
	return &Service{
		Auth: newAuthService(logger, repo),
		Post: newPostService(logger, repo, cache, mq),
		Comment: newCommentService(logger, repo),
		Follow: newFollowService(logger, repo, mq),
	}
}
