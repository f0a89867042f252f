package postgres

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type User interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmailOrUsername(ctx context.Context, email string, username string) (*model.User, error)
}

type Group interface {
	Create(ctx context.Context, group model.Group) (*model.Group, error)
	FindByID(ctx context.Context, id int64) (*model.Group, error)
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
	FindAll(ctx context.Context) ([]*model.Group, error)
}

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.FullPost, error)
	UpdateByID(ctx context.Context, id int64, updates map[string]interface{}) error
	CountAll(ctx context.Context) (int64, error)
	FindAll(ctx context.Context, limit int, offset int) ([]*model.FullPost, error)
	CountByGroup(ctx context.Context, groupID int64) (int64, error)
	FindByGroup(ctx context.Context, groupID int64, limit int, offset int) ([]*model.FullPost, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.FullPost, error)
	CountFeed(ctx context.Context, userID uuid.UUID) (int64, error)
	FindFeed(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FullPost, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindByPost(ctx context.Context, postID int64) ([]*model.FullComment, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
}

type Follow interface {
	Create(ctx context.Context, follow model.Follow) (bool, error)
	Delete(ctx context.Context, follow model.Follow) error
	Exists(ctx context.Context, follow model.Follow) (bool, error)
}

type PostgresRepository struct {
	User
	Group
	Post
	Comment
	Follow
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		User: newUserRepo(db),
		Group: newGroupRepo(db),
		Post: newPostRepo(db),
		Comment: newCommentRepo(db),
		Follow: newFollowRepo(db),
	}
}
