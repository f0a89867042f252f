package postgres

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type followRepo struct {
	db *pgxpool.Pool
}

func newFollowRepo(db *pgxpool.Pool) Follow {
	return &followRepo{
		db: db,
	}
}

// Create inserts the (user, author) edge once. The unique constraint plus
// ON CONFLICT DO NOTHING makes the operation idempotent; the returned bool
// reports whether a new edge was actually created.
func (r *followRepo) Create(ctx context.Context, follow model.Follow) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		"INSERT INTO follows(user_id, author_id) VALUES($1, $2) ON CONFLICT (user_id, author_id) DO NOTHING",
		follow.UserID,
		follow.AuthorID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *followRepo) Delete(ctx context.Context, follow model.Follow) error {
	_, err := r.db.Exec(
		ctx,
		"DELETE FROM follows WHERE user_id = $1 AND author_id = $2",
		follow.UserID,
		follow.AuthorID,
	)
	return err
}

func (r *followRepo) Exists(ctx context.Context, follow model.Follow) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM follows f WHERE f.user_id = $1 AND f.author_id = $2)",
		follow.UserID,
		follow.AuthorID,
	).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
