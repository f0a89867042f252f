package postgres

import (
	"context"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	comment.Created = time.Now()
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO comments(post_id, author_id, text, created) VALUES($1, $2, $3, $4) RETURNING id",
		comment.PostID,
		comment.AuthorID,
		comment.Text,
		comment.Created,
	).Scan(&comment.ID); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindByPost(ctx context.Context, postID int64) ([]*model.FullComment, error) {
	rows, err := r.db.Query(ctx, `
	SELECT c.id, c.post_id, c.author_id, c.text, c.created, u.username, u.display_name
	FROM comments c
	JOIN users u ON c.author_id = u.id
	WHERE c.post_id = $1
	ORDER BY c.created
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.FullComment
	for rows.Next() {
		var comment model.FullComment
		if err := rows.Scan(
			&comment.Comment.ID,
			&comment.Comment.PostID,
			&comment.Comment.AuthorID,
			&comment.Comment.Text,
			&comment.Comment.Created,
			&comment.Author.Username,
			&comment.Author.DisplayName,
		); err != nil {
			return nil, err
		}

		comment.Author.ID = comment.Comment.AuthorID
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepo) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM comments c WHERE c.post_id = $1", postID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
