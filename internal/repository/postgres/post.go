package postgres

import (
	"context"
	"strconv"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

const fullPostSelect = `
SELECT
p.id, p.text, p.pub_date, p.author_id, p.group_id, p.image,
u.username, u.display_name,
g.id, g.slug, g.title, g.description
FROM posts p
JOIN users u ON p.author_id = u.id
LEFT JOIN groups g ON p.group_id = g.id
`

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	post.PubDate = time.Now()
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO posts(text, pub_date, author_id, group_id, image) VALUES($1, $2, $3, $4, $5) RETURNING id",
		post.Text,
		post.PubDate,
		post.AuthorID,
		post.GroupID,
		post.Image,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	row := r.db.QueryRow(ctx, fullPostSelect+"WHERE p.id = $1", id)
	return scanFullPost(row)
}

func (r *postRepo) UpdateByID(ctx context.Context, id int64, updates map[string]interface{}) error {
	allowedFields := []string{"text", "group_id", "image"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			delete(updates, field)
		}
	}

	if len(updates) == 0 {
		return nil
	}

	query := "UPDATE posts SET "
	args := []interface{}{}
	i := 1

	for column, value := range updates {
		query += (column + " = $" + strconv.Itoa(i) + ", ")
		args = append(args, value)
		i++
	}

	query = query[:len(query)-2] + " WHERE id = $" + strconv.Itoa(i)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *postRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *postRepo) FindAll(ctx context.Context, limit int, offset int) ([]*model.FullPost, error) {
	rows, err := r.db.Query(ctx, fullPostSelect+`
	ORDER BY p.pub_date DESC
	LIMIT $1
	OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFullPosts(rows)
}

func (r *postRepo) CountByGroup(ctx context.Context, groupID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts p WHERE p.group_id = $1", groupID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *postRepo) FindByGroup(ctx context.Context, groupID int64, limit int, offset int) ([]*model.FullPost, error) {
	rows, err := r.db.Query(ctx, fullPostSelect+`
	WHERE p.group_id = $1
	ORDER BY p.pub_date DESC
	LIMIT $2
	OFFSET $3
	`, groupID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFullPosts(rows)
}

func (r *postRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts p WHERE p.author_id = $1", authorID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *postRepo) FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.FullPost, error) {
	rows, err := r.db.Query(ctx, fullPostSelect+`
	WHERE p.author_id = $1
	ORDER BY p.pub_date DESC
	LIMIT $2
	OFFSET $3
	`, authorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFullPosts(rows)
}

func (r *postRepo) CountFeed(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `
	SELECT COUNT(*)
	FROM posts p
	JOIN follows f ON p.author_id = f.author_id
	WHERE f.user_id = $1
	`, userID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *postRepo) FindFeed(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FullPost, error) {
	rows, err := r.db.Query(ctx, fullPostSelect+`
	JOIN follows f ON p.author_id = f.author_id
	WHERE f.user_id = $1
	ORDER BY p.pub_date DESC
	LIMIT $2
	OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFullPosts(rows)
}

func scanFullPost(row pgx.Row) (*model.FullPost, error) {
	var (
		post model.FullPost
		groupID *int64
		groupSlug *string
		groupTitle *string
		groupDescription *string
	)
	if err := row.Scan(
		&post.Post.ID,
		&post.Post.Text,
		&post.Post.PubDate,
		&post.Post.AuthorID,
		&post.Post.GroupID,
		&post.Post.Image,
		&post.Author.Username,
		&post.Author.DisplayName,
		&groupID,
		&groupSlug,
		&groupTitle,
		&groupDescription,
	); err != nil {
		return nil, err
	}

	post.Author.ID = post.Post.AuthorID
	if groupID != nil {
		post.Group = &model.Group{
			ID: *groupID,
			Slug: *groupSlug,
			Title: *groupTitle,
			Description: *groupDescription,
		}
	}

	return &post, nil
}

func collectFullPosts(rows pgx.Rows) ([]*model.FullPost, error) {
	var posts []*model.FullPost
	for rows.Next() {
		post, err := scanFullPost(rows)
		if err != nil {
			return nil, err
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
