package postgres

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type groupRepo struct {
	db *pgxpool.Pool
}

func newGroupRepo(db *pgxpool.Pool) Group {
	return &groupRepo{
		db: db,
	}
}

func (r *groupRepo) Create(ctx context.Context, group model.Group) (*model.Group, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO groups(slug, title, description) VALUES($1, $2, $3) RETURNING id",
		group.Slug,
		group.Title,
		group.Description,
	).Scan(&group.ID); err != nil {
		return nil, err
	}

	return &group, nil
}

func (r *groupRepo) FindByID(ctx context.Context, id int64) (*model.Group, error) {
	var group model.Group
	if err := r.db.QueryRow(ctx, `
	SELECT g.id, g.slug, g.title, g.description
	FROM groups g
	WHERE g.id = $1
	`, id).Scan(
		&group.ID,
		&group.Slug,
		&group.Title,
		&group.Description,
	); err != nil {
		return nil, err
	}

	return &group, nil
}

func (r *groupRepo) FindBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var group model.Group
	if err := r.db.QueryRow(ctx, `
	SELECT g.id, g.slug, g.title, g.description
	FROM groups g
	WHERE g.slug = $1
	`, slug).Scan(
		&group.ID,
		&group.Slug,
		&group.Title,
		&group.Description,
	); err != nil {
		return nil, err
	}

	return &group, nil
}

func (r *groupRepo) FindAll(ctx context.Context) ([]*model.Group, error) {
	rows, err := r.db.Query(ctx, `
	SELECT g.id, g.slug, g.title, g.description
	FROM groups g
	ORDER BY g.title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*model.Group
	for rows.Next() {
		var group model.Group
		if err := rows.Scan(
			&group.ID,
			&group.Slug,
			&group.Title,
			&group.Description,
		); err != nil {
			return nil, err
		}

		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
