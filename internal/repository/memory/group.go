package memory

import (
	"context"
	"sort"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/jackc/pgx/v5"
)

type groupRepo struct {
	store *Store
}

func (r *groupRepo) Create(ctx context.Context, group model.Group) (*model.Group, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextGroupID++
	group.ID = r.store.nextGroupID
	r.store.groups[group.ID] = group

	return &group, nil
}

func (r *groupRepo) FindByID(ctx context.Context, id int64) (*model.Group, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	group, ok := r.store.groups[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	return &group, nil
}

func (r *groupRepo) FindBySlug(ctx context.Context, slug string) (*model.Group, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, group := range r.store.groups {
		if group.Slug == slug {
			groupCopy := group
			return &groupCopy, nil
		}
	}

	return nil, pgx.ErrNoRows
}

func (r *groupRepo) FindAll(ctx context.Context) ([]*model.Group, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var groups []*model.Group
	for _, group := range r.store.groups {
		groupCopy := group
		groups = append(groups, &groupCopy)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Title < groups[j].Title
	})

	return groups, nil
}
