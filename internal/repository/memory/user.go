package memory

import (
	"context"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepo struct {
	store *Store
}

func (r *userRepo) Create(ctx context.Context, user model.User) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.store.users[user.ID] = user

	return &user, nil
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	return &user, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Username == username {
			userCopy := user
			return &userCopy, nil
		}
	}

	return nil, pgx.ErrNoRows
}

func (r *userRepo) FindByEmailOrUsername(ctx context.Context, email string, username string) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email || user.Username == username {
			userCopy := user
			return &userCopy, nil
		}
	}

	return nil, pgx.ErrNoRows
}
