package memory

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
)

type followRepo struct {
	store *Store
}

func (r *followRepo) Create(ctx context.Context, follow model.Follow) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.follows[follow]; ok {
		return false, nil
	}

	r.store.follows[follow] = struct{}{}

	return true, nil
}

func (r *followRepo) Delete(ctx context.Context, follow model.Follow) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.follows, follow)

	return nil
}

func (r *followRepo) Exists(ctx context.Context, follow model.Follow) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, ok := r.store.follows[follow]

	return ok, nil
}
