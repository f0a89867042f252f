package memory

import (
	"context"
	"sort"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type postRepo struct {
	store *Store
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextPostID++
	post.ID = r.store.nextPostID
	post.PubDate = r.store.tick()
	r.store.posts[post.ID] = post

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	post, ok := r.store.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	return r.store.fullPost(post), nil
}

func (r *postRepo) UpdateByID(ctx context.Context, id int64, updates map[string]interface{}) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	post, ok := r.store.posts[id]
	if !ok {
		return nil
	}

	if text, ok := updates["text"].(string); ok {
		post.Text = text
	}
	if groupID, ok := updates["group_id"].(int64); ok {
		post.GroupID = &groupID
	}
	if image, ok := updates["image"].(string); ok {
		post.Image = &image
	}

	r.store.posts[id] = post

	return nil
}

func (r *postRepo) CountAll(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return int64(len(r.store.posts)), nil
}

func (r *postRepo) FindAll(ctx context.Context, limit int, offset int) ([]*model.FullPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.page(r.matching(func(model.Post) bool { return true }), limit, offset), nil
}

func (r *postRepo) CountByGroup(ctx context.Context, groupID int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return int64(len(r.matching(func(p model.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}))), nil
}

func (r *postRepo) FindByGroup(ctx context.Context, groupID int64, limit int, offset int) ([]*model.FullPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.page(r.matching(func(p model.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}), limit, offset), nil
}

func (r *postRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return int64(len(r.matching(func(p model.Post) bool {
		return p.AuthorID == authorID
	}))), nil
}

func (r *postRepo) FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.FullPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.page(r.matching(func(p model.Post) bool {
		return p.AuthorID == authorID
	}), limit, offset), nil
}

func (r *postRepo) CountFeed(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return int64(len(r.matching(r.feedFilter(userID)))), nil
}

func (r *postRepo) FindFeed(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FullPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.page(r.matching(r.feedFilter(userID)), limit, offset), nil
}

func (r *postRepo) feedFilter(userID uuid.UUID) func(model.Post) bool {
	return func(p model.Post) bool {
		_, ok := r.store.follows[model.Follow{UserID: userID, AuthorID: p.AuthorID}]
		return ok
	}
}

// matching returns posts passing the filter, newest-first. Callers must hold
// the store lock.
func (r *postRepo) matching(filter func(model.Post) bool) []model.Post {
	var posts []model.Post
	for _, post := range r.store.posts {
		if filter(post) {
			posts = append(posts, post)
		}
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].PubDate.After(posts[j].PubDate)
	})

	return posts
}

func (r *postRepo) page(posts []model.Post, limit int, offset int) []*model.FullPost {
	if offset > len(posts) {
		offset = len(posts)
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}

	result := make([]*model.FullPost, 0, end-offset)
	for _, post := range posts[offset:end] {
		result = append(result, r.store.fullPost(post))
	}

	return result
}
