package memory

import (
	"context"
	"sort"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
)

type commentRepo struct {
	store *Store
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextCommentID++
	comment.ID = r.store.nextCommentID
	comment.Created = time.Now()
	r.store.comments[comment.ID] = comment

	return &comment, nil
}

func (r *commentRepo) FindByPost(ctx context.Context, postID int64) ([]*model.FullComment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var comments []*model.FullComment
	for _, comment := range r.store.comments {
		if comment.PostID != postID {
			continue
		}

		full := model.FullComment{Comment: comment}
		if author, ok := r.store.users[comment.AuthorID]; ok {
			full.Author = model.PostAuthor{
				ID: author.ID,
				Username: author.Username,
				DisplayName: author.DisplayName,
			}
		}

		comments = append(comments, &full)
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].Comment.ID < comments[j].Comment.ID
	})

	return comments, nil
}

func (r *commentRepo) CountByPost(ctx context.Context, postID int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, comment := range r.store.comments {
		if comment.PostID == postID {
			count++
		}
	}

	return count, nil
}
