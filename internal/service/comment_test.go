package service

import (
	"context"
	"errors"
	"testing"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/pagecache"
	"go.uber.org/zap"
)

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	_, repo := newTestRepo()
	posts := newPostService(zap.NewNop(), repo, pagecache.NewMemory(), nil)
	comments := newCommentService(zap.NewNop(), repo)

	author := createTestUser(t, repo, "leo")
	commenter := createTestUser(t, repo, "mia")

	post, err := posts.Create(ctx, author, dto.CreatePostRequest{Text: "hello"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := comments.Create(ctx, post.ID, commenter, "   "); !errors.Is(err, ErrTextIsRequired) {
		t.Errorf("comment with blank text: err = %v, want ErrTextIsRequired", err)
	}
	if _, err := comments.Create(ctx, 404, commenter, "hi"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("comment on unknown post: err = %v, want ErrPostNotFound", err)
	}

	comment, err := comments.Create(ctx, post.ID, commenter, "  nice one  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.Text != "nice one" {
		t.Errorf("comment text = %q, want trimmed %q", comment.Text, "nice one")
	}
	if comment.AuthorID != commenter.ID {
		t.Errorf("comment author = %s, want %s", comment.AuthorID, commenter.ID)
	}

	detail, err := posts.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.CommentsCount != 1 || len(detail.Comments) != 1 {
		t.Fatalf("post has %d comments (count %d), want 1", len(detail.Comments), detail.CommentsCount)
	}
	if detail.Comments[0].Author.Username != "mia" {
		t.Errorf("comment shown with author %q, want %q", detail.Comments[0].Author.Username, "mia")
	}
}
