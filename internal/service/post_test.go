package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/pagecache"
	"go.uber.org/zap"
)

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	_, repo := newTestRepo()
	cache := pagecache.NewMemory()
	svc := newPostService(zap.NewNop(), repo, cache, nil)

	author := createTestUser(t, repo, "leo")
	group := createTestGroup(t, repo, "cats")

	if err := cache.Set(ctx, pagecache.IndexKey(1), []byte("stale page"), time.Minute); err != nil {
		t.Fatalf("unexpected error seeding cache: %v", err)
	}

	post, err := svc.Create(ctx, author, dto.CreatePostRequest{Text: "  a new post  ", GroupID: &group.ID}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.Text != "a new post" {
		t.Errorf("post text = %q, want trimmed %q", post.Text, "a new post")
	}
	if post.AuthorID != author.ID {
		t.Errorf("post author = %s, want %s", post.AuthorID, author.ID)
	}

	if _, err := cache.Get(ctx, pagecache.IndexKey(1)); !errors.Is(err, pagecache.ErrMiss) {
		t.Errorf("cache get after create = %v, want ErrMiss", err)
	}

	index, err := svc.ListIndex(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index.TotalCount != 1 || len(index.Items) != 1 {
		t.Fatalf("index has %d items (total %d), want 1", len(index.Items), index.TotalCount)
	}
	if index.Items[0].Post.ID != post.ID {
		t.Errorf("index post id = %d, want %d", index.Items[0].Post.ID, post.ID)
	}

	byGroup, err := svc.ListByGroup(ctx, group.Slug, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byGroup.Page.Items) != 1 {
		t.Fatalf("group page has %d items, want 1", len(byGroup.Page.Items))
	}
	if byGroup.Page.Items[0].Group == nil || byGroup.Page.Items[0].Group.ID != group.ID {
		t.Errorf("group page post is not attached to group %d", group.ID)
	}

	profile, err := svc.ListByAuthor(ctx, author.Username, nil, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.PostsCount != 1 || len(profile.Page.Items) != 1 {
		t.Errorf("profile has %d posts (count %d), want 1", len(profile.Page.Items), profile.PostsCount)
	}
}

func TestPostService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	_, repo := newTestRepo()
	svc := newPostService(zap.NewNop(), repo, pagecache.NewMemory(), nil)

	author := createTestUser(t, repo, "leo")

	if _, err := svc.Create(ctx, author, dto.CreatePostRequest{Text: "   "}, nil); !errors.Is(err, ErrTextIsRequired) {
		t.Errorf("create with blank text: err = %v, want ErrTextIsRequired", err)
	}

	unknownGroup := int64(404)
	if _, err := svc.Create(ctx, author, dto.CreatePostRequest{Text: "hi", GroupID: &unknownGroup}, nil); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("create with unknown group: err = %v, want ErrGroupNotFound", err)
	}
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()
	_, repo := newTestRepo()
	svc := newPostService(zap.NewNop(), repo, pagecache.NewMemory(), nil)

	author := createTestUser(t, repo, "leo")
	other := createTestUser(t, repo, "mia")
	group := createTestGroup(t, repo, "cats")

	post, err := svc.Create(ctx, author, dto.CreatePostRequest{Text: "original"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hacked := "hacked"
	if _, err := svc.Update(ctx, post.ID, other, dto.UpdatePostRequest{Text: &hacked}, nil); !errors.Is(err, ErrNotPostAuthor) {
		t.Fatalf("update by non-author: err = %v, want ErrNotPostAuthor", err)
	}
	detail, err := svc.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Post.Post.Text != "original" {
		t.Errorf("post text after rejected update = %q, want %q", detail.Post.Post.Text, "original")
	}

	edited := "edited"
	updated, err := svc.Update(ctx, post.ID, author, dto.UpdatePostRequest{Text: &edited, GroupID: &group.ID}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Post.Text != "edited" {
		t.Errorf("updated text = %q, want %q", updated.Post.Text, "edited")
	}
	if updated.Group == nil || updated.Group.ID != group.ID {
		t.Errorf("updated post is not attached to group %d", group.ID)
	}
	if !updated.Post.PubDate.Equal(post.PubDate) {
		t.Errorf("pub date changed on update: %v != %v", updated.Post.PubDate, post.PubDate)
	}

	if _, err := svc.Update(ctx, 404, author, dto.UpdatePostRequest{Text: &edited}, nil); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("update of unknown post: err = %v, want ErrPostNotFound", err)
	}
}

func TestPostService_Pagination(t *testing.T) {
	ctx := context.Background()
	_, repo := newTestRepo()
	svc := newPostService(zap.NewNop(), repo, pagecache.NewMemory(), nil)

	author := createTestUser(t, repo, "leo")
	for i := 1; i <= 13; i++ {
		if _, err := svc.Create(ctx, author, dto.CreatePostRequest{Text: fmt.Sprintf("post %d", i)}, nil); err != nil {
			t.Fatalf("unexpected error creating post %d: %v", i, err)
		}
	}

	first, err := svc.ListIndex(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Items) != 10 {
		t.Errorf("page 1 has %d items, want 10", len(first.Items))
	}
	if !first.HasNext || first.HasPrevious {
		t.Errorf("page 1 flags: next=%v previous=%v, want next only", first.HasNext, first.HasPrevious)
	}
	if first.Items[0].Post.Text != "post 13" {
		t.Errorf("page 1 starts with %q, want newest post first", first.Items[0].Post.Text)
	}

	second, err := svc.ListIndex(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second.Items) != 3 {
		t.Errorf("page 2 has %d items, want 3", len(second.Items))
	}
	if second.HasNext || !second.HasPrevious {
		t.Errorf("page 2 flags: next=%v previous=%v, want previous only", second.HasNext, second.HasPrevious)
	}

	far, err := svc.ListIndex(ctx, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if far.Number != 2 {
		t.Errorf("out-of-range page resolved to %d, want last page 2", far.Number)
	}
}

func TestPostService_GetByID(t *testing.T) {
	ctx := context.Background()
	_, repo := newTestRepo()
	svc := newPostService(zap.NewNop(), repo, pagecache.NewMemory(), nil)

	if _, err := svc.GetByID(ctx, 404); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("get of unknown post: err = %v, want ErrPostNotFound", err)
	}

	author := createTestUser(t, repo, "leo")
	post, err := svc.Create(ctx, author, dto.CreatePostRequest{Text: "hello"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detail, err := svc.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Post.Author.Username != "leo" {
		t.Errorf("detail author = %q, want %q", detail.Post.Author.Username, "leo")
	}
	if detail.CommentsCount != 0 || len(detail.Comments) != 0 {
		t.Errorf("fresh post has %d comments (count %d), want 0", len(detail.Comments), detail.CommentsCount)
	}
}

func TestPostService_ListByGroupUnknownSlug(t *testing.T) {
	_, repo := newTestRepo()
	svc := newPostService(zap.NewNop(), repo, pagecache.NewMemory(), nil)

	if _, err := svc.ListByGroup(context.Background(), "no-such-group", 1); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("list by unknown slug: err = %v, want ErrGroupNotFound", err)
	}
}
