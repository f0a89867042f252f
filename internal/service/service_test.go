package service

import (
	"context"
	"testing"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/repository/memory"
)

func newTestRepo() (*memory.Store, *repository.Repository) {
	store := memory.New()
	return store, &repository.Repository{Postgres: store.Repository()}
}

func createTestUser(t *testing.T, repo *repository.Repository, username string) model.User {
	t.Helper()

	user, err := repo.Postgres.User.Create(context.Background(), model.User{
		Email: username + "@example.com",
		Username: username,
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("unexpected error creating user %s: %v", username, err)
	}

	return *user
}

func createTestGroup(t *testing.T, repo *repository.Repository, slug string) model.Group {
	t.Helper()

	group, err := repo.Postgres.Group.Create(context.Background(), model.Group{
		Slug: slug,
		Title: "Group " + slug,
		Description: "test group",
	})
	if err != nil {
		t.Fatalf("unexpected error creating group %s: %v", slug, err)
	}

	return *group
}
