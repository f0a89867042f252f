// Package memory is an in-memory implementation of the postgres repository
// interfaces, used in tests and local development without a database.
package memory

import (
	"sync"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository/postgres"
	"github.com/google/uuid"
)

type Store struct {
	mu sync.Mutex

	users  map[uuid.UUID]model.User
	groups map[int64]model.Group
	posts  map[int64]model.Post

	comments map[int64]model.Comment
	follows  map[model.Follow]struct{}

	nextGroupID   int64
	nextPostID    int64
	nextCommentID int64

	// clock advances one second per created post so that newest-first
	// ordering stays deterministic.
	clock time.Time
}

func New() *Store {
	return &Store{
		users: make(map[uuid.UUID]model.User),
		groups: make(map[int64]model.Group),
		posts: make(map[int64]model.Post),
		comments: make(map[int64]model.Comment),
		follows: make(map[model.Follow]struct{}),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *Store) Repository() *postgres.PostgresRepository {
	return &postgres.PostgresRepository{
		User: &userRepo{s},
		Group: &groupRepo{s},
		Post: &postRepo{s},
		Comment: &commentRepo{s},
		Follow: &followRepo{s},
	}
}

func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *Store) fullPost(post model.Post) *model.FullPost {
	full := model.FullPost{Post: post}

	if author, ok := s.users[post.AuthorID]; ok {
		full.Author = model.PostAuthor{
			ID: author.ID,
			Username: author.Username,
			DisplayName: author.DisplayName,
		}
	}

	if post.GroupID != nil {
		if group, ok := s.groups[*post.GroupID]; ok {
			groupCopy := group
			full.Group = &groupCopy
		}
	}

	return &full
}
