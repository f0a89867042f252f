package pagecache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, err := store.Get(ctx, "index:1"); err != ErrMiss {
		t.Errorf("want ErrMiss on empty store, got %v", err)
	}

	body := []byte(`{"items":[1,2,3]}`)
	if err := store.Set(ctx, "index:1", body, time.Minute); err != nil {
		t.Fatalf("unexpected error on Set: %v", err)
	}

	got, err := store.Get(ctx, "index:1")
	if err != nil {
		t.Fatalf("unexpected error on Get: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Errorf("want stored body %q, got %q", body, got)
	}

	// The store must hold its own copy: mutating the original slice
	// must not leak into cached responses.
	body[0] = 'X'
	got, err = store.Get(ctx, "index:1")
	if err != nil {
		t.Fatalf("unexpected error on Get: %v", err)
	}
	if got[0] == 'X' {
		t.Error("cached body aliases the caller's slice")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	if err := store.Set(ctx, "index:1", []byte("page"), 20*time.Second); err != nil {
		t.Fatalf("unexpected error on Set: %v", err)
	}

	current = current.Add(19 * time.Second)
	if _, err := store.Get(ctx, "index:1"); err != nil {
		t.Errorf("want hit before TTL, got %v", err)
	}

	current = current.Add(2 * time.Second)
	if _, err := store.Get(ctx, "index:1"); err != ErrMiss {
		t.Errorf("want ErrMiss after TTL, got %v", err)
	}
}

func TestMemoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if err := store.Set(ctx, "index:1", []byte("one"), time.Minute); err != nil {
		t.Fatalf("unexpected error on Set: %v", err)
	}
	if err := store.Set(ctx, "index:2", []byte("two"), time.Minute); err != nil {
		t.Fatalf("unexpected error on Set: %v", err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("unexpected error on Clear: %v", err)
	}

	if _, err := store.Get(ctx, "index:1"); err != ErrMiss {
		t.Errorf("want ErrMiss after Clear, got %v", err)
	}
	if _, err := store.Get(ctx, "index:2"); err != ErrMiss {
		t.Errorf("want ErrMiss after Clear, got %v", err)
	}
}
