// Package pagecache is a short-TTL cache of fully rendered response bodies,
// keyed by route. Entries live out their TTL even if the underlying data
// changes; writers that must not serve stale pages call Clear explicitly.
package pagecache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrMiss = errors.New("page cache: miss")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	Clear(ctx context.Context) error
}

// IndexKey builds the cache key for a page of the index listing.
func IndexKey(page int) string {
	return fmt.Sprintf("index:%d", page)
}
