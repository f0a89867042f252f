package pagecache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const versionKey = "pagecache:version"

// RedisStore keeps rendered pages under a versioned key namespace. Clear bumps
// the version counter, orphaning every entry at once; the orphans expire on
// their own TTL.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *RedisStore {
	return &RedisStore{
		rdb: rdb,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	fullKey, err := s.fullKey(ctx, key)
	if err != nil {
		return nil, err
	}

	body, err := s.rdb.Get(ctx, fullKey).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}

	return body, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	fullKey, err := s.fullKey(ctx, key)
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, fullKey, body, ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.rdb.Incr(ctx, versionKey).Err()
}

func (s *RedisStore) fullKey(ctx context.Context, key string) (string, error) {
	version, err := s.rdb.Get(ctx, versionKey).Int64()
	if err == redis.Nil {
		version = 0
	} else if err != nil {
		return "", err
	}

	return fmt.Sprintf("pagecache:%d:%s", version, key), nil
}
