package middleware

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// CacheStore holds encoded responses for the cache middleware.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// RedisStore keeps cached responses in Redis so every replica shares them.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps a connected client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	bs, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return bs, true
}

func (s *RedisStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return s.rdb.SetEx(ctx, key, payload, ttl).Err()
}

// MemoryStore is a process-local store used when Redis is not available.
type MemoryStore struct {
	c *gocache.Cache
}

// NewMemoryStore creates a store whose expired entries are purged every
// cleanup interval.
func NewMemoryStore(defaultTTL, cleanup time.Duration) *MemoryStore {
	return &MemoryStore{c: gocache.New(defaultTTL, cleanup)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false
	}
	bs, ok := v.([]byte)
	return bs, ok
}

func (s *MemoryStore) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	s.c.Set(key, payload, ttl)
	return nil
}

// ItemCount reports how many entries are held, expired or not.
func (s *MemoryStore) ItemCount() int { return s.c.ItemCount() }
