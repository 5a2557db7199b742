package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores the document as a plain string value
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend creates a RedisBackend bound to key
func NewRedisBackend(client *redis.Client, key string) *RedisBackend {
	return &RedisBackend{client: client, key: key}
}

// Load fetches the document with GET
func (b *RedisBackend) Load(ctx context.Context) ([]byte, error) {
	value, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", b.key, err)
	}
	return value, nil
}

// Save writes the document with SET and no expiry
func (b *RedisBackend) Save(ctx context.Context, data []byte) error {
	if err := b.client.Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", b.key, err)
	}
	return nil
}

// Close is a no-op; the client is owned by the caller that opened it
func (b *RedisBackend) Close() error { return nil }

// Name returns "redis"
func (b *RedisBackend) Name() string { return "redis" }
