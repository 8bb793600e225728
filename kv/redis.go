package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "partstock:"

// RedisStore keeps values in a redis instance, for setups where the
// inventory should survive the local machine.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get reads the value under key. redis.Nil maps to a missing key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read %q from redis: %w", key, err)
	}
	return data, true, nil
}

// Set stores the value under key with no expiration; a snapshot is only
// ever replaced by the next explicit save.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("could not write %q to redis: %w", key, err)
	}
	return nil
}
