package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCodeNotFound is returned when a key is absent or its TTL has lapsed.
var ErrCodeNotFound = errors.New("otp code not found or expired")

// CodeStore is a short-lived keyed store for one-time codes.
type CodeStore interface {
	Save(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// RedisCodeStore keeps codes in Redis with a per-key TTL.
type RedisCodeStore struct {
	client *redis.Client
	prefix string
}

func NewRedisCodeStore(client *redis.Client, prefix string) *RedisCodeStore {
	return &RedisCodeStore{client: client, prefix: prefix}
}

func (s *RedisCodeStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisCodeStore) Save(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store otp code: %w", err)
	}
	return nil
}

func (s *RedisCodeStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrCodeNotFound
		}
		return "", fmt.Errorf("failed to retrieve otp code: %w", err)
	}
	return val, nil
}

func (s *RedisCodeStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}
