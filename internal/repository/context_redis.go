package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultContextKeyPrefix namespaces guest context keys in Redis
const DefaultContextKeyPrefix = "voiceorder:context:"

// RedisContextStore shares guest context between server replicas. Keys carry
// no TTL.
type RedisContextStore struct {
	client *redis.Client
	prefix string
}

// NewRedisContextStore creates a Redis-backed context store
func NewRedisContextStore(client *redis.Client, prefix string) *RedisContextStore {
	if prefix == "" {
		prefix = DefaultContextKeyPrefix
	}
	return &RedisContextStore{client: client, prefix: prefix}
}

func (s *RedisContextStore) key(userID string) string {
	return s.prefix + userID
}

// Get implements ContextStore
func (s *RedisContextStore) Get(ctx context.Context, userID string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read context for %s: %w", userID, err)
	}
	return val, true, nil
}

// Set implements ContextStore
func (s *RedisContextStore) Set(ctx context.Context, userID, order string) error {
	if err := s.client.Set(ctx, s.key(userID), order, 0).Err(); err != nil {
		return fmt.Errorf("failed to write context for %s: %w", userID, err)
	}
	return nil
}

// Swap implements ContextStore with GETSET, which Redis executes atomically
func (s *RedisContextStore) Swap(ctx context.Context, userID, order string) (string, bool, error) {
	prev, err := s.client.GetSet(ctx, s.key(userID), order).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to swap context for %s: %w", userID, err)
	}
	return prev, true, nil
}

// Close implements ContextStore
func (s *RedisContextStore) Close() error {
	return s.client.Close()
}
