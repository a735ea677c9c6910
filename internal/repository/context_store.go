package repository

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ContextStore keeps the last order of each guest. Reading an unknown guest
// reports found=false, never an error. Entries never expire.
type ContextStore interface {
	// Get returns the last recorded order for the user
	Get(ctx context.Context, userID string) (order string, found bool, err error)

	// Set overwrites the last recorded order for the user
	Set(ctx context.Context, userID, order string) error

	// Swap records order as the user's last order and returns the value it
	// replaced, as one atomic step per user
	Swap(ctx context.Context, userID, order string) (previous string, found bool, err error)

	// Close releases any resources held by the store
	Close() error
}

// StoreType names a context store backend
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeRedis  StoreType = "redis"
)

// StoreOption is a functional option for configuring a context store
type StoreOption func(*storeConfig)

type storeConfig struct {
	redisClient *redis.Client
	keyPrefix   string
}

// WithRedisClient sets the Redis client for the Redis store
func WithRedisClient(client *redis.Client) StoreOption {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithKeyPrefix sets the key prefix used by the Redis store
func WithKeyPrefix(prefix string) StoreOption {
	return func(c *storeConfig) {
		c.keyPrefix = prefix
	}
}

// NewContextStore creates a context store of the given type
func NewContextStore(storeType StoreType, opts ...StoreOption) (ContextStore, error) {
	cfg := &storeConfig{keyPrefix: DefaultContextKeyPrefix}
	for _, opt := range opts {
		opt(cfg)
	}

	switch storeType {
	case StoreTypeMemory, "":
		return NewMemoryContextStore(), nil
	case StoreTypeRedis:
		if cfg.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		return NewRedisContextStore(cfg.redisClient, cfg.keyPrefix), nil
	default:
		return nil, ErrInvalidStoreType
	}
}

// MemoryContextStore is a process-local context store. Each key is swapped
// atomically, so guests never contend with each other.
type MemoryContextStore struct {
	orders sync.Map // user id -> string
}

// NewMemoryContextStore creates an empty in-memory context store
func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{}
}

// Get implements ContextStore
func (s *MemoryContextStore) Get(ctx context.Context, userID string) (string, bool, error) {
	v, ok := s.orders.Load(userID)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

// Set implements ContextStore
func (s *MemoryContextStore) Set(ctx context.Context, userID, order string) error {
	s.orders.Store(userID, order)
	return nil
}

// Swap implements ContextStore
func (s *MemoryContextStore) Swap(ctx context.Context, userID, order string) (string, bool, error) {
	prev, loaded := s.orders.Swap(userID, order)
	if !loaded {
		return "", false, nil
	}
	return prev.(string), true, nil
}

// Close implements ContextStore
func (s *MemoryContextStore) Close() error {
	return nil
}
