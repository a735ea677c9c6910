package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisContextStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisContextStore(client, "")
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func storeBackends(t *testing.T) map[string]ContextStore {
	redisStore, _ := newTestRedisStore(t)
	return map[string]ContextStore{
		"memory": NewMemoryContextStore(),
		"redis":  redisStore,
	}
}

func TestContextStore_Semantics(t *testing.T) {
	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			order, found, err := store.Get(ctx, "never-seen")
			require.NoError(t, err)
			assert.False(t, found)
			assert.Empty(t, order)

			prev, found, err := store.Swap(ctx, "u1", "pizza please")
			require.NoError(t, err)
			assert.False(t, found)
			assert.Empty(t, prev)

			prev, found, err = store.Swap(ctx, "u1", "a burger")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "pizza please", prev)

			require.NoError(t, store.Set(ctx, "u2", "club sandwich"))
			order, found, err = store.Get(ctx, "u2")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "club sandwich", order)

			order, _, err = store.Get(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, "a burger", order)
		})
	}
}

func TestContextStore_ConcurrentSwapNoLostUpdate(t *testing.T) {
	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			const n = 64

			var (
				mu       sync.Mutex
				previous = make(map[string]int)
				fresh    int
				wg       sync.WaitGroup
			)
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					prev, found, err := store.Swap(ctx, "u1", fmt.Sprintf("order-%d", i))
					assert.NoError(t, err)
					mu.Lock()
					defer mu.Unlock()
					if !found {
						fresh++
						return
					}
					previous[prev]++
				}(i)
			}
			wg.Wait()

			last, found, err := store.Get(ctx, "u1")
			require.NoError(t, err)
			require.True(t, found)
			previous[last]++

			assert.Equal(t, 1, fresh)
			assert.Len(t, previous, n)
			for v, count := range previous {
				assert.Equal(t, 1, count, v)
			}
		})
	}
}

func TestRedisContextStore_KeyPrefixAndNoTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	store, err := NewContextStore(StoreTypeRedis, WithRedisClient(client), WithKeyPrefix("hotel:ctx:"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(context.Background(), "u1", "pizza please"))

	val, err := mr.Get("hotel:ctx:u1")
	require.NoError(t, err)
	assert.Equal(t, "pizza please", val)
	assert.Zero(t, mr.TTL("hotel:ctx:u1"))
}

func TestRedisContextStore_Unavailable(t *testing.T) {
	store, mr := newTestRedisStore(t)
	mr.Close()

	_, _, err := store.Swap(context.Background(), "u1", "pizza please")
	assert.Error(t, err)
	_, _, err = store.Get(context.Background(), "u1")
	assert.Error(t, err)
}

func TestNewContextStore(t *testing.T) {
	store, err := NewContextStore(StoreTypeMemory)
	require.NoError(t, err)
	assert.IsType(t, &MemoryContextStore{}, store)

	store, err = NewContextStore("")
	require.NoError(t, err)
	assert.IsType(t, &MemoryContextStore{}, store)

	_, err = NewContextStore(StoreTypeRedis)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewContextStore("etcd")
	assert.ErrorIs(t, err, ErrInvalidStoreType)
}
