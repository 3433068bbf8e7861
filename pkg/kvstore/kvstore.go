// Package kvstore is the whole-value key-value substrate backing per-store
// inventory state. Values are complete JSON documents written with plain
// get/set — there is no compare-and-swap, so concurrent writers to the same
// key are last-write-wins. Consumers that need cross-process visibility
// subscribe to inventory events and re-read rather than trusting cached state.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/forgemart/pkg/cache"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Store is the substrate contract: whole-value string get/set/delete.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// RedisStore is the production Store implementation. Keys are written without
// TTL — inventory state persists until explicitly overwritten or deleted.
type RedisStore struct {
	client *cache.RedisClient
}

// NewRedisStore returns a Store backed by the given Redis client.
func NewRedisStore(client *cache.RedisClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Client().Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("kvstore get %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Client().Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("kvstore set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("kvstore delete %s: %w", key, err)
	}
	return nil
}

// MemoryStore is an in-memory Store for tests and single-process use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return val, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
