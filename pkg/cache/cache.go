// Package cache is a thin JSON cache over Redis.
//
// A nil *Store is valid and no-ops everywhere, so the server keeps working
// when Redis is unavailable.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	rdb *redis.Client
}

// Connect initialises the Redis client and verifies it with a ping.
func Connect(addr, password string) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}
	return &Store{rdb: rdb}, nil
}

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func (s *Store) Get(ctx context.Context, key string, dest interface{}) bool {
	if s == nil {
		return false
	}

	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(val), dest) == nil
}

// Set stores value under key for the given TTL.
func (s *Store) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, key, data, ttl).Err()
}

// Del removes one or more keys.
func (s *Store) Del(ctx context.Context, keys ...string) error {
	if s == nil {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

// Incr atomically increments the counter at key and returns the new value.
// Used for cache generation keys: bumping the generation invalidates every
// key derived from it without scanning.
func (s *Store) Incr(ctx context.Context, key string) int64 {
	if s == nil {
		return 0
	}
	n, _ := s.rdb.Incr(ctx, key).Result()
	return n
}

// GetInt reads an integer counter, zero when absent.
func (s *Store) GetInt(ctx context.Context, key string) int64 {
	if s == nil {
		return 0
	}
	n, _ := s.rdb.Get(ctx, key).Int64()
	return n
}

// Close releases the underlying client.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.rdb.Close()
}
