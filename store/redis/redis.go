// Package redis provides a store.Store backed by Redis.
//
// Layout: each record is a string at <prefix>graph:<key>; the set
// <prefix>graphs indexes every saved key for List.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/gridpath/store"
)

// RedisStore implements store.Store using Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string        // Key prefix, default "gridpath:"
	TTL      time.Duration // Expiration for records, default 0 (no expiration); negative means 0
}

// NewRedisStore creates a new Redis store. No connection is made until the
// first command.
func NewRedisStore(opts RedisOptions) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "gridpath:"
	}

	// go-redis reads a negative expiration as KEEPTTL.
	ttl := opts.TTL
	if ttl < 0 {
		ttl = 0
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) recordKey(key string) string {
	return fmt.Sprintf("%sgraph:%s", s.prefix, key)
}

func (s *RedisStore) indexKey() string {
	return s.prefix + "graphs"
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Save stores rec and indexes key in one pipeline.
func (s *RedisStore) Save(ctx context.Context, key string, rec store.Record) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}
	data, err := store.Marshal(rec)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.recordKey(key), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), key)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save record to redis: %w", err)
	}

	return nil
}

// Load retrieves the record stored under key.
func (s *RedisStore) Load(ctx context.Context, key string) (store.Record, error) {
	data, err := s.client.Get(ctx, s.recordKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return store.Record{}, fmt.Errorf("%w: %s", store.ErrNotFound, key)
		}
		return store.Record{}, fmt.Errorf("failed to load record from redis: %w", err)
	}

	return store.Unmarshal(data)
}

// Delete removes the record and its index entry.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.recordKey(key))
	pipe.SRem(ctx, s.indexKey(), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete record from redis: %w", err)
	}

	return nil
}

// List returns indexed keys whose record still exists (a TTL may have
// expired some), in ascending order.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	members, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	if len(members) == 0 {
		return []string{}, nil
	}

	pipe := s.client.Pipeline()
	exists := make([]*redis.IntCmd, len(members))
	for i, m := range members {
		exists[i] = pipe.Exists(ctx, s.recordKey(m))
	}
	if _, err = pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to check records: %w", err)
	}

	keys := make([]string, 0, len(members))
	for i, m := range members {
		if exists[i].Val() > 0 {
			keys = append(keys, m)
		}
	}
	sort.Strings(keys)

	return keys, nil
}
