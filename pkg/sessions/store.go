// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "rental:sessions:revoked:"

var (
	_ RevocationStoreInterface = (*RedisStore)(nil)
	_ RevocationStoreInterface = (*MemoryStore)(nil)
)

// keyValueClient is the part of redis.Cmdable the store relies on
type keyValueClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore shares revocations between replicas, markers expire after the
// longest token lifetime
type RedisStore struct {
	client keyValueClient
	ttl    time.Duration
}

func (s *RedisStore) Revoke(ctx context.Context, userID string, at time.Time) error {
	if err := s.client.Set(ctx, revocationKeyPrefix+userID, at.UnixNano(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revocation for %s: %w", userID, err)
	}
	return nil
}

func (s *RedisStore) RevokedAt(ctx context.Context, userID string) (time.Time, bool, error) {
	v, err := s.client.Get(ctx, revocationKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read revocation for %s: %w", userID, err)
	}

	ns, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("corrupted revocation marker for %s: %w", userID, err)
	}

	return time.Unix(0, ns), true, nil
}

func NewRedisStore(client keyValueClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// MemoryStore is process local, fine for a single replica or development
type MemoryStore struct {
	c *cache.Cache
}

func (s *MemoryStore) Revoke(_ context.Context, userID string, at time.Time) error {
	s.c.SetDefault(userID, at)
	return nil
}

func (s *MemoryStore) RevokedAt(_ context.Context, userID string) (time.Time, bool, error) {
	v, found := s.c.Get(userID)
	if !found {
		return time.Time{}, false, nil
	}
	return v.(time.Time), true, nil
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{c: cache.New(ttl, 10*time.Minute)}
}
