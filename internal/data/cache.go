package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"usecase-sync/internal/biz/model"

	"github.com/redis/go-redis/v9"
)

// kvStore 按 key 存取单个值，未命中返回 nil, nil
type kvStore[V any] interface {
	get(ctx context.Context, key string) (*V, error)
	set(ctx context.Context, key string, value V) error
}

type memoryEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// memoryStore 进程内带 TTL 的缓存
type memoryStore[V any] struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry[V]
	ttl     time.Duration
	now     func() time.Time
}

func newMemoryStore[V any](ttl time.Duration) *memoryStore[V] {
	return &memoryStore[V]{
		entries: make(map[string]memoryEntry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *memoryStore[V]) get(_ context.Context, key string) (*V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, found := s.entries[key]
	if !found || s.now().After(entry.expiresAt) {
		return nil, nil
	}
	v := entry.value
	return &v, nil
}

func (s *memoryStore[V]) set(_ context.Context, key string, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry[V]{
		value:     value,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

// cleanup 删除过期条目
func (s *memoryStore[V]) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
}

// run 周期清理，直到 ctx 结束
func (s *memoryStore[V]) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

// redisStore 以 JSON 形式把值写入 redis
type redisStore[V any] struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func newRedisStore[V any](rdb *redis.Client, prefix string, ttl time.Duration) *redisStore[V] {
	return &redisStore[V]{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *redisStore[V]) key(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *redisStore[V]) get(ctx context.Context, key string) (*V, error) {
	raw, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key(key), err)
	}

	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode cached value %s: %w", s.key(key), err)
	}
	return &v, nil
}

func (s *redisStore[V]) set(ctx context.Context, key string, value V) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cached value %s: %w", s.key(key), err)
	}
	if err := s.rdb.SetEx(ctx, s.key(key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis setex %s: %w", s.key(key), err)
	}
	return nil
}

type usersCache struct {
	store kvStore[model.User]
}

func (c *usersCache) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return c.store.get(ctx, userID)
}

func (c *usersCache) CacheUser(ctx context.Context, user model.User) error {
	return c.store.set(ctx, user.UserID, user)
}

// 令牌按用户名索引
type authTokenCache struct {
	store kvStore[model.AuthToken]
}

func (c *authTokenCache) GetAuthToken(ctx context.Context, username string) (*model.AuthToken, error) {
	return c.store.get(ctx, username)
}

func (c *authTokenCache) CacheAuthToken(ctx context.Context, token model.AuthToken) error {
	return c.store.set(ctx, token.Username, token)
}

type profilesCache struct {
	store kvStore[model.UserProfile]
}

func (c *profilesCache) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	return c.store.get(ctx, userID)
}

func (c *profilesCache) CacheProfile(ctx context.Context, profile model.UserProfile) error {
	return c.store.set(ctx, profile.UserID, profile)
}
