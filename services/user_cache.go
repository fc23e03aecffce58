package services

import (
	"context"
	"fmt"
	"time"

	"faceattendance/dto"
	"faceattendance/services/logger"

	"github.com/redis/go-redis/v9"
)

const (
	userListCacheKey = "user:all"
	userListGenKey   = "user:gen:all"
	DefaultUserTTL   = 10 * time.Minute
)

// NoGeneration makes the following Set a no-op.
const NoGeneration int64 = -1

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func userGenKey(id uint) string {
	return fmt.Sprintf("user:gen:%d", id)
}

// UserCache caches user read models. Misses and cache failures both report
// ok=false; the caller falls back to the store.
//
// A fill must read the generation before loading from the store and hand it
// back to Set; Invalidate bumps the generation so a fill that loaded before
// the invalidation is discarded.
type UserCache interface {
	GetUser(ctx context.Context, id uint) (dto.UserResponse, bool)
	UserGeneration(ctx context.Context, id uint) int64
	SetUser(ctx context.Context, user dto.UserResponse, gen int64)
	GetUsers(ctx context.Context) ([]dto.UserResponse, bool)
	ListGeneration(ctx context.Context) int64
	SetUsers(ctx context.Context, users []dto.UserResponse, gen int64)
	Invalidate(ctx context.Context, ids ...uint)
}

type RedisUserCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisUserCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) *RedisUserCache {
	if ttl <= 0 {
		ttl = DefaultUserTTL
	}
	return &RedisUserCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *RedisUserCache) GetUser(ctx context.Context, id uint) (dto.UserResponse, bool) {
	var user dto.UserResponse
	found, err := GetFromRedis(ctx, c.rdb, userCacheKey(id), &user)
	if err != nil {
		c.logger.Error("❌ redis get %s: %v", userCacheKey(id), err)
		return dto.UserResponse{}, false
	}
	return user, found
}

func (c *RedisUserCache) UserGeneration(ctx context.Context, id uint) int64 {
	return c.generation(ctx, userGenKey(id))
}

func (c *RedisUserCache) SetUser(ctx context.Context, user dto.UserResponse, gen int64) {
	c.set(ctx, userGenKey(user.ID), gen, userCacheKey(user.ID), user)
}

func (c *RedisUserCache) GetUsers(ctx context.Context) ([]dto.UserResponse, bool) {
	var users []dto.UserResponse
	found, err := GetFromRedis(ctx, c.rdb, userListCacheKey, &users)
	if err != nil {
		c.logger.Error("❌ redis get %s: %v", userListCacheKey, err)
		return nil, false
	}
	return users, found
}

func (c *RedisUserCache) ListGeneration(ctx context.Context) int64 {
	return c.generation(ctx, userListGenKey)
}

func (c *RedisUserCache) SetUsers(ctx context.Context, users []dto.UserResponse, gen int64) {
	c.set(ctx, userListGenKey, gen, userListCacheKey, users)
}

// Invalidate bumps the list generation and the given users' generations and
// drops their entries in one transaction.
func (c *RedisUserCache) Invalidate(ctx context.Context, ids ...uint) {
	genKeys := []string{userListGenKey}
	keys := []string{userListCacheKey}
	for _, id := range ids {
		genKeys = append(genKeys, userGenKey(id))
		keys = append(keys, userCacheKey(id))
	}
	if err := BumpAndDelete(ctx, c.rdb, genKeys, keys); err != nil {
		c.logger.Error("❌ redis invalidate %v: %v", keys, err)
	}
}

func (c *RedisUserCache) generation(ctx context.Context, genKey string) int64 {
	gen, err := GetGeneration(ctx, c.rdb, genKey)
	if err != nil {
		c.logger.Error("❌ redis get %s: %v", genKey, err)
		return NoGeneration
	}
	return gen
}

func (c *RedisUserCache) set(ctx context.Context, genKey string, gen int64, key string, value interface{}) {
	if gen == NoGeneration {
		return
	}
	stored, err := SetToRedisIfGeneration(ctx, c.rdb, genKey, gen, key, value, c.ttl)
	if err != nil {
		c.logger.Error("❌ redis set %s: %v", key, err)
		return
	}
	if !stored {
		c.logger.Debug("skip stale cache fill %s", key)
	}
}

// NoopUserCache is used when redis is not configured.
type NoopUserCache struct{}

func (NoopUserCache) GetUser(context.Context, uint) (dto.UserResponse, bool) { return dto.UserResponse{}, false }
func (NoopUserCache) UserGeneration(context.Context, uint) int64             { return NoGeneration }
func (NoopUserCache) SetUser(context.Context, dto.UserResponse, int64)       {}
func (NoopUserCache) GetUsers(context.Context) ([]dto.UserResponse, bool)    { return nil, false }
func (NoopUserCache) ListGeneration(context.Context) int64                   { return NoGeneration }
func (NoopUserCache) SetUsers(context.Context, []dto.UserResponse, int64)    {}
func (NoopUserCache) Invalidate(context.Context, ...uint)                    {}
