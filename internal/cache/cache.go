package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 是 redis 的最小操作集合，*redis.Client 直接實作；
// 測試時以 FakeCache 替換。ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

const (
	probeKey = "leaderboard:health:probe"
	probeTTL = 10 * time.Second
)

// Healthy 寫入一個短期 probe key，確認 redis 可寫
func Healthy(ctx context.Context, c Cache) error {
	if err := c.Set(ctx, probeKey, "1", probeTTL).Err(); err != nil {
		return fmt.Errorf("Healthy: %w", err)
	}
	return nil
}

type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	DelFn   func(ctx context.Context, keys ...string) *redis.IntCmd
	CloseFn func() error
}

func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

// Close 未設定時為 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
