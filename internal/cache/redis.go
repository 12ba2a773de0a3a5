package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisClient 定義了 NewRedisClient 內部使用的必要方法，便於測試時替換。
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

// redisNewClient 用來建立 redis client，測試可覆寫此變數。
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// pingTimeout 是建立連線時 Ping 的上限
const pingTimeout = 5 * time.Second

// NewRedisClient 建立 redis client 並在 pingTimeout 內確認連線，失敗時關閉 client
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
