package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"leaderboard/internal/model"

	"github.com/redis/go-redis/v9"
)

// LatestWinnerKey 存放最近一次宣告的 winner (JSON)
const LatestWinnerKey = "leaderboard:winner:latest"

// ErrMiss 表示快取中沒有資料
var ErrMiss = errors.New("cache miss")

// SetLatestWinner 寫入最新 winner，不設過期
func SetLatestWinner(ctx context.Context, c Cache, w *model.Winner) error {
	b, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("SetLatestWinner: %w", err)
	}
	if err := c.Set(ctx, LatestWinnerKey, b, 0).Err(); err != nil {
		return fmt.Errorf("SetLatestWinner: %w", err)
	}
	return nil
}

// GetLatestWinner 讀取最新 winner，key 不存在時回傳 ErrMiss
func GetLatestWinner(ctx context.Context, c Cache) (*model.Winner, error) {
	b, err := c.Get(ctx, LatestWinnerKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("GetLatestWinner: %w", err)
	}
	w := &model.Winner{}
	if err := json.Unmarshal(b, w); err != nil {
		return nil, fmt.Errorf("GetLatestWinner: %w", err)
	}
	return w, nil
}

// InvalidateLatestWinner 在 winner 被修改或刪除後移除快取，下次讀取時由資料庫回填
func InvalidateLatestWinner(ctx context.Context, c Cache) error {
	if err := c.Del(ctx, LatestWinnerKey).Err(); err != nil {
		return fmt.Errorf("InvalidateLatestWinner: %w", err)
	}
	return nil
}
