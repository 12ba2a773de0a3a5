package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultHTTPAddr       = ":8080"
	DefaultWorkerCount    = 1
	DefaultWinnerInterval = 5 * time.Minute
)

// Config 服務啟動所需設定，全部來自環境變數
type Config struct {
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	WorkerCount    int
	WinnerInterval time.Duration
	HTTPAddr       string
	// Debug 開啟 echo debug 模式，錯誤回應會帶出內部訊息，只在開發環境使用
	Debug bool
}

var loadDotenv = godotenv.Load

// Load 先讀取 .env (不存在則略過，已設定的環境變數不會被覆寫)，再解析環境變數
func Load(files ...string) (*Config, error) {
	if err := loadDotenv(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("讀取 .env 失敗: %w", err)
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		WorkerCount:    DefaultWorkerCount,
		WinnerInterval: DefaultWinnerInterval,
		HTTPAddr:       DefaultHTTPAddr,
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, errors.New("環境變數 REDIS_ADDR 未設定")
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("無效的 REDIS_DB: %q", v)
		}
		cfg.RedisDB = n
	}

	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("無效的 WORKER_COUNT: %q", v)
		}
		cfg.WorkerCount = n
	}

	if v := os.Getenv("WINNER_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("無效的 WINNER_INTERVAL: %q", v)
		}
		cfg.WinnerInterval = d
	}

	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}

	if v := os.Getenv("APP_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("無效的 APP_DEBUG: %q", v)
		}
		cfg.Debug = b
	}
	return cfg, nil
}
