// @title        Leaderboard API
// @version      1.0
// @description  使用者積分排行榜與定期 winner 結算的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leaderboard/internal/api"
	"leaderboard/internal/cache"
	"leaderboard/internal/config"
	"leaderboard/internal/database"
	"leaderboard/internal/leaderboard"
	"leaderboard/internal/middleware"
	"leaderboard/internal/router"
	"leaderboard/internal/scheduler"
	"leaderboard/internal/worker"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "leaderboard/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 15 * time.Second

var (
	loadConfig      = func() (*config.Config, error) { return config.Load() }
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	notifyContext   = signal.NotifyContext
	exitFunc        = os.Exit
)

// newServer 建立 echo 實例並註冊中介層、路由與 swagger；debug 只在開發環境開啟
func newServer(db database.DB, rdb cache.Cache, debug bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.Debug = debug
	e.Use(middleware.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.Setup(e, db, rdb)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := newServer(db, rdb, cfg.Debug)

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(wp, cfg.WinnerInterval, func(ctx context.Context) (leaderboard.Result, error) {
		return leaderboard.UpdateWinners(ctx, db, rdb)
	}, e.Logger)
	sched.Start(ctx)
	defer sched.Stop()

	errCh := make(chan error, 1)
	start := startServer
	go func() { errCh <- start(e, cfg.HTTPAddr) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP 服務失敗: %v", err)
		}
		return nil
	case <-ctx.Done():
	}

	e.Logger.Info("收到關閉信號，開始優雅停機...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownServer(shutdownCtx, e); err != nil {
		return fmt.Errorf("HTTP 服務關閉失敗: %v", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
