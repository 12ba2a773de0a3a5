package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 是 store 與 handler 共用的資料庫介面，*pgxpool.Pool 直接實作
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(context.Context) error
	Close()
}

// HealthTimeout 健康檢查單次 ping 的上限
const HealthTimeout = 2 * time.Second

// Healthy 在 HealthTimeout 內確認資料庫可連線
func Healthy(ctx context.Context, db DB) error {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		return fmt.Errorf("Healthy: %w", err)
	}
	return nil
}

// FakeDB 供測試使用，未設定的方法被呼叫時會 panic
type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
