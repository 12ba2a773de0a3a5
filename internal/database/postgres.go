package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrateInstance 是 *migrate.Migrate 中會用到的部分，測試時可替換
type migrateInstance interface {
	Up() error
	Down() error
}

var (
	pgxpoolNew             = pgxpool.New
	sqlOpenDB              = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn              = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

// NewPgxPool 建立 pgx 連線池並確認可連線
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("NewPgxPool: %w", err)
	}
	return pool, nil
}

// RunMigrations 執行所有嵌入的 users / winners migration (up all)
func RunMigrations(dbURL string) error {
	return withMigrator(dbURL, func(m migrateInstance) error {
		return m.Up()
	})
}

// RollbackAll 退回所有 migration (down to version 0)
func RollbackAll(dbURL string) error {
	return withMigrator(dbURL, func(m migrateInstance) error {
		return m.Down()
	})
}

func withMigrator(dbURL string, step func(migrateInstance) error) error {
	sqlDB, err := sqlOpenDB("pgx", dbURL)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	driver, err := postgresWithInstanceFn(sqlDB, &postgres.Config{})
	if err != nil {
		return err
	}

	sourceDriver, err := iofsNewFn(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return err
	}

	// ErrNoChange 代表已在目標版本
	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
