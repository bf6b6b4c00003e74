package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MarkoPoloResearchLab/topup/internal/store/gormstore"
	"github.com/MarkoPoloResearchLab/topup/internal/store/migrations"
	"github.com/MarkoPoloResearchLab/topup/internal/store/pgstore"
	"github.com/MarkoPoloResearchLab/topup/pkg/ledger"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

// openStore opens the configured ledger.Store and returns a function releasing it.
func openStore(ctx context.Context, cfg *runtimeConfig) (ledger.Store, func(), error) {
	driver, sqlitePath, err := resolveDriver(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Store == storePgx {
		if driver != driverPostgres {
			return nil, nil, fmt.Errorf("store %s requires a postgres database url", storePgx)
		}
		if cfg.Migrate {
			if err := migrations.Run(ctx, cfg.DatabaseURL, migrations.CommandUp); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("pgx pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pgx ping: %w", err)
		}
		return pgstore.New(pool), pool.Close, nil
	}

	gormDB, cleanup, err := openDatabase(driver, cfg.DatabaseURL, sqlitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("database open: %w", err)
	}
	if cfg.Migrate {
		if err := prepareSchema(ctx, gormDB, driver, cfg.DatabaseURL); err != nil {
			_ = cleanup()
			return nil, nil, err
		}
	}
	return gormstore.New(gormDB), func() { _ = cleanup() }, nil
}

func openDatabase(driver string, dsn string, sqlitePath string) (*gorm.DB, func() error, error) {
	var (
		db  *gorm.DB
		err error
	)
	cfg := &gorm.Config{}
	switch driver {
	case driverPostgres:
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	case driverSQLite:
		db, err = gorm.Open(sqlite.Open(sqlitePath), cfg)
	default:
		return nil, nil, fmt.Errorf("unsupported database scheme %q", driver)
	}
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if driver == driverSQLite {
		// SQLite allows one writer; a single connection serializes the atomic units.
		sqlDB.SetMaxOpenConns(1)
	}
	cleanup := func() error { return sqlDB.Close() }
	return db, cleanup, nil
}

// prepareSchema auto-migrates SQLite and applies goose migrations to Postgres.
func prepareSchema(ctx context.Context, db *gorm.DB, driver string, dsn string) error {
	if driver == driverPostgres {
		if err := migrations.Run(ctx, dsn, migrations.CommandUp); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		return nil
	}
	if err := gormstore.AutoMigrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func isPostgresURL(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func resolveDriver(dsn string) (string, string, error) {
	if isPostgresURL(dsn) {
		return driverPostgres, "", nil
	}
	if strings.HasPrefix(dsn, "sqlite://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", "", fmt.Errorf("parse sqlite url: %w", err)
		}
		path := u.Path
		if path == "" {
			path = u.Host
		}
		if path == "" || path == "/" {
			path = "ledger.db"
		}
		sqlitePath, err := normalizeSQLitePath(path)
		return driverSQLite, sqlitePath, err
	}
	// Treat everything else as a direct sqlite path.
	sqlitePath, err := normalizeSQLitePath(dsn)
	return driverSQLite, sqlitePath, err
}

func normalizeSQLitePath(path string) (string, error) {
	if path == ":memory:" {
		return path, nil
	}
	if strings.HasPrefix(path, "/") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", err
		}
		return path, nil
	}
	abs := filepath.Join(".", path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	return abs, nil
}
