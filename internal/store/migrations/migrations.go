// Package migrations owns the Postgres schema used by pgstore and gormstore.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	migrationsDir    = "sql"
	dialectPostgres  = "postgres"
	driverPgx        = "pgx"
	migrationTimeout = 60 * time.Second

	CommandUp     = "up"
	CommandDown   = "down"
	CommandStatus = "status"
	CommandReset  = "reset"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// ErrUnknownCommand reports a migrate command outside the supported set.
var ErrUnknownCommand = errors.New("migrations: unknown command")

// goose keeps its base FS and dialect in package globals.
var gooseMutex sync.Mutex

// Files lists the embedded migration file names.
func Files() ([]string, error) {
	entries, err := embedMigrations.ReadDir(migrationsDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// ParseCommand normalizes a migrate command.
func ParseCommand(raw string) (string, error) {
	command := strings.ToLower(strings.TrimSpace(raw))
	switch command {
	case CommandUp, CommandDown, CommandStatus, CommandReset:
		return command, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, raw)
	}
}

// Run applies command to the database behind dsn.
func Run(ctx context.Context, dsn string, command string) error {
	parsed, err := ParseCommand(command)
	if err != nil {
		return err
	}
	migrationCtx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	db, err := sql.Open(driverPgx, dsn)
	if err != nil {
		return fmt.Errorf("sql open: %w", err)
	}
	defer func() { _ = db.Close() }()
	return RunDB(migrationCtx, db, parsed)
}

// RunDB applies command on an already opened database handle.
func RunDB(ctx context.Context, db *sql.DB, command string) error {
	gooseMutex.Lock()
	defer gooseMutex.Unlock()

	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect(dialectPostgres); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.RunContext(ctx, command, db, migrationsDir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
