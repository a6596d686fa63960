package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdle     time.Duration
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

// Open connects, waits for the database to answer and applies migrations.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	driverName, err := sqlDriverName(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		// A single connection keeps in-memory databases shared and serialises writers.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxIdleTime(cfg.ConnMaxIdle)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := waitForPing(ctx, db, cfg.PingTimeout); err != nil {
		_ = db.Close()
		return nil, err
	}
	if cfg.Driver == DriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}
	if err := Migrate(ctx, db, cfg.Driver); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func sqlDriverName(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "pgx", nil
	case DriverSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

func waitForPing(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, db.PingContext(ctx)
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxElapsedTime(timeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.WarnContext(ctx, "database not ready yet", slog.String("error", err.Error()), slog.Duration("retry_in", next))
		}),
	)
	if err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
