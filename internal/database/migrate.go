package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

//go:embed migrations
var migrationFiles embed.FS

const migrationTable = "schema_migrations"

func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	root := path.Join("migrations", driver)
	sub, err := fs.Sub(migrationFiles, root)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	return ApplyMigrations(ctx, db, sub, placeholder(driver))
}

// ApplyMigrations executes every *.sql file of migrationFS in name order, at most once.
func ApplyMigrations(ctx context.Context, db *sql.DB, migrationFS fs.FS, bind func(int) string) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
    name TEXT PRIMARY KEY,
    applied_at BIGINT NOT NULL
)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, name := range files {
		var count int
		if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+migrationTable+` WHERE name = `+bind(1), name).Scan(&count); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if count > 0 {
			continue
		}
		content, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO `+migrationTable+` (name, applied_at) VALUES (`+bind(1)+`, `+bind(2)+`)`, name, time.Now().UTC().Unix()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
	}
	return nil
}

func placeholder(driver string) func(int) string {
	if driver == DriverPostgres {
		return func(n int) string { return fmt.Sprintf("$%d", n) }
	}
	return func(int) string { return "?" }
}
