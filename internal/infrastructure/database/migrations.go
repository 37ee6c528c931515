package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations applies every *.up.sql file in migrationsPath in name order.
// Migrations must be idempotent; no version table is kept.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsPath string) error {
	upFiles, err := filepath.Glob(filepath.Join(migrationsPath, "*.up.sql"))
	if err != nil {
		return fmt.Errorf("listing migrations: %w", err)
	}
	if len(upFiles) == 0 {
		return fmt.Errorf("no migrations found in %s", migrationsPath)
	}

	sort.Strings(upFiles)

	for _, path := range upFiles {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading migration file %s: %w", filepath.Base(path), err)
		}

		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", filepath.Base(path), err)
		}
	}

	return nil
}
