package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrations returns the embedded schema migrations.
func Migrations() fs.FS {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		panic(fmt.Errorf("sub migrations fs: %w", err))
	}
	return fsys
}

// Migrate applies every pending migration and returns what was applied.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]*goose.MigrationResult, error) {
	// The *sql.DB borrows connections from pool and must not be closed here.
	sqlDB := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, Migrations())
	if err != nil {
		return nil, fmt.Errorf("create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("migrate up: %w", err)
	}

	return results, nil
}

// MigrateAndLog runs Migrate and logs every applied version.
func MigrateAndLog(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	logger.InfoContext(ctx, "applying database migrations")

	results, err := Migrate(ctx, pool)
	for _, res := range results {
		logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", res.Source.Version),
			slog.String("file", res.Source.Path),
			slog.Duration("duration", res.Duration))
	}
	if err != nil {
		return err
	}

	if len(results) == 0 {
		logger.InfoContext(ctx, "database schema is up to date")
	}
	return nil
}
