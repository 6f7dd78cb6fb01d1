package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
)

const defaultPingTimeout = 5 * time.Second

// NewPgxPool creates a new pgx pool with the given configuration and verifies
// the database is reachable. The resolved target is logged without credentials.
func NewPgxPool(ctx context.Context, cfg config.Postgres, logger *slog.Logger) (*pgxpool.Pool, error) {
	pgConf, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		logger.ErrorContext(ctx, "invalid database connection string",
			slog.String("source", cfg.Source()),
			// pgx errors redact the password
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("parse config: %w", err)
	}

	target := describeTarget(cfg, pgConf)
	logger.InfoContext(ctx, "connecting to database", target)

	pgConf.ConnConfig.Tracer = newTracer()

	pgConf.MaxConns = cfg.MaxConns
	pgConf.MinConns = cfg.MinConns
	pgConf.MaxConnLifetime = cfg.MaxConnLifetime
	pgConf.MaxConnIdleTime = cfg.MaxConnIdleTime
	if cfg.ConnectTimeout > 0 {
		pgConf.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgConf)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := otelpgx.RecordStats(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("record database stats: %w", err)
	}

	pingTimeout := cfg.ConnectTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}
	pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
	defer pingCancel()

	if err := pool.Ping(pingCtx); err != nil {
		logger.ErrorContext(ctx, "database is unreachable", target, slog.Any("error", err))
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.InfoContext(ctx, "database connection established", target)

	return pool, nil
}

func describeTarget(cfg config.Postgres, pgConf *pgxpool.Config) slog.Attr {
	cc := pgConf.ConnConfig
	return slog.Group("database",
		slog.String("source", cfg.Source()),
		slog.String("host", cc.Host),
		slog.Int("port", int(cc.Port)),
		slog.String("name", cc.Database),
		slog.String("user", cc.User),
		slog.Bool("tls", cc.TLSConfig != nil),
	)
}
