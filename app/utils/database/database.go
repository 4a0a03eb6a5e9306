package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"backoffice-api/app/config"
)

// Migrations are the only database/sql consumer in this service;
// request traffic goes through pgxpool. The runner wants plain
// transactions, and running schema changes on the pool the handlers
// share would be asking for lock trouble, so the CLI dials its own
// short-lived connection here.

// Open dials Postgres over lib/pq for the migration tooling and
// verifies the connection with a ping before handing it back.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	log := logger.With("component", "migration_db")

	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s",
			cfg.DatabaseUser,
			cfg.DatabasePassword,
			cfg.DatabaseHost,
			cfg.DatabasePort,
			cfg.DatabaseName,
			cfg.DatabaseSSLMode,
		)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}

	// Migrations run sequentially on a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("migration connection established",
		"host", cfg.DatabaseHost,
		"database", cfg.DatabaseName)

	return db, nil
}
