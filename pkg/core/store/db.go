// Package store persists document analyses and chat exchanges to Postgres.
// Persistence is optional: when DATABASE_URL is unset the service runs
// stateless and the repos are never constructed.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the connection pool from DATABASE_URL and creates the
// schema if it does not exist yet.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, config)
		if err != nil {
			return
		}

		err = ensureSchema(ctx)
	})
	return err
}

// GetPool returns the connection pool, or nil when persistence is off.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close closes the connection pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}

func ensureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS document_analyses (
		id UUID PRIMARY KEY,
		filename TEXT NOT NULL,
		document_type TEXT NOT NULL,
		page_count INT NOT NULL DEFAULT 0,
		metrics JSONB,
		ratios JSONB,
		dates TEXT[],
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS chat_messages (
		id UUID PRIMARY KEY,
		analysis_id UUID REFERENCES document_analyses(id) ON DELETE CASCADE,
		provider TEXT NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
