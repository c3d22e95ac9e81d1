package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS parse_jobs (
		id            UUID PRIMARY KEY,
		source_path   TEXT NOT NULL,
		source_hash   TEXT NOT NULL DEFAULT '',
		format        TEXT NOT NULL,
		status        TEXT NOT NULL,
		method        TEXT,
		language      TEXT,
		pages         INTEGER,
		confidence    REAL,
		warnings      JSONB,
		error_message TEXT,
		started_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		finished_at   TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS parse_jobs_status_idx ON parse_jobs (status)`,
	`CREATE INDEX IF NOT EXISTS parse_jobs_source_hash_idx ON parse_jobs (source_hash)`,
	`CREATE TABLE IF NOT EXISTS rosters (
		id           UUID PRIMARY KEY,
		job_id       UUID NOT NULL UNIQUE REFERENCES parse_jobs (id) ON DELETE CASCADE,
		unit_label   TEXT NOT NULL DEFAULT '',
		shift_date   TEXT NOT NULL DEFAULT '',
		outcome      TEXT NOT NULL,
		needs_review BOOLEAN NOT NULL DEFAULT false,
		payload      JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS rosters_unit_shift_idx ON rosters (unit_label, shift_date)`,
}

// Migrate applies the idempotent schema statements in order.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			logger.Error("migration failed", "error", err)
			return err
		}
	}
	logger.Info("schema up to date")
	return nil
}
