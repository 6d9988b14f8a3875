package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medparse/bloodlab/internal/common"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS analysis_session (
		id         UUID PRIMARY KEY,
		status     TEXT NOT NULL,
		filenames  TEXT[] NOT NULL DEFAULT '{}',
		error      TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS blood_test_report (
		id         UUID PRIMARY KEY,
		session_id UUID NOT NULL REFERENCES analysis_session(id) ON DELETE CASCADE,
		payload    JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS blood_test_report_session_idx
		ON blood_test_report (session_id, created_at DESC)`,
}

// Migrate applies the schema. Statements are idempotent so this is safe to
// run on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			logger.Error("migration failed", "error", err)
			return common.WrapError(err, "apply migration")
		}
	}
	logger.Info("database schema up to date")
	return nil
}
