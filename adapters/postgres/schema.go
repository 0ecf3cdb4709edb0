// Package postgres implements the best-effort persistence stores. Engines
// treat every write here as fire-and-forget: a failed write is logged by the
// caller and never fails the surrounding computation.
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema holds the table definitions, applied idempotently.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS simulation_runs (
		run_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (run_id, kind, created_at)
	)`,
	`CREATE TABLE IF NOT EXISTS strategic_patterns (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		source_domain TEXT NOT NULL,
		target_domain TEXT NOT NULL,
		similarity DOUBLE PRECISION NOT NULL,
		success_probability DOUBLE PRECISION NOT NULL,
		analogy JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_strategic_patterns_run ON strategic_patterns (run_id)`,
	`CREATE TABLE IF NOT EXISTS transfer_results (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		source_strategy JSONB NOT NULL,
		adapted_strategy JSONB NOT NULL,
		transfer_feasibility DOUBLE PRECISION NOT NULL,
		success_prediction DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transfer_results_run ON transfer_results (run_id)`,
}

// Migrate applies the schema idempotently.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i, err)
		}
	}
	return nil
}
