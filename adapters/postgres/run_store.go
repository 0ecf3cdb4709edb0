package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"stratcore/domain/core"
	"stratcore/ports"
)

// RunStoreImpl implements ports.RunStore for PostgreSQL
type RunStoreImpl struct {
	db *sqlx.DB
}

// NewRunStore creates a new PostgreSQL run store
func NewRunStore(db *sqlx.DB) ports.RunStore {
	return &RunStoreImpl{db: db}
}

// SaveSimulationRun persists one sensitivity run record
func (r *RunStoreImpl) SaveSimulationRun(ctx context.Context, run ports.SimulationRun) error {
	payload, err := json.Marshal(run.Payload)
	if err != nil {
		return fmt.Errorf("marshal run payload: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO simulation_runs (run_id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4)`,
		run.RunID.String(), run.Kind, payload, run.CreatedAt.Time())
	return err
}

// GetSimulationRun retrieves the most recent record for a run
func (r *RunStoreImpl) GetSimulationRun(ctx context.Context, runID core.RunID) (*ports.SimulationRun, error) {
	var (
		kind      string
		payload   []byte
		createdAt time.Time
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT kind, payload, created_at FROM simulation_runs
		WHERE run_id = $1
		ORDER BY created_at DESC LIMIT 1`, runID.String()).
		Scan(&kind, &payload, &createdAt)
	if err != nil {
		return nil, core.ErrRunNotFound
	}

	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("decode run payload: %w", err)
	}
	return &ports.SimulationRun{
		RunID:     runID,
		Kind:      kind,
		Payload:   decoded,
		CreatedAt: core.NewTimestamp(createdAt),
	}, nil
}
