package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stratcore/ports"
)

// TransferStoreImpl implements ports.TransferStore for PostgreSQL
type TransferStoreImpl struct {
	db *sqlx.DB
}

// NewTransferStore creates a new PostgreSQL transfer store
func NewTransferStore(db *sqlx.DB) ports.TransferStore {
	return &TransferStoreImpl{db: db}
}

// SaveTransferResult persists one transfer outcome
func (r *TransferStoreImpl) SaveTransferResult(ctx context.Context, rec ports.TransferRecord) error {
	source, err := json.Marshal(rec.SourceStrategy)
	if err != nil {
		return fmt.Errorf("marshal source strategy: %w", err)
	}
	adapted, err := json.Marshal(rec.AdaptedStrategy)
	if err != nil {
		return fmt.Errorf("marshal adapted strategy: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO transfer_results (
			id, run_id, source_strategy, adapted_strategy,
			transfer_feasibility, success_prediction, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID.String(), rec.RunID.String(), source, adapted,
		rec.TransferFeasibility, rec.SuccessPrediction, rec.CreatedAt.Time())
	return err
}
