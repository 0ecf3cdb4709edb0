package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stratcore/domain/core"
	"stratcore/domain/strategy"
	"stratcore/ports"
)

// PatternStoreImpl implements ports.PatternStore for PostgreSQL
type PatternStoreImpl struct {
	db *sqlx.DB
}

// NewPatternStore creates a new PostgreSQL pattern store
func NewPatternStore(db *sqlx.DB) ports.PatternStore {
	return &PatternStoreImpl{db: db}
}

// SaveDiscoveredAnalogies persists one discovery call's analogies
func (r *PatternStoreImpl) SaveDiscoveredAnalogies(ctx context.Context, runID core.RunID, analogies []strategy.Analogy) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin analogy tx: %w", err)
	}
	defer tx.Rollback()

	for _, analogy := range analogies {
		payload, err := json.Marshal(analogy)
		if err != nil {
			return fmt.Errorf("marshal analogy: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO strategic_patterns (
				id, run_id, source_domain, target_domain,
				similarity, success_probability, analogy
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				similarity = EXCLUDED.similarity,
				success_probability = EXCLUDED.success_probability,
				analogy = EXCLUDED.analogy`,
			core.NewID().String(), runID.String(), analogy.SourceDomain, analogy.TargetDomain,
			analogy.StructuralSimilarity, analogy.SuccessProbability, payload)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetDiscoveredAnalogies returns every analogy recorded for a run
func (r *PatternStoreImpl) GetDiscoveredAnalogies(ctx context.Context, runID core.RunID) ([]strategy.Analogy, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT analogy FROM strategic_patterns
		WHERE run_id = $1
		ORDER BY similarity DESC`, runID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analogies []strategy.Analogy
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var analogy strategy.Analogy
		if err := json.Unmarshal(payload, &analogy); err != nil {
			return nil, fmt.Errorf("decode analogy: %w", err)
		}
		analogies = append(analogies, analogy)
	}
	return analogies, rows.Err()
}
