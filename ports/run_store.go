package ports

import (
	"context"

	"stratcore/domain/core"
)

// SimulationRun is the persisted record of one sensitivity run
type SimulationRun struct {
	RunID     core.RunID     `json:"run_id"`
	Kind      string         `json:"kind"`
	Payload   any            `json:"payload"`
	CreatedAt core.Timestamp `json:"created_at"`
}

// RunStore persists sensitivity runs. Writes are best-effort: callers log
// failures and never fail the surrounding computation on a store error.
type RunStore interface {
	SaveSimulationRun(ctx context.Context, run SimulationRun) error
	GetSimulationRun(ctx context.Context, runID core.RunID) (*SimulationRun, error)
}
