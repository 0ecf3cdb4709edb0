package ports

import (
	"context"

	"stratcore/domain/core"
	"stratcore/domain/knowledge"
)

// TransferRecord is the persisted outcome of one cross-domain transfer
type TransferRecord struct {
	ID                  core.TransferID           `json:"id"`
	RunID               core.RunID                `json:"run_id"`
	SourceStrategy      knowledge.StrategyPattern `json:"source_strategy"`
	AdaptedStrategy     knowledge.StrategyPattern `json:"adapted_strategy"`
	TransferFeasibility float64                   `json:"transfer_feasibility"`
	SuccessPrediction   float64                   `json:"success_prediction"`
	CreatedAt           core.Timestamp            `json:"created_at"`
}

// TransferStore persists transfer outcomes. Best-effort, same contract as RunStore.
type TransferStore interface {
	SaveTransferResult(ctx context.Context, rec TransferRecord) error
}
