package ports

import (
	"context"

	"stratcore/domain/core"
	"stratcore/domain/strategy"
)

// PatternStore persists analogies discovered by symmetry mining into the
// long-lived strategic_patterns table. Best-effort, same contract as RunStore.
type PatternStore interface {
	SaveDiscoveredAnalogies(ctx context.Context, runID core.RunID, analogies []strategy.Analogy) error
	GetDiscoveredAnalogies(ctx context.Context, runID core.RunID) ([]strategy.Analogy, error)
}
