package strategy

import (
	"stratcore/domain/core"
)

// StrategyAction is one action tracked by the recalibration engine
type StrategyAction struct {
	ID                string   `json:"id"`
	Description       string   `json:"description,omitempty"`
	ExpectedValue     float64  `json:"expectedValue"`
	ActualPerformance *float64 `json:"actualPerformance,omitempty"` // normalized, 1.0 = as expected
	RelevantBeliefs   []string `json:"relevantBeliefs,omitempty"`
}

// Recommendation is one prioritized action produced by a recalibration
// cycle. Each cycle's output supersedes (never merges with) the previous.
type Recommendation struct {
	ActionID         string              `json:"actionId"`
	Priority         float64             `json:"priority"`
	Confidence       float64             `json:"confidence"`
	ExpectedValue    float64             `json:"expectedValue"`
	RiskLevel        float64             `json:"riskLevel"` // 0-1
	AdaptationReason string              `json:"adaptationReason"`
	ValidityWindow   core.ValidityWindow `json:"validityWindow"`
}

// HighRisk reports whether the recommendation sits in the risky band.
func (r Recommendation) HighRisk() bool {
	return r.RiskLevel >= 0.6
}
