package recalibration

import (
	"stratcore/domain/core"
	"stratcore/domain/strategy"
)

// CurrentStrategy is the caller-owned strategy record being recalibrated.
// The engine never caches it between cycles.
type CurrentStrategy struct {
	Actions    []strategy.StrategyAction `json:"actions"`
	Beliefs    []strategy.Belief         `json:"beliefs"`
	LastUpdate core.Timestamp            `json:"lastUpdate"`
}

// Config controls how aggressively a cycle moves beliefs and recommendations
type Config struct {
	Triggers         []strategy.Trigger `json:"triggers,omitempty"`
	AdaptationRate   float64            `json:"adaptationRate"`   // (0,1], default 0.5
	ConservatismBias float64            `json:"conservatismBias"` // [0,1], widens the no-change band
}

// Constraints prune the recommendation set
type Constraints struct {
	MinConfidenceThreshold float64 `json:"minConfidenceThreshold"`
	MaxStrategyChanges     int     `json:"maxStrategyChanges"`
}

// Request is one recalibration cycle
type Request struct {
	RunID           core.RunID          `json:"runId"`
	CurrentStrategy CurrentStrategy     `json:"currentStrategy"`
	NewInformation  []strategy.Evidence `json:"newInformation"`
	Config          Config              `json:"recalibrationConfig"`
	Constraints     Constraints         `json:"constraints"`
}

// TriggerEvaluation records one trigger's computed strength
type TriggerEvaluation struct {
	Type      strategy.TriggerType `json:"type"`
	Strength  float64              `json:"strength"`
	Threshold float64              `json:"threshold"`
	Fired     bool                 `json:"fired"`
}

// Metrics quantifies how much a cycle moved the strategy
type Metrics struct {
	BeliefChangeMagnitude   float64 `json:"beliefChangeMagnitude"`
	StrategyChangeMagnitude float64 `json:"strategyChangeMagnitude"`
	EvidenceQuality         float64 `json:"evidenceQuality"` // fraction with reliability > 0.5
	HoursSinceLastUpdate    float64 `json:"hoursSinceLastUpdate"`
	ConfidenceImprovement   float64 `json:"confidenceImprovement"`
}

// RiskSummary classifies the recalibration itself
type RiskSummary struct {
	Level   string   `json:"level"` // low / medium / high
	Reasons []string `json:"reasons,omitempty"`
}

// Result is the full recalibration response. When ShouldRecalibrate is
// false, UpdatedBeliefs is identical to the input beliefs and
// NewRecommendations is empty.
type Result struct {
	RunID              core.RunID                `json:"runId"`
	ShouldRecalibrate  bool                      `json:"shouldRecalibrate"`
	TriggeredBy        []strategy.TriggerType    `json:"triggeredBy"`
	TriggerEvaluations []TriggerEvaluation       `json:"triggerEvaluations"`
	UpdatedBeliefs     []strategy.Belief         `json:"updatedBeliefs"`
	NewRecommendations []strategy.Recommendation `json:"newRecommendations"`
	AdaptationMetrics  Metrics                   `json:"adaptationMetrics"`
	RiskAssessment     RiskSummary               `json:"riskAssessment"`
}
