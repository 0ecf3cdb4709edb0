package transfer

import (
	"stratcore/domain/core"
	"stratcore/domain/knowledge"
)

// SourceStrategy is the strategy being moved across domains, with its
// observed performance in the source domain.
type SourceStrategy struct {
	Pattern     knowledge.StrategyPattern `json:"pattern"`
	Context     string                    `json:"context,omitempty"`
	Performance float64                   `json:"performance"` // observed success rate, 0-1
}

// Constraints bound what the caller can absorb during adaptation
type Constraints struct {
	TimeToImplementHours float64 `json:"timeToImplement"` // 0 = unconstrained
	MaxRiskLevel         string  `json:"maxRiskLevel,omitempty"`
}

// Request is one transfer call
type Request struct {
	RunID          core.RunID     `json:"runId"`
	SourceStrategy SourceStrategy `json:"sourceStrategy"`
	TargetDomain   string         `json:"targetDomain"`
	Objectives     []string       `json:"transferObjectives,omitempty"`
	Constraints    Constraints    `json:"constraints"`
}

// Phase is one step of the adaptation protocol
type Phase struct {
	Name          string   `json:"name"`
	DurationHours float64  `json:"durationHours"`
	Resources     []string `json:"requiredResources"`
	Activities    []string `json:"activities"`
}

// RiskLevel classifies aggregate transfer risk
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskAssessment aggregates qualitative transfer risks with mitigations
type RiskAssessment struct {
	Level       RiskLevel `json:"level"`
	Factors     []string  `json:"factors"`
	Mitigations []string  `json:"mitigations"`
}

// Plan is the implementation feasibility verdict. Exceeding the caller's
// time budget is a hard gate, not a warning.
type Plan struct {
	TotalHours     float64 `json:"totalHours"`
	Feasible       bool    `json:"feasible"`
	Recommendation string  `json:"recommendation,omitempty"`
}

// Result is the full transfer response
type Result struct {
	RunID               core.RunID                `json:"runId"`
	TransferFeasibility float64                   `json:"transferFeasibility"`
	AdaptedStrategy     knowledge.StrategyPattern `json:"adaptedStrategy"`
	AdaptationProtocol  []Phase                   `json:"adaptationProtocol"`
	RiskAssessment      RiskAssessment            `json:"riskAssessment"`
	ImplementationPlan  Plan                      `json:"implementationPlan"`
	SuccessPrediction   float64                   `json:"successPrediction"`
}

// Config holds the engine's calibration constants, preserved from the
// historical implementation as named overridable defaults.
type Config struct {
	FeasibilityBase    float64 // starting score before contributions
	FeasibilityGate    float64 // short-circuit threshold
	AdaptationPenalty  float64 // multiplier on adapted transferability
	ShortCircuitScore  float64 // success prediction below the gate
	RiskMultiplierHigh float64
	RiskMultiplierMed  float64
	RiskMultiplierLow  float64
	SuccessFloor       float64
	SuccessCeiling     float64
}

// DefaultConfig returns the historical calibration.
func DefaultConfig() Config {
	return Config{
		FeasibilityBase:    0.5,
		FeasibilityGate:    0.3,
		AdaptationPenalty:  0.8,
		ShortCircuitScore:  0.2,
		RiskMultiplierHigh: 0.7,
		RiskMultiplierMed:  0.85,
		RiskMultiplierLow:  0.95,
		SuccessFloor:       0.1,
		SuccessCeiling:     0.95,
	}
}
