package strategy

import (
	"stratcore/domain/core"
)

// Distribution is a Gaussian belief summary
type Distribution struct {
	Mean       float64 `json:"mean"`
	Variance   float64 `json:"variance"`
	Confidence float64 `json:"confidence"` // 0-1
}

// Precision returns 1/variance, guarding against degenerate variances.
func (d Distribution) Precision() float64 {
	if d.Variance <= 0 {
		return 1e6
	}
	return 1 / d.Variance
}

// BeliefUpdate is one append-only entry in a belief's update history
type BeliefUpdate struct {
	Timestamp       core.Timestamp `json:"timestamp"`
	Evidence        string         `json:"evidence"`
	InformationGain float64        `json:"informationGain"`
}

// Belief tracks a named strategic parameter as prior/posterior Gaussians.
// Mutated exclusively by the recalibration engine's Bayesian update step;
// history is append-only and never truncated within a run.
type Belief struct {
	Parameter     string         `json:"parameter"`
	Prior         Distribution   `json:"priorDistribution"`
	Posterior     Distribution   `json:"posteriorDistribution"`
	UpdateHistory []BeliefUpdate `json:"updateHistory,omitempty"`
}

// Clone returns a deep copy so engine updates never alias caller state.
func (b Belief) Clone() Belief {
	out := b
	if b.UpdateHistory != nil {
		out.UpdateHistory = make([]BeliefUpdate, len(b.UpdateHistory))
		copy(out.UpdateHistory, b.UpdateHistory)
	}
	return out
}

// CloneBeliefs deep-copies a belief set.
func CloneBeliefs(beliefs []Belief) []Belief {
	out := make([]Belief, len(beliefs))
	for i, b := range beliefs {
		out[i] = b.Clone()
	}
	return out
}
