package sensitivity

import (
	"stratcore/domain/core"
	"stratcore/domain/payoff"
)

// RangePct is a perturbation range in percent, e.g. {-10, 10} for ±10%.
type RangePct struct {
	LowPct  float64 `json:"low_pct"`
	HighPct float64 `json:"high_pct"`
}

// IsZero reports whether no range was declared.
func (r RangePct) IsZero() bool {
	return r.LowPct == 0 && r.HighPct == 0
}

// Factors returns the multiplicative bounds implied by the range.
func (r RangePct) Factors() (low, high float64) {
	low = 1 + r.LowPct/100
	high = 1 + r.HighPct/100
	if low > high {
		low, high = high, low
	}
	return low, high
}

// Parameter is one named input whose perturbation drives a tornado bar
type Parameter struct {
	Name      string   `json:"name"`
	BaseValue float64  `json:"base_value"`
	Range     RangePct `json:"range"`
}

// Request is one sensitivity run
type Request struct {
	RunID       core.RunID           `json:"analysis_id"`
	BaseActions []payoff.ActionEntry `json:"base_actions"`
	KeyParams   []Parameter          `json:"key_params"`
	Samples     int                  `json:"n,omitempty"`
	Seed        *int64               `json:"seed,omitempty"`
}

// TornadoResult summarizes the EV spread induced by perturbing one parameter
type TornadoResult struct {
	Param           string    `json:"param"`
	BaseValue       float64   `json:"base_value"`
	RangePercentage RangePct  `json:"range_percentage"`
	AvgTopEV        float64   `json:"avg_top_ev"`
	MinEV           float64   `json:"min_ev"`
	MaxEV           float64   `json:"max_ev"`
	RangeDelta      float64   `json:"range_delta"`
	RawDeltas       []float64 `json:"raw_deltas"`
}

// Summary is the run-level audit record. PerturbationRangePct holds the
// range shared by every parameter; when parameters declared differing
// ranges it is omitted and the per-parameter ranges on the results are the
// record instead.
type Summary struct {
	MostSensitiveParam   string    `json:"most_sensitive_parameter"`
	SamplesPerParameter  int       `json:"samples_per_parameter"`
	PerturbationRangePct *RangePct `json:"perturbation_range_percent,omitempty"`
	BaselineTopEV        float64   `json:"baseline_top_ev"`
	ParametersAnalyzed   int       `json:"parameters_analyzed"`
}

// Result is the full tornado analysis output
type Result struct {
	RunID   core.RunID      `json:"analysis_id"`
	Results []TornadoResult `json:"results"`
	Summary Summary         `json:"tornado_summary"`
}
