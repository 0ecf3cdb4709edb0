package payoff

import (
	"encoding/json"
	"math"
)

// DefaultConfidence is assumed when an estimate carries no usable confidence.
const DefaultConfidence = 0.5

// Source records where a payoff estimate came from
type Source struct {
	ID        string  `json:"id"`
	Relevance float64 `json:"relevance"`
	Excerpt   string  `json:"excerpt,omitempty"`
}

// Estimate is a payoff value with the confidence placed in it
type Estimate struct {
	Value      float64  `json:"value"`
	Confidence float64  `json:"confidence"`
	Sources    []Source `json:"sources,omitempty"`
}

// ActionEntry is one candidate action for an actor, immutable input to ranking
type ActionEntry struct {
	Actor    string   `json:"actor"`
	Action   string   `json:"action"`
	Estimate Estimate `json:"payoff_estimate"`
}

// EVResult is a ranked expected-value entry
type EVResult struct {
	Actor   string   `json:"actor"`
	Action  string   `json:"action"`
	EV      float64  `json:"ev"`
	Sources []Source `json:"sources,omitempty"`
}

// Sanitize coerces malformed numeric input to safe defaults so a single bad
// record cannot abort a ranking or sensitivity run. Missing/NaN values become
// 0; missing/NaN confidence becomes DefaultConfidence; confidence is clipped
// to [0,1].
func (e Estimate) Sanitize() Estimate {
	out := e
	if math.IsNaN(out.Value) || math.IsInf(out.Value, 0) {
		out.Value = 0
	}
	if math.IsNaN(out.Confidence) || math.IsInf(out.Confidence, 0) {
		out.Confidence = DefaultConfidence
	}
	if out.Confidence < 0 {
		out.Confidence = 0
	}
	if out.Confidence > 1 {
		out.Confidence = 1
	}
	return out
}

// UnmarshalJSON applies the default confidence when the field is absent.
func (e *Estimate) UnmarshalJSON(data []byte) error {
	type alias Estimate
	raw := struct {
		*alias
		Confidence *float64 `json:"confidence"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Confidence == nil {
		e.Confidence = DefaultConfidence
	} else {
		e.Confidence = *raw.Confidence
	}
	return nil
}
