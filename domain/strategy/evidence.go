package strategy

import (
	"stratcore/domain/core"
)

// Evidence is one incoming observation consumed by recalibration
type Evidence struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"` // e.g. market_report, field_observation, regulatory_notice
	Content     string         `json:"content"`
	Value       float64        `json:"value"`
	Reliability float64        `json:"reliability"` // 0-1
	Impact      string         `json:"impact"`      // low / medium / high
	Timestamp   core.Timestamp `json:"timestamp"`
}

// HighImpact reports whether the item should count toward external-shock detection
func (e Evidence) HighImpact() bool {
	return e.Impact == "high" || e.Type == "regulatory_notice"
}

// Reliable reports whether the item clears the reliability bar for
// information-update trigger counting.
func (e Evidence) Reliable() bool {
	return e.Reliability > 0.5
}
