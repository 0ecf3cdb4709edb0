package strategy

// TriggerType names a change-detection condition
type TriggerType string

const (
	TriggerInformationUpdate    TriggerType = "information_update"
	TriggerTimeDecay            TriggerType = "time_decay"
	TriggerPerformanceDeviation TriggerType = "performance_deviation"
	TriggerExternalShock        TriggerType = "external_shock"
)

// Trigger is static recalibration configuration: a condition whose strength
// crossing the threshold initiates belief updating.
type Trigger struct {
	Type          TriggerType `json:"type"`
	Threshold     float64     `json:"threshold"` // 0-1
	Sensitivity   float64     `json:"sensitivity"`
	CooldownHours float64     `json:"cooldownPeriod"`
}

// DefaultTriggers returns the standard trigger set used when the caller
// supplies none.
func DefaultTriggers() []Trigger {
	return []Trigger{
		{Type: TriggerInformationUpdate, Threshold: 0.3, Sensitivity: 1.0, CooldownHours: 1},
		{Type: TriggerTimeDecay, Threshold: 0.5, Sensitivity: 1.0, CooldownHours: 6},
		{Type: TriggerPerformanceDeviation, Threshold: 0.25, Sensitivity: 1.0, CooldownHours: 2},
		{Type: TriggerExternalShock, Threshold: 0.2, Sensitivity: 1.5, CooldownHours: 0},
	}
}
