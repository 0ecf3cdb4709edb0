package knowledge

import (
	"stratcore/domain/core"
)

// TimeScale classifies how quickly strategic moves play out in a domain
type TimeScale string

const (
	TimeImmediate TimeScale = "immediate"
	TimeShort     TimeScale = "short"
	TimeMedium    TimeScale = "medium"
	TimeLong      TimeScale = "long"
)

// timeScaleOrder positions each scale on an ordered axis for distance math
var timeScaleOrder = map[TimeScale]int{
	TimeImmediate: 0,
	TimeShort:     1,
	TimeMedium:    2,
	TimeLong:      3,
}

// Distance returns the number of steps between two time scales (0-3).
// Unknown scales are treated as maximally distant.
func (t TimeScale) Distance(other TimeScale) int {
	a, okA := timeScaleOrder[t]
	b, okB := timeScaleOrder[other]
	if !okA || !okB {
		return len(timeScaleOrder) - 1
	}
	if a > b {
		return a - b
	}
	return b - a
}

// InfoAvailability classifies how much of the strategic picture players see
type InfoAvailability string

const (
	InfoComplete InfoAvailability = "complete"
	InfoPartial  InfoAvailability = "partial"
	InfoLimited  InfoAvailability = "limited"
)

var infoOrder = map[InfoAvailability]int{
	InfoComplete: 0,
	InfoPartial:  1,
	InfoLimited:  2,
}

// Distance returns the number of steps between two availability classes (0-2)
func (i InfoAvailability) Distance(other InfoAvailability) int {
	a, okA := infoOrder[i]
	b, okB := infoOrder[other]
	if !okA || !okB {
		return len(infoOrder) - 1
	}
	if a > b {
		return a - b
	}
	return b - a
}

// Characteristics describes the structural texture of a strategic domain
type Characteristics struct {
	TimeScale             TimeScale        `json:"timeScale"`
	StakeholderComplexity int              `json:"stakeholderComplexity"` // 1-10
	InformationAvail      InfoAvailability `json:"informationAvailability"`
	RegulatoryConstraints float64          `json:"regulatoryConstraints"` // 0-1
	CompetitiveIntensity  float64          `json:"competitiveIntensity"`  // 0-1
	RiskTolerance         float64          `json:"riskTolerance"`         // 0-1
}

// DomainContext is static reference data for one strategic domain,
// loaded once per process lifetime
type DomainContext struct {
	Name             string          `json:"name"`
	Characteristics  Characteristics `json:"characteristics"`
	SuccessMetrics   []string        `json:"successMetrics"`
	CommonStrategies []string        `json:"commonStrategies"`
	CulturalFactors  []string        `json:"culturalFactors"`
}

// PlayerStructure classifies the actor topology of a pattern
type PlayerStructure string

const (
	PlayersTwo        PlayerStructure = "two_player"
	PlayersFew        PlayerStructure = "few_player"
	PlayersMulti      PlayerStructure = "multi_player"
	PlayersPopulation PlayerStructure = "population"
)

// Players returns the representative player count for a structure class
func (p PlayerStructure) Players() int {
	switch p {
	case PlayersTwo:
		return 2
	case PlayersFew:
		return 4
	case PlayersMulti:
		return 8
	case PlayersPopulation:
		return 20
	default:
		return 2
	}
}

// StrategyPattern is one catalogued historical strategic pattern
type StrategyPattern struct {
	ID                     core.PatternID   `json:"id"`
	Name                   string           `json:"name"`
	SourceDomain           string           `json:"sourceDomain"`
	CoreLogic              string           `json:"coreLogic"`
	PlayerStructure        PlayerStructure  `json:"playerStructure"`
	StrategicDynamics      string           `json:"strategicDynamics"`
	InformationalStructure InfoAvailability `json:"informationalStructure"`
	HistoricalSuccessRate  float64          `json:"historicalSuccessRate"` // 0-1
	SuccessConditions      []string         `json:"successConditions"`
	FailureRisks           []string         `json:"failureRisks"`
	AdaptationRequirements []string         `json:"adaptationRequirements"`
	TransferabilityScore   float64          `json:"transferabilityScore"` // 0-1
}
