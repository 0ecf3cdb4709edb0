package symmetry

import (
	"stratcore/domain/core"
	"stratcore/domain/knowledge"
	"stratcore/domain/strategy"
)

// Elements captures the structural facts of the current scenario
type Elements struct {
	PlayerCount      int                        `json:"playerCount"`
	InformationAvail knowledge.InfoAvailability `json:"informationAvailability"`
	PayoffStructure  string                     `json:"payoffStructure"`
	ActionSpace      []string                   `json:"actionSpace,omitempty"`
}

// Scenario describes the situation being mined for cross-domain precedents
type Scenario struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Domain            string   `json:"domain"`
	Stakeholders      []string `json:"stakeholders,omitempty"`
	StrategicElements Elements `json:"strategicElements"`
}

// Empty reports whether the scenario lacks the fields needed for scoring.
func (s Scenario) Empty() bool {
	return s.Domain == "" && s.StrategicElements.PlayerCount == 0 &&
		s.StrategicElements.PayoffStructure == ""
}

// Config controls one discovery call. Zero values fall back to defaults.
type Config struct {
	AbstractionLevel    int      `json:"abstractionLevel"`    // 1-10, clamped
	MaxAnalogies        int      `json:"maxAnalogies"`        // default 5
	SimilarityThreshold float64  `json:"similarityThreshold"` // default 0.6
	DomainsToSearch     []string `json:"domainsToSearch,omitempty"`
}

// Weights are the similarity-factor weights and ranking blend. The values
// are historical calibration constants kept as overridable configuration.
type Weights struct {
	PlayerCloseness  float64 `json:"playerCloseness"`
	InfoEquality     float64 `json:"infoEquality"`
	DynamicsOverlap  float64 `json:"dynamicsOverlap"`
	CrossDomainBonus float64 `json:"crossDomainBonus"`
	SimilarityBlend  float64 `json:"similarityBlend"` // vs. success probability
	SuccessBlend     float64 `json:"successBlend"`
}

// DefaultWeights returns the historical calibration: 0.25 per structural
// factor, 0.6/0.4 ranking blend.
func DefaultWeights() Weights {
	return Weights{
		PlayerCloseness:  0.25,
		InfoEquality:     0.25,
		DynamicsOverlap:  0.25,
		CrossDomainBonus: 0.25,
		SimilarityBlend:  0.6,
		SuccessBlend:     0.4,
	}
}

// Signature is the structural fingerprint of a scenario
type Signature struct {
	PlayerCount      int                        `json:"playerCount"`
	InformationClass knowledge.InfoAvailability `json:"informationClass"`
	PayoffStructure  string                     `json:"payoffStructure"`
	StakeholderCount int                        `json:"stakeholderCount"`
	ActionSpaceSize  int                        `json:"actionSpaceSize"`
	Fingerprint      knowledge.Fingerprint      `json:"domainFingerprint"`
	AbstractionLevel int                        `json:"abstractionLevel"`
}

// AbstractionInsights summarizes what the abstraction level surfaced
type AbstractionInsights struct {
	AbstractionLevel int                 `json:"abstractionLevel"`
	EmergentThemes   []string            `json:"emergentThemes"`
	DomainClusters   map[string][]string `json:"domainClusters"`
}

// MetaPatternRecognition reports recurring dynamics across returned analogies
type MetaPatternRecognition struct {
	DominantDynamics  []string `json:"dominantDynamics"`
	CrossDomainSpread int      `json:"crossDomainSpread"`
}

// Discovery is the pattern-mining payload of a response
type Discovery struct {
	Analogies              []strategy.Analogy     `json:"analogies"`
	AbstractionInsights    AbstractionInsights    `json:"abstractionInsights"`
	MetaPatternRecognition MetaPatternRecognition `json:"metaPatternRecognition"`
}

// Recommendation is one caller-facing strategic suggestion derived from a
// returned analogy
type Recommendation struct {
	SourceDomain string  `json:"sourceDomain"`
	Pattern      string  `json:"pattern"`
	Strategy     string  `json:"strategy"`
	Rationale    string  `json:"rationale"`
	Confidence   float64 `json:"confidence"`
}

// Metadata makes a response auditable
type Metadata struct {
	Signature           Signature `json:"scenarioSignature"`
	DomainsSearched     []string  `json:"domainsSearched"`
	PatternsEvaluated   int       `json:"patternsEvaluated"`
	SimilarityThreshold float64   `json:"similarityThreshold"`
	Reliability         float64   `json:"reliability"`
}

// Result is the full discovery response
type Result struct {
	RunID                    core.RunID       `json:"runId"`
	PatternDiscovery         Discovery        `json:"patternDiscovery"`
	StrategicRecommendations []Recommendation `json:"strategicRecommendations"`
	AnalysisMetadata         Metadata         `json:"analysisMetadata"`
}
