package strategy

import (
	"stratcore/domain/core"
	"stratcore/domain/knowledge"
)

// StructuralMatch carries the descriptors on which an analogy was scored
type StructuralMatch struct {
	PatternID              core.PatternID             `json:"patternId"`
	PatternName            string                     `json:"patternName"`
	PlayerStructure        knowledge.PlayerStructure  `json:"playerStructure"`
	StrategicDynamics      string                     `json:"strategicDynamics"`
	InformationalStructure knowledge.InfoAvailability `json:"informationalStructure"`
}

// AdaptedSuggestion re-expresses a matched pattern's strategy for the target scenario
type AdaptedSuggestion struct {
	Strategy  string `json:"strategy"`
	Rationale string `json:"rationale"`
}

// ImplementationGuidance is the fixed guidance template attached to each analogy
type ImplementationGuidance struct {
	ImmediateActions    []string `json:"immediateActions"`
	AdaptationSteps     []string `json:"adaptationSteps"`
	RiskIndicators      []string `json:"riskIndicators"`
	SuccessConditionals []string `json:"successConditionals"`
}

// Analogy is one ranked cross-domain structural match. Created per
// symmetry-mining call, never mutated after construction, discarded after
// the response unless the caller persists it.
type Analogy struct {
	SourceDomain            string                 `json:"sourceDomain"`
	TargetDomain            string                 `json:"targetDomain"`
	StructuralSimilarity    float64                `json:"structuralSimilarity"` // 0-1
	SuccessProbability      float64                `json:"successProbability"`   // historical rate of the matched pattern
	StructuralMatch         StructuralMatch        `json:"structuralMatch"`
	AnalogousStrategies     []AdaptedSuggestion    `json:"analogousStrategies"`
	MetaStrategicPrinciples []string               `json:"metaStrategicPrinciples"`
	ImplementationGuidance  ImplementationGuidance `json:"implementationGuidance"`
}

// BlendedScore ranks analogies by similarity blended with historical success.
func (a Analogy) BlendedScore(similarityWeight, successWeight float64) float64 {
	return similarityWeight*a.StructuralSimilarity + successWeight*a.SuccessProbability
}
