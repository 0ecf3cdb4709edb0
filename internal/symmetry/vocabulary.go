package symmetry

import (
	"strings"
)

// strategicVocabulary is the fixed set of concepts recognized when comparing
// a scenario's payoff-structure label against a pattern's strategic-dynamics
// label. Tokens outside the vocabulary are ignored so free-text noise cannot
// inflate overlap scores.
var strategicVocabulary = map[string]bool{
	"cooperation":         true,
	"competition":         true,
	"deception":           true,
	"maneuver":            true,
	"asymmetry":           true,
	"surprise":            true,
	"attrition":           true,
	"patience":            true,
	"counterattack":       true,
	"resilience":          true,
	"incentive":           true,
	"innovation":          true,
	"network_effects":     true,
	"aggregation":         true,
	"leverage":            true,
	"bargaining":          true,
	"commitment":          true,
	"payoff_division":     true,
	"framing":             true,
	"sequencing":          true,
	"information_control": true,
	"tempo":               true,
	"initiative":          true,
	"conditioning":        true,
	"disruption":          true,
	"exploitation":        true,
	"focus":               true,
	"selection":           true,
	"specialization":      true,
	"avoidance":           true,
	"differentiation":     true,
	"signaling":           true,
	"deterrence":          true,
	"credibility":         true,
	"zero_sum":            true,
	"positive_sum":        true,
	"mixed_motive":        true,
}

// recognizedTokens tokenizes a label and keeps only vocabulary concepts.
func recognizedTokens(label string) map[string]bool {
	out := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(label)) {
		tok = strings.Trim(tok, ",.;:")
		if strategicVocabulary[tok] {
			out[tok] = true
		}
	}
	return out
}

// tokenOverlap computes Jaccard similarity between the recognized concept
// sets of two labels. Both empty yields 0, not 1: no recognized concepts
// means no evidence of shared dynamics.
func tokenOverlap(a, b string) float64 {
	setA := recognizedTokens(a)
	setB := recognizedTokens(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for tok := range setA {
		if setB[tok] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}
