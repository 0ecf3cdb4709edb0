package symmetry

import (
	"fmt"
	"sort"

	"stratcore/domain/knowledge"
	"stratcore/domain/strategy"
)

// dynamicsSuggestions maps recognized dynamics keywords to adapted strategy
// suggestions. Order within a pattern follows its recognized keywords sorted,
// so output is deterministic.
var dynamicsSuggestions = map[string]string{
	"cooperation":         "Build a cooperative framework that locks in mutual gains before rivals can defect",
	"deception":           "Shape the opponent's picture of your intentions so their preparation lands elsewhere",
	"maneuver":            "Keep commitments reversible and reposition faster than opponents can respond",
	"asymmetry":           "Concentrate effort where your structural advantage is largest and refuse symmetric exchanges",
	"attrition":           "Adopt an endurance posture: trade minor positions for opponent momentum",
	"tempo":               "Dictate the pace of interaction so opponents spend resources adjusting rather than executing",
	"initiative":          "Move first on the axis of least resistance to force reactive play",
	"signaling":           "Invest in commitments expensive enough that weaker actors cannot credibly imitate them",
	"deterrence":          "Make the cost of challenging you visible before any challenge forms",
	"framing":             "Control which options reach the decision point and in what order",
	"sequencing":          "Order confrontations so each win makes the next cheaper",
	"information_control": "Restrict what opponents learn while widening your own collection",
	"specialization":      "Move to the underused axis of the contest where competition is thin",
	"differentiation":     "Reposition so head-on comparison with the strongest rival becomes irrelevant",
	"bargaining":          "Assemble the smallest sufficient coalition and price each member's loyalty explicitly",
	"exploitation":        "Force the one pairing where you hold a decisive edge, repeatedly",
	"counterattack":       "Absorb the first move and commit reserves only once the opponent is extended",
}

// buildSuggestions derives adapted strategy suggestions from a pattern's
// recognized dynamics keywords.
func buildSuggestions(pattern knowledge.StrategyPattern, scenario Scenario) []strategy.AdaptedSuggestion {
	tokens := recognizedTokens(pattern.StrategicDynamics)
	keys := make([]string, 0, len(tokens))
	for tok := range tokens {
		if _, ok := dynamicsSuggestions[tok]; ok {
			keys = append(keys, tok)
		}
	}
	sort.Strings(keys)

	out := make([]strategy.AdaptedSuggestion, 0, len(keys)+1)
	for _, key := range keys {
		out = append(out, strategy.AdaptedSuggestion{
			Strategy:  dynamicsSuggestions[key],
			Rationale: fmt.Sprintf("%s succeeded through %s dynamics structurally present in %q", pattern.Name, key, scenario.Title),
		})
	}
	if len(out) == 0 {
		out = append(out, strategy.AdaptedSuggestion{
			Strategy:  fmt.Sprintf("Adapt the core logic of %s to this scenario: %s", pattern.Name, pattern.CoreLogic),
			Rationale: "no individually recognized dynamics; transfer the pattern whole",
		})
	}
	return out
}

// buildGuidance fills the fixed implementation-guidance template.
func buildGuidance(pattern knowledge.StrategyPattern, scenario Scenario) strategy.ImplementationGuidance {
	g := strategy.ImplementationGuidance{
		ImmediateActions: []string{
			fmt.Sprintf("Map the actors in %q onto the roles of %s", scenario.Title, pattern.Name),
			"Verify the structural preconditions below before committing resources",
		},
		AdaptationSteps: append([]string{}, pattern.AdaptationRequirements...),
		RiskIndicators:  append([]string{}, pattern.FailureRisks...),
	}
	for _, cond := range pattern.SuccessConditions {
		g.SuccessConditionals = append(g.SuccessConditionals,
			fmt.Sprintf("Success probability near the historical %.0f%% only if: %s",
				pattern.HistoricalSuccessRate*100, cond))
	}
	return g
}

// metaPrinciples states the domain-independent lessons of a pattern.
func metaPrinciples(pattern knowledge.StrategyPattern) []string {
	principles := []string{
		fmt.Sprintf("The %s structure recurs wherever %s actors contend under %s information",
			pattern.StrategicDynamics, pattern.PlayerStructure, pattern.InformationalStructure),
	}
	if pattern.TransferabilityScore >= 0.75 {
		principles = append(principles, "Historically this pattern survives translation across domains with little loss")
	}
	return principles
}

// domainClusters is the static grouping used for display purposes.
var domainClusters = map[string][]string{
	"strategic":   {"military", "politics"},
	"competitive": {"business", "sports"},
	"adaptive":    {"evolution"},
}
