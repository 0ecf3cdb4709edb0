package recalibration

import (
	"math"
	"sort"
	"strings"
	"time"

	"stratcore/domain/core"
	"stratcore/domain/strategy"
)

const (
	// Validity windows range from the floor (beliefs barely trusted) to
	// floor+span (fully trusted).
	validityFloorHours = 6.0
	validitySpanHours  = 42.0

	// Risk scaling from mean belief variance.
	varianceRiskScale = 0.5

	// Base half-width of the "no change" band, widened by conservatism.
	changeBandBase        = 0.05
	changeBandPerBias     = 0.15
	highRiskReasonCutoff  = 0.6
	lowConfidenceCutoff   = 0.4
	defaultMaxChanges     = 10
	partialRelevanceScore = 0.5
)

// recomputeRecommendations derives a fresh prioritized recommendation set
// from the updated beliefs. Each cycle's output supersedes the previous one.
func recomputeRecommendations(actions []strategy.StrategyAction, beliefs []strategy.Belief, cfg Config, constraints Constraints, now core.Timestamp) []strategy.Recommendation {
	minConfidence := minBeliefConfidence(beliefs)
	windowHours := validityFloorHours + validitySpanHours*minConfidence
	window := core.ValidityWindow{
		Start: now,
		End:   now.Add(time.Duration(windowHours * float64(time.Hour))),
	}

	recommendations := make([]strategy.Recommendation, 0, len(actions))
	for _, action := range actions {
		rec := scoreAction(action, beliefs, cfg)
		rec.ValidityWindow = window
		if rec.Confidence < constraints.MinConfidenceThreshold {
			continue
		}
		recommendations = append(recommendations, rec)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority > recommendations[j].Priority
	})

	maxChanges := constraints.MaxStrategyChanges
	if maxChanges <= 0 {
		maxChanges = defaultMaxChanges
	}
	if len(recommendations) > maxChanges {
		recommendations = recommendations[:maxChanges]
	}
	return recommendations
}

// scoreAction computes the belief-weighted expected value, confidence, risk
// and priority for one action.
func scoreAction(action strategy.StrategyAction, beliefs []strategy.Belief, cfg Config) strategy.Recommendation {
	var (
		weightedValue float64
		totalRelev    float64
		confSum       float64
		varianceSum   float64
		relevantCount int
	)
	for _, belief := range beliefs {
		relevance := beliefRelevance(belief, action)
		if relevance == 0 {
			continue
		}
		weightedValue += belief.Posterior.Mean * belief.Posterior.Confidence * relevance
		totalRelev += relevance
		confSum += belief.Posterior.Confidence
		varianceSum += belief.Posterior.Variance
		relevantCount++
	}

	expectedValue := action.ExpectedValue
	confidence := 0.5
	risk := 0.5
	if relevantCount > 0 {
		expectedValue = weightedValue / totalRelev
		confidence = confSum / float64(relevantCount)
		risk = clamp01(varianceSum / float64(relevantCount) * varianceRiskScale)
	}

	priority := expectedValue * confidence * (1 - risk)

	return strategy.Recommendation{
		ActionID:         action.ID,
		Priority:         priority,
		Confidence:       confidence,
		ExpectedValue:    expectedValue,
		RiskLevel:        risk,
		AdaptationReason: classifyChange(action.ExpectedValue, expectedValue, confidence, risk, cfg.ConservatismBias),
	}
}

// beliefRelevance scores how much a belief bears on an action: explicit
// listing counts fully, token overlap with the action text counts partially.
func beliefRelevance(belief strategy.Belief, action strategy.StrategyAction) float64 {
	for _, name := range action.RelevantBeliefs {
		if strings.EqualFold(name, belief.Parameter) {
			return 1
		}
	}
	tokens := parameterTokens(belief.Parameter)
	text := strings.ToLower(action.ID + " " + action.Description)
	for tok := range tokens {
		if strings.Contains(text, tok) {
			return partialRelevanceScore
		}
	}
	return 0
}

// classifyChange labels why a recommendation differs from the prior cycle.
// The no-change band widens with the caller's conservatism bias.
func classifyChange(oldValue, newValue, confidence, risk, conservatismBias float64) string {
	band := changeBandBase + changeBandPerBias*clamp01(conservatismBias)
	switch {
	case risk >= highRiskReasonCutoff:
		return "high risk: underlying beliefs remain volatile"
	case confidence < lowConfidenceCutoff:
		return "low confidence: supporting beliefs are weakly held"
	}

	denom := math.Abs(oldValue)
	if denom < 1e-9 {
		denom = 1
	}
	relative := (newValue - oldValue) / denom
	switch {
	case relative > band:
		return "expected value increased under updated beliefs"
	case relative < -band:
		return "expected value decreased under updated beliefs"
	case math.Abs(relative) < band/2:
		return "no significant change"
	default:
		return "minor adjustment"
	}
}

func minBeliefConfidence(beliefs []strategy.Belief) float64 {
	if len(beliefs) == 0 {
		return 0
	}
	minConf := 1.0
	for _, b := range beliefs {
		if b.Posterior.Confidence < minConf {
			minConf = b.Posterior.Confidence
		}
	}
	return clamp01(minConf)
}
