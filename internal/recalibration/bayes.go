package recalibration

import (
	"math"
	"strings"

	"stratcore/domain/core"
	"stratcore/domain/strategy"
)

const (
	// Evidence precision scales linearly with reliability.
	reliabilityPrecisionScale = 10.0

	// Decay applied to beliefs untouched by relevant evidence.
	idleConfidenceDecay = 0.98
	idleVarianceGrowth  = 1.05

	// How strongly information gain lifts confidence.
	confidenceGainScale = 0.15
)

// updateBeliefs runs the precision-weighted Bayesian update over every
// belief. The jump from prior to fused posterior is moderated by the
// adaptation rate rather than taken fully. Beliefs with no relevant evidence
// get a small confidence/variance decay and no history entry.
func updateBeliefs(beliefs []strategy.Belief, evidence []strategy.Evidence, adaptationRate float64, now core.Timestamp) []strategy.Belief {
	if adaptationRate <= 0 || adaptationRate > 1 {
		adaptationRate = 0.5
	}

	updated := strategy.CloneBeliefs(beliefs)
	for i := range updated {
		relevant := relevantEvidence(updated[i].Parameter, evidence)
		if len(relevant) == 0 {
			updated[i].Posterior.Confidence *= idleConfidenceDecay
			updated[i].Posterior.Variance *= idleVarianceGrowth
			continue
		}
		updateBelief(&updated[i], relevant, adaptationRate, now)
	}
	return updated
}

// updateBelief fuses relevant observations into one belief. The current
// posterior becomes the prior of this cycle; each observation is folded in
// sequentially.
func updateBelief(b *strategy.Belief, relevant []strategy.Evidence, adaptationRate float64, now core.Timestamp) {
	b.Prior = b.Posterior
	current := b.Posterior

	for _, ev := range relevant {
		obsPrecision := ev.Reliability * reliabilityPrecisionScale
		if obsPrecision <= 0 {
			continue
		}
		priorPrecision := current.Precision()
		fusedPrecision := priorPrecision + obsPrecision
		fusedMean := (priorPrecision*current.Mean + obsPrecision*ev.Value) / fusedPrecision
		fusedVariance := 1 / fusedPrecision

		next := strategy.Distribution{
			Mean:       current.Mean + adaptationRate*(fusedMean-current.Mean),
			Variance:   current.Variance + adaptationRate*(fusedVariance-current.Variance),
			Confidence: current.Confidence,
		}

		gain := gaussianKL(next, current)
		next.Confidence = clamp01(current.Confidence + confidenceGainScale*gain/(1+gain))

		b.UpdateHistory = append(b.UpdateHistory, strategy.BeliefUpdate{
			Timestamp:       now,
			Evidence:        ev.ID,
			InformationGain: gain,
		})
		current = next
	}
	b.Posterior = current
}

// relevantEvidence selects items whose content shares a token with the
// belief's parameter name.
func relevantEvidence(parameter string, evidence []strategy.Evidence) []strategy.Evidence {
	tokens := parameterTokens(parameter)
	if len(tokens) == 0 {
		return nil
	}
	var relevant []strategy.Evidence
	for _, ev := range evidence {
		content := strings.ToLower(ev.Content)
		for tok := range tokens {
			if strings.Contains(content, tok) {
				relevant = append(relevant, ev)
				break
			}
		}
	}
	return relevant
}

// parameterTokens splits a parameter name like "market_share_growth" into
// comparable lowercase tokens, dropping short connectives.
func parameterTokens(parameter string) map[string]bool {
	cleaned := strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(strings.ToLower(parameter))
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) >= 3 {
			tokens[tok] = true
		}
	}
	return tokens
}

// gaussianKL approximates the information gained moving from distribution q
// to p, in nats. Degenerate variances fall back to a mean-shift proxy.
func gaussianKL(p, q strategy.Distribution) float64 {
	if p.Variance <= 0 || q.Variance <= 0 {
		diff := p.Mean - q.Mean
		return math.Abs(diff)
	}
	diff := p.Mean - q.Mean
	return math.Log(math.Sqrt(q.Variance/p.Variance)) +
		(p.Variance+diff*diff)/(2*q.Variance) - 0.5
}
