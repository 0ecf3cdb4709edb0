// Package recalibration implements the dynamic recalibration engine: a
// stable/recalibrating cycle over a caller-owned strategy record, driven by
// change-detection triggers and Bayesian belief updating.
package recalibration

import (
	"context"
	"math"

	"github.com/montanaflynn/stats"

	"stratcore/domain/core"
	"stratcore/domain/strategy"
	"stratcore/internal"
)

// Engine runs recalibration cycles. Stateless per invocation: the belief
// store lives with the caller between cycles.
type Engine struct {
	log *internal.Logger
	now func() core.Timestamp
}

// NewEngine wires the engine.
func NewEngine(log *internal.Logger) *Engine {
	return &Engine{log: log.With("recalibration"), now: core.Now}
}

// WithClock overrides the time source, for deterministic tests.
func (e *Engine) WithClock(now func() core.Timestamp) *Engine {
	e.now = now
	return e
}

// Recalibrate evaluates the configured triggers against the new evidence
// batch. When none fire, the input beliefs are returned untouched and no
// recommendations are produced. When at least one fires, beliefs are
// Bayesian-updated and the recommendation set is recomputed from scratch.
func (e *Engine) Recalibrate(ctx context.Context, req Request) (*Result, error) {
	_ = ctx // no I/O: the belief store is owned and persisted by the caller

	now := e.now()
	triggers := req.Config.Triggers
	if len(triggers) == 0 {
		triggers = strategy.DefaultTriggers()
	}

	evaluations := evaluateTriggers(req, triggers, now)
	var fired []strategy.TriggerType
	for _, eval := range evaluations {
		if eval.Fired {
			fired = append(fired, eval.Type)
		}
	}

	hours := hoursSince(req.CurrentStrategy.LastUpdate, now)

	if len(fired) == 0 {
		return &Result{
			RunID:              req.RunID,
			ShouldRecalibrate:  false,
			TriggeredBy:        []strategy.TriggerType{},
			TriggerEvaluations: evaluations,
			UpdatedBeliefs:     req.CurrentStrategy.Beliefs,
			NewRecommendations: []strategy.Recommendation{},
			AdaptationMetrics: Metrics{
				EvidenceQuality:      evidenceQuality(req.NewInformation),
				HoursSinceLastUpdate: hours,
			},
			RiskAssessment: RiskSummary{Level: "low", Reasons: []string{"no trigger fired"}},
		}, nil
	}

	e.log.Debug("run %s recalibrating: triggers %v", req.RunID, fired)

	updated := updateBeliefs(req.CurrentStrategy.Beliefs, req.NewInformation, req.Config.AdaptationRate, now)
	recommendations := recomputeRecommendations(req.CurrentStrategy.Actions, updated, req.Config, req.Constraints, now)

	metrics := computeMetrics(req, updated, recommendations, hours)

	return &Result{
		RunID:              req.RunID,
		ShouldRecalibrate:  true,
		TriggeredBy:        fired,
		TriggerEvaluations: evaluations,
		UpdatedBeliefs:     updated,
		NewRecommendations: recommendations,
		AdaptationMetrics:  metrics,
		RiskAssessment:     assessCycleRisk(metrics, recommendations),
	}, nil
}

// computeMetrics quantifies how far the cycle moved beliefs and strategy.
func computeMetrics(req Request, updated []strategy.Belief, recommendations []strategy.Recommendation, hours float64) Metrics {
	var beliefDeltas, confDeltas []float64
	for i, before := range req.CurrentStrategy.Beliefs {
		if i >= len(updated) {
			break
		}
		scale := math.Abs(before.Posterior.Mean)
		if scale < 1e-9 {
			scale = 1
		}
		beliefDeltas = append(beliefDeltas, math.Abs(updated[i].Posterior.Mean-before.Posterior.Mean)/scale)
		confDeltas = append(confDeltas, updated[i].Posterior.Confidence-before.Posterior.Confidence)
	}

	expectedByAction := make(map[string]float64, len(req.CurrentStrategy.Actions))
	for _, action := range req.CurrentStrategy.Actions {
		expectedByAction[action.ID] = action.ExpectedValue
	}
	var strategyDeltas []float64
	for _, rec := range recommendations {
		old := expectedByAction[rec.ActionID]
		scale := math.Abs(old)
		if scale < 1e-9 {
			scale = 1
		}
		strategyDeltas = append(strategyDeltas, math.Abs(rec.ExpectedValue-old)/scale)
	}

	return Metrics{
		BeliefChangeMagnitude:   meanOrZero(beliefDeltas),
		StrategyChangeMagnitude: meanOrZero(strategyDeltas),
		EvidenceQuality:         evidenceQuality(req.NewInformation),
		HoursSinceLastUpdate:    hours,
		ConfidenceImprovement:   meanOrZero(confDeltas),
	}
}

// assessCycleRisk classifies the recalibration from the magnitude of change
// and presence of high-risk recommendations.
func assessCycleRisk(metrics Metrics, recommendations []strategy.Recommendation) RiskSummary {
	var reasons []string
	highRiskRecs := false
	for _, rec := range recommendations {
		if rec.HighRisk() {
			highRiskRecs = true
			break
		}
	}

	if metrics.StrategyChangeMagnitude > 0.5 {
		reasons = append(reasons, "large strategy shift in a single cycle")
	}
	if highRiskRecs {
		reasons = append(reasons, "recommendation set includes high-risk actions")
	}
	if metrics.EvidenceQuality < 0.5 {
		reasons = append(reasons, "majority of evidence is low reliability")
	}

	level := "low"
	switch {
	case metrics.StrategyChangeMagnitude > 0.5 && highRiskRecs:
		level = "high"
	case len(reasons) > 0:
		level = "medium"
	}
	return RiskSummary{Level: level, Reasons: reasons}
}

func evidenceQuality(evidence []strategy.Evidence) float64 {
	if len(evidence) == 0 {
		return 0
	}
	indicators := make([]float64, len(evidence))
	for i, ev := range evidence {
		if ev.Reliable() {
			indicators[i] = 1
		}
	}
	quality, err := stats.Mean(indicators)
	if err != nil {
		return 0
	}
	return quality
}

func meanOrZero(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}
