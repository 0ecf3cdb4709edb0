package recalibration

import (
	"math"

	"github.com/montanaflynn/stats"

	"stratcore/domain/core"
	"stratcore/domain/strategy"
)

const (
	// Evidence counts saturating each counting trigger.
	informationSaturation = 5.0
	shockSaturation       = 2.0

	// Hours over which staleness alone reaches full strength.
	decayHorizonHours = 24.0
)

// evaluateTriggers computes each configured trigger's strength against the
// incoming evidence batch and current performance picture.
func evaluateTriggers(req Request, triggers []strategy.Trigger, now core.Timestamp) []TriggerEvaluation {
	evaluations := make([]TriggerEvaluation, 0, len(triggers))
	for _, trig := range triggers {
		strength := triggerStrength(trig, req, now)
		evaluations = append(evaluations, TriggerEvaluation{
			Type:      trig.Type,
			Strength:  strength,
			Threshold: trig.Threshold,
			Fired:     strength >= trig.Threshold,
		})
	}
	return evaluations
}

func triggerStrength(trig strategy.Trigger, req Request, now core.Timestamp) float64 {
	sensitivity := trig.Sensitivity
	if sensitivity <= 0 {
		sensitivity = 1
	}

	switch trig.Type {
	case strategy.TriggerInformationUpdate:
		reliable := 0
		for _, ev := range req.NewInformation {
			if ev.Reliable() {
				reliable++
			}
		}
		return clamp01(float64(reliable) * sensitivity / informationSaturation)

	case strategy.TriggerTimeDecay:
		hours := hoursSince(req.CurrentStrategy.LastUpdate, now)
		return clamp01(hours / decayHorizonHours * sensitivity)

	case strategy.TriggerPerformanceDeviation:
		var deviations []float64
		for _, action := range req.CurrentStrategy.Actions {
			if action.ActualPerformance == nil {
				continue
			}
			deviations = append(deviations, math.Abs(*action.ActualPerformance-1.0))
		}
		if len(deviations) == 0 {
			return 0
		}
		mad, err := stats.Mean(deviations)
		if err != nil {
			return 0
		}
		return clamp01(mad * sensitivity)

	case strategy.TriggerExternalShock:
		shocks := 0
		for _, ev := range req.NewInformation {
			if ev.HighImpact() {
				shocks++
			}
		}
		return clamp01(float64(shocks) * sensitivity / shockSaturation)

	default:
		return 0
	}
}

func hoursSince(last, now core.Timestamp) float64 {
	if last.IsZero() {
		return 0
	}
	return now.Sub(last).Hours()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
