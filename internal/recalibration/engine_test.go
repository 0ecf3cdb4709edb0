package recalibration

import (
	"context"
	"reflect"
	"testing"
	"time"

	"stratcore/domain/core"
	"stratcore/domain/strategy"
	"stratcore/internal"
)

var testNow = core.NewTimestamp(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

func testEngine() *Engine {
	return NewEngine(internal.NewLogger(internal.LogLevelError)).WithClock(func() core.Timestamp { return testNow })
}

func baseRequest() Request {
	return Request{
		RunID: "run-1",
		CurrentStrategy: CurrentStrategy{
			Actions: []strategy.StrategyAction{
				{ID: "expand", Description: "expand into the adjacent market", ExpectedValue: 1.0, RelevantBeliefs: []string{"market_demand"}},
			},
			Beliefs: []strategy.Belief{
				{
					Parameter: "market_demand",
					Prior:     strategy.Distribution{Mean: 0.5, Variance: 0.2, Confidence: 0.6},
					Posterior: strategy.Distribution{Mean: 0.5, Variance: 0.2, Confidence: 0.6},
				},
			},
			LastUpdate: testNow,
		},
		Config: Config{AdaptationRate: 0.5},
	}
}

func reliableEvidence(n int) []strategy.Evidence {
	out := make([]strategy.Evidence, n)
	for i := range out {
		out[i] = strategy.Evidence{
			ID:          "ev-" + string(rune('a'+i)),
			Type:        "market_report",
			Content:     "market demand rising across the segment",
			Value:       0.8,
			Reliability: 0.9,
			Impact:      "medium",
			Timestamp:   testNow,
		}
	}
	return out
}

func TestRecalibrate_NoTriggerLeavesStrategyUntouched(t *testing.T) {
	req := baseRequest()

	result, err := testEngine().Recalibrate(context.Background(), req)
	if err != nil {
		t.Fatalf("recalibrate failed: %v", err)
	}
	if result.ShouldRecalibrate {
		t.Fatal("expected stable cycle with no evidence and a fresh update")
	}
	if !reflect.DeepEqual(result.UpdatedBeliefs, req.CurrentStrategy.Beliefs) {
		t.Error("stable cycle must return input beliefs unchanged")
	}
	if len(result.NewRecommendations) != 0 {
		t.Errorf("stable cycle must produce no recommendations, got %d", len(result.NewRecommendations))
	}
	if len(result.TriggerEvaluations) != len(strategy.DefaultTriggers()) {
		t.Errorf("expected %d trigger evaluations, got %d", len(strategy.DefaultTriggers()), len(result.TriggerEvaluations))
	}
}

func TestRecalibrate_ReliableEvidenceFiresInformationTrigger(t *testing.T) {
	req := baseRequest()
	req.NewInformation = reliableEvidence(3)

	result, err := testEngine().Recalibrate(context.Background(), req)
	if err != nil {
		t.Fatalf("recalibrate failed: %v", err)
	}
	if !result.ShouldRecalibrate {
		t.Fatal("expected recalibration with 3 reliable evidence items")
	}

	fired := false
	for _, typ := range result.TriggeredBy {
		if typ == strategy.TriggerInformationUpdate {
			fired = true
		}
	}
	if !fired {
		t.Errorf("expected information_update among %v", result.TriggeredBy)
	}

	before := req.CurrentStrategy.Beliefs[0]
	after := result.UpdatedBeliefs[0]
	if after.Posterior.Variance >= before.Posterior.Variance {
		t.Errorf("expected variance to shrink: %f -> %f", before.Posterior.Variance, after.Posterior.Variance)
	}
	if after.Posterior.Mean <= before.Posterior.Mean {
		t.Errorf("expected mean pulled toward observations: %f -> %f", before.Posterior.Mean, after.Posterior.Mean)
	}
	if len(after.UpdateHistory) != len(before.UpdateHistory)+3 {
		t.Errorf("expected 3 new history entries, got %d", len(after.UpdateHistory)-len(before.UpdateHistory))
	}
	if len(result.NewRecommendations) == 0 {
		t.Error("expected a recomputed recommendation set")
	}
}

func TestRecalibrate_InputBeliefsNeverMutated(t *testing.T) {
	req := baseRequest()
	req.NewInformation = reliableEvidence(3)
	original := strategy.CloneBeliefs(req.CurrentStrategy.Beliefs)

	if _, err := testEngine().Recalibrate(context.Background(), req); err != nil {
		t.Fatalf("recalibrate failed: %v", err)
	}
	if !reflect.DeepEqual(req.CurrentStrategy.Beliefs, original) {
		t.Error("engine mutated caller-owned beliefs")
	}
}

func TestRecalibrate_StaleStrategyFiresTimeDecay(t *testing.T) {
	req := baseRequest()
	req.CurrentStrategy.LastUpdate = testNow.Add(-30 * time.Hour)

	result, err := testEngine().Recalibrate(context.Background(), req)
	if err != nil {
		t.Fatalf("recalibrate failed: %v", err)
	}
	if !result.ShouldRecalibrate {
		t.Fatal("expected time decay to fire after 30 hours")
	}

	// No relevant evidence: idle decay only, no history entries.
	after := result.UpdatedBeliefs[0]
	if len(after.UpdateHistory) != 0 {
		t.Errorf("idle decay must not append history, got %d entries", len(after.UpdateHistory))
	}
	if after.Posterior.Confidence >= 0.6 {
		t.Errorf("expected confidence decay below 0.6, got %f", after.Posterior.Confidence)
	}
	if after.Posterior.Variance <= 0.2 {
		t.Errorf("expected variance growth above 0.2, got %f", after.Posterior.Variance)
	}
	if result.AdaptationMetrics.HoursSinceLastUpdate != 30 {
		t.Errorf("expected 30 hours since update, got %f", result.AdaptationMetrics.HoursSinceLastUpdate)
	}
}

func TestRecalibrate_PerformanceDeviationTrigger(t *testing.T) {
	req := baseRequest()
	actual := 0.5
	req.CurrentStrategy.Actions[0].ActualPerformance = &actual

	result, err := testEngine().Recalibrate(context.Background(), req)
	if err != nil {
		t.Fatalf("recalibrate failed: %v", err)
	}
	if !result.ShouldRecalibrate {
		t.Fatal("expected performance deviation of 0.5 to fire")
	}
}

func TestRecalibrate_ConfidenceThresholdPrunesRecommendations(t *testing.T) {
	req := baseRequest()
	req.NewInformation = reliableEvidence(3)
	req.Constraints.MinConfidenceThreshold = 0.99

	result, err := testEngine().Recalibrate(context.Background(), req)
	if err != nil {
		t.Fatalf("recalibrate failed: %v", err)
	}
	if len(result.NewRecommendations) != 0 {
		t.Errorf("expected all recommendations pruned, got %d", len(result.NewRecommendations))
	}
}

func TestUpdateBeliefs_RepeatedEvidenceMonotonicallyShrinksVariance(t *testing.T) {
	beliefs := []strategy.Belief{{
		Parameter: "market_demand",
		Posterior: strategy.Distribution{Mean: 0.5, Variance: 0.3, Confidence: 0.5},
	}}

	variance := beliefs[0].Posterior.Variance
	for cycle := 0; cycle < 4; cycle++ {
		beliefs = updateBeliefs(beliefs, reliableEvidence(1), 0.5, testNow)
		next := beliefs[0].Posterior.Variance
		if next >= variance {
			t.Fatalf("cycle %d: variance did not shrink (%f -> %f)", cycle, variance, next)
		}
		variance = next
	}
}
