package transfer

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"stratcore/adapters/knowledge"
	"stratcore/domain/core"
	"stratcore/internal"
)

func testEngine(cfg Config) *Engine {
	return NewEngine(cfg, knowledge.NewCatalogue(), nil, internal.NewLogger(internal.LogLevelError))
}

func indirectApproachRequest(target string) Request {
	catalogue := knowledge.NewCatalogue()
	patterns, _ := catalogue.Lookup("military")
	var req Request
	req.RunID = "run-1"
	req.TargetDomain = target
	for _, p := range patterns {
		if p.Name == "Indirect Approach" {
			req.SourceStrategy = SourceStrategy{Pattern: p, Performance: 0.7}
			return req
		}
	}
	panic("indirect approach pattern missing from catalogue")
}

func TestTransfer_MissingTargetDomain(t *testing.T) {
	req := indirectApproachRequest("")
	_, err := testEngine(Config{}).Transfer(context.Background(), req)
	if !core.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTransfer_UnknownTargetDomain(t *testing.T) {
	req := indirectApproachRequest("astrology")
	_, err := testEngine(Config{}).Transfer(context.Background(), req)
	if !core.IsNotFoundError(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestTransfer_AdaptsVocabularyAndPacing(t *testing.T) {
	req := indirectApproachRequest("sports")
	result, err := testEngine(Config{}).Transfer(context.Background(), req)
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	adapted := result.AdaptedStrategy
	if adapted.SourceDomain != "sports" {
		t.Errorf("expected adapted domain sports, got %s", adapted.SourceDomain)
	}
	if !strings.Contains(adapted.Name, "adapted for sports") {
		t.Errorf("expected adapted name marker, got %q", adapted.Name)
	}
	if !strings.Contains(adapted.CoreLogic, "plan for immediate-term execution rather than medium-term") {
		t.Errorf("expected re-pacing note in core logic, got %q", adapted.CoreLogic)
	}
	if adapted.TransferabilityScore >= req.SourceStrategy.Pattern.TransferabilityScore {
		t.Errorf("expected adaptation penalty on transferability: %f >= %f",
			adapted.TransferabilityScore, req.SourceStrategy.Pattern.TransferabilityScore)
	}
	if len(result.AdaptationProtocol) != 4 {
		t.Errorf("expected 4 protocol phases, got %d", len(result.AdaptationProtocol))
	}
	if result.SuccessPrediction < 0.1 || result.SuccessPrediction > 0.95 {
		t.Errorf("success prediction %f outside clamp band", result.SuccessPrediction)
	}
}

func TestTransfer_ShortCircuitBelowGate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FeasibilityGate = 0.99

	req := indirectApproachRequest("sports")
	result, err := testEngine(cfg).Transfer(context.Background(), req)
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	if !reflect.DeepEqual(result.AdaptedStrategy, req.SourceStrategy.Pattern) {
		t.Error("short-circuit must return the source pattern unmodified")
	}
	if len(result.AdaptationProtocol) != 0 {
		t.Errorf("short-circuit must return an empty protocol, got %d phases", len(result.AdaptationProtocol))
	}
	if result.RiskAssessment.Level != RiskHigh {
		t.Errorf("expected high risk, got %s", result.RiskAssessment.Level)
	}
	if result.SuccessPrediction != cfg.ShortCircuitScore {
		t.Errorf("expected fixed score %f, got %f", cfg.ShortCircuitScore, result.SuccessPrediction)
	}
	if result.ImplementationPlan.Feasible {
		t.Error("short-circuit plan must be marked infeasible")
	}
}

func TestTransfer_TimeBudgetIsHardGate(t *testing.T) {
	req := indirectApproachRequest("sports")
	req.Constraints.TimeToImplementHours = 10

	result, err := testEngine(Config{}).Transfer(context.Background(), req)
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if result.ImplementationPlan.Feasible {
		t.Error("expected infeasible plan when protocol exceeds time budget")
	}
	if result.ImplementationPlan.TotalHours <= req.Constraints.TimeToImplementHours {
		t.Errorf("expected total hours above budget, got %f", result.ImplementationPlan.TotalHours)
	}
	if result.ImplementationPlan.Recommendation == "" {
		t.Error("expected a recommendation explaining the overrun")
	}
}

func TestTransfer_FeasibilityBounded(t *testing.T) {
	catalogue := knowledge.NewCatalogue()
	for _, target := range catalogue.Domains() {
		req := indirectApproachRequest(target)
		result, err := testEngine(Config{}).Transfer(context.Background(), req)
		if err != nil {
			t.Fatalf("transfer to %s failed: %v", target, err)
		}
		if result.TransferFeasibility < 0 || result.TransferFeasibility > 1 {
			t.Errorf("%s: feasibility %f outside [0,1]", target, result.TransferFeasibility)
		}
	}
}
