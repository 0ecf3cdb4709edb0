package symmetry

import (
	"context"
	"reflect"
	"testing"

	"stratcore/adapters/knowledge"
	dk "stratcore/domain/knowledge"
	"stratcore/internal"
)

func testEngine() *Engine {
	return NewEngine(knowledge.NewCatalogue(), nil, 0.6, internal.NewLogger(internal.LogLevelError))
}

// militaryShapedScenario matches the indirect-approach pattern on every
// structural factor.
func militaryShapedScenario() Scenario {
	return Scenario{
		Title:       "Contested market entry",
		Description: "Challenger probing an entrenched incumbent",
		Domain:      "business",
		StrategicElements: Elements{
			PlayerCount:      2,
			InformationAvail: dk.InfoLimited,
			PayoffStructure:  "deception asymmetry maneuver surprise",
		},
	}
}

func TestDiscover_FindsCrossDomainAnalogies(t *testing.T) {
	result, err := testEngine().Discover(context.Background(), "run-1", militaryShapedScenario(), Config{})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}

	analogies := result.PatternDiscovery.Analogies
	if len(analogies) == 0 {
		t.Fatal("expected at least one analogy")
	}
	if analogies[0].StructuralMatch.PatternName != "Indirect Approach" {
		t.Errorf("expected Indirect Approach first, got %s", analogies[0].StructuralMatch.PatternName)
	}
	if analogies[0].SourceDomain != "military" {
		t.Errorf("expected military source, got %s", analogies[0].SourceDomain)
	}
	for _, a := range analogies {
		if a.StructuralSimilarity < 0 || a.StructuralSimilarity > 1 {
			t.Errorf("%s: similarity %f outside [0,1]", a.StructuralMatch.PatternName, a.StructuralSimilarity)
		}
		if a.TargetDomain != "business" {
			t.Errorf("%s: target domain %s", a.StructuralMatch.PatternName, a.TargetDomain)
		}
	}
	if result.AnalysisMetadata.PatternsEvaluated == 0 {
		t.Error("expected evaluated pattern count in metadata")
	}
}

func TestDiscover_RankedByBlendedScore(t *testing.T) {
	engine := testEngine()
	result, err := engine.Discover(context.Background(), "run-1", militaryShapedScenario(), Config{SimilarityThreshold: 0.3})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	analogies := result.PatternDiscovery.Analogies
	w := engine.weights
	for i := 1; i < len(analogies); i++ {
		prev := analogies[i-1].BlendedScore(w.SimilarityBlend, w.SuccessBlend)
		curr := analogies[i].BlendedScore(w.SimilarityBlend, w.SuccessBlend)
		if prev < curr {
			t.Errorf("analogies out of order at %d: %f before %f", i, prev, curr)
		}
	}
}

func TestDiscover_EmptyScenarioDegrades(t *testing.T) {
	result, err := testEngine().Discover(context.Background(), "run-1", Scenario{}, Config{})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if len(result.PatternDiscovery.Analogies) != 0 {
		t.Errorf("expected zero analogies, got %d", len(result.PatternDiscovery.Analogies))
	}
	if result.AnalysisMetadata.Reliability != degradedReliability {
		t.Errorf("expected degraded reliability %f, got %f", degradedReliability, result.AnalysisMetadata.Reliability)
	}
}

func TestDiscover_SameDomainNeedsHighAbstraction(t *testing.T) {
	scenario := militaryShapedScenario()
	scenario.Domain = "military"
	cfg := Config{DomainsToSearch: []string{"military"}}

	result, err := testEngine().Discover(context.Background(), "run-1", scenario, cfg)
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if result.AnalysisMetadata.PatternsEvaluated != 0 {
		t.Errorf("expected no same-domain patterns evaluated at default abstraction, got %d",
			result.AnalysisMetadata.PatternsEvaluated)
	}

	cfg.AbstractionLevel = 9
	result, err = testEngine().Discover(context.Background(), "run-1", scenario, cfg)
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if result.AnalysisMetadata.PatternsEvaluated == 0 {
		t.Error("expected same-domain patterns evaluated at abstraction 9")
	}
}

func TestDiscover_MaxAnalogiesCap(t *testing.T) {
	cfg := Config{MaxAnalogies: 1, SimilarityThreshold: 0.3}
	result, err := testEngine().Discover(context.Background(), "run-1", militaryShapedScenario(), cfg)
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if len(result.PatternDiscovery.Analogies) > 1 {
		t.Errorf("expected at most 1 analogy, got %d", len(result.PatternDiscovery.Analogies))
	}
}

func TestDiscover_Deterministic(t *testing.T) {
	first, err := testEngine().Discover(context.Background(), "run-1", militaryShapedScenario(), Config{})
	if err != nil {
		t.Fatalf("first discover failed: %v", err)
	}
	second, err := testEngine().Discover(context.Background(), "run-1", militaryShapedScenario(), Config{})
	if err != nil {
		t.Fatalf("second discover failed: %v", err)
	}
	if !reflect.DeepEqual(first.PatternDiscovery.Analogies, second.PatternDiscovery.Analogies) {
		t.Error("identical scenario produced different analogy sets")
	}
}

func TestTokenOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical concepts", "deception maneuver", "maneuver deception", 1},
		{"disjoint concepts", "deception", "tempo initiative", 0},
		{"no recognized concepts", "synergy paradigm", "deception", 0},
		{"partial overlap", "deception maneuver", "deception tempo", 1.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tokenOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("tokenOverlap(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
