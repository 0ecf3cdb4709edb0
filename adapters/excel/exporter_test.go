package excel

import (
	"testing"

	"stratcore/domain/strategy"
	"stratcore/internal/sensitivity"
)

func TestBuildWorkbook_SheetsPerResultFamily(t *testing.T) {
	tornado := &sensitivity.Result{
		RunID: "run-1",
		Results: []sensitivity.TornadoResult{
			{Param: "demand", BaseValue: 100, AvgTopEV: 8.1, MinEV: 7.2, MaxEV: 8.8, RangeDelta: 1.6},
		},
	}
	analogies := []strategy.Analogy{{
		SourceDomain:         "military",
		TargetDomain:         "business",
		StructuralSimilarity: 0.9,
		SuccessProbability:   0.72,
		StructuralMatch:      strategy.StructuralMatch{PatternName: "Indirect Approach"},
	}}

	f, err := BuildWorkbook("run-1", tornado, analogies)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	sheets := f.GetSheetList()
	want := map[string]bool{"Tornado": false, "Analogies": false}
	for _, sheet := range sheets {
		if _, ok := want[sheet]; ok {
			want[sheet] = true
		}
	}
	for sheet, found := range want {
		if !found {
			t.Errorf("missing sheet %s in %v", sheet, sheets)
		}
	}

	cell, err := f.GetCellValue("Tornado", "A2")
	if err != nil {
		t.Fatalf("read cell failed: %v", err)
	}
	if cell != "demand" {
		t.Errorf("expected first tornado row to be demand, got %q", cell)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("run-1"); got != "analysis_run-1.xlsx" {
		t.Errorf("unexpected filename %q", got)
	}
}
