package knowledge

import (
	"errors"
	"sort"
	"testing"

	"stratcore/domain/core"
	dk "stratcore/domain/knowledge"
)

func TestCatalogue_DomainsSortedAndComplete(t *testing.T) {
	c := NewCatalogue()
	domains := c.Domains()

	want := []string{"business", "evolution", "military", "politics", "sports"}
	if len(domains) != len(want) {
		t.Fatalf("expected %d domains, got %d", len(want), len(domains))
	}
	if !sort.StringsAreSorted(domains) {
		t.Error("domains must be sorted")
	}
	for i, name := range want {
		if domains[i] != name {
			t.Errorf("position %d: expected %s, got %s", i, name, domains[i])
		}
	}
}

func TestCatalogue_UnknownDomain(t *testing.T) {
	c := NewCatalogue()
	if _, err := c.Lookup("astrology"); !errors.Is(err, core.ErrDomainNotFound) {
		t.Errorf("Lookup: expected ErrDomainNotFound, got %v", err)
	}
	if _, err := c.DomainContext("astrology"); !errors.Is(err, core.ErrDomainNotFound) {
		t.Errorf("DomainContext: expected ErrDomainNotFound, got %v", err)
	}
}

func TestCatalogue_PatternRecordsWellFormed(t *testing.T) {
	c := NewCatalogue()
	total := 0
	for _, domain := range c.Domains() {
		patterns, err := c.Lookup(domain)
		if err != nil {
			t.Fatalf("lookup %s failed: %v", domain, err)
		}
		total += len(patterns)
		for _, p := range patterns {
			if p.SourceDomain != domain {
				t.Errorf("%s: filed under %s", p.ID, domain)
			}
			if p.HistoricalSuccessRate < 0 || p.HistoricalSuccessRate > 1 {
				t.Errorf("%s: success rate %f outside [0,1]", p.ID, p.HistoricalSuccessRate)
			}
			if p.TransferabilityScore < 0 || p.TransferabilityScore > 1 {
				t.Errorf("%s: transferability %f outside [0,1]", p.ID, p.TransferabilityScore)
			}
			if p.CoreLogic == "" || p.StrategicDynamics == "" {
				t.Errorf("%s: incomplete record", p.ID)
			}
		}
	}
	if total != 10 {
		t.Errorf("expected 10 curated patterns, got %d", total)
	}
}

func TestCatalogue_CustomData(t *testing.T) {
	c := NewCatalogueFrom(
		[]dk.DomainContext{{Name: "chess"}},
		[]dk.StrategyPattern{{ID: "chess-zugzwang", SourceDomain: "chess"}},
	)
	patterns, err := c.Lookup("chess")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(patterns) != 1 || patterns[0].ID != "chess-zugzwang" {
		t.Errorf("unexpected patterns: %+v", patterns)
	}
}
