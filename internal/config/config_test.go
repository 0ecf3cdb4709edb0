package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Engine.SensitivitySamples != 10 {
		t.Errorf("expected 10 samples, got %d", cfg.Engine.SensitivitySamples)
	}
	if cfg.Engine.SimilarityThreshold != 0.6 {
		t.Errorf("expected threshold 0.6, got %f", cfg.Engine.SimilarityThreshold)
	}
	if cfg.Engine.FeasibilityGate != 0.3 {
		t.Errorf("expected gate 0.3, got %f", cfg.Engine.FeasibilityGate)
	}
	if cfg.Engine.BaseSeed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Engine.BaseSeed)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SENSITIVITY_SAMPLES", "50")
	t.Setenv("SIMILARITY_THRESHOLD", "0.8")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Engine.SensitivitySamples != 50 {
		t.Errorf("expected 50 samples, got %d", cfg.Engine.SensitivitySamples)
	}
	if cfg.Engine.SimilarityThreshold != 0.8 {
		t.Errorf("expected threshold 0.8, got %f", cfg.Engine.SimilarityThreshold)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Server.Port)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero samples", "SENSITIVITY_SAMPLES", "0"},
		{"threshold above one", "SIMILARITY_THRESHOLD", "1.5"},
		{"negative gate", "FEASIBILITY_GATE", "-0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected validation error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
