package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.MinTableNumericFrac != 0.15 {
		t.Errorf("expected numeric fraction 0.15, got %v", cfg.MinTableNumericFrac)
	}
	if cfg.TopHeaderSkipRatio != 0.12 {
		t.Errorf("expected header skip ratio 0.12, got %v", cfg.TopHeaderSkipRatio)
	}
	if cfg.OverlapThreshold != 0.6 {
		t.Errorf("expected overlap threshold 0.6, got %v", cfg.OverlapThreshold)
	}
	if len(cfg.HeaderKeywords) != 5 {
		t.Errorf("expected 5 header keywords, got %d", len(cfg.HeaderKeywords))
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.HeaderKeywords[0] = "CHANGED"
	if cfg.HeaderKeywords[0] != "MONTHLY" {
		t.Error("clone shares keyword slice with original")
	}
}

func TestParse_OverridesKeepDefaults(t *testing.T) {
	cfg, err := Parse([]byte("overlap_threshold: 0.8\nheader_keywords: [ANNUAL]\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.OverlapThreshold != 0.8 {
		t.Errorf("expected 0.8, got %v", cfg.OverlapThreshold)
	}
	if len(cfg.HeaderKeywords) != 1 || cfg.HeaderKeywords[0] != "ANNUAL" {
		t.Errorf("unexpected keywords: %v", cfg.HeaderKeywords)
	}
	if cfg.LineTolerance != 4.0 {
		t.Errorf("expected default line tolerance, got %v", cfg.LineTolerance)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse of empty input failed: %v", err)
	}
	if cfg.MinChartWidth != 40 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown key", "not_a_field: 1\n"},
		{"threshold out of range", "overlap_threshold: 1.5\n"},
		{"negative tolerance", "line_tolerance: -1\n"},
		{"negative workers", "workers: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}

	_, err := Parse([]byte("min_table_numeric_frac: 2\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("workers: 4\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Workers)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
