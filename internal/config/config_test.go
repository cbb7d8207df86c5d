package config

import (
	"testing"

	"longstat/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ANAGE_DATA_FILE", "")
	t.Setenv("REPORT_OUT", "")
	t.Setenv("ALPHA", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Data.File != "data/anage_data.txt" {
		t.Errorf("Expected default data file, got %s", cfg.Data.File)
	}
	if cfg.Report.OutputPath != "longevity_report.json" {
		t.Errorf("Expected default output path, got %s", cfg.Report.OutputPath)
	}
	if cfg.Analysis.Alpha != 0.05 {
		t.Errorf("Expected default alpha 0.05, got %g", cfg.Analysis.Alpha)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ANAGE_DATA_FILE", "/tmp/anage.csv")
	t.Setenv("REPORT_OUT", "out/report.md")
	t.Setenv("ALPHA", "0.01")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Data.File != "/tmp/anage.csv" {
		t.Errorf("Expected overridden data file, got %s", cfg.Data.File)
	}
	if cfg.Report.OutputPath != "out/report.md" {
		t.Errorf("Expected overridden output path, got %s", cfg.Report.OutputPath)
	}
	if cfg.Analysis.Alpha != 0.01 {
		t.Errorf("Expected alpha 0.01, got %g", cfg.Analysis.Alpha)
	}
}

func TestLoadRejectsInvalidAlpha(t *testing.T) {
	t.Setenv("ANAGE_DATA_FILE", "")
	t.Setenv("REPORT_OUT", "")
	t.Setenv("ALPHA", "1.5")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error for alpha outside (0, 1)")
	}
	if errors.GetCode(err) != errors.CodeConfigInvalid {
		t.Errorf("expected CONFIG_INVALID code, got %s", errors.GetCode(err))
	}
}
