package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test scan defaults
	if cfg.Scan.Tolerance != 0.98 {
		t.Errorf("expected tolerance 0.98, got %v", cfg.Scan.Tolerance)
	}
	if cfg.Scan.SuffixSlack != 5 {
		t.Errorf("expected suffix_slack 5, got %d", cfg.Scan.SuffixSlack)
	}
	if cfg.Scan.CleanSubdirs {
		t.Errorf("expected clean_subdirs disabled by default")
	}
	if !cfg.Scan.ContinueOnError {
		t.Errorf("expected continue_on_error enabled by default")
	}

	// Test resolution defaults
	if cfg.Resolution.DryRun {
		t.Errorf("expected dry_run disabled by default")
	}
	if cfg.Resolution.EvictDeleted {
		t.Errorf("expected evict_deleted disabled by default")
	}

	// Test output defaults
	if !cfg.Output.Color {
		t.Errorf("expected color enabled by default")
	}
	if cfg.Output.PathWidth != 60 {
		t.Errorf("expected path_width 60, got %d", cfg.Output.PathWidth)
	}

	// Test logging defaults
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected logging level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected logging format 'text', got %s", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected logging output 'stderr', got %s", cfg.Logging.Output)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("expected default config to validate, got: %v", err)
	}
}
