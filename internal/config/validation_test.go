package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidConfig(t *testing.T) {
	cfg := &Config{
		Scan: ScanConfig{
			Tolerance:   1,
			SuffixSlack: 0,
		},
		Output: OutputConfig{PathWidth: 10},
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestInvalidTolerance(t *testing.T) {
	for _, tol := range []float64{0, -0.5, 1.01} {
		cfg := DefaultConfig()
		cfg.Scan.Tolerance = tol

		err := cfg.Validate()
		if err == nil {
			t.Errorf("expected validation error for tolerance %v", tol)
			continue
		}
		if !strings.Contains(err.Error(), "scan.tolerance") {
			t.Errorf("expected error to mention 'scan.tolerance', got: %v", err)
		}
	}
}

func TestNegativeSuffixSlack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scan.SuffixSlack = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for negative suffix_slack")
	}
	if !strings.Contains(err.Error(), "scan.suffix_slack") {
		t.Errorf("expected error to mention 'scan.suffix_slack', got: %v", err)
	}
}

func TestInvalidPathWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.PathWidth = 3

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for path_width")
	}
	if !strings.Contains(err.Error(), "output.path_width") {
		t.Errorf("expected error to mention 'output.path_width', got: %v", err)
	}
}

func TestInvalidLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors for logging")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Errorf("expected 2 validation errors, got %d: %v", len(verrs), verrs)
	}
	if !strings.Contains(err.Error(), "logging.level") || !strings.Contains(err.Error(), "logging.format") {
		t.Errorf("expected both logging fields in error, got: %v", err)
	}
}

func TestValidationErrorsFormatting(t *testing.T) {
	var empty ValidationErrors
	if empty.Error() != "" {
		t.Errorf("expected empty string for no errors, got %q", empty.Error())
	}

	errs := ValidationErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	want := "validation failed:\n  - a: bad\n  - b: worse"
	if errs.Error() != want {
		t.Errorf("got %q, want %q", errs.Error(), want)
	}
}
