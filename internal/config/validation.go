package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateScan()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateScan() ValidationErrors {
	var errors ValidationErrors

	if c.Scan.Tolerance <= 0 || c.Scan.Tolerance > 1 {
		errors = append(errors, ValidationError{
			Field:   "scan.tolerance",
			Message: "tolerance must be greater than 0 and at most 1",
		})
	}

	if c.Scan.SuffixSlack < 0 {
		errors = append(errors, ValidationError{
			Field:   "scan.suffix_slack",
			Message: "suffix_slack cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	if c.Output.PathWidth < 10 {
		errors = append(errors, ValidationError{
			Field:   "output.path_width",
			Message: "path_width must be at least 10",
		})
	}

	return errors
}

// Log levels and formats accepted by the logger. Empty selects the default.
var (
	logLevels  = []string{"", "debug", "info", "warn", "error"}
	logFormats = []string{"", "text", "json"}
)

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	if !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q (use debug, info, warn or error)", c.Logging.Level),
		})
	}

	if !slices.Contains(logFormats, strings.ToLower(c.Logging.Format)) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q (use text or json)", c.Logging.Format),
		})
	}

	return errors
}
