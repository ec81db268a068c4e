package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/dupsweep/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Validate loads the configuration file, applies any CLI overrides and
checks every value without touching the filesystem.

Checks performed:
  - YAML syntax
  - Size tolerance within (0, 1]
  - Non-negative suffix slack
  - Summary path width
  - Log level and format

Example:
  dupsweep validate --config dupsweep.yaml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.CleanSubdirs, overrides.DryRun, overrides.NoColor)

	out := cmd.OutOrStdout()
	source := configFile
	if source == "" {
		source = "(built-in defaults)"
	}
	fmt.Fprintf(out, "\n=== Configuration Validation ===\n")
	fmt.Fprintf(out, "Config file: %s\n", source)
	fmt.Fprintf(out, "Tolerance: %g\n", cfg.Scan.Tolerance)
	fmt.Fprintf(out, "Suffix slack: %d\n", cfg.Scan.SuffixSlack)
	fmt.Fprintf(out, "Clean subdirectories: %v\n", cfg.Scan.CleanSubdirs)
	fmt.Fprintf(out, "Continue on error: %v\n", cfg.Scan.ContinueOnError)
	fmt.Fprintf(out, "Dry run: %v\n", cfg.Resolution.DryRun)
	fmt.Fprintf(out, "Evict deleted: %v\n", cfg.Resolution.EvictDeleted)
	fmt.Fprintf(out, "Logging: %s/%s -> %s\n\n", cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return fmt.Errorf("configuration is invalid")
	}

	fmt.Fprintln(out, "✅ Configuration is valid")
	return nil
}
