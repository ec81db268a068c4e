package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	cleanSubdirs bool
	dryRun       bool
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "dupsweep [path]",
	Short: "Interactive duplicate file remover",
	Long: `Walks a directory tree bottom-up and reports files that look like copies
of each other: names sharing a long common ending and sizes within a
small tolerance. Each pair is confirmed interactively before anything
is deleted.

Path handling:
  .    the current working directory
  ..   its parent
  any other value is used as given

Answers at the prompt:
  y, yes, second   delete the second (newly found) file
  first            delete the first (previously seen) file
  anything else    keep both

Example:
  dupsweep ~/Downloads
  dupsweep --clean-subdirs --dry-run /srv/photos`,
	Version:      Version,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runSweep,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (built-in defaults when empty)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Sweep overrides
	rootCmd.Flags().BoolVarP(&cleanSubdirs, "clean-subdirs", "s", false,
		"Scan each immediate subdirectory separately; duplicates never span subdirectories")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false,
		"Report duplicates without prompting or deleting")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel     string
	LogFormat    string
	CleanSubdirs bool
	DryRun       bool
	NoColor      bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		CleanSubdirs: cleanSubdirs,
		DryRun:       dryRun,
		NoColor:      noColor,
	}
}
