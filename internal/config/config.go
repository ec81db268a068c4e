// Package config provides configuration structures and loading for dupsweep.
package config

// Config represents the complete application configuration.
type Config struct {
	Scan       ScanConfig       `yaml:"scan" mapstructure:"scan"`
	Resolution ResolutionConfig `yaml:"resolution" mapstructure:"resolution"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// ScanConfig represents the duplicate detection settings.
type ScanConfig struct {
	Tolerance       float64 `yaml:"tolerance" mapstructure:"tolerance"`         // size ratio band, (0,1]
	SuffixSlack     int     `yaml:"suffix_slack" mapstructure:"suffix_slack"`   // trailing name characters allowed to differ
	CleanSubdirs    bool    `yaml:"clean_subdirs" mapstructure:"clean_subdirs"` // one target per immediate subdirectory
	ContinueOnError bool    `yaml:"continue_on_error" mapstructure:"continue_on_error"`
}

// ResolutionConfig represents how detected duplicate pairs are resolved.
type ResolutionConfig struct {
	DryRun       bool `yaml:"dry_run" mapstructure:"dry_run"`
	EvictDeleted bool `yaml:"evict_deleted" mapstructure:"evict_deleted"` // drop cache entries whose file was deleted
}

// OutputConfig represents terminal output settings.
type OutputConfig struct {
	Color     bool `yaml:"color" mapstructure:"color"`
	PathWidth int  `yaml:"path_width" mapstructure:"path_width"` // summary table path column width
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Tolerance:       0.98,
			SuffixSlack:     5,
			CleanSubdirs:    false,
			ContinueOnError: true,
		},
		Resolution: ResolutionConfig{
			DryRun:       false,
			EvictDeleted: false,
		},
		Output: OutputConfig{
			Color:     true,
			PathWidth: 60,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}
