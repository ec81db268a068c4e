package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/dupsweep/internal/config"
	"github.com/dbsmedya/dupsweep/internal/dedup"
	"github.com/dbsmedya/dupsweep/internal/logger"
	"github.com/dbsmedya/dupsweep/internal/report"
	"github.com/dbsmedya/dupsweep/internal/resolve"
	"github.com/dbsmedya/dupsweep/internal/scanner"
	"github.com/dbsmedya/dupsweep/internal/sweeper"
)

func runSweep(cmd *cobra.Command, args []string) error {
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

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	// Handle graceful shutdown
	ctx, cancel := sweeper.SetupSignalHandler(func(sig os.Signal) {
		log.Warnw("Received shutdown signal - stopping after the current file", "signal", sig.String())
		fmt.Fprintln(cmd.ErrOrStderr(), "\nInterrupted. Press Ctrl-C again to abort immediately.")
	})
	defer cancel()

	sw, err := newSweeper(cmd, cfg, afero.NewOsFs(), log)
	if err != nil {
		return err
	}

	log.Infow("Starting duplicate sweep",
		"run_id", sw.RunID(),
		"path", args[0],
		"config", configFile,
	)

	summary, err := sw.Run(ctx, args[0])
	if summary != nil {
		report.NewPrinter(cmd.OutOrStdout(), cfg.Output.Color, cfg.Output.PathWidth).Summary(summary)
	}
	return err
}

// newSweeper wires the resolver, scanner and sweeper for one run.
func newSweeper(cmd *cobra.Command, cfg *config.Config, fs afero.Fs, log *logger.Logger) (*sweeper.Sweeper, error) {
	printer := report.NewPrinter(cmd.OutOrStdout(), cfg.Output.Color, cfg.Output.PathWidth)

	var resolver resolve.Resolver
	if cfg.Resolution.DryRun {
		resolver = resolve.NewDryRun(printer)
	} else {
		resolver = resolve.NewInteractive(fs, cmd.InOrStdin(), printer, log)
	}

	sc, err := scanner.New(fs, scanner.Options{
		Matcher:      dedup.NewMatcher(cfg.Scan.Tolerance, cfg.Scan.SuffixSlack),
		EvictDeleted: cfg.Resolution.EvictDeleted,
	}, resolver, printer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scanner: %w", err)
	}

	sw, err := sweeper.New(fs, sc, printer, log, sweeper.Options{
		CleanSubdirs:    cfg.Scan.CleanSubdirs,
		ContinueOnError: cfg.Scan.ContinueOnError,
		DryRun:          cfg.Resolution.DryRun,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sweeper: %w", err)
	}
	return sw, nil
}
