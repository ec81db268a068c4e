// Package sweeper resolves the scan targets of a run and scans each one with a
// fresh duplicate cache.
package sweeper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"github.com/dbsmedya/dupsweep/internal/dedup"
	"github.com/dbsmedya/dupsweep/internal/logger"
	"github.com/dbsmedya/dupsweep/internal/report"
)

// TargetScanner scans a single target with the given cache.
type TargetScanner interface {
	Scan(ctx context.Context, dir string, cache *dedup.Cache) (*report.TargetStats, error)
}

// Options controls how targets are processed.
type Options struct {
	CleanSubdirs    bool
	ContinueOnError bool
	DryRun          bool
	// Getwd resolves "." and "..". Defaults to os.Getwd.
	Getwd func() (string, error)
}

// Sweeper runs one scan per target.
type Sweeper struct {
	fs      afero.Fs
	scanner TargetScanner
	printer *report.Printer
	logger  *logger.Logger
	opts    Options
	runID   string
}

// New creates a Sweeper with a fresh run ID.
func New(fs afero.Fs, scanner TargetScanner, printer *report.Printer, log *logger.Logger, opts Options) (*Sweeper, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem is nil")
	}
	if scanner == nil {
		return nil, fmt.Errorf("scanner is nil")
	}
	if printer == nil {
		return nil, fmt.Errorf("printer is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	if opts.Getwd == nil {
		opts.Getwd = os.Getwd
	}

	runID := uuid.NewString()
	return &Sweeper{
		fs:      fs,
		scanner: scanner,
		printer: printer,
		logger:  log.WithRun(runID),
		opts:    opts,
		runID:   runID,
	}, nil
}

// RunID returns the identifier attached to this sweep's log lines.
func (s *Sweeper) RunID() string {
	return s.runID
}

// Run scans path, or each of its immediate subdirectories in subdirectory
// mode. Target failures are collected and, with ContinueOnError, do not stop
// the remaining targets. An interrupt ends the run without an error and marks
// the summary as interrupted.
func (s *Sweeper) Run(ctx context.Context, path string) (*report.Summary, error) {
	root, err := ResolveTarget(path, s.opts.Getwd)
	if err != nil {
		return nil, err
	}

	summary := &report.Summary{RunID: s.runID, Root: root, DryRun: s.opts.DryRun}
	s.printer.Looking(root)
	s.logger.Infow("Starting sweep",
		"root", root,
		"clean_subdirs", s.opts.CleanSubdirs,
		"dry_run", s.opts.DryRun,
	)

	targets := []string{root}
	if s.opts.CleanSubdirs {
		targets, err = ListSubdirectories(s.fs, root)
		if err != nil {
			return summary, err
		}
		s.logger.Debugw("Enumerated subdirectories", "count", len(targets))
	}

	var errs error
	for _, target := range targets {
		if ctx.Err() != nil {
			summary.Interrupted = true
			break
		}

		stats, err := s.scanner.Scan(ctx, target, dedup.NewCache())
		if stats == nil {
			stats = &report.TargetStats{Target: target}
		}

		if errors.Is(err, context.Canceled) {
			summary.Add(stats)
			summary.Interrupted = true
			s.logger.Warnw("Sweep interrupted", "target", target)
			break
		}

		if err != nil {
			stats.Err = err
			summary.Add(stats)
			errs = multierr.Append(errs, fmt.Errorf("scan %s: %w", target, err))
			s.logger.Errorw("Target scan failed", "target", target, "error", err)
			if !s.opts.ContinueOnError {
				break
			}
			continue
		}

		summary.Add(stats)
	}

	total := summary.Totals()
	s.logger.Infow("Sweep complete",
		"targets", len(summary.Targets),
		"failed", summary.Failed(),
		"duplicates", total.Duplicates,
		"deleted", total.Deleted,
	)
	return summary, errs
}

// ResolveTarget maps "" and "." to the working directory and ".." to its
// parent. Any other path is returned unchanged and is not checked here.
func ResolveTarget(path string, getwd func() (string, error)) (string, error) {
	switch path {
	case "", ".", "..":
	default:
		return path, nil
	}

	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	if path == ".." {
		return filepath.Dir(wd), nil
	}
	return wd, nil
}

// ListSubdirectories returns the immediate child directories of dir, sorted by
// name. Symbolic links that resolve to directories are included.
func ListSubdirectories(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list subdirectories of %s: %w", dir, err)
	}

	var dirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			dirs = append(dirs, path)
			continue
		}
		if entry.Mode()&os.ModeSymlink != 0 {
			if info, err := fs.Stat(path); err == nil && info.IsDir() {
				dirs = append(dirs, path)
			}
		}
	}
	return dirs, nil
}
