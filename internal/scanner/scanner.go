// Package scanner walks one target directory and feeds every file through the
// duplicate cache.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/dbsmedya/dupsweep/internal/dedup"
	"github.com/dbsmedya/dupsweep/internal/logger"
	"github.com/dbsmedya/dupsweep/internal/report"
	"github.com/dbsmedya/dupsweep/internal/resolve"
)

// ErrNotDirectory is returned when a scan target is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Options tunes the scan.
type Options struct {
	Matcher dedup.Matcher
	// EvictDeleted removes a cache entry once its file has been deleted, so it
	// cannot be matched again. Off by default: the stale entry stays.
	EvictDeleted bool
}

// Scanner runs the probe-or-insert loop over one target.
type Scanner struct {
	fs       afero.Fs
	opts     Options
	resolver resolve.Resolver
	printer  *report.Printer
	logger   *logger.Logger
}

// New creates a Scanner.
func New(fs afero.Fs, opts Options, resolver resolve.Resolver, printer *report.Printer, log *logger.Logger) (*Scanner, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem is nil")
	}
	if resolver == nil {
		return nil, fmt.Errorf("resolver is nil")
	}
	if printer == nil {
		return nil, fmt.Errorf("printer is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	return &Scanner{
		fs:       fs,
		opts:     opts,
		resolver: resolver,
		printer:  printer,
		logger:   log,
	}, nil
}

// Scan walks dir bottom-up. Each file is compared against the cache; the first
// matching entry forms a pair that goes to the resolver, otherwise the file is
// cached under its basename. The returned stats are filled in even when an
// error aborts the scan.
func (s *Scanner) Scan(ctx context.Context, dir string, cache *dedup.Cache) (*report.TargetStats, error) {
	startTime := time.Now()
	stats := &report.TargetStats{Target: dir}
	log := s.logger.WithTarget(dir)

	s.printer.Checking(dir)

	err := s.checkTarget(dir)
	if err == nil {
		err = walkBottomUp(s.fs, dir, func(path string) error {
			return s.visit(ctx, path, cache, stats, log)
		})
	}

	stats.Duration = time.Since(startTime)
	if err != nil {
		return stats, err
	}

	log.Infow("Target scanned",
		"files", stats.FilesScanned,
		"duplicates", stats.Duplicates,
		"deleted", stats.Deleted,
		"duration", stats.Duration,
	)
	return stats, nil
}

func (s *Scanner) checkTarget(dir string) error {
	info, err := s.fs.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat target: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}
	return nil
}

func (s *Scanner) visit(ctx context.Context, path string, cache *dedup.Cache, stats *report.TargetStats, log *logger.Logger) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("scan interrupted: %w", err)
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	// A symlink to a directory is listed with the files but is not one.
	if info.IsDir() {
		log.Debugw("Skipping directory link", "path", path)
		return nil
	}

	stats.FilesScanned++
	basename := filepath.Base(path)
	current := dedup.FileRecord{Path: path, Size: info.Size()}

	key, cached, found := cache.Find(func(key string, rec dedup.FileRecord) bool {
		return s.opts.Matcher.Matches(key, rec, basename, current.Size)
	})
	if !found {
		cache.Insert(basename, current)
		return nil
	}

	stats.Duplicates++
	pair := dedup.DuplicatePair{Key: key, Cached: cached, Candidate: current}
	log.Debugw("Duplicate detected", "cached", cached.Path, "candidate", current.Path)

	outcome, err := s.resolver.Resolve(ctx, pair)
	if err != nil {
		return err
	}

	switch outcome {
	case resolve.DeletedCandidate:
		stats.Deleted++
		stats.BytesReclaimed += current.Size
	case resolve.DeletedCached:
		stats.Deleted++
		stats.BytesReclaimed += cached.Size
		if s.opts.EvictDeleted {
			cache.Remove(key)
		}
	}
	return nil
}
