// Package resolve decides what happens to each detected duplicate pair.
package resolve

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/dbsmedya/dupsweep/internal/dedup"
	"github.com/dbsmedya/dupsweep/internal/logger"
	"github.com/dbsmedya/dupsweep/internal/report"
)

// Outcome is the result of resolving one pair.
type Outcome int

const (
	// Kept means neither file was touched.
	Kept Outcome = iota
	// DryRun means the pair was only reported.
	DryRun
	// DeletedCandidate means the newly scanned file was removed.
	DeletedCandidate
	// DeletedCached means the earlier, cached file was removed.
	DeletedCached
)

func (o Outcome) String() string {
	switch o {
	case Kept:
		return "kept"
	case DryRun:
		return "dry-run"
	case DeletedCandidate:
		return "deleted-candidate"
	case DeletedCached:
		return "deleted-cached"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Deleted reports whether a file was removed.
func (o Outcome) Deleted() bool {
	return o == DeletedCandidate || o == DeletedCached
}

// Resolver resolves a duplicate pair. It is called synchronously from the scan
// loop and may block.
type Resolver interface {
	Resolve(ctx context.Context, pair dedup.DuplicatePair) (Outcome, error)
}

// DryRunResolver announces pairs and never deletes.
type DryRunResolver struct {
	printer *report.Printer
}

// NewDryRun creates a DryRunResolver.
func NewDryRun(printer *report.Printer) *DryRunResolver {
	return &DryRunResolver{printer: printer}
}

// Resolve implements Resolver.
func (r *DryRunResolver) Resolve(_ context.Context, pair dedup.DuplicatePair) (Outcome, error) {
	r.printer.Duplicate(pair)
	r.printer.DryRun()
	return DryRun, nil
}

// InteractiveResolver asks on the input stream which file of a pair to delete.
type InteractiveResolver struct {
	fs      afero.Fs
	in      *bufio.Reader
	printer *report.Printer
	logger  *logger.Logger
}

// NewInteractive creates an InteractiveResolver reading answers from in and
// deleting through fs.
func NewInteractive(fs afero.Fs, in io.Reader, printer *report.Printer, log *logger.Logger) *InteractiveResolver {
	if log == nil {
		log = logger.NewDefault()
	}
	return &InteractiveResolver{
		fs:      fs,
		in:      bufio.NewReader(in),
		printer: printer,
		logger:  log,
	}
}

// Resolve implements Resolver. It blocks until a line (or EOF) is read.
func (r *InteractiveResolver) Resolve(ctx context.Context, pair dedup.DuplicatePair) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Kept, err
	}

	r.printer.Duplicate(pair)
	r.printer.Prompt()

	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Kept, fmt.Errorf("failed to read response: %w", err)
	}

	outcome := ParseResponse(line)
	var target string
	switch outcome {
	case DeletedCandidate:
		target = pair.Candidate.Path
	case DeletedCached:
		target = pair.Cached.Path
	default:
		r.printer.Kept()
		return Kept, nil
	}

	if err := r.fs.Remove(target); err != nil {
		return Kept, fmt.Errorf("failed to delete %s: %w", target, err)
	}
	r.logger.Infow("Deleted duplicate", "path", target, "outcome", outcome.String())
	r.printer.Deleted(target)
	return outcome, nil
}

// ParseResponse maps an answer to an outcome. y, yes and second select the
// newly scanned file, first selects the cached file, anything else keeps both.
func ParseResponse(line string) Outcome {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "second":
		return DeletedCandidate
	case "first":
		return DeletedCached
	default:
		return Kept
	}
}
