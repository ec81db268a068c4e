package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/dupsweep/internal/dedup"
)

// DefaultPathWidth is the summary table's target column width.
const DefaultPathWidth = 60

// Printer writes line-oriented, human-readable output.
type Printer struct {
	out       io.Writer
	color     bool
	pathWidth int
}

// NewPrinter creates a Printer. Colors are only emitted when colored is true.
func NewPrinter(out io.Writer, colored bool, pathWidth int) *Printer {
	if pathWidth <= 0 {
		pathWidth = DefaultPathWidth
	}
	return &Printer{out: out, color: colored, pathWidth: pathWidth}
}

func (p *Printer) paint(c color.Color, s string) string {
	if !p.color {
		return s
	}
	return c.Sprint(s)
}

// Looking announces the resolved root of the run.
func (p *Printer) Looking(root string) {
	fmt.Fprintf(p.out, "Looking for duplicates in %s\n", root)
}

// Checking announces the start of one scan target.
func (p *Printer) Checking(dir string) {
	fmt.Fprintf(p.out, "Checking %s\n", dir)
}

// Duplicate announces a detected pair, cached file first.
func (p *Printer) Duplicate(pair dedup.DuplicatePair) {
	fmt.Fprintf(p.out, "%s %s and %s\n",
		p.paint(color.Yellow, "Found duplicate:"), pair.Cached.Path, pair.Candidate.Path)
}

// DryRun notes that a pair was left untouched because of dry-run mode.
func (p *Printer) DryRun() {
	fmt.Fprintf(p.out, "  %s keeping both files\n", p.paint(color.Cyan, "[dry-run]"))
}

// Prompt asks which side of a pair to delete. The answer is read by the caller.
func (p *Printer) Prompt() {
	fmt.Fprint(p.out, "  Delete? [y/yes/second = second file, first = first file, anything else = keep both]: ")
}

// Deleted reports a removed file.
func (p *Printer) Deleted(path string) {
	fmt.Fprintf(p.out, "  %s %s\n", p.paint(color.Red, "Deleted:"), path)
}

// Kept reports that neither file of a pair was removed.
func (p *Printer) Kept() {
	fmt.Fprintln(p.out, "  Keeping both files")
}

// Summary prints a table with one row per target followed by the totals.
func (p *Printer) Summary(s *Summary) {
	header := fmt.Sprintf("%s %8s %6s %8s %12s  %s",
		p.cell("TARGET"), "FILES", "DUPES", "DELETED", "RECLAIMED", "STATUS")

	fmt.Fprintf(p.out, "\n=== Sweep Summary ===\n")
	if s.DryRun {
		fmt.Fprintln(p.out, "Mode: dry-run (no files were deleted)")
	}
	fmt.Fprintln(p.out, header)
	fmt.Fprintln(p.out, strings.Repeat("-", runewidth.StringWidth(header)))

	for _, ts := range s.Targets {
		fmt.Fprintf(p.out, "%s %8d %6d %8d %12s  %s\n",
			p.cell(ts.Target), ts.FilesScanned, ts.Duplicates, ts.Deleted,
			FormatSize(ts.BytesReclaimed), p.status(ts))
	}

	total := s.Totals()
	fmt.Fprintf(p.out, "%s %8d %6d %8d %12s\n",
		p.cell("Total"), total.FilesScanned, total.Duplicates, total.Deleted,
		FormatSize(total.BytesReclaimed))

	if failed := s.Failed(); failed > 0 {
		fmt.Fprintf(p.out, "%s %d of %d targets failed\n",
			p.paint(color.Red, "Errors:"), failed, len(s.Targets))
	}
	if s.Interrupted {
		fmt.Fprintln(p.out, p.paint(color.Yellow, "Interrupted: remaining targets were not scanned"))
	}
	fmt.Fprintln(p.out, "=====================")
}

func (p *Printer) status(ts *TargetStats) string {
	if ts.Err != nil {
		return p.paint(color.Red, "failed")
	}
	return p.paint(color.Green, "ok")
}

// cell truncates from the left so the distinguishing end of a path stays
// visible, then pads to the column width.
func (p *Printer) cell(s string) string {
	if runewidth.StringWidth(s) > p.pathWidth {
		s = "..." + truncateLeft(s, p.pathWidth-3)
	}
	return runewidth.FillRight(s, p.pathWidth)
}

// truncateLeft keeps the rightmost characters of s that fit in width cells.
func truncateLeft(s string, width int) string {
	rs := []rune(s)
	w := 0
	i := len(rs)
	for i > 0 {
		cw := runewidth.RuneWidth(rs[i-1])
		if w+cw > width {
			break
		}
		w += cw
		i--
	}
	return string(rs[i:])
}

// FormatSize renders a byte count with a binary unit.
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
