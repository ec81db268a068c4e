// Package report formats what a sweep finds: the running status lines, the
// duplicate announcements and prompt, and the end-of-run summary.
package report

import "time"

// TargetStats contains statistics about one scan target.
type TargetStats struct {
	Target         string
	FilesScanned   int
	Duplicates     int
	Deleted        int
	BytesReclaimed int64
	Duration       time.Duration
	Err            error // set when the target's scan aborted
}

// Summary aggregates all targets of one run.
type Summary struct {
	RunID       string
	Root        string
	DryRun      bool
	Interrupted bool
	Targets     []*TargetStats
}

// Add appends a target's statistics.
func (s *Summary) Add(ts *TargetStats) {
	s.Targets = append(s.Targets, ts)
}

// Totals sums the counters of every target.
func (s *Summary) Totals() TargetStats {
	var total TargetStats
	for _, ts := range s.Targets {
		total.FilesScanned += ts.FilesScanned
		total.Duplicates += ts.Duplicates
		total.Deleted += ts.Deleted
		total.BytesReclaimed += ts.BytesReclaimed
		total.Duration += ts.Duration
	}
	return total
}

// Failed returns the number of targets whose scan aborted.
func (s *Summary) Failed() int {
	n := 0
	for _, ts := range s.Targets {
		if ts.Err != nil {
			n++
		}
	}
	return n
}
