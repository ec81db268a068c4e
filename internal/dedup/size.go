package dedup

// DefaultTolerance lets sizes differ by roughly 2% in either direction.
const DefaultTolerance = 0.98

// IsSizeMatch reports whether existing and candidate differ by no more than a
// factor of 1/tolerance in either direction, using diff = existing/candidate.
//
// A candidate of zero bytes leaves the ratio undefined and never matches.
func IsSizeMatch(existing, candidate int64, tolerance float64) bool {
	if candidate <= 0 {
		return false
	}
	diff := float64(existing) / float64(candidate)
	return (diff >= 1.0 && diff <= 1.0/tolerance) || (diff >= tolerance && diff <= 1.0)
}
