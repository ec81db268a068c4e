package dedup

// DefaultSuffixSlack is how many trailing name characters may differ, enough
// for markers such as "(1)" or "_copy".
const DefaultSuffixSlack = 5

// Matcher decides whether a cached file and a newly scanned file are probable
// duplicates.
type Matcher struct {
	Tolerance   float64
	SuffixSlack int
}

// NewMatcher creates a Matcher with the given size tolerance and suffix slack.
func NewMatcher(tolerance float64, suffixSlack int) Matcher {
	return Matcher{Tolerance: tolerance, SuffixSlack: suffixSlack}
}

// DefaultMatcher returns a Matcher using DefaultTolerance and DefaultSuffixSlack.
func DefaultMatcher() Matcher {
	return NewMatcher(DefaultTolerance, DefaultSuffixSlack)
}

// NamesMatch reports whether the shared suffix of two basenames covers the
// shorter name minus the slack. Names no longer than the slack always match.
func (m Matcher) NamesMatch(cachedName, name string) bool {
	matchLength := min(nameLen(cachedName), nameLen(name)) - m.SuffixSlack
	return nameLen(LongestCommonSuffix(cachedName, name)) >= matchLength
}

// Matches applies the name test and then the size test.
func (m Matcher) Matches(cachedName string, cached FileRecord, name string, size int64) bool {
	if !m.NamesMatch(cachedName, name) {
		return false
	}
	return IsSizeMatch(cached.Size, size, m.Tolerance)
}
