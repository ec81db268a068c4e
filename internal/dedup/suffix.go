// Package dedup holds the duplicate-detection heuristic: the name suffix
// matcher, the size-ratio classifier and the per-target basename cache.
package dedup

import "unicode/utf8"

// LongestCommonSuffix returns the longest run of trailing characters shared by
// a and b. Characters are compared per UTF-8 sequence from the end, so a
// multi-byte character is never split and the result is always a byte-exact
// suffix of both inputs.
func LongestCommonSuffix(a, b string) string {
	i, j := len(a), len(b)
	for i > 0 && j > 0 {
		_, wa := utf8.DecodeLastRuneInString(a[:i])
		_, wb := utf8.DecodeLastRuneInString(b[:j])
		if a[i-wa:i] != b[j-wb:j] {
			break
		}
		i -= wa
		j -= wb
	}
	return a[i:]
}

// nameLen counts characters the same way LongestCommonSuffix steps over them.
func nameLen(s string) int {
	return utf8.RuneCountInString(s)
}
