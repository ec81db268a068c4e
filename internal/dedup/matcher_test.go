package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamesMatch(t *testing.T) {
	m := DefaultMatcher()

	tests := []struct {
		cached, name string
		want         bool
	}{
		// min length 5, slack 5: match length 0 is trivially met
		{"a.txt", "a_copy.txt", true},
		// short names always match
		{"a", "zzzzzzzzzzzz", true},
		{"holiday_2019.jpg", "holiday_2019 (1).jpg", false},
		{"holiday_2019 (1).jpg", "copy of holiday_2019 (1).jpg", true},
		{"vacation_photo.jpg", "photo.jpg", true},
		// 16 chars each, shared ".mp4" only
		{"concert_live.mp4", "interview_xx.mp4", false},
		// last five characters differ, everything before is equal
		{"document_v1.pdf", "document_v2.odt", false},
		{"report-final.doc", "old report-final.doc", true},
	}

	for _, tt := range tests {
		t.Run(tt.cached+"|"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.NamesMatch(tt.cached, tt.name))
		})
	}
}

func TestNamesMatchSlack(t *testing.T) {
	strict := NewMatcher(DefaultTolerance, 0)
	assert.True(t, strict.NamesMatch("photo.jpg", "vacation_photo.jpg"))
	assert.False(t, strict.NamesMatch("photo1.jpg", "photo2.jpg"))

	loose := NewMatcher(DefaultTolerance, 6)
	assert.True(t, loose.NamesMatch("photo1.jpg", "photo2.jpg"))
}

func TestMatches(t *testing.T) {
	m := DefaultMatcher()
	cached := FileRecord{Path: "/x/a.txt", Size: 100}

	assert.True(t, m.Matches("a.txt", cached, "a_copy.txt", 100))
	assert.False(t, m.Matches("a.txt", cached, "a_copy.txt", 50), "size outside tolerance")
	assert.False(t, m.Matches("concert_live.mp4", FileRecord{Size: 100}, "interview_xx.mp4", 100), "names differ")
}

func TestDefaultMatcher(t *testing.T) {
	m := DefaultMatcher()
	assert.Equal(t, 0.98, m.Tolerance)
	assert.Equal(t, 5, m.SuffixSlack)
}
