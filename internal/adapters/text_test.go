package adapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"shorter than limit", "FalconSat", 20, "FalconSat"},
		{"exactly at limit", "Starlink", 8, "Starlink"},
		{"over limit", "Crew Dragon Demo-2", 10, "Crew Dr..."},
		{"tiny limit keeps no marker", "Starlink", 2, "St"},
		{"zero limit", "Starlink", 0, ""},
		{"empty input", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.text, tt.maxLen))
		})
	}
}

func TestTruncateDoesNotSplitRunes(t *testing.T) {
	got := Truncate("Серия запусков Starlink", 10)
	assert.Equal(t, "Серия з...", got)
}

func TestSanitizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims and lowercases", "  CRS-21  ", "crs-21"},
		{"strips punctuation", "starlink; DROP TABLE--", "starlink drop table--"},
		{"keeps digits and hyphens", "demo-2", "demo-2"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeQuery(tt.input))
		})
	}
}

func TestSanitizeQueryCapsLength(t *testing.T) {
	long := strings.Repeat("a", 250)
	assert.Len(t, SanitizeQuery(long), 100)
}
