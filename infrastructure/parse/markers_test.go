package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexFold(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		marker   string
		expected int
	}{
		{name: "exact case", haystack: "WINNER: Response A", marker: "WINNER:", expected: 0},
		{name: "mixed case", haystack: "The Winner: Response A", marker: "WINNER:", expected: 4},
		{name: "absent", haystack: "no verdict here", marker: "WINNER:", expected: -1},
		{name: "empty marker", haystack: "anything", marker: "", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, indexFold(tt.haystack, tt.marker))
		})
	}
}

func TestLastIndexFold(t *testing.T) {
	text := "WINNER: Response A ... winner: Response B"
	assert.Equal(t, 23, lastIndexFold(text, "WINNER:"))
	assert.Equal(t, -1, lastIndexFold(text, "REASONING:"))
}

func TestSliceBetween(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		start    string
		end      string
		expected string
		found    bool
	}{
		{
			name:     "both markers",
			text:     "REASONING: solid logic WINNER: Response A",
			start:    "REASONING:",
			end:      "WINNER:",
			expected: "solid logic",
			found:    true,
		},
		{
			name:     "missing end runs to end of text",
			text:     "REASONING: trailing thoughts",
			start:    "REASONING:",
			end:      "WINNER:",
			expected: "trailing thoughts",
			found:    true,
		},
		{
			name:  "missing start",
			text:  "WINNER: Response B",
			start: "REASONING:",
			end:   "WINNER:",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := sliceBetween(tt.text, tt.start, tt.end)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStripTrailingParen(t *testing.T) {
	assert.Equal(t, "Response B", stripTrailingParen("Response B (clear and correct)"))
	assert.Equal(t, "Response B", stripTrailingParen("Response B"))
	assert.Equal(t, "(aside) Response B", stripTrailingParen("(aside) Response B"))
}

func TestCanonicalLabel(t *testing.T) {
	assert.Equal(t, "Response A", canonicalLabel("a"))
	assert.Equal(t, "Response C", canonicalLabel("C"))
}
