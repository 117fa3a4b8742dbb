// Package parse turns free-form model output into structured judgments.
// Extraction is built from a small set of composable marker primitives
// so each protocol's parser is a short declarative composition. Nothing
// in this package returns an error: unparseable input degrades to the
// documented default for the protocol.
package parse

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// foldCaser is a package-level Unicode case folder for performance.
// This avoids creating a new caser for each comparison.
var foldCaser = cases.Fold()

// Markers recognized by the extraction primitives. Matching is always
// case-insensitive.
const (
	markerFinalRanking     = "FINAL RANKING"
	markerWinner           = "WINNER:"
	markerReasoning        = "REASONING:"
	markerConfidence       = "CONFIDENCE:"
	markerSynthesis        = "SYNTHESIS:"
	markerCalibrationNotes = "CONFIDENCE CALIBRATION NOTES:"
)

var (
	// numberedLineRe matches one numbered list line: a leading integer
	// and period, then free text.
	numberedLineRe = regexp.MustCompile(`(?m)^\s*(\d+)\.\s*(.+)$`)

	// responseLabelRe matches a standalone anonymized label mention.
	responseLabelRe = regexp.MustCompile(`(?i)\bresponse\s+([A-Za-z])\b`)

	// winnerVerdictRe matches an explicit winner declaration for a
	// head-to-head comparison.
	winnerVerdictRe = regexp.MustCompile(`(?i)winner:\s*response\s+([AB])\b`)

	// winnerMentionRe matches a bare mention of either head-to-head
	// side, used as the fallback when no declaration exists.
	winnerMentionRe = regexp.MustCompile(`(?i)\bresponse\s+([AB])\b`)

	// confidenceRe matches a confidence declaration with an optional
	// percent suffix. Negative numbers deliberately do not match and
	// fall through to the parser default.
	confidenceRe = regexp.MustCompile(`(?i)confidence:\s*(\d+(?:\.\d+)?)\s*(%)?`)

	// trailingParenRe matches trailing parenthetical commentary on a
	// ranking line, e.g. "Response B (concise but shallow)".
	trailingParenRe = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
)

// indexFold returns the byte index of the first case-insensitive
// occurrence of marker in s, or -1. Markers are ASCII, so the folded
// comparison windows are the marker's byte length.
func indexFold(s, marker string) int {
	if marker == "" {
		return -1
	}
	n := len(marker)
	folded := foldCaser.String(marker)
	for i := 0; i+n <= len(s); i++ {
		if foldCaser.String(s[i:i+n]) == folded {
			return i
		}
	}
	return -1
}

// lastIndexFold returns the byte index of the last case-insensitive
// occurrence of marker in s, or -1.
func lastIndexFold(s, marker string) int {
	if marker == "" {
		return -1
	}
	n := len(marker)
	folded := foldCaser.String(marker)
	for i := len(s) - n; i >= 0; i-- {
		if foldCaser.String(s[i:i+n]) == folded {
			return i
		}
	}
	return -1
}

// sliceBetween returns the trimmed text strictly between the first
// occurrence of start and the next occurrence of end after it. A
// missing end marker (or empty end) slices to the end of the text. The
// second return value is false when start is absent.
func sliceBetween(s, start, end string) (string, bool) {
	from := indexFold(s, start)
	if from == -1 {
		return "", false
	}
	from += len(start)
	rest := s[from:]
	if end != "" {
		if to := indexFold(rest, end); to != -1 {
			rest = rest[:to]
		}
	}
	return strings.TrimSpace(rest), true
}

// sliceAfter returns the trimmed text after the first occurrence of
// marker, reporting whether the marker was found.
func sliceAfter(s, marker string) (string, bool) {
	return sliceBetween(s, marker, "")
}

// findLastMatch returns the submatches of the last match of re in s,
// or nil when there is no match. Modeled on "final decision overrides
// earlier reasoning": when a response restates its verdict, the final
// statement wins.
func findLastMatch(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	return matches[len(matches)-1]
}

// stripTrailingParen removes one trailing parenthetical comment from a
// ranking line.
func stripTrailingParen(s string) string {
	return strings.TrimSpace(trailingParenRe.ReplaceAllString(s, ""))
}

// canonicalLabel normalizes an extracted letter into the display-label
// form used by label maps, e.g. "b" -> "Response B".
func canonicalLabel(letter string) string {
	return "Response " + strings.ToUpper(letter)
}
