package parse

import (
	"strconv"
	"strings"

	"github.com/veridex/council/internal/domain"
)

// Default confidence reported when a response carries no confidence
// marker.
const defaultConfidence = 0.5

// Ranking extracts a peer ranking from free-form evaluator output.
//
// Precedence order:
//  1. A case-insensitive "FINAL RANKING" marker followed by numbered
//     list lines ("1. Response B ...") wins outright. Trailing
//     parenthetical commentary on a line is ignored.
//  2. A marker whose section has no numbered list falls back to
//     scanning that section for in-order "Response <Letter>" mentions,
//     numbered by first appearance.
//  3. No marker at all applies the same first-appearance scan to the
//     entire text.
//
// Text with neither marker nor mentions yields an empty judgment.
func Ranking(text string) domain.RankingJudgment {
	section, found := sliceAfter(text, markerFinalRanking)
	if !found {
		return domain.RankingJudgment{Entries: scanMentions(text)}
	}

	entries := parseNumberedLines(section)
	if len(entries) == 0 {
		entries = scanMentions(section)
	}
	return domain.RankingJudgment{Entries: entries}
}

// parseNumberedLines extracts (label, position) pairs from numbered
// list lines. The leading number is the position; the line must mention
// a "Response <Letter>" label to count. Repeated labels keep their
// first position.
func parseNumberedLines(section string) []domain.RankedLabel {
	var entries []domain.RankedLabel
	seen := make(map[string]bool)

	for _, m := range numberedLineRe.FindAllStringSubmatch(section, -1) {
		position, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		line := stripTrailingParen(m[2])
		labelMatch := responseLabelRe.FindStringSubmatch(line)
		if labelMatch == nil {
			continue
		}
		label := canonicalLabel(labelMatch[1])
		if seen[label] {
			continue
		}
		seen[label] = true
		entries = append(entries, domain.RankedLabel{Label: label, Position: position})
	}
	return entries
}

// scanMentions numbers "Response <Letter>" mentions by first-appearance
// order, one entry per distinct label.
func scanMentions(text string) []domain.RankedLabel {
	var entries []domain.RankedLabel
	seen := make(map[string]bool)

	for _, m := range responseLabelRe.FindAllStringSubmatch(text, -1) {
		label := canonicalLabel(m[1])
		if seen[label] {
			continue
		}
		seen[label] = true
		entries = append(entries, domain.RankedLabel{Label: label, Position: len(entries) + 1})
	}
	return entries
}

// Winner extracts a head-to-head verdict from free-form judge output.
//
// The last "WINNER: Response A|B" declaration wins when several occur.
// Without a declaration, the first standalone mention of "Response A"
// or "Response B" decides; without either, the judgment carries no
// verdict. Reasoning is the text strictly between "REASONING:" and the
// next "WINNER:" marker (or end of text); when no REASONING marker
// exists the entire trimmed input is the reasoning.
func Winner(text string) domain.WinnerJudgment {
	judgment := domain.WinnerJudgment{Reasoning: reasoningBefore(text, markerWinner)}

	if m := findLastMatch(winnerVerdictRe, text); m != nil {
		judgment.Winner = strings.ToUpper(m[1])
		return judgment
	}
	if m := winnerMentionRe.FindStringSubmatch(text); m != nil {
		judgment.Winner = strings.ToUpper(m[1])
	}
	return judgment
}

// Confidence extracts a self-reported confidence from free-form output.
//
// Interpretation rules, applied in order to the first "CONFIDENCE:"
// number found:
//   - a "%" suffix divides by 100;
//   - a raw value in [0, 1] is used as-is;
//   - a raw value in (1, 100] is a whole percentage, divided by 100;
//   - anything larger is divided by 100 and clamped into [0, 1].
//
// Negative inputs are not matched by the extraction pattern and fall
// through to the default. A missing marker yields 0.5 with ParsedOK
// false; a present marker always sets ParsedOK true, even when the
// value needed clamping.
func Confidence(text string) domain.ConfidenceJudgment {
	judgment := domain.ConfidenceJudgment{
		Confidence: defaultConfidence,
		Reasoning:  reasoningBefore(text, markerConfidence),
	}

	m := confidenceRe.FindStringSubmatch(text)
	if m == nil {
		return judgment
	}
	raw, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return judgment
	}

	var value float64
	switch {
	case m[2] == "%":
		value = raw / 100
	case raw <= 1:
		value = raw
	case raw <= 100:
		value = raw / 100
	default:
		value = raw / 100
	}
	judgment.Confidence = clamp01(value)
	judgment.ParsedOK = true
	return judgment
}

// Synthesis extracts a combined answer and its calibration notes.
//
// The synthesis is the text between "SYNTHESIS:" and "CONFIDENCE
// CALIBRATION NOTES:". A missing notes marker extends the synthesis to
// the end of the text and leaves the notes empty; a missing synthesis
// marker treats the whole remaining text as the synthesis.
func Synthesis(text string) domain.SynthesisJudgment {
	var judgment domain.SynthesisJudgment

	if synthesis, ok := sliceBetween(text, markerSynthesis, markerCalibrationNotes); ok {
		judgment.Synthesis = synthesis
	} else if notesAt := indexFold(text, markerCalibrationNotes); notesAt != -1 {
		judgment.Synthesis = strings.TrimSpace(text[:notesAt])
	} else {
		judgment.Synthesis = strings.TrimSpace(text)
	}

	if notes, ok := sliceAfter(text, markerCalibrationNotes); ok {
		judgment.CalibrationNotes = notes
	}
	return judgment
}

// reasoningBefore slices the text between "REASONING:" and the given
// end marker, defaulting to the whole trimmed input when no REASONING
// marker exists.
func reasoningBefore(text, endMarker string) string {
	if reasoning, ok := sliceBetween(text, markerReasoning, endMarker); ok {
		return reasoning
	}
	return strings.TrimSpace(text)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
