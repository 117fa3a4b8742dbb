// Package domain contains pure, dependency-free domain models and types
// for the deliberation compute engine.
package domain

// RankedLabel is one entry of a parsed ranking: an anonymized display
// label and its one-based position in the evaluator's ordering.
type RankedLabel struct {
	// Label is the anonymized display label, e.g. "Response A".
	Label string `json:"label"`

	// Position is the one-based rank assigned to the label.
	// Lower is better.
	Position int `json:"position"`
}

// RankingJudgment is the structured result of parsing one evaluator's
// free-form ranking response. Entries preserve the evaluator's order.
type RankingJudgment struct {
	// Entries holds the ordered (label, position) pairs. Empty when the
	// response contained no recognizable ranking.
	Entries []RankedLabel `json:"entries"`
}

// WinnerJudgment is the structured result of parsing a head-to-head
// verdict response.
type WinnerJudgment struct {
	// Winner is "A" or "B", or empty when no verdict could be extracted.
	Winner string `json:"winner"`

	// Reasoning is the judge's explanation for the verdict.
	Reasoning string `json:"reasoning"`
}

// ConfidenceJudgment is the structured result of parsing a self-reported
// confidence response.
type ConfidenceJudgment struct {
	// Confidence is the extracted confidence in [0, 1]. Defaults to 0.5
	// when no confidence marker was found.
	Confidence float64 `json:"confidence"`

	// Reasoning is the text accompanying the confidence statement.
	Reasoning string `json:"reasoning"`

	// ParsedOK reports whether a confidence marker was actually found.
	// It is true whenever the marker was present, even if the extracted
	// value had to be clamped into range.
	ParsedOK bool `json:"parsed_successfully"`
}

// SynthesisJudgment is the structured result of parsing a synthesis
// response produced by confidence-weighted deliberation.
type SynthesisJudgment struct {
	// Synthesis is the combined answer text.
	Synthesis string `json:"synthesis"`

	// CalibrationNotes captures the model's notes on how confidence
	// values were weighed. Empty when the section is missing.
	CalibrationNotes string `json:"calibration_notes"`
}

// ConfidenceAnswer pairs a model with its raw self-reported confidence.
// It is the input shape for confidence weighting.
type ConfidenceAnswer struct {
	// Model identifies the participant.
	Model string `json:"model"`

	// RawConfidence is the self-reported confidence in [0, 1].
	RawConfidence float64 `json:"raw_confidence"`
}

// ConfidenceWeight is the derived weighting of one participant after
// temperature-controlled softmax normalization. Weights are recomputed
// fresh on every aggregation call and never persisted independently of
// their inputs.
type ConfidenceWeight struct {
	// Model identifies the participant.
	Model string `json:"model"`

	// RawConfidence echoes the input confidence.
	RawConfidence float64 `json:"raw_confidence"`

	// NormalizedWeight is the softmax weight. Weights across one call
	// sum to 1.
	NormalizedWeight float64 `json:"normalized_weight"`

	// WeightPercent is NormalizedWeight expressed as a two-decimal
	// percentage.
	WeightPercent float64 `json:"weight_percent"`

	// IsOutlier flags statistically extreme self-reports
	// (above 0.95 or below 0.10).
	IsOutlier bool `json:"is_outlier"`
}

// ModelRankStat summarizes one model's standing across many rankings.
type ModelRankStat struct {
	// Model is the real model identifier after de-anonymization.
	Model string `json:"model"`

	// AverageRank is the arithmetic mean of all positions recorded for
	// the model. Lower is better.
	AverageRank float64 `json:"average_rank"`

	// RankingsCount is the number of rankings the model appeared in.
	RankingsCount int `json:"rankings_count"`
}

// ModelWinRate summarizes how often a model placed first across peer
// rankings. Wins are counted per individual ranking while appearances
// are counted per unique message; the two denominators are deliberately
// different scopes.
type ModelWinRate struct {
	// Model is the real model identifier.
	Model string `json:"model"`

	// Wins is the number of rankings that placed the model first.
	Wins int `json:"wins"`

	// TotalAppearances is the number of unique messages in which the
	// model held a labeled response.
	TotalAppearances int `json:"total_appearances"`

	// WinRate is Wins / TotalAppearances, 0 when the model never
	// appeared.
	WinRate float64 `json:"win_rate"`
}
