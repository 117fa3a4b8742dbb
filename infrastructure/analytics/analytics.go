// Package analytics builds cross-protocol rollups from raw usage rows:
// daily histograms, weighted global summaries, protocol distribution,
// and a cross-mode model leaderboard. All rollups are deterministic
// pure functions of their input rows.
package analytics

import (
	"sort"
	"time"

	"github.com/veridex/council/internal/domain"
)

// DailyCount is one day of deliberation activity.
type DailyCount struct {
	// Date is the UTC calendar date in ISO form (2006-01-02).
	Date string `json:"date"`

	// Count is the number of messages recorded on that date.
	Count int `json:"count"`
}

// ModelTimeSample is one model's pre-aggregated response-time summary,
// the input shape for the weighted global summary.
type ModelTimeSample struct {
	// Model identifies the model.
	Model string `json:"model"`

	// AvgResponseTimeMs is the model's mean response time.
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`

	// SampleCount is how many responses the average covers.
	SampleCount int `json:"sample_count"`
}

// Summary is the weighted global response-time summary.
type Summary struct {
	// AvgResponseTimeMs is the sample-count-weighted mean across all
	// models, not a mean of per-model means.
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`

	// TotalSamples is the number of responses covered.
	TotalSamples int `json:"total_samples"`

	// Models is the number of models covered.
	Models int `json:"models"`
}

// ModeCount pairs a protocol with its message count.
type ModeCount struct {
	// Mode is the protocol identifier.
	Mode domain.Mode `json:"mode"`

	// Count is the number of messages run under the protocol.
	Count int `json:"count"`
}

// ModeShare is one protocol's share of overall usage.
type ModeShare struct {
	// Mode is the protocol identifier.
	Mode domain.Mode `json:"mode"`

	// Count is the protocol's message count.
	Count int `json:"count"`

	// Percentage is Count over the total across all modes, in [0, 1].
	Percentage float64 `json:"percentage"`
}

// LeaderboardEntry is one model's cross-protocol standing.
type LeaderboardEntry struct {
	// Model identifies the model.
	Model string `json:"model"`

	// Score is the mean normalized response-time rank across every
	// mode the model participated in, in [0, 1]; higher is better.
	Score float64 `json:"score"`

	// Modes is how many protocols the model participated in.
	Modes int `json:"modes"`

	// AvgResponseTimeMs is the model's overall mean response time.
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
}

// DailyUsage groups message timestamps by UTC calendar date and counts
// per date, sorted ascending by date. Empty input yields empty output.
func DailyUsage(rows []domain.UsageRow) []DailyCount {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.CreatedAt.UTC().Format(time.DateOnly)]++
	}

	days := make([]DailyCount, 0, len(counts))
	for date, count := range counts {
		days = append(days, DailyCount{Date: date, Count: count})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// WeightedSummary combines per-model response-time averages into one
// global figure weighted by sample count, so a model with thousands of
// responses moves the average more than one with three.
func WeightedSummary(samples []ModelTimeSample) Summary {
	var weightedSum float64
	var total int
	for _, sample := range samples {
		weightedSum += sample.AvgResponseTimeMs * float64(sample.SampleCount)
		total += sample.SampleCount
	}

	summary := Summary{TotalSamples: total, Models: len(samples)}
	if total > 0 {
		summary.AvgResponseTimeMs = weightedSum / float64(total)
	}
	return summary
}

// ModeDistribution converts per-protocol counts into usage shares,
// sorted descending by count with ties in input order. A zero total
// yields an empty result rather than dividing by zero.
func ModeDistribution(counts []ModeCount) []ModeShare {
	var total int
	for _, mc := range counts {
		total += mc.Count
	}
	if total == 0 {
		return []ModeShare{}
	}

	shares := make([]ModeShare, 0, len(counts))
	for _, mc := range counts {
		shares = append(shares, ModeShare{
			Mode:       mc.Mode,
			Count:      mc.Count,
			Percentage: float64(mc.Count) / float64(total),
		})
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Count > shares[j].Count })
	return shares
}

// ModeDistributionFromRows tallies usage rows per protocol in
// first-encounter order, then computes the distribution.
func ModeDistributionFromRows(rows []domain.UsageRow) []ModeShare {
	counts := make(map[domain.Mode]int)
	var order []domain.Mode
	for _, row := range rows {
		if counts[row.Mode] == 0 {
			order = append(order, row.Mode)
		}
		counts[row.Mode]++
	}

	modeCounts := make([]ModeCount, 0, len(order))
	for _, mode := range order {
		modeCounts = append(modeCounts, ModeCount{Mode: mode, Count: counts[mode]})
	}
	return ModeDistribution(modeCounts)
}

// ModelTimeSamples reduces usage rows to per-model response-time
// averages in first-encounter order, the input shape WeightedSummary
// expects.
func ModelTimeSamples(rows []domain.UsageRow) []ModelTimeSample {
	type accum struct {
		sum   float64
		count int
	}
	totals := make(map[string]*accum)
	var order []string

	for _, row := range rows {
		if row.Model == "" {
			continue
		}
		if _, ok := totals[row.Model]; !ok {
			totals[row.Model] = &accum{}
			order = append(order, row.Model)
		}
		totals[row.Model].sum += float64(row.ResponseTimeMs)
		totals[row.Model].count++
	}

	samples := make([]ModelTimeSample, 0, len(order))
	for _, model := range order {
		acc := totals[model]
		samples = append(samples, ModelTimeSample{
			Model:             model,
			AvgResponseTimeMs: acc.sum / float64(acc.count),
			SampleCount:       acc.count,
		})
	}
	return samples
}

// Leaderboard scores each model by its response-time rank within every
// protocol it participated in. Within a mode the fastest model earns
// 1.0 and the slowest 0.0, linearly by rank; a model's overall score is
// the mean of its per-mode scores. Output is sorted descending by
// score, stable on ties. Empty input yields empty output.
func Leaderboard(rows []domain.UsageRow) []LeaderboardEntry {
	type modelTimes struct {
		sum   float64
		count int
	}

	// Per-mode, per-model response-time averages, with first-encounter
	// order preserved for deterministic ranking of ties.
	perMode := make(map[domain.Mode]map[string]*modelTimes)
	modelOrder := make(map[domain.Mode][]string)
	var modeOrder []domain.Mode

	overall := make(map[string]*modelTimes)
	var overallOrder []string

	for _, row := range rows {
		if row.Model == "" {
			continue
		}
		if _, ok := perMode[row.Mode]; !ok {
			perMode[row.Mode] = make(map[string]*modelTimes)
			modeOrder = append(modeOrder, row.Mode)
		}
		byModel := perMode[row.Mode]
		if _, ok := byModel[row.Model]; !ok {
			byModel[row.Model] = &modelTimes{}
			modelOrder[row.Mode] = append(modelOrder[row.Mode], row.Model)
		}
		byModel[row.Model].sum += float64(row.ResponseTimeMs)
		byModel[row.Model].count++

		if _, ok := overall[row.Model]; !ok {
			overall[row.Model] = &modelTimes{}
			overallOrder = append(overallOrder, row.Model)
		}
		overall[row.Model].sum += float64(row.ResponseTimeMs)
		overall[row.Model].count++
	}

	scoreSums := make(map[string]float64)
	modesPlayed := make(map[string]int)

	for _, mode := range modeOrder {
		byModel := perMode[mode]
		ranked := make([]string, len(modelOrder[mode]))
		copy(ranked, modelOrder[mode])
		sort.SliceStable(ranked, func(i, j int) bool {
			a, b := byModel[ranked[i]], byModel[ranked[j]]
			return a.sum/float64(a.count) < b.sum/float64(b.count)
		})

		for rank, model := range ranked {
			score := 1.0
			if len(ranked) > 1 {
				score = 1 - float64(rank)/float64(len(ranked)-1)
			}
			scoreSums[model] += score
			modesPlayed[model]++
		}
	}

	entries := make([]LeaderboardEntry, 0, len(overallOrder))
	for _, model := range overallOrder {
		times := overall[model]
		entries = append(entries, LeaderboardEntry{
			Model:             model,
			Score:             scoreSums[model] / float64(modesPlayed[model]),
			Modes:             modesPlayed[model],
			AvgResponseTimeMs: times.sum / float64(times.count),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	return entries
}
