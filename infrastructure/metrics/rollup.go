package metrics

import (
	"sort"
	"strings"

	"github.com/veridex/council/internal/domain"
)

// Shared rollup arithmetic for the protocol routines. Every division
// special-cases a zero denominator to return 0 so no routine can emit
// NaN or Infinity.

// distribution counts the occurrences of each value and returns them
// sorted descending by count. Ties keep first-encounter order (stable
// sort), matching how vote and verdict distributions are displayed.
func distribution(values []string) []domain.CountEntry {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	entries := make([]domain.CountEntry, 0, len(order))
	for _, v := range order {
		entries = append(entries, domain.CountEntry{Value: v, Count: counts[v]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// rate divides qualifying occurrences by eligible occurrences,
// returning 0 for an empty eligible set.
func rate(qualifying, eligible int) float64 {
	if eligible == 0 {
		return 0
	}
	return float64(qualifying) / float64(eligible)
}

// mean averages a sum over a count, returning 0 for an empty count.
func mean(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// wordCount counts whitespace-delimited tokens.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// dimensionAverages groups named numeric scores across stages and
// averages each dimension independently. Dimensions are emitted in
// first-encounter order.
func dimensionAverages(scoresByStage []map[string]float64) []domain.DimensionScore {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, scores := range scoresByStage {
		// Iterate the stage's dimensions deterministically so encounter
		// order does not depend on map iteration.
		dims := make([]string, 0, len(scores))
		for dim := range scores {
			dims = append(dims, dim)
		}
		sort.Strings(dims)
		for _, dim := range dims {
			if counts[dim] == 0 {
				order = append(order, dim)
			}
			sums[dim] += scores[dim]
			counts[dim]++
		}
	}

	averages := make([]domain.DimensionScore, 0, len(order))
	for _, dim := range order {
		averages = append(averages, domain.DimensionScore{
			Dimension: dim,
			Average:   sums[dim] / float64(counts[dim]),
			Samples:   counts[dim],
		})
	}
	return averages
}

// winRates tallies per-model records from (winner, loser) pairs and
// returns them sorted descending by win rate, stable on ties. Models
// are tracked in first-encounter order.
func winRates(pairs [][2]string) []domain.MatchupWinRate {
	wins := make(map[string]int)
	matches := make(map[string]int)
	var order []string

	track := func(model string) {
		if model == "" {
			return
		}
		if matches[model] == 0 && wins[model] == 0 {
			order = append(order, model)
		}
		matches[model]++
	}
	for _, pair := range pairs {
		track(pair[0])
		track(pair[1])
		if pair[0] != "" {
			wins[pair[0]]++
		}
	}

	rates := make([]domain.MatchupWinRate, 0, len(order))
	for _, model := range order {
		rates = append(rates, domain.MatchupWinRate{
			Model:   model,
			Wins:    wins[model],
			Matches: matches[model],
			WinRate: rate(wins[model], matches[model]),
		})
	}
	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].WinRate > rates[j].WinRate
	})
	return rates
}
