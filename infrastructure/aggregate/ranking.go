package aggregate

import (
	"sort"

	"github.com/veridex/council/internal/domain"
)

// MessageRankings groups everything one deliberation message produced
// for ranking aggregation: the round's anonymization table and the
// rankings its evaluators returned.
type MessageRankings struct {
	// MessageID identifies the deliberation message.
	MessageID string `json:"message_id"`

	// Labels is the round's label map, used to de-anonymize entries.
	Labels *domain.LabelMap `json:"-"`

	// Rankings are the parsed evaluator rankings for this message.
	Rankings []domain.RankingJudgment `json:"rankings"`
}

// Rankings combines many evaluator rankings into per-model average-rank
// statistics. Every (label, position) pair is resolved through the
// label map; pairs whose label is absent are silently dropped so an
// evaluator hallucinating a label never breaks aggregation. Output is
// sorted ascending by average rank (lower is better) with ties kept in
// first-encounter order. Empty input yields empty output.
func Rankings(rankings []domain.RankingJudgment, labels *domain.LabelMap) []domain.ModelRankStat {
	type accum struct {
		sum   int
		count int
	}
	totals := make(map[string]*accum)
	var order []string

	for _, ranking := range rankings {
		for _, entry := range ranking.Entries {
			model, ok := labels.Model(entry.Label)
			if !ok {
				continue
			}
			acc, seen := totals[model]
			if !seen {
				acc = &accum{}
				totals[model] = acc
				order = append(order, model)
			}
			acc.sum += entry.Position
			acc.count++
		}
	}

	stats := make([]domain.ModelRankStat, 0, len(order))
	for _, model := range order {
		acc := totals[model]
		stats = append(stats, domain.ModelRankStat{
			Model:         model,
			AverageRank:   float64(acc.sum) / float64(acc.count),
			RankingsCount: acc.count,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AverageRank < stats[j].AverageRank
	})
	return stats
}

// WinRates computes first-place rates across many messages.
//
// Wins are ranking-scoped: every individual ranking that places a model
// first counts one win. Appearances are message-scoped: a model's
// presence in a message's label map counts one appearance regardless of
// how many evaluators ranked it. A message with more evaluator rankings
// than council members can therefore push a model's rate past what a
// per-ranking denominator would allow. Output is sorted descending by
// win rate, stable on ties.
func WinRates(messages []MessageRankings) []domain.ModelWinRate {
	wins := make(map[string]int)
	appearances := make(map[string]int)
	seen := make(map[string]bool)
	var order []string

	for _, msg := range messages {
		if msg.Labels == nil {
			continue
		}
		for _, model := range msg.Labels.Models() {
			if !seen[model] {
				seen[model] = true
				order = append(order, model)
			}
			appearances[model]++
		}
		for _, ranking := range msg.Rankings {
			for _, entry := range ranking.Entries {
				if entry.Position != 1 {
					continue
				}
				model, ok := msg.Labels.Model(entry.Label)
				if !ok {
					continue
				}
				wins[model]++
			}
		}
	}

	rates := make([]domain.ModelWinRate, 0, len(order))
	for _, model := range order {
		total := appearances[model]
		rate := 0.0
		if total > 0 {
			rate = float64(wins[model]) / float64(total)
		}
		rates = append(rates, domain.ModelWinRate{
			Model:            model,
			Wins:             wins[model],
			TotalAppearances: total,
			WinRate:          rate,
		})
	}

	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].WinRate > rates[j].WinRate
	})
	return rates
}
