package metrics

import "github.com/veridex/council/internal/domain"

// Stage types recognized by the bracket-family routines.
const (
	stageMatchup  = "matchup"
	stageChampion = "champion"
)

// computeTournament summarizes bracket deliberations: champion counts,
// per-model judged-matchup records, and bye bookkeeping. Byes are not
// judged matches and never count toward a model's record.
func computeTournament(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.TournamentMetrics{}
	var champions []string
	var pairs [][2]string

	for _, stage := range stages {
		switch stage.StageType {
		case stageMatchup:
			if isBye, ok := payloadBool(stage, "is_bye"); ok && isBye {
				m.ByeCount++
				continue
			}
			winner, _ := payloadString(stage, "winner_model")
			loser, _ := payloadString(stage, "loser_model")
			if winner == "" && loser == "" {
				continue
			}
			m.TotalMatches++
			pairs = append(pairs, [2]string{winner, loser})
		case stageChampion:
			if champion, ok := payloadString(stage, "model"); ok {
				champions = append(champions, champion)
			}
		}
	}

	m.ChampionDistribution = distribution(champions)
	m.ModelWinRates = winRates(pairs)
	return domain.ModeMetrics{Kind: domain.ModeTournament, Tournament: m}
}

// computeDuel summarizes judged head-to-head deliberations: the A/B
// verdict split and each model's duel record.
func computeDuel(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.DuelMetrics{}
	var sides []string
	var pairs [][2]string

	for _, stage := range stages {
		if stage.StageType != stageVerdict {
			continue
		}
		side, ok := payloadString(stage, "winner")
		if !ok {
			continue
		}
		m.Duels++
		sides = append(sides, side)

		winner, _ := payloadString(stage, "winner_model")
		loser, _ := payloadString(stage, "loser_model")
		if winner != "" || loser != "" {
			pairs = append(pairs, [2]string{winner, loser})
		}
	}

	m.WinnerSplit = distribution(sides)
	m.ModelWinRates = winRates(pairs)
	return domain.ModeMetrics{Kind: domain.ModeDuel, Duel: m}
}
