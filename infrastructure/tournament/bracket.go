// Package tournament builds and advances single-elimination brackets
// over deliberation contestants. The engine holds no state of its own:
// every operation is a pure function over explicit round history, so
// callers can persist rounds between judgments and resume anywhere.
package tournament

import (
	"math"

	"github.com/veridex/council/internal/domain"
)

// TotalRounds returns ceil(log2(n)), the number of rounds a bracket of
// n contestants needs. It returns 0 for fewer than two contestants.
func TotalRounds(n int) int {
	if n < 2 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(n))))
}

// SeedRound1 pairs the contestants sequentially into the first round's
// matchups. An odd contestant count gives the last contestant a bye:
// no second contestant, no judged decision, automatic advancement.
// Match indices start at 0.
func SeedRound1(contestants []domain.Contestant) ([]domain.Matchup, error) {
	if len(contestants) < 2 {
		return nil, domain.ErrTooFewContestants
	}
	return pairRound(contestants, 1), nil
}

// Advance re-pairs a round's winners into the next round's matchups
// using the identical sequential pairing as seeding: an odd winner
// count gives the last winner a bye, and match indices reset to 0.
func Advance(winners []domain.Contestant, roundNumber int) []domain.Matchup {
	return pairRound(winners, roundNumber)
}

// pairRound pairs contestants two at a time in input order. The
// trailing contestant of an odd list becomes the round's single bye.
func pairRound(contestants []domain.Contestant, roundNumber int) []domain.Matchup {
	matchups := make([]domain.Matchup, 0, (len(contestants)+1)/2)

	for i := 0; i < len(contestants); i += 2 {
		m := domain.Matchup{
			RoundNumber: roundNumber,
			MatchIndex:  len(matchups),
			ContestantA: contestants[i],
		}
		if i+1 < len(contestants) {
			b := contestants[i+1]
			m.ContestantB = &b
		} else {
			m.IsBye = true
			m.WinnerModel = m.ContestantA.Model
		}
		matchups = append(matchups, m)
	}
	return matchups
}

// Decide records a judged result on a matchup and returns the updated
// copy. winner must be "A" or "B"; any other value leaves the matchup
// undecided. Byes are returned unchanged since they carry no judged
// decision.
func Decide(m domain.Matchup, winner, reasoning string, responseTimeMs int64) domain.Matchup {
	if m.IsBye || m.ContestantB == nil {
		return m
	}
	switch winner {
	case "A":
		m.WinnerModel = m.ContestantA.Model
		m.LoserModel = m.ContestantB.Model
	case "B":
		m.WinnerModel = m.ContestantB.Model
		m.LoserModel = m.ContestantA.Model
	default:
		return m
	}
	m.Winner = winner
	m.JudgeReasoning = reasoning
	m.ResponseTimeMs = responseTimeMs
	return m
}

// CompleteRound assembles a TournamentRound from its decided matchups,
// collecting winners in match order and the models eliminated this
// round. Undecided non-bye matchups contribute neither winners nor
// eliminations.
func CompleteRound(roundNumber int, matchups []domain.Matchup) domain.TournamentRound {
	round := domain.TournamentRound{
		RoundNumber: roundNumber,
		Matchups:    matchups,
	}
	for _, m := range matchups {
		switch {
		case m.IsBye:
			round.Winners = append(round.Winners, m.ContestantA)
		case m.Winner == "A":
			round.Winners = append(round.Winners, m.ContestantA)
			round.Eliminated = append(round.Eliminated, m.ContestantB.Model)
		case m.Winner == "B":
			round.Winners = append(round.Winners, *m.ContestantB)
			round.Eliminated = append(round.Eliminated, m.ContestantA.Model)
		}
	}
	return round
}

// IsFinal reports whether a round produced exactly one winner, the
// bracket's terminal state.
func IsFinal(round domain.TournamentRound) bool {
	return len(round.Winners) == 1
}

// Champion returns the bracket winner once the last round has exactly
// one winner. The second return value is false while the bracket is
// still in progress.
func Champion(rounds []domain.TournamentRound) (domain.Contestant, bool) {
	if len(rounds) == 0 {
		return domain.Contestant{}, false
	}
	last := rounds[len(rounds)-1]
	if !IsFinal(last) {
		return domain.Contestant{}, false
	}
	return last.Winners[0], true
}

// ReconstructPath replays a model's route through the bracket. Each
// round the model appears in emits one entry: a bye with no opponent,
// a win with the defeated opponent, or the loss that eliminated it.
// Nothing is emitted past elimination.
func ReconstructPath(model string, rounds []domain.TournamentRound) []domain.PathEntry {
	var path []domain.PathEntry

	for _, round := range rounds {
		for _, m := range round.Matchups {
			entry, eliminated, found := pathEntry(model, round.RoundNumber, m)
			if !found {
				continue
			}
			path = append(path, entry)
			if eliminated {
				return path
			}
			break
		}
	}
	return path
}

// pathEntry classifies one matchup from the perspective of model. The
// second return value reports elimination; the third whether the model
// appeared in the matchup at all.
func pathEntry(model string, roundNumber int, m domain.Matchup) (domain.PathEntry, bool, bool) {
	inA := m.ContestantA.Model == model
	inB := m.ContestantB != nil && m.ContestantB.Model == model
	if !inA && !inB {
		return domain.PathEntry{}, false, false
	}

	if m.IsBye {
		return domain.PathEntry{Round: roundNumber, Result: domain.PathBye}, false, true
	}
	if m.WinnerModel == model {
		return domain.PathEntry{
			Round:    roundNumber,
			Opponent: m.LoserModel,
			Result:   domain.PathWon,
		}, false, true
	}
	opponent := m.ContestantA.Model
	if inA {
		opponent = m.ContestantB.Model
	}
	return domain.PathEntry{
		Round:    roundNumber,
		Opponent: opponent,
		Result:   domain.PathLost,
	}, true, true
}
