package metrics

import (
	"sort"

	"github.com/veridex/council/internal/domain"
)

// Stage types recognized by the voting-family routines.
const (
	stageVote       = "vote"
	stageVoteResult = "vote_result"
	stageVerdict    = "verdict"
	stagePosition   = "position"
)

// computeVote summarizes majority-vote deliberations: the per-choice
// distribution and how often a round needed a tiebreaker.
func computeVote(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.VoteMetrics{}
	var choices []string
	var rounds, tiebreaks int

	for _, stage := range stages {
		switch stage.StageType {
		case stageVote:
			if choice, ok := payloadString(stage, "choice"); ok {
				choices = append(choices, choice)
			}
			m.TotalVotes++
		case stageVoteResult:
			rounds++
			if used, ok := payloadBool(stage, "tiebreaker_used"); ok && used {
				tiebreaks++
			}
		}
	}

	m.Distribution = distribution(choices)
	m.TiebreakerRate = rate(tiebreaks, rounds)
	return domain.ModeMetrics{Kind: domain.ModeVote, Vote: m}
}

// computeJury summarizes juror-panel deliberations: the verdict label
// distribution and the fraction of messages whose jurors all agreed.
func computeJury(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.JuryMetrics{}
	var verdicts []string
	byMessage := make(map[string][]string)
	var messageOrder []string

	for _, stage := range stages {
		if stage.StageType != stageVerdict {
			continue
		}
		verdict, ok := payloadString(stage, "verdict")
		if !ok {
			continue
		}
		m.Verdicts++
		verdicts = append(verdicts, verdict)
		if _, seen := byMessage[stage.MessageID]; !seen {
			messageOrder = append(messageOrder, stage.MessageID)
		}
		byMessage[stage.MessageID] = append(byMessage[stage.MessageID], verdict)
	}

	var unanimous int
	for _, messageID := range messageOrder {
		panel := byMessage[messageID]
		agreed := true
		for _, v := range panel[1:] {
			if v != panel[0] {
				agreed = false
				break
			}
		}
		if agreed {
			unanimous++
		}
	}

	m.VerdictDistribution = distribution(verdicts)
	m.UnanimousRate = rate(unanimous, len(messageOrder))
	return domain.ModeMetrics{Kind: domain.ModeJury, Jury: m}
}

// computeConsensus summarizes iterative-agreement deliberations. Each
// position stage carries one model's stance for one round (the stage
// order). The final round's majority is the consensus; the agreement
// rate is how many positions across all rounds matched it.
func computeConsensus(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.ConsensusMetrics{}

	byRound := make(map[int][]string)
	var positions []string
	for _, stage := range stages {
		if stage.StageType != stagePosition {
			continue
		}
		position, ok := payloadString(stage, "position")
		if !ok {
			continue
		}
		byRound[stage.StageOrder] = append(byRound[stage.StageOrder], position)
		positions = append(positions, position)
	}
	if len(byRound) == 0 {
		return domain.ModeMetrics{Kind: domain.ModeConsensus, Consensus: m}
	}

	rounds := make([]int, 0, len(byRound))
	for round := range byRound {
		rounds = append(rounds, round)
	}
	sort.Ints(rounds)
	m.Rounds = len(rounds)

	final := distribution(byRound[rounds[len(rounds)-1]])
	m.FinalDistribution = final

	majority := final[0].Value
	var agreeing int
	for _, position := range positions {
		if position == majority {
			agreeing++
		}
	}
	m.AgreementRate = rate(agreeing, len(positions))
	return domain.ModeMetrics{Kind: domain.ModeConsensus, Consensus: m}
}
