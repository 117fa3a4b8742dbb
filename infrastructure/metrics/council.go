package metrics

import "github.com/veridex/council/internal/domain"

// Stage types recognized by the council routine.
const (
	stageResponse = "response"
	stageRanking  = "ranking"
)

// computeCouncil summarizes baseline peer-ranking deliberations and
// doubles as the fallback for unrecognized modes.
func computeCouncil(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.CouncilMetrics{}
	models := make(map[string]bool)

	var timeSum float64
	var timed int
	for _, stage := range stages {
		switch stage.StageType {
		case stageResponse:
			m.Responses++
		case stageRanking:
			m.Rankings++
		default:
			continue
		}
		if stage.Model != "" {
			models[stage.Model] = true
		}
		timeSum += float64(stage.ResponseTimeMs)
		timed++
	}

	m.Models = len(models)
	m.AvgResponseTimeMs = mean(timeSum, timed)
	return domain.ModeMetrics{Kind: domain.ModeCouncil, Council: m}
}
