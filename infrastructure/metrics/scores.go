package metrics

import "github.com/veridex/council/internal/domain"

// Stage types recognized by the scoring-family routines.
const (
	stageSynthesis = "synthesis"
	stageRubric    = "rubric_score"
	stageCluster   = "cluster_assignment"
	stageCheck     = "check"
	stageProbe     = "probe"
)

// Outlier thresholds for self-reported confidence, matching the
// confidence weighter's flagging rules.
const (
	outlierHighConfidence = 0.95
	outlierLowConfidence  = 0.10
)

// computeSynthesis summarizes confidence-weighted synthesis
// deliberations: mean confidence, outlier count, and mean synthesis
// length.
func computeSynthesis(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.SynthesisMetrics{}

	var confidenceSum, wordSum float64
	for _, stage := range stages {
		if stage.StageType != stageSynthesis {
			continue
		}
		m.Syntheses++
		if confidence, ok := payloadFloat(stage, "confidence"); ok {
			confidenceSum += confidence
			if confidence > outlierHighConfidence || confidence < outlierLowConfidence {
				m.OutlierCount++
			}
		}
		if text, ok := payloadString(stage, "synthesis"); ok {
			wordSum += float64(wordCount(text))
		}
	}

	m.AvgConfidence = mean(confidenceSum, m.Syntheses)
	m.AvgSynthesisWords = mean(wordSum, m.Syntheses)
	return domain.ModeMetrics{Kind: domain.ModeSynthesis, Synthesis: m}
}

// computeRubric summarizes rubric-scored deliberations: each named
// dimension is averaged independently across every stage carrying it.
func computeRubric(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.RubricMetrics{}

	var scoresByStage []map[string]float64
	for _, stage := range stages {
		if stage.StageType != stageRubric {
			continue
		}
		scores, ok := payloadScores(stage, "scores")
		if !ok {
			continue
		}
		m.Evaluations++
		scoresByStage = append(scoresByStage, scores)
	}

	m.DimensionAverages = dimensionAverages(scoresByStage)
	return domain.ModeMetrics{Kind: domain.ModeRubric, Rubric: m}
}

// computeCluster summarizes similarity-cluster deliberations: the mean
// score of each named cluster across all assignments.
func computeCluster(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.ClusterMetrics{}

	var scoresByStage []map[string]float64
	for _, stage := range stages {
		if stage.StageType != stageCluster {
			continue
		}
		cluster, okC := payloadString(stage, "cluster")
		score, okS := payloadFloat(stage, "score")
		if !okC || !okS {
			continue
		}
		m.Assignments++
		scoresByStage = append(scoresByStage, map[string]float64{cluster: score})
	}

	m.ClusterAverages = dimensionAverages(scoresByStage)
	return domain.ModeMetrics{Kind: domain.ModeCluster, Cluster: m}
}

// computeGauntlet summarizes pass/fail gauntlet deliberations.
func computeGauntlet(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.GauntletMetrics{}

	var passed int
	for _, stage := range stages {
		if stage.StageType != stageCheck {
			continue
		}
		m.Attempts++
		if ok, found := payloadBool(stage, "passed"); found && ok {
			passed++
		}
	}

	m.TaskSuccessRate = rate(passed, m.Attempts)
	return domain.ModeMetrics{Kind: domain.ModeGauntlet, Gauntlet: m}
}

// computeRedteam summarizes adversarial-probe deliberations.
func computeRedteam(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.RedteamMetrics{}

	var flagged int
	for _, stage := range stages {
		if stage.StageType != stageProbe {
			continue
		}
		m.Probes++
		if wasFlagged, ok := payloadBool(stage, "flagged"); ok && wasFlagged {
			flagged++
		}
	}

	m.FlagRate = rate(flagged, m.Probes)
	return domain.ModeMetrics{Kind: domain.ModeRedteam, Redteam: m}
}
