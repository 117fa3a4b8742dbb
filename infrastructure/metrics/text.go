package metrics

import (
	"github.com/agnivade/levenshtein"

	"github.com/veridex/council/internal/domain"
)

// Stage types recognized by the text-shape routines.
const (
	stageRevision  = "revision"
	stageDefense   = "defense"
	stageLink      = "link"
	stageLeg       = "leg"
	stageBlueprint = "blueprint"
)

// computeDebate summarizes debate-with-revision deliberations. The
// revision delta is the word-count change between the original argument
// and its revision; similarity is the normalized edit distance between
// the two texts, so a delta near zero with low similarity still shows
// a heavy rewrite.
func computeDebate(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.DebateMetrics{}

	var deltaSum, similaritySum float64
	var defenses, accepted int
	for _, stage := range stages {
		switch stage.StageType {
		case stageRevision:
			original, okO := payloadString(stage, "original")
			revised, okR := payloadString(stage, "revised")
			if !okO || !okR {
				continue
			}
			m.Debates++
			deltaSum += float64(wordCount(revised) - wordCount(original))
			similaritySum += textSimilarity(original, revised)
		case stageDefense:
			defenses++
			if ok, found := payloadBool(stage, "accepted"); found && ok {
				accepted++
			}
		}
	}

	m.AvgRevisionDelta = mean(deltaSum, m.Debates)
	m.AvgRevisionSimilarity = mean(similaritySum, m.Debates)
	m.DefenseAcceptRate = rate(accepted, defenses)
	return domain.ModeMetrics{Kind: domain.ModeDebate, Debate: m}
}

// textSimilarity maps Levenshtein distance to a [0, 1] similarity,
// where 1 means identical. Two empty strings are identical.
func textSimilarity(a, b string) float64 {
	longest := len([]rune(a))
	if n := len([]rune(b)); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// computeChain summarizes sequential-refinement deliberations: total
// link count, overall mean words per link, and the per-position word
// progression along the chain.
func computeChain(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.ChainMetrics{}

	var wordSums []float64
	var linkCounts []int
	var totalWords float64
	for _, stage := range stages {
		if stage.StageType != stageLink {
			continue
		}
		text, ok := payloadString(stage, "text")
		if !ok {
			continue
		}
		m.Links++
		words := wordCount(text)
		totalWords += float64(words)

		order := stage.StageOrder
		if order < 0 {
			continue
		}
		for len(wordSums) <= order {
			wordSums = append(wordSums, 0)
			linkCounts = append(linkCounts, 0)
		}
		wordSums[order] += float64(words)
		linkCounts[order]++
	}

	m.AvgWordsPerLink = mean(totalWords, m.Links)
	m.WordProgression = make([]float64, len(wordSums))
	for i := range wordSums {
		m.WordProgression[i] = mean(wordSums[i], linkCounts[i])
	}
	return domain.ModeMetrics{Kind: domain.ModeChain, Chain: m}
}

// computeRelay summarizes relay deliberations: leg count, skip rate,
// and mean leg duration.
func computeRelay(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.RelayMetrics{}

	var skipped int
	var timeSum float64
	for _, stage := range stages {
		if stage.StageType != stageLeg {
			continue
		}
		m.Legs++
		timeSum += float64(stage.ResponseTimeMs)
		if wasSkipped, ok := payloadBool(stage, "skipped"); ok && wasSkipped {
			skipped++
		}
	}

	m.SkipRate = rate(skipped, m.Legs)
	m.AvgResponseTimeMs = mean(timeSum, m.Legs)
	return domain.ModeMetrics{Kind: domain.ModeRelay, Relay: m}
}

// computeBlueprint summarizes plan-first deliberations: blueprint count
// and mean blueprint word count.
func computeBlueprint(stages []domain.StageRecord) domain.ModeMetrics {
	m := &domain.BlueprintMetrics{}

	var wordSum float64
	for _, stage := range stages {
		if stage.StageType != stageBlueprint {
			continue
		}
		text, ok := payloadString(stage, "blueprint")
		if !ok {
			continue
		}
		m.Blueprints++
		wordSum += float64(wordCount(text))
	}

	m.AvgBlueprintWords = mean(wordSum, m.Blueprints)
	return domain.ModeMetrics{Kind: domain.ModeBlueprint, Blueprint: m}
}
