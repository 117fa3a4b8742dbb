// Package metrics computes protocol-specific summary statistics from
// persisted deliberation stage records. A static dispatch table maps
// each protocol to a pure aggregation routine; adding a protocol means
// adding one ModeMetrics variant and one table entry, never touching
// the dispatcher. Every routine consumes only the stage types it
// recognizes, ignores the rest, and returns well-defined zero values
// for empty input.
package metrics

import (
	"sort"

	"github.com/veridex/council/internal/domain"
)

// computeFunc is one protocol's aggregation routine.
type computeFunc func(stages []domain.StageRecord) domain.ModeMetrics

// registry is the closed dispatch table over deliberation protocols.
var registry = map[domain.Mode]computeFunc{
	domain.ModeCouncil:    computeCouncil,
	domain.ModeVote:       computeVote,
	domain.ModeJury:       computeJury,
	domain.ModeDebate:     computeDebate,
	domain.ModeTournament: computeTournament,
	domain.ModeSynthesis:  computeSynthesis,
	domain.ModeRubric:     computeRubric,
	domain.ModeDuel:       computeDuel,
	domain.ModeChain:      computeChain,
	domain.ModeRelay:      computeRelay,
	domain.ModeGauntlet:   computeGauntlet,
	domain.ModeCluster:    computeCluster,
	domain.ModeBlueprint:  computeBlueprint,
	domain.ModeConsensus:  computeConsensus,
	domain.ModeRedteam:    computeRedteam,
}

// Compute dispatches the stage records to the requested protocol's
// aggregation routine. The result's Kind always equals the requested
// mode, except that an unrecognized mode falls back to the council
// routine. This silent fallback is a convenience of the dispatch
// boundary only; strict mode validation lives in the application layer.
func Compute(mode domain.Mode, stages []domain.StageRecord) domain.ModeMetrics {
	fn, ok := registry[mode]
	if !ok {
		return computeCouncil(stages)
	}
	return fn(stages)
}

// Supported reports whether the mode has a dedicated routine.
func Supported(mode domain.Mode) bool {
	_, ok := registry[mode]
	return ok
}

// Modes returns all registered protocol identifiers in lexical order.
func Modes() []domain.Mode {
	modes := make([]domain.Mode, 0, len(registry))
	for mode := range registry {
		modes = append(modes, mode)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}
