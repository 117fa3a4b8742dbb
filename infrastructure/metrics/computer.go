package metrics

import (
	"github.com/veridex/council/internal/domain"
	"github.com/veridex/council/internal/ports"
)

var _ ports.MetricsComputer = (*Computer)(nil)

// Computer adapts the package-level dispatch table to the
// ports.MetricsComputer boundary so middleware can wrap it.
// It is stateless and safe for concurrent use.
type Computer struct{}

// NewComputer returns the dispatch-table-backed computer.
func NewComputer() *Computer { return &Computer{} }

// Compute implements ports.MetricsComputer.
func (c *Computer) Compute(mode domain.Mode, stages []domain.StageRecord) domain.ModeMetrics {
	return Compute(mode, stages)
}
