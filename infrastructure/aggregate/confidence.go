package aggregate

import (
	"fmt"
	"math"

	"github.com/veridex/council/internal/domain"
)

// Confidence weighting thresholds.
const (
	// MinEffectiveTemperature is the floor below which the softmax is
	// treated as degenerate and every participant receives equal
	// weight, protecting against division blow-up as the temperature
	// approaches zero.
	MinEffectiveTemperature = 0.001

	// OutlierHighConfidence flags implausibly certain self-reports.
	OutlierHighConfidence = 0.95

	// OutlierLowConfidence flags implausibly uncertain self-reports.
	OutlierLowConfidence = 0.10
)

// ConfidenceWeighter converts raw self-reported confidence values into
// normalized weights via a temperature-controlled softmax. Lower
// temperature sharpens differences toward winner-take-all; higher
// temperature flattens toward uniform. The weighter is stateless and
// thread-safe.
type ConfidenceWeighter struct {
	config WeighterConfig
}

// WeighterConfig defines the configuration parameters for the
// ConfidenceWeighter. All fields are validated during creation.
type WeighterConfig struct {
	// Temperature controls how sharply the softmax separates
	// participants. Must be positive.
	Temperature float64 `yaml:"temperature" json:"temperature" validate:"required,gt=0"`
}

// DefaultWeighterConfig returns a WeighterConfig with sensible defaults.
func DefaultWeighterConfig() WeighterConfig {
	return WeighterConfig{Temperature: 1.0}
}

// NewConfidenceWeighter creates a ConfidenceWeighter with the specified
// configuration. It returns an error if the configuration is invalid.
func NewConfidenceWeighter(config WeighterConfig) (*ConfidenceWeighter, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &ConfidenceWeighter{config: config}, nil
}

// Temperature returns the configured softmax temperature.
func (cw *ConfidenceWeighter) Temperature() float64 { return cw.config.Temperature }

// Weigh normalizes the participants' raw confidences into weights
// summing to 1, preserving input order. A single participant always
// receives weight 1.0. Temperatures below MinEffectiveTemperature
// degrade to equal weights.
func (cw *ConfidenceWeighter) Weigh(answers []domain.ConfidenceAnswer) []domain.ConfidenceWeight {
	return Weigh(answers, cw.config.Temperature)
}

// Weigh is the pure softmax weighting underlying ConfidenceWeighter.
// Output order matches input order. Empty input yields empty output.
func Weigh(answers []domain.ConfidenceAnswer, temperature float64) []domain.ConfidenceWeight {
	if len(answers) == 0 {
		return []domain.ConfidenceWeight{}
	}

	weights := make([]domain.ConfidenceWeight, len(answers))
	n := float64(len(answers))

	if temperature < MinEffectiveTemperature {
		for i, answer := range answers {
			weights[i] = newWeight(answer, 1/n)
		}
		return weights
	}

	exps := make([]float64, len(answers))
	var sum float64
	for i, answer := range answers {
		exps[i] = math.Exp(answer.RawConfidence / temperature)
		sum += exps[i]
	}

	for i, answer := range answers {
		weights[i] = newWeight(answer, exps[i]/sum)
	}
	return weights
}

// newWeight derives the full ConfidenceWeight record for one
// participant from its normalized weight.
func newWeight(answer domain.ConfidenceAnswer, normalized float64) domain.ConfidenceWeight {
	return domain.ConfidenceWeight{
		Model:            answer.Model,
		RawConfidence:    answer.RawConfidence,
		NormalizedWeight: normalized,
		WeightPercent:    math.Round(normalized*10000) / 100,
		IsOutlier: answer.RawConfidence > OutlierHighConfidence ||
			answer.RawConfidence < OutlierLowConfidence,
	}
}
