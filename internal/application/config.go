// Package application wires the pure compute components into an engine
// facade behind validated configuration. Strict validation lives here:
// an unrecognized protocol identifier or date-range preset is a
// configuration error surfaced to the caller, unlike the silent council
// fallback the metrics dispatch boundary allows.
package application

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/veridex/council/infrastructure/metrics"
	"github.com/veridex/council/internal/domain"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// Date-range presets accepted at the configuration boundary. Each
// resolves to an absolute cutoff except RangeAll, which means
// unbounded history.
const (
	Range7d  = "7d"
	Range30d = "30d"
	Range90d = "90d"
	RangeAll = "all"
)

// EngineConfig is the engine's complete configuration. It decodes from
// YAML and is validated on engine creation.
type EngineConfig struct {
	// DefaultMode is the protocol used when a caller does not name one.
	// Must be a registered protocol identifier.
	DefaultMode string `yaml:"default_mode" json:"default_mode" validate:"required"`

	// Temperature controls confidence-weighting sharpness. Must be
	// positive.
	Temperature float64 `yaml:"temperature" json:"temperature" validate:"required,gt=0"`

	// DateRange is the preset bounding historical queries: "7d", "30d",
	// "90d", or "all".
	DateRange string `yaml:"date_range" json:"date_range" validate:"required,oneof=7d 30d 90d all"`

	// MaxConcurrency limits parallel per-mode computations in batch
	// operations.
	MaxConcurrency int `yaml:"max_concurrency" json:"max_concurrency" validate:"min=1,max=32"`
}

// DefaultEngineConfig returns an EngineConfig with sensible defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		DefaultMode:    domain.ModeCouncil.String(),
		Temperature:    1.0,
		DateRange:      RangeAll,
		MaxConcurrency: 4,
	}
}

// LoadEngineConfig decodes and validates an EngineConfig from YAML.
func LoadEngineConfig(data []byte) (EngineConfig, error) {
	config := DefaultEngineConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return EngineConfig{}, fmt.Errorf("failed to decode engine config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return config, nil
}

// Validate checks the configuration, including strict protocol
// validation of DefaultMode.
func (c EngineConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, err)
	}
	return ValidateMode(c.DefaultMode)
}

// ValidateMode strictly checks a protocol identifier, returning
// ErrUnknownMode for anything outside the dispatch table. Use this
// wherever configuration names a protocol; the metrics boundary's
// council fallback is not a substitute for validation.
func ValidateMode(id string) error {
	if !metrics.Supported(domain.Mode(id)) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownMode, id)
	}
	return nil
}

// ResolveDateRange converts a preset token into an absolute cutoff
// relative to now. RangeAll yields a nil cutoff meaning unbounded;
// unrecognized presets are a validation error, never silently
// defaulted.
func ResolveDateRange(preset string, now time.Time) (*time.Time, error) {
	var days int
	switch preset {
	case Range7d:
		days = 7
	case Range30d:
		days = 30
	case Range90d:
		days = 90
	case RangeAll:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDateRange, preset)
	}
	cutoff := now.UTC().AddDate(0, 0, -days)
	return &cutoff, nil
}
