// Package aggregate combines structured judgments from many evaluators
// into ranked and weighted outcomes. All aggregation is a pure function
// of its inputs: malformed entries are dropped, never fatal, and only
// configuration validation can return an error.
package aggregate

import "github.com/go-playground/validator/v10"

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()
