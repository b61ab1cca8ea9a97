package endpoint

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrMissingTemplate = errors.New("template is required")
	ErrBadMethod       = errors.New("invalid HTTP method")
	ErrBadStatusCode   = errors.New("status code out of range")
	ErrBadChaosRate    = errors.New("chaos rate must be in [0, 1]")
	ErrBadDelay        = errors.New("delay must be non-negative")
	ErrBadScenario     = errors.New("scenario condition parameter is required")
)

var validMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"DELETE": true,
	"PATCH":  true,
}

// Validate checks the definition's invariants. The template itself is not
// validated: a template that produces malformed JSON is a recoverable,
// per-request condition, not a configuration error.
func (d *Definition) Validate() error {
	if d.Template == "" {
		return ErrMissingTemplate
	}
	if d.Method != "" && !validMethods[d.Method] {
		return fmt.Errorf("%w: %q", ErrBadMethod, d.Method)
	}
	if d.StatusCode < 100 || d.StatusCode > 599 {
		return fmt.Errorf("%w: %d", ErrBadStatusCode, d.StatusCode)
	}
	if d.Chaos != nil && (d.Chaos.Rate < 0 || d.Chaos.Rate > 1) {
		return fmt.Errorf("%w: %v", ErrBadChaosRate, d.Chaos.Rate)
	}
	if d.DelayMs < 0 {
		return fmt.Errorf("%w: %d", ErrBadDelay, d.DelayMs)
	}
	for i, s := range d.Scenarios {
		if s.ConditionParam == "" {
			return fmt.Errorf("%w (scenario %d)", ErrBadScenario, i)
		}
	}
	return nil
}
