package wlc

import "fmt"

// ConfigError reports an invalid or contradictory parameter
// specification. Use errors.Is(err, &ConfigError{}) to check.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid fit configuration: " + e.Reason
}

func (e *ConfigError) Is(target error) bool {
	_, ok := target.(*ConfigError)
	return ok
}

// NoConvergenceError reports that every iteration of a fit run was
// filtered out by the acceptance bounds, leaving no valid result. The
// caller should retry with adjusted bounds or initial values.
type NoConvergenceError struct {
	Label      string
	Iterations int
}

func (e *NoConvergenceError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("no accepted fit for %q after %d iterations", e.Label, e.Iterations)
	}
	return fmt.Sprintf("no accepted fit after %d iterations", e.Iterations)
}

func (e *NoConvergenceError) Is(target error) bool {
	_, ok := target.(*NoConvergenceError)
	return ok
}
