package store

import "time"

// RunConfig captures the fit configuration a stored run was produced
// with. Field values are copied from the fitter types to avoid import
// cycles with callers.
type RunConfig struct {
	Model    string  `json:"model"`
	Method   string  `json:"method"`
	MinDelta float64 `json:"minDelta"`
	MaxIters int     `json:"maxIters"`
	KBT      float64 `json:"kBT"`
}

// RunResult is the persisted summary of one completed fit run.
type RunResult struct {
	// RunID is the unique identifier for this fit run
	RunID string `json:"runId"`

	// Label identifies the originating dataset
	Label string `json:"label,omitempty"`

	// OptLc is the final accepted contour length [nm]
	OptLc float64 `json:"optLc"`

	// OptLp is the final accepted persistence length [nm]
	OptLp float64 `json:"optLp"`

	// OptS is the final accepted stretch modulus [pN], absent for the
	// basic WLC model
	OptS *float64 `json:"optS,omitempty"`

	// ChiSqr is the minimizer's goodness-of-fit statistic at the final
	// accepted iteration
	ChiSqr float64 `json:"chisqr"`

	// Iterations is the iteration index of the final accepted record
	Iterations int `json:"iterations"`

	// Timestamp records when this run completed
	Timestamp time.Time `json:"timestamp"`

	// Config holds the fit configuration for later inspection
	Config RunConfig `json:"config"`
}

// RunInfo contains metadata about a run without the full result payload.
// Used for listing runs efficiently.
type RunInfo struct {
	RunID      string    `json:"runId"`
	Label      string    `json:"label,omitempty"`
	Model      string    `json:"model"`
	OptLc      float64   `json:"optLc"`
	OptLp      float64   `json:"optLp"`
	Iterations int       `json:"iterations"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewRunResult creates a persistable run result stamped with the current
// time.
func NewRunResult(runID, label string, optLc, optLp float64, optS *float64, chisqr float64, iterations int, config RunConfig) *RunResult {
	return &RunResult{
		RunID:      runID,
		Label:      label,
		OptLc:      optLc,
		OptLp:      optLp,
		OptS:       optS,
		ChiSqr:     chisqr,
		Iterations: iterations,
		Timestamp:  time.Now(),
		Config:     config,
	}
}

// ToInfo converts a full RunResult to RunInfo (metadata only).
func (r *RunResult) ToInfo() RunInfo {
	return RunInfo{
		RunID:      r.RunID,
		Label:      r.Label,
		Model:      r.Config.Model,
		OptLc:      r.OptLc,
		OptLp:      r.OptLp,
		Iterations: r.Iterations,
		Timestamp:  r.Timestamp,
	}
}

// Validate checks if the run result has valid data.
func (r *RunResult) Validate() error {
	if r.RunID == "" {
		return &ValidationError{Field: "RunID", Reason: "cannot be empty"}
	}
	if r.Config.Model == "" {
		return &ValidationError{Field: "Config.Model", Reason: "cannot be empty"}
	}
	if r.Iterations <= 0 {
		return &ValidationError{Field: "Iterations", Reason: "must be positive"}
	}
	return nil
}
