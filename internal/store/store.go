package store

// Store defines the interface for fit-run persistence operations.
// Implementations must be safe for concurrent use.
//
// Error handling conventions:
//   - Return nil error on success
//   - Return ErrNotFound if the run doesn't exist (for Load/Delete)
//   - Wrap underlying errors with context using fmt.Errorf("context: %w", err)
type Store interface {
	// SaveRun atomically saves a run result. An existing result for the
	// same runID is overwritten.
	SaveRun(runID string, result *RunResult) error

	// LoadRun retrieves the result for the given run.
	// Returns ErrNotFound if no result exists for this runID.
	LoadRun(runID string) (*RunResult, error)

	// ListRuns returns metadata for all stored runs. The returned slice
	// may be empty.
	ListRuns() ([]RunInfo, error)

	// DeleteRun removes the run and all associated artifacts
	// (result.json, trace.jsonl, plot images).
	// Returns ErrNotFound if no run exists for this runID.
	DeleteRun(runID string) error
}

// ErrNotFound is returned when a requested run does not exist.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents a missing run error.
type NotFoundError struct {
	RunID string
}

func (e *NotFoundError) Error() string {
	if e.RunID != "" {
		return "run not found: " + e.RunID
	}
	return "run not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// ValidationError represents invalid run data.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid run result: " + e.Field + " " + e.Reason
}
