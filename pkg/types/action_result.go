package types

import (
	"time"
)

// ActionResult represents the outcome of executing an action
type ActionResult struct {
	// Action that was executed, with paths as adjusted at execution time
	Action Action

	// Success indicates whether the action completed successfully
	Success bool

	// Error contains any error that occurred during execution
	Error error

	// Message provides additional information about the result
	Message string

	// Duration is how long the action took to execute
	Duration time.Duration

	// Skipped indicates the action was not attempted (dry run, collision)
	Skipped bool
}

// Failed returns the results that did not succeed
func Failed(results []ActionResult) []ActionResult {
	var out []ActionResult
	for _, r := range results {
		if !r.Success {
			out = append(out, r)
		}
	}
	return out
}
