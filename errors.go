package redline

import "fmt"

// BackendError reports a document backend failure that aborted a comparison
// run. Runs are all-or-nothing: when a backend call fails during open or
// extraction, no partial result is published.
type BackendError struct {
	// Stage names the failing operation: "open", "extract".
	Stage string

	// Page is the 0-indexed page being processed, or -1 when the failure is
	// not page-scoped.
	Page int

	// Err is the underlying backend error.
	Err error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	if e.Page >= 0 {
		return fmt.Sprintf("backend %s failed on page %d: %v", e.Stage, e.Page, e.Err)
	}
	return fmt.Sprintf("backend %s failed: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying backend error.
func (e *BackendError) Unwrap() error {
	return e.Err
}
