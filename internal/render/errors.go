// Package render rewrites the dashboard HTML document with generated job data.
package render

import "fmt"

// DocumentError represents a failure reading, locking or writing the dashboard document
type DocumentError struct {
	Op    string
	Path  string
	Cause error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to %s document %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to %s document %s", e.Op, e.Path)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}
