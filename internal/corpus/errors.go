// Package corpus loads the career corpus from CSV into an immutable in-memory collection.
package corpus

import (
	"fmt"
	"strings"
)

// LoadError represents an error during file I/O or CSV parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ColumnError represents a required column missing from the corpus header
type ColumnError struct {
	Missing string
	Found   []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("no column starting with '%s' found. Columns: [%s]", e.Missing, strings.Join(e.Found, ", "))
}
