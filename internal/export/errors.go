package export

import "fmt"

// ExportError represents a failure writing an export file
type ExportError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("export error: %s (%s)", e.Message, e.Path)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
