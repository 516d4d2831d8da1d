package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for executor-level failures.
var (
	// ErrTimeout is returned when the osascript subprocess exceeds its
	// wall-clock budget.
	ErrTimeout = errors.New("script execution timed out")

	// ErrOutputTooLarge is returned when the captured subprocess output
	// exceeds the buffer cap.
	ErrOutputTooLarge = errors.New("script output exceeded size limit")
)

// PermissionError reports that macOS denied Apple events to the Reminders
// app. Remediation tells the user which privacy setting to change.
type PermissionError struct {
	Remediation string
}

func (e *PermissionError) Error() string {
	return "access to Reminders denied: " + e.Remediation
}

// ExecError reports a generic native-host failure, with the interpreter's
// diagnostic text passed through verbatim.
type ExecError struct {
	Diagnostic string
}

func (e *ExecError) Error() string {
	return e.Diagnostic
}

// ValidationError reports a missing required input field. It is raised
// before any subprocess is spawned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// IsPermissionDenied reports whether err is (or wraps) a PermissionError.
func IsPermissionDenied(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}
