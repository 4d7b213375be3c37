package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTarget            = errors.New("empty target")
	ErrUnknownTool            = errors.New("unknown tool")
	ErrToolUnavailable        = errors.New("tool binary not found")
	ErrToolExecutionFailed    = errors.New("tool execution failed")
	ErrToolTimeout            = errors.New("tool execution timed out")
	ErrNotFoundOrUnauthorized = errors.New("scan not found or not owned by caller")
	ErrPartialAuthorization   = errors.New("one or more scans not found or not owned by caller")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailTaken             = errors.New("email already registered")
)

// ToolError wraps a failure from an external tool run, keeping the combined
// stdout/stderr around for diagnostics.
type ToolError struct {
	Tool   string
	Output string
	Err    error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %s failed: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

func NewToolError(tool, output string, err error) *ToolError {
	return &ToolError{Tool: tool, Output: output, Err: err}
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
