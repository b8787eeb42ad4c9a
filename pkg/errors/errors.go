package errors

import (
	"fmt"
)

// Operations recorded on an ExecutionError.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExecutionError represents a failure while reading or writing a device resource.
type ExecutionError struct {
	Resource string
	Op       string
	Err      error
}

// NewExecutionError constructs an ExecutionError for the named resource.
func NewExecutionError(resource, op string, err error) error {
	return &ExecutionError{Resource: resource, Op: op, Err: err}
}

func (e *ExecutionError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Resource != "" && e.Op != "":
		return fmt.Sprintf("execution error on %s (%s): %v", e.Resource, e.Op, e.Err)
	case e.Resource != "":
		return fmt.Sprintf("execution error on %s: %v", e.Resource, e.Err)
	default:
		return fmt.Sprintf("execution error: %v", e.Err)
	}
}

// Unwrap exposes the root error.
func (e *ExecutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
