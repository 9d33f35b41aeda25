// Package errors defines the typed failures the CLI reports for settings
// files and command-line usage.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ParseError is a settings file that could not be read or decoded. Line is
// zero when the decoder did not report a position.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	msg := "unknown error"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, msg)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, msg)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError is a decoded value that violates a constraint. Field uses
// the yaml key path, or the flag name for command-line input.
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

// Hint suggests a fix for the typed errors in this package, or returns "".
func Hint(err error) string {
	var parseErr *ParseError
	if stderrors.As(err, &parseErr) {
		if parseErr.Line > 0 {
			return fmt.Sprintf("check the YAML syntax near line %d of %s", parseErr.Line, parseErr.Path)
		}
		return fmt.Sprintf("make sure %s exists and is readable YAML", parseErr.Path)
	}
	var validationErr *ValidationError
	if stderrors.As(err, &validationErr) && validationErr.Field != "" {
		return fmt.Sprintf("fix the value of %s", validationErr.Field)
	}
	return ""
}
