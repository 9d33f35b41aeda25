package fakedata

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a category of generator failure.
type ErrorCode string

const (
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
)

// Error is returned when a generator is called outside its documented input
// range. Generators never clamp silently, with the single exception of the
// pie chart slice bounds.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Sentinels for errors.Is comparisons. Matching is by code only, so
// errors.Is(err, ErrInvalidArgument) holds for every invalid-argument error.
var (
	ErrInvalidArgument = &Error{Code: ErrCodeInvalidArgument}
	ErrNotFound        = &Error{Code: ErrCodeNotFound}
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target carries the same error code.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) || e == nil {
		return false
	}
	return e.Code == other.Code
}

// WithContext clones the error with additional contextual metadata.
func (e *Error) WithContext(ctx map[string]any) *Error {
	if e == nil {
		return nil
	}
	merged := make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &Error{Code: e.Code, Message: e.Message, Context: merged}
}

func invalidArgument(generator, message string, context map[string]any) *Error {
	return (&Error{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("%s: %s", generator, message),
	}).WithContext(context)
}

func checkRange(generator string, min, max int) error {
	if min > max {
		return invalidArgument(generator, "min must not exceed max", map[string]any{"min": min, "max": max})
	}
	return nil
}

func checkCount(generator, name string, n int) error {
	if n < 0 {
		return invalidArgument(generator, name+" must not be negative", map[string]any{name: n})
	}
	return nil
}
