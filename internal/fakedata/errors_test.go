package fakedata

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageAndMatching(t *testing.T) {
	t.Parallel()

	err := invalidArgument("number.integer", "min must not exceed max", map[string]any{"min": 2})
	assert.Equal(t, "INVALID_ARGUMENT: number.integer: min must not exceed max", err.Error())

	wrapped := fmt.Errorf("render table: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidArgument))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
}

func TestErrorWithContextClones(t *testing.T) {
	t.Parallel()

	base := &Error{Code: ErrCodeInvalidArgument, Message: "bad", Context: map[string]any{"a": 1}}
	derived := base.WithContext(map[string]any{"b": 2})

	assert.Equal(t, map[string]any{"a": 1}, base.Context)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, derived.Context)

	var nilErr *Error
	assert.Nil(t, nilErr.WithContext(nil))
	assert.Equal(t, "<nil>", nilErr.Error())
}
