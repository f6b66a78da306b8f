package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Invalid course data: missing course_name")

	assert.True(t, errors.Is(err, ErrValidationFailed), "must unwrap to the validation sentinel")
	assert.Equal(t, "Invalid course data: missing course_name", err.Error())
}

func TestCustomErrorFallsBackToWrapped(t *testing.T) {
	err := &CustomError{Err: ErrValidationFailed}
	assert.Equal(t, ErrValidationFailed.Error(), err.Error())

	empty := &CustomError{}
	assert.Equal(t, "unknown error", empty.Error())
}
