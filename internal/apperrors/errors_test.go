package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_MatchesSentinels(t *testing.T) {
	cause := errors.New("no rows")
	err := NewAppError(CodeNotFound, "party 7 not found", cause)

	wrapped := fmt.Errorf("load party: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrValidation))
	assert.True(t, errors.Is(wrapped, cause))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "party 7 not found", appErr.Message)
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "VALIDATION: bad date", NewAppError(CodeValidation, "bad date", nil).Error())
	assert.Equal(t, "INTERNAL: query failed: boom", NewAppError(CodeInternal, "query failed", errors.New("boom")).Error())
}
