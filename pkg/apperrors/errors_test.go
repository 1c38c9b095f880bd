package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	err := NotFound("ReviewCycleGroup", 42)
	assert.Equal(t, "ReviewCycleGroup not found with id: 42", err.Error())
	assert.Equal(t, CodeNotFound, err.Code)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestConflictWrapped(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", Conflict(CodeCriteriaExists, "taken"))
	assert.ErrorIs(t, wrapped, ErrConflict)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindConflict, appErr.Kind)
	assert.Equal(t, CodeCriteriaExists, appErr.Code)
}

func TestValidationCause(t *testing.T) {
	cause := errors.New("name is blank")
	err := Validation("invalid input", cause)
	assert.Equal(t, "invalid input: name is blank", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrValidation)

	_, ok := As(errors.New("plain"))
	assert.False(t, ok)
}
