package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "voter"}
		assert.Equal(t, "voter not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "candidate"}
		err2 := &NotFoundError{Entity: "candidate"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "candidate"}
		err2 := &NotFoundError{Entity: "position"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrVoterNotFound, ErrVoterNotFound))
		assert.False(t, errors.Is(ErrVoterNotFound, ErrPositionNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrSessionNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrCandidateNotFound)))
		assert.False(t, IsNotFound(ErrInvalidTransition))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "vote already exists for this position", ErrAlreadyVoted.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "voter"}
		assert.Equal(t, "voter already exists", err.Error())
	})

	t.Run("wrapped already voted is still detected", func(t *testing.T) {
		err := fmt.Errorf("cast vote: %w", ErrAlreadyVoted)
		assert.True(t, errors.Is(err, ErrAlreadyVoted))
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrCandidateExists))
		assert.False(t, IsAlreadyExists(ErrCandidateNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
		assert.Equal(t, "validation error: rating - must be between 1 and 5", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("reg_no", "required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrVoterNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(ErrMissingToken))
	assert.True(t, IsAuthorization(ErrAdminRequired))
	assert.False(t, IsAuthorization(ErrInvalidCredentials))
	assert.True(t, IsConfiguration(ErrLDAPNotConfigured))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}
