package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrVoterNotFound       = &NotFoundError{Entity: "voter"}
	ErrElectionNotFound    = &NotFoundError{Entity: "election"}
	ErrPositionNotFound    = &NotFoundError{Entity: "position"}
	ErrCandidateNotFound   = &NotFoundError{Entity: "candidate"}
	ErrVoteNotFound        = &NotFoundError{Entity: "vote"}
	ErrFeedbackNotFound    = &NotFoundError{Entity: "feedback"}
	ErrVoiceSampleNotFound = &NotFoundError{Entity: "voice sample"}
	ErrSessionNotFound     = &NotFoundError{Entity: "voting session"}
	ErrBlobNotFound        = &NotFoundError{Entity: "blob"}
)

// Already Exists Errors
var (
	ErrVoterExists     = &AlreadyExistsError{Entity: "voter", Context: "with this registration number or email"}
	ErrElectionExists  = &AlreadyExistsError{Entity: "election", Context: "with this name"}
	ErrPositionExists  = &AlreadyExistsError{Entity: "position", Context: "with this name in the election"}
	ErrCandidateExists = &AlreadyExistsError{Entity: "candidate", Context: "for this voter and position"}
	ErrAlreadyVoted    = &AlreadyExistsError{Entity: "vote", Context: "for this position"}
	ErrEmailTaken      = &AlreadyExistsError{Entity: "email", Context: "for another voter"}
	ErrPhoneTaken      = &AlreadyExistsError{Entity: "phone", Context: "for another voter"}
)

// Voting Flow Errors
var (
	ErrInvalidTransition        = errors.New("invalid voting session transition")
	ErrSelectionRequired        = errors.New("a candidate must be selected before proceeding")
	ErrCandidateIndexOutOfRange = errors.New("candidate index out of range")
	ErrEmptyBallot              = errors.New("ballot has no positions")
	ErrVerificationExhausted    = errors.New("maximum verification attempts reached")
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrElectionNotActive       = errors.New("election is not active")
	ErrCandidateNotOnBallot    = errors.New("candidate is not on the ballot for this position")
	ErrAudioTooLarge           = errors.New("audio file exceeds the maximum size")
	ErrInvalidAudio            = errors.New("invalid audio file")
	ErrVerifierUnavailable     = errors.New("voice verifier unavailable")
	ErrRegistryNotConfigured   = errors.New("voter registry is not configured")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid registration number or password"}
	ErrMissingToken       = &AuthenticationError{Message: "authorization token required"}
	ErrAdminRequired      = &AuthorizationError{Message: "administrator role required"}
)

// Configuration Errors
var (
	ErrLDAPNotConfigured     = &ConfigurationError{Message: "LDAP_HOST and LDAP_BASE_DN must be set for directory login"}
	ErrVerifierNotConfigured = &ConfigurationError{Message: "VOICE_VERIFIER_URL must be set for voice verification"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
