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
	Context string // Additional context like "for email"
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
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrEventNotFound      = &NotFoundError{Entity: "event"}
	ErrDraftNotFound      = &NotFoundError{Entity: "draft"}
	ErrActivityNotFound   = &NotFoundError{Entity: "activity"}
	ErrResourceNotFound   = &NotFoundError{Entity: "resource"}
	ErrFollowUpNotFound   = &NotFoundError{Entity: "follow-up"}
	ErrInvitationNotFound = &NotFoundError{Entity: "invitation"}
)

// Already Exists Errors
var (
	ErrUserExists       = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrInvitationExists = &AlreadyExistsError{Entity: "invitation", Context: "for this email"}
	ErrAdminExists      = &AlreadyExistsError{Entity: "administrator", Context: "for this installation"}
)

// Business Logic Errors
var (
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidMonth         = errors.New("invalid month, expected YYYY-MM")
	ErrInvalidRecurrence    = errors.New("invalid recurrence rule")
	ErrUnknownMembers       = errors.New("one or more members do not exist")
	ErrConflictPending      = errors.New("a role conflict is awaiting resolution")
	ErrNoPendingConflict    = errors.New("no role conflict is pending")
	ErrDraftNotOpen         = errors.New("draft is not open")
	ErrInvitationExpired    = errors.New("invitation is invalid or has expired")
	ErrFileTooLarge         = errors.New("file exceeds the upload size limit")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrDocumentParseFailure = errors.New("document analysis returned an unreadable response")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrUserIDNotFound     = &AuthenticationError{Message: "user id not found in context"}
	ErrAdminRequired      = &AuthorizationError{Message: "administrator role required"}
	ErrDraftNotOwned      = &AuthorizationError{Message: "draft belongs to another user"}
)

// Configuration Errors
var (
	ErrMailerNotConfigured   = &ConfigurationError{Message: "ZEPTO_MAIL_TOKEN environment variable not set"}
	ErrAnalyzerNotConfigured = &ConfigurationError{Message: "GEMINI_API_KEY environment variable not set"}
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
