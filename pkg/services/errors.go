// Package services provides the service boundary an HTTP or CLI layer
// wraps, plus its standardized error types.
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/copydesk/copydesk/pkg/persistence"
	"github.com/copydesk/copydesk/pkg/workflow"
)

// Business logic errors. These indicate client errors (4xx responses).
var (
	// ErrDefinitionNil indicates a nil definition was submitted.
	ErrDefinitionNil = errors.New("definition cannot be nil")

	// ErrContentTypeRequired indicates a content-type tag was not supplied.
	ErrContentTypeRequired = errors.New("content type is required")

	// ErrValidationFailed indicates a definition failed the static
	// consistency checks; the wrapping ValidationFailedError carries the
	// individual messages.
	ErrValidationFailed = errors.New("workflow definition failed validation")
)

// ValidationFailedError carries every consistency error found in a
// definition. All checks run before the save is rejected, so callers see
// the complete list at once.
type ValidationFailedError struct {
	Messages []string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("workflow definition failed validation: %s", strings.Join(e.Messages, "; "))
}

func (e *ValidationFailedError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationFailedError creates a validation error from collected messages.
func NewValidationFailedError(messages []string) *ValidationFailedError {
	return &ValidationFailedError{Messages: messages}
}

// ValidationMessages extracts the individual messages from a validation
// error, or nil when the error is of another kind.
func ValidationMessages(err error) []string {
	var vErr *ValidationFailedError
	if errors.As(err, &vErr) {
		return vErr.Messages
	}

	return nil
}

// ServiceError wraps service-level errors with additional context.
type ServiceError struct {
	Op      string // Operation name
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// IsValidationError checks if an error should map to HTTP 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrDefinitionNil) ||
		errors.Is(err, ErrContentTypeRequired) ||
		workflow.IsCommentRequired(err)
}

// IsNotFound checks if an error should map to HTTP 404.
func IsNotFound(err error) bool {
	return persistence.IsDefinitionNotFound(err) ||
		persistence.IsDefaultDefinitionNotFound(err) ||
		persistence.IsContentNotFound(err)
}

// IsConflict checks if an error should map to HTTP 409.
func IsConflict(err error) bool {
	return workflow.IsInvalidTransition(err)
}
