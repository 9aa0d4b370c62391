// Package persistence provides standardized error types for persistence operations.
package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all implementations should use.
var (
	// ErrDefinitionNotFound indicates a workflow definition was not found by the given identifier.
	ErrDefinitionNotFound = errors.New("workflow definition not found")

	// ErrDefaultDefinitionNotFound indicates no active default definition exists for the content type.
	ErrDefaultDefinitionNotFound = errors.New("default workflow definition not found")

	// ErrContentNotFound indicates a content record was not found by the given identifier.
	ErrContentNotFound = errors.New("content not found")

	// ErrDefinitionAlreadyExists indicates a definition with the same identifier already exists.
	ErrDefinitionAlreadyExists = errors.New("workflow definition already exists")
)

// DefinitionError wraps definition-related errors with additional context.
type DefinitionError struct {
	Op           string // Operation being performed (e.g., "DefinitionByID", "Save", "Delete")
	DefinitionID string // Definition ID if applicable
	ContentType  string // Content type if applicable
	Err          error  // Underlying error
	Message      string // Additional context message
}

func (e *DefinitionError) Error() string {
	target := e.DefinitionID
	if e.ContentType != "" {
		target = fmt.Sprintf("content type %s", e.ContentType)
	}

	if e.Message != "" {
		return fmt.Sprintf("%s operation failed for definition %s: %s (%v)", e.Op, target, e.Message, e.Err)
	}

	return fmt.Sprintf("%s operation failed for definition %s: %v", e.Op, target, e.Err)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// Is implements error comparison for definition errors.
func (e *DefinitionError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewDefinitionError creates a new definition error with context.
func NewDefinitionError(op, definitionID string, err error) *DefinitionError {
	return &DefinitionError{
		Op:           op,
		DefinitionID: definitionID,
		Err:          err,
	}
}

// NewContentTypeError creates a new definition error for content-type scoped operations.
func NewContentTypeError(op, contentType string, err error) *DefinitionError {
	return &DefinitionError{
		Op:          op,
		ContentType: contentType,
		Err:         err,
	}
}

// ContentError wraps content-state errors with additional context.
type ContentError struct {
	Op        string // Operation being performed
	ContentID string // Content ID
	Err       error  // Underlying error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("%s operation failed for content %s: %v", e.Op, e.ContentID, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

func (e *ContentError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewContentError creates a new content error with context.
func NewContentError(op, contentID string, err error) *ContentError {
	return &ContentError{
		Op:        op,
		ContentID: contentID,
		Err:       err,
	}
}

// Error checking helpers.

// IsDefinitionNotFound checks if an error indicates a definition was not found.
func IsDefinitionNotFound(err error) bool {
	return errors.Is(err, ErrDefinitionNotFound)
}

// IsDefaultDefinitionNotFound checks if an error indicates no default definition exists.
func IsDefaultDefinitionNotFound(err error) bool {
	return errors.Is(err, ErrDefaultDefinitionNotFound)
}

// IsContentNotFound checks if an error indicates a content record was not found.
func IsContentNotFound(err error) bool {
	return errors.Is(err, ErrContentNotFound)
}

// IsDefinitionAlreadyExists checks if an error indicates a duplicate definition.
func IsDefinitionAlreadyExists(err error) bool {
	return errors.Is(err, ErrDefinitionAlreadyExists)
}
