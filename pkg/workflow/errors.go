package workflow

import "errors"

// Expected denial outcomes. These are returned as values, never panics;
// anything else coming out of the executor wraps a collaborator failure.
var (
	// ErrInvalidTransition indicates no permitted transition matches the
	// requested from/to pair for the acting user.
	ErrInvalidTransition = errors.New("no permitted transition matches the requested states")

	// ErrCommentRequired indicates the matched transition requires a comment
	// and none was supplied. Recoverable by resubmitting with a comment.
	ErrCommentRequired = errors.New("a comment is required for this transition")
)

// IsInvalidTransition checks if an error indicates a denied transition request.
func IsInvalidTransition(err error) bool {
	return errors.Is(err, ErrInvalidTransition)
}

// IsCommentRequired checks if an error indicates a missing required comment.
func IsCommentRequired(err error) bool {
	return errors.Is(err, ErrCommentRequired)
}
