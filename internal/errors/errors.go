// Package errors wraps errors with context and user-facing suggestions.
package errors

import (
	"errors"
	"fmt"
)

// Suggestions attached to common failure modes.
const (
	SuggestionListTargets = "Run 'layertrim targets list' to see configured targets"
	SuggestionCheckPath   = "Verify the target path exists and is readable"
	SuggestionCheckNet    = "Check your network connection and try again"
	SuggestionSkipConfirm = "Re-run with --yes to skip the confirmation prompt"
)

// ContextError carries an error with optional context and a suggestion
// shown to the user alongside the error message.
type ContextError struct {
	Context    string // e.g. "while reading the target file"
	Err        error
	Suggestion string
}

// Error returns "context: error", or just the error text without context.
func (e *ContextError) Error() string {
	if e.Err == nil {
		return ""
	}
	if e.Context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Context, e.Err.Error())
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// WithContext wraps an error with contextual information.
// Returns nil if the error is nil.
func WithContext(err error, context string) error {
	if err == nil {
		return nil
	}
	return &ContextError{
		Context: context,
		Err:     err,
	}
}

// WithSuggestion attaches a user-facing suggestion to an error.
// Returns nil if the error is nil.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*ContextError); ok {
		ce.Suggestion = suggestion
		return ce
	}
	return &ContextError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion extracts the suggestion from anywhere in the error
// chain. Returns an empty string when there is none.
func GetSuggestion(err error) string {
	var ce *ContextError
	if errors.As(err, &ce) {
		return ce.Suggestion
	}
	return ""
}

// ContainsSuggestion reports whether the error chain carries a suggestion.
func ContainsSuggestion(err error) bool {
	return GetSuggestion(err) != ""
}
