package fields

import (
	"errors"
	"fmt"
)

var (
	// ErrAttributeNotPresent is the sentinel behind every AttributeError.
	ErrAttributeNotPresent = errors.New("attribute not present")

	// ErrInvalidDeclaration wraps every authoring error reported by Build.
	ErrInvalidDeclaration = errors.New("invalid declaration")
)

// AttributeError reports an access to a member that was never declared:
// the values of a valueless field, an unknown value label, or an unknown
// field of a schema.
type AttributeError struct {
	// Owner names the object that was probed, e.g. "field Name".
	Owner string
	// Attr is the member that does not exist.
	Attr string
	// Suggestion is the closest declared member, if one looks like a typo.
	Suggestion string
}

// Error implements error.
func (e *AttributeError) Error() string {
	msg := fmt.Sprintf("%s has no attribute %q", e.Owner, e.Attr)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

// Unwrap returns ErrAttributeNotPresent.
func (e *AttributeError) Unwrap() error {
	return ErrAttributeNotPresent
}

func declarationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDeclaration, fmt.Sprintf(format, args...))
}
