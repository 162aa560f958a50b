package printx

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidSelector      = errors.New("invalid field selector")

	// Render errors
	ErrDepthExceeded   = errors.New("maximum nesting depth exceeded")
	ErrSequenceTooLong = errors.New("sequence exceeds maximum length")

	// Value errors
	ErrUnsupportedType = errors.New("unsupported type")
)

func NewInvalidSelectorError(owner reflect.Type, field string, reason string) error {
	return fmt.Errorf("%w: '%s' on %s: %s", ErrInvalidSelector, field, owner, reason)
}

func NewDepthExceededError(maxDepth int) error {
	return fmt.Errorf("%w: configured maximum is %d", ErrDepthExceeded, maxDepth)
}

func NewSequenceTooLongError(maxLength int) error {
	return fmt.Errorf("%w: configured maximum is %d", ErrSequenceTooLong, maxLength)
}

// IsConfigurationError returns true if the error represents a configuration
// problem, fixable by changing the configuring call.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration) ||
		errors.Is(err, ErrInvalidSelector)
}

// IsRenderError returns true if the error was raised while rendering a value.
// Render errors are fatal to the render call that produced them: no partial
// text is returned, and retrying without raising the limits will fail the
// same way.
func IsRenderError(err error) bool {
	return errors.Is(err, ErrDepthExceeded) ||
		errors.Is(err, ErrSequenceTooLong)
}
