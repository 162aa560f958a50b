package printx

import (
	"fmt"
	"log/slog"
)

// Option configures a Printer at construction time.
type Option func(*Printer) error

// WithMaxDepth sets the maximum nesting level. Expanding a composite or
// collection past this level fails the whole render with ErrDepthExceeded.
func WithMaxDepth(depth int) Option {
	return func(p *Printer) error {
		if depth < 0 {
			return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfiguration, depth)
		}
		p.maxDepth = depth
		return nil
	}
}

// WithMaxSequenceLength sets the maximum element count accepted for any
// single slice, array, or map. Exceeding it fails the whole render with
// ErrSequenceTooLong.
func WithMaxSequenceLength(length int) Option {
	return func(p *Printer) error {
		if length < 0 {
			return fmt.Errorf("%w: max sequence length must not be negative, got %d", ErrInvalidConfiguration, length)
		}
		p.maxSeqLen = length
		return nil
	}
}

// WithIndent sets the indentation unit repeated once per nesting level.
func WithIndent(indent string) Option {
	return func(p *Printer) error {
		if indent == "" {
			return fmt.Errorf("%w: indent must not be empty", ErrInvalidConfiguration)
		}
		p.indent = indent
		return nil
	}
}

// WithNilMarker sets the text emitted for nil values.
func WithNilMarker(marker string) Option {
	return func(p *Printer) error {
		if marker == "" {
			return fmt.Errorf("%w: nil marker must not be empty", ErrInvalidConfiguration)
		}
		p.nilMarker = marker
		return nil
	}
}

// WithTruncation sets the global text truncation limit, equivalent to
// calling Truncate after construction.
func WithTruncation(length int) Option {
	return func(p *Printer) error {
		p.globalMaxLen = length
		return nil
	}
}

// WithLogger sets the logger used for debug events around renders. The
// default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Printer) error {
		if logger == nil {
			return fmt.Errorf("%w: logger must not be nil", ErrInvalidConfiguration)
		}
		p.logger = logger
		return nil
	}
}
