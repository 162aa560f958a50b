package printx

import (
	"fmt"

	"github.com/hengadev/errsx"
)

// Config holds printer settings loadable from the environment or a file.
//
// The struct contains only data, no behavior. Configuration can come from
// any source (environment variables, YAML files, code) and is bridged to a
// Printer through Options:
//
//	cfg, err := printx.LoadConfigFromEnvironment()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := printx.New(cfg.Options()...)
type Config struct {
	// MaxDepth is the maximum nesting level. Default: DefaultMaxDepth.
	MaxDepth int `env:"PRINTX_MAX_DEPTH" yaml:"max_depth"`

	// MaxSequenceLength is the maximum element count for any single
	// collection. Default: DefaultMaxSequenceLength.
	MaxSequenceLength int `env:"PRINTX_MAX_SEQUENCE_LENGTH" yaml:"max_sequence_length"`

	// Indent is the indentation unit. Default: DefaultIndent.
	Indent string `env:"PRINTX_INDENT" yaml:"indent"`

	// NilMarker is the text emitted for nil values. Default: DefaultNilMarker.
	NilMarker string `env:"PRINTX_NIL_MARKER" yaml:"nil_marker"`

	// MaxTextLength is the global truncation limit for text-valued fields.
	// Zero or negative disables truncation. Default: 0.
	MaxTextLength int `env:"PRINTX_MAX_TEXT_LENGTH" yaml:"max_text_length"`
}

// DefaultConfig returns a Config carrying the package defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:          DefaultMaxDepth,
		MaxSequenceLength: DefaultMaxSequenceLength,
		Indent:            DefaultIndent,
		NilMarker:         DefaultNilMarker,
	}
}

// Validate checks the configuration and applies defaults to empty optional
// fields. All problems are reported together, keyed by field.
func (c *Config) Validate() error {
	var errs errsx.Map

	if c.MaxDepth < 0 {
		errs.Set("max_depth", fmt.Errorf("must not be negative, got %d", c.MaxDepth))
	}
	if c.MaxSequenceLength < 0 {
		errs.Set("max_sequence_length", fmt.Errorf("must not be negative, got %d", c.MaxSequenceLength))
	}
	if c.Indent == "" {
		c.Indent = DefaultIndent
	}
	if c.NilMarker == "" {
		c.NilMarker = DefaultNilMarker
	}

	if err := errs.AsError(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return nil
}

// Options bridges the configuration to functional options for New.
func (c Config) Options() []Option {
	return []Option{
		WithMaxDepth(c.MaxDepth),
		WithMaxSequenceLength(c.MaxSequenceLength),
		WithIndent(c.Indent),
		WithNilMarker(c.NilMarker),
		WithTruncation(c.MaxTextLength),
	}
}
