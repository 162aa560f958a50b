package printx

// Default limits applied when no option or configuration overrides them.
const (
	// DefaultMaxDepth is the default maximum nesting level. Recursion is
	// bounded only by this ceiling; there is no cycle detection, so
	// self-referential graphs terminate by exhausting depth.
	DefaultMaxDepth = 10

	// DefaultMaxSequenceLength is the default maximum number of elements
	// accepted for any single slice, array, or map.
	DefaultMaxSequenceLength = 100

	// DefaultIndent is the indentation unit repeated once per nesting level.
	DefaultIndent = "\t"

	// DefaultNilMarker is emitted for nil pointers, nil interfaces, and
	// untyped nil roots.
	DefaultNilMarker = "<nil>"

	// Ellipsis is appended to text values cut by a truncation limit.
	Ellipsis = "..."
)

// Environment variable names read by LoadConfigFromEnvironment.
const (
	// EnvMaxDepth overrides the maximum nesting level.
	EnvMaxDepth = "PRINTX_MAX_DEPTH"

	// EnvMaxSequenceLength overrides the maximum collection size.
	EnvMaxSequenceLength = "PRINTX_MAX_SEQUENCE_LENGTH"

	// EnvIndent overrides the indentation unit.
	EnvIndent = "PRINTX_INDENT"

	// EnvNilMarker overrides the nil representation.
	EnvNilMarker = "PRINTX_NIL_MARKER"

	// EnvMaxTextLength overrides the global text truncation limit.
	// Zero or negative disables truncation.
	EnvMaxTextLength = "PRINTX_MAX_TEXT_LENGTH"
)
