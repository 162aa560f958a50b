package printx

import (
	"io"
	"log/slog"
	"reflect"
)

// renderFunc is the stored form of a committed rendering override. The value
// it receives is guaranteed to match the registry key it was committed under:
// the concrete runtime type for a type-scoped rule, the declared field type
// for a field-scoped rule.
type renderFunc func(v any) string

// Printer renders arbitrary value graphs to indented, human-readable text.
//
// All configuration mutates the Printer in place and must complete before the
// first Render call; registries are read-only during rendering. A Printer is
// not safe for configuration concurrent with rendering. Concurrent Render
// calls on a fully configured Printer are safe, since rendering never writes
// to Printer state.
//
// Overrides are consulted in a fixed precedence order for each value: field
// renderer, then exact-type renderer, then exact-type numeric formatter, then
// the default recursive expansion. Registry lookups match concrete runtime
// types only; there is no interface or embedding fallback.
type Printer struct {
	excludedTypes  map[reflect.Type]struct{}
	excludedFields map[FieldID]struct{}

	typeRenderers  map[reflect.Type]renderFunc
	numericFormats map[reflect.Type]renderFunc
	fieldRenderers map[FieldID]renderFunc

	fieldMaxLength map[FieldID]int
	globalMaxLen   int

	maxDepth  int
	maxSeqLen int
	indent    string
	nilMarker string

	logger *slog.Logger
}

// New creates a Printer with default limits, then applies the given options.
// The depth and sequence-length limits are fixed once New returns.
func New(opts ...Option) (*Printer, error) {
	p := &Printer{
		excludedTypes:  make(map[reflect.Type]struct{}),
		excludedFields: make(map[FieldID]struct{}),
		typeRenderers:  make(map[reflect.Type]renderFunc),
		numericFormats: make(map[reflect.Type]renderFunc),
		fieldRenderers: make(map[FieldID]renderFunc),
		fieldMaxLength: make(map[FieldID]int),
		maxDepth:       DefaultMaxDepth,
		maxSeqLen:      DefaultMaxSequenceLength,
		indent:         DefaultIndent,
		nilMarker:      DefaultNilMarker,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ExcludeTypes omits every value of the given runtime types from the output,
// wherever it appears: excluded struct fields contribute no line, excluded
// collection elements no entry. Exclusion is permanent for the Printer's
// lifetime.
func (p *Printer) ExcludeTypes(types ...reflect.Type) *Printer {
	for _, t := range types {
		if t != nil {
			p.excludedTypes[t] = struct{}{}
		}
	}
	return p
}

// Exclude is the generic form of ExcludeTypes for a single type.
func Exclude[T any](p *Printer) *Printer {
	return p.ExcludeTypes(reflect.TypeFor[T]())
}

// ExcludeField omits the identified field when rendering its owner type,
// regardless of the field's declared type.
func (p *Printer) ExcludeField(id FieldID) *Printer {
	if !id.IsZero() {
		p.excludedFields[id] = struct{}{}
	}
	return p
}

// Truncate sets the global truncation limit for text-valued fields. Rendered
// text longer than n characters is cut to n and suffixed with an ellipsis.
// Zero or negative disables global truncation. Per-field limits set with
// TruncateField take precedence.
func (p *Printer) Truncate(n int) *Printer {
	p.globalMaxLen = n
	return p
}

// TruncateField sets a truncation limit for one specific field, overriding
// the global limit for that field. Only meaningful for string-typed fields;
// on other fields the limit is accepted but has no observable effect.
func (p *Printer) TruncateField(id FieldID, n int) *Printer {
	if !id.IsZero() {
		p.fieldMaxLength[id] = n
	}
	return p
}

// MaxDepth returns the maximum nesting level fixed at construction.
func (p *Printer) MaxDepth() int { return p.maxDepth }

// MaxSequenceLength returns the collection size limit fixed at construction.
func (p *Printer) MaxSequenceLength() int { return p.maxSeqLen }

// setTypeRenderer installs a committed type-scoped rendering override.
func (p *Printer) setTypeRenderer(t reflect.Type, fn renderFunc) {
	p.typeRenderers[t] = fn
}

// setNumericFormat installs a committed type-scoped numeric format. Numeric
// formats sit in a separate registry consulted after type renderers, so a
// locale format for a numeric type never shadows an explicit renderer for
// the same type.
func (p *Printer) setNumericFormat(t reflect.Type, fn renderFunc) {
	p.numericFormats[t] = fn
}

// setFieldRenderer installs a committed field-scoped rendering override.
func (p *Printer) setFieldRenderer(id FieldID, fn renderFunc) {
	p.fieldRenderers[id] = fn
}
