// Package printx renders arbitrary Go value graphs as indented,
// human-readable text for debugging and introspection.
//
// Output is lossy and human-oriented, not a wire format: it is not meant to
// be parsed back. The printer walks a value recursively, deciding for each
// value whether it is excluded, covered by a type- or field-level override,
// a terminal value with a natural text form, a collection, or a composite to
// expand field by field.
//
// # Quick Start
//
//	type Person struct {
//	    ID   uuid.UUID
//	    Name string
//	    Age  int
//	}
//
//	p, _ := printx.New()
//	out, err := p.Render(Person{Name: "Alexander", Age: 19})
//
// # Configuration
//
// Configuration is fluent and must complete before the first Render call:
//
//	nameField := printx.MustFieldOf[Person]("Name")
//
//	p, _ := printx.New(printx.WithMaxDepth(4))
//	printx.Exclude[uuid.UUID](p).
//	    TruncateField(nameField, 10)
//	printx.ForType[int](p).Using(func(n int) string {
//	    return strconv.Itoa(n) + "!"
//	})
//
// Field-level overrides take precedence over type-level overrides, which
// take precedence over numeric formats and the default recursive expansion.
// Override dispatch matches concrete runtime types only; there is no
// interface or embedding fallback.
//
// # Limits
//
// Recursion is bounded by a depth ceiling fixed at construction, not by
// cycle detection: rendering a self-referential graph terminates by failing
// with ErrDepthExceeded. Collections larger than the configured maximum fail
// with ErrSequenceTooLong. Both abort the whole render; no partial text is
// returned.
package printx
