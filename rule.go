package printx

import "reflect"

// Rule is a short-lived handle for committing one rendering rule back into
// the Printer that created it. A Rule carries its own scope — the target
// type, or the target field when obtained through ForField — so nothing
// about a pending selection lives on the Printer between obtaining a Rule
// and committing it, and two Rules can be held and committed in any order.
type Rule[T any] struct {
	p     *Printer
	field FieldID // zero for type-scoped rules
}

// ForType begins a rule for every value whose concrete runtime type is T.
func ForType[T any](p *Printer) *Rule[T] {
	return &Rule[T]{p: p}
}

// ForField begins a rule for one specific field. T must be the field's
// declared type; a mismatch fails with ErrInvalidSelector so a committed
// render function can never receive a value of the wrong type.
func ForField[T any](p *Printer, id FieldID) (*Rule[T], error) {
	if id.IsZero() {
		return nil, NewInvalidSelectorError(nil, "", "zero field identifier")
	}
	want := reflect.TypeFor[T]()
	if got := id.Type(); got != want {
		return nil, NewInvalidSelectorError(id.Owner(), id.Name(),
			"field type is "+got.String()+", rule expects "+want.String())
	}
	return &Rule[T]{p: p, field: id}, nil
}

// Using commits render as the rendering function for the rule's target and
// returns the Printer so configuration can continue chained.
//
// For a type-scoped rule the function replaces default rendering for every
// value of exactly type T. For a field-scoped rule it applies to that one
// field and short-circuits all other dispatch, including type renderers and
// exclusions of the field value's runtime type.
func (r *Rule[T]) Using(render func(T) string) *Printer {
	fn := func(v any) string {
		// Nil interface field values assert to the zero T.
		t, _ := v.(T)
		return render(t)
	}
	if r.field.IsZero() {
		r.p.setTypeRenderer(reflect.TypeFor[T](), fn)
	} else {
		r.p.setFieldRenderer(r.field, fn)
	}
	return r.p
}

// WithFormat commits format into the numeric-format tier. Intended for
// locale or culture specific formatting of numeric types; the Printer only
// stores and invokes the function, it implements no formatting itself.
// Field-scoped rules have a single override slot, so there WithFormat and
// Using are equivalent.
func (r *Rule[T]) WithFormat(format func(T) string) *Printer {
	fn := func(v any) string {
		t, _ := v.(T)
		return format(t)
	}
	if r.field.IsZero() {
		r.p.setNumericFormat(reflect.TypeFor[T](), fn)
	} else {
		r.p.setFieldRenderer(r.field, fn)
	}
	return r.p
}

// TruncateTo commits a truncation limit: the field's own limit for a
// field-scoped rule, the global limit otherwise. See Printer.Truncate for
// the truncation semantics.
func (r *Rule[T]) TruncateTo(n int) *Printer {
	if r.field.IsZero() {
		return r.p.Truncate(n)
	}
	return r.p.TruncateField(r.field, n)
}
