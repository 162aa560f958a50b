package printx

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// Render renders value to indented text.
//
// Rendering is deterministic: the same Printer state and the same input
// always produce the same text (map entries are ordered by rendered key).
// On error no partial text is returned; DepthExceeded and SequenceTooLong
// abort the whole call.
func (p *Printer) Render(value any) (string, error) {
	out, err := p.renderValue(reflect.ValueOf(value), 0)
	if err != nil {
		p.logger.Debug("render failed", "error", err)
		return "", err
	}
	p.logger.Debug("render complete", "bytes", len(out))
	return out, nil
}

// renderValue dispatches one value at the given nesting level.
//
// An empty return string with a nil error means the value's runtime type is
// excluded; callers drop the value entirely. All other successful results
// end in a newline, so the empty string is unambiguous.
func (p *Printer) renderValue(v reflect.Value, depth int) (string, error) {
	if !v.IsValid() {
		return p.nilMarker + "\n", nil
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return p.nilMarker + "\n", nil
		}
		v = v.Elem()
	}
	t := v.Type()
	if _, ok := p.excludedTypes[t]; ok {
		return "", nil
	}
	if fn, ok := p.typeRenderers[t]; ok {
		return fn(v.Interface()) + "\n", nil
	}
	if fn, ok := p.numericFormats[t]; ok {
		return fn(v.Interface()) + "\n", nil
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return p.nilMarker + "\n", nil
		}
		// Dereferencing is not a nesting boundary.
		return p.renderValue(v.Elem(), depth)
	}
	if s, ok := naturalForm(v); ok {
		return s + "\n", nil
	}

	// Only expansion below this point consumes the depth budget. Terminal
	// values and override results are always representable, so a composite
	// sitting exactly at maxDepth still renders its scalar fields.
	if depth > p.maxDepth {
		return "", NewDepthExceededError(p.maxDepth)
	}

	switch v.Kind() {
	case reflect.Map:
		return p.renderMap(v, depth)
	case reflect.Slice, reflect.Array:
		return p.renderSequence(v, depth)
	case reflect.Struct:
		return p.renderStruct(v, depth)
	default:
		// chan, func, unsafe pointer
		return fmt.Sprint(v.Interface()) + "\n", nil
	}
}

// naturalForm reports whether v is terminal and, if so, its text form.
// Terminal values never recurse: primitive kinds, time.Time, and anything
// with its own string representation via fmt.Stringer or error.
func naturalForm(v reflect.Value) (string, bool) {
	switch v.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprint(v.Interface()), true
	}
	if ts, ok := v.Interface().(time.Time); ok {
		return ts.String(), true
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String(), true
	}
	if e, ok := v.Interface().(error); ok {
		return e.Error(), true
	}
	return "", false
}

// renderStruct emits the type's display name followed by one line per
// eligible field, indented one level deeper than the struct itself.
func (p *Printer) renderStruct(v reflect.Value, depth int) (string, error) {
	t := v.Type()
	var sb strings.Builder
	sb.WriteString(typeName(t))
	sb.WriteString("\n")

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if _, ok := p.excludedTypes[field.Type]; ok {
			continue
		}
		id := FieldID{owner: t, name: field.Name}
		if _, ok := p.excludedFields[id]; ok {
			continue
		}

		var rendered string
		if fn, ok := p.fieldRenderers[id]; ok {
			// Field overrides bypass dispatch entirely, including
			// runtime-type exclusions of the field's value.
			rendered = fn(fieldInterface(v.Field(i))) + "\n"
		} else {
			var err error
			rendered, err = p.renderValue(v.Field(i), depth+1)
			if err != nil {
				return "", err
			}
			if rendered == "" {
				continue
			}
		}
		if field.Type.Kind() == reflect.String {
			rendered = p.truncateText(id, strings.TrimSuffix(rendered, "\n")) + "\n"
		}

		sb.WriteString(strings.Repeat(p.indent, depth+1))
		sb.WriteString(field.Name)
		sb.WriteString(" = ")
		sb.WriteString(rendered)
	}
	return sb.String(), nil
}

// renderMap emits space-separated "[key]: value" pairs with one trailing
// newline. Entries are sorted by rendered key text, value text breaking
// ties, so output does not depend on Go's randomized map iteration order
// even when distinct keys render identically. Keys and values render at the
// map's own depth: collection wrapping is not a nesting level.
func (p *Printer) renderMap(v reflect.Value, depth int) (string, error) {
	if v.Len() > p.maxSeqLen {
		return "", NewSequenceTooLongError(p.maxSeqLen)
	}
	type entry struct {
		key  string
		text string
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key, keyOK, err := p.renderElement(iter.Key(), depth)
		if err != nil {
			return "", err
		}
		val, valOK, err := p.renderElement(iter.Value(), depth)
		if err != nil {
			return "", err
		}
		if !keyOK || !valOK {
			// Either side has an excluded type; the entry contributes
			// nothing.
			continue
		}
		entries = append(entries, entry{key: key, text: "[" + key + "]: " + val})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].key != entries[j].key {
			return entries[i].key < entries[j].key
		}
		return entries[i].text < entries[j].text
	})
	pairs := make([]string, len(entries))
	for i, e := range entries {
		pairs[i] = e.text
	}
	return strings.Join(pairs, " ") + "\n", nil
}

// renderSequence emits space-separated elements with one trailing newline.
// The size check fires as soon as the element one past the limit is reached,
// which is the same rule renderMap applies up front: rendering fails iff the
// element count strictly exceeds the configured maximum.
func (p *Printer) renderSequence(v reflect.Value, depth int) (string, error) {
	elems := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if i >= p.maxSeqLen {
			return "", NewSequenceTooLongError(p.maxSeqLen)
		}
		elem, ok, err := p.renderElement(v.Index(i), depth)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		elems = append(elems, elem)
	}
	return strings.Join(elems, " ") + "\n", nil
}

// renderElement renders one collection key, value, or element: trailing
// newline stripped, and nested non-primitive iterables wrapped in a
// type-name-prefixed parenthesis form. The boolean is false only for values
// of excluded runtime types, decided on the pre-strip sentinel so that text
// which legitimately renders empty (an empty string element, say) is kept
// rather than dropped.
func (p *Printer) renderElement(v reflect.Value, depth int) (string, bool, error) {
	rendered, err := p.renderValue(v, depth)
	if err != nil {
		return "", false, err
	}
	if rendered == "" {
		return "", false, nil
	}
	rendered = strings.TrimSuffix(rendered, "\n")
	if t, ok := p.iterableType(v); ok {
		rendered = typeName(t) + "(" + rendered + ")"
	}
	return rendered, true, nil
}

// iterableType reports whether v renders through the container algorithms,
// unwrapping interfaces and pointers first. Values covered by a type-scoped
// override render as that override's text and are not wrapped.
func (p *Printer) iterableType(v reflect.Value) (reflect.Type, bool) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	t := v.Type()
	if _, ok := p.typeRenderers[t]; ok {
		return nil, false
	}
	if _, ok := p.numericFormats[t]; ok {
		return nil, false
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return t, true
	}
	return nil, false
}

// truncateText applies the field's truncation limit, falling back to the
// global one. Limits are in characters, not bytes.
func (p *Printer) truncateText(id FieldID, s string) string {
	limit, ok := p.fieldMaxLength[id]
	if !ok {
		limit = p.globalMaxLen
	}
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + Ellipsis
}

// fieldInterface returns the field's value for handing to a field renderer,
// with nil interface fields surfacing as untyped nil.
func fieldInterface(v reflect.Value) any {
	if v.Kind() == reflect.Interface && v.IsNil() {
		return nil
	}
	return v.Interface()
}

// typeName prefers the declared name and falls back to the full syntax for
// unnamed types such as []int or map[string]int.
func typeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
