package printx

import (
	"reflect"
	"strings"
)

// FieldID identifies one exported field declared directly on one struct type.
// It is an immutable value with structural equality, suitable as a map key:
// two FieldIDs are equal iff they name the same field of the same owner type.
type FieldID struct {
	owner reflect.Type
	name  string
}

// FieldOf resolves a field name on struct type Owner to a FieldID.
//
// The selector must denote a direct field access: the field must be declared
// on Owner itself (promoted fields from embedded structs are rejected), must
// be exported, and dotted paths are not accepted. A pointer Owner is
// dereferenced to its struct type.
//
// Returns ErrInvalidSelector if the selector does not meet those rules.
func FieldOf[Owner any](name string) (FieldID, error) {
	t := reflect.TypeFor[Owner]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return FieldID{}, NewInvalidSelectorError(t, name, "owner is not a struct type")
	}
	if strings.Contains(name, ".") {
		return FieldID{}, NewInvalidSelectorError(t, name, "nested field paths are not supported")
	}
	field, ok := t.FieldByName(name)
	if !ok {
		return FieldID{}, NewInvalidSelectorError(t, name, "no such field")
	}
	// FieldByName also finds promoted fields of embedded structs; those have
	// a multi-step index and are not direct accesses on Owner.
	if len(field.Index) != 1 {
		return FieldID{}, NewInvalidSelectorError(t, name, "field is promoted from an embedded struct")
	}
	if !field.IsExported() {
		return FieldID{}, NewInvalidSelectorError(t, name, "field is not exported")
	}
	return FieldID{owner: t, name: name}, nil
}

// MustFieldOf is like FieldOf but panics on an invalid selector. Intended for
// selectors that are fixed at compile time.
func MustFieldOf[Owner any](name string) FieldID {
	id, err := FieldOf[Owner](name)
	if err != nil {
		panic(err)
	}
	return id
}

// Owner returns the struct type declaring the field.
func (id FieldID) Owner() reflect.Type { return id.owner }

// Name returns the field's name.
func (id FieldID) Name() string { return id.name }

// Type returns the field's declared type.
func (id FieldID) Type() reflect.Type {
	field, _ := id.owner.FieldByName(id.name)
	return field.Type
}

// String returns the Owner.Field form, e.g. "printx.Config.MaxDepth".
func (id FieldID) String() string {
	return id.owner.String() + "." + id.name
}

// IsZero reports whether id is the zero FieldID, which identifies no field.
func (id FieldID) IsZero() bool { return id.owner == nil }
