package optics

import (
	"github.com/shopspring/decimal"
)

// Kind identifies the JSON variant stored in a Value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "invalid"
	}
}

// Value is an immutable JSON document node: a tagged union over the six
// JSON variants. Numbers are held as arbitrary-precision decimals so no
// precision is lost between decode and encode. The zero Value is Null.
//
// Values are never mutated in place; every rewrite through an optic
// produces a new Value and leaves the original untouched, so Values can
// be shared freely across goroutines.
type Value struct {
	kind Kind
	b    bool
	n    decimal.Decimal
	s    string
	a    []Value
	o    *Object
}

// Null returns the JSON null value.
func Null() Value {
	return Value{kind: NullKind}
}

// Bool returns a JSON boolean value.
func Bool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

// Number returns a JSON number value holding the given decimal.
func Number(d decimal.Decimal) Value {
	return Value{kind: NumberKind, n: d}
}

// Int returns a JSON number value holding an exact integer.
func Int(i int64) Value {
	return Number(decimal.NewFromInt(i))
}

// Float returns a JSON number value holding the exact decimal expansion
// of the shortest representation of f.
func Float(f float64) Value {
	return Number(decimal.NewFromFloat(f))
}

// NumberFromString parses a JSON numeric literal into a number value.
func NumberFromString(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, newDecodeError("parse_number", "invalid numeric literal: "+s, ErrInvalidJSON)
	}
	return Number(d), nil
}

// String returns a JSON string value.
func String(s string) Value {
	return Value{kind: StringKind, s: s}
}

// Array returns a JSON array value over the given elements. The slice is
// adopted, not copied.
func Array(elems ...Value) Value {
	return Value{kind: ArrayKind, a: elems}
}

// ObjectOf returns a JSON object value built from the given members in
// order. A repeated key keeps its first position and takes the last value.
func ObjectOf(members ...Member) Value {
	return objectValue(NewObject(members...))
}

// objectValue wraps an Object as a Value. The object is adopted, not
// cloned; rewrite paths clone before mutating. A nil object is
// normalized to the empty object so iteration never dereferences a nil
// pointer.
func objectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: ObjectKind, o: o}
}

// Kind reports which JSON variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.kind == NullKind
}

// BoolValue returns the boolean payload when the value is a bool.
func (v Value) BoolValue() (bool, bool) {
	if v.kind != BoolKind {
		return false, false
	}
	return v.b, true
}

// NumberValue returns the decimal payload when the value is a number.
func (v Value) NumberValue() (decimal.Decimal, bool) {
	if v.kind != NumberKind {
		return decimal.Decimal{}, false
	}
	return v.n, true
}

// StringValue returns the text payload when the value is a string.
func (v Value) StringValue() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.s, true
}

// ArrayValue returns the element slice when the value is an array.
// The slice must not be mutated by the caller.
func (v Value) ArrayValue() ([]Value, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	return v.a, true
}

// ObjectValue returns the member collection when the value is an object.
// The object must not be mutated by the caller.
func (v Value) ObjectValue() (*Object, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	return v.o, true
}

// Equal reports deep structural equality. Numbers compare by numeric
// value (10 equals 10.0); objects compare member-by-member in insertion
// order.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case NullKind:
		return true
	case BoolKind:
		return v.b == w.b
	case NumberKind:
		return v.n.Equal(w.n)
	case StringKind:
		return v.s == w.s
	case ArrayKind:
		if len(v.a) != len(w.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(w.a[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		return v.o.Equal(w.o)
	default:
		return false
	}
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	switch v.kind {
	case ArrayKind:
		elems := make([]Value, len(v.a))
		for i := range v.a {
			elems[i] = v.a[i].Clone()
		}
		return Value{kind: ArrayKind, a: elems}
	case ObjectKind:
		return objectValue(v.o.CloneDeep())
	default:
		return v
	}
}

// String renders the value as compact JSON text.
func (v Value) String() string {
	return Encode(v)
}
