package optics

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// maxDecodeDepth bounds nesting so adversarial documents cannot exhaust
// the stack.
const maxDecodeDepth = 1000

// Decode parses UTF-8 JSON text into a Value tree. Malformed input,
// trailing garbage, or excessive nesting report false; decoding never
// panics or returns an error value.
//
// Numbers keep their exact decimal value; object member order is the
// document order, with a duplicate key keeping its first position and
// last value.
func Decode(text string) (Value, bool) {
	return DecodeBytes([]byte(text))
}

// DecodeBytes parses UTF-8 JSON bytes into a Value tree. See Decode.
func DecodeBytes(data []byte) (Value, bool) {
	iter := jsoniter.ParseBytes(jsonAPI, data)
	v, ok := readValue(iter, 0)
	if !ok {
		return Value{}, false
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return Value{}, false
	}
	// Anything but whitespace after the top-level value is garbage.
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error != io.EOF {
		return Value{}, false
	}
	return v, true
}

func readValue(iter *jsoniter.Iterator, depth int) (Value, bool) {
	if depth > maxDecodeDepth {
		return Value{}, false
	}

	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		if !iter.ReadNil() {
			return Value{}, false
		}
		return Null(), iterHealthy(iter)

	case jsoniter.BoolValue:
		b := iter.ReadBool()
		if !iterHealthy(iter) {
			return Value{}, false
		}
		return Bool(b), true

	case jsoniter.NumberValue:
		num := iter.ReadNumber()
		if !iterHealthy(iter) {
			return Value{}, false
		}
		d, err := decimal.NewFromString(num.String())
		if err != nil {
			return Value{}, false
		}
		return Number(d), true

	case jsoniter.StringValue:
		s := iter.ReadString()
		if !iterHealthy(iter) {
			return Value{}, false
		}
		return String(s), true

	case jsoniter.ArrayValue:
		var elems []Value
		bad := false
		ok := iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			elem, elemOK := readValue(it, depth+1)
			if !elemOK {
				bad = true
				return false
			}
			elems = append(elems, elem)
			return true
		})
		if !ok || bad || !iterHealthy(iter) {
			return Value{}, false
		}
		return Array(elems...), true

	case jsoniter.ObjectValue:
		obj := NewObject()
		bad := false
		ok := iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			member, memberOK := readValue(it, depth+1)
			if !memberOK {
				bad = true
				return false
			}
			obj.Set(KeyOf(field), member)
			return true
		})
		if !ok || bad || !iterHealthy(iter) {
			return Value{}, false
		}
		return objectValue(obj), true

	default:
		return Value{}, false
	}
}

// iterHealthy reports whether the iterator is still usable. A clean end
// of input surfaces as io.EOF and is not a failure here; the top-level
// trailing-garbage check owns that distinction.
func iterHealthy(iter *jsoniter.Iterator) bool {
	return iter.Error == nil || iter.Error == io.EOF
}
