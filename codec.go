package optics

import (
	"fmt"
)

// Codec converts between Value trees and a typed Go representation A.
// Decode may reject values whose shape does not fit A; Encode is total.
type Codec[A any] struct {
	Decode func(Value) (A, error)
	Encode func(A) Value
}

// CodecOf returns the default codec for A, binding through the standard
// struct tags. Numbers that fit A's fields exactly survive the round
// trip; a shape that does not bind reports a decode error.
func CodecOf[A any]() Codec[A] {
	return Codec[A]{
		Decode: func(v Value) (A, error) {
			var a A
			if err := jsonAPI.Unmarshal(EncodeBytes(v), &a); err != nil {
				return a, newDecodeError("decode_typed", fmt.Sprintf("value does not bind to %T: %v", a, err), ErrDecodeFailed)
			}
			return a, nil
		},
		Encode: func(a A) Value {
			data, err := jsonAPI.Marshal(a)
			if err != nil {
				return Null()
			}
			v, ok := DecodeBytes(data)
			if !ok {
				return Null()
			}
			return v
		},
	}
}

// ValueCodec is the identity codec: the typed form is the tree itself,
// so no conversion work is done in either direction.
var ValueCodec = Codec[Value]{
	Decode: func(v Value) (Value, error) { return v, nil },
	Encode: func(v Value) Value { return v },
}

// AsJSON views a Value as the typed form A through the given codec.
// Match attempts the typed decode and is empty when the value's shape
// does not fit; Build encodes back to a tree. Decode failures propagate
// exactly like shape mismatches, never as errors.
func AsJSON[A any](c Codec[A]) Prism[Value, A] {
	return NewPrism(
		func(v Value) (A, bool) {
			a, err := c.Decode(v)
			return a, err == nil
		},
		c.Encode,
	)
}

// AsJSONIn views a container as the typed form A: decode the container,
// then the typed shape. Both failure classes surface uniformly as an
// empty match.
func AsJSONIn[S, A any](cont Container[S], c Codec[A]) Prism[S, A] {
	return ComposePrisms(AsValue(cont), AsJSON(c))
}
