package optics

import (
	"github.com/shopspring/decimal"

	"github.com/cybergodev/optics/internal"
)

// Container is one representation a JSON document can live in, paired
// with its decode/encode functions. The set of containers is closed:
// the Value tree itself, UTF-8 text, UTF-8 bytes, and UTF-16 bytes.
// Navigation optics work on Value; AsValue and the *In helpers bridge
// the other containers into it.
type Container[S any] struct {
	name   string
	decode func(S) (Value, bool)
	encode func(Value) S
}

// NewContainer registers a decode/encode pair under a diagnostic name.
func NewContainer[S any](name string, decode func(S) (Value, bool), encode func(Value) S) Container[S] {
	return Container[S]{name: name, decode: decode, encode: encode}
}

// Name returns the container's diagnostic name.
func (c Container[S]) Name() string {
	return c.name
}

// Decode converts the container form into a Value tree. Malformed input
// reports false, never an error.
func (c Container[S]) Decode(s S) (Value, bool) {
	return c.decode(s)
}

// Encode converts a Value tree into the container form.
func (c Container[S]) Encode(v Value) S {
	return c.encode(v)
}

var (
	// Raw is the Value tree itself: decode and encode are identities, so
	// optics applied through Raw skip the text round trip entirely.
	Raw = NewContainer("raw",
		func(v Value) (Value, bool) { return v, true },
		func(v Value) Value { return v },
	)

	// Text holds a document as UTF-8 JSON text.
	Text = NewContainer("utf8-text", Decode, Encode)

	// Bytes holds a document as UTF-8 JSON bytes.
	Bytes = NewContainer("utf8-bytes", DecodeBytes, EncodeBytes)

	// UTF16 holds a document as UTF-16 JSON text with a byte-order mark.
	UTF16 = NewContainer("utf16-text", decodeUTF16, encodeUTF16)
)

func decodeUTF16(data []byte) (Value, bool) {
	utf8Data, ok := internal.UTF16ToUTF8(data)
	if !ok {
		return Value{}, false
	}
	return DecodeBytes(utf8Data)
}

func encodeUTF16(v Value) []byte {
	return internal.UTF8ToUTF16(EncodeBytes(v))
}

// AsValue views a container as a Value tree: match decodes (empty on
// malformed input), build encodes.
func AsValue[S any](c Container[S]) Prism[S, Value] {
	return NewPrism(c.decode, c.encode)
}

// AsNumberIn matches a container whose document is a bare JSON number.
func AsNumberIn[S any](c Container[S]) Prism[S, decimal.Decimal] {
	return ComposePrisms(AsValue(c), AsNumber)
}

// Through lifts a Value traversal over a container. Preview decodes and
// then previews; Set decodes, rewrites, and re-encodes the whole
// document. When the input does not decode, or the inner rewrite leaves
// the tree unchanged (a shape miss), the original container value is
// returned byte-for-byte.
func Through[S any](c Container[S], t Traversal[Value, Value]) Traversal[S, Value] {
	return NewTraversal(
		func(s S) (Value, bool) {
			v, ok := c.decode(s)
			if !ok {
				return Value{}, false
			}
			return t.Preview(v)
		},
		func(s S, nv Value) S {
			v, ok := c.decode(s)
			if !ok {
				return s
			}
			w := t.Set(v, nv)
			if w.Equal(v) {
				return s
			}
			return c.encode(w)
		},
	)
}

// ThroughIndexed lifts an indexed Value traversal over a container, with
// the same decode/re-encode and unchanged-input rules as Through.
func ThroughIndexed[I comparable, S any](c Container[S], t IndexedTraversal[I, Value, Value]) IndexedTraversal[I, S, Value] {
	return NewIndexedTraversal(
		func(s S) []Entry[I, Value] {
			v, ok := c.decode(s)
			if !ok {
				return nil
			}
			return t.Entries(v)
		},
		func(s S, fn func(I, Value) Value) S {
			v, ok := c.decode(s)
			if !ok {
				return s
			}
			w := t.Over(v, fn)
			if w.Equal(v) {
				return s
			}
			return c.encode(w)
		},
	)
}
