package optics

import (
	jsoniter "github.com/json-iterator/go"
)

var jsonIndentAPI = jsoniter.Config{
	EscapeHTML:    true,
	IndentionStep: 2,
}.Froze()

// Encode renders a Value tree as compact UTF-8 JSON text. Encoding is
// deterministic: object members in insertion order, numbers printed from
// their exact decimal text without exponent notation.
func Encode(v Value) string {
	return string(EncodeBytes(v))
}

// EncodeBytes renders a Value tree as compact UTF-8 JSON bytes.
func EncodeBytes(v Value) []byte {
	return encodeWith(jsonAPI, v)
}

// EncodeIndent renders a Value tree as two-space indented JSON text.
func EncodeIndent(v Value) string {
	return string(encodeWith(jsonIndentAPI, v))
}

func encodeWith(api jsoniter.API, v Value) []byte {
	stream := jsoniter.NewStream(api, nil, 256)
	writeValue(stream, v)
	buf := stream.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}

func writeValue(stream *jsoniter.Stream, v Value) {
	switch v.Kind() {
	case NullKind:
		stream.WriteNil()
	case BoolKind:
		b, _ := v.BoolValue()
		stream.WriteBool(b)
	case NumberKind:
		d, _ := v.NumberValue()
		stream.WriteRaw(d.String())
	case StringKind:
		s, _ := v.StringValue()
		stream.WriteString(s)
	case ArrayKind:
		elems, _ := v.ArrayValue()
		stream.WriteArrayStart()
		for i, elem := range elems {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(stream, elem)
		}
		stream.WriteArrayEnd()
	case ObjectKind:
		o, _ := v.ObjectValue()
		stream.WriteObjectStart()
		for i, m := range o.members {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(m.Key.String())
			writeValue(stream, m.Value)
		}
		stream.WriteObjectEnd()
	}
}
