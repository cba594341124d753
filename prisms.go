package optics

// Shape prisms over Value. Each matches exactly one JSON variant and
// builds that variant back. Matching the wrong shape is never an error;
// it is an empty result, and setting through a mismatch is a no-op.
var (
	// AsObject matches object values, focusing their member collection.
	AsObject = NewPrism(Value.ObjectValue, objectValue)

	// AsArray matches array values, focusing their element slice.
	AsArray = NewPrism(Value.ArrayValue, func(elems []Value) Value { return Array(elems...) })

	// AsString matches string values.
	AsString = NewPrism(Value.StringValue, String)

	// AsBool matches boolean values.
	AsBool = NewPrism(Value.BoolValue, Bool)

	// AsNull matches the null value, focusing unit. Build always yields
	// Null.
	AsNull = NewPrism(
		func(v Value) (struct{}, bool) { return struct{}{}, v.IsNull() },
		func(struct{}) Value { return Null() },
	)

	// NonNull is the identity on every value except Null, which it
	// refuses to match. Composing it into a chain filters explicit nulls
	// without altering anything else.
	NonNull = NewPrism(
		func(v Value) (Value, bool) {
			if v.IsNull() {
				return Value{}, false
			}
			return v, true
		},
		func(v Value) Value { return v },
	)
)
