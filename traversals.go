package optics

// AtKey returns an affine traversal onto the object member k. It accepts
// any key-like text (plain string or Key).
//
// Preview returns the member's value when the source is an object that
// contains k. Set inserts or overwrites k when the source is an object
// (a missing key is appended as the last member) and is a silent no-op
// when the source is any other shape.
func AtKey[K ~string](k K) Traversal[Value, Value] {
	key := KeyOf(string(k))
	return NewTraversal(
		func(v Value) (Value, bool) {
			o, ok := v.ObjectValue()
			if !ok {
				return Value{}, false
			}
			return o.Get(key)
		},
		func(v Value, nv Value) Value {
			o, ok := v.ObjectValue()
			if !ok {
				return v
			}
			oc := o.Clone()
			oc.Set(key, nv)
			return objectValue(oc)
		},
	)
}

// Nth returns an affine traversal onto the array element at 0-based
// index i. Preview is empty and Set is a no-op when the source is not an
// array or the index is out of range; Set never grows or shrinks the
// array.
func Nth(i int) Traversal[Value, Value] {
	return NewTraversal(
		func(v Value) (Value, bool) {
			elems, ok := v.ArrayValue()
			if !ok || i < 0 || i >= len(elems) {
				return Value{}, false
			}
			return elems[i], true
		},
		func(v Value, nv Value) Value {
			elems, ok := v.ArrayValue()
			if !ok || i < 0 || i >= len(elems) {
				return v
			}
			rewritten := make([]Value, len(elems))
			copy(rewritten, elems)
			rewritten[i] = nv
			return Array(rewritten...)
		},
	)
}

// Members traverses every member of an object value, indexed by key, in
// insertion order. Rewriting keeps every key and the member order; a
// non-object source has no foci and passes through unchanged.
var Members = NewIndexedTraversal(
	func(v Value) []Entry[Key, Value] {
		o, ok := v.ObjectValue()
		if !ok {
			return nil
		}
		entries := make([]Entry[Key, Value], 0, o.Len())
		for _, m := range o.members {
			entries = append(entries, Entry[Key, Value]{Index: m.Key, Value: m.Value})
		}
		return entries
	},
	func(v Value, fn func(Key, Value) Value) Value {
		o, ok := v.ObjectValue()
		if !ok {
			return v
		}
		oc := o.Clone()
		for i := range oc.members {
			oc.members[i].Value = fn(oc.members[i].Key, oc.members[i].Value)
		}
		return objectValue(oc)
	},
)

// Values traverses every element of an array value, indexed by position,
// in ascending order. Rewriting preserves length and positions; a
// non-array source has no foci and passes through unchanged.
var Values = NewIndexedTraversal(
	func(v Value) []Entry[int, Value] {
		elems, ok := v.ArrayValue()
		if !ok {
			return nil
		}
		entries := make([]Entry[int, Value], len(elems))
		for i, e := range elems {
			entries[i] = Entry[int, Value]{Index: i, Value: e}
		}
		return entries
	},
	func(v Value, fn func(int, Value) Value) Value {
		elems, ok := v.ArrayValue()
		if !ok {
			return v
		}
		rewritten := make([]Value, len(elems))
		for i, e := range elems {
			rewritten[i] = fn(i, e)
		}
		return Array(rewritten...)
	},
)

// AtKeyIn is AtKey lifted over a container: decode, navigate, re-encode.
func AtKeyIn[S any, K ~string](c Container[S], k K) Traversal[S, Value] {
	return Through(c, AtKey(k))
}

// NthIn is Nth lifted over a container.
func NthIn[S any](c Container[S], i int) Traversal[S, Value] {
	return Through(c, Nth(i))
}

// MembersIn is Members lifted over a container.
func MembersIn[S any](c Container[S]) IndexedTraversal[Key, S, Value] {
	return ThroughIndexed(c, Members)
}

// ValuesIn is Values lifted over a container.
func ValuesIn[S any](c Container[S]) IndexedTraversal[int, S, Value] {
	return ThroughIndexed(c, Values)
}
