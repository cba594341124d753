package optics

// Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   Key
	Value Value
}

// Object is an insertion-ordered collection of unique key-value members.
// Lookup is backed by an index map; enumeration follows member order.
type Object struct {
	members []Member
	index   map[Key]int
}

// NewObject builds an object from the given members in order. A repeated
// key keeps its first position and takes the last value, matching how
// duplicate keys collapse during decoding.
func NewObject(members ...Member) *Object {
	o := &Object{
		members: make([]Member, 0, len(members)),
		index:   make(map[Key]int, len(members)),
	}
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Get returns the value stored under k.
func (o *Object) Get(k Key) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[k]
	if !ok {
		return Value{}, false
	}
	return o.members[i].Value, true
}

// Has reports whether k is present.
func (o *Object) Has(k Key) bool {
	if o == nil {
		return false
	}
	_, ok := o.index[k]
	return ok
}

// Set overwrites the value under k in place, or appends a new member when
// k is absent. Existing members keep their position.
func (o *Object) Set(k Key, v Value) {
	if i, ok := o.index[k]; ok {
		o.members[i].Value = v
		return
	}
	if o.index == nil {
		o.index = make(map[Key]int, 4)
	}
	o.index[k] = len(o.members)
	o.members = append(o.members, Member{Key: k, Value: v})
}

// Delete removes the member under k, preserving the order of the rest.
func (o *Object) Delete(k Key) bool {
	if o == nil {
		return false
	}
	i, ok := o.index[k]
	if !ok {
		return false
	}
	o.members = append(o.members[:i], o.members[i+1:]...)
	delete(o.index, k)
	for j := i; j < len(o.members); j++ {
		o.index[o.members[j].Key] = j
	}
	return true
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []Key {
	if o == nil {
		return nil
	}
	keys := make([]Key, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns a copy of the member list in insertion order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	members := make([]Member, len(o.members))
	copy(members, o.members)
	return members
}

// Clone returns a shallow copy: the member list and index are fresh, the
// member values are shared. Sufficient for copy-on-write rewrites since
// values themselves are never mutated.
func (o *Object) Clone() *Object {
	if o == nil {
		return NewObject()
	}
	c := &Object{
		members: make([]Member, len(o.members)),
		index:   make(map[Key]int, len(o.index)),
	}
	copy(c.members, o.members)
	for k, i := range o.index {
		c.index[k] = i
	}
	return c
}

// CloneDeep returns a copy whose member values are themselves deep copies.
func (o *Object) CloneDeep() *Object {
	c := o.Clone()
	for i := range c.members {
		c.members[i].Value = c.members[i].Value.Clone()
	}
	return c
}

// Equal reports whether both objects hold the same members in the same
// order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	if o == nil || other == nil {
		return true
	}
	for i := range o.members {
		if o.members[i].Key != other.members[i].Key {
			return false
		}
		if !o.members[i].Value.Equal(other.members[i].Value) {
			return false
		}
	}
	return true
}
