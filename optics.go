package optics

// Prism is an optional bidirectional view from a source type S onto a
// narrower focus type A. Match attempts to narrow a source down to the
// focus; Build reconstructs a source from a focus. Every prism satisfies
// the round-trip law: Match(Build(a)) succeeds and yields a.
type Prism[S, A any] struct {
	match func(S) (A, bool)
	build func(A) S
}

// NewPrism builds a prism from explicit match and build functions.
func NewPrism[S, A any](match func(S) (A, bool), build func(A) S) Prism[S, A] {
	return Prism[S, A]{match: match, build: build}
}

// Match narrows s to the focus type, reporting whether it matched.
func (p Prism[S, A]) Match(s S) (A, bool) {
	return p.match(s)
}

// Preview is Match under the traversal vocabulary.
func (p Prism[S, A]) Preview(s S) (A, bool) {
	return p.match(s)
}

// Is reports whether s matches the prism.
func (p Prism[S, A]) Is(s S) bool {
	_, ok := p.match(s)
	return ok
}

// Build reconstructs a source from a focus value.
func (p Prism[S, A]) Build(a A) S {
	return p.build(a)
}

// Set replaces the focus with a when s matches, otherwise returns s
// unchanged.
func (p Prism[S, A]) Set(s S, a A) S {
	if _, ok := p.match(s); !ok {
		return s
	}
	return p.build(a)
}

// Over rewrites the focus through fn when s matches, otherwise returns s
// unchanged.
func (p Prism[S, A]) Over(s S, fn func(A) A) S {
	a, ok := p.match(s)
	if !ok {
		return s
	}
	return p.build(fn(a))
}

// AsTraversal widens the prism into an affine traversal.
func (p Prism[S, A]) AsTraversal() Traversal[S, A] {
	return Traversal[S, A]{preview: p.match, set: p.Set}
}

// Iso is a total, lossless bidirectional view: a prism whose match never
// fails. Get and Back are mutual inverses.
type Iso[S, A any] struct {
	get  func(S) A
	back func(A) S
}

// NewIso builds an iso from a conversion and its inverse.
func NewIso[S, A any](get func(S) A, back func(A) S) Iso[S, A] {
	return Iso[S, A]{get: get, back: back}
}

// Get converts forward.
func (i Iso[S, A]) Get(s S) A {
	return i.get(s)
}

// Back converts backward.
func (i Iso[S, A]) Back(a A) S {
	return i.back(a)
}

// Reverse flips the direction of the iso.
func (i Iso[S, A]) Reverse() Iso[A, S] {
	return Iso[A, S]{get: i.back, back: i.get}
}

// AsPrism widens the iso into a prism that always matches.
func (i Iso[S, A]) AsPrism() Prism[S, A] {
	return Prism[S, A]{
		match: func(s S) (A, bool) { return i.get(s), true },
		build: i.back,
	}
}

// AsTraversal widens the iso into an affine traversal.
func (i Iso[S, A]) AsTraversal() Traversal[S, A] {
	return i.AsPrism().AsTraversal()
}

// Traversal is an affine (zero-or-one focus) accessor. Preview returns
// the focus when present; Set rewrites it, returning the source unchanged
// when no focus exists.
type Traversal[S, A any] struct {
	preview func(S) (A, bool)
	set     func(S, A) S
}

// NewTraversal builds an affine traversal from explicit preview and set
// functions.
func NewTraversal[S, A any](preview func(S) (A, bool), set func(S, A) S) Traversal[S, A] {
	return Traversal[S, A]{preview: preview, set: set}
}

// Preview returns the focus when present.
func (t Traversal[S, A]) Preview(s S) (A, bool) {
	return t.preview(s)
}

// Exists reports whether a focus is present.
func (t Traversal[S, A]) Exists(s S) bool {
	_, ok := t.preview(s)
	return ok
}

// Set rewrites the focus to a. When no focus exists the source is
// returned unchanged; a miss is never an error.
func (t Traversal[S, A]) Set(s S, a A) S {
	return t.set(s, a)
}

// Over rewrites the focus through fn when present, otherwise returns s
// unchanged.
func (t Traversal[S, A]) Over(s S, fn func(A) A) S {
	a, ok := t.preview(s)
	if !ok {
		return s
	}
	return t.set(s, fn(a))
}

// Entry pairs a focus with its index within the container.
type Entry[I comparable, A any] struct {
	Index I
	Value A
}

// IndexedTraversal focuses zero or more elements of a source, each paired
// with an index (object key or array position). Enumeration and rewriting
// follow container order: insertion order for objects, ascending index
// for arrays. Rewriting never adds, drops, or reorders foci.
type IndexedTraversal[I comparable, S, A any] struct {
	entries func(S) []Entry[I, A]
	over    func(S, func(I, A) A) S
}

// NewIndexedTraversal builds an indexed traversal from an ordered fold
// and an order-preserving map-each.
func NewIndexedTraversal[I comparable, S, A any](
	entries func(S) []Entry[I, A],
	over func(S, func(I, A) A) S,
) IndexedTraversal[I, S, A] {
	return IndexedTraversal[I, S, A]{entries: entries, over: over}
}

// Entries folds the source into its indexed foci in container order.
func (t IndexedTraversal[I, S, A]) Entries(s S) []Entry[I, A] {
	return t.entries(s)
}

// Foci returns the focus values in container order, without indices.
func (t IndexedTraversal[I, S, A]) Foci(s S) []A {
	entries := t.entries(s)
	foci := make([]A, len(entries))
	for i, e := range entries {
		foci[i] = e.Value
	}
	return foci
}

// Len returns the number of foci in s.
func (t IndexedTraversal[I, S, A]) Len(s S) int {
	return len(t.entries(s))
}

// Over rewrites every focus through fn, preserving indices and order.
func (t IndexedTraversal[I, S, A]) Over(s S, fn func(I, A) A) S {
	return t.over(s, fn)
}

// SetAll replaces every focus with a.
func (t IndexedTraversal[I, S, A]) SetAll(s S, a A) S {
	return t.over(s, func(I, A) A { return a })
}

// IdentityIso returns the identity conversion on S.
func IdentityIso[S any]() Iso[S, S] {
	id := func(s S) S { return s }
	return Iso[S, S]{get: id, back: id}
}

// IdentityTraversal returns the always-focused identity traversal on S.
func IdentityTraversal[S any]() Traversal[S, S] {
	return IdentityIso[S]().AsTraversal()
}

// ComposePrisms chains two prisms into a prism from the outer source to
// the inner focus. Match fails when either stage fails; Build layers the
// two build sides.
func ComposePrisms[S, M, A any](outer Prism[S, M], inner Prism[M, A]) Prism[S, A] {
	return Prism[S, A]{
		match: func(s S) (A, bool) {
			m, ok := outer.match(s)
			if !ok {
				var zero A
				return zero, false
			}
			return inner.match(m)
		},
		build: func(a A) S {
			return outer.build(inner.build(a))
		},
	}
}

// ComposeIsos chains two isos.
func ComposeIsos[S, M, A any](outer Iso[S, M], inner Iso[M, A]) Iso[S, A] {
	return Iso[S, A]{
		get:  func(s S) A { return inner.get(outer.get(s)) },
		back: func(a A) S { return outer.back(inner.back(a)) },
	}
}

// ComposeTraversals chains two affine traversals. Preview follows both
// stages; Set rebuilds the outer focus around the rewritten inner one,
// and is a no-op when either stage has no focus.
func ComposeTraversals[S, M, A any](outer Traversal[S, M], inner Traversal[M, A]) Traversal[S, A] {
	return Traversal[S, A]{
		preview: func(s S) (A, bool) {
			m, ok := outer.preview(s)
			if !ok {
				var zero A
				return zero, false
			}
			return inner.preview(m)
		},
		set: func(s S, a A) S {
			m, ok := outer.preview(s)
			if !ok {
				return s
			}
			return outer.set(s, inner.set(m, a))
		},
	}
}

// ComposeTraversalPrism chains an affine traversal with a prism on its
// focus.
func ComposeTraversalPrism[S, M, A any](outer Traversal[S, M], inner Prism[M, A]) Traversal[S, A] {
	return ComposeTraversals(outer, inner.AsTraversal())
}

// ComposeIndexed refines the foci of an indexed traversal through a
// prism. Entries keeps only matching foci; Over rewrites matching foci
// and leaves the rest untouched. Indices and order are preserved.
func ComposeIndexed[I comparable, S, M, A any](outer IndexedTraversal[I, S, M], inner Prism[M, A]) IndexedTraversal[I, S, A] {
	return IndexedTraversal[I, S, A]{
		entries: func(s S) []Entry[I, A] {
			var entries []Entry[I, A]
			for _, e := range outer.entries(s) {
				if a, ok := inner.match(e.Value); ok {
					entries = append(entries, Entry[I, A]{Index: e.Index, Value: a})
				}
			}
			return entries
		},
		over: func(s S, fn func(I, A) A) S {
			return outer.over(s, func(i I, m M) M {
				a, ok := inner.match(m)
				if !ok {
					return m
				}
				return inner.build(fn(i, a))
			})
		},
	}
}

// ComposeIndexedTraversal refines the foci of an indexed traversal
// through an affine traversal, keeping the outer indices.
func ComposeIndexedTraversal[I comparable, S, M, A any](outer IndexedTraversal[I, S, M], inner Traversal[M, A]) IndexedTraversal[I, S, A] {
	return IndexedTraversal[I, S, A]{
		entries: func(s S) []Entry[I, A] {
			var entries []Entry[I, A]
			for _, e := range outer.entries(s) {
				if a, ok := inner.preview(e.Value); ok {
					entries = append(entries, Entry[I, A]{Index: e.Index, Value: a})
				}
			}
			return entries
		},
		over: func(s S, fn func(I, A) A) S {
			return outer.over(s, func(i I, m M) M {
				return inner.Over(m, func(a A) A { return fn(i, a) })
			})
		},
	}
}
