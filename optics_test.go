package optics

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Plain non-JSON fixtures for the core combinators.
var (
	upperIso = NewIso(strings.ToUpper, strings.ToLower)

	positive = NewPrism(
		func(n int) (int, bool) { return n, n > 0 },
		func(n int) int { return n },
	)

	even = NewPrism(
		func(n int) (int, bool) { return n / 2, n%2 == 0 },
		func(half int) int { return half * 2 },
	)
)

func TestPrismCore(t *testing.T) {
	t.Run("MatchAndBuild", func(t *testing.T) {
		n, ok := even.Match(10)
		require.True(t, ok)
		assert.Equal(t, 5, n)

		_, ok = even.Match(7)
		assert.False(t, ok)

		assert.Equal(t, 14, even.Build(7))
	})

	t.Run("RoundTripLaw", func(t *testing.T) {
		for _, a := range []int{0, 1, 5, -3, 1000} {
			got, ok := even.Match(even.Build(a))
			require.True(t, ok, "build-then-match must succeed for %d", a)
			assert.Equal(t, a, got)
		}
	})

	t.Run("SetOnMismatchIsNoOp", func(t *testing.T) {
		assert.Equal(t, 7, even.Set(7, 99))
		assert.Equal(t, 198, even.Set(10, 99))
	})

	t.Run("OverOnMismatchIsNoOp", func(t *testing.T) {
		double := func(n int) int { return n * 2 }
		assert.Equal(t, 7, even.Over(7, double))
		assert.Equal(t, 20, even.Over(10, double)) // 10 -> half 5 -> 10 -> build 20
	})

	t.Run("Is", func(t *testing.T) {
		assert.True(t, even.Is(4))
		assert.False(t, even.Is(5))
	})
}

func TestIsoCore(t *testing.T) {
	t.Run("BothDirections", func(t *testing.T) {
		assert.Equal(t, "HELLO", upperIso.Get("hello"))
		assert.Equal(t, "hello", upperIso.Back("HELLO"))
	})

	t.Run("RoundTripLaws", func(t *testing.T) {
		assert.Equal(t, "json", upperIso.Back(upperIso.Get("json")))
		assert.Equal(t, "JSON", upperIso.Get(upperIso.Back("JSON")))
	})

	t.Run("Reverse", func(t *testing.T) {
		rev := upperIso.Reverse()
		assert.Equal(t, "abc", rev.Get("ABC"))
		assert.Equal(t, "ABC", rev.Back("abc"))
	})

	t.Run("AsPrismAlwaysMatches", func(t *testing.T) {
		p := upperIso.AsPrism()
		got, ok := p.Match("mixed")
		require.True(t, ok)
		assert.Equal(t, "MIXED", got)
	})
}

func TestTraversalCore(t *testing.T) {
	head := NewTraversal(
		func(s []int) (int, bool) {
			if len(s) == 0 {
				return 0, false
			}
			return s[0], true
		},
		func(s []int, n int) []int {
			if len(s) == 0 {
				return s
			}
			out := make([]int, len(s))
			copy(out, s)
			out[0] = n
			return out
		},
	)

	t.Run("PreviewAndSet", func(t *testing.T) {
		n, ok := head.Preview([]int{1, 2})
		require.True(t, ok)
		assert.Equal(t, 1, n)
		assert.Equal(t, []int{9, 2}, head.Set([]int{1, 2}, 9))
	})

	t.Run("MissIsNoOp", func(t *testing.T) {
		_, ok := head.Preview(nil)
		assert.False(t, ok)
		assert.Empty(t, head.Set(nil, 9))
	})

	t.Run("Over", func(t *testing.T) {
		assert.Equal(t, []int{2, 2}, head.Over([]int{1, 2}, func(n int) int { return n * 2 }))
		assert.Empty(t, head.Over(nil, func(n int) int { return n * 2 }))
	})

	t.Run("Exists", func(t *testing.T) {
		assert.True(t, head.Exists([]int{1}))
		assert.False(t, head.Exists(nil))
	})
}

func TestComposition(t *testing.T) {
	t.Run("ComposePrisms", func(t *testing.T) {
		posHalf := ComposePrisms(even, positive)

		n, ok := posHalf.Match(10)
		require.True(t, ok)
		assert.Equal(t, 5, n)

		_, ok = posHalf.Match(-4) // even, but half is not positive
		assert.False(t, ok)
		_, ok = posHalf.Match(7)
		assert.False(t, ok)

		assert.Equal(t, 6, posHalf.Build(3))
	})

	t.Run("ComposeIsos", func(t *testing.T) {
		trimmed := NewIso(strings.TrimSpace, func(s string) string { return s })
		both := ComposeIsos(trimmed, upperIso)
		assert.Equal(t, "HI", both.Get("  hi"))
	})

	t.Run("ComposeTraversalsMissShortCircuits", func(t *testing.T) {
		doc := ObjectOf(Member{KeyOf("a"), Array(Int(1))})
		path := ComposeTraversals(AtKey("a"), Nth(5))

		_, ok := path.Preview(doc)
		assert.False(t, ok)
		assert.True(t, path.Set(doc, Int(9)).Equal(doc))
	})

	t.Run("IdentityTraversal", func(t *testing.T) {
		id := IdentityTraversal[int]()
		n, ok := id.Preview(42)
		require.True(t, ok)
		assert.Equal(t, 42, n)
		assert.Equal(t, 7, id.Set(42, 7))
	})
}

func TestIndexedTraversalCore(t *testing.T) {
	doc := Array(Int(1), Int(2), Int(3))

	t.Run("EntriesAndFoci", func(t *testing.T) {
		entries := Values.Entries(doc)
		require.Len(t, entries, 3)
		assert.Equal(t, 0, entries[0].Index)
		assert.Equal(t, 2, entries[2].Index)
		assert.Len(t, Values.Foci(doc), 3)
		assert.Equal(t, 3, Values.Len(doc))
	})

	t.Run("SetAll", func(t *testing.T) {
		out := Values.SetAll(doc, Null())
		assert.Equal(t, `[null,null,null]`, Encode(out))
	})

	t.Run("ComposeIndexedSkipsMismatches", func(t *testing.T) {
		mixed := Array(Int(1), String("x"), Int(3))
		nums := ComposeIndexed(Members, AsNumber) // wrong shape: no foci
		assert.Empty(t, nums.Entries(mixed))

		byIndex := ComposeIndexed(Values, AsNumber)
		entries := byIndex.Entries(mixed)
		require.Len(t, entries, 2)
		assert.Equal(t, 0, entries[0].Index)
		assert.Equal(t, 2, entries[1].Index)

		doubled := byIndex.Over(mixed, func(_ int, d decimal.Decimal) decimal.Decimal { return d.Add(d) })
		assert.Equal(t, `[2,"x",6]`, Encode(doubled))
	})

	t.Run("ComposeIndexedTraversal", func(t *testing.T) {
		doc := Array(
			ObjectOf(Member{KeyOf("n"), Int(1)}),
			ObjectOf(Member{KeyOf("m"), Int(2)}),
		)
		inner := ComposeIndexedTraversal(Values, AtKey("n"))
		entries := inner.Entries(doc)
		require.Len(t, entries, 1)
		assert.Equal(t, 0, entries[0].Index)

		out := inner.Over(doc, func(_ int, v Value) Value { return Int(10) })
		assert.Equal(t, `[{"n":10},{"m":2}]`, Encode(out))
	})
}
