package optional

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestOfNullable(t *testing.T) {
	t.Parallel()

	v := "hello"
	opt := OfNullable(&v)
	require.True(t, opt.IsPresent())
	require.False(t, opt.IsEmpty())
	require.Equal(t, "hello", opt.Get())

	empty := OfNullable[string](nil)
	require.False(t, empty.IsPresent())
	require.True(t, empty.IsEmpty())
	require.PanicsWithValue(t, ErrNoSuchValue, func() { empty.Get() })
}

func TestOfRejectsNil(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { Of(42) })
	require.Panics(t, func() { Of[*int](nil) })
	require.Panics(t, func() { Of[map[string]int](nil) })
	require.Panics(t, func() { Of[[]string](nil) })
}

func TestOfAnyCollapsesNil(t *testing.T) {
	t.Parallel()

	var m map[string]int
	require.True(t, OfAny(m).IsEmpty())
	require.True(t, OfAny[any](nil).IsEmpty())
	require.True(t, OfAny(3).IsPresent())

	// typed nil behind an interface is still absent
	var p *int
	require.True(t, OfAny[any](p).IsEmpty())
}

func TestGetOnZeroValue(t *testing.T) {
	t.Parallel()

	var opt Optional[int]
	require.True(t, opt.IsEmpty())
	require.PanicsWithValue(t, ErrNoSuchValue, func() { opt.Get() })
}

func TestUnpack(t *testing.T) {
	t.Parallel()

	v, ok := Of(7).Unpack()
	require.True(t, ok)
	require.Equal(t, 7, v)

	v, ok = None[int]().Unpack()
	require.False(t, ok)
	require.Zero(t, v)
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	require.Equal(t, 7, None[int]().OrElse(7))
	require.Equal(t, 3, Of(3).OrElse(7))
}

func TestOrElseGetIsLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	supplier := func() int { calls++; return 7 }

	require.Equal(t, 3, Of(3).OrElseGet(supplier))
	require.Zero(t, calls)

	require.Equal(t, 7, None[int]().OrElseGet(supplier))
	require.Equal(t, 1, calls)
}

func TestOrElseThrow(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0
	supplier := func() error { calls++; return boom }

	v, err := Of(1).OrElseThrow(supplier)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Zero(t, calls)

	_, err = None[int]().OrElseThrow(supplier)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
}

func TestIfPresentIfEmptyChaining(t *testing.T) {
	t.Parallel()

	seen := 0
	misses := 0
	out := Of(5).
		IfPresent(func(v int) { seen = v }).
		IfEmpty(func() { misses++ })
	require.Equal(t, Of(5), out)
	require.Equal(t, 5, seen)
	require.Zero(t, misses)

	out = None[int]().
		IfPresent(func(v int) { seen = -1 }).
		IfEmpty(func() { misses++ })
	require.Equal(t, None[int](), out)
	require.Equal(t, 5, seen)
	require.Equal(t, 1, misses)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(i int) bool { return i%2 == 0 }
	require.Equal(t, Of(4), Of(4).Filter(even))
	require.Equal(t, None[int](), Of(3).Filter(even))

	calls := 0
	require.Equal(t, None[int](), None[int]().Filter(func(i int) bool { calls++; return true }))
	require.Zero(t, calls)
}

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(i int) int { return i * 2 }
	require.Equal(t, Of(6), Map(Of(3), double))

	calls := 0
	require.Equal(t, None[int](), Map(None[int](), func(i int) int { calls++; return i }))
	require.Zero(t, calls)

	// a mapper producing nil collapses to empty instead of wrapping nil
	require.True(t, Map(Of("x"), func(string) *string { return nil }).IsEmpty())
	require.True(t, Map(Of("x"), strPtr).IsPresent())
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	g := func(i int) Optional[string] { return Of(strconv.Itoa(i)) }
	require.Equal(t, g(7), FlatMap(Of(7), g))
	require.Equal(t, None[string](), FlatMap(Of(7), func(int) Optional[string] { return None[string]() }))

	calls := 0
	require.Equal(t, None[string](), FlatMap(None[int](), func(i int) Optional[string] {
		calls++
		return g(i)
	}))
	require.Zero(t, calls)
}

func TestEquality(t *testing.T) {
	t.Parallel()

	require.True(t, Of("a") == Of("a"))
	require.True(t, None[string]() == None[string]())
	require.False(t, Of("a") == None[string]())
	require.False(t, Of("a") == Of("b"))
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b []int) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	require.True(t, Of([]int{1, 2}).Equals(Of([]int{1, 2}), eq))
	require.False(t, Of([]int{1, 2}).Equals(Of([]int{1, 3}), eq))
	require.False(t, Of([]int{1}).Equals(None[[]int](), eq))
	require.True(t, None[[]int]().Equals(None[[]int](), eq))
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Optional[1]", Of(1).String())
	require.Equal(t, "Optional[abc]", Of("abc").String())
	require.Equal(t, "Optional.EMPTY", None[int]().String())
}

func TestHash(t *testing.T) {
	t.Parallel()

	require.Zero(t, None[int]().Hash())
	require.Equal(t, Of(1).Hash(), Of(1).Hash())
	require.NotZero(t, Of(1).Hash())
	require.NotEqual(t, Of(1).Hash(), Of(2).Hash())
}

func TestOrNullRoundTrip(t *testing.T) {
	t.Parallel()

	x := "v"
	p := OfNullable(&x).OrNull()
	require.NotNil(t, p)
	require.Equal(t, x, *p)

	require.Nil(t, OfNullable[string](nil).OrNull())
}

func TestNullableFold(t *testing.T) {
	t.Parallel()

	values := []*string{nil, strPtr("1"), nil, strPtr("2"), nil, strPtr("3")}
	var sb strings.Builder
	var misses []int
	for i, p := range values {
		i := i
		Map(OfNullable(p), func(s string) string { return s + " is not null" }).
			IfPresent(func(s string) {
				sb.WriteString(s)
				sb.WriteByte('\n')
			}).
			IfEmpty(func() {
				misses = append(misses, i)
			})
	}
	require.Equal(t, "1 is not null\n2 is not null\n3 is not null\n", sb.String())
	require.Equal(t, []int{0, 2, 4}, misses)
}
