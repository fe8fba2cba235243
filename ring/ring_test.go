package ring

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// requireRing checks the cycle invariants and the digits of r.
func requireRing(t *testing.T, r *Ring, digits []byte, msgAndArgs ...interface{}) {
	t.Helper()

	require.Equal(t, len(digits), r.Len(), msgAndArgs...)

	if r.Len() == 0 {
		require.Equal(t, none, r.head, msgAndArgs...)
		require.Equal(t, []byte{}, r.Digits(), msgAndArgs...)

		return
	}

	// Forward: count steps from head lands back on head.
	h := r.head
	forward := []byte{}
	for i := 0; i < r.count; i++ {
		c := r.cells[h]
		require.Equal(t, h, r.cells[c.next].prev, spew.Sdump(r.cells))
		require.Less(t, int(c.digit), r.base)
		forward = append(forward, c.digit)
		h = c.next
	}
	require.Equal(t, r.head, h, spew.Sdump(r.cells))

	// Backward: head.prev is the tail.
	backward := []byte{}
	h = r.cells[r.head].prev
	for i := 0; i < r.count; i++ {
		backward = append([]byte{r.cells[h].digit}, backward...)
		h = r.cells[h].prev
	}
	require.Equal(t, r.cells[r.head].prev, h)

	require.Equal(t, digits, forward, msgAndArgs...)
	require.Equal(t, digits, backward, msgAndArgs...)
	require.Equal(t, digits, r.Digits(), msgAndArgs...)
}

func mustRing(t testing.TB, base int, digits ...byte) *Ring {
	r, err := FromDigits(base, digits...)
	require.NoError(t, err)

	return r
}

func TestNew(t *testing.T) {
	for _, base := range []int{MinBase, DefaultBase, 10, 16, 36, MaxBase} {
		r, err := New(base)
		require.NoError(t, err)
		require.Equal(t, base, r.Base())
		require.True(t, r.Empty())
		requireRing(t, r, []byte{})
	}

	for _, base := range []int{-1, 0, 1, MaxBase + 1} {
		_, err := New(base)
		require.Error(t, err)
		require.True(t, ValidationError.Has(err), "%d: %v", base, err)
	}
}

func TestAppend(t *testing.T) {
	r := mustRing(t, 8)

	require.NoError(t, r.Append(1))
	requireRing(t, r, []byte{1})
	require.Equal(t, r.head, r.cells[r.head].next)
	require.Equal(t, r.head, r.cells[r.head].prev)

	require.NoError(t, r.Append(2))
	require.NoError(t, r.Append(3))
	requireRing(t, r, []byte{1, 2, 3})

	err := r.Append(8)
	require.Error(t, err)
	require.True(t, ValidationError.Has(err))
	requireRing(t, r, []byte{1, 2, 3})

	err = r.AppendAll(4, 5, 9)
	require.True(t, ValidationError.Has(err))
	requireRing(t, r, []byte{1, 2, 3})

	require.NoError(t, r.AppendAll(4, 5))
	requireRing(t, r, []byte{1, 2, 3, 4, 5})
}

func TestInsert(t *testing.T) {
	type TC struct {
		name   string
		start  []byte
		index  int
		digit  byte
		result []byte
		err    bool
		Mark   error
	}

	tcs := []TC{
		{
			name:   "head",
			start:  []byte{1, 2, 3},
			index:  0,
			digit:  5,
			result: []byte{5, 1, 2, 3},
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "middle",
			start:  []byte{1, 2, 3},
			index:  2,
			digit:  7,
			result: []byte{1, 2, 7, 3},
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "tail",
			start:  []byte{1, 2, 3},
			index:  3,
			digit:  0,
			result: []byte{1, 2, 3, 0},
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "empty",
			start:  []byte{},
			index:  0,
			digit:  4,
			result: []byte{4},
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "past end",
			start:  []byte{1, 2, 3},
			index:  4,
			digit:  1,
			result: []byte{1, 2, 3},
			err:    true,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "negative",
			start:  []byte{1},
			index:  -1,
			digit:  1,
			result: []byte{1},
			err:    true,
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			r := mustRing(t, 8, tc.start...)

			err := r.Insert(tc.index, tc.digit)
			if tc.err {
				require.Error(t, err, tc.Mark)
				require.True(t, IndexError.Has(err), tc.Mark)
			} else {
				require.NoError(t, err, tc.Mark)
			}

			requireRing(t, r, tc.result, tc.Mark)
		})
	}

	t.Run("head moves", func(t *testing.T) {
		r := mustRing(t, 8, 1, 2, 3)
		old := r.head

		require.NoError(t, r.Insert(0, 5))
		require.NotEqual(t, old, r.head)
		require.Equal(t, byte(5), r.cells[r.head].digit)
		require.Equal(t, old, r.cells[r.head].next)
	})

	t.Run("invalid digit", func(t *testing.T) {
		r := mustRing(t, 8, 1, 2, 3)

		err := r.Insert(1, 8)
		require.True(t, ValidationError.Has(err))
		requireRing(t, r, []byte{1, 2, 3})
	})

	t.Run("all", func(t *testing.T) {
		r := mustRing(t, 8, 1, 2, 3)

		require.NoError(t, r.InsertAll(0, 6, 7))
		requireRing(t, r, []byte{6, 7, 1, 2, 3})

		require.NoError(t, r.InsertAll(3, 0, 0))
		requireRing(t, r, []byte{6, 7, 1, 0, 0, 2, 3})

		require.NoError(t, r.InsertAll(r.Len(), 5))
		requireRing(t, r, []byte{6, 7, 1, 0, 0, 2, 3, 5})

		err := r.InsertAll(1, 1, 8)
		require.True(t, ValidationError.Has(err))
		requireRing(t, r, []byte{6, 7, 1, 0, 0, 2, 3, 5})

		err = r.InsertAll(9, 1)
		require.True(t, IndexError.Has(err))
	})
}

func TestRemove(t *testing.T) {
	r := mustRing(t, 8, 5, 1, 2, 3)

	d, err := r.Remove(1)
	require.NoError(t, err)
	require.Equal(t, byte(1), d)
	requireRing(t, r, []byte{5, 2, 3})

	d, err = r.Remove(0)
	require.NoError(t, err)
	require.Equal(t, byte(5), d)
	requireRing(t, r, []byte{2, 3})

	_, err = r.Remove(2)
	require.True(t, IndexError.Has(err))
	requireRing(t, r, []byte{2, 3})

	d, err = r.Remove(1)
	require.NoError(t, err)
	require.Equal(t, byte(3), d)

	d, err = r.Remove(0)
	require.NoError(t, err)
	require.Equal(t, byte(2), d)
	requireRing(t, r, []byte{})

	_, err = r.Remove(0)
	require.True(t, IndexError.Has(err))

	_, err = r.Get(0)
	require.True(t, IndexError.Has(err))

	// The store is reused after emptying.
	require.NoError(t, r.AppendAll(1, 2))
	requireRing(t, r, []byte{1, 2})
}

func TestRemoveDigit(t *testing.T) {
	r := mustRing(t, 8, 1, 2, 1, 3)

	require.True(t, r.RemoveDigit(1))
	requireRing(t, r, []byte{2, 1, 3})

	require.False(t, r.RemoveDigit(7))
	requireRing(t, r, []byte{2, 1, 3})

	require.True(t, r.RemoveDigit(3))
	require.True(t, r.RemoveDigit(2))
	require.True(t, r.RemoveDigit(1))
	requireRing(t, r, []byte{})

	require.False(t, r.RemoveDigit(1))
}

func TestRemoveRetainAll(t *testing.T) {
	r := mustRing(t, 10, 1, 2, 3, 1, 4, 1, 5)

	require.True(t, r.RemoveAll(1, 5))
	requireRing(t, r, []byte{2, 3, 4})

	require.False(t, r.RemoveAll(9))
	requireRing(t, r, []byte{2, 3, 4})

	require.True(t, r.RetainAll(3, 9))
	requireRing(t, r, []byte{3})

	require.False(t, r.RetainAll(3))

	require.True(t, r.RetainAll())
	requireRing(t, r, []byte{})

	require.False(t, r.RemoveAll(3))
}

func TestGetSet(t *testing.T) {
	r := mustRing(t, 16, 1, 2, 3, 4, 5)

	for i, want := range []byte{1, 2, 3, 4, 5} {
		d, err := r.Get(i)
		require.NoError(t, err)
		require.Equal(t, want, d, i)
	}

	old, err := r.Set(3, 15)
	require.NoError(t, err)
	require.Equal(t, byte(4), old)
	requireRing(t, r, []byte{1, 2, 3, 15, 5})

	_, err = r.Set(3, 16)
	require.True(t, ValidationError.Has(err))

	_, err = r.Set(5, 1)
	require.True(t, IndexError.Has(err))

	_, err = r.Get(-1)
	require.True(t, IndexError.Has(err))

	requireRing(t, r, []byte{1, 2, 3, 15, 5})
}

func TestSearch(t *testing.T) {
	r := mustRing(t, 8, 3, 1, 4, 1, 5)

	require.Equal(t, 1, r.IndexOf(1))
	require.Equal(t, 3, r.LastIndexOf(1))
	require.Equal(t, 0, r.IndexOf(3))
	require.Equal(t, 4, r.LastIndexOf(5))
	require.Equal(t, -1, r.IndexOf(7))
	require.Equal(t, -1, r.LastIndexOf(7))
	require.True(t, r.Contains(4))
	require.False(t, r.Contains(0))

	empty := mustRing(t, 8)
	require.Equal(t, -1, empty.IndexOf(0))
	require.Equal(t, -1, empty.LastIndexOf(0))
	require.False(t, empty.Contains(0))
}

func TestClear(t *testing.T) {
	r := mustRing(t, 8, 1, 2, 3)

	r.Clear()
	requireRing(t, r, []byte{})

	require.NoError(t, r.Append(7))
	requireRing(t, r, []byte{7})
}

func TestCloneSlice(t *testing.T) {
	r := mustRing(t, 8, 1, 2, 3, 4)

	c := r.Clone()
	requireRing(t, c, []byte{1, 2, 3, 4})
	require.Equal(t, r.Base(), c.Base())

	_, err := c.Set(0, 7)
	require.NoError(t, err)
	requireRing(t, r, []byte{1, 2, 3, 4})

	s, err := r.Slice(1, 3)
	require.NoError(t, err)
	requireRing(t, s, []byte{2, 3})

	s, err = r.Slice(2, 2)
	require.NoError(t, err)
	requireRing(t, s, []byte{})

	_, err = r.Slice(3, 2)
	require.True(t, IndexError.Has(err))

	_, err = r.Slice(0, 5)
	require.True(t, IndexError.Has(err))
}

func TestString(t *testing.T) {
	type TC struct {
		name   string
		base   int
		digits []byte
		s      string
	}

	tcs := []TC{
		{name: "empty", base: 8, digits: nil, s: "0"},
		{name: "octal", base: 8, digits: []byte{1, 2, 3}, s: "123"},
		{name: "hex", base: 16, digits: []byte{15, 0, 10}, s: "f0a"},
		{name: "36", base: 36, digits: []byte{35, 1}, s: "z1"},
		{name: "256", base: 256, digits: []byte{255, 0, 17}, s: "255:0:17"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			r := mustRing(t, tc.base, tc.digits...)
			require.Equal(t, tc.s, r.String())
		})
	}
}

func TestLen(t *testing.T) {
	r := mustRing(t, 8)

	for n := 0; n < 50; n++ {
		requireRing(t, r, r.Digits())
		require.Equal(t, n, r.Len())

		require.NoError(t, r.Insert(n/2, byte(n%8)))
	}

	for r.Len() > 0 {
		_, err := r.Remove(r.Len() / 3)
		require.NoError(t, err)
		requireRing(t, r, r.Digits())
	}
}

func BenchmarkGet(b *testing.B) {
	r := mustRing(b, 8)
	for i := 0; i < 1024; i++ {
		err := r.Append(byte(i % 8))
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}

	for n := 0; n < b.N; n++ {
		_, err := r.Get(n % 1024)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
