package vector

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueVector(t *testing.T) {
	var v Vector[int]

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.True(t, v.Empty())
	assert.Nil(t, v.region.base, "empty vector must not hold storage")

	require.NoError(t, v.PushBack(7))
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, 7, *v.Index(0))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		maxBytes int
	}{
		{"no options", nil, 0},
		{"byte budget", []Option{WithMaxBytes(64)}, 64},
		{"negative budget disables cap", []Option{WithMaxBytes(-5)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New[int](tt.opts...)
			assert.Equal(t, tt.maxBytes, v.maxBytes)
			assert.Equal(t, 0, v.Cap(), "New must not allocate")
		})
	}
}

func TestPushBackGrowth(t *testing.T) {
	v := New[int]()
	wantCaps := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}

	for i, want := range wantCaps {
		require.NoError(t, v.PushBack(i*10))
		assert.Equal(t, i+1, v.Len(), "Len after push %d", i+1)
		assert.Equal(t, want, v.Cap(), "Cap after push %d", i+1)
	}

	for i := range wantCaps {
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i*10, got)
	}
}

func TestPushBackClonesValue(t *testing.T) {
	l := resetBook(t)
	v := New[tracked]()

	proto := tracked{val: 3}
	for i := 0; i < 3; i++ {
		require.NoError(t, v.PushBack(proto))
	}

	assert.Equal(t, 3, l.clones, "each push copies through Clone")
	assert.Equal(t, 3, l.live)
	assert.Equal(t, []int{3, 3, 3}, trackedValues(v))
}

func TestPushBackMove(t *testing.T) {
	v := New[string]()
	s := "payload"

	require.NoError(t, v.PushBackMove(&s))
	assert.Equal(t, "", s, "moved-from plain value is reset")
	assert.Equal(t, "payload", *v.Back())

	l := resetBook(t)
	f := New[fragile]()
	src := fragile{val: 9}
	require.NoError(t, f.PushBackMove(&src))
	assert.Equal(t, 1, l.moves)
	assert.Equal(t, 0, src.val, "Move leaves the receiver moved-from")
	assert.Equal(t, []int{9}, trackedValues(f))
}

func TestEmplaceBack(t *testing.T) {
	v := New[[2]int]()

	for i := 0; i < 5; i++ {
		err := v.EmplaceBack(func(slot *[2]int) error {
			assert.Equal(t, [2]int{}, *slot, "slot handed to constructor is zeroed")
			slot[0], slot[1] = i, i*i
			return nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 8, v.Cap())
	assert.Equal(t, [2]int{4, 16}, *v.Back())

	t.Run("nil constructor default-constructs", func(t *testing.T) {
		l := resetBook(t)
		tv := New[tracked]()
		require.NoError(t, tv.EmplaceBack(nil))
		assert.Equal(t, 1, l.inits)
		assert.Equal(t, []int{-1}, trackedValues(tv))
	})
}

func TestPopBack(t *testing.T) {
	l := resetBook(t)
	v := New[tracked]()
	for i := 0; i < 4; i++ {
		require.NoError(t, v.PushBack(tracked{val: i}))
	}

	v.PopBack()
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 4, v.Cap(), "PopBack keeps capacity")
	assert.Equal(t, 1, l.destroys)
	assert.Equal(t, tracked{}, *slotAt[tracked](v.region, 3), "popped slot is cleared")

	v.PopBack()
	v.PopBack()
	v.PopBack()
	v.PopBack() // no-op on empty
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 4, l.destroys)
	assert.Equal(t, 0, l.live)
}

func TestResize(t *testing.T) {
	tests := []struct {
		name     string
		initial  []int
		reserve  int
		n        int
		wantLen  int
		wantCap  int
		wantData []int
	}{
		{"shrink", []int{1, 2, 3, 4}, 0, 2, 2, 4, []int{1, 2}},
		{"shrink to zero", []int{1, 2, 3}, 0, 0, 0, 3, nil},
		{"same length", []int{1, 2, 3}, 0, 3, 3, 3, []int{1, 2, 3}},
		{"grow in place", []int{1, 2}, 6, 5, 5, 6, []int{1, 2, 0, 0, 0}},
		{"grow reallocates exactly", []int{1, 2}, 0, 7, 7, 7, []int{1, 2, 0, 0, 0, 0, 0}},
		{"grow from empty", nil, 0, 3, 3, 3, []int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Of(tt.initial...)
			require.NoError(t, err)
			require.NoError(t, v.Reserve(tt.reserve))

			require.NoError(t, v.Resize(tt.n))
			assert.Equal(t, tt.wantLen, v.Len())
			assert.Equal(t, tt.wantCap, v.Cap())
			assert.Equal(t, tt.wantData, v.Data())
		})
	}
}

func TestResizeRoundTrip(t *testing.T) {
	v, err := Of(5, 6, 7)
	require.NoError(t, err)

	require.NoError(t, v.Resize(10))
	require.NoError(t, v.Resize(3))
	assert.Equal(t, []int{5, 6, 7}, v.Data())
	assert.Equal(t, 10, v.Cap())
}

func TestResizeFill(t *testing.T) {
	l := resetBook(t)
	v := New[tracked]()

	require.NoError(t, v.ResizeFill(3, tracked{val: 8}))
	assert.Equal(t, []int{8, 8, 8}, trackedValues(v))
	assert.Equal(t, 3, v.Cap())

	require.NoError(t, v.ResizeFill(1, tracked{val: 1}))
	assert.Equal(t, []int{8}, trackedValues(v))
	assert.Equal(t, 1, l.live)

	require.NoError(t, v.Resize(2))
	assert.Equal(t, []int{8, -1}, trackedValues(v))
	assert.Equal(t, 1, l.inits)
}

func TestResizeNegative(t *testing.T) {
	v, err := Of(1, 2)
	require.NoError(t, err)

	err = v.Resize(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, []int{1, 2}, v.Data())

	_, err = NewWithLen[int](-3)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestReserve(t *testing.T) {
	v, err := Of(1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, v.Reserve(2))
	assert.Equal(t, 3, v.Cap(), "Reserve below capacity is a no-op")

	require.NoError(t, v.Reserve(3))
	assert.Equal(t, 0, v.Metrics().Reallocations)

	require.NoError(t, v.Reserve(11))
	assert.Equal(t, 11, v.Cap(), "Reserve allocates exactly n")
	assert.Equal(t, []int{1, 2, 3}, v.Data())
	assert.Equal(t, 1, v.Metrics().Reallocations)

	assert.ErrorIs(t, v.Reserve(-1), ErrOutOfRange)
}

func TestShrinkToFit(t *testing.T) {
	t.Run("to length", func(t *testing.T) {
		v, err := Of(1, 2, 3)
		require.NoError(t, err)
		require.NoError(t, v.Reserve(16))

		require.NoError(t, v.ShrinkToFit())
		assert.Equal(t, 3, v.Cap())
		assert.Equal(t, []int{1, 2, 3}, v.Data())
	})

	t.Run("already tight", func(t *testing.T) {
		v, err := Of(1, 2)
		require.NoError(t, err)
		allocs := v.Metrics().Allocations

		require.NoError(t, v.ShrinkToFit())
		assert.Equal(t, allocs, v.Metrics().Allocations)
	})

	t.Run("empty releases storage", func(t *testing.T) {
		v := New[int]()
		require.NoError(t, v.Reserve(8))

		require.NoError(t, v.ShrinkToFit())
		assert.Equal(t, 0, v.Cap())
		assert.Nil(t, v.region.base)
		assert.Equal(t, 1, v.Metrics().Releases)
	})
}

func TestClear(t *testing.T) {
	l := resetBook(t)
	v := New[tracked]()
	for i := 0; i < 5; i++ {
		require.NoError(t, v.PushBack(tracked{val: i}))
	}

	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 8, v.Cap(), "Clear keeps capacity")
	assert.Equal(t, 0, l.live)
	assert.Equal(t, 5, l.destroys)

	v.Clear()
	assert.Equal(t, 5, l.destroys, "Clear on empty destroys nothing")
}

func TestRelease(t *testing.T) {
	l := resetBook(t)
	v := New[tracked]()
	for i := 0; i < 3; i++ {
		require.NoError(t, v.PushBack(tracked{val: i}))
	}

	v.Release()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Equal(t, 0, l.live)

	require.NoError(t, v.PushBack(tracked{val: 42}), "vector is usable after Release")
	assert.Equal(t, []int{42}, trackedValues(v))
}

func TestSwap(t *testing.T) {
	l := resetBook(t)
	a := New[tracked]()
	b := New[tracked]()
	for i := 0; i < 5; i++ {
		require.NoError(t, a.PushBack(tracked{val: i}))
	}
	require.NoError(t, b.PushBack(tracked{val: 100}))

	clones, destroys := l.clones, l.destroys
	a.Swap(b)

	assert.Equal(t, clones, l.clones, "Swap constructs nothing")
	assert.Equal(t, destroys, l.destroys, "Swap destroys nothing")
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, a.Cap())
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, 8, b.Cap())
	assert.Equal(t, []int{100}, trackedValues(a))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, trackedValues(b))
}

func TestSwapCarriesBudgetAndCounters(t *testing.T) {
	small := New[int64](WithMaxBytes(16))
	big := New[int64]()
	for i := 0; i < 100; i++ {
		require.NoError(t, big.PushBack(int64(i)))
	}
	bigStats := big.Metrics()

	small.Swap(big)

	m := small.Metrics()
	assert.Equal(t, 100, m.Len)
	assert.Equal(t, 128, m.Cap)
	assert.Equal(t, bigStats.Allocations, m.Allocations)
	assert.Equal(t, bigStats.Reallocations, m.Reallocations)
	assert.Equal(t, bigStats.Releases, m.Releases)
	assert.Equal(t, 0, big.Cap())
	assert.Equal(t, 0, big.Metrics().Allocations)

	c, err := small.Clone()
	require.NoError(t, err, "unbudgeted contents clone without a budget")
	assert.Equal(t, 100, c.Len())

	// The budget moved to big along with the empty state.
	require.NoError(t, big.PushBack(1))
	require.NoError(t, big.PushBack(2))
	assert.ErrorIs(t, big.PushBack(3), ErrAllocation)
	assert.Equal(t, []int64{1, 2}, big.Data())
}

func TestNewWithLenAndFilled(t *testing.T) {
	v, err := NewWithLen[float64](4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, v.Data())
	assert.Equal(t, 4, v.Cap())

	f, err := NewFilled(3, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x"}, f.Data())

	empty, err := NewWithLen[int](0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Cap(), "zero length must not allocate")
}

func BenchmarkPushBack(b *testing.B) {
	sizes := []int{16, 1024, 65536}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("vector-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := New[int]()
				for j := 0; j < size; j++ {
					_ = v.PushBack(j)
				}
			}
		})

		b.Run(fmt.Sprintf("builtin-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < size; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})
	}
}
