package iterx_test

import (
	"iter"
	"slices"
	"testing"

	"partialfn/internal/iterx"

	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	named := iter.Seq[int](func(yield func(int) bool) { yield(1) })
	seq, ok := iterx.Coerce[int](named)
	require.True(t, ok)
	require.Equal(t, []int{1}, slices.Collect(seq))

	raw := func(yield func(int) bool) { yield(2) }
	seq, ok = iterx.Coerce[int](raw)
	require.True(t, ok)
	require.Equal(t, []int{2}, slices.Collect(seq))

	seq, ok = iterx.Coerce[int]([]int{3, 4})
	require.True(t, ok)
	require.Equal(t, []int{3, 4}, slices.Collect(seq))

	ch := make(chan int, 1)
	ch <- 5
	close(ch)
	seq, ok = iterx.Coerce[int](ch)
	require.True(t, ok)
	require.Equal(t, []int{5}, slices.Collect(seq))
}

func TestCoerce_Rejects(t *testing.T) {
	_, ok := iterx.Coerce[int](5)
	require.False(t, ok)

	// Iterable, but over the wrong element type.
	_, ok = iterx.Coerce[int]([]string{"a"})
	require.False(t, ok)

	_, ok = iterx.Coerce[int](nil)
	require.False(t, ok)
}

func TestReduce_SeedsFromFirstElement(t *testing.T) {
	got := iterx.Reduce(iterx.FromSlice([]int{5, 2, 1}), func(acc, item int) int {
		return acc - item
	})
	require.Equal(t, 2, got)
}

func TestReduce_InitialValue(t *testing.T) {
	got := iterx.Reduce(iterx.FromSlice([]int{1, 2}), func(acc, item int) int {
		return acc + item
	}, 10)
	require.Equal(t, 13, got)
}

func TestReduce_EmptyWithoutInitialPanics(t *testing.T) {
	require.Panics(t, func() {
		iterx.Reduce(iterx.FromSlice([]int{}), func(acc, item int) int {
			return acc + item
		})
	})
}

func TestSorted_DoesNotMutateInput(t *testing.T) {
	in := []int{3, 1, 2}

	got := iterx.Sorted(iterx.FromSlice(in), func(a, b int) int { return a - b })

	require.Equal(t, []int{1, 2, 3}, got)
	require.Equal(t, []int{3, 1, 2}, in)
}

func TestReversed_BuffersOnIteration(t *testing.T) {
	consumed := false
	src := iter.Seq[int](func(yield func(int) bool) {
		consumed = true
		for _, v := range []int{1, 2, 3} {
			if !yield(v) {
				return
			}
		}
	})

	rev := iterx.Reversed(src)
	require.False(t, consumed)

	require.Equal(t, []int{3, 2, 1}, slices.Collect(rev))
	require.True(t, consumed)
}

func TestReversed_StopsOnYieldFalse(t *testing.T) {
	var got []int
	for v := range iterx.Reversed(iterx.FromSlice([]int{1, 2, 3})) {
		got = append(got, v)
		break
	}
	require.Equal(t, []int{3}, got)
}

func TestMap_StopsOnYieldFalse(t *testing.T) {
	calls := 0
	seq := iterx.Map(iterx.FromSlice([]int{1, 2, 3}), func(v int) int {
		calls++
		return v
	})

	for range seq {
		break
	}
	require.Equal(t, 1, calls)
}

func TestFilter(t *testing.T) {
	seq := iterx.Filter(iterx.FromSlice([]int{1, 2, 3, 4}), func(v int) bool {
		return v%2 == 0
	})
	require.Equal(t, []int{2, 4}, slices.Collect(seq))
}

func TestSum(t *testing.T) {
	require.Equal(t, 16, iterx.Sum(iterx.FromSlice([]int{1, 2, 3}), 10))
	require.InDelta(t, 2.0, iterx.Sum(iterx.FromSlice([]float64{0.5, 1.5}), 0), 1e-9)
}
