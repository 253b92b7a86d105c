package partialfn_test

import (
	"slices"
	"strconv"
	"testing"

	"partialfn"

	"github.com/stretchr/testify/require"
)

func TestOperation_ApplyDoesNotMutateStoredState(t *testing.T) {
	op, _ := partialfn.Sum[int]{}.Call(10).Op()

	require.Equal(t, 11, op.Apply(seqOf(1)))
	require.Equal(t, 16, op.Apply(seqOf(1, 2, 3)))
	require.Equal(t, 16, op.Apply(seqOf(1, 2, 3)))
}

func TestOperation_CallTimeExtrasDoNotLeak(t *testing.T) {
	op, _ := partialfn.Sorted[int]{}.Call().Op()

	require.Equal(t, []int{2, 1}, op.ApplyWith(seqOf(1, 2), partialfn.WithReverse(true)))

	// The previous call-time option must not have been stored.
	require.Equal(t, []int{1, 2}, op.Apply(seqOf(2, 1)))
}

func TestPipe_IsSugarForApply(t *testing.T) {
	op, _ := partialfn.Map(func(v int) string { return strconv.Itoa(v) }).Op()

	direct := slices.Collect(op.Apply(seqOf(1, 2)))
	piped := slices.Collect(partialfn.Pipe(seqOf(1, 2), op.Apply))

	require.Equal(t, []string{"1", "2"}, direct)
	require.Equal(t, direct, piped)
}

func TestPipe_WrapperShortcut(t *testing.T) {
	require.Equal(t, 6, partialfn.Pipe(seqOf(1, 2, 3), partialfn.Sum[int]{}.Apply))
	require.Equal(t, []int{1, 2}, partialfn.Pipe(seqOf(2, 1), partialfn.Sorted[int]{}.Apply))
}

func TestResult_ExactlyOneVariant(t *testing.T) {
	applied := partialfn.Filter(func(v int) bool { return v > 1 }, []int{1, 2})
	_, ok := applied.Value()
	require.True(t, ok)
	_, ok = applied.Op()
	require.False(t, ok)

	pending := partialfn.Filter(func(v int) bool { return v > 1 })
	_, ok = pending.Value()
	require.False(t, ok)
	_, ok = pending.Op()
	require.True(t, ok)
}
