package partialfn

import (
	"fmt"
	"iter"

	"partialfn/internal/iterx"
)

type (

	// MapFunc is a pure mapping function used by Map that transforms a
	// value of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Predicate represents a filtering function that returns true when
	// the provided value should be included in the output stream.
	Predicate[T any] func(item T) bool

	// ReduceFunc folds the next item onto the accumulator.
	ReduceFunc[T any] func(acc, item T) T
)

// Map wraps the mapping primitive with partial application. With an
// iterable supplied it applies the primitive right away and the Result
// carries the lazily mapped sequence. Without one it defers, and the
// Result carries a reusable Operation awaiting the iterable:
//
//	double, _ := Map(func(n int) int { return n * 2 }).Op()
//	double.Apply(seq)
//
// The iterable may be an iter.Seq[In], a []In or a chan In. Supplying
// a value without iteration capability fails immediately, exactly as
// the primitive itself would.
func Map[In, Out any](fn MapFunc[In, Out], iterable ...any) Result[In, iter.Seq[Out]] {
	transform := func(seq iter.Seq[In], extras []any) iter.Seq[Out] {
		if len(extras) > 0 {
			panic(fmt.Sprintf("partialfn.Map: takes no extra arguments, got %d", len(extras)))
		}
		return iterx.Map(seq, fn)
	}
	if len(iterable) > 1 {
		panic(fmt.Sprintf("partialfn.Map: takes at most one iterable, got %d", len(iterable)))
	}
	if len(iterable) == 1 {
		return immediate[In](transform(mustCoerce[In]("Map", iterable[0]), nil))
	}
	return deferred(transform, nil)
}

// Filter wraps the filtering primitive with partial application. The
// dispatch is the same as Map's: iterable supplied means the Result
// carries the lazily filtered sequence, iterable omitted means it
// carries a reusable Operation.
func Filter[T any](predicate Predicate[T], iterable ...any) Result[T, iter.Seq[T]] {
	transform := func(seq iter.Seq[T], extras []any) iter.Seq[T] {
		if len(extras) > 0 {
			panic(fmt.Sprintf("partialfn.Filter: takes no extra arguments, got %d", len(extras)))
		}
		return iterx.Filter(seq, predicate)
	}
	if len(iterable) > 1 {
		panic(fmt.Sprintf("partialfn.Filter: takes at most one iterable, got %d", len(iterable)))
	}
	if len(iterable) == 1 {
		return immediate[T](transform(mustCoerce[T]("Filter", iterable[0]), nil))
	}
	return deferred(transform, nil)
}

// Reduce wraps the folding primitive with partial application. The
// primitive is positionally shaped as (function, iterable, initial), so
// dispatch checks iteration capability on the first extra argument
// only: if it is iterable the fold runs immediately, with an optional
// initial value following it. Any other first argument defers, storing
// every supplied extra on the Operation; a stored value later serves as
// the initial value, or fails inside the primitive if it cannot.
//
// Folding an empty sequence without an initial value is the primitive's
// own failure and surfaces unchanged.
func Reduce[T any](fn ReduceFunc[T], args ...any) Result[T, T] {
	transform := func(seq iter.Seq[T], extras []any) T {
		switch len(extras) {
		case 0:
			return iterx.Reduce(seq, fn)
		case 1:
			return iterx.Reduce(seq, fn, extras[0].(T))
		default:
			panic(fmt.Sprintf("partialfn.Reduce: takes at most one initial value, got %d", len(extras)))
		}
	}
	if len(args) > 0 {
		if seq, ok := iterx.Coerce[T](args[0]); ok {
			return immediate[T](transform(seq, args[1:]))
		}
	}
	return deferred(transform, args)
}
