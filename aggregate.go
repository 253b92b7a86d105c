package partialfn

import (
	"cmp"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"partialfn/internal/iterx"
)

// Number covers every type Sum can accumulate.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// SortOption stands in for the keyword arguments of the sorting
// primitive. Options are interpreted in argument order, so on a
// collision the later value wins; since ApplyWith places stored extras
// before call-time ones, call-time options override stored ones.
type SortOption interface {
	sortOption()
}

type reverseOption bool

func (reverseOption) sortOption() {}

type compareOption[T any] func(a, b T) int

func (compareOption[T]) sortOption() {}

// WithReverse sorts in descending order when v is true.
func WithReverse(v bool) SortOption {
	return reverseOption(v)
}

// WithCompare sorts by the given comparator instead of natural order.
// Elements that compare equal keep their input order.
func WithCompare[T any](compare func(a, b T) int) SortOption {
	return compareOption[T](compare)
}

// Sum wraps the summation primitive. The zero value is the wrapper
// object and is ready to use:
//
//	total, _ := Sum[int]{}.Call(nums).Value() // immediate
//	op, _ := Sum[int]{}.Call().Op()           // deferred
//	total := Pipe(seq, Sum[int]{}.Apply)      // pipe shortcut
type Sum[N Number] struct{}

// Call dispatches on the first positional argument: when it exposes
// iteration capability the primitive runs immediately, with an optional
// start value following it. Otherwise every supplied argument is stored
// on a deferred Operation (a stored value serves as the start).
func (Sum[N]) Call(args ...any) Result[N, N] {
	if len(args) > 0 {
		if seq, ok := iterx.Coerce[N](args[0]); ok {
			return immediate[N](sumTransform[N](seq, args[1:]))
		}
	}
	return deferred(sumTransform[N], args)
}

// Apply is the pipe shortcut: the primitive applied directly to seq
// with no extra arguments. The wrapper itself carries no stored state,
// so there is nothing to consult or merge.
func (Sum[N]) Apply(seq iter.Seq[N]) N {
	var zero N
	return iterx.Sum(seq, zero)
}

func sumTransform[N Number](seq iter.Seq[N], extras []any) N {
	switch len(extras) {
	case 0:
		var zero N
		return iterx.Sum(seq, zero)
	case 1:
		return iterx.Sum(seq, extras[0].(N))
	default:
		panic(fmt.Sprintf("partialfn.Sum: takes at most one start value, got %d", len(extras)))
	}
}

// Sorted wraps the sorting primitive. The zero value is the wrapper
// object and is ready to use; extra arguments are SortOption values:
//
//	Sorted[int]{}.Call(nums, WithReverse(true)) // immediate, descending
//	op, _ := Sorted[int]{}.Call().Op()          // deferred, natural order
//	out := Pipe(seq, Sorted[int]{}.Apply)       // pipe shortcut
//
// The sort is stable and always returns a fresh slice.
type Sorted[T constraints.Ordered] struct{}

// Call dispatches on the first positional argument the same way
// Sum.Call does. Deferred options are merged with call-time ones on
// application, call-time winning on collision.
func (Sorted[T]) Call(args ...any) Result[T, []T] {
	if len(args) > 0 {
		if seq, ok := iterx.Coerce[T](args[0]); ok {
			return immediate[T](sortedTransform[T](seq, args[1:]))
		}
	}
	return deferred(sortedTransform[T], args)
}

// Apply is the pipe shortcut: natural ascending order, no options.
func (Sorted[T]) Apply(seq iter.Seq[T]) []T {
	return iterx.Sorted(seq, cmp.Compare[T])
}

func sortedTransform[T constraints.Ordered](seq iter.Seq[T], extras []any) []T {
	compare := cmp.Compare[T]
	reverse := false
	for _, e := range extras {
		switch o := e.(type) {
		case reverseOption:
			reverse = bool(o)
		case compareOption[T]:
			compare = o
		default:
			panic(fmt.Sprintf("partialfn.Sorted: unexpected argument %T", e))
		}
	}
	if reverse {
		forward := compare
		compare = func(a, b T) int { return forward(b, a) }
	}
	return iterx.Sorted(seq, compare)
}

// Reversed wraps the reversal primitive. The zero value is the wrapper
// object and is ready to use. The returned sequence buffers its input
// when iterated, then yields it back to front.
type Reversed[T any] struct{}

// Call dispatches on the first positional argument the same way
// Sum.Call does. The primitive takes no extra arguments, so any stored
// or call-time extra is its arity failure.
func (Reversed[T]) Call(args ...any) Result[T, iter.Seq[T]] {
	if len(args) > 0 {
		if seq, ok := iterx.Coerce[T](args[0]); ok {
			return immediate[T](reversedTransform[T](seq, args[1:]))
		}
	}
	return deferred(reversedTransform[T], args)
}

// Apply is the pipe shortcut: the primitive applied directly to seq.
func (Reversed[T]) Apply(seq iter.Seq[T]) iter.Seq[T] {
	return iterx.Reversed(seq)
}

func reversedTransform[T any](seq iter.Seq[T], extras []any) iter.Seq[T] {
	if len(extras) > 0 {
		panic(fmt.Sprintf("partialfn.Reversed: takes no extra arguments, got %d", len(extras)))
	}
	return iterx.Reversed(seq)
}
