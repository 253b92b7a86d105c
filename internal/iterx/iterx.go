package iterx

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// addable covers every type the Sum primitive can accumulate with +.
type addable interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

func FromChan[T any](in chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range in {
			if !yield(i) {
				break
			}
		}
	}
}

// Coerce reports whether v exposes iteration capability over elements of
// type T and adapts it to an iter.Seq[T]. It accepts iter.Seq[T] (named
// or not), []T and chan T. Anything else, including iterables over a
// different element type, does not qualify.
func Coerce[T any](v any) (iter.Seq[T], bool) {
	switch s := v.(type) {
	case iter.Seq[T]:
		return s, true
	case func(func(T) bool):
		return iter.Seq[T](s), true
	case []T:
		return FromSlice(s), true
	case chan T:
		return FromChan(s), true
	}
	return nil, false
}

// Map lazily transforms each value of seq using fn.
func Map[In, Out any](seq iter.Seq[In], fn func(In) Out) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for in := range seq {
			if !yield(fn(in)) {
				return
			}
		}
	}
}

// Filter lazily yields only the values for which predicate returns true.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for in := range seq {
			if predicate(in) {
				if !yield(in) {
					return
				}
			}
		}
	}
}

// Reduce folds seq left to right with fn. When no initial value is given
// the first element seeds the accumulator; folding an empty sequence
// without an initial value panics.
func Reduce[T any](seq iter.Seq[T], fn func(acc, item T) T, initial ...T) T {
	var acc T
	seeded := false
	if len(initial) > 0 {
		acc = initial[0]
		seeded = true
	}
	for item := range seq {
		if !seeded {
			acc = item
			seeded = true
			continue
		}
		acc = fn(acc, item)
	}
	if !seeded {
		panic("iterx.Reduce: empty sequence with no initial value")
	}
	return acc
}

// Sum accumulates seq onto start.
func Sum[N addable](seq iter.Seq[N], start N) N {
	total := start
	for item := range seq {
		total += item
	}
	return total
}

// Sorted collects seq and returns its elements stably sorted by compare.
func Sorted[T any](seq iter.Seq[T], compare func(a, b T) int) []T {
	out := slices.Collect(seq)
	slices.SortStableFunc(out, compare)
	return out
}

// Reversed yields the elements of seq in reverse order. The sequence is
// fully buffered when iteration begins, not when Reversed is called.
func Reversed[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		buffered := slices.Collect(seq)
		for i := len(buffered) - 1; i >= 0; i-- {
			if !yield(buffered[i]) {
				return
			}
		}
	}
}
