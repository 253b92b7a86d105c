package partialfn

import (
	"fmt"
	"iter"

	"partialfn/internal/iterx"
)

// Operation is a transformation awaiting its iterable. It stores the
// underlying primitive (already bound to the user-supplied function,
// when the family has one) together with any extra arguments supplied
// at wrap time.
//
// An Operation is immutable once constructed. Applying it does not
// change its stored state, so the same Operation may be applied to any
// number of iterables, from any number of call sites, independently.
type Operation[In, Out any] struct {
	transform func(seq iter.Seq[In], extras []any) Out
	extras    []any
}

// Apply invokes the operation with seq as its sole argument. This is
// also exactly what pipe placement does, see Pipe.
func (op Operation[In, Out]) Apply(seq iter.Seq[In]) Out {
	return op.transform(seq, op.extras)
}

// ApplyWith invokes the operation with seq and further extra arguments.
// Stored extras come before the call-time ones; because later arguments
// take precedence, a call-time value wins over a stored one.
func (op Operation[In, Out]) ApplyWith(seq iter.Seq[In], extras ...any) Out {
	merged := make([]any, 0, len(op.extras)+len(extras))
	merged = append(merged, op.extras...)
	merged = append(merged, extras...)
	return op.transform(seq, merged)
}

// Result is the outcome of a wrapper call, decided once at the call and
// never re-evaluated: either the primitive was applied immediately and
// Value holds its result, or application was deferred and Op holds the
// reusable operation. Exactly one variant is set.
type Result[In, Out any] struct {
	value    Out
	op       Operation[In, Out]
	deferred bool
}

// Value returns the immediately produced result, if there is one.
func (r Result[In, Out]) Value() (Out, bool) {
	return r.value, !r.deferred
}

// Op returns the deferred operation, if application was deferred.
func (r Result[In, Out]) Op() (Operation[In, Out], bool) {
	return r.op, r.deferred
}

func immediate[In, Out any](value Out) Result[In, Out] {
	return Result[In, Out]{value: value}
}

func deferred[In, Out any](transform func(iter.Seq[In], []any) Out, extras []any) Result[In, Out] {
	return Result[In, Out]{
		op:       Operation[In, Out]{transform: transform, extras: extras},
		deferred: true,
	}
}

// Pipe places the iterable on the left and the operation on the right:
//
//	Pipe(seq, op.Apply)
//
// is identical to op.Apply(seq). It exists purely as reading-order
// sugar over direct application; apply is typically the Apply method of
// an Operation or of one of the iterable-first wrappers.
func Pipe[In, Out any](seq iter.Seq[In], apply func(iter.Seq[In]) Out) Out {
	return apply(seq)
}

// mustCoerce adapts v to a sequence or fails the way the primitives do
// when handed a non-iterable argument.
func mustCoerce[T any](name string, v any) iter.Seq[T] {
	seq, ok := iterx.Coerce[T](v)
	if !ok {
		panic(fmt.Sprintf("partialfn.%s: %T is not iterable", name, v))
	}
	return seq
}
