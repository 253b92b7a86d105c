/*
Package partialfn augments the familiar iteration primitives (map,
filter, reduce, sum, sorted, reversed) with partial application and
pipe-style invocation.

Every wrapper decides once, at the call, between two states. When an
iterable is resolvable among the arguments the primitive is applied
immediately and the Result carries its value. When it is not, the
Result carries a reusable Operation awaiting the iterable. Iterables
are iter.Seq values first, but anywhere a value is checked for
iteration capability a []T or chan T is accepted too.

The function-first family takes the user function up front:

	double, _ := partialfn.Map(func(n int) int { return n * 2 }).Op()

	evens, _ := partialfn.Filter(func(n int) bool { return n%2 == 0 }).Op()

	total, _ := partialfn.Reduce(func(a, b int) int { return a + b }).Op()

The iterable-first family wraps primitives whose first argument is the
iterable itself. Their wrapper objects are zero values:

	partialfn.Sum[int]{}.Call(nums)                      // immediate
	desc, _ := partialfn.Sorted[int]{}.Call(partialfn.WithReverse(true)).Op()

An Operation is applied either directly or through pipe placement,
which puts the data on the left and the operation on the right:

	double.Apply(seq)
	partialfn.Pipe(seq, double.Apply) // identical

Pipe is documented sugar over Apply; the two are interchangeable. The
iterable-first wrappers support pipe placement themselves, applying
their primitive with no extra arguments:

	partialfn.Pipe(seq, partialfn.Sum[int]{}.Apply)

Operations never mutate when applied, so one deferred operation can be
reused across any number of iterables:

	shout, _ := partialfn.Map(strings.ToUpper).Op()
	a := shout.Apply(slices.Values([]string{"go"}))
	b := shout.Apply(slices.Values([]string{"run"}))

ApplyWith supplies further arguments at application time. Stored
arguments come first and call-time ones after, so on a collision the
call-time value wins:

	asc, _ := partialfn.Sorted[int]{}.Call(partialfn.WithReverse(false)).Op()
	asc.ApplyWith(seq, partialfn.WithReverse(true)) // descending

The wrappers validate nothing and translate nothing. Whatever the
underlying primitive does with bad input (fold an empty sequence with
no initial value, a stored extra of the wrong dynamic type, a
non-iterable argument where an iterable is required) surfaces
unchanged as a panic at the point the primitive fails.

Map and Filter results are lazy and bounded by consumption; Reduce,
Sum, Sorted and Reversed consume their input fully. Everything is
synchronous and free of shared mutable state.
*/
package partialfn
