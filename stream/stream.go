package stream

import (
	"github.com/kabu1204/go-optional/optional"
	"github.com/kabu1204/go-optional/types"
)

type Stream[T any] interface {
	// stateless (nothing to do with elements order)
	Filter(p types.Predicate[T]) Stream[T]
	Map(f types.UnaryOperator[T]) Stream[T]
	FlatMap(f func(T) Stream[T]) Stream[T]
	Peek(f types.Consumer[T]) Stream[T]

	Parallel(n int) Stream[T]

	// stateful (the elements order may affect results)
	Distinct(f types.IntFunction[T]) Stream[T]                   // custom hash, therefore the elements order may affect result
	Sorted(cmp types.Comparator[T], keepParallel bool) Stream[T] // non-stable
	Limit(N int64) Stream[T]                                     // first N elems
	Skip(N int64) Stream[T]                                      // skip first N elems

	ForEach(f types.Consumer[T])
	ToSlice() []T
	AllMatch(p types.Predicate[T]) bool
	NoneMatch(p types.Predicate[T]) bool
	AnyMatch(p types.Predicate[T]) bool
	Reduce(accumulator types.BinaryOperator[T]) optional.Optional[T]
	ReduceFrom(initValue T, accumulator types.BinaryOperator[T]) T
	FindFirst() optional.Optional[T]
	FindFirstMatch(p types.Predicate[T]) optional.Optional[T]
	Count() int64
}
