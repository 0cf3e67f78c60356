package stream

import (
	"github.com/kabu1204/go-optional/types"
)

func Of[T any](elems ...T) Stream[T] {
	return From(elems)
}

func From[T any](elems []T) Stream[T] {
	slice := types.Slice[T](elems)
	return &stream[T]{
		source:  (&slice).Iterator(),
		prev:    nil,
		wrapper: defaultWrapper[T],
		Name:    "Of",
	}
}

// FromChan drains a channel; the pipeline runs until the channel closes.
func FromChan[T any](ch <-chan T) Stream[T] {
	return &stream[T]{
		source:  types.ChanIterator(ch),
		prev:    nil,
		wrapper: defaultWrapper[T],
		Name:    "OfChan",
	}
}

// Map converts a Stream[T] into a Stream[U]. In-chain stages cannot
// change the element type (Go methods cannot introduce type
// parameters), so the source stream is terminated into the new one.
func Map[T, U any](s Stream[T], f types.Function[T, U]) Stream[U] {
	out := make([]U, 0)
	s.ForEach(func(e T) {
		out = append(out, f(e))
	})
	return From(out)
}

// FlatMap is the cross-type variant of Stream.FlatMap.
func FlatMap[T, U any](s Stream[T], f func(T) Stream[U]) Stream[U] {
	out := make([]U, 0)
	s.ForEach(func(e T) {
		f(e).ForEach(func(u U) {
			out = append(out, u)
		})
	})
	return From(out)
}

// MapField projects every element to the field addressed by a
// dot-separated path, resolved reflectively.
func MapField[T any](s Stream[T], fieldPath string) Stream[any] {
	return Map[T, any](s, func(e T) any {
		v, ok := types.GetFieldInterfaceByPath(e, fieldPath)
		if !ok {
			panic("Field path is INCORRECT.")
		}
		return v
	})
}

// ReduceWith folds into an accumulator of a different type than the
// element type.
func ReduceWith[T, R any](s Stream[T], initValue R, accumulator func(R, T) R) R {
	result := initValue
	s.ForEach(func(e T) {
		result = accumulator(result, e)
	})
	return result
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
