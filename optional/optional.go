// Package optional provides a generic container for a value that is
// either present and non-nil, or empty. Once a value is wrapped, callers
// branch on the two variants instead of re-checking nilness.
package optional

import (
	"errors"
	"fmt"
	"hash/fnv"
	"reflect"
)

// ErrNoSuchValue is the panic value of Get on an empty Optional.
var ErrNoSuchValue = errors.New("optional: no value present")

// Optional holds either one non-nil value of type T or nothing.
// The zero value is the empty variant. Optionals are immutable values:
// every operation returns the receiver or a new instance. Two Optionals
// are equal iff both are empty, or both are present with equal values;
// == works whenever T is comparable.
type Optional[T any] struct {
	value   T
	present bool
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Of wraps a value that must not be nil. Passing a nil pointer, map,
// slice, chan, func or interface is a programming error and panics;
// use OfNullable or OfAny for values that may be absent.
func Of[T any](v T) Optional[T] {
	if isNil(v) {
		panic(fmt.Sprintf("optional: Of called with nil %T", v))
	}
	return Optional[T]{value: v, present: true}
}

// OfNullable is the entry point for nullable sources: a nil pointer
// becomes the empty variant, anything else wraps the pointed-to value.
func OfNullable[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return OfAny(*p)
}

// OfAny wraps v, collapsing values that are themselves nil (typed nil
// pointers, maps, slices, chans, funcs, interfaces) to the empty
// variant. A present Optional therefore never holds a nil value.
func OfAny[T any](v T) Optional[T] {
	if isNil(v) {
		return None[T]()
	}
	return Optional[T]{value: v, present: true}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the contained value, or panics with ErrNoSuchValue when
// the Optional is empty. It is the only operation that can fail.
func (o Optional[T]) Get() T {
	if !o.present {
		panic(ErrNoSuchValue)
	}
	return o.value
}

// Unpack returns the value and whether it is present, comma-ok style.
func (o Optional[T]) Unpack() (T, bool) {
	return o.value, o.present
}

// IfPresent invokes f with the value when present and returns the
// receiver unchanged, so calls can be chained with IfEmpty.
func (o Optional[T]) IfPresent(f func(T)) Optional[T] {
	if o.present {
		f(o.value)
	}
	return o
}

// IfEmpty invokes f when empty and returns the receiver unchanged.
func (o Optional[T]) IfEmpty(f func()) Optional[T] {
	if !o.present {
		f()
	}
	return o
}

// Filter keeps a present value only if p accepts it.
func (o Optional[T]) Filter(p func(T) bool) Optional[T] {
	if !o.present || p(o.value) {
		return o
	}
	return None[T]()
}

// OrElse returns the value when present, else other.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet returns the value when present; f is invoked only when the
// Optional is empty.
func (o Optional[T]) OrElseGet(f func() T) T {
	if o.present {
		return o.value
	}
	return f()
}

// OrElseThrow returns the value when present. When empty it invokes f
// and returns the supplied error along with the zero value.
func (o Optional[T]) OrElseThrow(f func() error) (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	return zero, f()
}

// OrNull is the inverse of OfNullable: a pointer to a copy of the value
// when present, nil when empty.
func (o Optional[T]) OrNull() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.EMPTY"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

// Hash returns FNV-1a of the value's default formatting, 0 when empty.
func (o Optional[T]) Hash() uint64 {
	if !o.present {
		return 0
	}
	h := fnv.New64a()
	fmt.Fprintf(h, "%v", o.value)
	return h.Sum64()
}

// Equals reports variant-and-value equality using eq for the values.
// Prefer == when T is comparable; Equals covers the rest.
func (o Optional[T]) Equals(other Optional[T], eq func(T, T) bool) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return eq(o.value, other.value)
}

// Map transforms a present value with f, rewrapping the result through
// OfAny so a mapper that produces nil yields an empty Optional. f is
// never invoked on an empty receiver. Package-level because Go methods
// cannot introduce new type parameters.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return OfAny(f(o.value))
}

// FlatMap transforms a present value with a mapper that already returns
// an Optional; the result is returned without extra wrapping.
func FlatMap[T, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return f(o.value)
}
