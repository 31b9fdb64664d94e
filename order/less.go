package order

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/arbor/tree"
	"golang.org/x/exp/constraints"
)

// LessFunc is a strict weak ordering over T.
type LessFunc[T any] func(a, b T) bool

// Lesser is implemented by types which know how to order themselves.
type Lesser[T any] interface {
	Less(T) bool
}

// ErrNoNaturalOrder is reported if a default ordering is requested for a
// type without one.
var ErrNoNaturalOrder = fmt.Errorf("%w: type has no natural ordering", tree.ErrInvalidConfig)

// Natural returns the ordering of the built-in operator '<'.
func Natural[T constraints.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// Method returns the ordering defined by the Less method of T.
func Method[T Lesser[T]]() LessFunc[T] {
	return func(a, b T) bool { return a.Less(b) }
}

// Default determines the natural ordering of T at construction time. T
// qualifies if it implements Lesser[T] or if it is one of the predeclared
// integer, float or string types. Otherwise Default returns ErrNoNaturalOrder.
//
// Named types with an ordered underlying type do not qualify; use Natural for
// them.
func Default[T any]() (LessFunc[T], error) {
	var zero T
	if _, ok := any(zero).(Lesser[T]); ok {
		return func(a, b T) bool { return any(a).(Lesser[T]).Less(b) }, nil
	}
	var f any
	switch any(zero).(type) {
	case int:
		f = Natural[int]()
	case int8:
		f = Natural[int8]()
	case int16:
		f = Natural[int16]()
	case int32:
		f = Natural[int32]()
	case int64:
		f = Natural[int64]()
	case uint:
		f = Natural[uint]()
	case uint8:
		f = Natural[uint8]()
	case uint16:
		f = Natural[uint16]()
	case uint32:
		f = Natural[uint32]()
	case uint64:
		f = Natural[uint64]()
	case uintptr:
		f = Natural[uintptr]()
	case float32:
		f = Natural[float32]()
	case float64:
		f = Natural[float64]()
	case string:
		f = Natural[string]()
	default:
		tracer().Debugf("no natural ordering for type %T", zero)
		return nil, fmt.Errorf("%w: %T", ErrNoNaturalOrder, zero)
	}
	return f.(LessFunc[T]), nil
}

// HasLess reports whether Default succeeds for T.
func HasLess[T any]() bool {
	_, err := Default[T]()
	return err == nil
}

// Indifferent is the ordering which considers all values equal. As a Tall
// predicate it turns a predicated tree into a plain binary search tree.
func Indifferent[T any]() LessFunc[T] {
	return indifferent[T]
}

func indifferent[T any](T, T) bool { return false }

// IsIndifferent reports whether f is nil or the function returned by
// Indifferent.
func IsIndifferent[T any](f LessFunc[T]) bool {
	return f == nil || reflect.ValueOf(f).Pointer() == reflect.ValueOf(indifferent[T]).Pointer()
}

// Reverse inverts an ordering.
func Reverse[T any](f LessFunc[T]) LessFunc[T] {
	return func(a, b T) bool { return f(b, a) }
}

// By orders values by a key extracted from them.
func By[T, K any](key func(T) K, less LessFunc[K]) LessFunc[T] {
	return func(a, b T) bool { return less(key(a), key(b)) }
}

// MoreEven orders integers by their largest power-of-two divisor: a is before
// b if it is divisible by a higher power of two. Zero is the most even value.
//
// As a Tall predicate on a tree of consecutive integers, MoreEven yields a
// perfectly balanced tree.
func MoreEven[T constraints.Integer]() LessFunc[T] {
	return func(a, b T) bool {
		x, y := uint64(a), uint64(b)
		return x^(x-1) > y^(y-1)
	}
}
