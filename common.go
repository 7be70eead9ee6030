package persistent

import (
	"cmp"
	"slices"
)

type Comparer[T any] interface {
	Before(T) bool
}

// LessFunc reports whether a sorts strictly before b. It must define a total order.
type LessFunc[T any] func(a, b T) bool

func Ordered[T cmp.Ordered]() LessFunc[T] {
	return cmp.Less[T]
}

func Before[T Comparer[T]]() LessFunc[T] {
	return func(a, b T) bool {
		return a.Before(b)
	}
}

// SliceLess orders slices lexicographically, a shorter prefix first.
func SliceLess[T cmp.Ordered]() LessFunc[[]T] {
	return func(a, b []T) bool {
		return slices.Compare(a, b) < 0
	}
}
