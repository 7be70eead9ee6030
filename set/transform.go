package set

import (
	"cmp"

	"github.com/ddirect/persistent"
	"github.com/ddirect/persistent/ordmap"
)

// Foldl applies f to the members in ascending order: f(vn, ... f(v2, f(v1, acc))).
func Foldl[T, A any](s Set[T], f func(T, A) A, acc A) A {
	return ordmap.Foldl(s.m, func(v T, _ struct{}, acc A) A {
		return f(v, acc)
	}, acc)
}

// Foldr applies f to the members in descending order: f(v1, f(v2, ... f(vn, acc))).
func Foldr[T, A any](s Set[T], f func(T, A) A, acc A) A {
	return ordmap.Foldr(s.m, func(v T, _ struct{}, acc A) A {
		return f(v, acc)
	}, acc)
}

// Map builds the set of the images of the members of s under f. When f maps
// several members to equal values, the image of the smallest member is kept,
// so the result can be smaller than s.
func Map[T any, U cmp.Ordered](s Set[T], f func(T) U) Set[U] {
	return MapFunc(s, f, persistent.Ordered[U]())
}

// MapFunc is like Map, with the result ordered by less.
func MapFunc[T, U any](s Set[T], f func(T) U, less persistent.LessFunc[U]) Set[U] {
	return Foldl(s, func(v T, acc Set[U]) Set[U] {
		return acc.Insert(f(v))
	}, NewFunc(less))
}
