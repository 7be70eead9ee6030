// Package set implements a persistent ordered set on top of ordmap.
//
// A Set is a value: Insert, Remove, Union and the other operations return new
// sets sharing structure with their inputs, and never modify them. Sets can be
// read and derived from by any number of goroutines.
//
// Two sets holding the same members can have differently shaped trees. Compare
// them with Equal or through ToSlice, never with ==.
package set

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/ddirect/persistent"
	"github.com/ddirect/persistent/internal/merge"
	"github.com/ddirect/persistent/ordmap"
)

// Set is an ordered collection of distinct values. The zero Set is empty and has
// no ordering; use New, NewFunc or NewComparer to create sets that can grow.
type Set[T any] struct {
	m ordmap.Map[T, struct{}]
}

func New[T cmp.Ordered]() Set[T] {
	return Set[T]{ordmap.New[T, struct{}]()}
}

func NewFunc[T any](less persistent.LessFunc[T]) Set[T] {
	return Set[T]{ordmap.NewFunc[T, struct{}](less)}
}

func NewComparer[T persistent.Comparer[T]]() Set[T] {
	return NewFunc(persistent.Before[T]())
}

func Singleton[T cmp.Ordered](v T) Set[T] {
	return New[T]().Insert(v)
}

func Of[T cmp.Ordered](vs ...T) Set[T] {
	return FromSlice(vs)
}

// FromSlice inserts the elements of xs from first to last into an empty set.
func FromSlice[T cmp.Ordered](xs []T) Set[T] {
	return New[T]().InsertSlice(xs)
}

func FromSliceFunc[T any](xs []T, less persistent.LessFunc[T]) Set[T] {
	return NewFunc(less).InsertSlice(xs)
}

func Collect[T any](seq iter.Seq[T], less persistent.LessFunc[T]) Set[T] {
	return NewFunc(less).InsertSeq(seq)
}

// Empty returns the set with no members and the ordering of s.
func (s Set[T]) Empty() Set[T] {
	return Set[T]{s.m.Empty()}
}

func (s Set[T]) Less() persistent.LessFunc[T] {
	return s.m.Less()
}

// Insert returns s with v added. If an equal value is already a member, s itself is returned.
func (s Set[T]) Insert(v T) Set[T] {
	return Set[T]{s.m.InsertIfAbsent(v, struct{}{})}
}

func (s Set[T]) InsertSlice(xs []T) Set[T] {
	for _, x := range xs {
		s = s.Insert(x)
	}
	return s
}

func (s Set[T]) InsertSeq(seq iter.Seq[T]) Set[T] {
	for x := range seq {
		s = s.Insert(x)
	}
	return s
}

// Remove returns s without v. If v is not a member, s itself is returned.
func (s Set[T]) Remove(v T) Set[T] {
	return Set[T]{s.m.Remove(v)}
}

func (s Set[T]) IsEmpty() bool {
	return s.m.Len() == 0
}

func (s Set[T]) Member(v T) bool {
	return s.m.Has(v)
}

func (s Set[T]) Len() int {
	return s.m.Len()
}

func (s Set[T]) Min() (v T, ok bool) {
	v, _, ok = s.m.Min()
	return
}

func (s Set[T]) Max() (v T, ok bool) {
	v, _, ok = s.m.Max()
	return
}

func (s Set[T]) Union(o Set[T]) Set[T] {
	return Set[T]{s.m.Union(o.m)}
}

func (s Set[T]) Intersect(o Set[T]) Set[T] {
	return Set[T]{s.m.Intersect(o.m)}
}

// Diff returns the members of s that are not members of o.
func (s Set[T]) Diff(o Set[T]) Set[T] {
	return Set[T]{s.m.Diff(o.m)}
}

// UnionAll returns the union of all sets, using the ordering of the first set that has one.
func UnionAll[T any](sets ...Set[T]) Set[T] {
	var base Set[T]
	seqs := make([]iter.Seq[T], 0, len(sets))
	for _, s := range sets {
		if base.Less() == nil {
			base = s.Empty()
		}
		seqs = append(seqs, s.All())
	}
	if base.Less() == nil {
		return base
	}
	return base.InsertSeq(merge.Ascending(base.Less(), seqs...))
}

// Subset reports whether every member of s is a member of o.
func (s Set[T]) Subset(o Set[T]) bool {
	if s.Len() > o.Len() {
		return false
	}
	for v := range s.All() {
		if !o.Member(v) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o have the same members.
func (s Set[T]) Equal(o Set[T]) bool {
	return s.Len() == o.Len() && s.Subset(o)
}

func (s Set[T]) Filter(p func(T) bool) Set[T] {
	return Set[T]{s.m.Filter(func(v T, _ struct{}) bool {
		return p(v)
	})}
}

// Partition returns the members for which p holds and those for which it does not.
func (s Set[T]) Partition(p func(T) bool) (Set[T], Set[T]) {
	in, out := s.m.Partition(func(v T, _ struct{}) bool {
		return p(v)
	})
	return Set[T]{in}, Set[T]{out}
}

// All iterates the members in ascending order.
func (s Set[T]) All() iter.Seq[T] {
	return keys(s.m.All())
}

// Backward iterates the members in descending order.
func (s Set[T]) Backward() iter.Seq[T] {
	return keys(s.m.Backward())
}

// ToSlice returns the members in ascending order.
func (s Set[T]) ToSlice() []T {
	return s.m.Keys()
}

func (s Set[T]) String() string {
	return fmt.Sprint(s.ToSlice())
}

// Check verifies the internal invariants of s: members strictly ascending and
// the cached length matching the members.
func (s Set[T]) Check() error {
	return s.m.Check()
}

func keys[T any](it iter.Seq2[T, struct{}]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range it {
			if !yield(v) {
				return
			}
		}
	}
}
