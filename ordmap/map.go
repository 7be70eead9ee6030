// Package ordmap implements a persistent ordered map. Every update returns a new
// Map sharing unchanged nodes with its source; existing values are never modified
// and can be read and derived from concurrently.
package ordmap

import (
	"cmp"
	"fmt"
	"iter"
	"sync"

	"github.com/ddirect/persistent"
	"github.com/google/btree"
)

const degree = 16

var errNoOrder = fmt.Errorf("ordmap: map has no ordering, create it with New or NewFunc")

type entry[K, V any] struct {
	key   K
	value V
}

type tree[K, V any] struct {
	// Clone writes the copy-on-write context of the cloned tree
	mu sync.Mutex
	bt *btree.BTreeG[entry[K, V]]
}

// Map is an immutable ordered map. The zero Map is empty and has no ordering:
// it can be queried but not inserted into.
type Map[K, V any] struct {
	less persistent.LessFunc[K]
	t    *tree[K, V]
}

func New[K cmp.Ordered, V any]() Map[K, V] {
	return NewFunc[K, V](persistent.Ordered[K]())
}

func NewFunc[K, V any](less persistent.LessFunc[K]) Map[K, V] {
	if less == nil {
		panic(errNoOrder)
	}
	return Map[K, V]{less: less}
}

func Singleton[K cmp.Ordered, V any](k K, v V) Map[K, V] {
	return New[K, V]().Insert(k, v)
}

func (m Map[K, V]) Less() persistent.LessFunc[K] {
	return m.less
}

// Empty returns the empty map with the same ordering as m.
func (m Map[K, V]) Empty() Map[K, V] {
	return Map[K, V]{less: m.less}
}

func (m Map[K, V]) Len() int {
	if m.t == nil {
		return 0
	}
	return m.t.bt.Len()
}

func (m Map[K, V]) Get(k K) (v V, ok bool) {
	if m.t != nil {
		var e entry[K, V]
		if e, ok = m.t.bt.Get(entry[K, V]{key: k}); ok {
			v = e.value
		}
	}
	return
}

func (m Map[K, V]) Has(k K) bool {
	return m.t != nil && m.t.bt.Has(entry[K, V]{key: k})
}

func (m Map[K, V]) Min() (k K, v V, ok bool) {
	if m.t != nil {
		var e entry[K, V]
		if e, ok = m.t.bt.Min(); ok {
			k, v = e.key, e.value
		}
	}
	return
}

func (m Map[K, V]) Max() (k K, v V, ok bool) {
	if m.t != nil {
		var e entry[K, V]
		if e, ok = m.t.bt.Max(); ok {
			k, v = e.key, e.value
		}
	}
	return
}

// Insert returns a map where k is bound to v, replacing any previous binding.
func (m Map[K, V]) Insert(k K, v V) Map[K, V] {
	bt := m.edit()
	bt.ReplaceOrInsert(entry[K, V]{k, v})
	return m.with(bt)
}

// InsertIfAbsent is like Insert but returns m itself when k is already bound.
func (m Map[K, V]) InsertIfAbsent(k K, v V) Map[K, V] {
	if m.Has(k) {
		return m
	}
	return m.Insert(k, v)
}

// Remove returns a map without k, or m itself when k is not bound.
func (m Map[K, V]) Remove(k K) Map[K, V] {
	if !m.Has(k) {
		return m
	}
	bt := m.edit()
	bt.Delete(entry[K, V]{key: k})
	return m.with(bt)
}

// Union returns the entries of both maps. On colliding keys the entry of m is kept.
// Maps with different orderings cannot be combined.
func (m Map[K, V]) Union(o Map[K, V]) Map[K, V] {
	switch {
	case o.Len() == 0:
		return m
	case m.Len() == 0:
		return o
	case m.Len() >= o.Len():
		bt := m.edit()
		o.t.bt.Ascend(func(e entry[K, V]) bool {
			if !bt.Has(e) {
				bt.ReplaceOrInsert(e)
			}
			return true
		})
		return m.with(bt)
	default:
		bt := o.edit()
		m.t.bt.Ascend(func(e entry[K, V]) bool {
			bt.ReplaceOrInsert(e)
			return true
		})
		return m.with(bt)
	}
}

// Intersect returns the entries of m whose key is bound in o.
func (m Map[K, V]) Intersect(o Map[K, V]) Map[K, V] {
	if m.Len() == 0 || o.Len() == 0 {
		return m.Empty()
	}
	bt := m.fresh()
	if m.Len() <= o.Len() {
		m.t.bt.Ascend(func(e entry[K, V]) bool {
			if o.t.bt.Has(e) {
				bt.ReplaceOrInsert(e)
			}
			return true
		})
	} else {
		o.t.bt.Ascend(func(e entry[K, V]) bool {
			if own, ok := m.t.bt.Get(e); ok {
				bt.ReplaceOrInsert(own)
			}
			return true
		})
	}
	return m.with(bt)
}

// Diff returns the entries of m whose key is not bound in o.
func (m Map[K, V]) Diff(o Map[K, V]) Map[K, V] {
	if m.Len() == 0 || o.Len() == 0 {
		return m
	}
	var bt *btree.BTreeG[entry[K, V]]
	if o.Len() < m.Len() {
		bt = m.edit()
		o.t.bt.Ascend(func(e entry[K, V]) bool {
			bt.Delete(e)
			return true
		})
	} else {
		bt = m.fresh()
		m.t.bt.Ascend(func(e entry[K, V]) bool {
			if !o.t.bt.Has(e) {
				bt.ReplaceOrInsert(e)
			}
			return true
		})
	}
	if bt.Len() == m.Len() {
		return m
	}
	return m.with(bt)
}

// Filter returns the entries for which p holds, or m itself when it holds for all of them.
func (m Map[K, V]) Filter(p func(K, V) bool) Map[K, V] {
	if m.Len() == 0 {
		return m
	}
	bt := m.fresh()
	m.t.bt.Ascend(func(e entry[K, V]) bool {
		if p(e.key, e.value) {
			bt.ReplaceOrInsert(e)
		}
		return true
	})
	if bt.Len() == m.Len() {
		return m
	}
	return m.with(bt)
}

// Partition splits m into the entries for which p holds and those for which it does not.
// p is called once per entry, in ascending key order.
func (m Map[K, V]) Partition(p func(K, V) bool) (in, out Map[K, V]) {
	if m.Len() == 0 {
		return m, m
	}
	bin, bout := m.fresh(), m.fresh()
	m.t.bt.Ascend(func(e entry[K, V]) bool {
		if p(e.key, e.value) {
			bin.ReplaceOrInsert(e)
		} else {
			bout.ReplaceOrInsert(e)
		}
		return true
	})
	switch {
	case bout.Len() == 0:
		return m, m.Empty()
	case bin.Len() == 0:
		return m.Empty(), m
	}
	return m.with(bin), m.with(bout)
}

// All iterates the entries in ascending key order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.t != nil {
			m.t.bt.Ascend(func(e entry[K, V]) bool {
				return yield(e.key, e.value)
			})
		}
	}
}

// Backward iterates the entries in descending key order.
func (m Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.t != nil {
			m.t.bt.Descend(func(e entry[K, V]) bool {
				return yield(e.key, e.value)
			})
		}
	}
}

func (m Map[K, V]) Keys() []K {
	ks := make([]K, 0, m.Len())
	for k := range m.All() {
		ks = append(ks, k)
	}
	return ks
}

// Foldl threads acc through f over the entries in ascending key order.
func Foldl[K, V, A any](m Map[K, V], f func(K, V, A) A, acc A) A {
	for k, v := range m.All() {
		acc = f(k, v, acc)
	}
	return acc
}

// Foldr threads acc through f over the entries in descending key order.
func Foldr[K, V, A any](m Map[K, V], f func(K, V, A) A, acc A) A {
	for k, v := range m.Backward() {
		acc = f(k, v, acc)
	}
	return acc
}

// edit returns a private tree with the content of m. It can be modified freely
// until it is published with m.with.
func (m Map[K, V]) edit() *btree.BTreeG[entry[K, V]] {
	if m.t == nil {
		return m.fresh()
	}
	m.t.mu.Lock()
	defer m.t.mu.Unlock()
	return m.t.bt.Clone()
}

func (m Map[K, V]) fresh() *btree.BTreeG[entry[K, V]] {
	less := m.less
	if less == nil {
		panic(errNoOrder)
	}
	// a zero sized free list: nodes are never recycled, so no node can move between trees
	return btree.NewWithFreeListG(degree, func(a, b entry[K, V]) bool {
		return less(a.key, b.key)
	}, btree.NewFreeListG[entry[K, V]](0))
}

func (m Map[K, V]) with(bt *btree.BTreeG[entry[K, V]]) Map[K, V] {
	if bt.Len() == 0 {
		return m.Empty()
	}
	return Map[K, V]{less: m.less, t: &tree[K, V]{bt: bt}}
}
