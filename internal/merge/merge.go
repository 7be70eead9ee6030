package merge

import (
	"iter"

	"github.com/ddirect/persistent"
)

type cursor[T any] struct {
	head  T
	index int // position of the source, breaks ties between equal heads
	next  func() (T, bool)
	stop  func()
}

type heap[T any] struct {
	s    []*cursor[T]
	less persistent.LessFunc[T]
}

// Ascending merges ascending sequences into one ascending sequence where each
// value appears once. Among equal values, the one from the earliest source is kept.
func Ascending[T any](less persistent.LessFunc[T], seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		h := &heap[T]{less: less}
		defer h.stopAll()

		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			if v, ok := next(); ok {
				h.push(&cursor[T]{v, i, next, stop})
			} else {
				stop()
			}
		}

		var (
			last    T
			started bool
		)
		for len(h.s) > 0 {
			c := h.s[0]
			if !started || less(last, c.head) {
				if !yield(c.head) {
					return
				}
				last, started = c.head, true
			}
			var ok bool
			if c.head, ok = c.next(); ok {
				h.down(0)
			} else {
				c.stop()
				h.pop()
			}
		}
	}
}

func (h *heap[T]) push(c *cursor[T]) {
	h.s = append(h.s, c)
	h.up(len(h.s) - 1)
}

func (h *heap[T]) pop() {
	n := len(h.s) - 1
	h.swap(0, n)
	h.s[n] = nil
	h.s = h.s[:n]
	h.down(0)
}

func (h *heap[T]) stopAll() {
	for _, c := range h.s {
		c.stop()
	}
	clear(h.s)
	h.s = h.s[:0]
}

func (h *heap[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.before(j, i) {
			return
		}
		h.swap(i, j)
		j = i
	}
}

func (h *heap[T]) down(i int) {
	n := len(h.s)
	for {
		j := 2*i + 1 // left child
		if j >= n {
			return
		}
		if j2 := j + 1; j2 < n && h.before(j2, j) {
			j = j2 // right child
		}
		if !h.before(j, i) {
			return
		}
		h.swap(i, j)
		i = j
	}
}

func (h *heap[T]) swap(i, j int) {
	h.s[i], h.s[j] = h.s[j], h.s[i]
}

func (h *heap[T]) before(i, j int) bool {
	a, b := h.s[i], h.s[j]
	if h.less(a.head, b.head) {
		return true
	}
	if h.less(b.head, a.head) {
		return false
	}
	return a.index < b.index
}
