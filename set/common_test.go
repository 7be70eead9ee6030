package set_test

import (
	"cmp"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"testing"
)

type LogFunc func(t *testing.T, data []byte)

var logFile string

func init() {
	flag.StringVar(&logFile, "logfile", "", "logfile to use")
}

func makeLogFunc(logFile string) LogFunc {
	if logFile == "" {
		return func(t *testing.T, data []byte) {
			t.Logf("%s\n", data)
		}
	}

	logout, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Errorf("open: %w", err))
	}

	return func(t *testing.T, data []byte) {
		if _, err := logout.Write(append(data, '\n')); err != nil {
			panic(fmt.Errorf("write: %w", err))
		}
	}
}

type int32B int32

func (a int32B) Before(b int32B) bool {
	return a < b
}

// reference model: a plain map, sorted on demand
type refSet[T cmp.Ordered] map[T]struct{}

func newRef[T cmp.Ordered](vs ...T) refSet[T] {
	r := make(refSet[T])
	for _, v := range vs {
		r[v] = struct{}{}
	}
	return r
}

// sorted returns the members in ascending order, never nil.
func (r refSet[T]) sorted() []T {
	return append([]T{}, slices.Sorted(maps.Keys(r))...)
}

// sortedUnique returns the elements of xs sorted and without duplicates, never nil.
func sortedUnique[T cmp.Ordered](xs []T) []T {
	s := slices.Clone(xs)
	slices.Sort(s)
	return append([]T{}, slices.Compact(s)...)
}
