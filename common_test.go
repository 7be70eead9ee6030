package persistent_test

import (
	"math"
	"slices"
	"testing"

	"github.com/ddirect/persistent"
	"github.com/stretchr/testify/assert"
)

type int32B int32

func (a int32B) Before(b int32B) bool {
	return a < b
}

func Test_Before(t *testing.T) {
	less := persistent.Before[int32B]()
	assert.True(t, less(1, 2))
	assert.False(t, less(2, 1))
	assert.False(t, less(2, 2))
}

func Test_OrderedFloatsAreTotal(t *testing.T) {
	less := persistent.Ordered[float64]()
	nan := math.NaN()
	assert.True(t, less(nan, math.Inf(-1)))
	assert.False(t, less(nan, nan))
	assert.False(t, less(0, nan))
}

func Test_SliceLess(t *testing.T) {
	s := [][]string{{"b"}, {"a", "z"}, {}, {"a"}}
	slices.SortFunc(s, func(a, b []string) int {
		less := persistent.SliceLess[string]()
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	assert.Equal(t, [][]string{{}, {"a"}, {"a", "z"}, {"b"}}, s)
}
