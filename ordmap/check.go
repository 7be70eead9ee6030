package ordmap

import (
	"github.com/pkg/errors"
)

// Check walks m and verifies that its keys are strictly ascending and that the
// cached count matches the number of entries.
func (m Map[K, V]) Check() error {
	if m.t == nil {
		return nil
	}
	if m.less == nil {
		return errors.Errorf("ordmap: %d entries without an ordering", m.t.bt.Len())
	}

	var (
		prev K
		n    int
		err  error
	)
	m.t.bt.Ascend(func(e entry[K, V]) bool {
		if n > 0 && !m.less(prev, e.key) {
			err = errors.Errorf("ordmap: key %v at position %d does not sort after %v", e.key, n, prev)
			return false
		}
		prev = e.key
		n++
		return true
	})
	if err != nil {
		return err
	}
	if n != m.t.bt.Len() {
		return errors.Errorf("ordmap: counted %d entries, length is %d", n, m.t.bt.Len())
	}
	return nil
}
