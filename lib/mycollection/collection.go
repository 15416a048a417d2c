package mycollection

import (
	"errors"
	"sync"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// collection is the shared read side: an ordered set of items plus the
// source-reported total. The embedding types own all mutation, so readers
// never observe a half-replaced state.
type collection[T any] struct {
	mutex sync.RWMutex
	total int
	items []T
}

// Total returns the count as reported by the source at load time. It is only
// meaningful for collections populated via Load; mutation never recomputes it.
func (c *collection[T]) Total() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.total
}

// Items returns a copy of the ordered items: callers can inspect the sequence
// but can never swap out or grow the backing slice of the collection itself.
func (c *collection[T]) Items() []T {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	return items
}

func (c *collection[T]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.items)
}

func (c *collection[T]) Get(index int) (T, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}

	return c.items[index], nil
}
