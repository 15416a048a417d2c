package mycollection

// MutableCollection is populated one item at a time and is never loaded.
// Total stays at its zero value: a derived sum over the items is the caller's
// business.
type MutableCollection[T any] struct {
	collection[T]
}

func NewMutableCollection[T any]() *MutableCollection[T] {
	return &MutableCollection[T]{}
}

// AddItem appends to the end. No deduplication, no capacity limit: the same
// item can be added any number of times, each occurrence with its own position.
func (c *MutableCollection[T]) AddItem(item T) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = append(c.items, item)
}

// Delete removes exactly the element at index, shifting all later elements one
// position earlier. An index outside [0, Len()) is a programming error and
// fails fast with ErrIndexOutOfRange.
func (c *MutableCollection[T]) Delete(index int) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if index < 0 || index >= len(c.items) {
		return ErrIndexOutOfRange
	}

	c.items = append(c.items[:index], c.items[index+1:]...)

	return nil
}

// Clear drops all items at once.
func (c *MutableCollection[T]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = nil
}
