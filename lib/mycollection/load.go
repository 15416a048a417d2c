package mycollection

import "context"

// LoadResult is what a collaborator returns: the raw items plus the total it
// reports, which need not equal len(Items).
type LoadResult[R any] struct {
	Total int
	Items []R
}

// Loader fetches the raw item set from a collaborator. It blocks until the
// collaborator responds; cancellation is up to the provided context.
type Loader[R any] func(c context.Context) (LoadResult[R], error)

// LoadCollection is populated in bulk only: every successful Load replaces the
// previous contents in a single atomic swap. R is the raw record produced by
// the collaborator, T the record held by the collection.
type LoadCollection[R, T any] struct {
	collection[T]
	load      Loader[R]
	construct func(R) T
}

func NewLoadCollection[R, T any](load Loader[R], construct func(R) T) *LoadCollection[R, T] {
	return &LoadCollection[R, T]{
		load:      load,
		construct: construct,
	}
}

// Load fetches via the loader and replaces (total, items) as one atomic
// update. On loader failure the collection is left exactly as it was: readers
// keep seeing the pre-load contents. Overlapping Load calls are not a
// supported use case; the lock only guarantees that reads are never torn.
func (c *LoadCollection[R, T]) Load(ctx context.Context) error {
	// The collaborator call happens outside the lock: reads issued while the
	// load is in flight see the pre-load state.
	result, err := c.load(ctx)
	if err != nil {
		return err
	}

	items := make([]T, 0, len(result.Items))
	for _, raw := range result.Items {
		items = append(items, c.construct(raw))
	}

	c.mutex.Lock()
	c.total = result.Total
	c.items = items
	c.mutex.Unlock()

	return nil
}
