package virt

// CellsCache is a bounded FIFO pool of idle cells.
//
// When a state is disposed, its cells land here instead of being destroyed;
// transitions take them back out before resorting to the factory. The pool
// is keyed loosely: a taken cell carries whatever (index, item) pair it was
// last bound to, so callers must always follow a take with UpdateIndex and
// UpdateItem.
//
// Overflow is a policy, not an error: inserting into a full cache disposes
// the oldest cell to make room, and a cache with capacity 0 disposes every
// cell handed to it.
type CellsCache[T any] struct {
	factory  CellFactory[T]
	queue    []Cell[T]
	capacity int
}

// NewCellsCache returns a cache bound to the given factory with the given
// capacity. The factory is only needed by Populate; it may be nil until
// then.
func NewCellsCache[T any](factory CellFactory[T], capacity int) *CellsCache[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &CellsCache[T]{factory: factory, capacity: capacity}
}

// Populate pre-fills the cache to capacity by invoking the factory with the
// zero value of T. Useful to warm-start a container so that the first layout
// only pays for updates, not creations. Panics if no factory is set.
func (c *CellsCache[T]) Populate() {
	if c.Size() >= c.capacity {
		return
	}
	if c.factory == nil {
		panic("virt: cannot populate cache, cell factory is nil")
	}
	var zero T
	for c.Size() < c.capacity {
		c.queue = append(c.queue, c.factory(zero))
	}
}

// CacheOne stores the given cell, invoking its OnCache hook on success.
// Returns false if the cell was disposed instead (capacity 0).
func (c *CellsCache[T]) CacheOne(cell Cell[T]) bool {
	if c.capacity == 0 {
		cell.Dispose()
		return false
	}
	if len(c.queue) == c.capacity {
		excess := c.queue[0]
		c.queue = c.queue[1:]
		excess.Dispose()
	}
	if ca, ok := cell.(CacheAware); ok {
		ca.OnCache()
	}
	c.queue = append(c.queue, cell)
	return true
}

// Cache stores every given cell, see CacheOne.
func (c *CellsCache[T]) Cache(cells ...Cell[T]) {
	for _, cell := range cells {
		c.CacheOne(cell)
	}
}

// TryTake removes and returns the oldest cached cell, invoking its OnDecache
// hook. Returns false if the cache is empty.
func (c *CellsCache[T]) TryTake() (Cell[T], bool) {
	if len(c.queue) == 0 {
		return nil, false
	}
	cell := c.queue[0]
	c.queue[0] = nil
	c.queue = c.queue[1:]
	if ca, ok := cell.(CacheAware); ok {
		ca.OnDecache()
	}
	return cell, true
}

// Remove takes the given cell out of the cache and disposes it. Reports
// whether the cell was present.
func (c *CellsCache[T]) Remove(cell Cell[T]) bool {
	for i, q := range c.queue {
		if q == cell {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			cell.Dispose()
			return true
		}
	}
	return false
}

// Clear disposes and removes every cached cell. Used when the cell factory
// changes, as pooled cells built by the old factory must not leak into
// states built with the new one.
func (c *CellsCache[T]) Clear() {
	for _, cell := range c.queue {
		cell.Dispose()
	}
	c.queue = c.queue[:0]
}

// Size returns the number of cached cells.
func (c *CellsCache[T]) Size() int { return len(c.queue) }

// Capacity returns the maximum number of cells the cache will hold.
func (c *CellsCache[T]) Capacity() int { return c.capacity }

// SetCapacity changes the cache's bound at runtime. Shrinking below the
// current size disposes the oldest cells immediately; capacity 0 empties
// the cache entirely.
func (c *CellsCache[T]) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	for len(c.queue) > capacity {
		excess := c.queue[0]
		c.queue = c.queue[1:]
		excess.Dispose()
	}
	c.capacity = capacity
}

// setFactory swaps the factory used by Populate.
func (c *CellsCache[T]) setFactory(factory CellFactory[T]) {
	c.factory = factory
}
