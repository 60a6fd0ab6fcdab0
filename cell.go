package virt

// Cell is the capability contract every cell implementation must satisfy.
//
// Cells are mutable, reusable visual slots: the engine binds and re-binds
// them to (index, item) pairs as the viewport moves, and only ever destroys
// one through an explicit Dispose call. A cell bound into a state for index
// i is guaranteed to have received UpdateIndex(i) and UpdateItem with the
// item currently at i before the state is published.
//
// Ownership is exclusive: at any moment a cell belongs to exactly one of a
// published state, the cache, or the transition currently building a state.
// The engine never aliases a cell across two live owners.
type Cell[T any] interface {
	// Visual returns the presentation object for this cell. The engine
	// treats it as opaque; backends assert it to whatever drawing contract
	// they define.
	Visual() any

	// UpdateIndex tells the cell which position it now occupies.
	UpdateIndex(index int)

	// UpdateItem tells the cell which item it now displays.
	UpdateItem(item T)

	// Dispose releases the cell permanently. Called when a cell overflows
	// the cache or the cache is purged. A disposed cell is never reused.
	Dispose()
}

// CacheAware is optionally implemented by cells that want to react to
// entering or leaving the cache, for example to release expensive resources
// while idle. The cache invokes OnCache right before storing a cell and
// OnDecache right after taking one out.
type CacheAware interface {
	OnCache()
	OnDecache()
}

// CellFactory creates a brand new cell for the given item. Creating a cell
// is assumed to be the most expensive operation in the pipeline, more than
// an UpdateItem call, which is why every transition exhausts reuse from the
// previous state and the cache before invoking the factory.
//
// The cache's Populate calls the factory with the zero value of T; factories
// must tolerate that.
type CellFactory[T any] func(item T) Cell[T]

// SimpleCell is a minimal Cell implementation that records its current item
// and index. It is a convenient base for cells whose visual only needs to be
// refreshed when the bound pair changes: embed it, or set OnUpdate to react
// to re-binds.
type SimpleCell[T any] struct {
	item  T
	index int

	// OnUpdate, when non-nil, is invoked after every UpdateIndex or
	// UpdateItem with the current pair.
	OnUpdate func(index int, item T)
}

// NewSimpleCell returns a SimpleCell displaying the given item.
func NewSimpleCell[T any](item T) *SimpleCell[T] {
	return &SimpleCell[T]{item: item, index: -1}
}

// Visual returns the cell itself; embedders typically override this.
func (c *SimpleCell[T]) Visual() any { return c }

// Item returns the item the cell currently displays.
func (c *SimpleCell[T]) Item() T { return c.item }

// Index returns the index the cell currently occupies, -1 if unbound.
func (c *SimpleCell[T]) Index() int { return c.index }

// UpdateIndex implements Cell.
func (c *SimpleCell[T]) UpdateIndex(index int) {
	c.index = index
	if c.OnUpdate != nil {
		c.OnUpdate(c.index, c.item)
	}
}

// UpdateItem implements Cell.
func (c *SimpleCell[T]) UpdateItem(item T) {
	c.item = item
	if c.OnUpdate != nil {
		c.OnUpdate(c.index, c.item)
	}
}

// Dispose implements Cell.
func (c *SimpleCell[T]) Dispose() {}
