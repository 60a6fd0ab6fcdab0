package virt

// Orientation selects the axis a List virtualizes along.
type Orientation int

const (
	// Vertical lists scroll top to bottom; the viewport extent is its height.
	Vertical Orientation = iota
	// Horizontal lists scroll left to right; the viewport extent is its width.
	Horizontal
)

// Default configuration values, overridable via options or setters.
const (
	DefaultCellSize      = 32.0
	DefaultBufferSize    = 1
	DefaultCacheCapacity = 10
)

// List is a virtualized 1D container: it displays an arbitrarily large item
// collection using only as many cells as fit in the viewport plus a small
// buffer on each side.
//
// Every external input (viewport size, scroll position, cell size, spacing,
// buffer, orientation, factory, items) is set through an explicit method;
// each setter dispatches exactly one state transition which computes a new
// ListState from the current one with minimal cell churn. Hosts observe the
// results through OnStateChanged (the cell set may have changed) and
// OnLayoutRequest (cells must be repositioned even though the set is
// unchanged, e.g. a sub-cell scroll).
//
// A List is single-threaded by construction: all methods must be called
// from the goroutine that owns the viewport, and transitions always run to
// completion before a state is published.
type List[T comparable] struct {
	source  Source[T]
	factory CellFactory[T]
	cache   *CellsCache[T]

	orientation Orientation
	viewportW   float64
	viewportH   float64
	cellSize    float64
	spacing     float64
	buffer      int
	pos         float64

	state      *ListState[T]
	emptyState *ListState[T]
	manager    listManager[T]

	onStateChanged  func(*ListState[T])
	onLayoutRequest func()
}

// ListOption configures a List at construction time.
type ListOption[T comparable] func(*List[T])

// WithOrientation sets the virtualized axis (default Vertical).
func WithOrientation[T comparable](o Orientation) ListOption[T] {
	return func(l *List[T]) { l.orientation = o }
}

// WithCellSize sets the uniform cell extent along the virtualized axis.
func WithCellSize[T comparable](size float64) ListOption[T] {
	return func(l *List[T]) { l.cellSize = size }
}

// WithSpacing sets the gap between consecutive cells.
func WithSpacing[T comparable](spacing float64) ListOption[T] {
	return func(l *List[T]) { l.spacing = spacing }
}

// WithBufferSize sets how many extra cells are kept on each side of the
// visible set.
func WithBufferSize[T comparable](buffer int) ListOption[T] {
	return func(l *List[T]) { l.buffer = max(buffer, 0) }
}

// WithCacheCapacity bounds the pool of idle cells kept for reuse.
func WithCacheCapacity[T comparable](capacity int) ListOption[T] {
	return func(l *List[T]) { l.cache.SetCapacity(capacity) }
}

// NewList builds a list over the given source with the given cell factory.
// The list starts with a zero-sized viewport and therefore an empty state;
// the first SetViewportSize call produces the first real state.
//
// If the source implements Observable it is bound so that its mutations
// reach the list without explicit NotifyChanged calls.
func NewList[T comparable](source Source[T], factory CellFactory[T], opts ...ListOption[T]) *List[T] {
	l := &List[T]{
		factory:    factory,
		cellSize:   DefaultCellSize,
		buffer:     DefaultBufferSize,
		cache:      NewCellsCache(factory, DefaultCacheCapacity),
		emptyState: newEmptyListState[T](),
	}
	l.state = l.emptyState
	l.manager.list = l
	for _, opt := range opts {
		opt(l)
	}
	l.bindSource(source)
	return l
}

// State returns the currently published snapshot. Never nil: degenerate
// inputs yield the list's persistent empty sentinel.
func (l *List[T]) State() *ListState[T] { return l.state }

// Cache returns the list's cell pool.
func (l *List[T]) Cache() *CellsCache[T] { return l.cache }

// Count returns the number of items in the source.
func (l *List[T]) Count() int {
	if l.source == nil {
		return 0
	}
	return l.source.Count()
}

// Orientation returns the virtualized axis.
func (l *List[T]) Orientation() Orientation { return l.orientation }

// CellSize returns the uniform cell extent.
func (l *List[T]) CellSize() float64 { return l.cellSize }

// Spacing returns the gap between consecutive cells.
func (l *List[T]) Spacing() float64 { return l.spacing }

// BufferSize returns the per-side buffer cell count.
func (l *List[T]) BufferSize() int { return l.buffer }

// Position returns the scroll offset along the virtualized axis.
func (l *List[T]) Position() float64 { return l.pos }

// OnStateChanged registers the host callback invoked every time a new state
// is published.
func (l *List[T]) OnStateChanged(fn func(*ListState[T])) { l.onStateChanged = fn }

// OnLayoutRequest registers the host callback invoked when cells must be
// repositioned even though the published cell set did not change.
func (l *List[T]) OnLayoutRequest(fn func()) { l.onLayoutRequest = fn }

// SetViewportSize updates the viewport geometry and runs the full rebuild
// transition.
func (l *List[T]) SetViewportSize(w, h float64) {
	if l.viewportW == w && l.viewportH == h {
		return
	}
	l.viewportW, l.viewportH = w, h
	l.manager.onGeometryChanged()
}

// SetCellSize updates the uniform cell extent and reconciles the state via
// the intersection transition.
func (l *List[T]) SetCellSize(size float64) {
	if l.cellSize == size {
		return
	}
	l.cellSize = size
	l.manager.onCellSizeChanged()
}

// SetSpacing updates the inter-cell gap.
func (l *List[T]) SetSpacing(spacing float64) {
	if l.spacing == spacing {
		return
	}
	l.spacing = spacing
	l.manager.onSpacingChanged()
}

// SetBufferSize updates the per-side buffer and rebuilds.
func (l *List[T]) SetBufferSize(buffer int) {
	buffer = max(buffer, 0)
	if l.buffer == buffer {
		return
	}
	l.buffer = buffer
	l.manager.onGeometryChanged()
}

// SetOrientation switches the virtualized axis. The scroll position is
// reset, as offsets on one axis are meaningless on the other.
func (l *List[T]) SetOrientation(o Orientation) {
	if l.orientation == o {
		return
	}
	l.orientation = o
	l.manager.onOrientationChanged()
}

// SetCellFactory swaps the factory. The current state and the cache are
// purged since their cells were produced by the old factory, then the state
// is rebuilt from scratch.
func (l *List[T]) SetCellFactory(factory CellFactory[T]) {
	l.factory = factory
	l.cache.setFactory(factory)
	l.manager.onCellFactoryChanged()
}

// SetCacheCapacity bounds the idle-cell pool; shrinking disposes the excess
// immediately.
func (l *List[T]) SetCacheCapacity(capacity int) {
	l.cache.SetCapacity(capacity)
}

// SetSource replaces the item collection wholesale. Cells follow equal
// items into the new collection where possible.
func (l *List[T]) SetSource(source Source[T]) {
	l.bindSource(source)
	l.manager.onItemsChanged()
}

// NotifyChanged informs the list that its source mutated. Sources that
// implement Observable deliver these automatically.
func (l *List[T]) NotifyChanged(change Change) {
	switch change.Kind {
	case ChangeReplace:
		l.manager.onItemsReplaced(change)
	default:
		l.manager.onItemsChanged()
	}
}

// SetPosition scrolls to the given pixel offset, clamped to the scrollable
// extent.
func (l *List[T]) SetPosition(pos float64) {
	pos = clampf(pos, 0, l.maxPosition())
	if l.pos == pos {
		return
	}
	l.pos = pos
	l.manager.onPositionChanged()
}

// ScrollBy scrolls by the given pixel delta.
func (l *List[T]) ScrollBy(delta float64) {
	l.SetPosition(l.pos + delta)
}

// ScrollToPixel scrolls to an absolute pixel offset, synonym of
// SetPosition.
func (l *List[T]) ScrollToPixel(pixel float64) {
	l.SetPosition(pixel)
}

// ScrollToIndex scrolls so that the cell at index sits at the viewport
// start.
func (l *List[T]) ScrollToIndex(index int) {
	l.SetPosition(float64(index) * l.totalCellSize())
}

func (l *List[T]) bindSource(source Source[T]) {
	l.source = source
	if obs, ok := source.(Observable); ok {
		obs.Bind(l.NotifyChanged)
	}
}

// update publishes a new state. The superseded state has already been
// disposed by the transition that built the new one.
func (l *List[T]) update(state *ListState[T]) {
	if l.state == state {
		return
	}
	l.state = state
	if l.onStateChanged != nil {
		l.onStateChanged(state)
	}
}

func (l *List[T]) requestLayout() {
	if l.onLayoutRequest != nil {
		l.onLayoutRequest()
	}
}
