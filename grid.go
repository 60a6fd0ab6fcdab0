package virt

// DefaultColumns is the column count a Grid starts with.
const DefaultColumns = 5

// Axis names one of a grid's two scroll directions.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Grid is a virtualized 2D container. Items stay a flat collection; the
// grid folds them row-major into a configured number of columns and
// virtualizes both axes independently, so the live cell set is the cross
// product of a rows range and a columns range (minus the cut corner of an
// incomplete last row).
//
// The dispatch model mirrors List: every input has a setter, every setter
// runs one transition, hosts observe via OnStateChanged and
// OnLayoutRequest. Like List, a Grid is single-goroutine.
type Grid[T comparable] struct {
	source  Source[T]
	factory CellFactory[T]
	cache   *CellsCache[T]

	columns   int
	viewportW float64
	viewportH float64
	cellW     float64
	cellH     float64
	hSpacing  float64
	vSpacing  float64
	buffer    int
	hPos      float64
	vPos      float64

	state      *GridState[T]
	emptyState *GridState[T]
	manager    gridManager[T]

	onStateChanged  func(*GridState[T])
	onLayoutRequest func()
}

// GridOption configures a Grid at construction time.
type GridOption[T comparable] func(*Grid[T])

// WithColumns sets how many columns the flat collection folds into.
func WithColumns[T comparable](columns int) GridOption[T] {
	return func(g *Grid[T]) { g.columns = max(columns, 1) }
}

// WithGridCellSize sets the uniform cell width and height.
func WithGridCellSize[T comparable](w, h float64) GridOption[T] {
	return func(g *Grid[T]) { g.cellW, g.cellH = w, h }
}

// WithGridSpacing sets the horizontal and vertical inter-cell gaps.
func WithGridSpacing[T comparable](h, v float64) GridOption[T] {
	return func(g *Grid[T]) { g.hSpacing, g.vSpacing = h, v }
}

// WithGridBufferSize sets the per-side buffer applied to both axes.
func WithGridBufferSize[T comparable](buffer int) GridOption[T] {
	return func(g *Grid[T]) { g.buffer = max(buffer, 0) }
}

// WithGridCacheCapacity bounds the pool of idle cells kept for reuse.
func WithGridCacheCapacity[T comparable](capacity int) GridOption[T] {
	return func(g *Grid[T]) { g.cache.SetCapacity(capacity) }
}

// NewGrid builds a grid over the given source with the given cell factory.
// Like NewList it starts empty until the first SetViewportSize.
func NewGrid[T comparable](source Source[T], factory CellFactory[T], opts ...GridOption[T]) *Grid[T] {
	g := &Grid[T]{
		factory:    factory,
		columns:    DefaultColumns,
		cellW:      DefaultCellSize,
		cellH:      DefaultCellSize,
		buffer:     DefaultBufferSize,
		cache:      NewCellsCache(factory, DefaultCacheCapacity),
		emptyState: newEmptyGridState[T](),
	}
	g.state = g.emptyState
	g.manager.grid = g
	for _, opt := range opts {
		opt(g)
	}
	g.bindSource(source)
	return g
}

// State returns the currently published snapshot, never nil.
func (g *Grid[T]) State() *GridState[T] { return g.state }

// Cache returns the grid's cell pool.
func (g *Grid[T]) Cache() *CellsCache[T] { return g.cache }

// Count returns the number of items in the source.
func (g *Grid[T]) Count() int {
	if g.source == nil {
		return 0
	}
	return g.source.Count()
}

// Columns returns the configured column count. The effective count may be
// lower when there are fewer items, see MaxColumns.
func (g *Grid[T]) Columns() int { return g.columns }

// CellWidth returns the uniform cell width.
func (g *Grid[T]) CellWidth() float64 { return g.cellW }

// CellHeight returns the uniform cell height.
func (g *Grid[T]) CellHeight() float64 { return g.cellH }

// HSpacing returns the horizontal inter-cell gap.
func (g *Grid[T]) HSpacing() float64 { return g.hSpacing }

// VSpacing returns the vertical inter-cell gap.
func (g *Grid[T]) VSpacing() float64 { return g.vSpacing }

// BufferSize returns the per-side buffer applied to both axes.
func (g *Grid[T]) BufferSize() int { return g.buffer }

// VPosition returns the vertical scroll offset.
func (g *Grid[T]) VPosition() float64 { return g.vPos }

// HPosition returns the horizontal scroll offset.
func (g *Grid[T]) HPosition() float64 { return g.hPos }

// OnStateChanged registers the host callback invoked on every new state.
func (g *Grid[T]) OnStateChanged(fn func(*GridState[T])) { g.onStateChanged = fn }

// OnLayoutRequest registers the host callback invoked when cells must be
// repositioned without the cell set changing.
func (g *Grid[T]) OnLayoutRequest(fn func()) { g.onLayoutRequest = fn }

// SetViewportSize updates the viewport geometry and rebuilds.
func (g *Grid[T]) SetViewportSize(w, h float64) {
	if g.viewportW == w && g.viewportH == h {
		return
	}
	g.viewportW, g.viewportH = w, h
	g.manager.onGeometryChanged()
}

// SetColumns changes how many columns the collection folds into. Every
// linear index shifts, so cells are re-matched by item.
func (g *Grid[T]) SetColumns(columns int) {
	columns = max(columns, 1)
	if g.columns == columns {
		return
	}
	g.columns = columns
	g.manager.onColumnsChanged()
}

// SetCellSize updates the uniform cell dimensions.
func (g *Grid[T]) SetCellSize(w, h float64) {
	if g.cellW == w && g.cellH == h {
		return
	}
	g.cellW, g.cellH = w, h
	g.manager.onExtentChanged()
}

// SetSpacing updates the inter-cell gaps.
func (g *Grid[T]) SetSpacing(h, v float64) {
	if g.hSpacing == h && g.vSpacing == v {
		return
	}
	g.hSpacing, g.vSpacing = h, v
	g.manager.onExtentChanged()
}

// SetBufferSize updates the per-side buffer and rebuilds.
func (g *Grid[T]) SetBufferSize(buffer int) {
	buffer = max(buffer, 0)
	if g.buffer == buffer {
		return
	}
	g.buffer = buffer
	g.manager.onGeometryChanged()
}

// SetCellFactory swaps the factory, purging live and cached cells.
func (g *Grid[T]) SetCellFactory(factory CellFactory[T]) {
	g.factory = factory
	g.cache.setFactory(factory)
	g.manager.onCellFactoryChanged()
}

// SetCacheCapacity bounds the idle-cell pool.
func (g *Grid[T]) SetCacheCapacity(capacity int) {
	g.cache.SetCapacity(capacity)
}

// SetSource replaces the item collection wholesale.
func (g *Grid[T]) SetSource(source Source[T]) {
	g.bindSource(source)
	g.manager.onItemsChanged()
}

// NotifyChanged informs the grid that its source mutated.
func (g *Grid[T]) NotifyChanged(change Change) {
	switch change.Kind {
	case ChangeReplace:
		g.manager.onItemsReplaced(change)
	default:
		g.manager.onItemsChanged()
	}
}

// SetVPosition scrolls vertically to the given pixel offset, clamped.
func (g *Grid[T]) SetVPosition(pos float64) {
	pos = clampf(pos, 0, g.maxVPosition())
	if g.vPos == pos {
		return
	}
	g.vPos = pos
	g.manager.onPositionChanged(AxisVertical)
}

// SetHPosition scrolls horizontally to the given pixel offset, clamped.
func (g *Grid[T]) SetHPosition(pos float64) {
	pos = clampf(pos, 0, g.maxHPosition())
	if g.hPos == pos {
		return
	}
	g.hPos = pos
	g.manager.onPositionChanged(AxisHorizontal)
}

// ScrollBy scrolls both axes by the given pixel deltas.
func (g *Grid[T]) ScrollBy(dx, dy float64) {
	if dx != 0 {
		g.SetHPosition(g.hPos + dx)
	}
	if dy != 0 {
		g.SetVPosition(g.vPos + dy)
	}
}

// ScrollToRow scrolls vertically so that the given row sits at the viewport
// top.
func (g *Grid[T]) ScrollToRow(row int) {
	g.SetVPosition(float64(row) * g.totalCellH())
}

// ScrollToColumn scrolls horizontally so that the given column sits at the
// viewport left edge.
func (g *Grid[T]) ScrollToColumn(column int) {
	g.SetHPosition(float64(column) * g.totalCellW())
}

func (g *Grid[T]) bindSource(source Source[T]) {
	g.source = source
	if obs, ok := source.(Observable); ok {
		obs.Bind(g.NotifyChanged)
	}
}

func (g *Grid[T]) update(state *GridState[T]) {
	if g.state == state {
		return
	}
	g.state = state
	if g.onStateChanged != nil {
		g.onStateChanged(state)
	}
}

func (g *Grid[T]) requestLayout() {
	if g.onLayoutRequest != nil {
		g.onLayoutRequest()
	}
}
