package virt

// GridState is an immutable-once-published snapshot of a grid's viewport:
// the active rows range, the active columns range, and the cell backing
// every in-range (row, column) pair whose linear index exists.
//
// Cells are keyed by linear index, row*columns+column, under the column
// count captured when the state was built. The capture matters: a later
// SetColumns changes the linearization, and hosts iterating an old state
// must keep decoding it with the old count.
type GridState[T comparable] struct {
	grid    *Grid[T]
	rows    Range
	columns Range
	// nColumns is the column count the linear indexes were computed with.
	nColumns int
	cells    *stateMap[T]

	cellsChanged bool
}

func newGridState[T comparable](grid *Grid[T], rows, columns Range) *GridState[T] {
	return &GridState[T]{
		grid:     grid,
		rows:     rows,
		columns:  columns,
		nColumns: grid.maxColumns(),
		cells:    newStateMap[T](),
	}
}

// newEmptyGridState builds the per-grid sentinel.
func newEmptyGridState[T comparable]() *GridState[T] {
	return &GridState[T]{rows: InvalidRange, columns: InvalidRange, cells: newStateMap[T]()}
}

// addCell binds the cell to the linear index, resolving the item from the
// source.
func (s *GridState[T]) addCell(index int, cell Cell[T]) {
	s.addCellItem(index, s.grid.source.Get(index), cell)
}

func (s *GridState[T]) addCellItem(index int, item T, cell Cell[T]) {
	s.cells.put(index, item, cell)
}

// removeCell unbinds and returns the cell at the linear index, falling back
// to a lookup by the item currently there. A cell resolved through the item
// fallback was bound to another index, so it is re-bound before being
// handed out.
func (s *GridState[T]) removeCell(index int) Cell[T] {
	if s.grid == nil {
		return nil
	}
	c := s.cells.removeIndex(index)
	if c == nil && index < s.grid.source.Count() {
		c = s.cells.removeItem(s.grid.source.Get(index))
		if c != nil {
			c.UpdateIndex(index)
		}
	}
	return c
}

// removeCellByItem unbinds and returns one cell displaying item, or nil.
func (s *GridState[T]) removeCellByItem(item T) Cell[T] {
	return s.cells.removeItem(item)
}

// pollFirstCell unbinds and returns the remaining cell with the lowest
// linear index.
func (s *GridState[T]) pollFirstCell() Cell[T] {
	return s.cells.pollFirst()
}

// dispose returns every cell still owned by the state to the grid's cache
// and empties the map.
func (s *GridState[T]) dispose() {
	if s.grid == nil {
		return
	}
	for _, idx := range s.cells.indexes() {
		s.grid.cache.CacheOne(s.cells.get(idx))
	}
	s.cells.clear()
}

// RowsRange returns the active rows interval.
func (s *GridState[T]) RowsRange() Range { return s.rows }

// ColumnsRange returns the active columns interval.
func (s *GridState[T]) ColumnsRange() Range { return s.columns }

// Columns returns the column count the state's linear indexes were computed
// with.
func (s *GridState[T]) Columns() int { return s.nColumns }

// CellsChanged reports whether the set of cell instances differs from the
// superseded state.
func (s *GridState[T]) CellsChanged() bool { return s.cellsChanged }

func (s *GridState[T]) setCellsChanged(changed bool) { s.cellsChanged = changed }

// Size returns the number of cells in the state.
func (s *GridState[T]) Size() int { return s.cells.size() }

// Empty reports whether the state holds no cells.
func (s *GridState[T]) Empty() bool { return s.cells.empty() }

// ForEachCell calls fn for every cell in ascending linear index order,
// decoding the (row, column) pair with the state's captured column count.
func (s *GridState[T]) ForEachCell(fn func(index, row, column int, cell Cell[T])) {
	for _, idx := range s.cells.indexes() {
		fn(idx, idx/s.nColumns, idx%s.nColumns, s.cells.get(idx))
	}
}

// Visuals returns the cells' presentation objects in linear index order.
func (s *GridState[T]) Visuals() []any {
	out := make([]any, 0, s.cells.size())
	for _, idx := range s.cells.indexes() {
		out = append(out, s.cells.get(idx).Visual())
	}
	return out
}
