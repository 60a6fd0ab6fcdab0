package virt

// gridManager runs the state transitions of a Grid. The structure mirrors
// listManager with one extra wrinkle: the cell set is the cross product of
// two ranges, and the last row may be incomplete, so every loop over
// (row, column) pairs stops as soon as the linear index runs past the item
// count.
type gridManager[T comparable] struct {
	grid *Grid[T]

	invalidatingPos bool
}

// onGeometryChanged rebuilds the state after a viewport or buffer change.
func (m *gridManager[T]) onGeometryChanged() {
	g := m.grid
	m.invalidatingPos = true
	if !m.viabilityCheck() {
		return
	}
	g.invalidatePos()

	rows, cols := g.rowsRange(), g.columnsRange()
	if !m.rangeCheck(rows, cols, true, true) {
		return
	}
	if rows == g.state.RowsRange() && cols == g.state.ColumnsRange() {
		// Same cells, but the viewport moved or grew; the host still has
		// to repaint.
		g.requestLayout()
		m.invalidatingPos = false
		return
	}

	newState := newGridState(g, rows, cols)
	m.moveReuseCreate(rows, cols, newState)
	newState.setCellsChanged(true)
	m.disposeCurrent()
	g.update(newState)
	m.invalidatingPos = false
}

// onPositionChanged reacts to a scroll on one axis. Only that axis' range
// can have moved; if it did not, the host just needs a layout pass.
func (m *gridManager[T]) onPositionChanged(axis Axis) {
	if m.invalidatingPos {
		return
	}
	g := m.grid
	state := g.state
	if state == g.emptyState {
		return
	}

	var lastRange, rng Range
	if axis == AxisVertical {
		lastRange, rng = state.RowsRange(), g.rowsRange()
	} else {
		lastRange, rng = state.ColumnsRange(), g.columnsRange()
	}
	if rng == lastRange || !rng.Valid() {
		g.requestLayout()
		return
	}

	rows, cols := state.RowsRange(), state.ColumnsRange()
	if axis == AxisVertical {
		rows = rng
	} else {
		cols = rng
	}

	newState := newGridState(g, rows, cols)
	m.moveReuseCreate(rows, cols, newState)
	if m.disposeCurrent() {
		newState.setCellsChanged(true)
	}
	g.update(newState)
	g.requestLayout()
}

// onColumnsChanged reconciles after the column count changed: every linear
// index shifts, so cells are re-matched by item, exactly like an items
// change.
func (m *gridManager[T]) onColumnsChanged() {
	m.onItemsChanged()
}

// onExtentChanged reconciles after cell dimensions or spacing changed.
// Indexes in the overlap of the old and new cross products keep their
// cells untouched.
func (m *gridManager[T]) onExtentChanged() {
	g := m.grid
	m.invalidatingPos = true
	if !m.viabilityCheck() {
		return
	}
	g.invalidatePos()

	rows, cols := g.rowsRange(), g.columnsRange()
	if !m.rangeCheck(rows, cols, true, true) {
		return
	}

	newState := newGridState(g, rows, cols)
	m.intersect(rows, cols, newState)
	g.update(newState)
	if !newState.cellsChanged {
		g.requestLayout()
	}
	m.invalidatingPos = false
}

// onItemsChanged reconciles after the items collection mutated. Cells
// follow their items to their new linear indexes where those fall in
// range.
func (m *gridManager[T]) onItemsChanged() {
	g := m.grid
	m.invalidatingPos = true
	if !m.viabilityCheck() {
		return
	}
	g.invalidatePos()

	rows, cols := g.rowsRange(), g.columnsRange()
	if !m.rangeCheck(rows, cols, true, true) {
		return
	}

	state := g.state
	newState := newGridState(g, rows, cols)
	remaining := make([]int, 0, rows.Len()*cols.Len())
	nColumns := newState.nColumns
outer:
	for row := rows.Min; row <= rows.Max; row++ {
		for col := cols.Min; col <= cols.Max; col++ {
			linear := row*nColumns + col
			if linear >= g.Count() {
				break outer
			}
			item := g.source.Get(linear)
			if cell := state.removeCellByItem(item); cell != nil {
				cell.UpdateIndex(linear)
				newState.addCellItem(linear, item, cell)
				continue
			}
			remaining = append(remaining, linear)
		}
	}
	m.remainingAlgorithm(remaining, newState)

	if m.disposeCurrent() {
		newState.setCellsChanged(true)
	}
	g.update(newState)
	if !newState.cellsChanged {
		g.requestLayout()
	}
	m.invalidatingPos = false
}

// onItemsReplaced is the fast path for in-place replacements: ranges and
// linearization are stable, so only cells in the replaced span get
// UpdateItem.
func (m *gridManager[T]) onItemsReplaced(change Change) {
	g := m.grid
	state := g.state
	if state == g.emptyState {
		m.onItemsChanged()
		return
	}

	replaced := Range{Min: change.Position, Max: change.Position + change.Count - 1}
	visible := false
	for _, idx := range state.cells.indexes() {
		if replaced.Contains(idx) {
			visible = true
			break
		}
	}
	if !visible {
		return
	}

	newState := newGridState(g, state.RowsRange(), state.ColumnsRange())
	newState.nColumns = state.nColumns
	for _, idx := range state.cells.indexes() {
		cell := state.cells.removeIndex(idx)
		item := g.source.Get(idx)
		if replaced.Contains(idx) {
			cell.UpdateItem(item)
		}
		newState.addCellItem(idx, item, cell)
	}
	g.update(newState)
	g.requestLayout()
}

// onCellFactoryChanged rebuilds every cell from the new factory.
func (m *gridManager[T]) onCellFactoryChanged() {
	g := m.grid
	m.disposeCurrent()
	g.cache.Clear()
	if !m.viabilityCheck() {
		return
	}

	rows, cols := g.rowsRange(), g.columnsRange()
	if !m.rangeCheck(rows, cols, true, false) {
		return
	}

	newState := newGridState(g, rows, cols)
	m.moveReuseCreate(rows, cols, newState)
	newState.setCellsChanged(true)
	g.update(newState)
}

func (m *gridManager[T]) viabilityCheck() bool {
	g := m.grid
	if g.Count() == 0 || g.factory == nil || g.cellW <= 0 || g.cellH <= 0 {
		m.disposeCurrent()
		g.update(g.emptyState)
		m.invalidatingPos = false
		return false
	}
	return true
}

func (m *gridManager[T]) rangeCheck(rows, cols Range, update, dispose bool) bool {
	g := m.grid
	if rows.Valid() && cols.Valid() {
		return true
	}
	if dispose {
		m.disposeCurrent()
	}
	if update {
		g.update(g.emptyState)
	}
	m.invalidatingPos = false
	return false
}

func (m *gridManager[T]) disposeCurrent() bool {
	state := m.grid.state
	if state.Empty() {
		return false
	}
	state.dispose()
	return true
}

// moveReuseCreate fills newState for the given ranges: cells whose linear
// index is unchanged move untouched, the rest go through
// remainingAlgorithm. Correct only while the linearization is stable
// (positions and geometry, not columns or items).
func (m *gridManager[T]) moveReuseCreate(rows, cols Range, newState *GridState[T]) {
	g := m.grid
	state := g.state
	remaining := make([]int, 0, rows.Len()*cols.Len())
	nColumns := newState.nColumns
outer:
	for row := rows.Min; row <= rows.Max; row++ {
		for col := cols.Min; col <= cols.Max; col++ {
			linear := row*nColumns + col
			if linear >= g.Count() {
				break outer
			}
			if !state.Empty() {
				if cell := state.removeCell(linear); cell != nil {
					newState.addCell(linear, cell)
					continue
				}
			}
			remaining = append(remaining, linear)
		}
	}
	m.remainingAlgorithm(remaining, newState)
}

// intersect fills newState keeping cells in the overlap of the old and new
// cross products untouched.
func (m *gridManager[T]) intersect(rows, cols Range, newState *GridState[T]) {
	g := m.grid
	state := g.state
	commonRows := state.RowsRange().Intersect(rows)
	commonCols := state.ColumnsRange().Intersect(cols)
	remaining := make([]int, 0, rows.Len()*cols.Len())
	nColumns := newState.nColumns
outer:
	for row := rows.Min; row <= rows.Max; row++ {
		for col := cols.Min; col <= cols.Max; col++ {
			linear := row*nColumns + col
			if linear >= g.Count() {
				break outer
			}
			if commonRows.Contains(row) && commonCols.Contains(col) {
				if cell := state.removeCell(linear); cell != nil {
					newState.addCell(linear, cell)
					continue
				}
			}
			remaining = append(remaining, linear)
		}
	}
	m.remainingAlgorithm(remaining, newState)
	if m.disposeCurrent() || len(remaining) > 0 {
		newState.setCellsChanged(true)
	}
}

// remainingAlgorithm resolves linear indexes no cheaper path could, in the
// same cost order as the list's: leftovers, cache, factory.
func (m *gridManager[T]) remainingAlgorithm(remaining []int, newState *GridState[T]) {
	g := m.grid
	state := g.state
	for _, idx := range remaining {
		item := g.source.Get(idx)
		var cell Cell[T]
		if !state.Empty() {
			cell = state.pollFirstCell()
			cell.UpdateItem(item)
		} else {
			cell = g.itemToCell(item)
			newState.setCellsChanged(true)
		}
		cell.UpdateIndex(idx)
		newState.addCellItem(idx, item, cell)
	}
}
