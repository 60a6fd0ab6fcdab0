package virt

import "math"

// Geometry helpers for Grid. The grid folds its flat collection row-major:
// the item at linear index i sits at row i/columns, column i%columns.

// maxColumns returns the effective column count: the configured count,
// capped by the item count so a near-empty grid does not report phantom
// columns.
func (g *Grid[T]) maxColumns() int {
	return min(g.Count(), g.columns)
}

// MaxColumns is the exported view of the effective column count.
func (g *Grid[T]) MaxColumns() int { return g.maxColumns() }

// MaxRows returns the number of rows the collection folds into.
func (g *Grid[T]) MaxRows() int {
	cols := g.maxColumns()
	if cols == 0 {
		return 0
	}
	return clampi(int(math.Ceil(float64(g.Count())/float64(cols))), 0, g.Count())
}

func (g *Grid[T]) totalCellW() float64 { return g.cellW + g.hSpacing }

func (g *Grid[T]) totalCellH() float64 { return g.cellH + g.vSpacing }

// VirtualWidth returns the pixel width of the fully laid out grid.
func (g *Grid[T]) VirtualWidth() float64 {
	cols := g.maxColumns()
	if cols == 0 {
		return 0
	}
	return float64(cols)*g.totalCellW() - g.hSpacing
}

// VirtualHeight returns the pixel height of the fully laid out grid.
func (g *Grid[T]) VirtualHeight() float64 {
	rows := g.MaxRows()
	if rows == 0 {
		return 0
	}
	return float64(rows)*g.totalCellH() - g.vSpacing
}

func (g *Grid[T]) maxVPosition() float64 {
	return max(0, g.VirtualHeight()-g.viewportH)
}

func (g *Grid[T]) maxHPosition() float64 {
	return max(0, g.VirtualWidth()-g.viewportW)
}

// invalidatePos re-clamps both positions. Reports whether either moved.
func (g *Grid[T]) invalidatePos() bool {
	v := clampf(g.vPos, 0, g.maxVPosition())
	h := clampf(g.hPos, 0, g.maxHPosition())
	moved := v != g.vPos || h != g.hPos
	g.vPos, g.hPos = v, h
	return moved
}

// rowsRange returns the rows interval the current inputs call for.
func (g *Grid[T]) rowsRange() Range {
	return rangeOf(g.vPos, g.viewportH, g.totalCellH(), g.buffer, g.MaxRows())
}

// columnsRange returns the columns interval the current inputs call for.
func (g *Grid[T]) columnsRange() Range {
	return rangeOf(g.hPos, g.viewportW, g.totalCellW(), g.buffer, g.maxColumns())
}

// FirstVisibleRow returns the topmost row visible in the viewport.
func (g *Grid[T]) FirstVisibleRow() int {
	return firstVisibleOf(g.vPos, g.totalCellH(), g.MaxRows())
}

// FirstVisibleColumn returns the leftmost column visible in the viewport.
func (g *Grid[T]) FirstVisibleColumn() int {
	return firstVisibleOf(g.hPos, g.totalCellW(), g.maxColumns())
}

// VisibleRows returns how many rows the viewport can show at once.
func (g *Grid[T]) VisibleRows() int {
	return visibleOf(g.viewportH, g.totalCellH())
}

// VisibleColumns returns how many columns the viewport can show at once.
func (g *Grid[T]) VisibleColumns() int {
	return visibleOf(g.viewportW, g.totalCellW())
}

// TotalCells returns how many cells the grid keeps alive for the current
// inputs: the rows/columns cross product minus the cut corner of an
// incomplete last row.
func (g *Grid[T]) TotalCells() int {
	rows, cols := g.rowsRange(), g.columnsRange()
	if !rows.Valid() || !cols.Valid() {
		return 0
	}
	nColumns := g.maxColumns()
	total := 0
	for row := rows.Min; row <= rows.Max; row++ {
		for col := cols.Min; col <= cols.Max; col++ {
			if row*nColumns+col >= g.Count() {
				return total
			}
			total++
		}
	}
	return total
}

// ViewportPosition returns the pixel offsets at which the host must place
// the state's first column and first row.
func (g *Grid[T]) ViewportPosition() (x, y float64) {
	if !g.state.RowsRange().Valid() {
		return 0, 0
	}
	pxToCol := float64(g.FirstVisibleColumn()-g.state.ColumnsRange().Min) * g.totalCellW()
	pxToRow := float64(g.FirstVisibleRow()-g.state.RowsRange().Min) * g.totalCellH()
	x = -(pxToCol + math.Mod(g.hPos, g.totalCellW()))
	y = -(pxToRow + math.Mod(g.vPos, g.totalCellH()))
	return x, y
}

// Layout drives a layout pass: fn is called for every cell with its layout
// row and column, zero-based slots within the state's ranges. The host
// positions each cell at
// ViewportPosition + (layoutColumn*totalCellW, layoutRow*totalCellH).
func (g *Grid[T]) Layout(fn func(layoutRow, layoutColumn int, cell Cell[T])) {
	state := g.state
	if !state.RowsRange().Valid() {
		return
	}
	state.ForEachCell(func(_, row, column int, cell Cell[T]) {
		fn(row-state.RowsRange().Min, column-state.ColumnsRange().Min, cell)
	})
}

// itemToCell resolves a cell for the given item, preferring the cache over
// the factory.
func (g *Grid[T]) itemToCell(item T) Cell[T] {
	if cell, ok := g.cache.TryTake(); ok {
		cell.UpdateItem(item)
		return cell
	}
	return g.factory(item)
}
