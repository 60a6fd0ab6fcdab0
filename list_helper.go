package virt

import "math"

// Geometry helpers for List. Everything here is pure computation over the
// list's current inputs; transitions in list_manager.go decide when the
// results become a new state.

// totalCellSize is the pitch between consecutive cell origins.
func (l *List[T]) totalCellSize() float64 {
	return l.cellSize + l.spacing
}

// viewportExtent returns the viewport size along the virtualized axis.
func (l *List[T]) viewportExtent() float64 {
	if l.orientation == Horizontal {
		return l.viewportW
	}
	return l.viewportH
}

// ViewportWidth returns the viewport width.
func (l *List[T]) ViewportWidth() float64 { return l.viewportW }

// ViewportHeight returns the viewport height.
func (l *List[T]) ViewportHeight() float64 { return l.viewportH }

// VirtualExtent returns the total pixel length the list would occupy if
// every cell were laid out, spacing included between cells but not after
// the last one.
func (l *List[T]) VirtualExtent() float64 {
	count := l.Count()
	if count == 0 {
		return 0
	}
	return float64(count)*l.totalCellSize() - l.spacing
}

// maxPosition is the largest meaningful scroll offset.
func (l *List[T]) maxPosition() float64 {
	return max(0, l.VirtualExtent()-l.viewportExtent())
}

// invalidatePos re-clamps the position after anything that shrinks the
// scrollable extent (fewer items, bigger viewport, smaller cells). Reports
// whether the position actually moved.
func (l *List[T]) invalidatePos() bool {
	pos := clampf(l.pos, 0, l.maxPosition())
	if pos == l.pos {
		return false
	}
	l.pos = pos
	return true
}

// FirstVisible returns the index of the first cell visible in the viewport.
func (l *List[T]) FirstVisible() int {
	return firstVisibleOf(l.pos, l.totalCellSize(), l.Count())
}

// LastVisible returns the index of the last cell visible in the viewport.
func (l *List[T]) LastVisible() int {
	return clampi(l.FirstVisible()+l.VisibleCells()-1, 0, l.Count()-1)
}

// VisibleCells returns how many cells the viewport can show at once.
func (l *List[T]) VisibleCells() int {
	return visibleOf(l.viewportExtent(), l.totalCellSize())
}

// TotalCells returns how many cells the list actually keeps alive, visible
// plus buffers, capped by the item count.
func (l *List[T]) TotalCells() int {
	return neededOf(l.viewportExtent(), l.totalCellSize(), l.buffer, l.Count())
}

// computeRange returns the index interval the current inputs call for.
func (l *List[T]) computeRange() Range {
	return rangeOf(l.pos, l.viewportExtent(), l.totalCellSize(), l.buffer, l.Count())
}

// ViewportPosition returns the pixel offset at which the host must place
// the state's first cell so that scrolling appears continuous. It is
// always in (-totalCellSize*buffer - totalCellSize, 0]: the buffer cells
// sit above/left of the viewport origin, plus the fractional part of the
// scroll position.
func (l *List[T]) ViewportPosition() float64 {
	if !l.state.Range().Valid() {
		return 0
	}
	first := l.FirstVisible()
	pixelsToFirst := float64(first-l.state.Range().Min) * l.totalCellSize()
	return -(pixelsToFirst + math.Mod(l.pos, l.totalCellSize()))
}

// CellOffset returns the main-axis pixel offset of the cell at the given
// layout index (its position within the state, 0 for the state's first
// cell), relative to ViewportPosition.
func (l *List[T]) CellOffset(layoutIndex int) float64 {
	return float64(layoutIndex) * l.totalCellSize()
}

// Layout drives a layout pass: fn is called for every cell in ascending
// index order with its layout index, the zero-based slot within the state.
// The host positions each cell at ViewportPosition + CellOffset(layout)
// along the virtualized axis.
func (l *List[T]) Layout(fn func(layoutIndex int, cell Cell[T])) {
	rng := l.state.Range()
	if !rng.Valid() {
		return
	}
	l.state.ForEachCell(func(index int, cell Cell[T]) {
		fn(index-rng.Min, cell)
	})
}

// itemToCell resolves a cell for the given item, preferring the cache over
// the factory. Cells from either path still need UpdateIndex.
func (l *List[T]) itemToCell(item T) Cell[T] {
	if cell, ok := l.cache.TryTake(); ok {
		cell.UpdateItem(item)
		return cell
	}
	return l.factory(item)
}
