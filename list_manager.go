package virt

// listManager runs the state transitions of a List. Each on* method is the
// single reaction to one kind of input change; it computes a fresh
// ListState from the current one, moving as many cells as possible instead
// of creating them, then publishes it.
//
// Cell resolution always runs cheapest-first: a cell already bound to the
// wanted index is moved as is, then leftovers of the superseded state are
// re-bound (UpdateIndex/UpdateItem), then the cache is drained, and only
// then is the factory invoked.
type listManager[T comparable] struct {
	list *List[T]

	// invalidatingPos is set while a transition re-clamps the scroll
	// position. The clamp fires the position setter, whose transition must
	// not run: the outer transition already accounts for the new position.
	invalidatingPos bool
}

// onGeometryChanged rebuilds the state after a viewport or buffer change.
// Also the entry point for initialization.
func (m *listManager[T]) onGeometryChanged() {
	l := m.list
	m.invalidatingPos = true
	if !m.viabilityCheck() {
		return
	}

	// A larger viewport may have shrunk the scrollable extent.
	l.invalidatePos()

	rng := l.computeRange()
	if !m.rangeCheck(rng, true, true) {
		return
	}
	if rng == l.state.Range() {
		// Same cells, but the viewport moved or grew; the host still has
		// to repaint.
		l.requestLayout()
		m.invalidatingPos = false
		return
	}

	newState := newListState(l, rng)
	m.moveReuseCreate(rng, newState)
	newState.setCellsChanged(true)
	m.disposeCurrent()
	l.update(newState)
	m.invalidatingPos = false
}

// onPositionChanged reacts to a scroll. If the range did not move the host
// only needs a layout pass; otherwise indexes that left the range free
// their cells for the indexes that entered it, one for one, so this
// transition never touches the cache or the factory.
func (m *listManager[T]) onPositionChanged() {
	if m.invalidatingPos {
		return
	}
	l := m.list
	state := l.state
	if state == l.emptyState {
		return
	}

	lastRange := state.Range()
	rng := l.computeRange()
	if rng == lastRange || !rng.Valid() {
		l.requestLayout()
		return
	}
	// The one-for-one swap below relies on both ranges having the same
	// length. A mismatch means some other input changed behind our back;
	// rebuild instead of publishing a state with holes.
	if rng.Len() != lastRange.Len() {
		m.onGeometryChanged()
		return
	}

	newState := newListState(l, rng)
	needed := make([]int, 0, rng.Len())
	for idx := rng.Min; idx <= rng.Max; idx++ {
		if cell := state.removeCell(idx); cell != nil {
			newState.addCell(idx, cell)
			continue
		}
		needed = append(needed, idx)
	}

	// Both ranges have the same length, so the leftovers cover exactly the
	// entered indexes.
	for _, idx := range needed {
		cell := state.pollFirstCell()
		if cell == nil {
			break
		}
		item := l.source.Get(idx)
		cell.UpdateIndex(idx)
		cell.UpdateItem(item)
		newState.addCellItem(idx, item, cell)
	}

	l.update(newState)
	l.requestLayout()
}

// onCellSizeChanged reconciles after the uniform cell extent changed: both
// the range and the scrollable extent move, but indexes in the overlap of
// the old and new ranges keep their cells untouched.
func (m *listManager[T]) onCellSizeChanged() {
	m.onExtentChanged()
}

// onSpacingChanged reconciles after the inter-cell gap changed. Same shape
// as a cell size change: the pitch moved.
func (m *listManager[T]) onSpacingChanged() {
	m.onExtentChanged()
}

// onOrientationChanged resets the scroll position (offsets on the old axis
// are meaningless on the new one) and reconciles like an extent change.
func (m *listManager[T]) onOrientationChanged() {
	m.list.pos = 0
	m.onExtentChanged()
}

func (m *listManager[T]) onExtentChanged() {
	l := m.list
	m.invalidatingPos = true
	if !m.viabilityCheck() {
		return
	}
	l.invalidatePos()

	rng := l.computeRange()
	if !m.rangeCheck(rng, true, true) {
		return
	}

	newState := newListState(l, rng)
	m.intersect(rng, newState)
	l.update(newState)
	if !newState.cellsChanged {
		l.requestLayout()
	}
	m.invalidatingPos = false
}

// onItemsChanged reconciles after the items collection mutated in a way
// that may have moved items across indexes (insert, remove, permute,
// clear, or a wholesale source swap). Cells follow their items: a cell
// whose item now lives at another in-range index is moved there and only
// told its new index.
func (m *listManager[T]) onItemsChanged() {
	l := m.list
	m.invalidatingPos = true
	if !m.viabilityCheck() {
		return
	}

	// Removals may have shrunk the scrollable extent past the position.
	l.invalidatePos()

	rng := l.computeRange()
	if !m.rangeCheck(rng, true, true) {
		return
	}

	state := l.state
	newState := newListState(l, rng)
	remaining := make([]int, 0, rng.Len())
	for idx := rng.Min; idx <= rng.Max; idx++ {
		item := l.source.Get(idx)
		if cell := state.removeCellByItem(item); cell != nil {
			cell.UpdateIndex(idx)
			newState.addCellItem(idx, item, cell)
			continue
		}
		remaining = append(remaining, idx)
	}
	m.remainingAlgorithm(remaining, newState)

	if m.disposeCurrent() {
		newState.setCellsChanged(true)
	}
	l.update(newState)
	if !newState.cellsChanged {
		l.requestLayout()
	}
	m.invalidatingPos = false
}

// onItemsReplaced is the fast path for in-place replacements: the
// collection size is unchanged, so the range, the scrollable extent and
// the cell set are all stable. Cells in the replaced span get UpdateItem;
// nothing else moves.
func (m *listManager[T]) onItemsReplaced(change Change) {
	l := m.list
	state := l.state
	if state == l.emptyState {
		m.onItemsChanged()
		return
	}

	rng := state.Range()
	replaced := Range{Min: change.Position, Max: change.Position + change.Count - 1}
	if !replaced.Intersect(rng).Valid() {
		return
	}
	if state.Size() != rng.Len() {
		// The state disagrees with its range; rebuild from scratch.
		m.onItemsChanged()
		return
	}

	newState := newListState(l, rng)
	for idx := rng.Min; idx <= rng.Max; idx++ {
		cell := state.cells.removeIndex(idx)
		item := l.source.Get(idx)
		if replaced.Contains(idx) {
			cell.UpdateItem(item)
		}
		newState.addCellItem(idx, item, cell)
	}
	l.update(newState)
	l.requestLayout()
}

// onCellFactoryChanged rebuilds every cell: the old factory's products,
// both live and cached, are invalid under the new one.
func (m *listManager[T]) onCellFactoryChanged() {
	l := m.list
	m.disposeCurrent()
	l.cache.Clear()
	if !m.viabilityCheck() {
		return
	}

	rng := l.computeRange()
	if !m.rangeCheck(rng, true, false) {
		return
	}

	newState := newListState(l, rng)
	m.remainingAlgorithm(rangeSlice(rng), newState)
	newState.setCellsChanged(true)
	l.update(newState)
}

// viabilityCheck verifies the container can display anything at all. On
// failure the state collapses to the empty sentinel (cells cached) and the
// transition stops.
func (m *listManager[T]) viabilityCheck() bool {
	l := m.list
	if l.Count() == 0 || l.factory == nil || l.cellSize <= 0 {
		m.disposeCurrent()
		l.update(l.emptyState)
		m.invalidatingPos = false
		return false
	}
	return true
}

// rangeCheck verifies the computed range is usable. On an invalid range the
// state optionally collapses to the empty sentinel, optionally disposing
// the current cells first.
func (m *listManager[T]) rangeCheck(rng Range, update, dispose bool) bool {
	l := m.list
	if rng.Valid() {
		return true
	}
	if dispose {
		m.disposeCurrent()
	}
	if update {
		l.update(l.emptyState)
	}
	m.invalidatingPos = false
	return false
}

// disposeCurrent caches the current state's cells. Reports whether there
// was anything to dispose.
func (m *listManager[T]) disposeCurrent() bool {
	state := m.list.state
	if state.Empty() {
		return false
	}
	state.dispose()
	return true
}

// moveReuseCreate fills newState for the given range: cells whose index is
// still in range move untouched, every other index is resolved by
// remainingAlgorithm.
func (m *listManager[T]) moveReuseCreate(rng Range, newState *ListState[T]) {
	state := m.list.state
	remaining := make([]int, 0, rng.Len())
	for idx := rng.Min; idx <= rng.Max; idx++ {
		if !state.Empty() {
			if cell := state.removeCell(idx); cell != nil {
				newState.addCell(idx, cell)
				continue
			}
		}
		remaining = append(remaining, idx)
	}
	m.remainingAlgorithm(remaining, newState)
}

// intersect fills newState for the given range: indexes common to the
// current range keep their cells untouched, the rest go through
// remainingAlgorithm. Used when the pitch changed, which moves the range
// asymmetrically.
func (m *listManager[T]) intersect(rng Range, newState *ListState[T]) {
	state := m.list.state
	common := state.Range().Intersect(rng)
	remaining := make([]int, 0, rng.Len())
	for idx := rng.Min; idx <= rng.Max; idx++ {
		if common.Contains(idx) {
			if cell := state.removeCell(idx); cell != nil {
				newState.addCell(idx, cell)
				continue
			}
		}
		remaining = append(remaining, idx)
	}
	m.remainingAlgorithm(remaining, newState)
	if m.disposeCurrent() || len(remaining) > 0 {
		newState.setCellsChanged(true)
	}
}

// remainingAlgorithm resolves every index no cheaper path could: leftovers
// of the superseded state first (full re-bind), then the cache, then the
// factory. Marks the state changed whenever a cell comes from outside the
// superseded state, since those are instances the host has never seen.
func (m *listManager[T]) remainingAlgorithm(remaining []int, newState *ListState[T]) {
	l := m.list
	state := l.state
	for _, idx := range remaining {
		item := l.source.Get(idx)
		var cell Cell[T]
		if !state.Empty() {
			cell = state.pollFirstCell()
			cell.UpdateItem(item)
		} else {
			cell = l.itemToCell(item)
			newState.setCellsChanged(true)
		}
		cell.UpdateIndex(idx)
		newState.addCellItem(idx, item, cell)
	}
}

// rangeSlice expands a range into the slice of its indexes.
func rangeSlice(rng Range) []int {
	if !rng.Valid() {
		return nil
	}
	out := make([]int, 0, rng.Len())
	for idx := rng.Min; idx <= rng.Max; idx++ {
		out = append(out, idx)
	}
	return out
}
