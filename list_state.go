package virt

// ListState is an immutable-once-published snapshot of a list's viewport:
// which index range is active and which cell backs each index in it.
//
// States are produced by exactly one transition, handed to the host through
// the state-changed callback, and disposed (their cells returned to the
// cache) the moment a newer state supersedes them. Between publication and
// disposal a state is never mutated.
//
// Every List owns a single persistent empty sentinel state, reachable via
// List.State when geometry or data are degenerate; it holds no cells, its
// range is invalid, and it is never disposed.
type ListState[T comparable] struct {
	list  *List[T]
	rng   Range
	cells *stateMap[T]

	// cellsChanged is true when the set of cell instances differs from the
	// superseded state's, meaning the host must resync its visual children.
	cellsChanged bool
}

func newListState[T comparable](list *List[T], rng Range) *ListState[T] {
	return &ListState[T]{
		list:  list,
		rng:   rng,
		cells: newStateMap[T](),
	}
}

// newEmptyListState builds the per-list sentinel.
func newEmptyListState[T comparable]() *ListState[T] {
	return &ListState[T]{rng: InvalidRange, cells: newStateMap[T]()}
}

// addCell binds the cell to index, resolving the item from the source.
func (s *ListState[T]) addCell(index int, cell Cell[T]) {
	s.addCellItem(index, s.list.source.Get(index), cell)
}

func (s *ListState[T]) addCellItem(index int, item T, cell Cell[T]) {
	s.cells.put(index, item, cell)
}

// removeCell unbinds and returns the cell at index. If the index lookup
// misses (possible while the items collection and the map disagree during
// an items-change transition), falls back to a lookup by the item currently
// at that index; a cell resolved that way was bound elsewhere, so it is
// re-bound to index before being handed out.
func (s *ListState[T]) removeCell(index int) Cell[T] {
	if s.list == nil {
		return nil
	}
	c := s.cells.removeIndex(index)
	if c == nil && index < s.list.source.Count() {
		c = s.cells.removeItem(s.list.source.Get(index))
		if c != nil {
			c.UpdateIndex(index)
		}
	}
	return c
}

// removeCellByItem unbinds and returns one cell displaying item, or nil.
func (s *ListState[T]) removeCellByItem(item T) Cell[T] {
	return s.cells.removeItem(item)
}

// pollFirstCell unbinds and returns the remaining cell with the lowest
// index, used to harvest leftovers oldest-first.
func (s *ListState[T]) pollFirstCell() Cell[T] {
	return s.cells.pollFirst()
}

// dispose returns every cell still owned by the state to the list's cache
// and empties the map. Cells moved out earlier by a transition are not
// touched; moving removes them from the map precisely so that disposal can
// never reach a cell that lives on in the next state.
func (s *ListState[T]) dispose() {
	if s.list == nil {
		return
	}
	for _, idx := range s.cells.indexes() {
		s.list.cache.CacheOne(s.cells.get(idx))
	}
	s.cells.clear()
}

// Range returns the index interval covered by this state.
func (s *ListState[T]) Range() Range { return s.rng }

// CellsChanged reports whether the set of cell instances differs from the
// superseded state, i.e. whether the host must resync its visual children.
func (s *ListState[T]) CellsChanged() bool { return s.cellsChanged }

func (s *ListState[T]) setCellsChanged(changed bool) { s.cellsChanged = changed }

// Size returns the number of cells in the state.
func (s *ListState[T]) Size() int { return s.cells.size() }

// Empty reports whether the state holds no cells.
func (s *ListState[T]) Empty() bool { return s.cells.empty() }

// ForEachCell calls fn for every (index, cell) pair in ascending index
// order. This is the iteration surface the layout collaborator consumes.
func (s *ListState[T]) ForEachCell(fn func(index int, cell Cell[T])) {
	for _, idx := range s.cells.indexes() {
		fn(idx, s.cells.get(idx))
	}
}

// Visuals returns the cells' presentation objects in index order.
func (s *ListState[T]) Visuals() []any {
	out := make([]any, 0, s.cells.size())
	s.ForEachCell(func(_ int, cell Cell[T]) {
		out = append(out, cell.Visual())
	})
	return out
}
