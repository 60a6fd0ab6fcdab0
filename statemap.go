package virt

import "sort"

// stateMap stores the cells of a state so they can be looked up both by
// index and by item in (amortized) constant time.
//
// There is a double correspondence at play: at any instant a cell at index
// i displays the item at index i, which gives [index -> cell] and
// [item -> index]. The first map answers the geometry and scroll
// transitions, which reuse cells whose index is unchanged. The second
// answers the items-change transition, which must let a cell "follow" its
// item when insertions or removals shift every index after the mutation
// point.
//
// Because equal items may appear at several positions, the item map holds a
// FIFO list of indexes per item. Removal by index does not eagerly scrub
// the item map (that would be a linear scan on the hot path); instead, item
// lookups skip indexes that no longer resolve in the index map. A stale
// index can never surface a live cell, so the laziness is unobservable.
type stateMap[T comparable] struct {
	byIndex map[int]Cell[T]
	byItem  map[T][]int
}

func newStateMap[T comparable]() *stateMap[T] {
	return &stateMap[T]{
		byIndex: make(map[int]Cell[T]),
		byItem:  make(map[T][]int),
	}
}

// put registers the cell under both keys.
func (m *stateMap[T]) put(index int, item T, cell Cell[T]) {
	if cell == nil {
		panic("virt: cannot add nil cell to state map")
	}
	m.byIndex[index] = cell
	m.byItem[item] = append(m.byItem[item], index)
}

// get returns the cell bound to index, or nil.
func (m *stateMap[T]) get(index int) Cell[T] {
	return m.byIndex[index]
}

// removeIndex unbinds and returns the cell at index, or nil. The item map
// keeps its (now stale) entry, see the type comment.
func (m *stateMap[T]) removeIndex(index int) Cell[T] {
	cell, ok := m.byIndex[index]
	if !ok {
		return nil
	}
	delete(m.byIndex, index)
	return cell
}

// removeItem unbinds and returns one cell currently displaying item, or nil
// if none is left. Stale indexes accumulated by removeIndex are dropped
// along the way.
func (m *stateMap[T]) removeItem(item T) Cell[T] {
	indexes := m.byItem[item]
	for len(indexes) > 0 {
		idx := indexes[0]
		indexes = indexes[1:]
		if cell, ok := m.byIndex[idx]; ok {
			delete(m.byIndex, idx)
			if len(indexes) == 0 {
				delete(m.byItem, item)
			} else {
				m.byItem[item] = indexes
			}
			return cell
		}
	}
	delete(m.byItem, item)
	return nil
}

// pollFirst unbinds and returns the cell with the lowest index. Transitions
// use it to harvest leftovers from the superseded state in deterministic,
// oldest-first order. Returns nil when empty.
func (m *stateMap[T]) pollFirst() Cell[T] {
	if len(m.byIndex) == 0 {
		return nil
	}
	first := -1
	for idx := range m.byIndex {
		if first < 0 || idx < first {
			first = idx
		}
	}
	return m.removeIndex(first)
}

// indexes returns the bound indexes in ascending order.
func (m *stateMap[T]) indexes() []int {
	out := make([]int, 0, len(m.byIndex))
	for idx := range m.byIndex {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

func (m *stateMap[T]) size() int { return len(m.byIndex) }

func (m *stateMap[T]) empty() bool { return len(m.byIndex) == 0 }

// clear drops both maps without touching the cells; the caller is expected
// to have moved or cached them already.
func (m *stateMap[T]) clear() {
	clear(m.byIndex)
	clear(m.byItem)
}
