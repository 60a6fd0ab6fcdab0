package virt

import "math"

// Range is an inclusive [Min, Max] interval over item indexes.
//
// A Range is the unit of bookkeeping for every virtualized container: it
// describes which indexes must currently be backed by a cell. Ranges are
// always clamped to the valid index space of the items collection before
// they are published in a state.
type Range struct {
	Min int
	Max int
}

// InvalidRange is the distinguished "no viewport" sentinel. It is produced
// whenever the inputs make a real range impossible: empty collection,
// non-positive viewport extent, or nothing needed.
var InvalidRange = Range{Min: -1, Max: -1}

// Valid reports whether the range is usable as an index interval.
func (r Range) Valid() bool {
	return r.Min >= 0 && r.Max >= r.Min
}

// Len returns the number of indexes covered by the range, 0 if invalid.
func (r Range) Len() int {
	if !r.Valid() {
		return 0
	}
	return r.Max - r.Min + 1
}

// Contains reports whether idx falls within the range.
func (r Range) Contains(idx int) bool {
	return r.Valid() && idx >= r.Min && idx <= r.Max
}

// Intersect returns the overlap between r and other, or InvalidRange if the
// two ranges are disjoint.
func (r Range) Intersect(other Range) Range {
	lo := max(r.Min, other.Min)
	hi := min(r.Max, other.Max)
	if lo > hi || lo < 0 {
		return InvalidRange
	}
	return Range{Min: lo, Max: hi}
}

// rangeOf computes the index range that must be backed by cells along one
// axis. It is the core of the range calculator and is shared by the list
// (single axis) and the grid (applied independently per axis).
//
// Parameters:
//   - pos: scroll offset in pixels, >= 0
//   - viewport: viewport extent in pixels along the axis
//   - cellExtent: extent of one cell plus spacing, > 0
//   - buffer: number of extra cells kept on each side of the visible set
//   - count: number of valid indexes on the axis
//
// The returned range always satisfies 0 <= Min <= Max <= count-1 and
// Len == min(visible + 2*buffer, count). When the scroll position sits at
// the tail, the start is shifted back so the buffer that cannot be applied
// below is applied above instead.
func rangeOf(pos, viewport, cellExtent float64, buffer, count int) Range {
	if viewport <= 0 || count <= 0 || cellExtent <= 0 {
		return InvalidRange
	}
	needed := neededOf(viewport, cellExtent, buffer, count)
	if needed == 0 {
		return InvalidRange
	}
	start := max(0, firstVisibleOf(pos, cellExtent, count)-buffer)
	end := min(count-1, start+needed-1)
	if end-start+1 < needed {
		start = max(0, end-needed+1)
	}
	return Range{Min: start, Max: end}
}

// firstVisibleOf returns the index of the first cell intersecting the
// viewport at the given scroll position, clamped to [0, count-1].
func firstVisibleOf(pos, cellExtent float64, count int) int {
	if cellExtent <= 0 || count <= 0 {
		return 0
	}
	return clampi(int(math.Floor(pos/cellExtent)), 0, count-1)
}

// visibleOf returns how many cells fit (even partially) in the viewport.
func visibleOf(viewport, cellExtent float64) int {
	if cellExtent <= 0 || viewport <= 0 {
		return 0
	}
	return int(math.Ceil(viewport / cellExtent))
}

// neededOf returns the total number of cells the axis needs: the visible
// count padded by the buffer on both sides, capped by the item count.
func neededOf(viewport, cellExtent float64, buffer, count int) int {
	visible := visibleOf(viewport, cellExtent)
	if visible == 0 {
		return 0
	}
	return min(visible+buffer*2, count)
}

func clampi(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampf(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
