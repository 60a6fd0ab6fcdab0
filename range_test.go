package virt

import "testing"

func TestRangeOf(t *testing.T) {
	tests := []struct {
		name       string
		pos        float64
		viewport   float64
		cellExtent float64
		buffer     int
		count      int
		want       Range
	}{
		{"at origin", 0, 100, 20, 1, 100, Range{0, 6}},
		{"scrolled one viewport", 100, 100, 20, 1, 100, Range{4, 10}},
		{"sub-cell scroll keeps range", 19, 100, 20, 1, 100, Range{0, 6}},
		{"crossing a cell boundary", 20, 100, 20, 1, 100, Range{0, 6}},
		{"past a cell boundary", 40, 100, 20, 1, 100, Range{1, 7}},
		{"no buffer", 0, 100, 20, 0, 100, Range{0, 4}},
		{"big buffer", 0, 100, 20, 3, 100, Range{0, 10}},
		{"count caps needed", 0, 100, 20, 1, 3, Range{0, 2}},
		{"tail shifts start back", 1900, 100, 20, 1, 100, Range{93, 99}},
		{"near tail", 1880, 100, 20, 1, 100, Range{93, 99}},
		{"partial cells visible", 0, 90, 20, 1, 100, Range{0, 6}},
		{"single item", 0, 100, 20, 1, 1, Range{0, 0}},
		{"empty collection", 0, 100, 20, 1, 0, InvalidRange},
		{"zero viewport", 0, 0, 20, 1, 100, InvalidRange},
		{"zero cell extent", 0, 100, 0, 1, 100, InvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rangeOf(tt.pos, tt.viewport, tt.cellExtent, tt.buffer, tt.count)
			if got != tt.want {
				t.Errorf("rangeOf(%v, %v, %v, %d, %d) = %v, want %v",
					tt.pos, tt.viewport, tt.cellExtent, tt.buffer, tt.count, got, tt.want)
			}
		})
	}
}

func TestRangeOfLengthInvariant(t *testing.T) {
	// Whatever the scroll position, the range length must stay constant at
	// min(visible+2*buffer, count) so that scrolling is a pure cell swap.
	const viewport, cellExtent = 100.0, 20.0
	const buffer, count = 1, 100
	want := rangeOf(0, viewport, cellExtent, buffer, count).Len()
	for pos := 0.0; pos <= 1900; pos += 7 {
		r := rangeOf(pos, viewport, cellExtent, buffer, count)
		if r.Len() != want {
			t.Fatalf("pos %v: range %v has length %d, want %d", pos, r, r.Len(), want)
		}
		if r.Min < 0 || r.Max > count-1 {
			t.Fatalf("pos %v: range %v out of bounds", pos, r)
		}
	}
}

func TestRangeValid(t *testing.T) {
	if InvalidRange.Valid() {
		t.Error("InvalidRange must not be valid")
	}
	if (Range{Min: 3, Max: 2}).Valid() {
		t.Error("inverted range must not be valid")
	}
	if !(Range{Min: 0, Max: 0}).Valid() {
		t.Error("single-index range must be valid")
	}
}

func TestRangeIntersect(t *testing.T) {
	a := Range{Min: 0, Max: 6}
	b := Range{Min: 4, Max: 10}
	if got := a.Intersect(b); got != (Range{Min: 4, Max: 6}) {
		t.Errorf("Intersect = %v, want [4, 6]", got)
	}
	c := Range{Min: 20, Max: 30}
	if got := a.Intersect(c); got != InvalidRange {
		t.Errorf("disjoint Intersect = %v, want invalid", got)
	}
	if got := a.Intersect(InvalidRange); got.Valid() {
		t.Errorf("Intersect with invalid = %v, want invalid", got)
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Min: 2, Max: 5}
	for _, idx := range []int{2, 3, 5} {
		if !r.Contains(idx) {
			t.Errorf("Contains(%d) = false, want true", idx)
		}
	}
	for _, idx := range []int{1, 6, -1} {
		if r.Contains(idx) {
			t.Errorf("Contains(%d) = true, want false", idx)
		}
	}
	if InvalidRange.Contains(-1) {
		t.Error("InvalidRange must contain nothing")
	}
}
