package term_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/go-virtual/virt"
	"github.com/go-virtual/virt/backend/term"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// screenRow reads one row of the simulation screen as a trimmed string.
func screenRow(s tcell.SimulationScreen, y int) string {
	s.Show()
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) > 0 {
			b.WriteRune(c.Runes[0])
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func lines(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("line %03d", i)
	}
	return out
}

func newStringList(items []string) *virt.List[string] {
	return virt.NewList[string](
		virt.NewSliceSource(items...),
		term.TextCellFactory,
		virt.WithCellSize[string](1),
	)
}

func TestListViewDrawsVisibleLines(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	list := newStringList(lines(100))
	view := term.NewListView(list, 0, 0, 20, 5)

	view.Draw(s)

	for y := 0; y < 5; y++ {
		want := fmt.Sprintf("line %03d", y)
		if got := screenRow(s, y); got != want {
			t.Errorf("row %d = %q, want %q", y, got, want)
		}
	}
}

func TestListViewScrollByKey(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	list := newStringList(lines(100))
	view := term.NewListView(list, 0, 0, 20, 5)
	view.Draw(s)

	for i := 0; i < 3; i++ {
		if !view.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) {
			t.Fatal("KeyDown should be consumed")
		}
	}
	view.Draw(s)

	if got := screenRow(s, 0); got != "line 003" {
		t.Errorf("top row after scrolling = %q, want %q", got, "line 003")
	}
}

func TestListViewPageAndHomeEnd(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	list := newStringList(lines(100))
	view := term.NewListView(list, 0, 0, 20, 5)

	view.HandleEvent(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	view.Draw(s)
	if got := screenRow(s, 0); got != "line 005" {
		t.Errorf("top row after PgDn = %q, want %q", got, "line 005")
	}

	view.HandleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	view.Draw(s)
	if got := screenRow(s, 4); got != "line 099" {
		t.Errorf("bottom row after End = %q, want %q", got, "line 099")
	}

	view.HandleEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	view.Draw(s)
	if got := screenRow(s, 0); got != "line 000" {
		t.Errorf("top row after Home = %q, want %q", got, "line 000")
	}
}

func TestListViewWheel(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	list := newStringList(lines(100))
	view := term.NewListView(list, 0, 0, 20, 5)

	ev := tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone)
	if !view.HandleEvent(ev) {
		t.Fatal("wheel event should be consumed")
	}
	view.Draw(s)
	if got := screenRow(s, 0); got != "line 001" {
		t.Errorf("top row after wheel = %q, want %q", got, "line 001")
	}
}

func TestListViewIgnoresUnboundKeys(t *testing.T) {
	list := newStringList(lines(10))
	view := term.NewListView(list, 0, 0, 20, 5)

	if view.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("rune key should not be consumed")
	}
}

func TestListViewTruncatesLongLines(t *testing.T) {
	s := newSimScreen(t, 8, 2)
	list := newStringList([]string{"0123456789abcdef", "short"})
	view := term.NewListView(list, 0, 0, 8, 2)

	view.Draw(s)

	if got := screenRow(s, 0); got != "0123456…" {
		t.Errorf("row 0 = %q, want truncated with ellipsis", got)
	}
	if got := screenRow(s, 1); got != "short" {
		t.Errorf("row 1 = %q, want %q", got, "short")
	}
}

func TestListViewRecyclesWhileScrolling(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	created := 0
	list := virt.NewList[string](
		virt.NewSliceSource(lines(1000)...),
		func(item string) virt.Cell[string] {
			created++
			return term.NewTextCell(item)
		},
		virt.WithCellSize[string](1),
	)
	view := term.NewListView(list, 0, 0, 20, 5)
	view.Draw(s)
	initial := created

	for i := 0; i < 200; i++ {
		view.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
		view.Draw(s)
	}
	if created != initial {
		t.Errorf("scrolling created %d extra cells, want 0", created-initial)
	}
	if got := screenRow(s, 0); got != "line 200" {
		t.Errorf("top row = %q, want %q", got, "line 200")
	}
}

func TestGridViewDraws(t *testing.T) {
	s := newSimScreen(t, 30, 6)
	grid := virt.NewGrid[string](
		virt.NewSliceSource(lines(100)...),
		term.TextCellFactory,
		virt.WithColumns[string](3),
		virt.WithGridCellSize[string](10, 1),
	)
	view := term.NewGridView(grid, 0, 0, 30, 6)

	view.Draw(s)

	// Row 0 holds items 0, 1, 2 side by side.
	if got := screenRow(s, 0); got != "line 000  line 001  line 002" {
		t.Errorf("row 0 = %q", got)
	}
	if got := screenRow(s, 1); got != "line 003  line 004  line 005" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestGridViewScroll(t *testing.T) {
	s := newSimScreen(t, 30, 6)
	grid := virt.NewGrid[string](
		virt.NewSliceSource(lines(100)...),
		term.TextCellFactory,
		virt.WithColumns[string](3),
		virt.WithGridCellSize[string](10, 1),
	)
	view := term.NewGridView(grid, 0, 0, 30, 6)
	view.Draw(s)

	view.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	view.Draw(s)
	if got := screenRow(s, 0); got != "line 003  line 004  line 005" {
		t.Errorf("row 0 after scroll = %q", got)
	}
}

func TestGridViewDirtyTracking(t *testing.T) {
	s := newSimScreen(t, 30, 6)
	grid := virt.NewGrid[string](
		virt.NewSliceSource(lines(100)...),
		term.TextCellFactory,
		virt.WithColumns[string](3),
		virt.WithGridCellSize[string](10, 1),
	)
	view := term.NewGridView(grid, 0, 0, 30, 6)

	if !view.Dirty() {
		t.Fatal("fresh view must be dirty")
	}
	view.Draw(s)
	if view.Dirty() {
		t.Error("view must be clean after Draw")
	}
	view.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if !view.Dirty() {
		t.Error("scroll must mark the view dirty")
	}
}
