// Command example is an interactive demo of the virt containers on a
// terminal screen. It shows a virtualized list and grid over a 100k item
// collection, with live mutations, while displaying how few cells are
// actually alive.
//
// Keys:
//
//	Tab        switch between list and grid
//	Arrows     scroll one cell
//	PgUp/PgDn  scroll one viewport
//	Home/End   jump to the edges
//	a          append an item
//	i          insert an item at the top
//	d          delete the top item
//	r          replace the first visible item
//	q / Esc    quit
package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/go-virtual/virt"
	"github.com/go-virtual/virt/backend/term"
)

const itemCount = 100000

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	app := newApp(screen)
	app.run()
}

type app struct {
	screen tcell.Screen

	source   *virt.SliceSource[string]
	list     *virt.List[string]
	grid     *virt.Grid[string]
	listView *term.ListView[string]
	gridView *term.GridView[string]

	focusGrid bool
	nextID    int
}

func newApp(screen tcell.Screen) *app {
	a := &app{screen: screen}

	items := make([]string, itemCount)
	for i := range items {
		items[i] = fmt.Sprintf("item %06d", i)
	}
	a.nextID = itemCount
	a.source = virt.NewSliceSource(items...)

	a.list = virt.NewList[string](a.source, term.TextCellFactory,
		virt.WithCellSize[string](1),
		virt.WithBufferSize[string](2),
	)
	// The grid shares the collection but owns its own cells. A SliceSource
	// carries a single binding, so fan the notifications out by hand.
	a.grid = virt.NewGrid[string](a.source, term.TextCellFactory,
		virt.WithColumns[string](6),
		virt.WithGridCellSize[string](14, 1),
		virt.WithGridBufferSize[string](2),
	)
	a.source.Bind(func(c virt.Change) {
		a.list.NotifyChanged(c)
		a.grid.NotifyChanged(c)
	})

	a.layout()
	return a
}

// layout splits the screen: list on the left, grid on the right, one
// status row at the bottom.
func (a *app) layout() {
	w, h := a.screen.Size()
	listW := w / 3
	if a.listView == nil {
		a.listView = term.NewListView(a.list, 0, 0, listW, h-1)
		a.gridView = term.NewGridView(a.grid, listW+1, 0, w-listW-1, h-1)
	} else {
		a.listView.Resize(0, 0, listW, h-1)
		a.gridView.Resize(listW+1, 0, w-listW-1, h-1)
	}
}

func (a *app) run() {
	for {
		a.draw()
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.layout()
			a.screen.Sync()
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			a.focused().HandleEvent(ev)
		}
	}
}

// eventSink is the part of both views the app drives uniformly.
type eventSink interface {
	HandleEvent(ev tcell.Event) bool
}

func (a *app) focused() eventSink {
	if a.focusGrid {
		return a.gridView
	}
	return a.listView
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
		return false
	case ev.Key() == tcell.KeyTab:
		a.focusGrid = !a.focusGrid
		return true
	}

	switch ev.Rune() {
	case 'a':
		a.source.Append(fmt.Sprintf("item %06d", a.nextID))
		a.nextID++
		return true
	case 'i':
		a.source.InsertAt(0, fmt.Sprintf("new %06d", a.nextID))
		a.nextID++
		return true
	case 'd':
		if a.source.Count() > 0 {
			a.source.RemoveAt(0, 1)
		}
		return true
	case 'r':
		idx := a.list.FirstVisible()
		if idx < a.source.Count() {
			a.source.SetAt(idx, fmt.Sprintf("swap %06d", a.nextID))
			a.nextID++
		}
		return true
	}

	a.focused().HandleEvent(ev)
	return true
}

func (a *app) draw() {
	a.listView.Draw(a.screen)
	a.gridView.Draw(a.screen)
	a.drawStatus()
	a.screen.Show()
}

func (a *app) drawStatus() {
	w, h := a.screen.Size()
	focus := "list"
	if a.focusGrid {
		focus = "grid"
	}
	status := fmt.Sprintf(
		" %d items | focus: %s | list cells: %d (cache %d) | grid cells: %d (cache %d) | q quit",
		a.source.Count(), focus,
		a.list.State().Size(), a.list.Cache().Size(),
		a.grid.State().Size(), a.grid.Cache().Size(),
	)
	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		a.screen.SetContent(col, h-1, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		a.screen.SetContent(col, h-1, ' ', nil, style)
	}
}
