package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-virtual/virt"
)

// GridView hosts a virt.Grid inside a rectangle of a tcell screen, the 2D
// counterpart of ListView. Arrow keys scroll one cell, PgUp/PgDn one
// viewport vertically, and the wheel scrolls vertically (horizontally with
// a horizontal wheel).
type GridView[T comparable] struct {
	grid  *virt.Grid[T]
	x, y  int
	w, h  int
	style tcell.Style

	dirty bool
}

// NewGridView wraps the given grid. Cell extents are interpreted in
// terminal cells.
func NewGridView[T comparable](grid *virt.Grid[T], x, y, w, h int) *GridView[T] {
	v := &GridView[T]{
		grid:  grid,
		x:     x,
		y:     y,
		w:     w,
		h:     h,
		style: tcell.StyleDefault,
		dirty: true,
	}
	grid.OnStateChanged(func(*virt.GridState[T]) { v.dirty = true })
	grid.OnLayoutRequest(func() { v.dirty = true })
	v.applyViewport()
	return v
}

// Grid returns the hosted container.
func (v *GridView[T]) Grid() *virt.Grid[T] { return v.grid }

// SetStyle sets the style used for the background and for TextCells.
func (v *GridView[T]) SetStyle(style tcell.Style) {
	v.style = style
	v.dirty = true
}

// Resize moves the view to a new rectangle and updates the grid's viewport.
func (v *GridView[T]) Resize(x, y, w, h int) {
	v.x, v.y, v.w, v.h = x, y, w, h
	v.dirty = true
	v.applyViewport()
}

func (v *GridView[T]) applyViewport() {
	v.grid.SetViewportSize(float64(v.w), float64(v.h))
}

// Dirty reports whether the view needs a Draw since the last one.
func (v *GridView[T]) Dirty() bool { return v.dirty }

// HandleEvent maps key and mouse wheel events to scrolls. Reports whether
// the event was consumed.
func (v *GridView[T]) HandleEvent(ev tcell.Event) bool {
	stepX := v.grid.CellWidth() + v.grid.HSpacing()
	stepY := v.grid.CellHeight() + v.grid.VSpacing()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			v.grid.ScrollBy(0, -stepY)
		case tcell.KeyDown:
			v.grid.ScrollBy(0, stepY)
		case tcell.KeyLeft:
			v.grid.ScrollBy(-stepX, 0)
		case tcell.KeyRight:
			v.grid.ScrollBy(stepX, 0)
		case tcell.KeyPgUp:
			v.grid.ScrollBy(0, -float64(v.h))
		case tcell.KeyPgDn:
			v.grid.ScrollBy(0, float64(v.h))
		case tcell.KeyHome:
			v.grid.SetVPosition(0)
			v.grid.SetHPosition(0)
		case tcell.KeyEnd:
			v.grid.SetVPosition(v.grid.VirtualHeight())
		default:
			return false
		}
		return true
	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			v.grid.ScrollBy(0, -stepY)
		case ev.Buttons()&tcell.WheelDown != 0:
			v.grid.ScrollBy(0, stepY)
		case ev.Buttons()&tcell.WheelLeft != 0:
			v.grid.ScrollBy(-stepX, 0)
		case ev.Buttons()&tcell.WheelRight != 0:
			v.grid.ScrollBy(stepX, 0)
		default:
			return false
		}
		return true
	}
	return false
}

// Draw renders the current state into the view's rectangle. Cell visuals
// must implement Drawable.
func (v *GridView[T]) Draw(s tcell.Screen) {
	fillRect(s, v.x, v.y, v.w, v.h, v.style)

	originX, originY := v.grid.ViewportPosition()
	cw := int(v.grid.CellWidth())
	ch := int(v.grid.CellHeight())
	pitchX := v.grid.CellWidth() + v.grid.HSpacing()
	pitchY := v.grid.CellHeight() + v.grid.VSpacing()

	v.grid.Layout(func(layoutRow, layoutColumn int, cell virt.Cell[T]) {
		d, ok := cell.Visual().(Drawable)
		if !ok {
			return
		}
		offX := int(originX + float64(layoutColumn)*pitchX)
		offY := int(originY + float64(layoutRow)*pitchY)
		if offX+cw <= 0 || offX >= v.w || offY+ch <= 0 || offY >= v.h {
			return
		}
		d.Draw(s, v.x+offX, v.y+offY, cw, ch, v.style)
	})
	v.dirty = false
}
