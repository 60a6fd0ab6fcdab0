package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-virtual/virt"
)

// ListView hosts a virt.List inside a rectangle of a tcell screen. It feeds
// the viewport size to the list, maps key and mouse events to scrolls, and
// renders the published state on Draw.
//
// The view does not own an event loop; the application calls HandleEvent
// and Draw from its own loop (see example/).
type ListView[T comparable] struct {
	list  *virt.List[T]
	x, y  int
	w, h  int
	style tcell.Style

	dirty bool
}

// NewListView wraps the given list. The list's cell extents are interpreted
// in terminal cells (a cell size of 1 is one row).
func NewListView[T comparable](list *virt.List[T], x, y, w, h int) *ListView[T] {
	v := &ListView[T]{
		list:  list,
		x:     x,
		y:     y,
		w:     w,
		h:     h,
		style: tcell.StyleDefault,
		dirty: true,
	}
	list.OnStateChanged(func(*virt.ListState[T]) { v.dirty = true })
	list.OnLayoutRequest(func() { v.dirty = true })
	v.applyViewport()
	return v
}

// List returns the hosted container.
func (v *ListView[T]) List() *virt.List[T] { return v.list }

// SetStyle sets the style used for the background and for TextCells.
func (v *ListView[T]) SetStyle(style tcell.Style) {
	v.style = style
	v.dirty = true
}

// Resize moves the view to a new rectangle and updates the list's viewport.
func (v *ListView[T]) Resize(x, y, w, h int) {
	v.x, v.y, v.w, v.h = x, y, w, h
	v.dirty = true
	v.applyViewport()
}

func (v *ListView[T]) applyViewport() {
	v.list.SetViewportSize(float64(v.w), float64(v.h))
}

// Dirty reports whether the view needs a Draw since the last one.
func (v *ListView[T]) Dirty() bool { return v.dirty }

// HandleEvent maps key and mouse wheel events to scrolls. Reports whether
// the event was consumed.
func (v *ListView[T]) HandleEvent(ev tcell.Event) bool {
	step := v.list.CellSize() + v.list.Spacing()
	page := v.list.ViewportHeight()
	if v.list.Orientation() == virt.Horizontal {
		page = v.list.ViewportWidth()
	}

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			v.list.ScrollBy(-step)
		case tcell.KeyDown:
			v.list.ScrollBy(step)
		case tcell.KeyPgUp:
			v.list.ScrollBy(-page)
		case tcell.KeyPgDn:
			v.list.ScrollBy(page)
		case tcell.KeyHome:
			v.list.SetPosition(0)
		case tcell.KeyEnd:
			v.list.SetPosition(v.list.VirtualExtent())
		default:
			return false
		}
		return true
	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			v.list.ScrollBy(-step)
		case ev.Buttons()&tcell.WheelDown != 0:
			v.list.ScrollBy(step)
		default:
			return false
		}
		return true
	}
	return false
}

// Draw renders the current state into the view's rectangle. Cell visuals
// must implement Drawable.
func (v *ListView[T]) Draw(s tcell.Screen) {
	fillRect(s, v.x, v.y, v.w, v.h, v.style)

	origin := v.list.ViewportPosition()
	extent := int(v.list.CellSize())
	horizontal := v.list.Orientation() == virt.Horizontal

	v.list.Layout(func(i int, cell virt.Cell[T]) {
		d, ok := cell.Visual().(Drawable)
		if !ok {
			return
		}
		off := int(origin + v.list.CellOffset(i))
		if horizontal {
			if off+extent <= 0 || off >= v.w {
				return
			}
			d.Draw(s, v.x+off, v.y, extent, v.h, v.style)
			return
		}
		if off+extent <= 0 || off >= v.h {
			return
		}
		d.Draw(s, v.x, v.y+off, v.w, extent, v.style)
	})
	v.dirty = false
}
