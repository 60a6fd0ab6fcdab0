// Package term adapts virt containers to a tcell terminal screen. It is a
// complete host implementation: it owns a rectangle of screen cells, feeds
// geometry and input to a container, and renders the published states.
//
// Coordinates are terminal cells, so the containers run with row/column
// sized "pixels": a list cell of extent 1 is one terminal row.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-virtual/virt"
)

// Drawable is the drawing contract cell visuals must satisfy to be rendered
// by this backend. Visual() of every cell handed to a view must return a
// Drawable.
type Drawable interface {
	// Draw renders the visual into the given screen rectangle.
	Draw(s tcell.Screen, x, y, w, h int, style tcell.Style)
}

// TextCell is a ready-made cell for string items: one row of text,
// truncated with an ellipsis or padded to the cell width.
type TextCell struct {
	text  string
	index int
}

// NewTextCell returns a TextCell displaying the given string.
func NewTextCell(text string) *TextCell {
	return &TextCell{text: text, index: -1}
}

// TextCellFactory builds TextCells; hand it to NewList or NewGrid directly.
func TextCellFactory(item string) virt.Cell[string] { return NewTextCell(item) }

// Visual implements virt.Cell.
func (c *TextCell) Visual() any { return c }

// UpdateIndex implements virt.Cell.
func (c *TextCell) UpdateIndex(index int) { c.index = index }

// UpdateItem implements virt.Cell.
func (c *TextCell) UpdateItem(item string) { c.text = item }

// Dispose implements virt.Cell.
func (c *TextCell) Dispose() {}

// Text returns the currently displayed string.
func (c *TextCell) Text() string { return c.text }

// Index returns the index the cell currently occupies, -1 if unbound.
func (c *TextCell) Index() int { return c.index }

// Draw implements Drawable: the text fills the first row of the rectangle,
// truncated or padded to w columns.
func (c *TextCell) Draw(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	if w <= 0 || h <= 0 {
		return
	}
	drawString(s, x, y, w, c.text, style)
}

// drawString puts text on one screen row, truncating to w columns with an
// ellipsis and padding the remainder with spaces. Wide runes are measured
// with runewidth so CJK text does not overrun the cell.
func drawString(s tcell.Screen, x, y, w int, text string, style tcell.Style) {
	text = runewidth.Truncate(text, w, "…")
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	for ; col < x+w; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}

// fillRect paints the rectangle with spaces in the given style.
func fillRect(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}
