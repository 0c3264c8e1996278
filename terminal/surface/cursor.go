package surface

import (
	"fmt"

	"github.com/hnimtadd/termwin/terminal/coordinate"
	"github.com/hnimtadd/termwin/terminal/style"
)

// The cursor position and colours of a surface.
type Cursor struct {
	X int
	Y int

	// Set when a write ended by filling the bottom row. The cursor is
	// already at the start of the last row; the surface scrolls before the
	// next glyph or line feed lands, so a full screen stays visible until
	// more output arrives.
	PendingScroll bool

	// The colours new cells are written with.
	Style style.Style
}

func (c *Cursor) Position() coordinate.Point[int] {
	return coordinate.NewPoint(c.X, c.Y)
}

// MoveTo places the cursor at (x, y) inside a width x height surface.
func (c *Cursor) MoveTo(x, y, width, height int) error {
	if x < 0 || x >= width || y < 0 || y >= height {
		return fmt.Errorf("cursor (%d,%d) in %dx%d: %w", x, y, width, height, coordinate.ErrOutOfBounds)
	}
	c.X = x
	c.Y = y
	c.PendingScroll = false
	return nil
}

// Home moves the cursor to the top-left cell.
func (c *Cursor) Home() {
	c.X = 0
	c.Y = 0
	c.PendingScroll = false
}

// Clamp pulls the cursor back inside a width x height surface after the
// surface shrank.
func (c *Cursor) Clamp(width, height int) {
	if c.X >= width {
		c.X = width - 1
	}
	if c.Y >= height {
		c.Y = height - 1
	}
}
