// Package surface defines the contract shared by the root screen and every
// nested window, plus the write/wrap/scroll algorithm both of them run.
package surface

import (
	"io"
	"sync"

	"github.com/hnimtadd/termwin/terminal/coordinate"
	"github.com/hnimtadd/termwin/terminal/style"
)

// Surface is a rectangular, cursor-addressed area of a cell buffer.
// Coordinates passed to a Surface are local to it: (0, 0) is its own
// top-left cell.
type Surface interface {
	io.Writer

	// Print writes text at the cursor, wrapping at the right edge and
	// scrolling at the bottom.
	Print(text string)
	// PrintLine is Print followed by a move to the start of the next line.
	PrintLine(text string)
	// PrintAt writes text starting at (x, y) in the current colours without
	// moving the cursor. Nothing wraps; cells past the edge are dropped.
	PrintAt(x, y int, text string)
	// PrintAtColor is PrintAt with explicit colours.
	PrintAtColor(fg, bg style.Color, x, y int, text string)
	// ScrollRect scrolls the cells inside r up by one row.
	ScrollRect(r coordinate.Rect)
	// Clear blanks the surface and homes the cursor.
	Clear()

	CursorPosition() coordinate.Point[int]
	SetCursorPosition(x, y int) error
	Foreground() style.Color
	SetForeground(c style.Color)
	Background() style.Color
	SetBackground(c style.Color)
	// State returns a copy of the cursor.
	State() Cursor

	Width() int
	Height() int

	// Locker returns the structural lock of the tree this surface belongs
	// to. Multi-cell drawing holds it for the whole sequence.
	Locker() sync.Locker
}
