package screen

import (
	"fmt"
	"sync"

	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal/buffer"
	"github.com/hnimtadd/termwin/terminal/coordinate"
	"github.com/hnimtadd/termwin/terminal/style"
	"github.com/hnimtadd/termwin/terminal/surface"
	"github.com/hnimtadd/termwin/terminal/utils"
)

var _ surface.Surface = &Screen{}

// Screen is the root of a surface tree. It owns the cell buffer and the
// structural lock every window below it shares.
type Screen struct {
	Cursor *surface.Cursor

	buf *buffer.Buffer

	// Held around multi-cell structural drawing anywhere in the tree.
	mu sync.Mutex

	scrolls int

	logger logger.Logger
}

type Options struct {
	// Colours of the cursor at start.
	Style style.Style

	Logger logger.Logger
}

// Initialize a new screen of cols x rows blank cells.
func NewScreen(cols, rows int, opts Options) (*Screen, error) {
	buf, err := buffer.New(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}
	return &Screen{
		Cursor: &surface.Cursor{Style: opts.Style},
		buf:    buf,
		logger: logger.With(opts.Logger, "component", "screen"),
	}, nil
}

// Assert that the screen is in a consistent state.
func (s *Screen) AssertIntegrity() {
	utils.Assert(s.Cursor != nil)
	utils.Assert(s.Cursor.X < s.buf.Width() && s.Cursor.Y < s.buf.Height())
	s.buf.AssertIntegrity()
}

// Buffer returns the cell buffer, the render feed of the whole tree.
func (s *Screen) Buffer() *buffer.Buffer {
	return s.buf
}

func (s *Screen) Width() int  { return s.buf.Width() }
func (s *Screen) Height() int { return s.buf.Height() }

func (s *Screen) Locker() sync.Locker {
	return &s.mu
}

// Scrolls returns how many times the whole buffer scrolled.
func (s *Screen) Scrolls() int {
	return s.scrolls
}

func (s *Screen) Print(text string) {
	surface.WriteText(screenSink{s}, s.Cursor, s.Width(), s.Height(), text, false)
}

func (s *Screen) PrintLine(text string) {
	surface.WriteText(screenSink{s}, s.Cursor, s.Width(), s.Height(), text, true)
}

// Write implements io.Writer. It never fails.
func (s *Screen) Write(p []byte) (int, error) {
	s.Print(surface.Decode(p))
	return len(p), nil
}

func (s *Screen) PrintAt(x, y int, text string) {
	s.PrintAtColor(s.Cursor.Style.Foreground, s.Cursor.Style.Background, x, y, text)
}

// PrintAtColor places the printable runes of text from (x, y) onwards.
// Control and zero-width runes take no cell, as in Print.
func (s *Screen) PrintAtColor(fg, bg style.Color, x, y int, text string) {
	for _, r := range surface.Glyphs(text) {
		s.buf.Place(x, y, r, fg, bg)
		x++
	}
}

func (s *Screen) ScrollRect(r coordinate.Rect) {
	s.buf.ScrollRect(r)
}

func (s *Screen) Clear() {
	s.buf.Clear()
	s.Cursor.Home()
}

func (s *Screen) CursorPosition() coordinate.Point[int] {
	return s.Cursor.Position()
}

func (s *Screen) SetCursorPosition(x, y int) error {
	return s.Cursor.MoveTo(x, y, s.Width(), s.Height())
}

func (s *Screen) Foreground() style.Color     { return s.Cursor.Style.Foreground }
func (s *Screen) SetForeground(c style.Color) { s.Cursor.Style.Foreground = c }
func (s *Screen) Background() style.Color     { return s.Cursor.Style.Background }
func (s *Screen) SetBackground(c style.Color) { s.Cursor.Style.Background = c }

func (s *Screen) State() surface.Cursor {
	return *s.Cursor
}

// Resize changes the buffer size. Content keeps its position and is
// truncated or padded; the cursor is pulled back inside. A scroll still
// pending from a full bottom row is dropped when rows were added: the cursor
// moves onto the first new row instead. On error nothing changes.
func (s *Screen) Resize(cols, rows int) error {
	oldCols, oldRows := s.Width(), s.Height()
	if err := s.buf.Resize(cols, rows); err != nil {
		s.logger.Warn("screen resize rejected", "cols", cols, "rows", rows, "err", err)
		return fmt.Errorf("screen: %w", err)
	}
	s.Cursor.Clamp(cols, rows)
	if s.Cursor.PendingScroll && rows > oldRows {
		s.Cursor.PendingScroll = false
		s.Cursor.Y++
	}
	s.logger.Debug("screen resized",
		"from", fmt.Sprintf("%dx%d", oldCols, oldRows),
		"to", fmt.Sprintf("%dx%d", cols, rows))
	return nil
}

// Lines returns every row of the buffer.
func (s *Screen) Lines() []string {
	return s.buf.Lines()
}

// TrimmedLines returns the written part of the buffer.
func (s *Screen) TrimmedLines() []string {
	return s.buf.TrimmedLines()
}

// screenSink puts the shared write algorithm's output straight into the
// buffer; local and absolute coordinates coincide on the root.
type screenSink struct {
	s *Screen
}

func (k screenSink) Put(x, y int, glyph rune, st style.Style) {
	k.s.buf.Place(x, y, glyph, st.Foreground, st.Background)
}

func (k screenSink) Scroll() {
	k.s.buf.ScrollUp()
	k.s.scrolls++
	k.s.logger.Debug("screen scrolled", "total", k.s.scrolls)
}
