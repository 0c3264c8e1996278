package window

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hnimtadd/termwin/terminal/coordinate"
	"github.com/hnimtadd/termwin/terminal/style"
	"github.com/hnimtadd/termwin/terminal/surface"
)

var _ surface.Surface = &Window{}

// Window is a surface confined to a rectangle of its parent. It keeps its
// own cursor and hands every cell to the parent in the parent's
// coordinates, so windows nest to any depth.
type Window struct {
	parent surface.Surface

	// Top-left cell in parent coordinates.
	origin        coordinate.Point[int]
	width, height int

	cursor *surface.Cursor

	// Receives a copy of everything printed at the cursor. Nil when the
	// window does not echo.
	echo Echo
}

// Echo mirrors text printed in a window into another write stream.
type Echo func(text string, newline bool)

// EchoTo returns an Echo that feeds s's own cursor-relative stream, so s
// scrolls and advances in lockstep with the window.
func EchoTo(s surface.Surface) Echo {
	return func(text string, newline bool) {
		if newline {
			s.PrintLine(text)
			return
		}
		s.Print(text)
	}
}

type config struct {
	style *style.Style
	echo  Echo
}

type Option func(*config)

// WithColors sets the window's initial colours. By default a window starts
// with its parent's current colours.
func WithColors(fg, bg style.Color) Option {
	return func(c *config) {
		st := style.New(fg, bg)
		c.style = &st
	}
}

// WithEcho replaces the echo strategy. It takes precedence over the echo
// flag given to New.
func WithEcho(e Echo) Option {
	return func(c *config) {
		c.echo = e
	}
}

// New creates a width x height window at (x, y) in parent. With echo set
// the window also mirrors its printed text into the parent's own stream.
// The rectangle must fit inside the parent; nothing is created otherwise.
func New(parent surface.Surface, x, y, width, height int, echo bool, opts ...Option) (*Window, error) {
	rect := coordinate.NewRect(x, y, width, height)
	if err := rect.Validate(parent.Width(), parent.Height()); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	cfg := config{}
	if echo {
		cfg.echo = EchoTo(parent)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	st := style.New(parent.Foreground(), parent.Background())
	if cfg.style != nil {
		st = *cfg.style
	}

	return &Window{
		parent: parent,
		origin: rect.Origin(),
		width:  width,
		height: height,
		cursor: &surface.Cursor{Style: st},
		echo:   cfg.echo,
	}, nil
}

// Full creates a non-echoing window covering the whole parent.
func Full(parent surface.Surface, opts ...Option) *Window {
	w, err := New(parent, 0, 0, parent.Width(), parent.Height(), false, opts...)
	if err != nil {
		// a parent always contains its own bounds
		panic(err)
	}
	return w
}

func (w *Window) Parent() surface.Surface { return w.parent }

// Origin returns the top-left cell in parent coordinates.
func (w *Window) Origin() coordinate.Point[int] { return w.origin }

// Rect returns the window's area in parent coordinates.
func (w *Window) Rect() coordinate.Rect {
	return coordinate.NewRect(w.origin.X, w.origin.Y, w.width, w.height)
}

func (w *Window) bounds() coordinate.Rect {
	return coordinate.NewRect(0, 0, w.width, w.height)
}

// Echoing reports whether printed text is mirrored.
func (w *Window) Echoing() bool { return w.echo != nil }

func (w *Window) Width() int  { return w.width }
func (w *Window) Height() int { return w.height }

func (w *Window) Locker() sync.Locker {
	return w.parent.Locker()
}

func (w *Window) Print(text string) {
	surface.WriteText(windowSink{w}, w.cursor, w.width, w.height, text, false)
	if w.echo != nil {
		w.echo(text, false)
	}
}

func (w *Window) PrintLine(text string) {
	surface.WriteText(windowSink{w}, w.cursor, w.width, w.height, text, true)
	if w.echo != nil {
		w.echo(text, true)
	}
}

// Write implements io.Writer. It never fails.
func (w *Window) Write(p []byte) (int, error) {
	w.Print(surface.Decode(p))
	return len(p), nil
}

func (w *Window) PrintAt(x, y int, text string) {
	w.PrintAtColor(w.cursor.Style.Foreground, w.cursor.Style.Background, x, y, text)
}

// PrintAtColor clips text to the window before handing it to the parent,
// so nothing lands outside the window's rectangle.
func (w *Window) PrintAtColor(fg, bg style.Color, x, y int, text string) {
	if y < 0 || y >= w.height {
		return
	}
	runes := surface.Glyphs(text)
	from, to := 0, len(runes)
	if x < 0 {
		from = min(-x, to)
	}
	if x+to > w.width {
		to = max(w.width-x, from)
	}
	if from >= to {
		return
	}
	w.parent.PrintAtColor(fg, bg, w.origin.X+x+from, w.origin.Y+y, string(runes[from:to]))
}

// ScrollRect scrolls r, given in window coordinates and clipped to the
// window, inside the parent.
func (w *Window) ScrollRect(r coordinate.Rect) {
	r = r.Intersect(w.bounds())
	if r.Empty() {
		return
	}
	w.parent.ScrollRect(r.Translate(w.origin.X, w.origin.Y))
}

// Clear blanks the window in its background colour and homes the cursor.
func (w *Window) Clear() {
	blank := strings.Repeat(" ", w.width)
	for y := range w.height {
		w.PrintAtColor(w.cursor.Style.Foreground, w.cursor.Style.Background, 0, y, blank)
	}
	w.cursor.Home()
}

func (w *Window) CursorPosition() coordinate.Point[int] {
	return w.cursor.Position()
}

func (w *Window) SetCursorPosition(x, y int) error {
	return w.cursor.MoveTo(x, y, w.width, w.height)
}

func (w *Window) Foreground() style.Color     { return w.cursor.Style.Foreground }
func (w *Window) SetForeground(c style.Color) { w.cursor.Style.Foreground = c }
func (w *Window) Background() style.Color     { return w.cursor.Style.Background }
func (w *Window) SetBackground(c style.Color) { w.cursor.Style.Background = c }

func (w *Window) State() surface.Cursor {
	return *w.cursor
}

// windowSink translates the shared write algorithm's local coordinates into
// the parent and confines scrolling to the window's own rectangle.
type windowSink struct {
	w *Window
}

func (k windowSink) Put(x, y int, glyph rune, st style.Style) {
	k.w.parent.PrintAtColor(st.Foreground, st.Background, k.w.origin.X+x, k.w.origin.Y+y, string(glyph))
}

func (k windowSink) Scroll() {
	k.w.parent.ScrollRect(k.w.Rect())
}
