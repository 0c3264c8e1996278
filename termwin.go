package termwin

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal/layout"
	"github.com/hnimtadd/termwin/terminal/render"
	"github.com/hnimtadd/termwin/terminal/screen"
	"github.com/hnimtadd/termwin/terminal/style"
	"github.com/hnimtadd/termwin/terminal/window"
	"golang.org/x/term"
)

const (
	DefaultCols = 80
	DefaultRows = 25
)

// Console is a root screen plus the renderer that shows it. Windows and
// splits created from it all write into the same buffer.
type Console struct {
	screen *screen.Screen

	// The renderer is bound to the last target passed to Render.
	target   render.Target
	renderer *render.Renderer

	trueColor bool

	logger logger.Logger
}

type Options struct {
	// Size in cells. Zero means the default 80x25.
	Cols, Rows int

	// Colours the root screen starts with.
	Foreground, Background style.Color

	// Render palette colours as RGB from color.DefaultPalette.
	TrueColor bool

	Logger logger.Logger
}

// Initialize a console with a blank buffer.
func NewConsole(opts Options) (*Console, error) {
	if opts.Cols == 0 {
		opts.Cols = DefaultCols
	}
	if opts.Rows == 0 {
		opts.Rows = DefaultRows
	}
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}

	scr, err := screen.NewScreen(opts.Cols, opts.Rows, screen.Options{
		Style:  style.New(opts.Foreground, opts.Background),
		Logger: opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	return &Console{screen: scr, trueColor: opts.TrueColor, logger: opts.Logger}, nil
}

// TerminalSize returns the size of the terminal on fd, for use as
// Options.Cols and Options.Rows.
func TerminalSize(fd int) (cols, rows int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("fd %d is not a terminal", fd)
	}
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return cols, rows, nil
}

// Screen returns the root surface.
func (c *Console) Screen() *screen.Screen {
	return c.screen
}

// Window creates a window at (x, y) of the root screen.
func (c *Console) Window(x, y, width, height int, echo bool, opts ...window.Option) (*window.Window, error) {
	return window.New(c.screen, x, y, width, height, echo, opts...)
}

// SplitLeftRight splits the whole screen. Splits log to the console's
// logger unless opts say otherwise.
func (c *Console) SplitLeftRight(opts ...layout.Option) (*window.Window, *window.Window, error) {
	return layout.SplitLeftRight(c.screen, c.splitOptions(opts)...)
}

// SplitTopBottom splits the whole screen. See SplitLeftRight.
func (c *Console) SplitTopBottom(opts ...layout.Option) (*window.Window, *window.Window, error) {
	return layout.SplitTopBottom(c.screen, c.splitOptions(opts)...)
}

func (c *Console) splitOptions(opts []layout.Option) []layout.Option {
	return append([]layout.Option{layout.WithLogger(c.logger)}, opts...)
}

// Resize changes the size of the root screen. Windows created before keep
// their geometry.
func (c *Console) Resize(cols, rows int) error {
	lock := c.screen.Locker()
	lock.Lock()
	defer lock.Unlock()
	return c.screen.Resize(cols, rows)
}

// Render shows the buffer on target, skipping the frame when nothing
// changed. It holds the structural lock so a frame never contains half a
// border.
func (c *Console) Render(target render.Target) bool {
	lock := c.screen.Locker()
	lock.Lock()
	defer lock.Unlock()

	if c.renderer == nil || c.target != target {
		c.target = target
		c.renderer = render.New(target, render.Options{
			TrueColor: c.trueColor,
			Logger:    c.logger,
		})
	}
	return c.renderer.Render(c.screen.Buffer())
}

// Write implements io.Writer on the root screen's cursor stream.
func (c *Console) Write(p []byte) (int, error) {
	return c.screen.Write(p)
}

// DumpString returns the written part of the buffer as text.
func (c *Console) DumpString() string {
	return strings.Join(c.screen.TrimmedLines(), "\n")
}
