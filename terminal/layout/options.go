package layout

import (
	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal/draw"
	"github.com/hnimtadd/termwin/terminal/style"
	"github.com/hnimtadd/termwin/terminal/surface"
)

// BorderMode selects how the two halves of a split are framed.
type BorderMode int

const (
	// Collapse draws one frame with a shared divider.
	Collapse BorderMode = iota
	// Separate draws two independent frames with a blank gap between them.
	Separate
	// None draws nothing; the halves touch.
	None
)

func (m BorderMode) String() string {
	switch m {
	case Collapse:
		return "collapse"
	case Separate:
		return "separate"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

type config struct {
	titles    [2]string
	thickness draw.Thickness
	mode      BorderMode
	fg, bg    style.Color
	logger    logger.Logger
}

type Option func(*config)

// WithTitles sets the titles drawn in the top edge of the first (left or
// top) and second (right or bottom) frame.
func WithTitles(first, second string) Option {
	return func(c *config) {
		c.titles = [2]string{first, second}
	}
}

func WithThickness(t draw.Thickness) Option {
	return func(c *config) {
		c.thickness = t
	}
}

func WithBorder(m BorderMode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithColors sets the border colours and the children's initial colours.
// By default both follow the parent's current colours.
func WithColors(fg, bg style.Color) Option {
	return func(c *config) {
		c.fg = fg
		c.bg = bg
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(parent surface.Surface, opts []Option) config {
	cfg := config{
		thickness: draw.Single,
		mode:      Collapse,
		fg:        parent.Foreground(),
		bg:        parent.Background(),
		logger:    logger.DefaultLogger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
