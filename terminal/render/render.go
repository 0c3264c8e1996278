// Package render paints a cell buffer onto a tcell screen.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal/buffer"
	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/style"
)

// Target is the part of tcell.Screen the renderer draws with.
type Target interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Source is the part of tcell.Screen Snapshot reads back from.
type Source interface {
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)
}

type Options struct {
	// TrueColor paints palette colours as the RGB values of Palette instead
	// of leaving them to the terminal's own palette.
	TrueColor bool
	// Palette used in TrueColor mode. Nil means color.DefaultPalette.
	Palette *color.Palette

	Logger logger.Logger
}

// Renderer keeps a target in sync with a buffer. Only rows marked dirty
// are repainted, and a frame whose content hashes the same as the last one
// is skipped entirely.
type Renderer struct {
	target Target

	painted       bool
	digest        uint64
	width, height int

	frames int

	trueColor bool
	palette   *color.Palette
	// Converted styles by style.Style.Hash.
	styles map[uint64]tcell.Style

	logger logger.Logger
}

func New(target Target, opts Options) *Renderer {
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}
	if opts.Palette == nil {
		opts.Palette = &color.DefaultPalette
	}
	return &Renderer{
		target:    target,
		trueColor: opts.TrueColor,
		palette:   opts.Palette,
		styles:    map[uint64]tcell.Style{},
		logger:    opts.Logger,
	}
}

// Frames returns how many frames were shown.
func (r *Renderer) Frames() int { return r.frames }

// Invalidate forces the next Render to repaint every row.
func (r *Renderer) Invalidate() {
	r.painted = false
}

// Render paints buf and shows the target. It reports whether a frame was
// shown. Dirty marks on buf are consumed either way.
func (r *Renderer) Render(buf *buffer.Buffer) bool {
	defer buf.ClearDirty()

	digest := buf.Digest()
	resized := buf.Width() != r.width || buf.Height() != r.height
	if r.painted && !resized && digest == r.digest {
		return false
	}

	full := !r.painted || resized
	rows := 0
	for y := range buf.Height() {
		if !full && !buf.Dirty(y) {
			continue
		}
		for x := range buf.Width() {
			cell, _ := buf.Cell(x, y)
			r.target.SetContent(x, y, cell.Glyph, nil, r.style(style.New(cell.Fg, cell.Bg)))
		}
		rows++
	}
	r.target.Show()

	r.painted = true
	r.digest = digest
	r.width, r.height = buf.Width(), buf.Height()
	r.frames++
	r.logger.Debug("frame shown", "rows", rows, "full", full, "frame", r.frames)
	return true
}

func (r *Renderer) style(st style.Style) tcell.Style {
	if st.IsDefault() {
		return tcell.StyleDefault
	}
	key := st.Hash()
	if ts, ok := r.styles[key]; ok {
		return ts
	}
	ts := Style(st.Foreground, st.Background)
	if r.trueColor {
		ts = tcell.StyleDefault.
			Foreground(rgb(st.FG(r.palette))).
			Background(rgb(st.BG(r.palette)))
	}
	r.styles[key] = ts
	return ts
}

func rgb(c *color.RGB) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Color maps a cell colour to tcell.
func Color(c style.Color) tcell.Color {
	switch c.Type {
	case style.ColorTypePalette:
		return tcell.PaletteColor(int(c.Palette))
	case style.ColorTypeRGB:
		return tcell.NewRGBColor(int32(c.RGB.R), int32(c.RGB.G), int32(c.RGB.B))
	default:
		return tcell.ColorDefault
	}
}

func Style(fg, bg style.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}

// Snapshot reads a width x height area of src back as text, one string per
// row.
func Snapshot(src Source, width, height int) []string {
	lines := make([]string, 0, height)
	var sb strings.Builder
	for y := range height {
		sb.Reset()
		for x := range width {
			r, _, _, _ := src.GetContent(x, y)
			if r == 0 {
				r = buffer.Blank
			}
			sb.WriteRune(r)
		}
		lines = append(lines, sb.String())
	}
	return lines
}
