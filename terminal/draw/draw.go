// Package draw paints box-drawing structures onto a surface. Every multi-cell
// sequence runs under the surface tree's structural lock so two structures
// drawn at the same time never interleave.
package draw

import (
	"strings"

	"github.com/hnimtadd/termwin/terminal/style"
	"github.com/hnimtadd/termwin/terminal/surface"
	dw "github.com/mattn/go-runewidth"
)

// Drawer draws onto one surface in fixed colours.
type Drawer struct {
	s      surface.Surface
	fg, bg style.Color
}

// New returns a drawer using the surface's current colours.
func New(s surface.Surface) *Drawer {
	return &Drawer{s: s, fg: s.Foreground(), bg: s.Background()}
}

// WithColors returns a copy of d drawing in fg and bg.
func (d *Drawer) WithColors(fg, bg style.Color) *Drawer {
	return &Drawer{s: d.s, fg: fg, bg: bg}
}

// Do runs fn while holding the structural lock. Batch methods must not be
// used outside fn.
func (d *Drawer) Do(fn func(b *Batch)) {
	l := d.s.Locker()
	l.Lock()
	defer l.Unlock()
	fn(&Batch{s: d.s, fg: d.fg, bg: d.bg})
}

// Box draws a single box under the structural lock. See Batch.Box.
func (d *Drawer) Box(sx, sy, ex, ey int, title string, t Thickness) {
	d.Do(func(b *Batch) {
		b.Box(sx, sy, ex, ey, title, t)
	})
}

// Batch draws without locking; it only exists inside Drawer.Do.
type Batch struct {
	s      surface.Surface
	fg, bg style.Color
}

func (b *Batch) put(x, y int, r rune) {
	b.s.PrintAtColor(b.fg, b.bg, x, y, string(r))
}

// Box draws a frame whose corners are (sx, sy) and (ex, ey), both
// inclusive. A non-empty title is centred in the top edge.
func (b *Batch) Box(sx, sy, ex, ey int, title string, t Thickness) {
	if ex <= sx || ey <= sy {
		return
	}
	g := GlyphsFor(t)
	b.HLine(sx+1, sy, ex-1, t)
	b.HLine(sx+1, ey, ex-1, t)
	b.VLine(sx, sy+1, ey-1, t)
	b.VLine(ex, sy+1, ey-1, t)
	b.put(sx, sy, g.TopLeft)
	b.put(ex, sy, g.TopRight)
	b.put(sx, ey, g.BottomLeft)
	b.put(ex, ey, g.BottomRight)
	b.Title(sx, ex, sy, title)
}

// Title centres " title " between columns sx and ex (exclusive) on row y,
// truncating it when it does not fit.
func (b *Batch) Title(sx, ex, y int, title string) {
	inner := ex - sx - 1
	if title == "" || inner < 3 {
		return
	}
	text := " " + dw.Truncate(title, inner-2, "…") + " "
	n := len([]rune(text))
	b.s.PrintAtColor(b.fg, b.bg, sx+1+(inner-n)/2, y, text)
}

// HLine draws a horizontal edge from column sx to ex inclusive.
func (b *Batch) HLine(sx, y, ex int, t Thickness) {
	if ex < sx {
		return
	}
	line := strings.Repeat(string(GlyphsFor(t).Horizontal), ex-sx+1)
	b.s.PrintAtColor(b.fg, b.bg, sx, y, line)
}

// VLine draws a vertical edge from row sy to ey inclusive.
func (b *Batch) VLine(x, sy, ey int, t Thickness) {
	v := GlyphsFor(t).Vertical
	for y := sy; y <= ey; y++ {
		b.put(x, y, v)
	}
}

// Junction overwrites the cell at (x, y) with r. Stamping a tee over the
// point where two boxes meet fuses them into one frame.
func (b *Batch) Junction(x, y int, r rune) {
	b.put(x, y, r)
}
