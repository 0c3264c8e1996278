package draw

// Thickness selects the line style of a border.
type Thickness int

const (
	Single Thickness = iota
	Double
)

func (t Thickness) String() string {
	switch t {
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// Glyphs is the set of box-drawing runes for one thickness.
type Glyphs struct {
	Horizontal, Vertical                       rune
	TopLeft, TopRight, BottomLeft, BottomRight rune
	TeeDown, TeeUp, TeeRight, TeeLeft          rune
}

var (
	singleGlyphs = Glyphs{
		Horizontal: '─', Vertical: '│',
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		TeeDown: '┬', TeeUp: '┴', TeeRight: '├', TeeLeft: '┤',
	}
	doubleGlyphs = Glyphs{
		Horizontal: '═', Vertical: '║',
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
		TeeDown: '╦', TeeUp: '╩', TeeRight: '╠', TeeLeft: '╣',
	}
)

// GlyphsFor returns the glyph set of t. Unknown thicknesses fall back to
// single lines.
func GlyphsFor(t Thickness) Glyphs {
	if t == Double {
		return doubleGlyphs
	}
	return singleGlyphs
}
