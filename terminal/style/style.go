package style

import (
	"fmt"

	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Style is the colour pair a surface writes with.
type Style struct {
	Foreground Color
	Background Color
}

// New returns a style with the given foreground and background.
func New(fg, bg Color) Style {
	return Style{Foreground: fg, Background: bg}
}

// FG returns the foreground RGB resolved against palette, nil for the
// terminal default.
func (s *Style) FG(palette *color.Palette) *color.RGB {
	return s.Foreground.Resolve(palette)
}

// BG returns the background RGB resolved against palette, nil for the
// terminal default.
func (s *Style) BG(palette *color.Palette) *color.RGB {
	return s.Background.Resolve(palette)
}

func (s *Style) IsDefault() bool {
	return *s == Style{}
}

func (s Style) Hash() uint64 {
	hashed, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash style: %v", err))
	return hashed
}

func (s Style) String() string {
	return fmt.Sprintf("Style{fg: %s, bg: %s}", s.Foreground, s.Background)
}

// The logical colour of a cell. A colour can come from multiple sources so
// we keep the source plus the value; the renderer decides how to paint it.
type Color struct {
	Type    ColorType
	Palette uint8
	RGB     color.RGB
}

// Default is the terminal's own colour.
var Default = Color{Type: ColorTypeNone}

// Named returns the palette colour for one of the 16 console colours.
func Named(c color.ColorType) Color {
	return Color{Type: ColorTypePalette, Palette: uint8(c)}
}

// Indexed returns a 256 palette colour.
func Indexed(idx uint8) Color {
	return Color{Type: ColorTypePalette, Palette: idx}
}

func RGB(r, g, b uint8) Color {
	return Color{Type: ColorTypeRGB, RGB: color.RGB{R: r, G: g, B: b}}
}

// Resolve returns the RGB value of c, nil when c is the default colour.
func (c Color) Resolve(palette *color.Palette) *color.RGB {
	switch c.Type {
	case ColorTypePalette:
		return &palette[c.Palette]
	case ColorTypeRGB:
		rgb := c.RGB
		return &rgb
	default:
		return nil
	}
}

func (c Color) String() string {
	switch c.Type {
	case ColorTypeNone:
		return "Color.none"
	case ColorTypePalette:
		if c.Palette < 16 {
			return fmt.Sprintf("Color.palette{{ %s }}", color.ColorType(c.Palette))
		}
		return fmt.Sprintf("Color.palette{{ %d }}", c.Palette)
	case ColorTypeRGB:
		return fmt.Sprintf("Color.rgb{{ %d, %d, %d }}", c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return "Color.unknown"
	}
}

type ColorType int

const (
	ColorTypeNone ColorType = iota
	ColorTypePalette
	ColorTypeRGB
)
