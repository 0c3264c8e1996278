package color

import "github.com/hnimtadd/termwin/terminal/utils"

// DefaultPalette is the 256 colour palette: the 16 named colours, the 6x6x6
// cube and the 24 step gray ramp.
var DefaultPalette = func() Palette {
	var result Palette

	var i uint8
	for ; i < 16; i++ {
		result[i] = ColorType(i).defaultRGB()
	}
	utils.Assert(i == 16)

	level := func(v uint8) uint8 {
		if v == 0 {
			return 0
		}
		return v*40 + 55
	}
	var r, g, b uint8
	for r = range 6 {
		for g = range 6 {
			for b = range 6 {
				result[i] = RGB{level(r), level(g), level(b)}
				i++
			}
		}
	}

	// Gray ramp, i wraps to zero after 255.
	utils.Assert(i == 232) // 16+6*6*6
	for ; i > 0; i++ {
		value := (i-232)*10 + 8
		result[i] = RGB{value, value, value}
	}

	return result
}()

// Palette is the 256 color palette.
type Palette [256]RGB

// RGB is a struct that represents an RGB color.
type RGB struct {
	R, G, B uint8
}

// ColorType names one of the 16 console colours. Its value is also the
// colour's palette index.
type ColorType uint8

const (
	ColorTypeBlack ColorType = iota
	ColorTypeRed
	ColorTypeGreen
	ColorTypeYellow
	ColorTypeBlue
	ColorTypeMagenta
	ColorTypeCyan
	ColorTypeWhite
	ColorTypeBrightBlack
	ColorTypeBrightRed
	ColorTypeBrightGreen
	ColorTypeBrightYellow
	ColorTypeBrightBlue
	ColorTypeBrightMagenta
	ColorTypeBrightCyan
	ColorTypeBrightWhite
)

var colorTypeNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"brightblack", "brightred", "brightgreen", "brightyellow",
	"brightblue", "brightmagenta", "brightcyan", "brightwhite",
}

func (c ColorType) String() string {
	if int(c) < len(colorTypeNames) {
		return colorTypeNames[c]
	}
	return "unknown"
}

func (c ColorType) defaultRGB() RGB {
	switch c {
	case ColorTypeBlack:
		return RGB{0x1D, 0x1F, 0x21}
	case ColorTypeRed:
		return RGB{0xCC, 0x66, 0x66}
	case ColorTypeGreen:
		return RGB{0xB5, 0xBD, 0x68}
	case ColorTypeYellow:
		return RGB{0xF0, 0xC6, 0x74}
	case ColorTypeBlue:
		return RGB{0x81, 0xA2, 0xBE}
	case ColorTypeMagenta:
		return RGB{0xB2, 0x94, 0xC7}
	case ColorTypeCyan:
		return RGB{0x8C, 0xC3, 0xE9}
	case ColorTypeWhite:
		return RGB{0xC5, 0xC8, 0xC6}
	case ColorTypeBrightBlack:
		return RGB{0x7C, 0x7C, 0x7C}
	case ColorTypeBrightRed:
		return RGB{0xFF, 0x8F, 0x8F}
	case ColorTypeBrightGreen:
		return RGB{0xB5, 0xBD, 0x68}
	case ColorTypeBrightYellow:
		return RGB{0xF0, 0xC6, 0x74}
	case ColorTypeBrightBlue:
		return RGB{0x81, 0xA2, 0xBE}
	case ColorTypeBrightMagenta:
		return RGB{0xB2, 0x94, 0xC7}
	case ColorTypeBrightCyan:
		return RGB{0x8C, 0xC3, 0xE9}
	case ColorTypeBrightWhite:
		return RGB{0xFF, 0xFF, 0xFF}
	default:
		return RGB{0, 0, 0}
	}
}
