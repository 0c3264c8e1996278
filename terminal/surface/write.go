package surface

import (
	"github.com/hnimtadd/termwin/terminal/style"
	"github.com/hnimtadd/termwin/terminal/utils"
	dw "github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/unicode"
)

// Sink receives the effects of WriteText. Coordinates are local to the
// surface being written; the sink translates them to its own storage.
type Sink interface {
	// Put stores one glyph at the local position.
	Put(x, y int, glyph rune, st style.Style)
	// Scroll shifts the surface's own rows up by one and blanks the bottom
	// row.
	Scroll()
}

// WriteText runs the write algorithm shared by every surface: each glyph is
// put at the cursor, the cursor advances and wraps as soon as it reaches the
// right edge. Running off the bottom row parks the cursor at the start of
// the last row with a pending scroll that the next glyph or line feed
// performs. With newline set the cursor then moves to the start of the next
// line even if the text did not fill the current one; text that ended by
// wrapping is already on a fresh line and does not advance twice.
//
// A '\n' inside text forces the same line advance. Other runes with no
// display width are dropped: a cell holds exactly one glyph.
func WriteText(sink Sink, c *Cursor, width, height int, text string, newline bool) {
	utils.Assert(width > 0 && height > 0, "surface without area")
	wrapped := false
	for _, r := range text {
		if r == '\n' {
			lineFeed(sink, c, height)
			wrapped = false
			continue
		}
		if !Printable(r) {
			continue
		}
		flushScroll(sink, c)
		sink.Put(c.X, c.Y, r, c.Style)
		c.X++
		wrapped = c.X == width
		if wrapped {
			lineFeed(sink, c, height)
		}
	}
	if newline && !wrapped {
		lineFeed(sink, c, height)
	}
	utils.Assert(c.X < width && c.Y < height, "cursor escaped its surface")
}

// Printable reports whether r occupies a cell. Control and combining runes
// do not.
func Printable(r rune) bool {
	return dw.RuneWidth(r) > 0
}

// Glyphs returns the printable runes of text, one per cell.
func Glyphs(text string) []rune {
	glyphs := make([]rune, 0, len(text))
	for _, r := range text {
		if Printable(r) {
			glyphs = append(glyphs, r)
		}
	}
	return glyphs
}

func lineFeed(sink Sink, c *Cursor, height int) {
	flushScroll(sink, c)
	c.X = 0
	if c.Y+1 == height {
		c.PendingScroll = true
		return
	}
	c.Y++
}

func flushScroll(sink Sink, c *Cursor) {
	if c.PendingScroll {
		sink.Scroll()
		c.PendingScroll = false
	}
}

// Decode turns raw output bytes into text. Invalid UTF-8 sequences become
// U+FFFD so every byte slice is accepted.
func Decode(p []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(p)
	if err != nil {
		return string([]rune(string(p)))
	}
	return string(decoded)
}
