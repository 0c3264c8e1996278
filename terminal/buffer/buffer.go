package buffer

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hnimtadd/termwin/terminal/coordinate"
	"github.com/hnimtadd/termwin/terminal/style"
	"github.com/hnimtadd/termwin/terminal/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Blank is the glyph of an unwritten cell.
const Blank = ' '

// Cell is one character position in the grid.
type Cell struct {
	Glyph rune
	Fg    style.Color
	Bg    style.Color
}

// Row is a fixed width run of cells.
type Row []Cell

func (r Row) String() string {
	var sb strings.Builder
	sb.Grow(len(r))
	for _, c := range r {
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}

// Buffer is the grid every surface in a tree renders into. Every row has
// exactly width cells and there are exactly height rows at all times.
type Buffer struct {
	rows          []Row
	width, height int

	// The cell used for new and cleared positions.
	fill Cell

	// One bit per row, set when the row changed since the last ClearDirty.
	// Dirty tracking may have false positives but never false negatives.
	dirty *utils.StaticBitSet
}

// New creates a width x height buffer filled with blank cells in the
// default colours.
func New(width, height int) (*Buffer, error) {
	return NewWithFill(width, height, Cell{Glyph: Blank})
}

// NewWithFill creates a buffer whose blank positions use fill.
func NewWithFill(width, height int, fill Cell) (*Buffer, error) {
	if err := coordinate.ValidateSize(width, height); err != nil {
		return nil, fmt.Errorf("buffer: %w", err)
	}
	return &Buffer{
		rows:   makeRows(width, height, fill),
		width:  width,
		height: height,
		fill:   fill,
		dirty:  utils.NewStaticBitSetFull(height),
	}, nil
}

func makeRows(width, height int, fill Cell) []Row {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = fill
	}
	rows := make([]Row, height)
	for y := range rows {
		rows[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}
	return rows
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Bounds returns the buffer's area as a rectangle anchored at (0, 0).
func (b *Buffer) Bounds() coordinate.Rect {
	return coordinate.NewRect(0, 0, b.width, b.height)
}

// Place writes one cell. Positions outside the grid are silently dropped so
// that drawing near the edges never fails.
func (b *Buffer) Place(x, y int, glyph rune, fg, bg style.Color) {
	if !b.Bounds().Contains(x, y) {
		return
	}
	b.rows[y][x] = Cell{Glyph: glyph, Fg: fg, Bg: bg}
	b.dirty.Set(y)
}

// Cell returns the cell at (x, y), false when outside the grid.
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	if !b.Bounds().Contains(x, y) {
		return Cell{}, false
	}
	return b.rows[y][x], true
}

// Row returns the text of row y, empty when outside the grid.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return b.rows[y].String()
}

// ScrollUp discards row 0, moves every other row up by one and leaves a
// blank row at the bottom.
func (b *Buffer) ScrollUp() {
	// Rotate so the old top row becomes the new bottom row, then blank it.
	// [ 0 1 2 3 ] => [ 1 2 3 0 ]
	utils.RotateOnce(b.rows)
	b.clearRow(b.rows[b.height-1], 0, b.width)
	b.dirty.SetRange(0, b.height)
}

// ScrollRect scrolls only the cells inside r up by one row and blanks r's
// bottom row. Cells outside r are untouched, so sibling regions sharing the
// same rows keep their content. r is clipped to the grid.
func (b *Buffer) ScrollRect(r coordinate.Rect) {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return
	}
	if r.X == 0 && r.Width == b.width && r.Y == 0 && r.Height == b.height {
		b.ScrollUp()
		return
	}
	for y := r.Y; y < r.Bottom()-1; y++ {
		copy(b.rows[y][r.X:r.Right()], b.rows[y+1][r.X:r.Right()])
	}
	b.clearRow(b.rows[r.Bottom()-1], r.X, r.Right())
	b.dirty.SetRange(r.Y, r.Bottom())
}

// ClearRect blanks every cell inside r, clipped to the grid.
func (b *Buffer) ClearRect(r coordinate.Rect) {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		b.clearRow(b.rows[y], r.X, r.Right())
	}
	b.dirty.SetRange(r.Y, r.Bottom())
}

// Clear blanks the whole grid.
func (b *Buffer) Clear() {
	b.ClearRect(b.Bounds())
}

func (b *Buffer) clearRow(row Row, from, to int) {
	for x := from; x < to; x++ {
		row[x] = b.fill
	}
}

// Resize changes the grid size. Existing cells keep their position, new
// cells are blank and cells past the new edges are dropped. The new grid is
// built before it replaces the old one, so on error the buffer is unchanged.
func (b *Buffer) Resize(width, height int) error {
	if err := coordinate.ValidateSize(width, height); err != nil {
		return fmt.Errorf("buffer: resize: %w", err)
	}
	rows := makeRows(width, height, b.fill)
	for y := range min(height, b.height) {
		copy(rows[y], b.rows[y])
	}
	b.rows = rows
	b.width = width
	b.height = height
	b.dirty = utils.NewStaticBitSetFull(height)
	return nil
}

// Rows yields the text of every row, top to bottom. Each string is exactly
// width glyphs long. The sequence is lazy and can be ranged over again to
// observe later changes.
func (b *Buffer) Rows() iter.Seq[string] {
	return func(yield func(string) bool) {
		for y := 0; y < b.height; y++ {
			if !yield(b.rows[y].String()) {
				return
			}
		}
	}
}

// Lines returns every row as a string.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.height)
	for line := range b.Rows() {
		lines = append(lines, line)
	}
	return lines
}

// TrimmedLines returns the rows with trailing blanks removed and trailing
// empty rows dropped: the part of the buffer that has been written to.
func (b *Buffer) TrimmedLines() []string {
	lines := b.Lines()
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, string(b.fill.Glyph))
	}
	last := len(lines)
	for last > 0 && lines[last-1] == "" {
		last--
	}
	return lines[:last]
}

// Dirty reports whether row y changed since the last ClearDirty.
func (b *Buffer) Dirty(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	return b.dirty.IsSet(y)
}

// DirtyCount returns the number of dirty rows.
func (b *Buffer) DirtyCount() int {
	return b.dirty.Count()
}

func (b *Buffer) ClearDirty() {
	b.dirty.Clear()
}

// Digest hashes the grid contents. Two buffers with equal cells have equal
// digests.
func (b *Buffer) Digest() uint64 {
	hashed, err := hashstructure.Hash(b.rows, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash buffer: %v", err))
	return hashed
}

// AssertIntegrity panics when the grid is jagged.
func (b *Buffer) AssertIntegrity() {
	utils.Assert(len(b.rows) == b.height, "buffer integrity violation row count")
	for _, row := range b.rows {
		utils.Assert(len(row) == b.width, "buffer integrity violation row width")
	}
	utils.Assert(b.dirty.Size() == b.height, "buffer integrity violation dirty size")
}
