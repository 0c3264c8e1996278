package coordinate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a non-positive size or a region too small
	// for the requested layout.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutOfBounds indicates a region that does not fit inside its owner.
	ErrOutOfBounds = errors.New("region out of bounds")
)

// Rect is a region in its owner's coordinate space. X and Y are the top-left
// cell; Width and Height are counted in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Origin returns the top-left cell.
func (r Rect) Origin() Point[int] {
	return Point[int]{X: r.X, Y: r.Y}
}

// Right returns the column just past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the row just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Within reports whether r lies entirely inside a width x height area
// anchored at (0, 0).
func (r Rect) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= width && r.Bottom() <= height
}

// Intersect returns the overlap of r and o. The result is Empty when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Translate moves r by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// ValidateSize reports ErrInvalidConfig for non-positive dimensions.
func ValidateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("size %dx%d: %w", width, height, ErrInvalidConfig)
	}
	return nil
}

// Validate checks that r has a positive size and fits inside an owner of
// the given size.
func (r Rect) Validate(ownerWidth, ownerHeight int) error {
	if err := ValidateSize(r.Width, r.Height); err != nil {
		return err
	}
	if !r.Within(ownerWidth, ownerHeight) {
		return fmt.Errorf("rect %s in %dx%d: %w", r, ownerWidth, ownerHeight, ErrOutOfBounds)
	}
	return nil
}
