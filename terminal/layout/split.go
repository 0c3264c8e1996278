package layout

import (
	"fmt"

	"github.com/hnimtadd/termwin/terminal/coordinate"
	"github.com/hnimtadd/termwin/terminal/draw"
	"github.com/hnimtadd/termwin/terminal/surface"
	"github.com/hnimtadd/termwin/terminal/window"
)

// frame is one box to draw, corners inclusive.
type frame struct {
	sx, sy, ex, ey int
	title          string
}

type junction struct {
	x, y  int
	glyph func(draw.Glyphs) rune
}

// plan is the geometry of a split, computed before anything is drawn.
type plan struct {
	children  [2]coordinate.Rect
	frames    []frame
	junctions []junction
}

// SplitLeftRight divides parent into a left and a right window. By default
// the halves share one collapsed single-line frame:
//
//	┌───┬───┐
//	│   │   │
//	└───┴───┘
//
// With a frame the interior width is parent width - 3 (collapse) or
// parent width - 5 (separate), divided with the left side getting the
// smaller half.
func SplitLeftRight(parent surface.Surface, opts ...Option) (left, right *window.Window, err error) {
	cfg := newConfig(parent, opts)
	p, err := planLeftRight(parent.Width(), parent.Height(), cfg)
	if err != nil {
		cfg.logger.Debug("split left/right rejected", "err", err)
		return nil, nil, fmt.Errorf("split left/right: %w", err)
	}
	return split(parent, p, cfg)
}

// SplitTopBottom divides parent into a top and a bottom window, the
// vertical counterpart of SplitLeftRight.
func SplitTopBottom(parent surface.Surface, opts ...Option) (top, bottom *window.Window, err error) {
	cfg := newConfig(parent, opts)
	p, err := planTopBottom(parent.Width(), parent.Height(), cfg)
	if err != nil {
		cfg.logger.Debug("split top/bottom rejected", "err", err)
		return nil, nil, fmt.Errorf("split top/bottom: %w", err)
	}
	return split(parent, p, cfg)
}

func tooSmall(w, h, minW, minH int, mode BorderMode) error {
	if w < minW || h < minH {
		return fmt.Errorf("%dx%d region needs at least %dx%d for %s borders: %w",
			w, h, minW, minH, mode, coordinate.ErrInvalidConfig)
	}
	return nil
}

func planLeftRight(w, h int, cfg config) (plan, error) {
	switch cfg.mode {
	case None:
		if err := tooSmall(w, h, 2, 1, cfg.mode); err != nil {
			return plan{}, err
		}
		lw := w / 2
		return plan{children: [2]coordinate.Rect{
			coordinate.NewRect(0, 0, lw, h),
			coordinate.NewRect(lw, 0, w-lw, h),
		}}, nil

	case Separate:
		if err := tooSmall(w, h, 7, 3, cfg.mode); err != nil {
			return plan{}, err
		}
		// one blank column between the two frames
		usable := w - 1
		lo := usable / 2
		ro := usable - lo
		return plan{
			children: [2]coordinate.Rect{
				coordinate.NewRect(0, 0, lo, h).Inset(1),
				coordinate.NewRect(lo+1, 0, ro, h).Inset(1),
			},
			frames: []frame{
				{0, 0, lo - 1, h - 1, cfg.titles[0]},
				{lo + 1, 0, w - 1, h - 1, cfg.titles[1]},
			},
		}, nil

	case Collapse:
		if err := tooSmall(w, h, 5, 3, cfg.mode); err != nil {
			return plan{}, err
		}
		// two outer edges plus the shared divider
		usable := w - 3
		lw := usable / 2
		rw := usable - lw
		return plan{
			children: [2]coordinate.Rect{
				coordinate.NewRect(1, 1, lw, h-2),
				coordinate.NewRect(lw+2, 1, rw, h-2),
			},
			frames: []frame{
				{0, 0, lw + 1, h - 1, cfg.titles[0]},
				{lw + 1, 0, lw + rw + 2, h - 1, cfg.titles[1]},
			},
			junctions: []junction{
				{lw + 1, 0, func(g draw.Glyphs) rune { return g.TeeDown }},
				{lw + 1, h - 1, func(g draw.Glyphs) rune { return g.TeeUp }},
			},
		}, nil
	}
	return plan{}, fmt.Errorf("border mode %d: %w", cfg.mode, coordinate.ErrInvalidConfig)
}

func planTopBottom(w, h int, cfg config) (plan, error) {
	switch cfg.mode {
	case None:
		if err := tooSmall(w, h, 1, 2, cfg.mode); err != nil {
			return plan{}, err
		}
		th := h / 2
		return plan{children: [2]coordinate.Rect{
			coordinate.NewRect(0, 0, w, th),
			coordinate.NewRect(0, th, w, h-th),
		}}, nil

	case Separate:
		if err := tooSmall(w, h, 3, 7, cfg.mode); err != nil {
			return plan{}, err
		}
		usable := h - 1
		to := usable / 2
		bo := usable - to
		return plan{
			children: [2]coordinate.Rect{
				coordinate.NewRect(0, 0, w, to).Inset(1),
				coordinate.NewRect(0, to+1, w, bo).Inset(1),
			},
			frames: []frame{
				{0, 0, w - 1, to - 1, cfg.titles[0]},
				{0, to + 1, w - 1, h - 1, cfg.titles[1]},
			},
		}, nil

	case Collapse:
		if err := tooSmall(w, h, 3, 5, cfg.mode); err != nil {
			return plan{}, err
		}
		usable := h - 3
		th := usable / 2
		bh := usable - th
		return plan{
			children: [2]coordinate.Rect{
				coordinate.NewRect(1, 1, w-2, th),
				coordinate.NewRect(1, th+2, w-2, bh),
			},
			frames: []frame{
				{0, 0, w - 1, th + 1, cfg.titles[0]},
				{0, th + 1, w - 1, th + bh + 2, cfg.titles[1]},
			},
			junctions: []junction{
				{0, th + 1, func(g draw.Glyphs) rune { return g.TeeRight }},
				{w - 1, th + 1, func(g draw.Glyphs) rune { return g.TeeLeft }},
			},
		}, nil
	}
	return plan{}, fmt.Errorf("border mode %d: %w", cfg.mode, coordinate.ErrInvalidConfig)
}

// split checks the children fit, draws the frames under the structural
// lock and builds the two windows.
func split(parent surface.Surface, p plan, cfg config) (*window.Window, *window.Window, error) {
	for _, r := range p.children {
		if err := r.Validate(parent.Width(), parent.Height()); err != nil {
			return nil, nil, fmt.Errorf("split: %w", err)
		}
	}

	if len(p.frames) > 0 {
		glyphs := draw.GlyphsFor(cfg.thickness)
		draw.New(parent).WithColors(cfg.fg, cfg.bg).Do(func(b *draw.Batch) {
			for _, f := range p.frames {
				b.Box(f.sx, f.sy, f.ex, f.ey, f.title, cfg.thickness)
			}
			for _, j := range p.junctions {
				b.Junction(j.x, j.y, j.glyph(glyphs))
			}
		})
	}

	var children [2]*window.Window
	for i, r := range p.children {
		w, err := window.New(parent, r.X, r.Y, r.Width, r.Height, false,
			window.WithColors(cfg.fg, cfg.bg))
		if err != nil {
			return nil, nil, fmt.Errorf("split: %w", err)
		}
		children[i] = w
	}

	cfg.logger.Debug("split",
		"mode", cfg.mode.String(),
		"thickness", cfg.thickness.String(),
		"fg", cfg.fg.String(),
		"first", p.children[0].String(),
		"second", p.children[1].String())
	return children[0], children[1], nil
}
