package draw

import (
	"testing"
	"time"

	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/screen"
	"github.com/hnimtadd/termwin/terminal/style"
	"github.com/hnimtadd/termwin/terminal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T, cols, rows int) *screen.Screen {
	t.Helper()
	s, err := screen.NewScreen(cols, rows, screen.Options{Logger: logger.Discard})
	require.NoError(t, err)
	return s
}

func TestBox_Single(t *testing.T) {
	s := newTestScreen(t, 5, 3)
	New(s).Box(0, 0, 4, 2, "", Single)

	assert.Equal(t, []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}, s.Lines())
}

func TestBox_DoubleWithTitle(t *testing.T) {
	s := newTestScreen(t, 12, 3)
	New(s).Box(0, 0, 11, 2, "log", Double)

	assert.Equal(t, []string{
		"╔══ log ═══╗",
		"║          ║",
		"╚══════════╝",
	}, s.Lines())
}

func TestBox_TitleTruncated(t *testing.T) {
	s := newTestScreen(t, 8, 2)
	New(s).Box(0, 0, 7, 1, "overflowing", Single)

	assert.Equal(t, []string{
		"┌ ove… ┐",
		"└──────┘",
	}, s.Lines())
}

func TestBox_DegenerateIsIgnored(t *testing.T) {
	s := newTestScreen(t, 3, 3)
	New(s).Box(2, 0, 1, 2, "", Single)
	assert.Empty(t, s.TrimmedLines())
}

func TestBox_ClipsAtEdges(t *testing.T) {
	s := newTestScreen(t, 3, 2)
	assert.NotPanics(t, func() {
		New(s).Box(1, 0, 5, 4, "", Single)
	})
	assert.Equal(t, []string{" ┌─", " │ "}, s.Lines())
}

func TestBatch_JunctionMergesBoxes(t *testing.T) {
	s := newTestScreen(t, 7, 3)
	New(s).Do(func(b *Batch) {
		b.Box(0, 0, 3, 2, "", Single)
		b.Box(3, 0, 6, 2, "", Single)
		b.Junction(3, 0, GlyphsFor(Single).TeeDown)
		b.Junction(3, 2, GlyphsFor(Single).TeeUp)
	})

	assert.Equal(t, []string{
		"┌──┬──┐",
		"│  │  │",
		"└──┴──┘",
	}, s.Lines())
}

func TestDrawer_UsesColours(t *testing.T) {
	s := newTestScreen(t, 3, 3)
	blue := style.Named(color.ColorTypeBlue)
	New(s).WithColors(blue, style.Default).Box(0, 0, 2, 2, "", Single)

	cell, ok := s.Buffer().Cell(2, 2)
	require.True(t, ok)
	assert.Equal(t, '┘', cell.Glyph)
	assert.Equal(t, blue, cell.Fg)
}

func TestDrawer_InsideWindow(t *testing.T) {
	s := newTestScreen(t, 6, 4)
	w, err := window.New(s, 1, 1, 4, 3, false)
	require.NoError(t, err)
	New(w).Box(0, 0, 3, 2, "", Single)

	assert.Equal(t, []string{
		"      ",
		" ┌──┐ ",
		" │  │ ",
		" └──┘ ",
	}, s.Lines())
}

func TestDrawer_HoldsStructuralLock(t *testing.T) {
	s := newTestScreen(t, 4, 3)
	w := window.Full(s)

	s.Locker().Lock()
	done := make(chan struct{})
	go func() {
		defer close(done)
		New(w).Box(0, 0, 3, 2, "", Single)
	}()

	select {
	case <-done:
		t.Fatal("box drawn while the structural lock was held")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Empty(t, s.TrimmedLines())

	s.Locker().Unlock()
	<-done
	assert.Equal(t, "┌──┐", s.Lines()[0])
}

func TestThickness_String(t *testing.T) {
	assert.Equal(t, "single", Single.String())
	assert.Equal(t, "double", Double.String())
	assert.Equal(t, '║', GlyphsFor(Double).Vertical)
	assert.Equal(t, '│', GlyphsFor(Thickness(9)).Vertical)
}
