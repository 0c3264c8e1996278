package screen

import (
	"fmt"
	"testing"

	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/coordinate"
	"github.com/hnimtadd/termwin/terminal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T, cols, rows int) *Screen {
	t.Helper()
	s, err := NewScreen(cols, rows, Options{Logger: logger.Discard})
	require.NoError(t, err)
	return s
}

func TestNewScreen_InvalidSize(t *testing.T) {
	s, err := NewScreen(0, 10, Options{Logger: logger.Discard})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, coordinate.ErrInvalidConfig)
}

func TestScreen_WriteEndingAtEndOfLineMovesToNextLine(t *testing.T) {
	s := newTestScreen(t, 6, 3)
	s.Print("123456")
	s.Print("ABCDEF")
	s.Print("XY    ")

	assert.Equal(t, []string{"123456", "ABCDEF", "XY    "}, s.Lines())
	assert.Zero(t, s.Scrolls())
	s.AssertIntegrity()
}

func TestScreen_CursorAfterExactFill(t *testing.T) {
	s := newTestScreen(t, 6, 3)
	s.Print("123")
	assert.Equal(t, coordinate.NewPoint(3, 0), s.CursorPosition())
	s.Print("456")
	assert.Equal(t, coordinate.NewPoint(0, 1), s.CursorPosition())
}

func TestScreen_PrintLineMovesToNextLine(t *testing.T) {
	s := newTestScreen(t, 80, 20)
	s.PrintLine("line1")
	s.Print("This ")
	s.Print("is ")
	s.PrintLine("a test line.")
	s.PrintLine("line 3")

	assert.Equal(t, []string{"line1", "This is a test line.", "line 3"}, s.TrimmedLines())
	assert.Equal(t, coordinate.NewPoint(0, 3), s.CursorPosition())
}

func TestScreen_ScrollsWhenOutputContinuesPastBottom(t *testing.T) {
	s := newTestScreen(t, 3, 2)
	s.PrintLine("a")
	s.PrintLine("b")
	s.PrintLine("c")

	assert.Equal(t, []string{"b  ", "c  "}, s.Lines())
	assert.Equal(t, 1, s.Scrolls())
	assert.True(t, s.Cursor.PendingScroll)
	assert.Equal(t, coordinate.NewPoint(0, 1), s.CursorPosition())
}

func TestScreen_RowCountAndWidthInvariant(t *testing.T) {
	s := newTestScreen(t, 7, 4)
	for i := range 50 {
		s.Print(fmt.Sprintf("chunk-%d ", i))
		if i%3 == 0 {
			s.PrintLine("")
		}
	}
	lines := s.Lines()
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Len(t, []rune(line), 7)
	}
	s.AssertIntegrity()
}

func TestScreen_PrintAtClipsAndKeepsCursor(t *testing.T) {
	s := newTestScreen(t, 4, 2)
	s.Print("ab")

	s.PrintAt(2, 1, "xyz")
	s.PrintAt(-1, 0, "QR")
	s.PrintAt(0, 5, "nope")

	assert.Equal(t, []string{"Rb  ", "  xy"}, s.Lines())
	assert.Equal(t, coordinate.NewPoint(2, 0), s.CursorPosition())
}

func TestScreen_PrintAtDropsZeroWidthRunes(t *testing.T) {
	s := newTestScreen(t, 4, 1)
	s.PrintAt(0, 0, "a\nb\u0301c")
	assert.Equal(t, []string{"abc "}, s.Lines())
	assert.Equal(t, coordinate.NewPoint(0, 0), s.CursorPosition())
}

func TestScreen_PrintAtUsesCurrentColours(t *testing.T) {
	s := newTestScreen(t, 3, 1)
	red := style.Named(color.ColorTypeRed)
	white := style.Named(color.ColorTypeWhite)
	s.SetForeground(red)
	s.SetBackground(white)
	s.PrintAt(0, 0, "X")

	cell, ok := s.Buffer().Cell(0, 0)
	require.True(t, ok)
	assert.Equal(t, red, cell.Fg)
	assert.Equal(t, white, cell.Bg)
	assert.Equal(t, red, s.Foreground())
	assert.Equal(t, white, s.Background())
}

func TestScreen_WriterDecodesBytes(t *testing.T) {
	s := newTestScreen(t, 5, 1)
	n, err := fmt.Fprintf(s, "h%s", "é")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"hé   "}, s.Lines())
}

func TestScreen_SetCursorPosition(t *testing.T) {
	s := newTestScreen(t, 4, 2)
	require.NoError(t, s.SetCursorPosition(3, 1))
	s.Print("x")
	assert.Equal(t, []string{"    ", "   x"}, s.Lines())

	assert.ErrorIs(t, s.SetCursorPosition(4, 0), coordinate.ErrOutOfBounds)
}

func TestScreen_Resize(t *testing.T) {
	s := newTestScreen(t, 5, 3)
	s.PrintLine("abcd")
	s.PrintLine("efgh")
	s.Print("ij")

	require.NoError(t, s.Resize(2, 2))
	assert.Equal(t, []string{"ab", "ef"}, s.Lines())
	assert.Equal(t, coordinate.NewPoint(1, 1), s.CursorPosition())
	s.AssertIntegrity()

	err := s.Resize(-1, 2)
	assert.ErrorIs(t, err, coordinate.ErrInvalidConfig)
	assert.Equal(t, []string{"ab", "ef"}, s.Lines())
}

func TestScreen_GrowingConsumesPendingScroll(t *testing.T) {
	s := newTestScreen(t, 3, 2)
	s.Print("abcdef")
	require.True(t, s.Cursor.PendingScroll)

	require.NoError(t, s.Resize(3, 4))
	assert.False(t, s.Cursor.PendingScroll)
	assert.Equal(t, coordinate.NewPoint(0, 2), s.CursorPosition())

	s.Print("Z")
	assert.Equal(t, []string{"abc", "def", "Z  ", "   "}, s.Lines())
	assert.Zero(t, s.Scrolls())
}

func TestScreen_ShrinkingKeepsPendingScroll(t *testing.T) {
	s := newTestScreen(t, 3, 2)
	s.Print("abcdef")

	require.NoError(t, s.Resize(2, 2))
	assert.True(t, s.Cursor.PendingScroll)
	s.Print("Z")
	assert.Equal(t, []string{"de", "Z "}, s.Lines())
}

func TestScreen_Clear(t *testing.T) {
	s := newTestScreen(t, 3, 2)
	s.PrintLine("abc")
	s.Clear()
	assert.Empty(t, s.TrimmedLines())
	assert.Equal(t, coordinate.NewPoint(0, 0), s.CursorPosition())
}

func TestScreen_LockerIsShared(t *testing.T) {
	s := newTestScreen(t, 3, 2)
	assert.Same(t, s.Locker(), s.Locker())
}
