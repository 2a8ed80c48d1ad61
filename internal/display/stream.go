// Package display implements the character-grid surface the terminal core
// writes to, as an ANSI stream over any io.Writer.
package display

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	DefaultRows = 20
	DefaultCols = 80
)

// Stream writes ANSI sequences to w. Line feeds are expanded to CRLF so the
// output is correct on raw-mode terminals.
type Stream struct {
	w        io.Writer
	rows     int
	cols     int
	theme    Theme
	fontSize int
	err      error
}

// NewStream returns a stream with the default 20x80 grid.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w, rows: DefaultRows, cols: DefaultCols}
}

func (s *Stream) Write(text string) {
	if text == "" {
		return
	}
	s.raw(convertEOL(text))
}

func (s *Stream) WriteLine(text string) {
	s.raw(convertEOL(text) + "\r\n")
}

// Clear erases the screen and homes the cursor.
func (s *Stream) Clear() {
	s.raw(ansi.EraseEntireScreen + ansi.CursorHomePosition)
}

// EraseLine erases the current line and returns to column 1.
func (s *Stream) EraseLine() {
	s.raw(ansi.EraseEntireLine + "\r")
}

// MoveCursor positions the cursor at a 1-based row and column.
func (s *Stream) MoveCursor(row, col int) {
	s.raw(ansi.CursorPosition(col, row))
}

func (s *Stream) CursorLeft(n int) {
	if n > 0 {
		s.raw(ansi.CursorBackward(n))
	}
}

func (s *Stream) CursorRight(n int) {
	if n > 0 {
		s.raw(ansi.CursorForward(n))
	}
}

// Dimensions returns the grid size as rows, columns.
func (s *Stream) Dimensions() (int, int) {
	return s.rows, s.cols
}

// Fit records a new grid size; non-positive values keep the current one.
func (s *Stream) Fit(rows, cols int) {
	if rows > 0 {
		s.rows = rows
	}
	if cols > 0 {
		s.cols = cols
	}
}

// ApplyTheme sets the terminal's default colours through OSC 10/11/12.
func (s *Stream) ApplyTheme(t Theme) {
	s.theme = t
	s.raw(ansi.SetForegroundColor(t.Foreground) +
		ansi.SetBackgroundColor(t.Background) +
		ansi.SetCursorColor(t.Cursor))
}

// Theme returns the last applied theme.
func (s *Stream) Theme() Theme {
	return s.theme
}

// Refresh is a no-op: a stream has nothing cached to repaint.
func (s *Stream) Refresh() {}

// SetFontSize records the requested glyph size. Plain terminals own their font,
// so nothing is written.
func (s *Stream) SetFontSize(px int) {
	s.fontSize = px
}

// FontSize returns the last requested font size.
func (s *Stream) FontSize() int {
	return s.fontSize
}

// Err returns the first write error, if any.
func (s *Stream) Err() error {
	return s.err
}

// Close closes the underlying writer when it is closable.
func (s *Stream) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Stream) raw(seq string) {
	if s.err != nil {
		return
	}
	if _, err := io.WriteString(s.w, seq); err != nil {
		s.err = err
	}
}

func convertEOL(text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", "\r\n")
}
