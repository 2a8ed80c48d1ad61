package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestStreamConvertsLineFeeds(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	s.Write("a\nb\r\nc")
	s.WriteLine("d")
	if got, want := buf.String(), "a\r\nb\r\nc" + "d\r\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStreamCursorMoves(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	s.CursorLeft(0)
	s.CursorRight(0)
	if buf.Len() != 0 {
		t.Fatalf("zero-length moves must not emit sequences, got %q", buf.String())
	}
	s.CursorLeft(3)
	s.CursorRight(1)
	s.MoveCursor(2, 5)
	want := ansi.CursorBackward(3) + ansi.CursorForward(1) + ansi.CursorPosition(5, 2)
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestStreamFitKeepsPositiveDimensions(t *testing.T) {
	s := NewStream(&bytes.Buffer{})
	if r, c := s.Dimensions(); r != DefaultRows || c != DefaultCols {
		t.Fatalf("default dims = %dx%d", r, c)
	}
	s.Fit(30, 0)
	if r, c := s.Dimensions(); r != 30 || c != DefaultCols {
		t.Fatalf("dims after Fit = %dx%d", r, c)
	}
}

func TestStreamApplyTheme(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	th, ok := LookupTheme("Matrix")
	if !ok {
		t.Fatalf("matrix theme missing")
	}
	s.ApplyTheme(th)
	if !strings.Contains(buf.String(), "#00ff00") {
		t.Fatalf("theme colours not written: %q", buf.String())
	}
	if s.Theme().Name != ThemeMatrix {
		t.Fatalf("theme not recorded")
	}
}

type failingWriter struct{ n int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("broken pipe")
}

func TestStreamStopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	s := NewStream(w)
	s.Write("a")
	s.Write("b")
	if s.Err() == nil {
		t.Fatalf("expected error")
	}
	if w.n != 1 {
		t.Fatalf("expected writes to stop after first error, got %d", w.n)
	}
}

func TestPaletteUsesANSI(t *testing.T) {
	p := NewPalette()
	out := p.Error.Render("Permission denied")
	if ansi.Strip(out) != "Permission denied" {
		t.Fatalf("stripped output = %q", ansi.Strip(out))
	}
	if !strings.Contains(out, "31") {
		t.Fatalf("expected red SGR in %q", out)
	}
	if got := ThemeNames(); strings.Join(got, ",") != "dark,light,matrix,cyberpunk" {
		t.Fatalf("theme order = %v", got)
	}
}
