package terminal

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// HandleKey applies one key event to the input line. It must run on the
// session's scheduler.
func (t *Terminal) HandleKey(ev KeyEvent) {
	if !t.mounted {
		return
	}
	line := &t.state.Line
	switch ev.Key {
	case KeyEnter:
		t.submit()
	case KeyBackspace:
		if line.Cursor == 0 {
			return
		}
		line.Buf = append(line.Buf[:line.Cursor-1], line.Buf[line.Cursor:]...)
		line.Cursor--
		t.refreshSuggestion()
		t.redraw()
	case KeyLeft:
		if line.Cursor == 0 {
			return
		}
		line.Cursor--
		if !t.effectActive() {
			t.display.CursorLeft(runewidth.RuneWidth(line.Buf[line.Cursor]))
		}
	case KeyRight:
		if t.state.Suggestion != "" {
			line.Buf = append(line.Buf, []rune(t.state.Suggestion)...)
			line.Cursor = len(line.Buf)
			t.state.Suggestion = ""
			t.redraw()
			return
		}
		if line.Cursor >= len(line.Buf) {
			return
		}
		w := runewidth.RuneWidth(line.Buf[line.Cursor])
		line.Cursor++
		if !t.effectActive() {
			t.display.CursorRight(w)
		}
	case KeyUp:
		entry, ok := t.state.Ledger.Prev()
		if !ok {
			return
		}
		t.load(entry)
	case KeyDown:
		entry, ok := t.state.Ledger.Next()
		if !ok {
			return
		}
		t.load(entry)
	case KeyRune:
		if ev.Modified() || !printable(ev.Rune) {
			return
		}
		buf := make([]rune, 0, len(line.Buf)+1)
		buf = append(buf, line.Buf[:line.Cursor]...)
		buf = append(buf, ev.Rune)
		buf = append(buf, line.Buf[line.Cursor:]...)
		line.Buf = buf
		line.Cursor++
		t.refreshSuggestion()
		t.redraw()
	}
}

func printable(r rune) bool {
	return unicode.IsGraphic(r) && !unicode.IsControl(r)
}

// load replaces the buffer with a recalled history entry, cursor at the end.
func (t *Terminal) load(text string) {
	t.state.Line = InputLine{Buf: []rune(text), Cursor: len([]rune(text))}
	t.refreshSuggestion()
	t.redraw()
}

func (t *Terminal) refreshSuggestion() {
	t.state.Suggestion = t.engine.Suggest(t.state.Line.String(), t.state.Line.Cursor)
}

func (t *Terminal) submit() {
	line := strings.TrimSpace(t.state.Line.String())
	if line != "" {
		t.state.Ledger.Add(line)
	}
	t.display.WriteLine("")
	if line != "" {
		t.Execute(line)
	}
	t.state.Line = InputLine{}
	t.state.Suggestion = ""
	if t.mounted && !t.effectActive() {
		t.writePrompt()
	}
}

// redraw repaints the prompt line and puts the physical cursor back at the
// logical one. Skipped while an effect owns the screen.
func (t *Terminal) redraw() {
	if t.effectActive() {
		return
	}
	t.paintLine()
}

func (t *Terminal) paintLine() {
	line := t.state.Line
	d := t.display
	d.EraseLine()
	d.Write(t.opts.Prompt)
	d.Write(string(line.Buf))
	if t.state.Suggestion != "" {
		d.Write(t.palette.Muted.Render(t.state.Suggestion))
	}
	back := runewidth.StringWidth(string(line.Buf[line.Cursor:])) + runewidth.StringWidth(t.state.Suggestion)
	d.CursorLeft(back)
}
