package terminal

import (
	"termfolio/internal/display"
)

// DisplayPort is the character-grid surface the session draws on. Rows and
// columns are 1-based in MoveCursor.
type DisplayPort interface {
	Write(text string)
	WriteLine(text string)
	Clear()
	EraseLine()
	MoveCursor(row, col int)
	CursorLeft(n int)
	CursorRight(n int)
	Dimensions() (rows, cols int)
	Fit(rows, cols int)
	ApplyTheme(t display.Theme)
	Refresh()
	SetFontSize(px int)
	Close() error
}

// KeyboardPort delivers key events. The returned func removes the subscription.
type KeyboardPort interface {
	Subscribe(fn func(KeyEvent)) (unsubscribe func())
}

// Download describes a file the host should hand to the user. Either URL or
// Data is set.
type Download struct {
	Kind        string
	Name        string
	URL         string
	ContentType string
	Data        []byte
}

// Host is what the session may ask of the surrounding page or process.
type Host interface {
	ToggleFullscreen()
	Download(d Download)
	Reload()
	Close()
}

// Task is a cancellable piece of work started by a command.
type Task interface {
	Cancel()
}

// KeyCode classifies a key event.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyOther
)

func (k KeyCode) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "other"
	}
}

// KeyEvent is one key press with its modifier state.
type KeyEvent struct {
	Key  KeyCode
	Rune rune
	Ctrl bool
	Alt  bool
	Meta bool
}

// RuneKey builds an unmodified printable key event.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// Modified reports whether any modifier key was held.
func (e KeyEvent) Modified() bool {
	return e.Ctrl || e.Alt || e.Meta
}

// NopHost ignores every request.
type NopHost struct{}

func (NopHost) ToggleFullscreen() {}
func (NopHost) Download(Download) {}
func (NopHost) Reload()           {}
func (NopHost) Close()            {}

// Keys is a KeyboardPort fed by calling Emit. Hosts that already receive
// decoded events push them through it.
type Keys struct {
	next int
	subs map[int]func(KeyEvent)
	// order keeps delivery deterministic.
	order []int
}

// NewKeys returns an empty key source.
func NewKeys() *Keys {
	return &Keys{subs: map[int]func(KeyEvent){}}
}

// Subscribe implements KeyboardPort.
func (k *Keys) Subscribe(fn func(KeyEvent)) func() {
	id := k.next
	k.next++
	k.subs[id] = fn
	k.order = append(k.order, id)
	return func() {
		delete(k.subs, id)
	}
}

// Emit delivers ev to every subscriber. Call it from the session's loop.
func (k *Keys) Emit(ev KeyEvent) {
	for _, id := range k.order {
		if fn, ok := k.subs[id]; ok {
			fn(ev)
		}
	}
}
