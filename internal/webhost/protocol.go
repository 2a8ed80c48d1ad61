package webhost

import (
	"unicode/utf8"

	"termfolio/internal/display"
	"termfolio/internal/terminal"
)

// Message types exchanged over /ws.
const (
	TypeKey        = "key"
	TypeResize     = "resize"
	TypePing       = "ping"
	TypeHello      = "hello"
	TypeOutput     = "output"
	TypeTheme      = "theme"
	TypeFontSize   = "fontsize"
	TypeFullscreen = "fullscreen"
	TypeDownload   = "download"
	TypeReload     = "reload"
	TypeClose      = "close"
	TypePong       = "pong"
)

// ClientMessage is anything the browser sends.
type ClientMessage struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`
	Ctrl bool   `json:"ctrl,omitempty"`
	Alt  bool   `json:"alt,omitempty"`
	Meta bool   `json:"meta,omitempty"`
	Rows int    `json:"rows,omitempty"`
	Cols int    `json:"cols,omitempty"`
}

// ServerMessage is anything the server sends. Inline download bytes travel in
// Payload, base64 encoded by encoding/json.
type ServerMessage struct {
	Type        string         `json:"type"`
	SessionID   string         `json:"session_id,omitempty"`
	Data        string         `json:"data,omitempty"`
	Theme       *display.Theme `json:"theme,omitempty"`
	Size        int            `json:"size,omitempty"`
	Name        string         `json:"name,omitempty"`
	URL         string         `json:"url,omitempty"`
	ContentType string         `json:"content_type,omitempty"`
	Payload     []byte         `json:"payload,omitempty"`
}

var domKeys = map[string]terminal.KeyCode{
	"Enter":      terminal.KeyEnter,
	"Backspace":  terminal.KeyBackspace,
	"ArrowLeft":  terminal.KeyLeft,
	"ArrowRight": terminal.KeyRight,
	"ArrowUp":    terminal.KeyUp,
	"ArrowDown":  terminal.KeyDown,
}

// KeyEvent converts a DOM KeyboardEvent.key value. Named keys other than the
// editing ones map to KeyOther.
func (m ClientMessage) KeyEvent() terminal.KeyEvent {
	ev := terminal.KeyEvent{Key: terminal.KeyOther, Ctrl: m.Ctrl, Alt: m.Alt, Meta: m.Meta}
	if code, ok := domKeys[m.Key]; ok {
		ev.Key = code
		return ev
	}
	if r, size := utf8.DecodeRuneInString(m.Key); size > 0 && size == len(m.Key) && r != utf8.RuneError {
		ev.Key = terminal.KeyRune
		ev.Rune = r
	}
	return ev
}
