package webhost

import (
	"bytes"

	"termfolio/internal/display"
	"termfolio/internal/logger"
	"termfolio/internal/terminal"
)

// screen is the DisplayPort of a browser session. Text goes through the ANSI
// stream into a buffer; theme and font changes become protocol messages.
type screen struct {
	*display.Stream
	s *session
}

func (sc *screen) ApplyTheme(t display.Theme) {
	theme := t
	sc.s.control(ServerMessage{Type: TypeTheme, Theme: &theme})
}

func (sc *screen) SetFontSize(px int) {
	sc.Stream.SetFontSize(px)
	sc.s.control(ServerMessage{Type: TypeFontSize, Size: px})
}

// session holds the per-connection output queue. Everything except send runs
// on the session's loop goroutine.
type session struct {
	id      string
	buf     bytes.Buffer
	pending []ServerMessage
	send    func(ServerMessage) bool
	log     *logger.LogEntry
	closing bool
	onClose func()
}

func newSession(id string, send func(ServerMessage) bool, log *logger.LogEntry) *session {
	return &session{id: id, send: send, log: log}
}

func (s *session) display() *screen {
	return &screen{Stream: display.NewStream(&s.buf), s: s}
}

// control queues msg after any text written so far, keeping their order.
func (s *session) control(msg ServerMessage) {
	s.takeText()
	s.pending = append(s.pending, msg)
}

func (s *session) takeText() {
	if s.buf.Len() == 0 {
		return
	}
	s.pending = append(s.pending, ServerMessage{Type: TypeOutput, Data: s.buf.String()})
	s.buf.Reset()
}

// flush sends everything queued by the last loop task as one batch.
func (s *session) flush() {
	s.takeText()
	msgs := s.pending
	s.pending = nil
	for _, m := range msgs {
		if !s.send(m) {
			return
		}
	}
	if s.closing && s.onClose != nil {
		s.onClose()
		s.onClose = nil
	}
}

// Host implementation.

func (s *session) ToggleFullscreen() {
	s.control(ServerMessage{Type: TypeFullscreen})
}

func (s *session) Download(d terminal.Download) {
	s.log.WithField("kind", d.Kind).Info("download requested")
	s.control(ServerMessage{
		Type:        TypeDownload,
		Name:        d.Name,
		URL:         d.URL,
		ContentType: d.ContentType,
		Payload:     d.Data,
	})
}

func (s *session) Reload() {
	s.control(ServerMessage{Type: TypeReload})
}

func (s *session) Close() {
	s.control(ServerMessage{Type: TypeClose})
	s.closing = true
}
