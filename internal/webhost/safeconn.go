package webhost

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"termfolio/internal/logger"
)

const writeWait = 10 * time.Second

// SafeConn serializes writes to a websocket and survives writes after close.
type SafeConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	closed  bool
	log     *logger.LogEntry
}

// NewSafeConn wraps conn.
func NewSafeConn(conn *websocket.Conn, log *logger.LogEntry) *SafeConn {
	if log == nil {
		log = logger.Discard()
	}
	return &SafeConn{conn: conn, log: log}
}

// WriteJSON writes v as one text frame. Writes after Close are dropped.
func (sc *SafeConn) WriteJSON(v any) (err error) {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	if sc.closed {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			sc.log.Warnf("websocket write panic recovered: %v", r)
			sc.closed = true
		}
	}()
	_ = sc.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return sc.conn.WriteJSON(v)
}

// Close sends a normal close frame and closes the connection.
func (sc *SafeConn) Close() error {
	sc.writeMu.Lock()
	if sc.closed {
		sc.writeMu.Unlock()
		return nil
	}
	sc.closed = true
	_ = sc.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	sc.writeMu.Unlock()
	return sc.conn.Close()
}

// Underlying returns the connection for reads.
func (sc *SafeConn) Underlying() *websocket.Conn {
	return sc.conn
}
