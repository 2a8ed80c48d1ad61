// Package webhost serves the terminal to browsers: an embedded xterm.js page
// plus a WebSocket endpoint that mounts one session per connection.
package webhost

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"termfolio/internal/logger"
	"termfolio/internal/sched"
	"termfolio/internal/terminal"
)

//go:embed static/*
var staticFiles embed.FS

const (
	readLimit       = 4 * 1024
	pongWait        = 60 * time.Second
	outboundBuffer  = 256
	unmountTimeout  = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Config configures the server. Session is the template every mounted
// terminal starts from; its ports and scheduler are filled per connection.
type Config struct {
	Listen         string
	AllowedOrigins []string
	// CVPath is a local file served under /<Session.CVName>.
	CVPath  string
	Session terminal.Options
	Log     *logger.LogEntry
}

// Server is the HTTP host.
type Server struct {
	cfg      Config
	log      *logger.LogEntry
	upgrader websocket.Upgrader
	started  time.Time
	active   atomic.Int64
	conns    sync.Map // id -> *SafeConn

	mu     sync.Mutex
	server *http.Server
}

// New builds a server. CVPath, when set, must point at a readable file.
func New(cfg Config) (*Server, error) {
	if cfg.Log == nil {
		cfg.Log = logger.Named("webhost")
	}
	if cfg.Session.CVName == "" {
		cfg.Session.CVName = terminal.DefaultCVName
	}
	if cfg.CVPath != "" {
		if _, err := os.Stat(cfg.CVPath); err != nil {
			return nil, fmt.Errorf("cv file: %w", err)
		}
	}
	s := &Server{cfg: cfg, log: cfg.Log, started: time.Now()}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	return s, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", s.handleHealth)
	if s.cfg.CVPath != "" {
		mux.HandleFunc("/"+s.cfg.Session.CVName, s.handleCV)
	}
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Listen, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	s.mu.Lock()
	s.server = srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("serving terminal at http://%s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown closes every session and stops the HTTP server.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	srv := s.server
	s.server = nil
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	s.conns.Range(func(_, v any) bool {
		_ = v.(*SafeConn).Close()
		return true
	})
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Sessions reports how many terminals are mounted.
func (s *Server) Sessions() int {
	return int(s.active.Load())
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if len(s.cfg.AllowedOrigins) > 0 {
		for _, allowed := range s.cfg.AllowedOrigins {
			if strings.EqualFold(strings.TrimRight(allowed, "/"), origin) {
				return true
			}
		}
		return false
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": s.Sessions(),
		"uptime":   time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleCV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(s.cfg.Session.CVName)))
	http.ServeFile(w, r, s.cfg.CVPath)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Errorf("websocket handler panic: %v", rec)
		}
	}()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	id := uuid.NewString()
	log := s.log.WithField("session", id).WithField("remote", r.RemoteAddr)
	safeConn := NewSafeConn(conn, log)
	defer safeConn.Close()
	s.conns.Store(id, safeConn)
	defer s.conns.Delete(id)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	out := make(chan ServerMessage, outboundBuffer)
	send := func(m ServerMessage) bool {
		select {
		case out <- m:
			return true
		case <-ctx.Done():
			return false
		}
	}
	sess := newSession(id, send, log)
	sess.onClose = cancel
	loop := sched.NewLoop(sched.LoopConfig{AfterTask: sess.flush, Log: log})
	go func() { _ = loop.Run(ctx) }()

	keys := terminal.NewKeys()
	var term *terminal.Terminal
	opts := s.cfg.Session
	opts.Display = sess.display()
	opts.Keyboard = keys
	opts.Host = sess
	opts.Scheduler = loop
	opts.Log = log.WithField("component", "terminal")

	if err := safeConn.WriteJSON(ServerMessage{Type: TypeHello, SessionID: id}); err != nil {
		log.WithError(err).Warn("hello failed")
		return
	}
	mountErr := make(chan error, 1)
	if err := loop.Post(func() {
		t, err := terminal.Mount(opts)
		term = t
		mountErr <- err
	}); err != nil {
		return
	}
	if err := <-mountErr; err != nil {
		log.WithError(err).Error("mount failed")
		return
	}
	s.active.Add(1)
	log.Info("session mounted")

	defer func() {
		done := make(chan struct{})
		if loop.Post(func() {
			_ = term.Unmount()
			close(done)
		}) == nil {
			select {
			case <-done:
			case <-loop.Done():
			case <-time.After(unmountTimeout):
			}
		}
		loop.Close()
		s.active.Add(-1)
		log.Info("session closed")
	}()

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		s.readLoop(conn, safeConn, loop, keys, func() *terminal.Terminal { return term }, log)
	}()

	for {
		select {
		case <-ctx.Done():
			s.drain(out, safeConn)
			return
		case <-readDone:
			return
		case m := <-out:
			if err := safeConn.WriteJSON(m); err != nil {
				log.WithError(err).Debug("write failed")
				return
			}
		}
	}
}

// drain writes whatever the last task queued, e.g. the close instruction.
func (s *Server) drain(out chan ServerMessage, safeConn *SafeConn) {
	for {
		select {
		case m := <-out:
			_ = safeConn.WriteJSON(m)
		default:
			return
		}
	}
}

func (s *Server) readLoop(conn *websocket.Conn, safeConn *SafeConn, loop *sched.Loop, keys *terminal.Keys, term func() *terminal.Terminal, log *logger.LogEntry) {
	conn.SetReadLimit(readLimit)
	for {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Debug("read failed")
			}
			return
		}
		var task func()
		switch msg.Type {
		case TypeKey:
			ev := msg.KeyEvent()
			task = func() { keys.Emit(ev) }
		case TypeResize:
			rows, cols := msg.Rows, msg.Cols
			task = func() { term().Resize(rows, cols) }
		case TypePing:
			_ = safeConn.WriteJSON(ServerMessage{Type: TypePong})
		default:
			log.WithField("type", msg.Type).Debug("unknown message ignored")
		}
		if task != nil {
			if err := loop.Post(task); err != nil {
				return
			}
		}
	}
}
