// Package console mounts a terminal session on the local TTY.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"termfolio/internal/display"
	"termfolio/internal/logger"
	"termfolio/internal/sched"
	"termfolio/internal/terminal"
)

const defaultPoll = 250 * time.Millisecond

// Options configures the local host. In and Out default to the process's
// standard streams.
type Options struct {
	In  io.Reader
	Out io.Writer

	Session     terminal.Options
	CVPath      string
	DownloadDir string
	// PollInterval is how often the TTY size is checked.
	PollInterval time.Duration
	Log          *logger.LogEntry
}

// Run mounts a session and blocks until the user quits, the session closes
// itself or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPoll
	}
	if opts.DownloadDir == "" {
		opts.DownloadDir = "."
	}
	if opts.Log == nil {
		opts.Log = logger.Named("console")
	}

	if f, ok := opts.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer func() { _ = term.Restore(int(f.Fd()), state) }()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h := &host{opts: opts, out: &lockedWriter{w: opts.Out}, log: opts.Log}
	h.loop = sched.NewLoop(sched.LoopConfig{Log: opts.Log})
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = h.loop.Run(ctx)
	}()

	program := tea.NewProgram(
		inputModel{keys: defaultKeyMap(), forward: h.forward},
		tea.WithContext(ctx),
		tea.WithInput(opts.In),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	h.program = program

	if err := h.sync(h.mount); err != nil {
		return err
	}
	go h.watchSize(ctx)

	_, err := program.Run()
	_ = h.sync(h.unmount)
	cancel()
	<-loopDone
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// host implements terminal.Host for the local TTY. Its state is only touched
// on the loop goroutine.
type host struct {
	opts    Options
	out     *lockedWriter
	log     *logger.LogEntry
	loop    *sched.Loop
	program *tea.Program

	keys      *terminal.Keys
	screen    *display.Stream
	term      *terminal.Terminal
	altScreen bool
	rows      int
	cols      int
}

// sync runs fn on the loop and waits for it.
func (h *host) sync(fn func() error) error {
	errCh := make(chan error, 1)
	if err := h.loop.Post(func() { errCh <- fn() }); err != nil {
		return err
	}
	select {
	case err := <-errCh:
		return err
	case <-h.loop.Done():
		return sched.ErrLoopClosed
	}
}

func (h *host) mount() error {
	h.keys = terminal.NewKeys()
	h.screen = display.NewStream(h.out)
	if h.rows > 0 && h.cols > 0 {
		h.screen.Fit(h.rows, h.cols)
	}
	opts := h.opts.Session
	opts.Display = h.screen
	opts.Keyboard = h.keys
	opts.Host = h
	opts.Scheduler = h.loop
	if opts.Log == nil {
		opts.Log = logger.Named("terminal")
	}
	t, err := terminal.Mount(opts)
	if err != nil {
		return err
	}
	h.term = t
	h.log.Debug("session mounted")
	return nil
}

func (h *host) unmount() error {
	if h.term == nil {
		return nil
	}
	err := h.term.Unmount()
	h.term = nil
	if h.altScreen {
		h.out.emit(ansi.ResetAltScreenSaveCursorMode)
		h.altScreen = false
	}
	h.out.emit("\r\n")
	return err
}

func (h *host) forward(events []terminal.KeyEvent) {
	_ = h.loop.Post(func() {
		for _, ev := range events {
			if h.keys != nil {
				h.keys.Emit(ev)
			}
		}
	})
}

func (h *host) watchSize(ctx context.Context) {
	f, ok := h.opts.Out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	ticker := time.NewTicker(h.opts.PollInterval)
	defer ticker.Stop()
	lastCols, lastRows := 0, 0
	for {
		cols, rows, err := term.GetSize(int(f.Fd()))
		if err == nil && (cols != lastCols || rows != lastRows) {
			lastCols, lastRows = cols, rows
			_ = h.loop.Post(func() {
				h.rows, h.cols = rows, cols
				if h.term != nil {
					h.term.Resize(rows, cols)
				}
			})
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (h *host) ToggleFullscreen() {
	if h.altScreen {
		h.out.emit(ansi.ResetAltScreenSaveCursorMode)
	} else {
		h.out.emit(ansi.SetAltScreenSaveCursorMode + ansi.EraseEntireScreen + ansi.CursorHomePosition)
	}
	h.altScreen = !h.altScreen
}

func (h *host) Download(d terminal.Download) {
	name := filepath.Base(d.Name)
	dest := filepath.Join(h.opts.DownloadDir, name)
	var err error
	switch {
	case d.Data != nil:
		err = os.WriteFile(dest, d.Data, 0o644)
	case h.opts.CVPath != "":
		err = copyFile(h.opts.CVPath, dest)
	default:
		err = errors.New("no cv_path configured")
	}
	if err != nil {
		h.log.WithError(err).WithField("kind", d.Kind).Warn("download failed")
		h.screen.WriteLine("Download failed: " + err.Error())
		return
	}
	h.log.WithField("path", dest).Info("download saved")
	h.screen.WriteLine("Saved to " + dest)
}

// Reload remounts the session, resetting history and settings.
func (h *host) Reload() {
	_ = h.unmount()
	h.out.emit(ansi.EraseEntireScreen + ansi.CursorHomePosition)
	if err := h.mount(); err != nil {
		h.log.WithError(err).Error("remount failed")
		h.program.Quit()
	}
}

func (h *host) Close() {
	h.program.Quit()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// lockedWriter guards the output stream and hides Close from display.Stream so
// unmounting a session never closes stdout.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func (l *lockedWriter) emit(s string) {
	_, _ = io.WriteString(l, s)
}
