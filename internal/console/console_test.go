package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/display"
	"termfolio/internal/logger"
	"termfolio/internal/terminal"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ansi.Strip(b.buf.String())
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want []terminal.KeyEvent
	}{
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: []terminal.KeyEvent{{Key: terminal.KeyEnter}}},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: []terminal.KeyEvent{{Key: terminal.KeyBackspace}}},
		{name: "left", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: []terminal.KeyEvent{{Key: terminal.KeyLeft}}},
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: []terminal.KeyEvent{{Key: terminal.KeyUp}}},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: []terminal.KeyEvent{terminal.RuneKey(' ')}},
		{name: "runes", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ls")}, want: []terminal.KeyEvent{terminal.RuneKey('l'), terminal.RuneKey('s')}},
		{name: "alt rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, want: []terminal.KeyEvent{{Key: terminal.KeyRune, Rune: 'x', Alt: true}}},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, want: []terminal.KeyEvent{{Key: terminal.KeyOther, Ctrl: true}}},
		{name: "home", msg: tea.KeyMsg{Type: tea.KeyHome}, want: []terminal.KeyEvent{{Key: terminal.KeyOther}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, translate(tc.msg))
		})
	}
}

func TestInputModelQuitBinding(t *testing.T) {
	var got [][]terminal.KeyEvent
	m := inputModel{keys: defaultKeyMap(), forward: func(evs []terminal.KeyEvent) { got = append(got, evs) }}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, got)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	assert.Nil(t, cmd)
	assert.Len(t, got, 1)
}

func newTestHost(t *testing.T, cvPath string) (*host, *syncBuffer) {
	t.Helper()
	out := &syncBuffer{}
	h := &host{
		opts: Options{DownloadDir: t.TempDir(), CVPath: cvPath},
		out:  &lockedWriter{w: out},
		log:  logger.Discard(),
	}
	h.screen = display.NewStream(h.out)
	return h, out
}

func TestHostDownload(t *testing.T) {
	cv := filepath.Join(t.TempDir(), "source.pdf")
	require.NoError(t, os.WriteFile(cv, []byte("%PDF"), 0o600))
	h, out := newTestHost(t, cv)

	h.Download(terminal.Download{Kind: "resume", Name: "resume.txt", Data: []byte("RAFATA")})
	data, err := os.ReadFile(filepath.Join(h.opts.DownloadDir, "resume.txt"))
	require.NoError(t, err)
	assert.Equal(t, "RAFATA", string(data))

	h.Download(terminal.Download{Kind: "cv", Name: "../cv.pdf", URL: "/cv.pdf"})
	data, err = os.ReadFile(filepath.Join(h.opts.DownloadDir, "cv.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
	assert.Contains(t, out.String(), "Saved to ")
}

func TestHostDownloadWithoutCV(t *testing.T) {
	h, out := newTestHost(t, "")
	h.Download(terminal.Download{Kind: "cv", Name: "cv.pdf", URL: "/cv.pdf"})
	assert.Contains(t, out.String(), "Download failed: no cv_path configured")
}

func TestHostFullscreenToggle(t *testing.T) {
	h, _ := newTestHost(t, "")
	h.ToggleFullscreen()
	assert.True(t, h.altScreen)
	h.ToggleFullscreen()
	assert.False(t, h.altScreen)
}

func runConsole(t *testing.T) (*io.PipeWriter, *syncBuffer, <-chan error) {
	t.Helper()
	in, w := io.Pipe()
	out := &syncBuffer{}
	done := make(chan error, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	go func() {
		done <- Run(ctx, Options{
			In:          in,
			Out:         out,
			Session:     terminal.Options{Log: logger.Discard()},
			DownloadDir: t.TempDir(),
			Log:         logger.Discard(),
		})
	}()
	t.Cleanup(func() { _ = w.Close() })
	return w, out, done
}

func TestRunHelpThenQuit(t *testing.T) {
	w, out, done := runConsole(t)
	require.Eventually(t, func() bool { return strings.Contains(out.String(), "$ ") }, 5*time.Second, 10*time.Millisecond)

	_, err := w.Write([]byte("help\r"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return strings.Contains(out.String(), "Available commands:") }, 5*time.Second, 10*time.Millisecond)

	_, err = w.Write([]byte{0x03})
	require.NoError(t, err)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("console did not quit on ctrl+c")
	}
}

func TestRunExitCommandQuits(t *testing.T) {
	w, out, done := runConsole(t)
	require.Eventually(t, func() bool { return strings.Contains(out.String(), "$ ") }, 5*time.Second, 10*time.Millisecond)

	_, err := w.Write([]byte("sudo exit\r"))
	require.NoError(t, err)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("console did not quit after exit")
	}
	assert.Contains(t, out.String(), "Closing terminal…")
}
