package terminal

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"termfolio/internal/display"
	"termfolio/internal/logger"
	"termfolio/internal/sched"
)

var epoch = time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)

type fakeHost struct {
	fullscreen int
	reloads    int
	closes     int
	downloads  []Download
}

func (h *fakeHost) ToggleFullscreen()   { h.fullscreen++ }
func (h *fakeHost) Download(d Download) { h.downloads = append(h.downloads, d) }
func (h *fakeHost) Reload()             { h.reloads++ }
func (h *fakeHost) Close()              { h.closes++ }

type harness struct {
	t      *testing.T
	out    *bytes.Buffer
	screen *display.Stream
	clock  *sched.Manual
	keys   *Keys
	host   *fakeHost
	term   *Terminal
}

func newHarness(t *testing.T, mutate ...func(*Options)) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		out:   &bytes.Buffer{},
		clock: sched.NewManual(epoch),
		keys:  NewKeys(),
		host:  &fakeHost{},
	}
	h.screen = display.NewStream(h.out)
	opts := Options{
		Display:   h.screen,
		Keyboard:  h.keys,
		Host:      h.host,
		Scheduler: h.clock,
		Rand:      rand.New(rand.NewPCG(7, 11)),
		Log:       logger.Discard(),
	}
	for _, m := range mutate {
		m(&opts)
	}
	term, err := Mount(opts)
	require.NoError(t, err)
	h.term = term
	return h
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.keys.Emit(RuneKey(r))
	}
}

func (h *harness) press(codes ...KeyCode) {
	for _, c := range codes {
		h.keys.Emit(KeyEvent{Key: c})
	}
}

// submit types line and presses Enter.
func (h *harness) submit(line string) {
	h.typeText(line)
	h.press(KeyEnter)
}

// text returns everything written so far with escape sequences removed.
func (h *harness) text() string {
	return ansi.Strip(h.out.String())
}

func (h *harness) raw() string {
	return h.out.String()
}

func (h *harness) reset() {
	h.out.Reset()
}

func (h *harness) buffer() string {
	return h.term.Line().String()
}
