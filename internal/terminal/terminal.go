// Package terminal is the interactive shell session: the line editor, the
// command dispatcher and the settings it owns. It talks to the outside world
// only through DisplayPort, KeyboardPort and Host, and runs on a single
// sched.Scheduler so no locking is needed.
package terminal

import (
	"errors"
	"math/rand/v2"
	"time"

	"termfolio/internal/commands"
	"termfolio/internal/display"
	"termfolio/internal/history"
	"termfolio/internal/logger"
	"termfolio/internal/sched"
	"termfolio/internal/suggest"
)

const (
	DefaultPrompt = "$ "
	DefaultCwd    = "/home/rafata/portfolio"
	DefaultCVName = "Rafata_Alfatih_CV.pdf"
)

// Options wires a session to its ports.
type Options struct {
	Display   DisplayPort
	Keyboard  KeyboardPort
	Host      Host
	Scheduler sched.Scheduler

	Prompt string
	Cwd    string
	// CVName is the file name the CV download is offered under; CVURL is where
	// the host can fetch it. CVURL defaults to "/"+CVName.
	CVName string
	CVURL  string

	// Frame and MatrixDuration tune the matrix effect; zero uses its defaults.
	Frame          time.Duration
	MatrixDuration time.Duration

	Vocabulary *commands.Vocabulary
	// Handlers extends or replaces entries of the built-in handler table.
	Handlers map[commands.Name]Handler
	Palette  *display.Palette
	Rand     *rand.Rand
	Log      *logger.LogEntry
}

// InputLine is the editable buffer; 0 <= Cursor <= len(Buf).
type InputLine struct {
	Buf    []rune
	Cursor int
}

func (l InputLine) String() string {
	return string(l.Buf)
}

// Settings are the per-session display preferences.
type Settings struct {
	Theme    display.ThemeName
	FontSize int
}

// DefaultSettings is what every mount starts with.
func DefaultSettings() Settings {
	return Settings{Theme: display.DefaultTheme, FontSize: DefaultFontSize}
}

// State is everything a session mutates.
type State struct {
	Line       InputLine
	Suggestion string
	Ledger     *history.Ledger
	Settings   Settings
	Effect     Task
	MountedAt  time.Time
}

// Terminal is one mounted session.
type Terminal struct {
	opts     Options
	display  DisplayPort
	host     Host
	sched    sched.Scheduler
	vocab    *commands.Vocabulary
	engine   *suggest.Engine
	handlers map[commands.Name]Handler
	palette  display.Palette
	rand     *rand.Rand
	log      *logger.LogEntry

	state       State
	mounted     bool
	unsubscribe func()
}

// Mount attaches a new session to the keyboard, prints the banner and the
// first prompt.
func Mount(opts Options) (*Terminal, error) {
	if opts.Display == nil {
		return nil, errors.New("terminal: display port is required")
	}
	if opts.Scheduler == nil {
		return nil, errors.New("terminal: scheduler is required")
	}
	opts = opts.withDefaults()
	t := &Terminal{
		opts:     opts,
		display:  opts.Display,
		host:     opts.Host,
		sched:    opts.Scheduler,
		vocab:    opts.Vocabulary,
		engine:   suggest.New(opts.Vocabulary.Names()),
		handlers: defaultHandlers(),
		palette:  *opts.Palette,
		rand:     opts.Rand,
		log:      opts.Log,
		state: State{
			Ledger:    history.NewLedger(),
			Settings:  DefaultSettings(),
			MountedAt: opts.Scheduler.Now(),
		},
		mounted: true,
	}
	for name, h := range opts.Handlers {
		if h == nil {
			delete(t.handlers, name)
			continue
		}
		t.handlers[name] = h
	}
	if opts.Keyboard != nil {
		t.unsubscribe = opts.Keyboard.Subscribe(t.HandleKey)
	}
	t.banner()
	t.writePrompt()
	t.log.Debug("session mounted")
	return t, nil
}

func (o Options) withDefaults() Options {
	if o.Host == nil {
		o.Host = NopHost{}
	}
	if o.Prompt == "" {
		o.Prompt = DefaultPrompt
	}
	if o.Cwd == "" {
		o.Cwd = DefaultCwd
	}
	if o.CVName == "" {
		o.CVName = DefaultCVName
	}
	if o.CVURL == "" {
		o.CVURL = "/" + o.CVName
	}
	if o.Vocabulary == nil {
		o.Vocabulary = commands.Default()
	}
	if o.Palette == nil {
		p := display.NewPalette()
		o.Palette = &p
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Log == nil {
		o.Log = logger.Named("terminal")
	}
	return o
}

// Unmount detaches from the keyboard, stops the running effect and closes the
// display. Later calls are no-ops.
func (t *Terminal) Unmount() error {
	if !t.mounted {
		return nil
	}
	t.mounted = false
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
	t.cancelEffect()
	t.log.Debug("session unmounted")
	return t.display.Close()
}

// Mounted reports whether the session still accepts input.
func (t *Terminal) Mounted() bool {
	return t.mounted
}

// Resize re-fits the display to a new grid.
func (t *Terminal) Resize(rows, cols int) {
	if !t.mounted {
		return
	}
	t.display.Fit(rows, cols)
}

// Line returns a copy of the input line.
func (t *Terminal) Line() InputLine {
	return InputLine{Buf: append([]rune(nil), t.state.Line.Buf...), Cursor: t.state.Line.Cursor}
}

// Suggestion returns the current ghost-text completion.
func (t *Terminal) Suggestion() string {
	return t.state.Suggestion
}

// Settings returns the current display settings.
func (t *Terminal) Settings() Settings {
	return t.state.Settings
}

// History returns the submitted commands in order.
func (t *Terminal) History() []string {
	return t.state.Ledger.Entries()
}

// EffectActive reports whether an effect is drawing.
func (t *Terminal) EffectActive() bool {
	return t.effectActive()
}

func (t *Terminal) banner() {
	t.display.WriteLine(t.palette.Info.Render("Welcome to Rafata's Interactive Terminal!"))
	t.display.WriteLine("Type " + t.palette.Success.Render("help") + " to see available commands.")
	t.display.WriteLine("")
}

func (t *Terminal) writePrompt() {
	t.display.Write(t.opts.Prompt)
}

type activity interface {
	Active() bool
}

func (t *Terminal) effectActive() bool {
	if t.state.Effect == nil {
		return false
	}
	if a, ok := t.state.Effect.(activity); ok && !a.Active() {
		t.state.Effect = nil
		return false
	}
	return true
}

func (t *Terminal) cancelEffect() {
	if t.state.Effect != nil {
		t.state.Effect.Cancel()
		t.state.Effect = nil
	}
}
