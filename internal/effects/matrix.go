// Package effects runs the full-screen animations a session can start.
package effects

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/logger"
	"termfolio/internal/sched"
)

const (
	DefaultFrame    = 16 * time.Millisecond
	DefaultDuration = 10 * time.Second
	// SeedChance is the per-frame probability that an idle column starts a drop.
	SeedChance = 0.02
	// CompleteMessage is written once the animation ends on its own.
	CompleteMessage = "Matrix simulation complete."
)

// Glyphs is the rain alphabet.
var Glyphs = []rune(`日ﾊﾐﾋｰｳｼﾅﾓﾆｻﾜﾂｵﾘｱﾎﾃﾏｹﾒｴｶｷﾑﾕﾗｾﾈｽﾀﾇﾍ012345789Z:・."=*+-<>¦｜╌`)

// Canvas is the part of the display the animation draws on.
type Canvas interface {
	Write(text string)
	WriteLine(text string)
	Clear()
	MoveCursor(row, col int)
	Dimensions() (int, int)
}

// MatrixOptions configures one animation run. Zero durations use the defaults.
type MatrixOptions struct {
	Scheduler sched.Scheduler
	Canvas    Canvas
	Frame     time.Duration
	Duration  time.Duration
	Rand      *rand.Rand
	// Colors are picked at random for every glyph; empty means unstyled.
	Colors []lipgloss.Style
	// Banner styles CompleteMessage.
	Banner lipgloss.Style
	// OnDone runs after the completion message, on natural end only.
	OnDone func()
	Log    *logger.LogEntry
}

// Matrix is a running rain animation. Cancel stops it without touching the screen.
type Matrix struct {
	opts     MatrixOptions
	rows     int
	heads    []int
	deadline time.Time
	pending  sched.Timer
	active   bool
}

// StartMatrix clears the canvas, draws the first frame and schedules the rest.
// The grid size is captured here; later resizes do not affect a running task.
func StartMatrix(opts MatrixOptions) *Matrix {
	if opts.Frame <= 0 {
		opts.Frame = DefaultFrame
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Log == nil {
		opts.Log = logger.Named("effects")
	}
	rows, cols := opts.Canvas.Dimensions()
	m := &Matrix{
		opts:     opts,
		rows:     rows,
		heads:    make([]int, max(cols, 0)),
		deadline: opts.Scheduler.Now().Add(opts.Duration),
		active:   true,
	}
	opts.Log.WithField("rows", rows).WithField("cols", cols).Debug("matrix started")
	opts.Canvas.Clear()
	m.tick()
	return m
}

// Active reports whether the animation is still drawing.
func (m *Matrix) Active() bool {
	return m != nil && m.active
}

// Cancel stops the animation. The pending frame is dropped and no completion
// message is written. Safe to call more than once.
func (m *Matrix) Cancel() {
	if m == nil || !m.active {
		return
	}
	m.active = false
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
	m.opts.Log.Debug("matrix cancelled")
}

// Heads returns a copy of the per-column head rows.
func (m *Matrix) Heads() []int {
	return append([]int(nil), m.heads...)
}

func (m *Matrix) tick() {
	m.pending = nil
	if !m.active {
		return
	}
	if !m.opts.Scheduler.Now().Before(m.deadline) {
		m.finish()
		return
	}
	m.frame()
	m.pending = m.opts.Scheduler.After(m.opts.Frame, m.tick)
}

func (m *Matrix) frame() {
	c := m.opts.Canvas
	for col, head := range m.heads {
		if head > 0 {
			c.MoveCursor(head, col+1)
			c.Write(m.glyph())
			if head >= m.rows {
				m.heads[col] = 0
			} else {
				m.heads[col]++
			}
			continue
		}
		if m.opts.Rand.Float64() < SeedChance {
			m.heads[col] = 1
		}
	}
}

func (m *Matrix) glyph() string {
	g := string(Glyphs[m.opts.Rand.IntN(len(Glyphs))])
	if len(m.opts.Colors) == 0 {
		return g
	}
	return m.opts.Colors[m.opts.Rand.IntN(len(m.opts.Colors))].Render(g)
}

func (m *Matrix) finish() {
	m.active = false
	c := m.opts.Canvas
	c.Clear()
	c.WriteLine(m.opts.Banner.Render(CompleteMessage))
	m.opts.Log.Debug("matrix complete")
	if m.opts.OnDone != nil {
		m.opts.OnDone()
	}
}
