// Package sched runs terminal sessions on a single cooperative event loop.
//
// Every piece of session state is touched only from inside a loop task: host
// input is posted with Post, deferred work is scheduled with After and comes
// back through the same queue. A Timer's Stop is the cancellation handle; once
// it returns, the callback will not run even if the timer already fired and the
// callback is waiting in the queue.
package sched

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"termfolio/internal/logger"
)

// ErrLoopClosed is returned by Run and Post once the loop has stopped.
var ErrLoopClosed = errors.New("sched: loop closed")

// Timer is a pending deferred callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the callback was still pending.
	Stop() bool
}

// Scheduler is the deferred-callback capability the terminal core depends on.
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) Timer
}

// LoopConfig controls queue size and the per-task hook.
type LoopConfig struct {
	QueueSize int
	// AfterTask runs on the loop goroutine after every task, e.g. to flush output.
	AfterTask func()
	Clock     func() time.Time
	Log       *logger.LogEntry
}

func (cfg LoopConfig) withDefaults() LoopConfig {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Log == nil {
		cfg.Log = logger.Named("sched")
	}
	return cfg
}

// Loop serializes tasks on one goroutine.
type Loop struct {
	cfg   LoopConfig
	tasks chan func()
	done  chan struct{}

	closeOnce sync.Once
	mu        sync.Mutex
	closed    bool
	timers    map[*loopTimer]struct{}
}

// NewLoop builds a loop; call Run to start executing tasks.
func NewLoop(cfg LoopConfig) *Loop {
	cfg = cfg.withDefaults()
	return &Loop{
		cfg:    cfg,
		tasks:  make(chan func(), cfg.QueueSize),
		done:   make(chan struct{}),
		timers: map[*loopTimer]struct{}{},
	}
}

// Now implements Scheduler.
func (l *Loop) Now() time.Time {
	return l.cfg.Clock()
}

// Post queues fn for execution on the loop goroutine. It blocks while the queue
// is full and fails once the loop is closed.
func (l *Loop) Post(fn func()) error {
	if fn == nil {
		return nil
	}
	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return ErrLoopClosed
	}
	select {
	case l.tasks <- fn:
		return nil
	case <-l.done:
		return ErrLoopClosed
	}
}

// After implements Scheduler. The callback is posted to the loop when d elapses.
func (l *Loop) After(d time.Duration, fn func()) Timer {
	t := &loopTimer{loop: l}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		t.stopped.Store(true)
		return t
	}
	l.timers[t] = struct{}{}
	t.timer = time.AfterFunc(d, func() {
		if t.stopped.Load() {
			return
		}
		_ = l.Post(func() {
			if !t.stopped.CompareAndSwap(false, true) {
				return
			}
			l.forget(t)
			fn()
		})
	})
	return t
}

// Run executes tasks until ctx is cancelled or Close is called.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return ErrLoopClosed
		case fn := <-l.tasks:
			l.exec(fn)
		}
	}
}

// Close stops the loop and every pending timer. Queued tasks are dropped.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		l.closed = true
		timers := l.timers
		l.timers = map[*loopTimer]struct{}{}
		l.mu.Unlock()
		for t := range timers {
			t.Stop()
		}
		close(l.done)
	})
}

// Done is closed when the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.cfg.Log.Errorf("loop task panic recovered: %v", r)
		}
	}()
	fn()
	if l.cfg.AfterTask != nil {
		l.cfg.AfterTask()
	}
}

func (l *Loop) forget(t *loopTimer) {
	l.mu.Lock()
	delete(l.timers, t)
	l.mu.Unlock()
}

type loopTimer struct {
	loop    *Loop
	timer   *time.Timer
	stopped atomic.Bool
}

func (t *loopTimer) Stop() bool {
	if !t.stopped.CompareAndSwap(false, true) {
		return false
	}
	l := t.loop
	l.mu.Lock()
	timer := t.timer
	delete(l.timers, t)
	l.mu.Unlock()
	if timer != nil {
		timer.Stop()
	}
	return true
}
