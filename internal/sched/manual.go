package sched

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by a virtual clock. Callbacks run synchronously
// inside Advance, ordered by due time and then by scheduling order.
type Manual struct {
	now     time.Time
	seq     int
	pending []*manualTimer
}

// NewManual returns a Manual scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now implements Scheduler.
func (m *Manual) Now() time.Time {
	return m.now
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{owner: m, due: m.now.Add(d), seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Pending reports how many callbacks are waiting.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Advance moves the clock forward by d, running every callback that falls due,
// including ones scheduled by callbacks during the advance.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.remove(next)
		if next.due.After(m.now) {
			m.now = next.due
		}
		next.fn()
	}
	m.now = target
}

// Flush runs callbacks due at the current instant.
func (m *Manual) Flush() {
	m.Advance(0)
}

func (m *Manual) nextDue(target time.Time) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].due.Equal(m.pending[j].due) {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].due.Before(m.pending[j].due)
	})
	if m.pending[0].due.After(target) {
		return nil
	}
	return m.pending[0]
}

func (m *Manual) remove(t *manualTimer) bool {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	owner *Manual
	due   time.Time
	seq   int
	fn    func()
}

func (t *manualTimer) Stop() bool {
	return t.owner.remove(t)
}
