package sched

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestManualAdvanceOrdersByDueTime(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	var got []string
	m.After(300*time.Millisecond, func() { got = append(got, "c") })
	m.After(0, func() { got = append(got, "a") })
	m.After(100*time.Millisecond, func() {
		got = append(got, "b")
		m.After(100*time.Millisecond, func() { got = append(got, "b2") })
	})

	m.Advance(250 * time.Millisecond)
	want := []string{"a", "b", "b2"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
	if m.Pending() != 1 {
		t.Fatalf("expected 1 pending, got %d", m.Pending())
	}
	if !m.Now().Equal(time.Unix(0, 0).Add(250 * time.Millisecond)) {
		t.Fatalf("clock not advanced: %v", m.Now())
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	fired := false
	timer := m.After(time.Second, func() { fired = true })
	if !timer.Stop() {
		t.Fatalf("expected Stop to report pending timer")
	}
	if timer.Stop() {
		t.Fatalf("second Stop should report false")
	}
	m.Advance(2 * time.Second)
	if fired {
		t.Fatalf("stopped timer fired")
	}
}

func TestLoopRunsTasksInOrderAndFlushes(t *testing.T) {
	flushes := 0
	loop := NewLoop(LoopConfig{AfterTask: func() { flushes++ }})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	var got []int
	done := make(chan struct{})
	for i := 0; i < 3; i++ {
		i := i
		if err := loop.Post(func() { got = append(got, i) }); err != nil {
			t.Fatalf("Post: %v", err)
		}
	}
	if err := loop.Post(func() { close(done) }); err != nil {
		t.Fatalf("Post: %v", err)
	}
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("timeout waiting for tasks")
	}
	loop.Close()
	if err := <-errCh; !errors.Is(err, ErrLoopClosed) {
		t.Fatalf("Run() = %v, want ErrLoopClosed", err)
	}
	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Fatalf("tasks ran out of order: %v", got)
	}
	if flushes < 3 {
		t.Fatalf("expected AfterTask per task, got %d", flushes)
	}
	if err := loop.Post(func() {}); !errors.Is(err, ErrLoopClosed) {
		t.Fatalf("Post after close = %v", err)
	}
}

func TestLoopAfterAndStop(t *testing.T) {
	loop := NewLoop(LoopConfig{})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go loop.Run(ctx)
	defer loop.Close()

	fired := make(chan string, 2)
	stopped := make(chan struct{})
	if err := loop.Post(func() {
		cancelled := loop.After(10*time.Millisecond, func() { fired <- "cancelled" })
		loop.After(30*time.Millisecond, func() { fired <- "kept" })
		cancelled.Stop()
		close(stopped)
	}); err != nil {
		t.Fatalf("Post: %v", err)
	}
	<-stopped

	select {
	case got := <-fired:
		if got != "kept" {
			t.Fatalf("stopped timer fired: %s", got)
		}
	case <-ctx.Done():
		t.Fatal("timeout waiting for timer")
	}
}

func TestLoopRecoversPanics(t *testing.T) {
	loop := NewLoop(LoopConfig{})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go loop.Run(ctx)
	defer loop.Close()

	_ = loop.Post(func() { panic("boom") })
	done := make(chan struct{})
	_ = loop.Post(func() { close(done) })
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("loop died after panic")
	}
}
