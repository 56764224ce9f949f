package game

import (
	"testing"
	"time"
)

func TestCountdownFiresOnce(t *testing.T) {
	var c countdown
	c.set(100 * time.Millisecond)
	if c.tick(50 * time.Millisecond) {
		t.Fatalf("countdown fired early")
	}
	if !c.tick(60 * time.Millisecond) {
		t.Fatalf("countdown did not fire")
	}
	if c.tick(time.Hour) {
		t.Fatalf("countdown fired twice without reset")
	}
	if c.active() {
		t.Fatalf("expired countdown must be inactive")
	}
}

func TestCountdownStop(t *testing.T) {
	var c countdown
	c.set(time.Second)
	c.stop()
	if c.tick(2 * time.Second) {
		t.Fatalf("stopped countdown must not fire")
	}
}

func TestCountdownZeroIsIdle(t *testing.T) {
	var c countdown
	c.set(0)
	if c.active() || c.tick(time.Second) {
		t.Fatalf("zero countdown must stay idle")
	}
}

func TestStopwatchAccumulates(t *testing.T) {
	var s stopwatch
	s.add(300 * time.Millisecond)
	s.add(200 * time.Millisecond)
	if s.total() != 500*time.Millisecond {
		t.Fatalf("total %v, want 500ms", s.total())
	}
	s.reset()
	if s.total() != 0 {
		t.Fatalf("reset must clear the stopwatch")
	}
}
