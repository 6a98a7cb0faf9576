package engine

import (
	"testing"
	"time"
)

func TestPausableClockFreezes(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(100, 0))
	pc := NewPausableClockWithProvider(mock)
	start := pc.Now()

	mock.Advance(time.Second)
	if got := pc.Now().Sub(start); got != time.Second {
		t.Errorf("Expected 1s elapsed, got %v", got)
	}

	pc.Pause()
	frozen := pc.Now()
	mock.Advance(5 * time.Second)
	if !pc.Now().Equal(frozen) {
		t.Error("Game time advanced while paused")
	}
	if pc.TotalPauseDuration() != 5*time.Second {
		t.Errorf("Expected 5s paused, got %v", pc.TotalPauseDuration())
	}

	pc.Resume()
	mock.Advance(time.Second)
	if got := pc.Now().Sub(start); got != 2*time.Second {
		t.Errorf("Expected 2s game time, got %v", got)
	}
	if got := pc.RealTime().Sub(time.Unix(100, 0)); got != 7*time.Second {
		t.Errorf("Expected 7s real time, got %v", got)
	}
}

func TestPausableClockToggle(t *testing.T) {
	pc := NewPausableClockWithProvider(NewMockTimeProvider(time.Unix(0, 0)))

	if !pc.Toggle() || !pc.IsPaused() {
		t.Error("Expected paused after first toggle")
	}
	if pc.Toggle() || pc.IsPaused() {
		t.Error("Expected running after second toggle")
	}

	pc.Resume()
	if pc.IsPaused() {
		t.Error("Resume on running clock should be a no-op")
	}
}
