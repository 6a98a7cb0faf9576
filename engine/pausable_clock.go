package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
type PausableClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	realStart time.Time

	paused      bool
	pauseStart  time.Time     // Real time the current pause began
	totalPaused time.Duration // Cumulative completed pauses
}

// NewPausableClock creates a clock backed by the monotonic wall clock
func NewPausableClock() *PausableClock {
	return NewPausableClockWithProvider(NewMonotonicTimeProvider())
}

// NewPausableClockWithProvider creates a clock backed by provider
func NewPausableClockWithProvider(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  provider,
		realStart: provider.Now(),
	}
}

// Now returns current game time; frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	real := pc.provider.Now()
	if pc.paused {
		real = pc.pauseStart
	}
	return pc.realStart.Add(real.Sub(pc.realStart) - pc.totalPaused)
}

// RealTime returns provider time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops game time advancement; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

// Resume continues game time advancement; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPaused += pc.provider.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}
