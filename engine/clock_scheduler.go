package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// ClockScheduler drives a GameContext: one Frame per frame interval and as many
// movement Ticks as the accumulated game time affords
// Game time comes from a PausableClock, so a paused game accrues no ticks
type ClockScheduler struct {
	game  *GameContext
	clock *PausableClock

	frameInterval time.Duration
	tickInterval  atomic.Int64 // Nanoseconds; hot-reloadable

	mu            sync.Mutex
	accumulator   time.Duration
	lastGameTime  time.Time
	gameOverFired bool

	onFrame    func(ticks int, res TickResult)
	onGameOver func(res TickResult)

	// Cached metric pointers
	statDropped *atomic.Int64
	statPaused  *atomic.Bool
}

// NewClockScheduler creates a scheduler for game using clock as its time source
func NewClockScheduler(game *GameContext, clock *PausableClock, frameInterval, tickInterval time.Duration) *ClockScheduler {
	if frameInterval <= 0 {
		frameInterval = constants.FrameUpdateInterval
	}
	cs := &ClockScheduler{
		game:          game,
		clock:         clock,
		frameInterval: frameInterval,
		lastGameTime:  clock.Now(),
		statDropped:   game.Status.Ints.Get("engine.ticks_dropped"),
		statPaused:    game.Status.Bools.Get("engine.paused"),
	}
	cs.SetTickInterval(tickInterval)
	return cs
}

// SetTickInterval changes the movement cadence, clamped to MinGameUpdateInterval
func (cs *ClockScheduler) SetTickInterval(d time.Duration) {
	if d < constants.MinGameUpdateInterval {
		d = constants.MinGameUpdateInterval
	}
	cs.tickInterval.Store(int64(d))
}

// TickInterval returns the current movement cadence
func (cs *ClockScheduler) TickInterval() time.Duration {
	return time.Duration(cs.tickInterval.Load())
}

// OnFrame registers a hook called after every scheduled frame, must be called before Run
func (cs *ClockScheduler) OnFrame(fn func(ticks int, res TickResult)) {
	cs.onFrame = fn
}

// OnGameOver registers a hook called once per game on the terminal tick, must be called before Run
func (cs *ClockScheduler) OnGameOver(fn func(res TickResult)) {
	cs.onGameOver = fn
}

// Pause freezes game time
func (cs *ClockScheduler) Pause() {
	cs.clock.Pause()
	cs.game.IsPaused.Store(true)
	cs.statPaused.Store(true)
}

// Resume restarts game time
func (cs *ClockScheduler) Resume() {
	cs.clock.Resume()
	cs.game.IsPaused.Store(false)
	cs.statPaused.Store(false)
}

// TogglePause flips pause state and returns the new state
func (cs *ClockScheduler) TogglePause() bool {
	if cs.clock.IsPaused() {
		cs.Resume()
		return false
	}
	cs.Pause()
	return true
}

// Reset discards accumulated time; call after GameContext.Reset
func (cs *ClockScheduler) Reset() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.accumulator = 0
	cs.lastGameTime = cs.clock.Now()
	cs.gameOverFired = false
}

// Advance runs one frame covering elapsed game time followed by every tick that
// fits into the accumulated time, capped at MaxTicksPerAdvance
// Stops at the first terminal tick. Returns the number of ticks run and the last result
func (cs *ClockScheduler) Advance(elapsed time.Duration) (int, TickResult) {
	cs.mu.Lock()

	cs.game.Frame(elapsed)

	interval := cs.TickInterval()
	cs.accumulator += elapsed

	var (
		ticks int
		last  TickResult
	)
	for cs.accumulator >= interval {
		if ticks == constants.MaxTicksPerAdvance {
			// Spiral guard: drop the backlog instead of replaying it
			cs.statDropped.Add(int64(cs.accumulator / interval))
			cs.accumulator %= interval
			break
		}
		cs.accumulator -= interval
		last = cs.game.Tick(interval)
		if !last.Moved {
			cs.accumulator = 0
			break
		}
		ticks++
		if last.GameOver {
			cs.accumulator = 0
			break
		}
	}

	fire := last.GameOver && !cs.gameOverFired
	if fire {
		cs.gameOverFired = true
	}
	cs.mu.Unlock()

	// Hooks run unlocked so they may call Reset or Pause
	if fire && cs.onGameOver != nil {
		cs.onGameOver(last)
	}
	return ticks, last
}

// Run schedules frames until ctx is cancelled
func (cs *ClockScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(cs.frameInterval)
	defer ticker.Stop()

	cs.Reset()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		now := cs.clock.Now()
		cs.mu.Lock()
		elapsed := now.Sub(cs.lastGameTime)
		cs.lastGameTime = now
		cs.mu.Unlock()
		if elapsed < 0 {
			elapsed = 0
		}

		ticks, res := cs.Advance(elapsed)
		if cs.onFrame != nil {
			cs.onFrame(ticks, res)
		}
	}
}
