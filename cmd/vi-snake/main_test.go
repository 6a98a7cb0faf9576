package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/systems"
)

type harness struct {
	game      *engine.GameContext
	scheduler *engine.ClockScheduler
	sound     *audio.SoundManager
	images    *render.ImageRenderer
	screen    tcell.SimulationScreen
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	game, err := engine.NewGameContext(engine.ConfigResource{Grid: core.NewGrid(4, 4, 2), Seed: 3})
	if err != nil {
		t.Fatalf("NewGameContext failed: %v", err)
	}
	systems.Install(game, nil)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)

	clock := engine.NewPausableClockWithProvider(engine.NewMockTimeProvider(time.Unix(0, 0)))
	return &harness{
		game:      game,
		scheduler: engine.NewClockScheduler(game, clock, 0, 100*time.Millisecond),
		sound:     audio.NewSoundManager(nil),
		images:    render.NewImageRenderer(2),
		screen:    screen,
	}
}

func (h *harness) handle(intent input.Intent) error {
	return handleIntent(intent, h.game, h.scheduler, h.sound, h.images, h.screen)
}

func TestHandleIntentQuit(t *testing.T) {
	h := newHarness(t)
	if err := h.handle(input.Intent{Type: input.IntentQuit}); !errors.Is(err, errQuit) {
		t.Errorf("Expected errQuit, got %v", err)
	}
}

func TestHandleIntentDirectionAndPause(t *testing.T) {
	h := newHarness(t)

	if err := h.handle(input.Intent{Type: input.IntentDirection, Direction: core.DirUp}); err != nil {
		t.Fatalf("Direction failed: %v", err)
	}
	h.game.Frame(0)
	if d := h.game.Snapshot().Direction; d != core.DirUp {
		t.Errorf("Expected up, got %v", d)
	}

	h.handle(input.Intent{Type: input.IntentPause})
	if !h.game.IsPaused.Load() {
		t.Error("Expected paused")
	}
	h.handle(input.Intent{Type: input.IntentPause})
	if h.game.IsPaused.Load() {
		t.Error("Expected resumed")
	}
}

func TestHandleIntentRestartOnlyAfterGameOver(t *testing.T) {
	h := newHarness(t)

	// Restart while alive is ignored
	h.game.Tick(100 * time.Millisecond)
	h.handle(input.Intent{Type: input.IntentRestart})
	if h.game.Snapshot().Ticks != 1 {
		t.Fatal("Restart while alive reset the game")
	}

	// 4x4 board: head starts at x=0, wall past x=1
	for i := 0; i < 4 && h.game.Snapshot().Alive; i++ {
		h.game.Tick(100 * time.Millisecond)
	}
	if h.game.Snapshot().Alive {
		t.Fatal("Expected wall collision")
	}

	if err := h.handle(input.Intent{Type: input.IntentRestart}); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	snap := h.game.Snapshot()
	if !snap.Alive || snap.Length != 2 || snap.Ticks != 0 {
		t.Errorf("Expected fresh game, got %+v", snap)
	}
}

func TestHandleIntentToggleMute(t *testing.T) {
	h := newHarness(t)
	before := h.sound.IsEnabled()
	h.handle(input.Intent{Type: input.IntentToggleMute})
	if h.sound.IsEnabled() == before {
		t.Error("Mute toggle had no effect")
	}
}

func TestNewInputMachineKeymap(t *testing.T) {
	if _, err := newInputMachine(""); err != nil {
		t.Fatalf("Default machine failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(path, []byte("[keys]\nx = \"quit\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := newInputMachine(path)
	if err != nil {
		t.Fatalf("Keymap machine failed: %v", err)
	}
	if got := m.Process(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); got.Type != input.IntentQuit {
		t.Errorf("Keymap binding ignored, got %v", got.Type)
	}

	if _, err := newInputMachine(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing keymap")
	}
}
