package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/httpapi"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/systems"
	"golang.org/x/sync/errgroup"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML config file, watched for changes")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/vi-snake.log")
	httpFlag     = flag.String("http", "", "HTTP API listen address, e.g. 127.0.0.1:8080")
	seedFlag     = flag.Uint64("seed", 0, "Food placement seed, 0 for time-based")
	snapshotFlag = flag.String("snapshot", "", "Write the final board to this PNG path on exit")
	traceFlag    = flag.String("trace", "", "Comma-separated event names to log in debug mode, empty for all")
)

// errQuit ends the errgroup on a user quit
var errQuit = errors.New("quit")

func main() {
	flag.Parse()
	events.InitRegistry()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *httpFlag != "" {
		cfg.HTTP.Addr = *httpFlag
	}
	if *seedFlag != 0 {
		cfg.Food.Seed = *seedFlag
	}
	if cfg.Food.Seed == 0 {
		cfg.Food.Seed = uint64(time.Now().UnixNano())
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = log.Writer()
	gin.DefaultErrorWriter = log.Writer()

	session := uuid.NewString()
	log.Printf("Session %s starting: grid %dx%d, tick %v, seed %d",
		session, cfg.Grid.Width, cfg.Grid.Height, cfg.TickInterval(), cfg.Food.Seed)

	if err := run(cfg, session); err != nil {
		log.Printf("Session %s failed: %v", session, err)
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Session %s ended", session)
}

func run(cfg *config.Config, session string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()

	// Panic Recovery: restore the terminal before printing the trace
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	game, err := engine.NewGameContext(cfg.EngineConfig())
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(cfg.AudioSettings())
	var player engine.AudioPlayer
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
			player = sound
		}
	}
	systems.Install(game, player)
	if cfg.Debug {
		types, err := events.ParseEventTypes(*traceFlag)
		if err != nil {
			return fmt.Errorf("trace: %w", err)
		}
		game.RegisterHandler(systems.NewEventTraceSystem(types, log.Printf))
	}

	machine, err := newInputMachine(cfg.Keymap)
	if err != nil {
		return err
	}

	terminalRenderer := render.NewTerminalRenderer(screen, game.Status)
	images := render.NewImageRenderer(cfg.Grid.CellSize)

	scheduler := engine.NewClockScheduler(game, engine.NewPausableClock(), cfg.FrameInterval(), cfg.TickInterval())
	scheduler.OnFrame(func(int, engine.TickResult) {
		terminalRenderer.RenderFrame(game.Snapshot(), game.IsPaused.Load())
	})
	scheduler.OnGameOver(func(res engine.TickResult) {
		log.Printf("Game over (%s) at %v, length %d", res.Cause, res.Head, res.Length)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(guard(func() error {
		return scheduler.Run(gctx)
	}))

	// PollEvent blocks, so the poller lives outside the group and exits on Fini or quit
	termEvents := make(chan tcell.Event, 64)
	pollerDone := make(chan struct{})
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case termEvents <- ev:
			case <-pollerDone:
				return
			}
		}
	})

	g.Go(guard(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev := <-termEvents:
				if err := handleIntent(machine.Process(ev), game, scheduler, sound, images, screen); err != nil {
					return err
				}
			}
		}
	}))

	if cfg.HTTP.Addr != "" {
		srv := httpapi.NewServer(game, session)
		g.Go(guard(func() error {
			return srv.Run(gctx, cfg.HTTP.Addr)
		}))
	}

	if *configFlag != "" {
		g.Go(guard(func() error {
			return config.Watch(gctx, *configFlag, func(next *config.Config) {
				scheduler.SetTickInterval(next.TickInterval())
				sound.SetMasterVolume(next.Audio.MasterVolume)
				sound.SetEnabled(next.Audio.Enabled)
			})
		}))
	}

	err = g.Wait()
	close(pollerDone)
	if errors.Is(err, errQuit) {
		err = nil
	}

	if *snapshotFlag != "" {
		if serr := images.SavePNG(*snapshotFlag, game.Snapshot()); serr != nil {
			log.Printf("Final snapshot failed: %v", serr)
		}
	}
	return err
}

// handleIntent applies one parsed input to the running game
func handleIntent(intent input.Intent, game *engine.GameContext, scheduler *engine.ClockScheduler,
	sound *audio.SoundManager, images *render.ImageRenderer, screen tcell.Screen) error {

	switch intent.Type {
	case input.IntentQuit:
		return errQuit

	case input.IntentDirection:
		game.PushDirection(intent.Direction)

	case input.IntentPause:
		if game.Snapshot().Alive {
			paused := scheduler.TogglePause()
			log.Printf("Paused: %v", paused)
		}

	case input.IntentRestart:
		if game.Snapshot().Alive {
			return nil
		}
		if err := game.Reset(); err != nil {
			return err
		}
		scheduler.Reset()
		scheduler.Resume()
		log.Printf("Restarted")

	case input.IntentToggleMute:
		sound.SetEnabled(!sound.IsEnabled())

	case input.IntentSnapshot:
		path := filepath.Join("snapshots", fmt.Sprintf("board-%s.png", time.Now().Format("20060102-150405")))
		if err := images.SavePNG(path, game.Snapshot()); err != nil {
			log.Printf("Snapshot failed: %v", err)
		} else {
			log.Printf("Snapshot written to %s", path)
		}

	case input.IntentResize:
		screen.Sync()
	}
	return nil
}

// newInputMachine builds the key parser, layering the optional keymap file over the defaults
func newInputMachine(keymapPath string) (*input.Machine, error) {
	keys := input.DefaultKeyTable()
	if keymapPath != "" {
		data, err := os.ReadFile(keymapPath)
		if err != nil {
			return nil, fmt.Errorf("read keymap: %w", err)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			return nil, err
		}
		keys = input.MergeKeyTable(keys, override)
	}
	return input.NewMachineWithTable(keys), nil
}

// guard converts a panic in an errgroup goroutine into the unified crash path
func guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return fn()
	}
}
