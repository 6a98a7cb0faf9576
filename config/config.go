package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables overriding file values
// Audio variables are handled by audio.ApplyEnv
const (
	EnvGridWidth    = "VI_SNAKE_GRID_WIDTH"
	EnvGridHeight   = "VI_SNAKE_GRID_HEIGHT"
	EnvTickInterval = "VI_SNAKE_TICK_INTERVAL" // Go duration, e.g. 150ms
	EnvSeed         = "VI_SNAKE_SEED"
	EnvHTTPAddr     = "VI_SNAKE_HTTP_ADDR"
	EnvDebug        = "VI_SNAKE_DEBUG"
)

// Duration is a time.Duration written as a Go duration string in TOML
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

type GridConfig struct {
	Width    int `toml:"width"`
	Height   int `toml:"height"`
	CellSize int `toml:"cell_size"`
}

type TimingConfig struct {
	TickInterval  Duration `toml:"tick_interval"`
	FrameInterval Duration `toml:"frame_interval"`
}

type SnakeConfig struct {
	InitialLength    int    `toml:"initial_length"`
	InitialDirection string `toml:"initial_direction"`
}

type FoodConfig struct {
	MaxAttempts int    `toml:"max_attempts"`
	Seed        uint64 `toml:"seed"` // 0 picks a time-based seed at startup
}

type AudioConfig struct {
	Enabled       bool               `toml:"enabled"`
	MasterVolume  float64            `toml:"master_volume"`
	SampleRate    int                `toml:"sample_rate"`
	EffectVolumes map[string]float64 `toml:"effect_volumes"`
}

type HTTPConfig struct {
	Addr string `toml:"addr"` // Empty disables the server
}

// Config is the full runtime configuration
type Config struct {
	Grid   GridConfig   `toml:"grid"`
	Timing TimingConfig `toml:"timing"`
	Snake  SnakeConfig  `toml:"snake"`
	Food   FoodConfig   `toml:"food"`
	Audio  AudioConfig  `toml:"audio"`
	HTTP   HTTPConfig   `toml:"http"`
	Keymap string       `toml:"keymap"` // Optional keymap TOML path
	Debug  bool         `toml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	return &Config{
		Grid: GridConfig{
			Width:    constants.DefaultGridWidth,
			Height:   constants.DefaultGridHeight,
			CellSize: constants.DefaultCellSize,
		},
		Timing: TimingConfig{
			TickInterval:  Duration(constants.GameUpdateInterval),
			FrameInterval: Duration(constants.FrameUpdateInterval),
		},
		Snake: SnakeConfig{
			InitialLength:    constants.InitialSnakeLength,
			InitialDirection: constants.DefaultInitialDirection,
		},
		Food: FoodConfig{
			MaxAttempts: constants.FoodSpawnMaxAttempts,
		},
		Audio: AudioConfig{
			Enabled:       ac.Enabled,
			MasterVolume:  ac.MasterVolume,
			SampleRate:    ac.SampleRate,
			EffectVolumes: map[string]float64{},
		},
	}
}

// Load builds a Config: defaults, then the TOML file at path (skipped when path is empty),
// then environment overrides, then validation
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data over cfg; keys absent from data keep their current values
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v, err := strconv.Atoi(os.Getenv(EnvGridWidth)); err == nil {
		c.Grid.Width = v
	}
	if v, err := strconv.Atoi(os.Getenv(EnvGridHeight)); err == nil {
		c.Grid.Height = v
	}
	if v, err := time.ParseDuration(os.Getenv(EnvTickInterval)); err == nil {
		c.Timing.TickInterval = Duration(v)
	}
	if v, err := strconv.ParseUint(os.Getenv(EnvSeed), 10, 64); err == nil {
		c.Food.Seed = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		c.HTTP.Addr = v
	}
	if v, err := strconv.ParseBool(os.Getenv(EnvDebug)); err == nil {
		c.Debug = v
	}

	ac := c.AudioSettings()
	audio.ApplyEnv(ac)
	c.setAudio(ac)
}

// Validate checks every field and that the initial snake fits on the board
func (c *Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.CellSize < 1 {
		return fmt.Errorf("%w: cell_size %d", ErrInvalidConfig, c.Grid.CellSize)
	}
	if time.Duration(c.Timing.TickInterval) < constants.MinGameUpdateInterval {
		return fmt.Errorf("%w: tick_interval %v below %v", ErrInvalidConfig, time.Duration(c.Timing.TickInterval), constants.MinGameUpdateInterval)
	}
	if c.Timing.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval must be positive", ErrInvalidConfig)
	}
	if c.Food.MaxAttempts < 1 {
		return fmt.Errorf("%w: food.max_attempts %d", ErrInvalidConfig, c.Food.MaxAttempts)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume %v outside [0, 1]", ErrInvalidConfig, c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate < 1 {
		return fmt.Errorf("%w: audio.sample_rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	}

	dir, ok := core.ParseDirection(c.Snake.InitialDirection)
	if !ok {
		return fmt.Errorf("%w: snake.initial_direction %q", ErrInvalidConfig, c.Snake.InitialDirection)
	}
	if c.Snake.InitialLength < 2 {
		return fmt.Errorf("%w: snake.initial_length %d below 2", ErrInvalidConfig, c.Snake.InitialLength)
	}
	grid := c.CoreGrid()
	tail := core.Cell{
		X: grid.Center().X - dir.DX*(c.Snake.InitialLength-1),
		Y: grid.Center().Y - dir.DY*(c.Snake.InitialLength-1),
	}
	if !grid.Contains(tail) {
		return fmt.Errorf("%w: snake of length %d facing %s does not fit a %dx%d grid",
			ErrInvalidConfig, c.Snake.InitialLength, dir, grid.Width, grid.Height)
	}
	return nil
}

// CoreGrid returns the board geometry
func (c *Config) CoreGrid() core.Grid {
	return core.NewGrid(c.Grid.Width, c.Grid.Height, c.Grid.CellSize)
}

// EngineConfig converts to the simulation resource; call only on a validated Config
func (c *Config) EngineConfig() engine.ConfigResource {
	dir, _ := core.ParseDirection(c.Snake.InitialDirection)
	return engine.ConfigResource{
		Grid:             c.CoreGrid(),
		InitialLength:    c.Snake.InitialLength,
		InitialDirection: dir,
		FoodMaxAttempts:  c.Food.MaxAttempts,
		Seed:             c.Food.Seed,
	}
}

// AudioSettings converts the audio section, unnamed effects keep their defaults
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, v := range c.Audio.EffectVolumes {
		if st, ok := audio.SoundByName(name); ok {
			ac.EffectVolumes[st] = audio.ClampVolume(v)
		}
	}
	return ac
}

func (c *Config) setAudio(ac *audio.AudioConfig) {
	c.Audio.Enabled = ac.Enabled
	c.Audio.MasterVolume = ac.MasterVolume
	c.Audio.SampleRate = ac.SampleRate
	if c.Audio.EffectVolumes == nil {
		c.Audio.EffectVolumes = make(map[string]float64)
	}
	for st, v := range ac.EffectVolumes {
		c.Audio.EffectVolumes[audio.SoundName(st)] = v
	}
}

// TickInterval returns the movement cadence
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickInterval)
}

// FrameInterval returns the frame cadence
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Timing.FrameInterval)
}
