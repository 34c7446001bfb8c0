package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/mud-r1/audio"
	"github.com/lixenwraith/mud-r1/constants"
	"github.com/lixenwraith/mud-r1/input"
	"github.com/lixenwraith/mud-r1/logging"
	"github.com/lixenwraith/mud-r1/momentum"
	"github.com/lixenwraith/mud-r1/world"
)

// ErrInvalid is wrapped by every parse and validation failure
var ErrInvalid = errors.New("invalid config")

// Duration decodes TOML strings like "200ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type GridConfig struct {
	Size   int `toml:"size"`
	StartX int `toml:"start_x"`
	StartY int `toml:"start_y"`
}

type MenuConfig struct {
	Cancel bool `toml:"cancel"`
}

type MomentumConfig struct {
	Base      float64  `toml:"base"`
	Max       float64  `toml:"max"`
	Accel     float64  `toml:"accel"`
	Decel     float64  `toml:"decel"`
	Threshold float64  `toml:"threshold"`
	Window    Duration `toml:"window"`
	Staleness Duration `toml:"staleness"`
}

type KeysConfig struct {
	Up      []string `toml:"up"`
	Down    []string `toml:"down"`
	Confirm []string `toml:"confirm"`
	Quit    []string `toml:"quit"`
}

type AudioConfig struct {
	Enabled    bool               `toml:"enabled"`
	Volume     float64            `toml:"volume"`
	SampleRate int                `toml:"sample_rate"`
	Cues       map[string]float64 `toml:"cues"`
}

type LogConfig struct {
	Enabled   bool   `toml:"enabled"`
	Level     string `toml:"level"`
	Format    string `toml:"format"`
	Dir       string `toml:"dir"`
	File      string `toml:"file"`
	MaxSizeMB int64  `toml:"max_size_mb"`
}

// Config is the full application configuration
// Sections missing from the file keep their defaults
type Config struct {
	Grid     GridConfig     `toml:"grid"`
	Menu     MenuConfig     `toml:"menu"`
	Momentum MomentumConfig `toml:"momentum"`
	Keys     KeysConfig     `toml:"keys"`
	Audio    AudioConfig    `toml:"audio"`
	Log      LogConfig      `toml:"log"`
}

// Default returns the built-in configuration
func Default() Config {
	p := momentum.DefaultParams()
	a := audio.DefaultConfig()
	l := logging.DefaultOptions()

	return Config{
		Grid: GridConfig{
			Size:   constants.DefaultGridSize,
			StartX: constants.DefaultStartX,
			StartY: constants.DefaultStartY,
		},
		Menu: MenuConfig{Cancel: constants.MenuCancelEnabled},
		Momentum: MomentumConfig{
			Base:      p.Base,
			Max:       p.Max,
			Accel:     p.Accel,
			Decel:     p.Decel,
			Threshold: p.Threshold,
			Window:    Duration{p.Window},
			Staleness: Duration{p.Staleness},
		},
		Audio: AudioConfig{
			Enabled:    a.Enabled,
			Volume:     a.MasterVolume,
			SampleRate: a.SampleRate,
		},
		Log: LogConfig{
			Enabled:   l.Enabled,
			Level:     l.Level,
			Format:    l.Format,
			Dir:       l.Dir,
			File:      l.File,
			MaxSizeMB: l.MaxSize / (1024 * 1024),
		},
	}
}

// Parse decodes TOML data over the defaults and validates the result
// Keys that match no field are an error
func Parse(data []byte) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys: %s", ErrInvalid, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path; an empty path yields the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section
func (c Config) Validate() error {
	if c.Grid.Size < world.MinGridSize {
		return fmt.Errorf("%w: grid size %d below %d", ErrInvalid, c.Grid.Size, world.MinGridSize)
	}
	start := world.Coord{X: c.Grid.StartX, Y: c.Grid.StartY}
	if start.X < 0 || start.Y < 0 || start.X >= c.Grid.Size || start.Y >= c.Grid.Size {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalid, start, c.Grid.Size, c.Grid.Size)
	}

	if err := c.MomentumParams().Validate(); err != nil {
		return fmt.Errorf("%w: momentum: %w", ErrInvalid, err)
	}

	if _, err := input.BuildKeyTable(c.KeyBindings()); err != nil {
		return fmt.Errorf("%w: keys: %w", ErrInvalid, err)
	}

	if _, err := c.AudioSettings(); err != nil {
		return fmt.Errorf("%w: audio: %w", ErrInvalid, err)
	}

	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("%w: log max_size_mb %d negative", ErrInvalid, c.Log.MaxSizeMB)
	}
	if err := c.LogOptions().Validate(); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalid, err)
	}
	return nil
}

// Start returns the configured starting coordinate
func (c Config) Start() world.Coord {
	return world.Coord{X: c.Grid.StartX, Y: c.Grid.StartY}
}

// MomentumParams converts the [momentum] section
func (c Config) MomentumParams() momentum.Params {
	m := c.Momentum
	return momentum.Params{
		Base:      m.Base,
		Max:       m.Max,
		Accel:     m.Accel,
		Decel:     m.Decel,
		Threshold: m.Threshold,
		Window:    m.Window.Duration,
		Staleness: m.Staleness.Duration,
	}
}

// KeyBindings converts the [keys] section
func (c Config) KeyBindings() input.Bindings {
	return input.Bindings{
		Up:      c.Keys.Up,
		Down:    c.Keys.Down,
		Confirm: c.Keys.Confirm,
		Quit:    c.Keys.Quit,
	}
}

// AudioSettings converts and validates the [audio] section
func (c Config) AudioSettings() (audio.Config, error) {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = c.Audio.Volume
	a.SampleRate = c.Audio.SampleRate

	names := make([]string, 0, len(c.Audio.Cues))
	for name := range c.Audio.Cues {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := a.SetCueVolume(name, c.Audio.Cues[name]); err != nil {
			return audio.Config{}, err
		}
	}

	if err := a.Validate(); err != nil {
		return audio.Config{}, err
	}
	return a, nil
}

// LogOptions converts the [log] section
func (c Config) LogOptions() logging.Options {
	return logging.Options{
		Enabled: c.Log.Enabled,
		Dir:     c.Log.Dir,
		File:    c.Log.File,
		Level:   c.Log.Level,
		Format:  c.Log.Format,
		MaxSize: c.Log.MaxSizeMB * 1024 * 1024,
	}
}
