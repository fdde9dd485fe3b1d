package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
	"github.com/pelletier/go-toml/v2"
)

// Environment overrides, applied after the file
const (
	EnvAudioEnabled = "SNAKE_AUDIO_ENABLED"
	EnvVolume       = "SNAKE_VOLUME"
	EnvTickMS       = "SNAKE_TICK_MS"
)

// Config is the full game configuration
type Config struct {
	Grid    GridConfig          `toml:"grid"`
	Game    GameConfig          `toml:"game"`
	Palette PaletteConfig       `toml:"palette"`
	Audio   AudioConfig         `toml:"audio"`
	Keys    map[string][]string `toml:"keys"`
}

// GridConfig sizes the playfield, in cells
type GridConfig struct {
	Width    int `toml:"width"`
	Height   int `toml:"height"`
	CellSize int `toml:"cell_size"` // pixels, snapshot canvas only
}

type GameConfig struct {
	TickMS int   `toml:"tick_ms"`
	Seed   int64 `toml:"seed"` // 0 = time based
}

// PaletteConfig holds hex colour strings
type PaletteConfig struct {
	Background string `toml:"background"`
	Snake      string `toml:"snake"`
	Food       string `toml:"food"`
	Text       string `toml:"text"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	Volume  int  `toml:"volume"` // 0-100
}

// Default returns the reference configuration
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Width:    constants.GridWidth,
			Height:   constants.GridHeight,
			CellSize: constants.CellSize,
		},
		Game: GameConfig{
			TickMS: int(constants.GameUpdateInterval / time.Millisecond),
		},
		Palette: PaletteConfig{
			Background: constants.DefaultBackgroundHex,
			Snake:      constants.DefaultSnakeHex,
			Food:       constants.DefaultFoodHex,
			Text:       constants.DefaultTextHex,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  int(constants.DefaultVolume * 100),
		},
		Keys: map[string][]string{},
	}
}

// Load reads path over the defaults, applies environment overrides and validates.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("config: %s not found, using defaults", path)
		case err != nil:
			return nil, fmt.Errorf("config read: %w", err)
		default:
			if err := cfg.decode(data); err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults without environment overrides
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown fields:\n%s", strict.String())
		}
		return fmt.Errorf("parse: %w", err)
	}
	return nil
}

// applyEnv overrides values from the environment; malformed values are logged and ignored
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			log.Printf("config: ignoring %s=%q: %v", EnvAudioEnabled, v, err)
		}
	}

	if v := os.Getenv(EnvVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = min(max(n, 0), 100)
		} else {
			log.Printf("config: ignoring %s=%q: %v", EnvVolume, v, err)
		}
	}

	if v := os.Getenv(EnvTickMS); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Game.TickMS = n
		} else {
			log.Printf("config: ignoring %s=%q", EnvTickMS, v)
		}
	}
}

// Validate checks ranges and resolves palette and key bindings
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid: size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("grid.cell_size: must be positive, got %d", c.Grid.CellSize)
	}
	if c.Game.TickMS <= 0 {
		return fmt.Errorf("game.tick_ms: must be positive, got %d", c.Game.TickMS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("audio.volume: must be in [0,100], got %d", c.Audio.Volume)
	}
	if _, err := c.RenderPalette(); err != nil {
		return err
	}
	if _, err := c.KeyMap(); err != nil {
		return err
	}
	return nil
}

// RenderPalette parses the hex palette
func (c *Config) RenderPalette() (render.Palette, error) {
	p := c.Palette
	return render.ParsePalette(p.Background, p.Snake, p.Food, p.Text)
}

// KeyMap builds the direction bindings on top of the arrow keys
func (c *Config) KeyMap() (*input.KeyMap, error) {
	return input.ParseBindings(c.Keys)
}

// TickInterval returns the game tick period
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Game.TickMS) * time.Millisecond
}

// MasterVolume returns the audio volume scaled to [0,1]
func (c *Config) MasterVolume() float64 {
	return float64(c.Audio.Volume) / 100.0
}

// Sample returns a commented TOML document of the defaults
func Sample() string {
	return `# snake configuration

[grid]
width = 40
height = 30
cell_size = 20 # snapshot pixels per cell

[game]
tick_ms = 50
seed = 0 # 0 = time based

[palette]
background = "#000000"
snake = "#008000"
food = "#ff0000"
text = "#ffffff"

[audio]
enabled = true
volume = 50

# extra bindings on top of the arrow keys
[keys]
# up = ["k", "w"]
# down = ["j", "s"]
# left = ["h", "a"]
# right = ["l", "d"]
`
}
