package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is looked up in the working directory when no path is given
const DefaultFileName = "bug-snake.toml"

// Config holds runtime preferences
// Zero values are not meaningful, start from Default
type Config struct {
	// Symbols selects the glyph set: auto, unicode or ascii
	Symbols string `toml:"symbols"`

	// Color enables the 256-color palette
	Color bool `toml:"color"`

	// Seed fixes the RNG, 0 seeds from the clock
	Seed uint64 `toml:"seed"`

	// Debug enables the file log and starts with the debug overlay visible
	Debug bool `toml:"debug"`

	Audio AudioConfig `toml:"audio"`
}

// AudioConfig holds sound preferences
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`

	// Bell rings the terminal bell when no audio device is available
	Bell bool `toml:"bell"`
}

// Default returns the built-in preferences
func Default() Config {
	return Config{
		Symbols: "auto",
		Color:   true,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
			Bell:    true,
		},
	}
}

// Load resolves the config with priority: customPath > DefaultFileName in cwd > defaults
// The second return is the file actually read, empty when defaults were used
func Load(customPath string) (Config, string, error) {
	cfg := Default()

	// Priority 1: Custom path from CLI
	if customPath != "" {
		if err := decodeFile(customPath, &cfg); err != nil {
			return Default(), "", err
		}
		return cfg, customPath, nil
	}

	// Priority 2: Default file in the working directory
	if fileExists(DefaultFileName) {
		if err := decodeFile(DefaultFileName, &cfg); err != nil {
			return Default(), "", err
		}
		return cfg, DefaultFileName, nil
	}

	// Priority 3: Defaults
	return cfg, "", nil
}

// Parse decodes TOML text over the defaults
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Default(), err
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

func checkUndecoded(md toml.MetaData) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		return fmt.Errorf("unknown config key %q", keys[0].String())
	}
	return nil
}

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate checks value ranges
func (c Config) Validate() error {
	switch c.Symbols {
	case "", "auto", "unicode", "ascii":
	default:
		return fmt.Errorf("%w: symbols %q (want auto, unicode or ascii)", ErrInvalid, c.Symbols)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %v out of [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// Encode writes cfg as TOML, used to print the effective configuration
func Encode(cfg Config) (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return b.String(), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
