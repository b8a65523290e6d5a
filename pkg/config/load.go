package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/multirange/config.toml
//  2. ~/.config/multirange/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, cfg.finish()
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		slog.Debug("config: unknown keys ignored", "keys", fmt.Sprint(keys))
	}
	applyEnvOverrides(cfg)
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultDragThreshold is the overlap resolution distance in cells.
const DefaultDragThreshold = 0.5

// finish expands presets, fills defaults and validates.
func (c *Config) finish() error {
	c.Slider = withDefaults(applyPreset(c.Slider))
	for i := range c.Sliders {
		c.Sliders[i] = withDefaults(applyPreset(c.Sliders[i]))
	}
	return c.Validate()
}

func withDefaults(s SliderConfig) SliderConfig {
	if s.DragThreshold == 0 {
		s.DragThreshold = DefaultDragThreshold
	}
	return s
}

// DefaultConfig returns the default configuration: one "range" slider on
// [0, 100].
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Slider: SliderConfig{
			ID:            "range",
			Preset:        "range",
			DragThreshold: DefaultDragThreshold,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.General.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("general.log_level %q: %w", c.General.LogLevel, err))
	}
	seen := map[string]bool{}
	for i, s := range c.All() {
		name := s.ID
		if name == "" {
			name = fmt.Sprintf("slider #%d", i)
		}
		if s.ID != "" && seen[s.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate slider id", name))
		}
		seen[s.ID] = true
		if s.DragThreshold < 0 {
			errs = append(errs, fmt.Errorf("%s: drag_threshold must not be negative", name))
		}
		if s.Width < 0 {
			errs = append(errs, fmt.Errorf("%s: width must not be negative", name))
		}
		if len(s.Handles) == 0 {
			errs = append(errs, fmt.Errorf("%s: no handles", name))
		}
		for j, h := range s.Handles {
			if h.Step < 0 {
				errs = append(errs, fmt.Errorf("%s: handle %d: step must not be negative", name, j))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MULTIRANGE_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("MULTIRANGE_TICKS_FILE"); v != "" {
		cfg.Ticks.File = v
	}
	if v := os.Getenv("MULTIRANGE_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "multirange", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "multirange", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
