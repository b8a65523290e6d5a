// Package config provides TOML-based configuration for multirange.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/multirange/pkg/rangeval"
	"gitlab.com/tinyland/lab/multirange/pkg/store"
)

// Config is the root of config.toml.
type Config struct {
	General GeneralConfig  `toml:"general"`
	Slider  SliderConfig   `toml:"slider"`
	Sliders []SliderConfig `toml:"sliders"`
	Ticks   TicksConfig    `toml:"ticks"`
	Theme   ThemeConfig    `toml:"theme"`
}

// GeneralConfig holds logging settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// Level parses LogLevel. Unknown levels are reported by Validate and read
// as info here.
func (g GeneralConfig) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(g.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// SliderConfig describes one slider.
type SliderConfig struct {
	ID     string `toml:"id"`
	Title  string `toml:"title"`
	Preset string `toml:"preset"`

	Min            *float64 `toml:"min"`
	Max            *float64 `toml:"max"`
	StepBetween    float64  `toml:"step_between"`
	DiscreteSource string   `toml:"discrete_source"`

	// DragThreshold is in terminal cells.
	DragThreshold float64 `toml:"drag_threshold"`
	// Width of the track in cells; 0 follows the terminal.
	Width int `toml:"width"`

	Handles []HandleConfig `toml:"handle"`
}

// HandleConfig describes one handle source.
type HandleConfig struct {
	ID    string   `toml:"id"`
	Label string   `toml:"label"`
	Value Number   `toml:"value"`
	Min   *float64 `toml:"min"`
	Max   *float64 `toml:"max"`
	Step  float64  `toml:"step"`
}

// Number is a handle value as written in the file: a TOML number or a
// string. Text that does not parse reads as 0.
type Number string

// UnmarshalTOML implements toml.Unmarshaler.
func (n *Number) UnmarshalTOML(v interface{}) error {
	switch x := v.(type) {
	case string:
		*n = Number(x)
	case int64, float64:
		*n = Number(fmt.Sprint(x))
	default:
		return fmt.Errorf("unsupported handle value %v (%T)", v, v)
	}
	return nil
}

// Float returns the parsed value.
func (n Number) Float() float64 {
	return rangeval.ParseNumber(string(n))
}

// Domain returns the configured bounds, defaulting to [0, 100].
func (s SliderConfig) Domain() rangeval.Domain {
	d := rangeval.DefaultDomain()
	if s.Min != nil {
		d.Min = *s.Min
	}
	if s.Max != nil {
		d.Max = *s.Max
	}
	return d
}

// StoreHandles converts the handle list for the value store.
func (s SliderConfig) StoreHandles() []store.Handle {
	out := make([]store.Handle, len(s.Handles))
	for i, h := range s.Handles {
		out[i] = store.Handle{
			ID:    h.ID,
			Value: h.Value.Float(),
			Min:   h.Min,
			Max:   h.Max,
			Step:  h.Step,
		}
	}
	return out
}

// Labels maps handle ids to their configured labels.
func (s SliderConfig) Labels() map[string]string {
	out := map[string]string{}
	for _, h := range s.Handles {
		if h.ID != "" && h.Label != "" {
			out[h.ID] = h.Label
		}
	}
	return out
}

// All returns the primary slider followed by the extra [[sliders]] entries.
func (c *Config) All() []SliderConfig {
	out := make([]SliderConfig, 0, 1+len(c.Sliders))
	out = append(out, c.Slider)
	return append(out, c.Sliders...)
}

// TicksConfig points at a tick list file.
type TicksConfig struct {
	File           string   `toml:"file"`
	ReloadInterval Duration `toml:"reload_interval"`
}

// ThemeConfig selects the palette.
type ThemeConfig struct {
	Name string `toml:"name"`
	// File is an optional TOML theme registered before Name is resolved.
	File string `toml:"file"`
}

// Duration wraps time.Duration with TOML-friendly string parsing, e.g.
// "30s" or "5m". "off" and "" disable.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" || s == "off" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	if d.Duration == 0 {
		return []byte("off"), nil
	}
	return []byte(d.Duration.String()), nil
}
