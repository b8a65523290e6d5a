// Package theme defines the color palettes used to draw multirange sliders.
// Themes are registered by name; unknown names fall back to "default".
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme is the palette for one slider. Colors are "#RRGGBB" hex strings, or
// 256-color indices after Adapt.
type Theme struct {
	Name string

	// Base colors
	Foreground string
	Dim        string // dimmed text, inactive ticks
	Accent     string // focused slider border, title

	// Track colors
	Track string // unselected portion of the track
	Range string // portion between the lowest and highest handle
	Tick  string // tick marks under the track
	Label string // tick labels and value readout

	// Handle colors
	Thumb       string
	ThumbFocus  string // keyboard focus
	ThumbActive string // following the pointer

	// Help line
	HelpKey  string
	HelpDesc string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to Default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Default returns the default theme.
func Default() Theme {
	return Get("default")
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a theme under its lowercase name, replacing any existing
// theme of that name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
