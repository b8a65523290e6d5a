// Package app is the root bubbletea model of multirange. It hosts a stack of
// sliders, routes keys to the focused handle and mouse input to the slider
// under the pointer, and owns the pointer hub sliders subscribe to while
// mounted.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/multirange/pkg/ticks"
)

// TicksLoadedEvent carries a freshly loaded tick registry back into the
// update loop. Sliders with a source id re-resolve their ticks from it.
type TicksLoadedEvent struct {
	Registry  *ticks.Registry
	Err       error // Non-nil if the load failed
	Timestamp time.Time
}

// ThemeChangeEvent switches the active color theme.
type ThemeChangeEvent struct {
	Theme string
}

// TickEvent is sent periodically to trigger a tick reload.
type TickEvent struct {
	Time time.Time
}
