package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/multirange/pkg/ticks"
)

// TickCmd returns a bubbletea Cmd that sends a TickEvent after the given
// duration. This drives periodic tick reloads.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// ReloadTicksCmd returns a Cmd that runs load in a goroutine and delivers the
// result as a TicksLoadedEvent. If load returns an error, the event's Err
// field is set and Registry is nil.
func ReloadTicksCmd(load func() (*ticks.Registry, error)) tea.Cmd {
	return func() tea.Msg {
		reg, err := load()
		if err != nil {
			reg = nil
		}
		return TicksLoadedEvent{
			Registry:  reg,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
}

// ThemeCmd returns a Cmd that switches to the named theme.
func ThemeCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return ThemeChangeEvent{Theme: name}
	}
}
