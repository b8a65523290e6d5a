package app

import (
	"github.com/charmbracelet/bubbles/key"

	"gitlab.com/tinyland/lab/multirange/pkg/slider"
)

// KeyMap holds the program-level bindings. Slider bindings are appended to
// the help view from the focused slider.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Theme  key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding

	slider slider.KeyMap
}

// DefaultKeyMap returns the default program bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next handle"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev handle"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload ticks"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		slider: slider.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{
		{k.Next, k.Prev},
		{k.Theme, k.Reload},
		{k.Help, k.Quit},
	}, k.slider.FullHelp()...)
}
