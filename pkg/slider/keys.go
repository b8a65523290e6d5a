package slider

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/multirange/pkg/interact"
)

// KeyMap binds keys to value adjustments of the focused handle.
type KeyMap struct {
	Decrease key.Binding
	Increase key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultKeyMap returns arrow, vim-style and paging bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Decrease: key.NewBinding(
			key.WithKeys("left", "down", "h", "j"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "up", "l", "k"),
			key.WithHelp("→/l", "increase"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "-10 steps"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "+10 steps"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "min"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "max"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase, k.Home, k.End}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrease, k.Increase},
		{k.PageDown, k.PageUp},
		{k.Home, k.End},
	}
}

// command translates a key press into a machine key.
func (k KeyMap) command(msg tea.KeyMsg) interact.Key {
	switch {
	case key.Matches(msg, k.Decrease):
		return interact.KeyLeft
	case key.Matches(msg, k.Increase):
		return interact.KeyRight
	case key.Matches(msg, k.PageDown):
		return interact.KeyPageDown
	case key.Matches(msg, k.PageUp):
		return interact.KeyPageUp
	case key.Matches(msg, k.Home):
		return interact.KeyHome
	case key.Matches(msg, k.End):
		return interact.KeyEnd
	}
	return interact.KeyNone
}
