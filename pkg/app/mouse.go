package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/multirange/pkg/interact"
	"gitlab.com/tinyland/lab/multirange/pkg/pointer"
)

// handleMouse sends presses to the slider under the pointer and fans motion
// and release out through the hub, so a drag keeps tracking after the
// pointer leaves the slider's rows.
func (m *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev := pointer.Event{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if tea.MouseEvent(msg).IsWheel() {
			return nil
		}
		i, x, ok := m.trackAt(msg)
		// A press means any earlier release was lost.
		var cmds []tea.Cmd
		for j, s := range m.sliders {
			if !ok || j != i {
				cmds = append(cmds, s.Release())
			}
		}
		if ok {
			cmds = append(cmds, m.sliders[i].PressAt(x, buttonOf(msg.Button)))
		}
		return tea.Batch(cmds...)
	case tea.MouseActionMotion:
		return m.hub.Move(ev)
	case tea.MouseActionRelease:
		return m.hub.Up(ev)
	}
	return nil
}

func buttonOf(b tea.MouseButton) interact.Button {
	switch b {
	case tea.MouseButtonLeft:
		return interact.ButtonPrimary
	case tea.MouseButtonMiddle:
		return interact.ButtonMiddle
	case tea.MouseButtonRight:
		return interact.ButtonSecondary
	}
	return interact.ButtonNone
}

// trackAt finds the slider whose track row is under the pointer and the
// pointer's column on that track. Marked zones are preferred; without them
// the rows are computed from the rendered layout.
func (m *AppModel) trackAt(msg tea.MouseMsg) (int, int, bool) {
	if m.zones != nil {
		for i, s := range m.sliders {
			z := m.zones.Get(s.TrackZone())
			if z == nil || z.IsZero() || !z.InBounds(msg) {
				continue
			}
			s.SetOrigin(z.StartX)
			return i, msg.X - z.StartX, true
		}
	}

	y := headerHeight
	for i, block := range m.blocks() {
		if msg.Y == y+1 {
			x := msg.X - marginLeft
			if x < 0 || x >= m.sliders[i].Width() {
				return 0, 0, false
			}
			return i, x, true
		}
		y += strings.Count(block, "\n") + 1 + blockGap
	}
	return 0, 0, false
}
