// Package slider is the bubbletea widget for a multirange slider. It wires
// the value store, the interaction machine and the tick set together,
// translates terminal key and mouse input for them, and turns store
// notifications into program messages.
package slider

import (
	"log/slog"
	"math"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/multirange/pkg/interact"
	"gitlab.com/tinyland/lab/multirange/pkg/pointer"
	"gitlab.com/tinyland/lab/multirange/pkg/rangeval"
	"gitlab.com/tinyland/lab/multirange/pkg/store"
	"gitlab.com/tinyland/lab/multirange/pkg/theme"
	"gitlab.com/tinyland/lab/multirange/pkg/ticks"
)

// InputMsg reports an accepted value change during an interaction.
type InputMsg struct {
	SliderID string
	Values   []float64
}

// ChangeMsg reports the values at the end of an interaction.
type ChangeMsg struct {
	SliderID string
	Values   []float64
}

// FocusMsg asks the host to move keyboard focus to a handle.
type FocusMsg struct {
	SliderID string
	Index    int
}

// Config describes one slider.
type Config struct {
	ID    string
	Title string

	Domain      rangeval.Domain
	StepBetween float64
	Ticks       ticks.Set
	Handles     []store.Handle

	// Source names the tick list the host resolves Ticks from, so a reload
	// can refresh it.
	Source string

	// DragThreshold is in terminal cells. Zero uses the machine default.
	DragThreshold float64
	// Width fixes the track width in cells. Zero follows the host.
	Width int

	Theme  theme.Theme
	Labels LabelResolver
	KeyMap KeyMap
	Zones  *zone.Manager
	Logger *slog.Logger
}

// Model is one slider. It is used through a pointer because the store and
// machine callbacks refer back to it.
type Model struct {
	id     string
	title  string
	source string

	store   *store.Store
	machine *interact.Machine
	sub     store.Subscription

	theme  theme.Theme
	styles styles
	labels LabelResolver
	keys   KeyMap
	help   help.Model
	zones  *zone.Manager
	logger *slog.Logger

	width      int
	fixedWidth int
	originX    int
	focused    bool
	focus      int

	queue   []tea.Msg
	release func()
}

// New builds a slider from cfg.
func New(cfg Config) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	keys := cfg.KeyMap
	if len(keys.Increase.Keys()) == 0 {
		keys = DefaultKeyMap()
	}
	th := cfg.Theme
	if th.Name == "" {
		th = theme.Default()
	}

	m := &Model{
		id:         cfg.ID,
		title:      cfg.Title,
		source:     cfg.Source,
		labels:     cfg.Labels,
		keys:       keys,
		help:       help.New(),
		zones:      cfg.Zones,
		logger:     logger.With("slider", cfg.ID),
		fixedWidth: cfg.Width,
	}
	m.store = store.New(store.Config{
		Domain:      cfg.Domain,
		StepBetween: cfg.StepBetween,
		Ticks:       cfg.Ticks,
		Logger:      m.logger,
	}, cfg.Handles...)
	m.machine = interact.New(m.store, interact.Config{
		DragThreshold: cfg.DragThreshold,
		OnFocus:       m.requestFocus,
	})
	m.sub = m.store.Subscribe(m.notify)
	m.SetTheme(th)
	if cfg.Width > 0 {
		m.SetWidth(cfg.Width)
	}
	return m
}

func (m *Model) notify(ev store.Event) {
	switch ev.Kind {
	case store.KindInput:
		m.queue = append(m.queue, InputMsg{SliderID: m.id, Values: ev.Values})
	case store.KindChange:
		m.queue = append(m.queue, ChangeMsg{SliderID: m.id, Values: ev.Values})
	}
}

func (m *Model) requestFocus(i int) {
	m.focused = true
	m.focus = i
	m.queue = append(m.queue, FocusMsg{SliderID: m.id, Index: i})
}

// flush turns queued notifications into one command that delivers them in
// the order they were produced.
func (m *Model) flush() tea.Cmd {
	if len(m.queue) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(m.queue))
	for i, msg := range m.queue {
		cmds[i] = func() tea.Msg { return msg }
	}
	m.queue = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// ID returns the slider identifier.
func (m *Model) ID() string { return m.id }

// Title returns the display title.
func (m *Model) Title() string { return m.title }

// Source returns the tick list id, if any.
func (m *Model) Source() string { return m.source }

// Keys returns the key bindings.
func (m *Model) Keys() KeyMap { return m.keys }

// Len returns the number of handles.
func (m *Model) Len() int { return m.store.Len() }

// Values returns the current handle values in index order.
func (m *Model) Values() []float64 { return m.store.Values() }

// ValueLabels returns the tick label of every value, or nil without ticks.
func (m *Model) ValueLabels() []string {
	t := m.store.Ticks()
	if t.Empty() {
		return nil
	}
	vals := m.store.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i], _ = t.Label(v)
	}
	return out
}

// Handle returns the underlying source of handle i.
func (m *Model) Handle(i int) (store.Handle, bool) { return m.store.Handle(i) }

// State returns the interaction state.
func (m *Model) State() interact.State { return m.machine.State() }

// SetValue normalizes and stores v for handle i without notifying.
func (m *Model) SetValue(i int, v float64) bool { return m.store.SetValue(i, v) }

// SetRawValue coerces raw and stores it for handle i without notifying.
func (m *Model) SetRawValue(i int, raw string) bool { return m.store.SetRawValue(i, raw) }

// SetTicks replaces the discrete domain.
func (m *Model) SetTicks(t ticks.Set) { m.store.SetTicks(t) }

// SetDomain replaces the domain.
func (m *Model) SetDomain(d rangeval.Domain) { m.store.SetDomain(d) }

// SetStepBetween replaces the minimum gap.
func (m *Model) SetStepBetween(v float64) { m.store.SetStepBetween(v) }

// SetHandleBounds replaces the own bounds of handle i. A nil bound falls
// back to the domain.
func (m *Model) SetHandleBounds(i int, lo, hi *float64) bool {
	return m.store.SetHandleBounds(i, lo, hi)
}

// SetTheme replaces the palette.
func (m *Model) SetTheme(t theme.Theme) {
	m.theme = t
	m.styles = newStyles(t)
	m.help.Styles.ShortKey = m.styles.helpKey
	m.help.Styles.ShortDesc = m.styles.helpDesc
	m.help.Styles.ShortSeparator = m.styles.dim
}

// SetWidth sets the track width in cells.
func (m *Model) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	m.width = w
	m.machine.SetTrack(interact.Track{Left: 0, Width: float64(w - 1)})
}

// Width returns the track width in cells.
func (m *Model) Width() int { return m.width }

// FixedWidth returns the configured track width, or 0.
func (m *Model) FixedWidth() int { return m.fixedWidth }

// SetOrigin records the screen column of the first track cell. Pointer hub
// events carry screen coordinates and are shifted by it.
func (m *Model) SetOrigin(x int) { m.originX = x }

// Focus gives keyboard focus to handle i.
func (m *Model) Focus(i int) {
	if i < 0 || i >= m.store.Len() {
		return
	}
	m.focused = true
	m.focus = i
}

// Blur drops keyboard focus.
func (m *Model) Blur() { m.focused = false }

// Focused returns the focused handle.
func (m *Model) Focused() (int, bool) {
	if !m.focused {
		return -1, false
	}
	return m.focus, true
}

// Mount subscribes the slider to program-wide pointer motion and release.
// Any previous subscription is released first.
func (m *Model) Mount(h *pointer.Hub) {
	m.Unmount()
	mv := h.OnMove(m.onMove)
	up := h.OnUp(m.onUp)
	m.release = func() {
		mv.Remove()
		up.Remove()
	}
	m.logger.Debug("slider mounted")
}

// Unmount releases the pointer subscriptions taken by Mount.
func (m *Model) Unmount() {
	if m.release == nil {
		return
	}
	m.release()
	m.release = nil
	m.logger.Debug("slider unmounted")
}

// Close unmounts the slider and detaches it from its store.
func (m *Model) Close() {
	m.Unmount()
	m.sub.Remove()
}

// PressAt handles a press at track column x.
func (m *Model) PressAt(x int, b interact.Button) tea.Cmd {
	m.machine.PointerDown(interact.PointerEvent{
		Target: m.hitTest(x),
		X:      float64(x),
		Button: b,
	})
	return m.flush()
}

// hitTest returns the handle drawn at column x, or the track. Handles drawn
// later sit on top, so the highest index wins.
func (m *Model) hitTest(x int) interact.Target {
	d := m.store.Domain()
	tr := m.machine.Track()
	vals := m.store.Values()
	for i := len(vals) - 1; i >= 0; i-- {
		if int(math.Round(tr.PositionOf(vals[i], d))) == x {
			return interact.HandleTarget(i)
		}
	}
	return interact.TrackTarget()
}

func (m *Model) onMove(ev pointer.Event) tea.Cmd {
	if m.machine.State() == interact.StateIdle {
		return nil
	}
	m.machine.PointerMove(float64(ev.X - m.originX))
	return m.flush()
}

func (m *Model) onUp(pointer.Event) tea.Cmd {
	return m.Release()
}

// Release ends an open pointer interaction as if the pointer had been
// lifted. It returns nil when nothing was in progress.
func (m *Model) Release() tea.Cmd {
	if !m.machine.PointerUp() {
		return nil
	}
	return m.flush()
}

// HandleKey adjusts the focused handle. It reports whether the key was used.
func (m *Model) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !m.focused {
		return nil, false
	}
	k := m.keys.command(msg)
	if k == interact.KeyNone {
		return nil, false
	}
	ok := m.machine.Key(m.focus, k)
	return m.flush(), ok
}
