package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/multirange/pkg/components"
	"gitlab.com/tinyland/lab/multirange/pkg/pointer"
	"gitlab.com/tinyland/lab/multirange/pkg/slider"
	"gitlab.com/tinyland/lab/multirange/pkg/theme"
	"gitlab.com/tinyland/lab/multirange/pkg/ticks"
)

// Layout constants, in cells.
const (
	marginLeft   = 2
	marginRight  = 2
	headerHeight = 2
	blockGap     = 1
)

// Config holds the program settings.
type Config struct {
	Title string
	Theme string

	// ColorDepth is 24 for true color, 8 for 256 colors. Palettes are
	// adapted below 24.
	ColorDepth int

	// LoadTicks reloads tick lists. Nil disables reloading.
	LoadTicks func() (*ticks.Registry, error)
	// ReloadInterval re-runs LoadTicks periodically. Zero disables.
	ReloadInterval time.Duration

	// Zones routes presses by marked zone. Nil falls back to row geometry.
	Zones *zone.Manager

	Logger *slog.Logger
}

// DefaultConfig returns the default program settings.
func DefaultConfig() Config {
	return Config{
		Title:      "multirange",
		Theme:      "default",
		ColorDepth: 24,
	}
}

// AppModel is the root model.
type AppModel struct {
	cfg     Config
	sliders []*slider.Model
	hub     *pointer.Hub
	zones   *zone.Manager
	logger  *slog.Logger
	keys    KeyMap
	help    help.Model
	theme   theme.Theme

	width    int
	height   int
	focus    focusRef
	showHelp bool
	quitting bool
	status   string
	err      error
}

// NewAppModel mounts sliders on a fresh pointer hub and focuses the first
// handle.
func NewAppModel(cfg Config, sliders ...*slider.Model) AppModel {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := AppModel{
		cfg:     cfg,
		sliders: sliders,
		hub:     pointer.NewHub(),
		zones:   cfg.Zones,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		focus:   noFocus,
	}
	for _, s := range sliders {
		s.Mount(m.hub)
	}
	m.applyTheme(cfg.Theme)
	if ring := m.ring(); len(ring) > 0 {
		m.setFocus(ring[0])
	}
	return m
}

// Init starts the first tick load and the reload timer when a loader is
// configured.
func (m AppModel) Init() tea.Cmd {
	if m.cfg.LoadTicks == nil {
		return nil
	}
	if m.cfg.ReloadInterval > 0 {
		return tea.Batch(ReloadTicksCmd(m.cfg.LoadTicks), TickCmd(m.cfg.ReloadInterval))
	}
	return ReloadTicksCmd(m.cfg.LoadTicks)
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case slider.InputMsg:
		m.status = m.describe(msg.SliderID, msg.Values)
		return m, nil

	case slider.ChangeMsg:
		m.status = m.describe(msg.SliderID, msg.Values)
		m.logger.Debug("values changed", "slider", msg.SliderID, "values", msg.Values)
		return m, nil

	case slider.FocusMsg:
		m.FocusHandle(msg.SliderID, msg.Index)
		return m, nil

	case ThemeChangeEvent:
		m.applyTheme(msg.Theme)
		return m, nil

	case TicksLoadedEvent:
		m.applyTicks(msg)
		return m, nil

	case TickEvent:
		if m.cfg.LoadTicks == nil || m.cfg.ReloadInterval <= 0 {
			return m, nil
		}
		return m, tea.Batch(ReloadTicksCmd(m.cfg.LoadTicks), TickCmd(m.cfg.ReloadInterval))
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.CycleFocusForward()
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.CycleFocusBackward()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m, ThemeCmd(m.nextTheme())
	case key.Matches(msg, m.keys.Reload):
		if m.cfg.LoadTicks == nil {
			return m, nil
		}
		return m, ReloadTicksCmd(m.cfg.LoadTicks)
	}

	if m.focus.slider < 0 {
		return m, nil
	}
	cmd, _ := m.sliders[m.focus.slider].HandleKey(msg)
	return m, cmd
}

func (m *AppModel) resize() {
	w := m.sliderWidth()
	for _, s := range m.sliders {
		if fw := s.FixedWidth(); fw > 0 && fw < w {
			s.SetWidth(fw)
		} else {
			s.SetWidth(w)
		}
		s.SetOrigin(marginLeft)
	}
}

func (m *AppModel) sliderWidth() int {
	w := m.width - marginLeft - marginRight
	if w < 1 {
		w = 1
	}
	return w
}

func (m *AppModel) applyTheme(name string) {
	depth := m.cfg.ColorDepth
	if depth == 0 {
		depth = 24
	}
	t := theme.Adapt(theme.Get(name), depth)
	m.theme = t
	for _, s := range m.sliders {
		s.SetTheme(t)
	}
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(t.HelpKey))
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(t.HelpDesc))
	m.help.Styles.FullKey = m.help.Styles.ShortKey
	m.help.Styles.FullDesc = m.help.Styles.ShortDesc
}

// nextTheme returns the registered theme after the current one.
func (m *AppModel) nextTheme() string {
	names := theme.Names()
	for i, n := range names {
		if n == strings.ToLower(m.theme.Name) {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func (m *AppModel) applyTicks(ev TicksLoadedEvent) {
	if ev.Err != nil {
		m.err = ev.Err
		m.logger.Warn("tick reload failed", "error", ev.Err)
		return
	}
	m.err = nil
	for _, s := range m.sliders {
		if s.Source() == "" {
			continue
		}
		s.SetTicks(ev.Registry.Resolve(s.Source()))
		m.logger.Debug("ticks applied", "slider", s.ID(), "source", s.Source())
	}
}

func (m *AppModel) describe(id string, values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%s: [%s]", id, strings.Join(parts, ", "))
}

// Close unmounts every slider from the pointer hub.
func (m AppModel) Close() {
	for _, s := range m.sliders {
		s.Unmount()
	}
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	pad := lipgloss.NewStyle().PaddingLeft(marginLeft)
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Accent))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Dim))

	header := title.Render(m.cfg.Title) + dim.Render("  "+m.theme.Name)
	rows := []string{components.Truncate(header, m.width), ""}
	for i, block := range m.blocks() {
		if i > 0 {
			for range blockGap {
				rows = append(rows, "")
			}
		}
		rows = append(rows, pad.Render(block))
	}

	footer := m.status
	if m.err != nil {
		footer = "error: " + m.err.Error()
	}
	rows = append(rows, "", pad.Render(dim.Render(footer)))
	if m.showHelp {
		rows = append(rows, pad.Render(m.help.FullHelpView(m.keys.FullHelp())))
	} else {
		rows = append(rows, pad.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	}

	out := strings.Join(rows, "\n")
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

// blocks renders each slider at the current width.
func (m *AppModel) blocks() []string {
	out := make([]string, len(m.sliders))
	for i, s := range m.sliders {
		out[i] = s.View(m.sliderWidth(), m.height)
	}
	return out
}

// Width returns the current terminal width.
func (m AppModel) Width() int { return m.width }

// Height returns the current terminal height.
func (m AppModel) Height() int { return m.height }

// Quitting reports whether quit was requested.
func (m AppModel) Quitting() bool { return m.quitting }

// HelpVisible reports whether the full help is shown.
func (m AppModel) HelpVisible() bool { return m.showHelp }

// ThemeName returns the active theme name.
func (m AppModel) ThemeName() string { return m.theme.Name }

// Err returns the last tick reload error.
func (m AppModel) Err() error { return m.err }

// Hub returns the pointer hub sliders are mounted on.
func (m AppModel) Hub() *pointer.Hub { return m.hub }

// Sliders returns the hosted sliders.
func (m AppModel) Sliders() []*slider.Model { return m.sliders }

// Values returns the current values of every slider by id.
func (m AppModel) Values() map[string][]float64 {
	out := make(map[string][]float64, len(m.sliders))
	for _, s := range m.sliders {
		out[s.ID()] = s.Values()
	}
	return out
}
