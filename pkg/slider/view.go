package slider

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/multirange/pkg/components"
	"gitlab.com/tinyland/lab/multirange/pkg/interact"
	"gitlab.com/tinyland/lab/multirange/pkg/theme"
)

type styles struct {
	title      lipgloss.Style
	titleFocus lipgloss.Style
	track      lipgloss.Style
	rng        lipgloss.Style
	tick       lipgloss.Style
	label      lipgloss.Style
	thumb      lipgloss.Style
	thumbFocus lipgloss.Style
	thumbHot   lipgloss.Style
	dim        lipgloss.Style
	helpKey    lipgloss.Style
	helpDesc   lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return styles{
		title:      fg(t.Foreground),
		titleFocus: fg(t.Accent).Bold(true),
		track:      fg(t.Track),
		rng:        fg(t.Range),
		tick:       fg(t.Tick),
		label:      fg(t.Label),
		thumb:      fg(t.Thumb),
		thumbFocus: fg(t.ThumbFocus).Bold(true),
		thumbHot:   fg(t.ThumbActive).Bold(true),
		dim:        fg(t.Dim),
		helpKey:    fg(t.HelpKey),
		helpDesc:   fg(t.HelpDesc),
	}
}

// TrackZone is the bubblezone id of the track row.
func (m *Model) TrackZone() string { return "multirange:" + m.id + ":track" }

// View renders the slider. width is used when SetWidth has not been called;
// height caps the number of rows.
func (m *Model) View(width, height int) string {
	if m.width == 0 && width > 0 {
		m.SetWidth(width)
	}
	if height <= 0 {
		return ""
	}

	rows := []string{m.titleRow()}
	track := m.trackRow()
	if m.zones != nil {
		track = m.zones.Mark(m.TrackZone(), track)
	}
	rows = append(rows, track)
	tickRow, labelRow := m.ruler()
	if tickRow != "" {
		rows = append(rows, m.styles.tick.Render(tickRow))
	}
	if labelRow != "" {
		rows = append(rows, m.styles.label.Render(labelRow))
	}
	rows = append(rows, m.readout())
	if m.focused {
		rows = append(rows, m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}

func (m *Model) titleRow() string {
	title := m.title
	if title == "" {
		title = m.id
	}
	title = components.TruncateWithTail(title, m.width, "…")
	if m.focused {
		return m.styles.titleFocus.Render(title)
	}
	return m.styles.title.Render(title)
}

type cell struct {
	r  rune
	st *lipgloss.Style
}

func (m *Model) trackRow() string {
	d := m.store.Domain()
	vals := m.store.Values()
	cells := make([]cell, m.width)
	for i := range cells {
		cells[i] = cell{components.GlyphLine, &m.styles.track}
	}
	if len(vals) > 0 {
		lo, hi := 0, components.Column(vals[len(vals)-1], d.Min, d.Max, m.width)
		if len(vals) > 1 {
			lo = components.Column(vals[0], d.Min, d.Max, m.width)
		}
		for c := lo; c <= hi && c < m.width; c++ {
			cells[c] = cell{components.GlyphRange, &m.styles.rng}
		}
	}

	count := make(map[int]int, len(vals))
	for _, v := range vals {
		count[components.Column(v, d.Min, d.Max, m.width)]++
	}
	active, dragging := m.machine.Active()
	pending := map[int]bool{}
	for _, c := range m.machine.Candidates() {
		pending[c] = true
	}
	for i, v := range vals {
		col := components.Column(v, d.Min, d.Max, m.width)
		switch {
		case dragging && i == active:
			cells[col] = cell{components.GlyphActive, &m.styles.thumbHot}
		case pending[i]:
			cells[col] = cell{components.GlyphStack, &m.styles.thumbHot}
		case m.focused && i == m.focus:
			cells[col] = cell{components.GlyphFocus, &m.styles.thumbFocus}
		case cells[col].r == components.GlyphFocus || cells[col].r == components.GlyphActive:
		case count[col] > 1:
			cells[col] = cell{components.GlyphStack, &m.styles.thumb}
		default:
			cells[col] = cell{components.GlyphThumb, &m.styles.thumb}
		}
	}

	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		var run strings.Builder
		for j < len(cells) && cells[j].st == cells[i].st {
			run.WriteRune(cells[j].r)
			j++
		}
		b.WriteString(cells[i].st.Render(run.String()))
		i = j
	}
	return b.String()
}

func (m *Model) ruler() (string, string) {
	d := m.store.Domain()
	t := m.store.Ticks()
	if t.Empty() {
		lo, hi := formatValue(d.Min), formatValue(d.Max)
		if len(lo)+len(hi) >= m.width {
			return "", ""
		}
		return "", components.PadRight(lo, m.width-len(hi)) + hi
	}
	marks := make([]components.Mark, 0, t.Len())
	for _, tk := range t.Ticks() {
		marks = append(marks, components.Mark{
			Col:   components.Column(tk.Value, d.Min, d.Max, m.width),
			Label: tk.Label,
		})
	}
	return components.Ruler(marks, m.width)
}

func (m *Model) readout() string {
	vals := m.store.Values()
	t := m.store.Ticks()
	parts := make([]string, len(vals))
	for i, v := range vals {
		text := formatValue(v)
		if l, ok := t.Label(v); ok {
			text = l
		}
		part := fmt.Sprintf("%s: %s", m.handleLabel(i), text)
		if m.focused && i == m.focus {
			parts[i] = m.styles.thumbFocus.Render(part)
		} else {
			parts[i] = m.styles.label.Render(part)
		}
	}
	if m.machine.State() == interact.StatePending {
		parts = append(parts, m.styles.dim.Render("(drag to pick)"))
	}
	return components.TruncateWithTail(strings.Join(parts, m.styles.dim.Render("  ")), m.width, "…")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
