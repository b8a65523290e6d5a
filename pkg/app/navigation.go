package app

// focusRef addresses one handle of one slider.
type focusRef struct {
	slider int
	handle int
}

var noFocus = focusRef{slider: -1, handle: -1}

// ring lists every handle in slider order, then handle order.
func (m *AppModel) ring() []focusRef {
	var out []focusRef
	for i, s := range m.sliders {
		for h := 0; h < s.Len(); h++ {
			out = append(out, focusRef{slider: i, handle: h})
		}
	}
	return out
}

// CycleFocusForward moves focus to the next handle, wrapping from the last
// handle of the last slider to the first handle of the first.
func (m *AppModel) CycleFocusForward() {
	ring := m.ring()
	if len(ring) == 0 {
		return
	}
	idx := m.focusedIndex(ring)
	m.setFocus(ring[(idx+1)%len(ring)])
}

// CycleFocusBackward moves focus to the previous handle, wrapping around.
func (m *AppModel) CycleFocusBackward() {
	ring := m.ring()
	if len(ring) == 0 {
		return
	}
	idx := m.focusedIndex(ring)
	m.setFocus(ring[(idx-1+len(ring))%len(ring)])
}

// FocusHandle sets focus to handle index of the slider with the given id.
// If either is not found, focus does not change.
func (m *AppModel) FocusHandle(id string, index int) {
	for i, s := range m.sliders {
		if s.ID() == id && index >= 0 && index < s.Len() {
			m.setFocus(focusRef{slider: i, handle: index})
			return
		}
	}
}

// FocusedHandle returns the slider id and handle index holding focus.
func (m *AppModel) FocusedHandle() (string, int) {
	if m.focus.slider < 0 {
		return "", -1
	}
	return m.sliders[m.focus.slider].ID(), m.focus.handle
}

func (m *AppModel) setFocus(r focusRef) {
	for i, s := range m.sliders {
		if i != r.slider {
			s.Blur()
		}
	}
	m.sliders[r.slider].Focus(r.handle)
	m.focus = r
}

// focusedIndex returns the position of the focused handle in ring. Returns
// 0 if not found.
func (m *AppModel) focusedIndex(ring []focusRef) int {
	for i, r := range ring {
		if r == m.focus {
			return i
		}
	}
	return 0
}
