package interact

// Key is a keyboard command understood by the machine.
type Key uint8

const (
	// KeyNone is not handled.
	KeyNone Key = iota
	// KeyLeft decreases the value.
	KeyLeft
	// KeyRight increases the value.
	KeyRight
	// KeyDown decreases the value.
	KeyDown
	// KeyUp increases the value.
	KeyUp
	// KeyPageDown decreases the value by ten steps.
	KeyPageDown
	// KeyPageUp increases the value by ten steps.
	KeyPageUp
	// KeyHome jumps to the domain minimum.
	KeyHome
	// KeyEnd jumps to the domain maximum.
	KeyEnd
)

// String returns a string representation of the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	case KeyPageDown:
		return "pgdown"
	case KeyPageUp:
		return "pgup"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "none"
	}
}

// Key adjusts the focused handle. It returns false, leaving everything
// untouched, for unknown keys and out-of-range indices.
func (m *Machine) Key(focused int, k Key) bool {
	cur, ok := m.store.Value(focused)
	if !ok {
		return false
	}

	var target float64
	switch k {
	case KeyLeft, KeyDown:
		target = m.stepFrom(focused, cur, -1, 1)
	case KeyRight, KeyUp:
		target = m.stepFrom(focused, cur, 1, 1)
	case KeyPageDown:
		target = m.stepFrom(focused, cur, -1, pageMultiplier)
	case KeyPageUp:
		target = m.stepFrom(focused, cur, 1, pageMultiplier)
	case KeyHome:
		target = m.store.DomainFor(focused).Min
	case KeyEnd:
		target = m.store.DomainFor(focused).Max
	default:
		return false
	}

	m.store.SetValue(focused, target)
	m.store.EmitInput()
	m.store.EmitChange()
	return true
}

// stepFrom moves n steps in direction dir. With a discrete domain a step is
// one tick; stepping past the last tick stays put.
func (m *Machine) stepFrom(i int, cur float64, dir, n int) float64 {
	ts := m.store.Ticks()
	if ts.Empty() {
		return cur + float64(dir*n)*m.store.StepFor(i)
	}
	v := cur
	for range n {
		var next float64
		var ok bool
		if dir > 0 {
			next, ok = ts.NextAbove(v)
		} else {
			next, ok = ts.NextBelow(v)
		}
		if !ok {
			break
		}
		v = next
	}
	return v
}
