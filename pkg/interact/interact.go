package interact

import (
	"math"

	"gitlab.com/tinyland/lab/multirange/pkg/rangeval"
	"gitlab.com/tinyland/lab/multirange/pkg/store"
)

// DefaultDragThreshold is the horizontal distance the pointer must exceed
// before a pending overlap resolves.
const DefaultDragThreshold = 2.0

// pageMultiplier is how many steps PageUp/PageDown move.
const pageMultiplier = 10

// State is the machine's interaction state.
type State uint8

const (
	// StateIdle means no pointer session is active.
	StateIdle State = iota
	// StatePending means a press landed on overlapping handles and the
	// responding handle is not chosen yet.
	StatePending
	// StateDragging means a handle follows the pointer.
	StateDragging
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Button identifies the pointer button of a press.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonPrimary is the left mouse button.
	ButtonPrimary
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonSecondary is the right mouse button.
	ButtonSecondary
)

// TargetKind says what a press landed on.
type TargetKind uint8

const (
	// TargetTrack is the track background.
	TargetTrack TargetKind = iota
	// TargetHandle is a handle; Target.Index names it.
	TargetHandle
)

// Target is the hit-test result of a press.
type Target struct {
	Kind  TargetKind
	Index int
}

// HandleTarget returns a Target for handle i.
func HandleTarget(i int) Target {
	return Target{Kind: TargetHandle, Index: i}
}

// TrackTarget returns a Target for the track background.
func TrackTarget() Target {
	return Target{Kind: TargetTrack}
}

// PointerEvent is a press reported to the machine.
type PointerEvent struct {
	Target Target
	X      float64
	Button Button
}

// Track is the measured horizontal geometry of the track. X coordinates in
// [Left, Left+Width] map linearly onto the domain.
type Track struct {
	Left  float64
	Width float64
}

// ValueAt maps x to a value in d. Positions outside the track clamp to the
// domain ends.
func (t Track) ValueAt(x float64, d rangeval.Domain) float64 {
	switch {
	case t.Width <= 0 || x <= t.Left:
		return d.Min
	case x >= t.Left+t.Width:
		return d.Max
	}
	// Scale before dividing: cell x on a track as wide as the domain is
	// exactly value x.
	return d.Min + (x-t.Left)*d.Span()/t.Width
}

// PositionOf maps v back to an x coordinate on the track.
func (t Track) PositionOf(v float64, d rangeval.Domain) float64 {
	if d.Span() <= 0 {
		return t.Left
	}
	return t.Left + (v-d.Min)*t.Width/d.Span()
}

// Config tunes a Machine.
type Config struct {
	// DragThreshold is compared against |dx| while an overlap is pending.
	// Zero means DefaultDragThreshold; use a small positive value for
	// coarse (cell based) coordinates.
	DragThreshold float64

	// OnFocus is called when a handle should receive focus.
	OnFocus func(index int)
}

type pending struct {
	candidates []int
	originX    float64
}

// Machine is the pointer/keyboard state machine for one slider.
type Machine struct {
	store *store.Store
	cfg   Config
	track Track

	state   State
	active  int
	pending *pending
}

// New creates an idle machine writing to s.
func New(s *store.Store, cfg Config) *Machine {
	if cfg.DragThreshold <= 0 {
		cfg.DragThreshold = DefaultDragThreshold
	}
	return &Machine{store: s, cfg: cfg, active: -1}
}

// SetTrack records the track geometry used to map pointer X to values.
func (m *Machine) SetTrack(t Track) {
	m.track = t
}

// Track returns the current track geometry.
func (m *Machine) Track() Track {
	return m.track
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Active returns the handle following the pointer, if any.
func (m *Machine) Active() (int, bool) {
	if m.state != StateDragging || m.active < 0 {
		return -1, false
	}
	return m.active, true
}

// Candidates returns the overlapping handles of a pending press.
func (m *Machine) Candidates() []int {
	if m.pending == nil {
		return nil
	}
	out := make([]int, len(m.pending.candidates))
	copy(out, m.pending.candidates)
	return out
}

// PointerDown handles a press. Presses with any button other than the
// primary one are ignored and return false.
func (m *Machine) PointerDown(ev PointerEvent) bool {
	if ev.Button != ButtonPrimary {
		return false
	}
	if m.state != StateIdle {
		// The release was lost; close the old session first.
		m.PointerUp()
	}

	switch ev.Target.Kind {
	case TargetHandle:
		return m.pressHandle(ev.Target.Index, ev.X)
	case TargetTrack:
		return m.pressTrack(ev.X)
	}
	return false
}

func (m *Machine) pressHandle(i int, x float64) bool {
	v, ok := m.store.Value(i)
	if !ok {
		return false
	}
	stack := m.overlapping(v)
	if len(stack) <= 1 {
		m.startDrag(i)
		return true
	}
	m.state = StatePending
	m.pending = &pending{candidates: stack, originX: x}
	return true
}

// overlapping returns the indices whose value is within tolerance of v, in
// ascending order.
func (m *Machine) overlapping(v float64) []int {
	var out []int
	for i, w := range m.store.Values() {
		if math.Abs(w-v) <= rangeval.OverlapTolerance {
			out = append(out, i)
		}
	}
	return out
}

func (m *Machine) pressTrack(x float64) bool {
	if m.store.Len() == 0 {
		return false
	}
	target := m.track.ValueAt(x, m.store.Domain())
	best := 0
	bestDist := math.Inf(1)
	for i, v := range m.store.Values() {
		if d := math.Abs(v - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	m.store.SetValue(best, target)
	m.store.EmitInput()
	m.store.EmitChange()
	return true
}

func (m *Machine) startDrag(i int) {
	m.state = StateDragging
	m.active = i
	m.pending = nil
	if m.cfg.OnFocus != nil {
		m.cfg.OnFocus(i)
	}
}

// PointerMove handles pointer motion. It reports whether the move changed
// the machine state or a value.
func (m *Machine) PointerMove(x float64) bool {
	switch m.state {
	case StatePending:
		dx := x - m.pending.originX
		if math.Abs(dx) <= m.cfg.DragThreshold {
			return false
		}
		c := m.pending.candidates
		if dx > 0 {
			m.startDrag(c[len(c)-1])
		} else {
			m.startDrag(c[0])
		}
		return true
	case StateDragging:
		m.store.SetValue(m.active, m.track.ValueAt(x, m.store.Domain()))
		return m.store.EmitInput()
	}
	return false
}

// PointerUp ends the current session. A session that was dragging or still
// pending emits a change notification. It reports whether a session ended.
func (m *Machine) PointerUp() bool {
	if m.state == StateIdle {
		return false
	}
	m.store.EmitChange()
	m.state = StateIdle
	m.active = -1
	m.pending = nil
	return true
}
