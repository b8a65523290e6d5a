package store

// Kind distinguishes the two notification classes.
type Kind int

const (
	// KindInput fires on every accepted value change during an interaction.
	KindInput Kind = iota
	// KindChange fires once per completed interaction.
	KindChange
)

// String returns the event name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindChange:
		return "change"
	default:
		return "unknown"
	}
}

// Event carries the full value sequence at the time it fired.
type Event struct {
	Kind   Kind
	Values []float64
}

// Listener receives notifications synchronously.
type Listener func(Event)

type listener struct {
	id int
	fn Listener
}

// Subscription removes a listener registered with Subscribe.
type Subscription struct {
	id    int
	store *Store
}

// Remove unregisters the listener. Calling it more than once is harmless.
func (sub Subscription) Remove() {
	if sub.store == nil {
		return
	}
	ls := sub.store.listeners
	for i, l := range ls {
		if l.id == sub.id {
			sub.store.listeners = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Subscribe registers fn for both notification classes.
func (s *Store) Subscribe(fn Listener) Subscription {
	s.nextID++
	s.listeners = append(s.listeners, listener{id: s.nextID, fn: fn})
	return Subscription{id: s.nextID, store: s}
}

// EmitInput fires an input notification if the values differ from the last
// input notification. It reports whether anything fired.
func (s *Store) EmitInput() bool {
	return s.emit(KindInput, &s.lastInput)
}

// EmitChange fires a change notification if the values differ from the last
// change notification. It reports whether anything fired.
func (s *Store) EmitChange() bool {
	return s.emit(KindChange, &s.lastChange)
}

func (s *Store) emit(kind Kind, last *[]float64) bool {
	cur := s.Values()
	if equal(cur, *last) {
		return false
	}
	*last = cur
	for _, l := range s.listeners {
		vals := make([]float64, len(cur))
		copy(vals, cur)
		l.fn(Event{Kind: kind, Values: vals})
	}
	return true
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
