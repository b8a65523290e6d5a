// Package store owns the canonical handle values of a multirange slider and
// the input/change notifications that report them.
//
// Every write goes through rangeval.Normalize. After any write or
// configuration change the whole sequence is recomputed left to right, each
// handle normalized against its neighbors as they stand at that moment.
package store

import (
	"log/slog"
	"sort"

	"gitlab.com/tinyland/lab/multirange/pkg/rangeval"
	"gitlab.com/tinyland/lab/multirange/pkg/ticks"
)

// DefaultStep is the keyboard step used when a handle does not set one.
const DefaultStep = 1.0

// Handle is the underlying value source for one thumb. Min and Max narrow
// the shared domain for this handle only.
type Handle struct {
	ID    string
	Value float64
	Min   *float64
	Max   *float64
	Step  float64
}

// Config holds the shared constraints applied to every handle.
type Config struct {
	Domain      rangeval.Domain
	StepBetween float64
	Ticks       ticks.Set
	Logger      *slog.Logger
}

// Store holds handle values in fixed index order.
type Store struct {
	handles     []Handle
	domain      rangeval.Domain
	stepBetween float64
	ticks       ticks.Set
	logger      *slog.Logger

	lastInput  []float64
	lastChange []float64

	listeners []listener
	nextID    int
}

// New creates a store. Handles are assigned indices by ascending initial
// value (ties keep their given order) and normalized once. Both notification
// snapshots start at the normalized values, so nothing fires until a value
// actually moves.
func New(cfg Config, handles ...Handle) *Store {
	hs := make([]Handle, len(handles))
	copy(hs, handles)
	sort.SliceStable(hs, func(i, j int) bool { return hs[i].Value < hs[j].Value })

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		handles:     hs,
		domain:      cfg.Domain.Ordered(),
		stepBetween: clampStep(cfg.StepBetween),
		ticks:       cfg.Ticks,
		logger:      logger,
	}
	s.Recompute()
	s.lastInput = s.Values()
	s.lastChange = s.Values()
	return s
}

func clampStep(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Len returns the number of handles.
func (s *Store) Len() int {
	return len(s.handles)
}

// Values returns a copy of the current values in index order.
func (s *Store) Values() []float64 {
	out := make([]float64, len(s.handles))
	for i, h := range s.handles {
		out[i] = h.Value
	}
	return out
}

// Value returns the value at index i.
func (s *Store) Value(i int) (float64, bool) {
	if i < 0 || i >= len(s.handles) {
		return 0, false
	}
	return s.handles[i].Value, true
}

// Handle returns a copy of the source record at index i.
func (s *Store) Handle(i int) (Handle, bool) {
	if i < 0 || i >= len(s.handles) {
		return Handle{}, false
	}
	return s.handles[i], true
}

// Domain returns the shared domain.
func (s *Store) Domain() rangeval.Domain {
	return s.domain
}

// DomainFor returns the domain narrowed by handle i's own bounds.
func (s *Store) DomainFor(i int) rangeval.Domain {
	if i < 0 || i >= len(s.handles) {
		return s.domain
	}
	h := s.handles[i]
	return s.domain.Narrow(h.Min, h.Max)
}

// StepFor returns the keyboard step of handle i.
func (s *Store) StepFor(i int) float64 {
	if i < 0 || i >= len(s.handles) || s.handles[i].Step <= 0 {
		return DefaultStep
	}
	return s.handles[i].Step
}

// StepBetween returns the minimum gap between adjacent handles.
func (s *Store) StepBetween() float64 {
	return s.stepBetween
}

// Ticks returns the discrete domain snapshot.
func (s *Store) Ticks() ticks.Set {
	return s.ticks
}

// SetDomain replaces the domain and renormalizes.
func (s *Store) SetDomain(d rangeval.Domain) {
	if d.Min > d.Max {
		s.logger.Debug("reversed domain swapped", "min", d.Min, "max", d.Max)
	}
	s.domain = d.Ordered()
	s.Recompute()
}

// SetStepBetween replaces the minimum gap and renormalizes.
func (s *Store) SetStepBetween(v float64) {
	s.stepBetween = clampStep(v)
	s.Recompute()
}

// SetTicks replaces the discrete domain and renormalizes.
func (s *Store) SetTicks(t ticks.Set) {
	s.ticks = t
	s.Recompute()
}

// SetHandleBounds replaces handle i's own bounds and renormalizes.
func (s *Store) SetHandleBounds(i int, lo, hi *float64) bool {
	if i < 0 || i >= len(s.handles) {
		return false
	}
	s.handles[i].Min = lo
	s.handles[i].Max = hi
	s.Recompute()
	return true
}

// State returns the normalizer state for handle i against the current
// neighbor values.
func (s *Store) State(i int) rangeval.State {
	st := rangeval.State{
		Domain:      s.DomainFor(i),
		StepBetween: s.stepBetween,
		Ticks:       s.ticks,
	}
	if i > 0 {
		st.Prev = rangeval.Ptr(s.handles[i-1].Value)
	}
	if i < len(s.handles)-1 {
		st.Next = rangeval.Ptr(s.handles[i+1].Value)
	}
	return st
}

// Normalize returns what candidate would become if written to handle i now.
func (s *Store) Normalize(i int, candidate float64) float64 {
	return rangeval.Normalize(candidate, s.State(i))
}

// SetValue normalizes v for handle i, stores it and recomputes the
// sequence. It does not notify; callers decide whether to emit. An index out
// of range is a no-op.
func (s *Store) SetValue(i int, v float64) bool {
	if i < 0 || i >= len(s.handles) {
		return false
	}
	s.handles[i].Value = s.Normalize(i, v)
	s.Recompute()
	return true
}

// SetRawValue coerces raw with rangeval.ParseNumber and calls SetValue.
func (s *Store) SetRawValue(i int, raw string) bool {
	return s.SetValue(i, rangeval.ParseNumber(raw))
}

// Recompute normalizes every handle in index order and writes the results
// back to the sources.
func (s *Store) Recompute() {
	for i := range s.handles {
		s.handles[i].Value = s.Normalize(i, s.handles[i].Value)
	}
	for i := 1; i < len(s.handles); i++ {
		if !rangeval.GapSatisfied(s.handles[i-1].Value, s.handles[i].Value, s.stepBetween) {
			s.logger.Debug("gap constraint unsatisfiable, keeping domain bounds",
				"index", i, "prev", s.handles[i-1].Value, "value", s.handles[i].Value,
				"step_between", s.stepBetween)
		}
	}
}
