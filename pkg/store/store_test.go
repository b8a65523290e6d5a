package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gitlab.com/tinyland/lab/multirange/pkg/rangeval"
	"gitlab.com/tinyland/lab/multirange/pkg/ticks"
)

// recorder collects notifications in order.
type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) kinds() []string {
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind.String()
	}
	return out
}

func newTestStore(step float64, values ...float64) *Store {
	hs := make([]Handle, len(values))
	for i, v := range values {
		hs[i] = Handle{Value: v}
	}
	return New(Config{Domain: rangeval.DefaultDomain(), StepBetween: step}, hs...)
}

func TestNewSortsByInitialValue(t *testing.T) {
	s := New(Config{Domain: rangeval.DefaultDomain()},
		Handle{ID: "hi", Value: 80},
		Handle{ID: "lo", Value: 20},
	)
	h, _ := s.Handle(0)
	if h.ID != "lo" {
		t.Errorf("index 0 should be the lowest initial value, got %q", h.ID)
	}
	if diff := cmp.Diff([]float64{20, 80}, s.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetValueRespectsGap(t *testing.T) {
	s := newTestStore(10, 20, 80)
	if !s.SetValue(1, 25) {
		t.Fatal("SetValue(1, 25) reported out of range")
	}
	if diff := cmp.Diff([]float64{20, 30}, s.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetRawValueMalformedIsZero(t *testing.T) {
	s := newTestStore(0, 20, 80)
	s.SetRawValue(0, "abc")
	if v, _ := s.Value(0); v != 0 {
		t.Errorf("malformed raw value stored as %v, want 0", v)
	}
	s.SetRawValue(1, "64.5")
	if v, _ := s.Value(1); v != 64.5 {
		t.Errorf("SetRawValue(1, 64.5) stored %v", v)
	}
}

func TestOutOfRangeIndex(t *testing.T) {
	s := newTestStore(0, 20, 80)
	if s.SetValue(5, 10) {
		t.Error("SetValue(5) should report false")
	}
	if s.SetValue(-1, 10) {
		t.Error("SetValue(-1) should report false")
	}
	if _, ok := s.Handle(2); ok {
		t.Error("Handle(2) should report absent")
	}
	if diff := cmp.Diff([]float64{20, 80}, s.Values()); diff != "" {
		t.Errorf("values changed by out-of-range write (-want +got):\n%s", diff)
	}
}

func TestSetTicksRenormalizes(t *testing.T) {
	s := newTestStore(0, 20, 80)
	s.SetTicks(ticks.FromValues(0, 25, 50, 75, 100))
	if diff := cmp.Diff([]float64{25, 75}, s.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetDomainRenormalizes(t *testing.T) {
	s := newTestStore(0, 20, 80)
	s.SetDomain(rangeval.Domain{Min: 30, Max: 60})
	if diff := cmp.Diff([]float64{30, 60}, s.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetStepBetweenLeftToRight(t *testing.T) {
	s := newTestStore(0, 40, 45, 90)
	s.SetStepBetween(10)
	// Handle 0 is pulled below handle 1 before handle 1 is revisited.
	if diff := cmp.Diff([]float64{35, 45, 90}, s.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestPerHandleBounds(t *testing.T) {
	lo, hi := 10.0, 40.0
	s := New(Config{Domain: rangeval.DefaultDomain()},
		Handle{Value: 5, Min: &lo, Max: &hi},
		Handle{Value: 90},
	)
	if v, _ := s.Value(0); v != 10 {
		t.Errorf("handle 0 should clamp to its own min 10, got %v", v)
	}
	s.SetValue(0, 70)
	if v, _ := s.Value(0); v != 40 {
		t.Errorf("handle 0 should clamp to its own max 40, got %v", v)
	}
}

func TestSetHandleBoundsRenormalizes(t *testing.T) {
	s := newTestStore(0, 20, 80)
	lo, hi := 50.0, 60.0
	if !s.SetHandleBounds(1, &lo, &hi) {
		t.Fatal("SetHandleBounds(1) reported out of range")
	}
	if diff := cmp.Diff([]float64{20, 60}, s.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
	if got := s.DomainFor(1); got != (rangeval.Domain{Min: 50, Max: 60}) {
		t.Errorf("DomainFor(1) = %+v, want [50, 60]", got)
	}

	// Clearing the bounds restores the shared domain but keeps the value.
	s.SetHandleBounds(1, nil, nil)
	if got := s.DomainFor(1); got != rangeval.DefaultDomain() {
		t.Errorf("DomainFor(1) after clear = %+v", got)
	}
	if v, _ := s.Value(1); v != 60 {
		t.Errorf("Value(1) after clear = %v, want 60", v)
	}
	if s.SetHandleBounds(2, &lo, nil) {
		t.Error("SetHandleBounds(2) should report false")
	}
}

func TestGapPropertyHolds(t *testing.T) {
	s := newTestStore(5, 10, 30, 60, 90)
	writes := []struct {
		i int
		v float64
	}{{0, 95}, {3, 0}, {1, 55}, {2, 12}, {1, -4}, {3, 100}}
	for _, w := range writes {
		s.SetValue(w.i, w.v)
		vals := s.Values()
		for i := 1; i < len(vals); i++ {
			if !rangeval.GapSatisfied(vals[i-1], vals[i], 5) {
				t.Errorf("after SetValue(%d, %v): gap violated between %v and %v", w.i, w.v, vals[i-1], vals[i])
			}
		}
		for _, v := range vals {
			if v < 0 || v > 100 {
				t.Errorf("value %v outside domain", v)
			}
		}
	}
}

func TestEmitSuppressesDuplicates(t *testing.T) {
	s := newTestStore(0, 20, 80)
	var rec recorder
	s.Subscribe(rec.listen)

	if s.EmitInput() || s.EmitChange() {
		t.Error("nothing changed since construction, nothing should fire")
	}

	s.SetValue(0, 30)
	if !s.EmitInput() {
		t.Error("EmitInput should fire after a change")
	}
	if s.EmitInput() {
		t.Error("second EmitInput with the same values should be suppressed")
	}
	if !s.EmitChange() {
		t.Error("EmitChange tracks its own snapshot and should fire")
	}

	if diff := cmp.Diff([]string{"input", "change"}, rec.kinds()); diff != "" {
		t.Errorf("event kinds mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{30, 80}, rec.events[1].Values); diff != "" {
		t.Errorf("change values mismatch (-want +got):\n%s", diff)
	}
}

func TestSubscriptionRemove(t *testing.T) {
	s := newTestStore(0, 20, 80)
	var a, b recorder
	subA := s.Subscribe(a.listen)
	s.Subscribe(b.listen)

	subA.Remove()
	subA.Remove()

	s.SetValue(0, 50)
	s.EmitChange()

	if len(a.events) != 0 {
		t.Errorf("removed listener received %d events", len(a.events))
	}
	if len(b.events) != 1 {
		t.Errorf("remaining listener received %d events, want 1", len(b.events))
	}
}

func TestEventValuesAreCopies(t *testing.T) {
	s := newTestStore(0, 20, 80)
	var got []float64
	s.Subscribe(func(ev Event) {
		ev.Values[0] = -1
		got = ev.Values
	})
	s.SetValue(0, 30)
	s.EmitInput()
	if v, _ := s.Value(0); v != 30 {
		t.Errorf("listener mutated store value to %v", v)
	}
	if got[0] != -1 {
		t.Error("listener should own its copy")
	}
}

func TestKindString(t *testing.T) {
	if KindInput.String() != "input" || KindChange.String() != "change" {
		t.Error("unexpected Kind strings")
	}
	if Kind(9).String() != "unknown" {
		t.Error("unknown kind should stringify as unknown")
	}
}
