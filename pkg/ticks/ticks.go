// Package ticks provides the discrete domain of a multirange slider: an
// ordered set of allowed stop values, each with a display label, derived
// from a labeled option list.
package ticks

import (
	"math"
	"sort"

	"gitlab.com/tinyland/lab/multirange/pkg/rangeval"
)

// Option is one entry of an external option list. Value is the raw string
// form; Label defaults to Value when empty.
type Option struct {
	Value string
	Label string
}

// Tick is a resolved stop on the track.
type Tick struct {
	Value float64
	Label string
}

// Set is an immutable, ascending snapshot of ticks. The zero Set is empty and
// disables snapping.
type Set struct {
	ticks []Tick
}

// New builds a Set from options. Non-numeric values coerce to 0.
func New(opts []Option) Set {
	if len(opts) == 0 {
		return Set{}
	}
	ts := make([]Tick, 0, len(opts))
	for _, o := range opts {
		label := o.Label
		if label == "" {
			label = o.Value
		}
		ts = append(ts, Tick{Value: rangeval.ParseNumber(o.Value), Label: label})
	}
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Value < ts[j].Value })
	return Set{ticks: ts}
}

// FromValues builds a Set whose labels are the formatted values.
func FromValues(values ...float64) Set {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Value: rangeval.FormatNumber(v)}
	}
	return New(opts)
}

// Len returns the number of ticks.
func (s Set) Len() int {
	return len(s.ticks)
}

// Empty reports whether the set has no ticks.
func (s Set) Empty() bool {
	return len(s.ticks) == 0
}

// Ticks returns a copy of the ticks in ascending order.
func (s Set) Ticks() []Tick {
	out := make([]Tick, len(s.ticks))
	copy(out, s.ticks)
	return out
}

// SortedValues returns the tick values in ascending order.
func (s Set) SortedValues() []float64 {
	out := make([]float64, len(s.ticks))
	for i, t := range s.ticks {
		out[i] = t.Value
	}
	return out
}

// Nearest returns the tick value closest to v. The scan runs from the lowest
// tick upward and only replaces the best match on a strict improvement, so
// of two equidistant ticks the lower one wins. An empty set returns v.
func (s Set) Nearest(v float64) float64 {
	if len(s.ticks) == 0 {
		return v
	}
	best := s.ticks[0].Value
	bestDist := math.Abs(v - best)
	for _, t := range s.ticks[1:] {
		if d := math.Abs(v - t.Value); d < bestDist {
			best, bestDist = t.Value, d
		}
	}
	return best
}

// Ceil returns the smallest tick value >= v.
func (s Set) Ceil(v float64) (float64, bool) {
	i := sort.Search(len(s.ticks), func(i int) bool { return s.ticks[i].Value >= v })
	if i == len(s.ticks) {
		return 0, false
	}
	return s.ticks[i].Value, true
}

// Floor returns the largest tick value <= v.
func (s Set) Floor(v float64) (float64, bool) {
	i := sort.Search(len(s.ticks), func(i int) bool { return s.ticks[i].Value > v })
	if i == 0 {
		return 0, false
	}
	return s.ticks[i-1].Value, true
}

// NextAbove returns the smallest tick value strictly greater than v.
func (s Set) NextAbove(v float64) (float64, bool) {
	i := sort.Search(len(s.ticks), func(i int) bool { return s.ticks[i].Value > v })
	if i == len(s.ticks) {
		return 0, false
	}
	return s.ticks[i].Value, true
}

// NextBelow returns the largest tick value strictly less than v.
func (s Set) NextBelow(v float64) (float64, bool) {
	i := sort.Search(len(s.ticks), func(i int) bool { return s.ticks[i].Value >= v })
	if i == 0 {
		return 0, false
	}
	return s.ticks[i-1].Value, true
}

// Label returns the label of the tick whose value equals v.
func (s Set) Label(v float64) (string, bool) {
	for _, t := range s.ticks {
		if t.Value == v {
			return t.Label, true
		}
	}
	return "", false
}

var _ rangeval.Snapper = Set{}
