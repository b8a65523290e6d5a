// Package rangeval holds the value normalizer shared by every multirange
// slider. Normalize is a pure function: given a candidate value for one
// handle and the state around it (domain, neighbor values, minimum gap and
// an optional discrete tick set) it returns the legal value to store.
package rangeval

import (
	"math"
	"strconv"
	"strings"
)

// OverlapTolerance is the distance, in domain units, under which two handle
// values are treated as sitting on top of each other.
const OverlapTolerance = 0.001

// Domain is the inclusive [Min, Max] interval shared by all handles.
type Domain struct {
	Min float64
	Max float64
}

// DefaultDomain returns the [0, 100] domain.
func DefaultDomain() Domain {
	return Domain{Min: 0, Max: 100}
}

// Ordered returns d with Min and Max swapped if they are reversed.
func (d Domain) Ordered() Domain {
	if d.Min > d.Max {
		return Domain{Min: d.Max, Max: d.Min}
	}
	return d
}

// Span returns Max - Min.
func (d Domain) Span() float64 {
	return d.Max - d.Min
}

// Clamp limits v to [Min, Max].
func (d Domain) Clamp(v float64) float64 {
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}

// Contains reports whether v lies inside the domain.
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// Narrow intersects d with optional per-handle bounds. A bound that would
// empty the interval is ignored.
func (d Domain) Narrow(lo, hi *float64) Domain {
	out := d
	if lo != nil && *lo > out.Min && *lo <= out.Max {
		out.Min = *lo
	}
	if hi != nil && *hi < out.Max && *hi >= out.Min {
		out.Max = *hi
	}
	return out
}

// Snapper is the discrete domain consulted during normalization. An
// implementation with zero entries disables snapping entirely.
type Snapper interface {
	Len() int
	// Nearest returns the tick closest to v.
	Nearest(v float64) float64
	// Ceil returns the smallest tick >= v.
	Ceil(v float64) (float64, bool)
	// Floor returns the largest tick <= v.
	Floor(v float64) (float64, bool)
}

// State is everything Normalize needs besides the candidate itself.
// Prev and Next are nil for the first and last handle respectively.
type State struct {
	Domain      Domain
	StepBetween float64
	Ticks       Snapper
	Prev        *float64
	Next        *float64
}

func (s State) discrete() bool {
	return s.Ticks != nil && s.Ticks.Len() > 0
}

// Normalize maps candidate to a legal value for the handle whose neighbors
// are described by s.
//
// The order is: snap to the nearest tick, clamp to the domain, push above the
// previous neighbor plus the gap, push below the next neighbor minus the gap,
// clamp again. When the gap cannot be met (no tick on the right side of the
// bound, or a gap larger than the room the domain leaves) the domain bound
// wins and the gap is left violated.
func Normalize(candidate float64, s State) float64 {
	if math.IsNaN(candidate) {
		candidate = 0
	}
	step := s.StepBetween
	if step < 0 || math.IsNaN(step) {
		step = 0
	}
	d := s.Domain.Ordered()

	v := candidate
	if s.discrete() {
		v = s.Ticks.Nearest(v)
	}
	v = d.Clamp(v)

	if s.Prev != nil {
		minAllowed := *s.Prev + step
		if v < minAllowed {
			if s.discrete() {
				if t, ok := s.Ticks.Ceil(minAllowed); ok {
					v = t
				}
			} else {
				v = minAllowed
			}
		}
	}

	if s.Next != nil {
		maxAllowed := *s.Next - step
		if v > maxAllowed {
			if s.discrete() {
				if t, ok := s.Ticks.Floor(maxAllowed); ok {
					v = t
				}
			} else {
				v = maxAllowed
			}
		}
	}

	return d.Clamp(v)
}

// GapSatisfied reports whether lo and hi are at least step apart, allowing
// for floating point error.
func GapSatisfied(lo, hi, step float64) bool {
	const eps = 1e-9
	return hi-lo >= step-eps
}

// ParseNumber coerces a raw source value to a float. Blank, malformed and
// non-finite input all become 0.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatNumber renders v without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Ptr returns a pointer to v, for building State neighbor fields.
func Ptr(v float64) *float64 {
	return &v
}
