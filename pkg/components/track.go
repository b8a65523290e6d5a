package components

import (
	"math"
	"strings"
)

// Track glyphs.
const (
	GlyphLine   = '─'
	GlyphRange  = '━'
	GlyphThumb  = '●'
	GlyphFocus  = '◆'
	GlyphActive = '◉'
	GlyphStack  = '◎'
	GlyphTick   = '╵'
)

// Column maps v in [lo, hi] to a cell column in [0, width-1]. Values outside
// the interval clamp to the ends; an empty interval maps to column 0.
func Column(v, lo, hi float64, width int) int {
	if width <= 1 || hi <= lo {
		return 0
	}
	ratio := (v - lo) / (hi - lo)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * float64(width-1)))
}

// Mark is a labeled position on a ruler.
type Mark struct {
	Col   int
	Label string
}

// Ruler renders two lines under a track of the given width: tick glyphs at
// each mark's column, and the labels centered beneath them. A label that
// would overlap the previous one is dropped.
func Ruler(marks []Mark, width int) (ticks, labels string) {
	if width <= 0 {
		return "", ""
	}
	tickRow := []rune(strings.Repeat(" ", width))
	labelRow := []rune(strings.Repeat(" ", width))
	next := 0
	for _, mk := range marks {
		if mk.Col < 0 || mk.Col >= width {
			continue
		}
		tickRow[mk.Col] = GlyphTick

		lbl := []rune(Truncate(mk.Label, width))
		start := mk.Col - len(lbl)/2
		if start < 0 {
			start = 0
		}
		if start+len(lbl) > width {
			start = width - len(lbl)
		}
		if start < next {
			continue
		}
		copy(labelRow[start:], lbl)
		next = start + len(lbl) + 1
	}
	return string(tickRow), strings.TrimRight(string(labelRow), " ")
}
