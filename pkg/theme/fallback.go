package theme

import (
	"strconv"

	"github.com/muesli/termenv"
)

// Adapt rewrites every hex color of a theme into a palette index the
// terminal can show. Themes pass through untouched at 24-bit depth.
func Adapt(t Theme, colorDepth int) Theme {
	if colorDepth >= 24 {
		return t
	}
	p := termenv.ANSI256
	if colorDepth < 8 {
		p = termenv.ANSI
	}
	for _, c := range []*string{
		&t.Foreground, &t.Dim, &t.Accent,
		&t.Track, &t.Range, &t.Tick, &t.Label,
		&t.Thumb, &t.ThumbFocus, &t.ThumbActive,
		&t.HelpKey, &t.HelpDesc,
	} {
		*c = downsample(p, *c)
	}
	return t
}

// DepthFor returns the color depth in bits for a termenv profile.
func DepthFor(p termenv.Profile) int {
	switch p {
	case termenv.TrueColor:
		return 24
	case termenv.ANSI256:
		return 8
	case termenv.ANSI:
		return 4
	default:
		return 1
	}
}

// downsample maps a color to its nearest palette index under p, returned in
// the decimal form lipgloss accepts. Unparseable values are returned as-is.
func downsample(p termenv.Profile, color string) string {
	switch c := p.Color(color).(type) {
	case termenv.ANSI256Color:
		return strconv.Itoa(int(c))
	case termenv.ANSIColor:
		return strconv.Itoa(int(c))
	default:
		return color
	}
}
