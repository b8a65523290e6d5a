package components

import (
	"strings"
	"testing"
)

func TestColumn(t *testing.T) {
	tests := []struct {
		v     float64
		width int
		want  int
	}{
		{0, 11, 0},
		{50, 11, 5},
		{100, 11, 10},
		{-20, 11, 0},
		{140, 11, 10},
		{33, 4, 1},
		{50, 1, 0},
	}
	for _, tt := range tests {
		if got := Column(tt.v, 0, 100, tt.width); got != tt.want {
			t.Errorf("Column(%v, 0, 100, %d) = %d, want %d", tt.v, tt.width, got, tt.want)
		}
	}
	if got := Column(5, 10, 10, 20); got != 0 {
		t.Errorf("empty interval should map to 0, got %d", got)
	}
}

func TestRulerPlacesTicksAndLabels(t *testing.T) {
	ticks, labels := Ruler([]Mark{{0, "0"}, {10, "50"}, {20, "100"}}, 21)
	if len([]rune(ticks)) != 21 {
		t.Fatalf("tick row width = %d, want 21", len([]rune(ticks)))
	}
	for _, col := range []int{0, 10, 20} {
		if []rune(ticks)[col] != GlyphTick {
			t.Errorf("expected tick glyph at column %d in %q", col, ticks)
		}
	}
	want := "0" + strings.Repeat(" ", 8) + "50" + strings.Repeat(" ", 7) + "100"
	if labels != want {
		t.Errorf("labels = %q, want %q", labels, want)
	}
}

func TestRulerDropsOverlappingLabels(t *testing.T) {
	_, labels := Ruler([]Mark{{0, "low"}, {1, "mid"}, {8, "hi"}}, 10)
	if strings.Contains(labels, "mid") {
		t.Errorf("overlapping label should be dropped: %q", labels)
	}
	if !strings.HasPrefix(labels, "low") || !strings.HasSuffix(labels, "hi") {
		t.Errorf("labels = %q", labels)
	}
}

func TestRulerZeroWidth(t *testing.T) {
	if a, b := Ruler([]Mark{{0, "x"}}, 0); a != "" || b != "" {
		t.Error("zero width should render nothing")
	}
}

func TestTextHelpers(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate = %q", got)
	}
	if got := TruncateWithTail("abcdef", 4, "…"); VisibleLen(got) != 4 {
		t.Errorf("TruncateWithTail width = %d (%q)", VisibleLen(got), got)
	}
	if got := Strip("\x1b[1mbold\x1b[0m"); got != "bold" {
		t.Errorf("Strip = %q", got)
	}
	if VisibleLen("\x1b[31mred\x1b[0m") != 3 {
		t.Error("VisibleLen should ignore escapes")
	}
}
