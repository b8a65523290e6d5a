package theme

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

var thTestHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// --- Get / Names / Register ---

func TestGetDefault(t *testing.T) {
	th := Get("default")
	if th.Name != "default" {
		t.Errorf("Get(\"default\").Name = %q, want %q", th.Name, "default")
	}
	if th.Accent != "#7C3AED" {
		t.Errorf("Get(\"default\").Accent = %q, want %q", th.Accent, "#7C3AED")
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	if got := Get("GruvBox").Name; got != "gruvbox" {
		t.Errorf("Get(\"GruvBox\").Name = %q, want %q", got, "gruvbox")
	}
}

func TestGetUnknownFallsBackToDefault(t *testing.T) {
	th := Get("unknown-theme-xyz")
	if th.Name != Default().Name {
		t.Errorf("Get(\"unknown\") = %q, want %q (default)", th.Name, Default().Name)
	}
}

func TestNamesIncludesBuiltins(t *testing.T) {
	names := strings.Join(Names(), ",")
	for _, want := range []string{"catppuccin", "default", "dracula", "gruvbox", "nord", "tokyo-night"} {
		if !strings.Contains(names, want) {
			t.Errorf("Names() = %s, missing %q", names, want)
		}
	}
}

func TestRegisterCustom(t *testing.T) {
	custom := Default()
	custom.Name = "Test-Custom"
	custom.Range = "#123456"
	Register(custom)

	if got := Get("test-custom").Range; got != "#123456" {
		t.Errorf("registered theme Range = %q, want %q", got, "#123456")
	}
}

// --- Built-in theme completeness ---

func TestAllBuiltinsValidate(t *testing.T) {
	for _, th := range []Theme{
		thDefaultTheme(), thGruvboxTheme(), thNordTheme(),
		thCatppuccinTheme(), thDraculaTheme(), thTokyoNightTheme(),
	} {
		t.Run(th.Name, func(t *testing.T) {
			if err := thValidateTheme(th); err != nil {
				t.Error(err)
			}
			for field, value := range thColorFields(th) {
				if !thTestHexPattern.MatchString(value) {
					t.Errorf("%s = %q is not valid #RRGGBB", field, value)
				}
			}
		})
	}
}

// --- 256-color fallback ---

func TestDownsample(t *testing.T) {
	tests := []struct {
		name    string
		profile termenv.Profile
		in      string
		want    string
	}{
		// Exact cube entries (5,0,0) and (0,5,0).
		{"red", termenv.ANSI256, "#ff0000", "196"},
		{"green", termenv.ANSI256, "#00ff00", "46"},
		// 8+12*10 = 128 sits on the gray ramp, ahead of the cube's 135.
		{"gray", termenv.ANSI256, "#808080", "244"},
		{"already indexed", termenv.ANSI256, "196", "196"},
		{"bright red 16", termenv.ANSI, "#ff0000", "9"},
		{"invalid", termenv.ANSI256, "not-a-color", "not-a-color"},
		{"bad hex", termenv.ANSI256, "#zzzzzz", "#zzzzzz"},
		{"empty", termenv.ANSI256, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := downsample(tt.profile, tt.in); got != tt.want {
				t.Errorf("downsample(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAdaptIsIdempotent(t *testing.T) {
	once := Adapt(Default(), 8)
	if twice := Adapt(once, 8); twice != once {
		t.Errorf("second Adapt changed the theme:\n%+v\n%+v", once, twice)
	}
}

func TestAdaptLowDepthUsesBasicPalette(t *testing.T) {
	for field, value := range thColorFields(Adapt(Default(), 4)) {
		n, err := strconv.Atoi(value)
		if err != nil || n > 15 {
			t.Errorf("Adapt(4bit) %s = %q, want an index below 16", field, value)
		}
	}
}

func TestAdaptConvertsColors(t *testing.T) {
	adapted := Adapt(Default(), 8)
	for field, value := range thColorFields(adapted) {
		if strings.HasPrefix(value, "#") {
			t.Errorf("Adapt with colorDepth=8 should convert %s, got %q", field, value)
		}
	}
}

func TestAdaptPreservesAt24Bit(t *testing.T) {
	th := Default()
	if adapted := Adapt(th, 24); adapted != th {
		t.Errorf("Adapt(24bit) changed the theme: %+v", adapted)
	}
}

func TestDepthFor(t *testing.T) {
	tests := map[termenv.Profile]int{
		termenv.TrueColor: 24,
		termenv.ANSI256:   8,
		termenv.ANSI:      4,
		termenv.Ascii:     1,
	}
	for p, want := range tests {
		if got := DepthFor(p); got != want {
			t.Errorf("DepthFor(%v) = %d, want %d", p, got, want)
		}
	}
}

// --- TOML loading/saving ---

const thValidTOML = `
name = "custom"

[base]
foreground = "#eeeeee"
dim = "#555555"
accent = "#ff00ff"

[track]
track = "#222222"
range = "#00ff00"
tick = "#444444"
label = "#dddddd"

[thumb]
normal = "#ffffff"
focus = "#ff00ff"
active = "#ffff00"

[help]
key = "#ff00ff"
desc = "#555555"
`

func TestLoadFromTOMLValid(t *testing.T) {
	th, err := LoadFromTOML([]byte(thValidTOML))
	if err != nil {
		t.Fatalf("LoadFromTOML: %v", err)
	}
	if th.Name != "custom" || th.Range != "#00ff00" || th.ThumbActive != "#ffff00" {
		t.Errorf("unexpected theme: %+v", th)
	}
}

func TestLoadFromTOMLMissingFieldsError(t *testing.T) {
	_, err := LoadFromTOML([]byte(`name = "partial"` + "\n[base]\nforeground = \"#eeeeee\"\n"))
	if err == nil {
		t.Fatal("expected error for missing fields")
	}
	if !strings.Contains(err.Error(), "missing required field") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFromTOMLInvalidHexColor(t *testing.T) {
	data := strings.Replace(thValidTOML, `range = "#00ff00"`, `range = "green"`, 1)
	_, err := LoadFromTOML([]byte(data))
	if err == nil {
		t.Fatal("expected error for invalid hex color")
	}
	if !strings.Contains(err.Error(), "invalid hex color") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFromTOMLSyntaxError(t *testing.T) {
	if _, err := LoadFromTOML([]byte("name = ")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveToTOMLRoundtrip(t *testing.T) {
	orig := Get("nord")
	data, err := SaveToTOML(orig)
	if err != nil {
		t.Fatalf("SaveToTOML: %v", err)
	}
	back, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML(saved): %v", err)
	}
	if back != orig {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", back, orig)
	}
}
