package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type printed struct {
	Sliders []sliderOutput `json:"sliders"`
}

// runHeadless runs the CLI against an empty XDG config home and decodes
// its JSON output.
func runHeadless(t *testing.T, args ...string) (printed, int, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, false)
	var out printed
	if code == 0 {
		if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
			t.Fatalf("decode output %q: %v", stdout.String(), err)
		}
	}
	return out, code, stderr.String()
}

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr, false); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "multirange ") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestHeadlessDefaults(t *testing.T) {
	out, code, stderr := runHeadless(t, "-print")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	want := printed{Sliders: []sliderOutput{{ID: "range", Values: []float64{25, 75}}}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadlessValuesAndSets(t *testing.T) {
	out, code, stderr := runHeadless(t,
		"-values", "20,80",
		"-step-between", "10",
		"-set", "1=25",
		"-set", "0=abc",
	)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	// 1=25 is pushed up to 30 by the gap; "abc" reads as 0.
	if diff := cmp.Diff([]float64{0, 30}, out.Sliders[0].Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadlessBounds(t *testing.T) {
	out, code, stderr := runHeadless(t,
		"-values", "20,80",
		"-bound", "1=30:50",
		"-bound", "0=:25",
		"-bound", "7=1:2",
		"-set", "0=40",
	)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if diff := cmp.Diff([]float64{25, 50}, out.Sliders[0].Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(stderr, "ignoring -bound") {
		t.Errorf("unknown handle bound not reported, stderr = %q", stderr)
	}
}

func TestHeadlessDomainFlags(t *testing.T) {
	out, code, stderr := runHeadless(t, "-min", "50", "-max", "60", "-values", "0,100")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if diff := cmp.Diff([]float64{50, 60}, out.Sliders[0].Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadlessTicks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticks.toml")
	body := `
[[list]]
id = "sizes"
  [[list.option]]
  value = 0
  label = "XS"
  [[list.option]]
  value = 50
  label = "M"
  [[list.option]]
  value = 100
  label = "XL"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, code, stderr := runHeadless(t, "-ticks", path, "-source", "sizes", "-values", "10,60")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	want := sliderOutput{ID: "range", Values: []float64{0, 50}, Labels: []string{"XS", "M"}}
	if diff := cmp.Diff(want, out.Sliders[0]); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[slider]
id = "price"
preset = "triple"

[[sliders]]
id = "extra"
preset = "single"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	out, code, stderr := runHeadless(t, "-config", path)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if len(out.Sliders) != 2 {
		t.Fatalf("got %d sliders, want 2", len(out.Sliders))
	}
	if diff := cmp.Diff([]float64{10, 50, 90}, out.Sliders[0].Values); diff != "" {
		t.Errorf("price mismatch (-want +got):\n%s", diff)
	}
	if out.Sliders[1].ID != "extra" {
		t.Errorf("second slider id = %q", out.Sliders[1].ID)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"bad set", []string{"-set", "nope"}, 2},
		{"bound without colon", []string{"-bound", "0=5"}, 2},
		{"bad bound number", []string{"-bound", "0=a:5"}, 2},
		{"missing ticks", []string{"-ticks", "/nonexistent/ticks.toml"}, 1},
		{"missing config uses defaults", []string{"-config", "/nonexistent/config.toml"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, code, _ := runHeadless(t, tt.args...)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d", code, tt.code)
			}
		})
	}
}

func TestSetFlagsString(t *testing.T) {
	var s setFlags
	if err := s.Set("0=5"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("2 = x"); err != nil {
		t.Fatal(err)
	}
	if got := s.String(); got != "0=5,2= x" {
		t.Errorf("String() = %q", got)
	}
}

func TestBoundFlagsString(t *testing.T) {
	var b boundFlags
	for _, v := range []string{"0=1.5:9", "1=:4", "2=3:"} {
		if err := b.Set(v); err != nil {
			t.Fatalf("Set(%q): %v", v, err)
		}
	}
	if got := b.String(); got != "0=1.5:9,1=:4,2=3:" {
		t.Errorf("String() = %q", got)
	}
}
