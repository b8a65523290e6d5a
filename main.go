// multirange is a terminal multi-handle range slider.
//
// It shows one or more sliders whose handles hold ordered values inside a
// [min, max] domain, optionally snapped to a tick list, and prints the
// chosen values as JSON when the user quits. When stdout is not a terminal,
// or -print is given, it applies -set writes and prints the values without
// starting the TUI.
//
// Usage:
//
//	multirange [flags]
//
// Flags:
//
//	-config string        Path to configuration file (default: ~/.config/multirange/config.toml)
//	-values string        Comma-separated initial values of the primary slider
//	-min float            Domain minimum of the primary slider
//	-max float            Domain maximum of the primary slider
//	-step-between float   Minimum gap between adjacent handles
//	-ticks string         Tick list file (.toml, .yaml, .yml)
//	-source string        Tick list id the primary slider snaps to
//	-set i=v              Write v to handle i of the primary slider (repeatable)
//	-bound i=lo:hi        Limit handle i of the primary slider to [lo, hi]; either side may be empty (repeatable)
//	-print                Print values as JSON instead of starting the TUI
//	-theme string         Color theme name
//	-verbose              Enable verbose logging
//	-version              Print version and exit
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/multirange/pkg/app"
	"gitlab.com/tinyland/lab/multirange/pkg/config"
	"gitlab.com/tinyland/lab/multirange/pkg/rangeval"
	"gitlab.com/tinyland/lab/multirange/pkg/slider"
	"gitlab.com/tinyland/lab/multirange/pkg/theme"
	"gitlab.com/tinyland/lab/multirange/pkg/ticks"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	fd := os.Stdout.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, interactive))
}

// setFlags collects repeated -set i=v writes.
type setFlags []setWrite

type setWrite struct {
	index int
	raw   string
}

func (s *setFlags) String() string {
	parts := make([]string, len(*s))
	for i, w := range *s {
		parts[i] = fmt.Sprintf("%d=%s", w.index, w.raw)
	}
	return strings.Join(parts, ",")
}

func (s *setFlags) Set(v string) error {
	idx, raw, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("want i=v, got %q", v)
	}
	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return fmt.Errorf("handle index %q: %w", idx, err)
	}
	*s = append(*s, setWrite{index: i, raw: raw})
	return nil
}

// boundFlags collects repeated -bound i=lo:hi limits.
type boundFlags []handleBound

type handleBound struct {
	index  int
	lo, hi *float64
}

func (b *boundFlags) String() string {
	parts := make([]string, len(*b))
	for i, hb := range *b {
		parts[i] = fmt.Sprintf("%d=%s:%s", hb.index, boundText(hb.lo), boundText(hb.hi))
	}
	return strings.Join(parts, ",")
}

func boundText(v *float64) string {
	if v == nil {
		return ""
	}
	return rangeval.FormatNumber(*v)
}

func (b *boundFlags) Set(v string) error {
	idx, rest, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("want i=lo:hi, got %q", v)
	}
	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return fmt.Errorf("handle index %q: %w", idx, err)
	}
	loRaw, hiRaw, ok := strings.Cut(rest, ":")
	if !ok {
		return fmt.Errorf("want i=lo:hi, got %q", v)
	}
	hb := handleBound{index: i}
	if hb.lo, err = parseBound(loRaw); err != nil {
		return err
	}
	if hb.hi, err = parseBound(hiRaw); err != nil {
		return err
	}
	*b = append(*b, hb)
	return nil
}

func parseBound(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("bound %q: %w", raw, err)
	}
	return &f, nil
}

// options holds parsed command line flags.
type options struct {
	configPath  string
	values      string
	min         float64
	max         float64
	stepBetween float64
	ticksFile   string
	source      string
	sets        setFlags
	bounds      boundFlags
	print       bool
	theme       string
	verbose     bool
	version     bool

	set map[string]bool // flags given explicitly
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet("multirange", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&o.values, "values", "", "Comma-separated initial values of the primary slider")
	fs.Float64Var(&o.min, "min", 0, "Domain minimum of the primary slider")
	fs.Float64Var(&o.max, "max", 100, "Domain maximum of the primary slider")
	fs.Float64Var(&o.stepBetween, "step-between", 0, "Minimum gap between adjacent handles")
	fs.StringVar(&o.ticksFile, "ticks", "", "Tick list file (.toml, .yaml, .yml)")
	fs.StringVar(&o.source, "source", "", "Tick list id the primary slider snaps to")
	fs.Var(&o.sets, "set", "Write `i=v` to the primary slider (repeatable)")
	fs.Var(&o.bounds, "bound", "Limit handle i of the primary slider to `i=lo:hi` (repeatable)")
	fs.BoolVar(&o.print, "print", false, "Print values as JSON instead of starting the TUI")
	fs.StringVar(&o.theme, "theme", "", "Color theme name")
	fs.BoolVar(&o.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&o.version, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

func run(args []string, stdout, stderr io.Writer, interactive bool) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "multirange %s (%s) built %s\n", version, commit, date)
		return 0
	}

	var cfg *config.Config
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	applyFlags(cfg, opts)

	headless := opts.print || !interactive

	// In the TUI, stderr shares the terminal with the alt screen, so logs go
	// to the log file only.
	var logOut io.Writer = stderr
	if !headless {
		logOut = io.Discard
	}
	if cfg.General.LogFile != "" {
		if err := ensureLogDir(cfg.General.LogFile); err != nil {
			fmt.Fprintf(stderr, "failed to create log directory: %v\n", err)
			return 1
		}
		logFile, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "failed to open log file: %v\n", err)
			return 1
		}
		defer logFile.Close()
		logOut = io.MultiWriter(logOut, logFile)
	}
	logLevel := cfg.General.Level()
	if opts.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if cfg.Theme.File != "" {
		if err := registerThemeFile(cfg.Theme.File); err != nil {
			fmt.Fprintf(stderr, "failed to load theme: %v\n", err)
			return 1
		}
	}

	reg, err := loadTicks(cfg.Ticks.File)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load ticks: %v\n", err)
		return 1
	}

	var zones *zone.Manager
	if !headless {
		zones = zone.New()
		defer zones.Close()
	}
	sliders := buildSliders(cfg, reg, zones, logger)

	for _, b := range opts.bounds {
		if !sliders[0].SetHandleBounds(b.index, b.lo, b.hi) {
			logger.Warn("ignoring -bound for unknown handle", "index", b.index)
		}
	}
	for _, w := range opts.sets {
		if !sliders[0].SetRawValue(w.index, w.raw) {
			logger.Warn("ignoring -set for unknown handle", "index", w.index)
		}
	}

	if headless {
		if err := printValues(stdout, sliders); err != nil {
			fmt.Fprintf(stderr, "failed to write values: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	appCfg := app.DefaultConfig()
	appCfg.Theme = cfg.Theme.Name
	appCfg.ColorDepth = theme.DepthFor(termenv.NewOutput(os.Stdout).Profile)
	appCfg.Zones = zones
	appCfg.Logger = logger
	if cfg.Ticks.File != "" {
		path := cfg.Ticks.File
		appCfg.LoadTicks = func() (*ticks.Registry, error) { return loadTicks(path) }
		appCfg.ReloadInterval = cfg.Ticks.ReloadInterval.Duration
	}

	model := app.NewAppModel(appCfg, sliders...)
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(stderr, "TUI error: %v\n", err)
		return 1
	}
	logger.Info("exiting")

	if err := printValues(stdout, sliders); err != nil {
		fmt.Fprintf(stderr, "failed to write values: %v\n", err)
		return 1
	}
	return 0
}

// applyFlags lets explicit flags override the primary slider and globals.
func applyFlags(cfg *config.Config, o *options) {
	s := &cfg.Slider
	if o.set["min"] {
		s.Min = rangeval.Ptr(o.min)
	}
	if o.set["max"] {
		s.Max = rangeval.Ptr(o.max)
	}
	if o.set["step-between"] {
		s.StepBetween = o.stepBetween
	}
	if o.set["source"] {
		s.DiscreteSource = o.source
	}
	if o.set["ticks"] {
		cfg.Ticks.File = o.ticksFile
	}
	if o.set["theme"] {
		cfg.Theme.Name = o.theme
	}
	if o.values != "" {
		fields := strings.Split(o.values, ",")
		handles := make([]config.HandleConfig, len(fields))
		for i, f := range fields {
			if i < len(s.Handles) {
				handles[i] = s.Handles[i]
			}
			handles[i].Value = config.Number(f)
		}
		s.Handles = handles
	}
}

func buildSliders(cfg *config.Config, reg *ticks.Registry, zones *zone.Manager, logger *slog.Logger) []*slider.Model {
	var out []*slider.Model
	for _, sc := range cfg.All() {
		out = append(out, slider.New(slider.Config{
			ID:            sc.ID,
			Title:         sc.Title,
			Domain:        sc.Domain(),
			StepBetween:   sc.StepBetween,
			Ticks:         reg.Resolve(sc.DiscreteSource),
			Handles:       sc.StoreHandles(),
			Source:        sc.DiscreteSource,
			DragThreshold: sc.DragThreshold,
			Width:         sc.Width,
			Labels:        slider.MapLabels(sc.Labels()),
			Zones:         zones,
			Logger:        logger,
		}))
	}
	return out
}

// loadTicks reads a tick list file into a fresh registry. An empty path
// yields an empty registry.
func loadTicks(path string) (*ticks.Registry, error) {
	reg := ticks.NewRegistry()
	if path == "" {
		return reg, nil
	}
	if err := ticks.LoadFile(path, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func registerThemeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	t, err := theme.LoadFromTOML(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	theme.Register(t)
	return nil
}

type sliderOutput struct {
	ID     string    `json:"id"`
	Values []float64 `json:"values"`
	Labels []string  `json:"labels,omitempty"`
}

func printValues(w io.Writer, sliders []*slider.Model) error {
	out := struct {
		Sliders []sliderOutput `json:"sliders"`
	}{}
	for _, s := range sliders {
		out.Sliders = append(out.Sliders, sliderOutput{
			ID:     s.ID(),
			Values: s.Values(),
			Labels: s.ValueLabels(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ensureLogDir creates the parent directory of logFile if it does not exist.
func ensureLogDir(logFile string) error {
	return os.MkdirAll(filepath.Dir(logFile), 0o755)
}
