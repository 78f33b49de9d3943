package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	defaultPreset = "solar"
	// Bodies beyond this distance from the origin count as escaped.
	escapeRadius = 100 * dynamo.AU
)

var (
	logLevel string
	// Scenario overrides
	configFile    string
	ticks         int
	mode          string
	trailCapacity int
	// Live view
	frameRate     int
	stepsPerFrame int
	// SVG export
	svgWidth  int
	svgHeight int
	zoom      float64
	// init-config
	preset string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitsim",
		Short: "2D newtonian n-body simulator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "diagnostic log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scenario headless",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run a scenario with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", viz.DefaultFrameRate, "frame rate")
	liveCmd.Flags().IntVar(&stepsPerFrame, "steps", viz.DefaultStepsPerFrame, "ticks per frame")

	compareCmd := &cobra.Command{
		Use:   "compare [preset]",
		Short: "compare synchronous and sequential stepping",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareModes,
	}
	addScenarioFlags(compareCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze [preset]",
		Short: "estimate orbital periods",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeOrbits,
	}
	addScenarioFlags(analyzeCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [preset] [file]",
		Short: "run a scenario and draw the orbits to SVG",
		Args:  cobra.MaximumNArgs(2),
		RunE:  exportSVG,
	}
	addScenarioFlags(exportSVGCmd)
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 1000, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 1000, "image height")
	exportSVGCmd.Flags().Float64Var(&zoom, "zoom", 1, "zoom relative to 100 units per AU")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [preset] [file]",
		Short: "run a scenario and export orbit histories to JSON (stdout by default)",
		Args:  cobra.MaximumNArgs(2),
		RunE:  exportJSON,
	}
	addScenarioFlags(exportJSONCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-8s %d bodies, %d ticks\n", name, len(cfg.Bodies), cfg.Ticks)
			}
			return nil
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [file]",
		Short: "write a preset as an editable yaml scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initConfigCmd.Flags().StringVar(&preset, "preset", defaultPreset, "preset to start from")

	rootCmd.AddCommand(runCmd, liveCmd, compareCmd, analyzeCmd, exportSVGCmd, exportJSONCmd, presetsCmd, initConfigCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func setupLogger(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "ticks to simulate")
	cmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "step mode (synchronous, sequential)")
	cmd.Flags().IntVar(&trailCapacity, "trail", config.DefaultTrailCapacity, "orbit history points per body, 0 for unbounded")
}

// loadScenario resolves the preset or config file; flags override file values
// only when given.
func loadScenario(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	} else {
		name := defaultPreset
		if len(args) > 0 {
			name = args[0]
		}
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
	}

	if cmd.Flags().Changed("ticks") {
		cfg.Ticks = ticks
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = mode
	}
	if cmd.Flags().Changed("trail") {
		cfg.TrailCapacity = trailCapacity
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("scenario loaded", "name", cfg.Name, "bodies", len(cfg.Bodies), "ticks", cfg.Ticks, "mode", cfg.Mode)
	return cfg, nil
}

func newStepper(cfg *config.Config) (*sim.Stepper, error) {
	m, err := sim.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	return sim.NewStepper(cfg.Params(), m)
}

type outcome struct {
	stepper *sim.Stepper
	bodies  []*dynamo.Body
	result  *sim.Result
}

// simulate builds the scenario and runs it headless. The outcome is nil only
// when the scenario could not be built; a failed run still reports how far
// it got.
func simulate(ctx context.Context, cfg *config.Config, extra ...dynamo.Metric) (*outcome, error) {
	bodies, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	stepper, err := newStepper(cfg)
	if err != nil {
		return nil, err
	}

	s := sim.New(stepper)
	s.AddMetric(metrics.NewEnergyDrift(cfg.G))
	s.AddMetric(metrics.NewMomentumDrift())
	s.AddMetric(metrics.NewBound(escapeRadius))
	for _, m := range extra {
		s.AddMetric(m)
	}

	start := time.Now()
	result, err := s.Run(ctx, bodies, sim.Config{Ticks: cfg.Ticks, ValidateState: true})
	slog.Info("run finished", "scenario", cfg.Name, "mode", stepper.Mode(), "elapsed", time.Since(start), "err", err)
	if result == nil {
		return nil, err
	}
	return &outcome{stepper: stepper, bodies: bodies, result: result}, err
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	var dist *metrics.DistanceSeries
	var extra []dynamo.Metric
	if b := firstOrbiting(cfg.Bodies); b != "" {
		dist = metrics.NewDistanceSeries(b)
		extra = append(extra, dist)
	}

	fmt.Printf("running %s (%d bodies, %d ticks, %s)...\n", cfg.Name, len(cfg.Bodies), cfg.Ticks, cfg.Mode)
	start := time.Now()
	out, err := simulate(cmd.Context(), cfg, extra...)
	if out == nil {
		return err
	}
	bodies, result := out.bodies, out.result

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("ticks: %d (%.1f days)\n\n", result.TicksTaken, result.SimulatedTime/dynamo.Day)
	if werr := printBodies(bodies); werr != nil {
		return werr
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	fmt.Printf("  energy_drift: %.6g\n", result.EnergyDrift)

	if dist != nil && len(dist.Values()) > 1 {
		lo, hi := dist.Range()
		fmt.Printf("\n%s distance: %s .. %s\n", dist.Name(), viz.FormatDistance(lo), viz.FormatDistance(hi))
		km := make([]float64, len(dist.Values()))
		for i, d := range dist.Values() {
			km[i] = d / 1000
		}
		fmt.Println(asciigraph.Plot(km,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(dist.Name()+" (km)"),
		))
	}

	return err
}

func printBodies(bodies []*dynamo.Body) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tX (AU)\tY (AU)\tSPEED (km/s)\tDISTANCE")
	for _, b := range bodies {
		dist := "-"
		if !b.Reference {
			dist = viz.FormatDistance(b.DistanceToReference)
		}
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.3f\t%s\n",
			b.Name,
			b.Pos.X/dynamo.AU,
			b.Pos.Y/dynamo.AU,
			r2.Norm(b.Vel)/1000,
			dist,
		)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}
	bodies, err := cfg.Build()
	if err != nil {
		return err
	}
	stepper, err := newStepper(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(stepper, bodies, viz.Options{
		Title:         cfg.Name,
		FrameRate:     frameRate,
		StepsPerFrame: stepsPerFrame,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if fm, ok := final.(viz.Model); ok {
		slog.Info("live view closed", "ticks", fm.Ticks())
		if fm.Err() != nil {
			return fm.Err()
		}
	}
	return nil
}

func compareModes(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	modes := []sim.Mode{sim.Synchronous, sim.Sequential}
	jobs := make([]sim.Job, len(modes))
	for i, md := range modes {
		bodies, err := cfg.Build()
		if err != nil {
			return err
		}
		stepper, err := sim.NewStepper(cfg.Params(), md)
		if err != nil {
			return err
		}
		jobs[i] = sim.Job{
			Name:    md.String(),
			Stepper: stepper,
			Bodies:  bodies,
			Config:  sim.Config{Ticks: cfg.Ticks, ValidateState: true},
		}
	}

	fmt.Printf("comparing step modes on %s (%d ticks)...\n\n", cfg.Name, cfg.Ticks)
	results, err := sim.RunAll(cmd.Context(), jobs)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tTICKS\tENERGY DRIFT")
	for i, job := range jobs {
		fmt.Fprintf(w, "%s\t%d\t%.3e\n", job.Name, results[i].TicksTaken, results[i].EnergyDrift)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tDIVERGENCE")
	a, b := jobs[0].Bodies, jobs[1].Bodies
	for i := range a {
		fmt.Fprintf(w, "%s\t%s\n", a[i].Name, viz.FormatDistance(r2.Norm(r2.Sub(a[i].Pos, b[i].Pos))))
	}
	return w.Flush()
}

func analyzeOrbits(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}
	out, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	bodies := out.bodies

	ref := reference(bodies)
	if ref == nil {
		return fmt.Errorf("scenario %s has no reference body", cfg.Name)
	}

	fmt.Printf("orbital analysis of %s (%d ticks)\n\n", cfg.Name, cfg.Ticks)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tPERIOD (days)\tCLOSURE")
	for _, b := range bodies {
		if b == ref {
			continue
		}
		period := "-"
		if p, err := analysis.OrbitalPeriod(b, ref, cfg.Dt); err == nil {
			period = fmt.Sprintf("%.1f", p/dynamo.Day)
		} else {
			slog.Debug("no period", "body", b.Name, "err", err)
		}
		closure := "-"
		if c, err := analysis.Closure(b.Orbit); err == nil {
			closure = fmt.Sprintf("%.2f%%", c*100)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Name, period, closure)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, b := range bodies {
		if b == ref || b.Orbit.Len() < 4 {
			continue
		}
		xs := make([]float64, b.Orbit.Len())
		for i := range xs {
			xs[i] = b.Orbit.At(i).X
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(analysis.PowerSpectrum(xs),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(b.Name+" x spectrum"),
		))
		break
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	path := "orbits.svg"
	if len(args) == 2 {
		path = args[1]
	}
	cfg, err := loadScenario(cmd, args[:min(len(args), 1)])
	if err != nil {
		return err
	}
	out, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	svg := export.OrbitsToSVG(out.bodies, svgWidth, svgHeight, zoom*viz.DisplayScale)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 2 {
		path = args[1]
	}
	cfg, err := loadScenario(cmd, args[:min(len(args), 1)])
	if err != nil {
		return err
	}
	out, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	data := export.NewExportData(cfg.Name, out.stepper, out.result, out.bodies)
	if err := export.ExportJSON(path, data); err != nil {
		return err
	}
	if path != "-" {
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "orbitsim.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s from preset %s\n", path, preset)
	return nil
}

func reference(bodies []*dynamo.Body) *dynamo.Body {
	for _, b := range bodies {
		if b.Reference {
			return b
		}
	}
	return nil
}

func firstOrbiting(bodies []config.BodyConfig) string {
	hasRef := false
	for _, b := range bodies {
		hasRef = hasRef || b.Reference
	}
	if !hasRef {
		return ""
	}
	for _, b := range bodies {
		if !b.Reference {
			return b.Name
		}
	}
	return ""
}
