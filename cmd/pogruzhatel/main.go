package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ijustbsd/pogruzhatel/internal/analysis"
	"github.com/ijustbsd/pogruzhatel/internal/config"
	"github.com/ijustbsd/pogruzhatel/internal/export"
	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
	"github.com/ijustbsd/pogruzhatel/internal/logging"
	"github.com/ijustbsd/pogruzhatel/internal/metrics"
	"github.com/ijustbsd/pogruzhatel/internal/miniapp"
	"github.com/ijustbsd/pogruzhatel/internal/optim"
	"github.com/ijustbsd/pogruzhatel/internal/storage"
	"github.com/ijustbsd/pogruzhatel/internal/viz"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	preset     string
	harmonics  int
	points     int
	save       bool
	// SVG export
	svgOut    string
	svgWidth  int
	svgHeight int
	// Benchmark
	iterations int
	// Sweep
	sweepMetric string
	sweepMin    bool
	sweepOmegas []float64

	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers all commands. Running it without a subcommand opens the TUI.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pogruzhatel",
		Short: "harmonic force sampler for vibratory pile drivers",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := logging.ParseLevel(logLevel); err != nil {
				return err
			}
			logger = logging.New(logging.WithLevel(logLevel), logging.WithOutput(cmd.ErrOrStderr()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	addModelFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal front-end",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	addModelFlags(tuiCmd)

	drawCmd := &cobra.Command{
		Use:   "draw [app]",
		Short: "compute both curves and print their metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDraw,
	}
	addModelFlags(drawCmd)
	drawCmd.Flags().BoolVar(&save, "save", false, "store the run under the data directory")

	plotCmd := &cobra.Command{
		Use:   "plot [app]",
		Short: "plot both curves in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}
	addModelFlags(plotCmd)

	sampleCmd := &cobra.Command{
		Use:   "sample [app]",
		Short: "write the sampled curves as CSV to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSample,
	}
	addModelFlags(sampleCmd)

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [app]",
		Short: "harmonic amplitudes of the superposed curve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSpectrum,
	}
	addModelFlags(spectrumCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a stored run to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOut, "output", "o", "", "output file (default <run_id>.svg, - for stdout)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the sampler",
		Args:  cobra.NoArgs,
		RunE:  benchSampler,
	}
	benchCmd.Flags().IntVar(&iterations, "iterations", 200, "recomputes per case")

	sweepCmd := &cobra.Command{
		Use:   "sweep [app]",
		Short: "search harmonic counts and frequencies for an extreme metric",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addModelFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "asymmetry", "metric to optimize")
	sweepCmd.Flags().BoolVar(&sweepMin, "min", false, "minimize instead of maximize")
	sweepCmd.Flags().Float64SliceVar(&sweepOmegas, "omegas", []float64{0.5, 1, 2}, "base angular frequencies")

	appsCmd := &cobra.Command{
		Use:   "apps",
		Short: "list available mini-apps",
		Args:  cobra.NoArgs,
		RunE:  listApps,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [app]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(tuiCmd, drawCmd, plotCmd, sampleCmd, spectrumCmd, listCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, benchCmd, sweepCmd, appsCmd, presetsCmd)
	return rootCmd
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "preset name (see presets)")
	cmd.Flags().IntVar(&harmonics, "harmonics", harmonic.MaxHarmonics, "harmonic count (1..6)")
	cmd.Flags().IntVar(&points, "points", harmonic.DefaultGridSize, "grid points")
}

// resolveConfig layers defaults, the config file, the preset and changed flags.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.App = args[0]
	}
	kind, err := miniapp.ParseKind(cfg.App)
	if err != nil {
		return nil, err
	}
	cfg.App = kind.String()

	if preset != "" {
		p := config.GetPreset(cfg.App, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.App))
		}
		cfg.Apply(p)
	}

	if cmd.Flags().Changed("harmonics") {
		cfg.Harmonics = harmonics
	}
	if cmd.Flags().Changed("points") {
		cfg.GridSize = points
	}
	if cmd.Flags().Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeApp builds the configured mini-app and runs one recompute.
func computeApp(cfg *config.Config) (*miniapp.App, error) {
	kind, err := miniapp.ParseKind(cfg.App)
	if err != nil {
		return nil, err
	}
	app := miniapp.New(kind)
	app.Sampler().GridSize = cfg.GridSize
	app.Sampler().Omega = cfg.Omega
	if app.Adjustable {
		app.SetCount(cfg.Harmonics)
	} else if cfg.Harmonics != app.Count() {
		logger.Warn("harmonic count is fixed for this app",
			zap.String("app", kind.String()),
			zap.Int("requested", cfg.Harmonics),
			zap.Int("used", app.Count()))
	}

	start := time.Now()
	if err := app.Calculate(); err != nil {
		return nil, err
	}
	logger.Debug("recomputed",
		zap.String("app", kind.String()),
		zap.Int("harmonics", app.Count()),
		zap.Int("points", cfg.GridSize),
		zap.Duration("elapsed", time.Since(start)))
	return app, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so the TUI logs to a file.
	f, err := logging.OpenFile(cfg.DataDir)
	if err != nil {
		return err
	}
	defer f.Close()
	logger = logging.New(logging.WithLevel(cfg.LogLevel), logging.WithOutput(f))
	logger.Info("tui started", zap.String("app", cfg.App))

	final, err := viz.Run(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("tui stopped")

	if configFile != "" {
		if err := config.Save(configFile, final); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}
	return nil
}

func runDraw(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	app, err := computeApp(cfg)
	if err != nil {
		return err
	}
	res := app.Result()
	vals := metrics.Evaluate(res.Superposed)

	out := cmd.OutOrStdout()
	ref, sup := app.Legend()
	fmt.Fprintf(out, "app: %s\n", app.Kind.Title())
	fmt.Fprintf(out, "points: %d\n", res.Grid.Len())
	fmt.Fprintf(out, "legend: %s (reference), %s (superposed)\n", ref, sup)
	fmt.Fprintln(out, "\nmetrics:")
	printMetrics(out, vals)

	if !save {
		return nil
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.Run{
		App:           app.Kind.String(),
		Harmonics:     app.Count(),
		Omega:         app.Sampler().Omega,
		ReferenceGain: app.Sampler().ReferenceGain,
	}, res, vals)
	if err != nil {
		return err
	}
	logger.Info("run saved", zap.String("run_id", runID), zap.String("dir", cfg.DataDir))
	fmt.Fprintf(out, "\nrun id: %s\n", runID)
	return nil
}

func printMetrics(out io.Writer, vals map[string]float64) {
	for _, m := range metrics.Default() {
		v, ok := vals[m.Name()]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %s: %.6f\n", m.Name(), v)
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	app, err := computeApp(cfg)
	if err != nil {
		return err
	}
	res := app.Result()

	graph := asciigraph.PlotMany(
		[][]float64{res.Reference.Ys(), res.Superposed.Ys()},
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green),
		asciigraph.SeriesLegends(res.Reference.Label, res.Superposed.Label),
		asciigraph.Caption(fmt.Sprintf("%s: %s vs %s", app.Kind.Title(), app.YLabel, app.XLabel)),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	app, err := computeApp(cfg)
	if err != nil {
		return err
	}
	return storage.WriteCSV(cmd.OutOrStdout(), app.Result())
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	app, err := computeApp(cfg)
	if err != nil {
		return err
	}
	res := app.Result()
	coef := app.Sampler().Coefficients
	omega := app.Sampler().Omega

	amps, err := analysis.HarmonicAmplitudes(res.Superposed, coef.Len())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tAMPLITUDE\tEXPECTED")
	for i, a := range amps {
		expected := 0.0
		if i < res.Harmonics {
			expected = coef.Amplitude(i, omega)
		}
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\n", i+1, a, expected)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\ndominant order: %d\n", analysis.DominantOrder(amps))
	return nil
}

// resolveDataDir picks the run directory with the same layering as resolveConfig:
// a changed --data flag wins over the config file's data_dir.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if configFile == "" || cmd.Flags().Changed("data") {
		return dataDir, nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.DataDir, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	dir, err := resolveDataDir(cmd)
	if err != nil {
		return err
	}
	st := storage.New(dir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tAPP\tTIME\tHARMONICS\tPOINTS\tPEAK")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4f\n",
			run.ID,
			run.App,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Harmonics,
			run.GridSize,
			run.Metrics["peak_force"],
		)
	}
	return w.Flush()
}

func loadRun(cmd *cobra.Command, runID string) (*storage.RunMetadata, *harmonic.Result, error) {
	dir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, nil, err
	}
	st := storage.New(dir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	curves, err := st.LoadCurves(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(curves.Times) == 0 {
		return nil, nil, errors.New("no data to export")
	}
	return meta, curves.Result(meta), nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, res, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(cmd.OutOrStdout(), meta.ID, meta.App, res, meta.Metrics)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, res, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(cmd.OutOrStdout(), res)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, res, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	title := meta.App
	if kind, err := miniapp.ParseKind(meta.App); err == nil {
		title = kind.Title()
	}
	svg := export.CurvesToSVG(export.ResultSeries(res), svgWidth, svgHeight, export.Options{
		Title:  title,
		XLabel: "Time",
		YLabel: "Force",
	})

	if svgOut == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), svg)
		return err
	}
	path := svgOut
	if path == "" {
		path = meta.ID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func benchSampler(cmd *cobra.Command, args []string) error {
	if iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	sizes := []int{101, harmonic.DefaultGridSize, 10001}
	counts := []int{harmonic.MinHarmonics, harmonic.MaxHarmonics}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking sampler (%d iterations)\n\n", iterations)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINTS\tHARMONICS\tTIME/OP\tPOINTS/SEC")

	for _, size := range sizes {
		for _, n := range counts {
			s := harmonic.NewSampler()
			s.GridSize = size

			start := time.Now()
			for i := 0; i < iterations; i++ {
				if _, err := s.Sample(n); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)
			perOp := elapsed / time.Duration(iterations)
			pps := float64(size*iterations) / elapsed.Seconds()

			fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", size, n, perOp, pps)
		}
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	kind, err := miniapp.ParseKind(cfg.App)
	if err != nil {
		return err
	}
	app := miniapp.New(kind)

	counts := []int{app.Count()}
	if app.Adjustable {
		counts = counts[:0]
		for n := harmonic.MinHarmonics; n <= app.MaxCount(); n++ {
			counts = append(counts, n)
		}
	}

	search := optim.NewGridSearch(counts, sweepOmegas)
	search.Build = func() *harmonic.Sampler {
		s := harmonic.NewSampler()
		s.GridSize = cfg.GridSize
		s.ReferenceGain = app.Sampler().ReferenceGain
		return s
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	all, err := search.Evaluate(ctx)
	if err != nil {
		return err
	}
	best, err := optim.Best(all, sweepMetric, !sweepMin)
	if err != nil {
		return err
	}
	logger.Debug("sweep finished", zap.Int("candidates", search.Size()), zap.Duration("elapsed", time.Since(start)))

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "HARMONICS\tOMEGA\t%s\n", strings.ToUpper(sweepMetric))
	for _, c := range all {
		fmt.Fprintf(w, "%d\t%.3f\t%.6f\n", c.Harmonics, c.Omega, c.Metrics[sweepMetric])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nbest: N = %d, omega = %.3f, %s = %.6f\n", best.Harmonics, best.Omega, sweepMetric, best.Metrics[sweepMetric])
	return nil
}

func listApps(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tHARMONICS\tREFERENCE GAIN")
	for _, k := range miniapp.Kinds() {
		app := miniapp.New(k)
		count := fmt.Sprintf("%d", app.Count())
		if app.Adjustable {
			count = fmt.Sprintf("%d..%d", harmonic.MinHarmonics, app.MaxCount())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\n", k, k.Title(), count, app.Sampler().ReferenceGain)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	apps := make([]string, 0, len(miniapp.Kinds()))
	if len(args) > 0 {
		kind, err := miniapp.ParseKind(args[0])
		if err != nil {
			return err
		}
		apps = append(apps, kind.String())
	} else {
		for _, k := range miniapp.Kinds() {
			apps = append(apps, k.String())
		}
	}

	for _, app := range apps {
		presets := config.ListPresets(app)
		if len(presets) == 0 {
			fmt.Fprintf(out, "no presets for app: %s\n", app)
			continue
		}
		fmt.Fprintf(out, "presets for %s:\n", app)
		for _, p := range presets {
			cfg := config.GetPreset(app, p)
			fmt.Fprintf(out, "  %s%sN = %d\n", p, strings.Repeat(" ", 10-len(p)), cfg.Harmonics)
		}
	}
	return nil
}
