package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/ballfield/internal/analysis"
	"github.com/san-kum/ballfield/internal/automation"
	"github.com/san-kum/ballfield/internal/config"
	"github.com/san-kum/ballfield/internal/export"
	"github.com/san-kum/ballfield/internal/field"
	"github.com/san-kum/ballfield/internal/loop"
	"github.com/san-kum/ballfield/internal/metrics"
	"github.com/san-kum/ballfield/internal/sim"
	"github.com/san-kum/ballfield/internal/storage"
	"github.com/san-kum/ballfield/internal/viz"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params := cfg.Params()
	f, err := field.New(params, cfg.Seed)
	if err != nil {
		return err
	}
	f.Resize(cfg.Width, cfg.Height)

	var script sim.Script
	if cfg.Scenario != "" {
		sc, err := automation.Resolve(cfg.Scenario, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		script = sc
	}

	s := sim.New(f, script)
	s.SetLogger(logger)
	s.AddMetric(metrics.NewKineticEnergy())
	s.AddMetric(metrics.NewPeakSpeed())
	s.AddMetric(metrics.NewCollisionRate())
	s.AddMetric(metrics.NewWallBounceRate())

	result, err := s.Run(cmd.Context(), sim.Config{
		Frames:      cfg.Frames,
		FPS:         cfg.FPS,
		RecordEvery: recordEvery,
	})
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunInfo{
		Preset:   cfg.Preset,
		Scenario: cfg.Scenario,
		Seed:     cfg.Seed,
		Params:   params,
	}, result)
	if err != nil {
		return err
	}
	logger.Info("run saved", zap.String("id", runID), zap.Int("frames", result.StepsTaken))

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("frames: %d\n", result.StepsTaken)
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s: %.4f\n", name, result.Metrics[name])
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tSCENARIO\tTIME\tFRAMES\tBALLS\tSEED")

	for _, run := range runs {
		sc := run.Scenario
		if sc == "" {
			sc = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Preset,
			sc,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			len(run.Radii),
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	table, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(table.Rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(table.Rows))

	for _, col := range []struct{ name, caption string }{
		{"energy", "kinetic energy"},
		{"collisions", "collisions per frame"},
		{"bounces", "wall bounces per frame"},
	} {
		data := table.Column(col.name)
		if len(data) == 0 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption(col.caption))
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	table, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("run %s: not enough samples", runID)
	}

	// recorded rows are evenly spaced frames
	idx := table.Column("frame")
	step := idx[1] - idx[0]
	if step <= 0 {
		step = 1
	}
	rate := float64(loop.DefaultFPS) / step
	if frameRate > 0 {
		rate = float64(frameRate) / step
	}

	fmt.Printf("run: %s (%s, %d balls)\n\n", meta.ID, meta.Preset, len(meta.Radii))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tMEAN\tSTD\tMIN\tMAX\tPEAK HZ")
	for _, name := range []string{"energy", "collisions", "bounces"} {
		data := table.Column(name)
		s := analysis.Summarize(data)
		freq, _ := analysis.DominantFrequency(data, rate)
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.3f\n", name, s.Mean, s.Std, s.Min, s.Max, freq)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(meta.Metrics) > 0 {
		fmt.Println("\nmetrics:")
		names := make([]string, 0, len(meta.Metrics))
		for name := range meta.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s: %.4f\n", name, meta.Metrics[name])
		}
	}
	return nil
}

// output returns stdout or the file named by --out.
func output() (io.WriteCloser, error) {
	if outPath == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(outPath)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if outPath != "" {
		if err := st.ExportJSONFile(outPath, args[0]); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", outPath)
		return nil
	}
	return st.ExportJSON(os.Stdout, args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if _, err := st.Load(args[0]); err != nil {
		return err
	}
	in, err := os.Open(st.StatesPath(args[0]))
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := output()
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	table, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(table.Rows) == 0 {
		return fmt.Errorf("run %s: no recorded frames", args[0])
	}

	i := frameIndex
	if i < 0 {
		i = len(table.Rows) - 1
	}
	if i >= len(table.Rows) {
		return fmt.Errorf("frame %d out of range (0-%d)", i, len(table.Rows)-1)
	}
	bodies, err := storage.Bodies(meta, table.Rows[i])
	if err != nil {
		return err
	}

	pal, err := field.ParsePalette(meta.Params.Palette)
	if err != nil {
		return err
	}
	t := viz.GetTheme(config.DefaultTheme)
	if cmd.Flags().Changed("theme") {
		t = viz.GetTheme(theme)
		pal = t.BallPalette()
	}

	out, err := output()
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.WriteString(out, export.FrameToSVG(bodies, pal, meta.Width, meta.Height, string(t.Background)))
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBALLS\tRADIUS\tMAX SPEED\tREPULSION\tBOUNCE\tRESTITUTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name).Physics
		fmt.Fprintf(w, "%s\t%d\t%g-%g\t%g\t%g@%g\t%g\t%g\n",
			name, p.Bodies, p.MinRadius, p.MaxRadius, p.MaxSpeed,
			p.RepulsionStrength, p.RepulsionRadius, p.Bounce, p.Restitution)
	}
	return w.Flush()
}
