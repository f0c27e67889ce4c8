package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/ballfield/internal/config"
)

var (
	dataDir     string
	configFile  string
	preset      string
	seed        int64
	frames      int
	frameRate   int
	width       float64
	height      float64
	scenario    string
	theme       string
	verbose     bool
	logFile     string
	recordEvery int
	outPath     string
	frameIndex  int

	logger = zap.NewNop()
)

// main registers the commands and runs the terminal host when no
// subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:               "ballfield",
		Short:             "interactive bouncing ball field",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".ballfield", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", config.DefaultPreset, "preset configuration")
	pf.Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	pf.IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
	pf.IntVar(&frameRate, "fps", 0, "frame rate (0: unpaced for run, 60 for hosts)")
	pf.Float64Var(&width, "width", config.DefaultWidth, "viewport width")
	pf.Float64Var(&height, "height", config.DefaultHeight, "viewport height")
	pf.StringVar(&scenario, "scenario", "", "pointer scenario: built-in name or yaml file")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&logFile, "log", "", "log file for the terminal host")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the field in the terminal",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the field in a window",
		RunE:  runGUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and save it",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&recordEvery, "record-every", 1, "record one frame in n")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot energy and collisions of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "statistics and frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render one recorded frame as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	exportSVGCmd.Flags().IntVar(&frameIndex, "frame", -1, "recorded frame index (default: last)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, listCmd, plotCmd, analyzeCmd,
		exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// setupLogger builds the production logger. The terminal hosts own stdout
// and stderr, so they only log when --log names a file.
func setupLogger(cmd *cobra.Command, args []string) error {
	interactive := cmd.Name() == "ballfield" || cmd.Name() == "tui"
	if interactive && logFile == "" {
		logger = zap.NewNop()
		return nil
	}

	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
		cfg.ErrorOutputPaths = []string{logFile}
	}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger = l
	return nil
}

// loadConfig resolves the effective configuration: preset first, then the
// config file, then flags set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("scenario") {
		cfg.Scenario = scenario
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("config resolved",
		zap.String("preset", cfg.Preset),
		zap.Int64("seed", cfg.Seed),
		zap.Int("bodies", cfg.Physics.Bodies))
	return cfg, nil
}
