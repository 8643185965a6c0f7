package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/san-kum/tensile/internal/config"
	"github.com/san-kum/tensile/internal/export"
	"github.com/san-kum/tensile/internal/ingest"
	"github.com/san-kum/tensile/internal/server"
	"github.com/san-kum/tensile/internal/tensile"
	"github.com/san-kum/tensile/internal/viz"
	"github.com/san-kum/tensile/internal/watch"
	"github.com/spf13/cobra"
)

// loadConfig layers defaults, the config file, TENSILE_* variables, the
// preset and finally explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadEnv(".env"); err != nil {
		return nil, err
	}

	path := configFile
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}

	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if preset != "" {
		sp, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Specimen = sp
	}

	flags := cmd.Flags()
	if flags.Changed("area") {
		cfg.Specimen.Area = area
	}
	if flags.Changed("length") {
		cfg.Specimen.GaugeLength = length
	}
	if flags.Changed("disp-factor") {
		cfg.Units.DisplacementPerLength = dispFactor
	}
	if flags.Changed("stress-scale") {
		cfg.Units.StressScale = stressScale
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Server.Addr = addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func watchOptions(cfg *config.Config) watch.Options {
	return watch.Options{
		Specimen: cfg.Specimen,
		Units:    cfg.Units,
		Resolver: ingest.Resolver{
			DisplacementKeys: cfg.Columns.Displacement,
			LoadKeys:         cfg.Columns.Load,
		},
	}
}

func load(cmd *cobra.Command, path string) (*config.Config, *ingest.Dataset, *tensile.Result, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	ds, res, err := watch.Analyze(path, watchOptions(cfg))
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, ds, res, nil
}

func describeDataset(ds *ingest.Dataset) {
	fmt.Printf("columns: displacement=%q load=%q  samples: %d\n",
		ds.Columns.DispName, ds.Columns.LoadName, ds.Series.Len())
	if ds.Series.DroppedDisplacement > 0 || ds.Series.DroppedLoad > 0 {
		fmt.Printf("dropped non-numeric cells: displacement=%d load=%d\n",
			ds.Series.DroppedDisplacement, ds.Series.DroppedLoad)
	}
}

func analyzeFile(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, ds, res, err := load(cmd, path)
	if err != nil {
		return err
	}

	describeDataset(ds)
	fmt.Println(viz.Summary(filepath.Base(path), res, cfg.Specimen, viz.GetTheme(theme)))

	if jsonOut != "" {
		if err := export.SaveJSON(jsonOut, export.NewDocument(res, cfg.Specimen, &ds.Columns)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonOut)
	}
	if csvOut != "" {
		if err := export.SaveCSV(csvOut, res); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvOut)
	}
	if svgOut != "" {
		if err := export.SaveSVG(svgOut, res, 800, 500); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	if pdfOut != "" {
		meta := export.ReportMeta{Title: title, Source: filepath.Base(path), Specimen: cfg.Specimen}
		if err := export.SavePDF(pdfOut, res, meta); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pdfOut)
	}
	return nil
}

func plotFile(cmd *cobra.Command, args []string) error {
	_, _, res, err := load(cmd, args[0])
	if err != nil {
		return err
	}

	opts := viz.DefaultCurveOptions()
	opts.Width = 70
	opts.Height = 18
	opts.Theme = viz.GetTheme(theme)
	fmt.Println(viz.PlotCurve(res, opts))
	fmt.Println()

	fmt.Println(viz.PlotSeries(res.Stress, "stress (MPa) by sample", 80, 10))
	fmt.Println()
	fmt.Println(viz.PlotSeries(res.TangentModulus, "tangent modulus by sample", 80, 10))
	fmt.Println()
	return nil
}

func viewFile(cmd *cobra.Command, args []string) error {
	cfg, _, res, err := load(cmd, args[0])
	if err != nil {
		return err
	}
	return viz.RunViewer(filepath.Base(args[0]), res, cfg.Specimen)
}

func newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", logLevel)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, log).Run(ctx)
}

func watchFile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := args[0]
	th := viz.GetTheme(theme)
	opts := watchOptions(cfg)
	opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	fmt.Printf("watching %s (ctrl+c to stop)\n", path)
	return watch.Watch(ctx, path, opts, func(ds *ingest.Dataset, res *tensile.Result, err error) {
		stamp := time.Now().Format("15:04:05")
		if err != nil {
			fmt.Printf("[%s] %v\n", stamp, err)
			return
		}
		fmt.Printf("[%s] ", stamp)
		describeDataset(ds)
		fmt.Println(viz.Summary(filepath.Base(path), res, cfg.Specimen, th))
	})
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tAREA (m²)\tGAUGE LENGTH (m)")
	for _, name := range config.ListPresets() {
		sp, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.4e\t%.4f\n", name, sp.Area, sp.GaugeLength)
	}
	return w.Flush()
}
