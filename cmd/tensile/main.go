package main

import (
	"fmt"
	"os"

	"github.com/san-kum/tensile/internal/config"
	"github.com/san-kum/tensile/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	area        float64
	length      float64
	dispFactor  float64
	stressScale float64
	theme       string
	// analyze outputs
	jsonOut string
	csvOut  string
	svgOut  string
	pdfOut  string
	title   string
	// serve
	addr     string
	logLevel string
	force    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "tensile",
		Short:         "tensile test analysis: stress-strain, modulus, yield and fracture",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml); defaults to $"+config.EnvConfig)
	pf.StringVar(&preset, "preset", "", "specimen preset (see 'tensile presets')")
	pf.Float64Var(&area, "area", config.DefaultArea, "cross-sectional area (m²)")
	pf.Float64Var(&length, "length", config.DefaultGaugeLength, "gauge length (m)")
	pf.Float64Var(&dispFactor, "disp-factor", 1000, "displacement units per gauge-length unit")
	pf.Float64Var(&stressScale, "stress-scale", 1e-6, "factor applied to load/area (1e-6 gives MPa)")
	pf.StringVar(&theme, "theme", "ocean", fmt.Sprintf("terminal theme %v", viz.ThemeNames()))

	analyzeCmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "analyze a CSV/XLSX test file and print the key results",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeFile,
	}
	analyzeCmd.Flags().StringVar(&jsonOut, "json", "", "write the full result as JSON")
	analyzeCmd.Flags().StringVar(&csvOut, "csv", "", "write per-sample series as CSV")
	analyzeCmd.Flags().StringVar(&svgOut, "svg", "", "write the stress-strain curve as SVG")
	analyzeCmd.Flags().StringVar(&pdfOut, "pdf", "", "write a PDF test report")
	analyzeCmd.Flags().StringVar(&title, "title", "", "report title")

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "plot stress-strain and tangent modulus in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotFile,
	}

	viewCmd := &cobra.Command{
		Use:   "view [file]",
		Short: "interactive stress-strain viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  viewFile,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the HTTP analysis API",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	watchCmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "re-analyze a file every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE:  watchFile,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list specimen presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(analyzeCmd, plotCmd, viewCmd, serveCmd, watchCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
