package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vdobler/quickplot"
	"github.com/vdobler/quickplot/config"
	"github.com/vdobler/quickplot/htmlchart"
)

// app carries the state shared by all plot commands.
type app struct {
	configPath string
	output     string
	format     string
	describe   bool
	verbose    bool

	cfg      *config.Config
	logger   *slog.Logger
	recorder *quickplot.Recorder
	plotter  *quickplot.Plotter
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "quickplot",
		Short: "Quick exploratory plots of CSV data",
		Long: `quickplot draws the usual first plots of a data set.

Commands:
  count     bar chart of category counts with percentages
  hist      histogram with mean and median lines
  scatter   scatter plot of two columns, optionally colored by a third
  bar       bar chart of the mean of a column per category`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.recorder != nil {
				return a.recorder.WriteYAML(cmd.OutOrStdout())
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default quickplot.yaml in . or ./config)")
	flags.StringVarP(&a.output, "output", "o", "", "output directory")
	flags.StringVarP(&a.format, "format", "f", "", "output format: html or one of png, svg, pdf, eps, jpg, tif")
	flags.BoolVar(&a.describe, "describe", false, "print figure descriptions as YAML instead of drawing")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		countCmd(a),
		histCmd(a),
		scatterCmd(a),
		barCmd(a),
		versionCmd(),
	)

	return rootCmd
}

// setup loads the configuration, applies the command line overrides and
// builds the plotter.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Dir = a.output
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = a.format
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	a.cfg = cfg

	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Logging)

	var device quickplot.Device
	switch {
	case a.describe:
		a.recorder = &quickplot.Recorder{}
		device = a.recorder
	case cfg.Output.Format == config.HTMLFormat:
		device = &htmlchart.Device{Dir: cfg.Output.Dir, Logger: a.logger}
	default:
		device = &quickplot.ImageDevice{Dir: cfg.Output.Dir, Format: cfg.Output.Format, Logger: a.logger}
	}

	a.plotter = &quickplot.Plotter{
		Device: device,
		Theme:  cfg.PlotTheme(),
		Logger: a.logger,
	}
	return nil
}

func newLogger(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// load reads the CSV file at path.
func (a *app) load(path string) (*quickplot.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data: %w", err)
	}
	defer f.Close()

	df, err := quickplot.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	df.Name = path
	a.logger.Debug("data loaded", "path", path, "rows", humanize.Comma(int64(df.N)),
		"columns", len(df.FieldNames()))
	return df, nil
}

// done reports a drawn chart unless figures are only described.
func (a *app) done(cmd *cobra.Command, what string) {
	if a.describe {
		return
	}
	color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "%s drawn to %s (%s)\n",
		what, a.cfg.Output.Dir, a.cfg.Output.Format)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// No configuration needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quickplot %s\n", Version)
		},
	}
}
