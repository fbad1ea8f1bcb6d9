package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	cfgpkg "github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/config"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/logging"
)

var (
	// Global flags
	cfgFile   string
	debug     bool
	logFormat string

	// Loaded configuration
	cfg *cfgpkg.Global
	// Process logger, stderr
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "censuseda",
	Short: "censuseda: exploratory analysis of census area tables",
	Long: `censuseda loads a census workbook (villages, towns, households, population and
area per administrative unit), cleans it into a fixed 15-column table, prints
descriptive statistics and renders six charts into a run directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.censuseda/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text|json (overrides config)")
}

func loadConfig() {
	cfg = nil
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: config show/set can still run
		warnf(os.Stderr, "failed to load config: %v", err)
	} else {
		cfg = c
	}

	opt := logging.Options{Level: "info", Format: "text"}
	if cfg != nil {
		opt.Level, opt.Format = cfg.LogLevel, cfg.LogFormat
	}
	if debug {
		opt.Level = "debug"
	}
	if rootCmd.PersistentFlags().Changed("log-format") {
		opt.Format = logFormat
	}
	l, err := logging.New(os.Stderr, opt)
	if err != nil {
		warnf(os.Stderr, "%v; using text logs", err)
		l, _ = logging.New(os.Stderr, logging.Options{Level: "info"})
	}
	logger = l
}

// settings returns the loaded configuration or the load error.
func settings() (*cfgpkg.Global, error) {
	if cfg != nil {
		return cfg, nil
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg = c
	return cfg, nil
}
