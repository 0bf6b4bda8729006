package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/san-kum/entui/internal/config"
	"github.com/san-kum/entui/internal/entropy"
	"github.com/san-kum/entui/internal/logger"
	"github.com/san-kum/entui/internal/viz"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configFile string
	preset     string
	verbose    bool
	blockSize  int
	hexOffsets bool
	theme      string
	threshold  float64
	// export
	exportFormat string
	exportOut    string
)

var log = logger.New("entui", func() bool { return verbose })

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "entui FILE",
		Short: "interactive entropy profile of a file",
		Long: `entui splits a file into fixed-size blocks, computes the Shannon entropy
of each block and shows the profile as a scrollable, zoomable chart.

Flat regions near 8 bits/byte usually mean compressed or encrypted data.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runView,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "config file path")
	pf.StringVar(&preset, "preset", "", fmt.Sprintf("block size preset %v", config.ListPresets()))
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.IntVarP(&blockSize, "block-size", "b", config.DefaultBlockSize, "bytes per block")
	pf.BoolVar(&hexOffsets, "hex", false, "hexadecimal offsets")
	pf.Float64Var(&threshold, "threshold", config.DefaultHighThreshold, "high entropy threshold in bits/byte")

	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	plotCmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "print a static entropy plot with summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	exportCmd := &cobra.Command{
		Use:   "export FILE",
		Short: "write the entropy profile as csv, json, png or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "output format (csv, json, png, svg); defaults to the --out extension")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (stdout for csv and json when empty)")

	rootCmd.AddCommand(plotCmd, exportCmd, newVersionCommand())
	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "show version information",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := version, commit, date
			if v == "dev" || v == "" {
				v = "development"
			}
			if c == "none" || c == "" {
				c = "local-build"
			}
			if d == "unknown" || d == "" {
				d = "local-build"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "entui %s (%s) built on %s\n", v, c, d)
		},
	}
}

// resolveConfig layers defaults, config files, environment, preset and then
// explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(configFile)
	if err != nil {
		return nil, err
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg.BlockSize = p.BlockSize
		cfg.HighEntropyThreshold = p.HighEntropyThreshold
		log.Debug("applied preset", logger.F("preset", preset), logger.F("block_size", p.BlockSize))
	}

	flags := cmd.Flags()
	if flags.Changed("block-size") {
		cfg.BlockSize = blockSize
	}
	if flags.Changed("threshold") {
		cfg.HighEntropyThreshold = threshold
	}
	if flags.Changed("hex") {
		cfg.HexOffsets = hexOffsets
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// analyzeFile returns a nil dataset and nil error when path does not exist;
// the message has already been written to stderr.
func analyzeFile(ctx context.Context, stderr io.Writer, path string, cfg *config.Config) (*entropy.Dataset, error) {
	start := time.Now()
	ds, err := entropy.Analyze(ctx, path, cfg.BlockSize)
	if errors.Is(err, entropy.ErrFileNotFound) {
		fmt.Fprintf(stderr, "File does not exist: %s\n", path)
		return nil, nil
	}
	if err != nil {
		log.Debug("analysis failed", logger.F("path", path), logger.Error(err))
		return nil, err
	}
	log.Info("analyzed",
		logger.F("path", path),
		logger.F("block_size", cfg.BlockSize),
		logger.Count(len(ds.Samples)),
		logger.Duration(time.Since(start)),
	)
	return ds, nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	path := args[0]
	ds, err := analyzeFile(cmd.Context(), cmd.ErrOrStderr(), path, cfg)
	if err != nil || ds == nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		log.Debug("stdout is not a terminal, printing static plot")
		return printPlot(cmd.OutOrStdout(), path, ds, cfg)
	}

	return viz.Run(ds, viz.Options{
		Title:         filepath.Base(path),
		TickInterval:  cfg.TickInterval,
		HexOffsets:    cfg.HexOffsets,
		Theme:         cfg.Theme,
		HighThreshold: cfg.HighEntropyThreshold,
	})
}
