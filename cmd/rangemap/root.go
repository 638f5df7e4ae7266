package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangemap/almanac"
	"github.com/katalvlaran/rangemap/config"
	"github.com/katalvlaran/rangemap/logging"
	"github.com/katalvlaran/rangemap/pipeline"
	"github.com/katalvlaran/rangemap/stage"
)

var version = "dev"

// flags holds raw command-line values; they only override the loaded
// config when explicitly set.
type flags struct {
	configPath string
	verbosity  int
	workers    int
	mode       string
	strict     bool
	format     string
}

// NewRootCmd builds the command tree. A fresh tree per call keeps tests
// independent of each other.
func NewRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "rangemap",
		Short: "Push seed ranges through almanac maps",
		Long: `rangemap reads an almanac (seeds plus a chain of source→destination maps)
and reports the lowest location reachable from the seeds, splitting whole
ranges instead of visiting every seed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (.yaml, .yml or .toml)")
	pf.CountVarP(&f.verbosity, "verbose", "v", "increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.IntVar(&f.workers, "workers", 1, "goroutines evaluating starting intervals")
	pf.StringVar(&f.mode, "mode", string(almanac.ModeRanges), "seed mode: ranges or seeds")
	pf.BoolVar(&f.strict, "strict", false, "reject maps whose rules overlap")

	root.AddCommand(newLowestCmd(f), newTraceCmd(f), newVersionCmd())

	return root
}

// settings resolves config file, environment and flags, in that order of
// increasing precedence, and sets up logging.
func (f *flags) settings(cmd *cobra.Command, args []string) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}

	set := cmd.Flags()
	if set.Changed("verbose") {
		cfg.Verbosity = f.verbosity
	}
	if set.Changed("workers") {
		cfg.Workers = f.workers
	}
	if set.Changed("mode") {
		cfg.Mode = f.mode
	}
	if set.Changed("strict") {
		cfg.Strict = f.strict
	}
	if set.Changed("format") {
		cfg.Format = f.format
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, zerolog.Nop(), err
	}

	logger := logging.Setup(cfg.Verbosity, cmd.ErrOrStderr())
	logger.Debug().Str("command", cmd.Name()).Interface("config", cfg).Msg("command started")

	return cfg, logger, nil
}

// loaded is everything a subcommand needs to evaluate.
type loaded struct {
	pipeline *pipeline.Pipeline
	almanac  *almanac.Almanac
	mode     almanac.Mode
}

// load reads and parses the input named by cfg, then builds the pipeline.
func load(cmd *cobra.Command, cfg config.Config, logger zerolog.Logger) (*loaded, error) {
	var r io.Reader
	if cfg.Input == "-" {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}

	a, err := almanac.Parse(r)
	if err != nil {
		return nil, err
	}

	var opts []stage.Option
	if cfg.Strict {
		opts = append(opts, stage.WithStrict())
	}
	p, err := a.Pipeline(opts...)
	if err != nil {
		return nil, err
	}

	mode, err := almanac.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("input", cfg.Input).
		Int("seeds", len(a.Seeds)).
		Int("stages", p.Len()).
		Str("mode", string(mode)).
		Msg("almanac loaded")

	return &loaded{pipeline: p, almanac: a, mode: mode}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rangemap version %s\n", version)
		},
	}
}
