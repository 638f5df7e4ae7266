package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangemap/logging"
	"github.com/katalvlaran/rangemap/pipeline"
)

func newLowestCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "lowest [input]",
		Short: "Print the lowest location reachable from the seeds",
		Long: `lowest evaluates every starting interval through all maps and prints the
smallest resulting location. Input "-" (the default) reads standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := f.settings(cmd, args)
			if err != nil {
				return err
			}
			l, err := load(cmd, cfg, logger)
			if err != nil {
				return err
			}

			starts, err := l.almanac.Starts(l.mode)
			if err != nil {
				return err
			}

			defer logging.Duration(logger, time.Now(), "evaluate")
			lowest, err := l.pipeline.Evaluate(starts,
				pipeline.WithContext(cmd.Context()),
				pipeline.WithWorkers(cfg.Workers),
				pipeline.WithLogger(logging.Component(logger, "pipeline")),
			)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), lowest)
			return err
		},
	}
}
