package main

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rangemap/config"
	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/pipeline"
)

// traceStep is the normalized output of one stage.
type traceStep struct {
	Stage     string   `yaml:"stage"`
	Intervals []string `yaml:"intervals"`
}

// traceDoc follows one starting interval through the pipeline.
type traceDoc struct {
	Start  string      `yaml:"start"`
	Values string      `yaml:"values"`
	Steps  []traceStep `yaml:"steps"`
	Lowest *uint64     `yaml:"lowest,omitempty"`
}

func newTraceCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [input]",
		Short: "Show the intervals produced by every map",
		Long: `trace follows each starting interval through the maps and prints, per map,
the union of the fragments it produced, merged and sorted.`,
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

			docs := buildTrace(l.pipeline, starts)
			if cfg.Format == config.FormatYAML {
				return writeTraceYAML(cmd.OutOrStdout(), docs)
			}

			return writeTraceText(cmd.OutOrStdout(), docs)
		},
	}
	cmd.Flags().StringVar(&f.format, "format", config.FormatText, "output format: text or yaml")

	return cmd
}

// buildTrace runs Trace for every starting interval.
func buildTrace(p *pipeline.Pipeline, starts []interval.Interval) []traceDoc {
	stages := p.Stages()
	docs := make([]traceDoc, 0, len(starts))
	for _, iv := range starts {
		doc := traceDoc{
			Start:  iv.String(),
			Values: humanize.BigComma(new(big.Int).SetUint64(iv.Len())),
		}

		steps := p.Trace(iv)
		for i, fragments := range steps {
			step := traceStep{Stage: stages[i].Name()}
			for _, n := range interval.Normalize(fragments) {
				step.Intervals = append(step.Intervals, n.String())
			}
			doc.Steps = append(doc.Steps, step)
		}

		final := []interval.Interval{iv}
		if len(steps) > 0 {
			final = steps[len(steps)-1]
		}
		if lowest, ok := interval.Min(final); ok {
			doc.Lowest = &lowest
		}
		docs = append(docs, doc)
	}

	return docs
}

func writeTraceYAML(w io.Writer, docs []traceDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return err
	}

	return enc.Close()
}

func writeTraceText(w io.Writer, docs []traceDoc) error {
	var b strings.Builder
	for _, doc := range docs {
		fmt.Fprintf(&b, "start %s (%s values)\n", doc.Start, doc.Values)
		for _, step := range doc.Steps {
			fmt.Fprintf(&b, "  %-24s %s\n", step.Stage, strings.Join(step.Intervals, " "))
		}
		if doc.Lowest != nil {
			fmt.Fprintf(&b, "  lowest %d\n", *doc.Lowest)
		} else {
			b.WriteString("  lowest -\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
