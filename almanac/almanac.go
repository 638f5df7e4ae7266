package almanac

import (
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/pipeline"
	"github.com/katalvlaran/rangemap/stage"
)

// Mode selects how the seed list is read.
type Mode string

const (
	// ModeRanges reads seeds as (start, length) pairs.
	ModeRanges Mode = "ranges"
	// ModeSeeds reads every seed as a single value.
	ModeSeeds Mode = "seeds"
)

// ParseMode validates s as a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeRanges, ModeSeeds:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Map is one "<from>-to-<to> map:" section.
type Map struct {
	From  string
	To    string
	Rules []stage.Rule
}

// Name returns "from-to", used as the stage name.
func (m Map) Name() string { return m.From + "-" + m.To }

// Almanac is a parsed puzzle input.
type Almanac struct {
	Seeds []uint64
	Maps  []Map
}

// Parse reads an almanac from r and validates it.
func Parse(r io.Reader) (*Almanac, error) {
	g, err := almanacParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return build(g)
}

// ParseString is Parse for in-memory input.
func ParseString(s string) (*Almanac, error) {
	g, err := almanacParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return build(g)
}

// build converts the grammar tree and validates the result.
func build(g *fileGrammar) (*Almanac, error) {
	a := &Almanac{
		Seeds: slices.Clone(g.Seeds),
		Maps:  make([]Map, 0, len(g.Maps)),
	}
	for _, b := range g.Maps {
		m := Map{From: b.From, To: b.To, Rules: make([]stage.Rule, 0, len(b.Lines))}
		for _, l := range b.Lines {
			m.Rules = append(m.Rules, stage.Rule{Source: l.Source, Destination: l.Destination, Length: l.Length})
		}
		a.Maps = append(a.Maps, m)
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks that there is at least one map and that maps chain.
func (a *Almanac) Validate() error {
	if len(a.Maps) == 0 {
		return ErrNoMaps
	}
	for i := 1; i < len(a.Maps); i++ {
		prev, cur := a.Maps[i-1], a.Maps[i]
		if prev.To != cur.From {
			return fmt.Errorf("%w: %s is followed by %s", ErrBrokenChain, prev.Name(), cur.Name())
		}
	}

	return nil
}

// SeedRanges reads seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]interval.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeeds, len(a.Seeds))
	}

	out := make([]interval.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		iv, err := interval.FromLength(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("seed pair %d: %w", i/2, err)
		}
		out = append(out, iv)
	}

	return out, nil
}

// SeedPoints reads every seed as a length-1 interval.
func (a *Almanac) SeedPoints() ([]interval.Interval, error) {
	out := make([]interval.Interval, 0, len(a.Seeds))
	for i, seed := range a.Seeds {
		iv, err := interval.FromLength(seed, 1)
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
		out = append(out, iv)
	}

	return out, nil
}

// Starts returns the starting intervals for mode.
func (a *Almanac) Starts(mode Mode) ([]interval.Interval, error) {
	switch mode {
	case ModeRanges:
		return a.SeedRanges()
	case ModeSeeds:
		return a.SeedPoints()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Pipeline builds one stage per map, in input order. opts are applied to
// every stage; each stage is additionally named after its map.
func (a *Almanac) Pipeline(opts ...stage.Option) (*pipeline.Pipeline, error) {
	stages := make([]*stage.Stage, 0, len(a.Maps))
	for _, m := range a.Maps {
		stOpts := append(slices.Clone(opts), stage.WithName(m.Name()))
		st, err := stage.New(m.Rules, stOpts...)
		if err != nil {
			return nil, fmt.Errorf("map %s: %w", m.Name(), err)
		}
		stages = append(stages, st)
	}

	return pipeline.New(stages...)
}
