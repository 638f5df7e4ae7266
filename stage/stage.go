package stage

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// Stage is an immutable set of rules sorted ascending by Source.
// The zero value is a valid stage without rules: it maps everything to itself.
type Stage struct {
	name  string
	rules []Rule
}

// New builds a Stage from rules given in any order.
//
// Steps:
//  1. Validate every rule against uint64 overflow (ErrOverflow).
//  2. Drop zero-length rules; they cover nothing.
//  3. Stable-sort by Source.
//  4. If WithStrict() was given, reject overlaps (ErrOverlappingRules).
//
// The input slice is copied, never retained.
func New(rules []Rule, opts ...Option) (*Stage, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sorted := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if err := r.validate(); err != nil {
			return nil, err
		}
		if r.Length == 0 {
			continue
		}
		sorted = append(sorted, r)
	}

	slices.SortStableFunc(sorted, func(a, b Rule) int {
		return cmp.Compare(a.Source, b.Source)
	})

	if cfg.Strict {
		for i := 1; i < len(sorted); i++ {
			prev, cur := sorted[i-1], sorted[i]
			if cur.Source < prev.Source+prev.Length {
				return nil, fmt.Errorf("%w: %s and %s", ErrOverlappingRules, prev, cur)
			}
		}
	}

	return &Stage{name: cfg.Name, rules: sorted}, nil
}

// Name returns the label given with WithName.
func (s *Stage) Name() string { return s.name }

// Len returns the number of non-empty rules.
func (s *Stage) Len() int { return len(s.rules) }

// Rules returns a copy of the sorted, non-empty rules.
func (s *Stage) Rules() []Rule { return slices.Clone(s.rules) }

// Lookup maps a single value through the stage.
//
// It binary-searches for the last rule starting at or before v; with
// disjoint rules that is the only candidate. Map is the path for whole
// ranges; Lookup serves single seeds and cross-checks.
func (s *Stage) Lookup(v uint64) uint64 {
	i := sort.Search(len(s.rules), func(i int) bool { return s.rules[i].Source > v }) - 1
	if i < 0 {
		return v
	}

	r := s.rules[i]
	if v-r.Source < r.Length {
		return r.Destination + (v - r.Source)
	}

	return v
}
