// Package strategy picks and renders a teaching strategy for a
// multiplication fact, biased by the learner's history.
package strategy

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidArgument is returned for non-positive operands or a negative
// attempt count. It indicates a caller bug and should not be retried.
var ErrInvalidArgument = errors.New("invalid argument")

// Input is everything the selector needs for one hint request.
type Input struct {
	A, B int

	// Attempts counts previous hint requests for the same fact.
	Attempts int

	StrugglingWith  map[int]bool
	StrategySuccess map[Name]int
	StyleSuccess    map[Category]int

	// DiscoveryMode suppresses the forced visual array.
	DiscoveryMode bool
}

func (in Input) validate() error {
	if in.A < 1 || in.B < 1 {
		return fmt.Errorf("%w: operands must be positive, got %d and %d", ErrInvalidArgument, in.A, in.B)
	}
	if in.Attempts < 0 {
		return fmt.Errorf("%w: attempts must be non-negative, got %d", ErrInvalidArgument, in.Attempts)
	}
	return nil
}

// Candidate is a strategy that applies to a fact.
type Candidate struct {
	Name     Name     `json:"name"`
	Rank     int      `json:"rank"`
	Category Category `json:"category"`
}

func candidateOf(r rule) Candidate {
	return Candidate{Name: r.name, Rank: r.rank, Category: Classify(r.name)}
}

// Selector chooses explanations. It holds no mutable state and is safe for
// concurrent use.
type Selector struct {
	formatter Formatter
}

// New creates a Selector that renders through f. A nil f renders the
// built-in English templates.
func New(f Formatter) *Selector {
	return &Selector{formatter: f}
}

// Select returns the explanation for the hint request described by in.
func (s *Selector) Select(in Input) (*Explanation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	f := newFact(in.A, in.B)
	pool := s.rotation(in, f)
	r := pool[in.Attempts%len(pool)]
	return r.explain(newWriter(s.formatter, f), f), nil
}

// Rotation returns the strategies Select cycles through for in, in the
// order successive attempts visit them.
func (s *Selector) Rotation(in Input) ([]Candidate, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	pool := s.rotation(in, newFact(in.A, in.B))
	out := make([]Candidate, len(pool))
	for i, r := range pool {
		out[i] = candidateOf(r)
	}
	return out, nil
}

// Candidates returns every table strategy that applies to a × b, in
// declaration order. Neither the override nor the fallbacks are included.
func (s *Selector) Candidates(a, b int) []Candidate {
	matched := s.match(newFact(a, b))
	out := make([]Candidate, len(matched))
	for i, r := range matched {
		out[i] = candidateOf(r)
	}
	return out
}

// Ranked returns the candidates for in sorted by strategy success
// (descending) and then rank, ignoring learning-style preference.
func (s *Selector) Ranked(in Input) []Candidate {
	ranked := rankBySuccess(s.match(newFact(in.A, in.B)), in.StrategySuccess)
	out := make([]Candidate, len(ranked))
	for i, r := range ranked {
		out[i] = candidateOf(r)
	}
	return out
}

// DisplayName returns the localized name of a strategy.
func (s *Selector) DisplayName(name Name) string {
	return newWriter(s.formatter, fact{}).displayName(name)
}

func (s *Selector) rotation(in Input, f fact) []rule {
	if forceVisual(in) {
		return []rule{visualArrayRule}
	}
	matched := s.match(f)
	if len(matched) == 0 {
		return []rule{fallbackRule(f)}
	}
	if style, ok := preferredStyle(in.StyleSuccess); ok {
		var filtered []rule
		for _, r := range matched {
			if Classify(r.name) == style {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	return rankBySuccess(matched, in.StrategySuccess)
}

func (s *Selector) match(f fact) []rule {
	var out []rule
	for _, r := range rules {
		if r.applies(s, f) {
			out = append(out, r)
		}
	}
	return out
}

// forceVisual reports whether the visual array override fires. Struggle
// membership is checked on the operands as presented.
func forceVisual(in Input) bool {
	if in.DiscoveryMode {
		return false
	}
	return in.StrugglingWith[in.A] || in.StrugglingWith[in.B] || in.Attempts > ForceVisualAfter
}

func rankBySuccess(matched []rule, success map[Name]int) []rule {
	out := make([]rule, len(matched))
	copy(out, matched)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := success[out[i].name], success[out[j].name]
		if si != sj {
			return si > sj
		}
		return out[i].rank < out[j].rank
	})
	return out
}
