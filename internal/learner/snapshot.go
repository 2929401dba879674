package learner

import (
	"sort"

	"github.com/abhisek/timestable/internal/store"
	"github.com/abhisek/timestable/internal/strategy"
)

// Snapshot is the persisted form of the statistics.
type Snapshot = store.LearnerSnapshotData

// Snapshot captures the current statistics for persistence.
func (s *Service) Snapshot() *Snapshot {
	snap := &Snapshot{
		Struggling:      s.stats.StrugglingNumbers(),
		StrategySuccess: make(map[string]int, len(s.stats.StrategySuccess)),
		StyleSuccess:    make(map[string]int, len(s.stats.StyleSuccess)),
		Numbers:         make(map[int]store.NumberSnapshot, len(s.stats.Numbers)),
	}
	if snap.Struggling == nil {
		snap.Struggling = []int{}
	}
	for name, n := range s.stats.StrategySuccess {
		snap.StrategySuccess[string(name)] = n
	}
	for cat, n := range s.stats.StyleSuccess {
		snap.StyleSuccess[string(cat)] = n
	}
	for n, r := range s.stats.Numbers {
		snap.Numbers[n] = store.NumberSnapshot{
			Attempts: r.Attempts,
			Correct:  r.Correct,
			Misses:   r.Misses,
			Streak:   r.Streak,
		}
	}
	return snap
}

// load restores statistics from snap. Strategy names the engine no longer
// knows are dropped.
func (s *Service) load(snap *Snapshot) {
	for _, n := range snap.Struggling {
		s.stats.Struggling[n] = true
	}
	for name, n := range snap.StrategySuccess {
		if strategy.IsKnown(strategy.Name(name)) {
			s.stats.StrategySuccess[strategy.Name(name)] = n
		}
	}
	known := make(map[strategy.Category]bool)
	for _, c := range strategy.Categories() {
		known[c] = true
	}
	for cat, n := range snap.StyleSuccess {
		if known[strategy.Category(cat)] {
			s.stats.StyleSuccess[strategy.Category(cat)] = n
		}
	}
	for n, r := range snap.Numbers {
		s.stats.Numbers[n] = &NumberRecord{
			Attempts: r.Attempts,
			Correct:  r.Correct,
			Misses:   r.Misses,
			Streak:   r.Streak,
		}
	}
}

// Summary is one row of the per-number statistics report.
type Summary struct {
	Number     int
	Record     NumberRecord
	Struggling bool
}

// Summaries returns one row per number seen, in ascending order.
func (s *Service) Summaries() []Summary {
	out := make([]Summary, 0, len(s.stats.Numbers))
	for n, r := range s.stats.Numbers {
		out = append(out, Summary{Number: n, Record: *r, Struggling: s.stats.Struggling[n]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
