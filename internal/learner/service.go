package learner

import (
	"github.com/abhisek/timestable/internal/diagnosis"
	"github.com/abhisek/timestable/internal/strategy"
)

// Answer is one graded answer to the fact A × B.
type Answer struct {
	A, B    int
	Correct bool
	// Strategy is the last strategy shown for the fact, if any.
	Strategy strategy.Name
	// Diagnosis classifies a wrong answer. Ignored when Correct.
	Diagnosis diagnosis.ErrorCategory
}

// Transition reports a change of a number's struggling flag.
type Transition struct {
	Number     int
	Struggling bool
}

// Service owns the learner statistics. It is not safe for concurrent use.
type Service struct {
	cfg   Config
	stats *Stats
}

// NewService creates a learner service, loading state from the snapshot.
// A nil snapshot starts from empty statistics.
func NewService(snap *Snapshot, cfg Config) *Service {
	s := &Service{cfg: cfg.withDefaults(), stats: newStats()}
	if snap != nil {
		s.load(snap)
	}
	return s
}

// Stats returns a copy of the current statistics.
func (s *Service) Stats() *Stats {
	return s.stats.clone()
}

// Record returns the record for n. The zero record is returned for a
// number never seen.
func (s *Service) Record(n int) NumberRecord {
	if r, ok := s.stats.Numbers[n]; ok {
		return *r
	}
	return NumberRecord{}
}

// FactAccuracy returns the lower accuracy of the two numbers in a × b.
func (s *Service) FactAccuracy(a, b int) float64 {
	return min(s.Record(a).Accuracy(), s.Record(b).Accuracy())
}

// SelectorInput builds the selector input for a hint request on a × b.
// The maps are copies; the selector never sees later updates.
func (s *Service) SelectorInput(a, b, attempts int, discovery bool) strategy.Input {
	st := s.stats.clone()
	return strategy.Input{
		A:               a,
		B:               b,
		Attempts:        attempts,
		StrugglingWith:  st.Struggling,
		StrategySuccess: st.StrategySuccess,
		StyleSuccess:    st.StyleSuccess,
		DiscoveryMode:   discovery,
	}
}

// RecordAnswer updates the statistics after an answer and returns any
// struggling-flag changes, ordered by number.
func (s *Service) RecordAnswer(ans Answer) []Transition {
	if ans.Correct && ans.Strategy != "" {
		s.stats.StrategySuccess[ans.Strategy]++
		s.stats.StyleSuccess[strategy.Classify(ans.Strategy)]++
	}

	counted := !ans.Correct && ans.Diagnosis.CountsAsMiss()

	var transitions []Transition
	for _, n := range operands(ans.A, ans.B) {
		rec := s.record(n)
		rec.Attempts++
		if ans.Correct {
			rec.Correct++
			rec.Streak++
		} else {
			rec.Streak = 0
			if counted {
				rec.Misses++
			}
		}

		switch {
		case !s.stats.Struggling[n] && rec.Misses >= s.cfg.StruggleThreshold:
			s.stats.Struggling[n] = true
			transitions = append(transitions, Transition{Number: n, Struggling: true})
		case s.stats.Struggling[n] && rec.Streak >= s.cfg.RecoveryStreak:
			delete(s.stats.Struggling, n)
			rec.Misses = 0
			transitions = append(transitions, Transition{Number: n, Struggling: false})
		}
	}
	return transitions
}

func (s *Service) record(n int) *NumberRecord {
	r, ok := s.stats.Numbers[n]
	if !ok {
		r = &NumberRecord{}
		s.stats.Numbers[n] = r
	}
	return r
}

// operands returns the distinct numbers of a × b in ascending order.
func operands(a, b int) []int {
	if a == b {
		return []int{a}
	}
	if a > b {
		a, b = b, a
	}
	return []int{a, b}
}
