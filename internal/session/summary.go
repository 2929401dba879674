package session

import (
	"sort"
	"time"

	"github.com/abhisek/timestable/internal/learner"
)

// Summary reports a finished or interrupted drill.
type Summary struct {
	SessionID  string
	Duration   time.Duration
	Questions  int
	Correct    int
	Accuracy   float64
	HintsUsed  int
	Strategies []StrategyResult
	// Struggling is the learner's struggling set at the end of the drill.
	Struggling  []int
	Transitions []learner.Transition
}

// Summary builds the report. Strategies are ordered by hints shown, most
// first, then by name.
func (s *Session) Summary() *Summary {
	results := make([]StrategyResult, 0, len(s.results))
	for _, r := range s.results {
		results = append(results, *r)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Hints != results[j].Hints {
			return results[i].Hints > results[j].Hints
		}
		return results[i].Strategy < results[j].Strategy
	})

	var accuracy float64
	if s.questions > 0 {
		accuracy = float64(s.correct) / float64(s.questions)
	}

	return &Summary{
		SessionID:   s.id,
		Duration:    s.deps.Now().Sub(s.started),
		Questions:   s.questions,
		Correct:     s.correct,
		Accuracy:    accuracy,
		HintsUsed:   s.hints,
		Strategies:  results,
		Struggling:  s.deps.Learner.Stats().StrugglingNumbers(),
		Transitions: s.transitions,
	}
}
