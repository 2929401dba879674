// Package learner tracks the statistics the strategy selector adapts to:
// which numbers the learner struggles with and which strategies and
// learning styles have worked.
package learner

import (
	"maps"
	"slices"

	"github.com/abhisek/timestable/internal/strategy"
)

// Default thresholds for struggle detection.
const (
	DefaultStruggleThreshold = 3
	DefaultRecoveryStreak    = 3
)

// Config controls when a number is flagged as struggling and when the
// flag is cleared.
type Config struct {
	// StruggleThreshold is the number of counted misses that flags a number.
	StruggleThreshold int
	// RecoveryStreak is the run of correct answers that clears the flag.
	RecoveryStreak int
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		StruggleThreshold: DefaultStruggleThreshold,
		RecoveryStreak:    DefaultRecoveryStreak,
	}
}

func (c Config) withDefaults() Config {
	if c.StruggleThreshold <= 0 {
		c.StruggleThreshold = DefaultStruggleThreshold
	}
	if c.RecoveryStreak <= 0 {
		c.RecoveryStreak = DefaultRecoveryStreak
	}
	return c
}

// NumberRecord is the answer history for facts involving one number.
type NumberRecord struct {
	Attempts int
	Correct  int
	// Misses counts wrong answers towards the struggle threshold. It
	// resets when the number recovers.
	Misses int
	// Streak is the current run of correct answers.
	Streak int
}

// Accuracy returns Correct / Attempts, or 0 with no attempts.
func (r NumberRecord) Accuracy() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempts)
}

// Stats is the learner's current statistics.
type Stats struct {
	Struggling      map[int]bool
	StrategySuccess map[strategy.Name]int
	StyleSuccess    map[strategy.Category]int
	Numbers         map[int]*NumberRecord
}

func newStats() *Stats {
	return &Stats{
		Struggling:      make(map[int]bool),
		StrategySuccess: make(map[strategy.Name]int),
		StyleSuccess:    make(map[strategy.Category]int),
		Numbers:         make(map[int]*NumberRecord),
	}
}

// StrugglingNumbers returns the flagged numbers in ascending order.
func (s *Stats) StrugglingNumbers() []int {
	var out []int
	for n, flagged := range s.Struggling {
		if flagged {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out
}

// clone returns a deep copy.
func (s *Stats) clone() *Stats {
	c := &Stats{
		Struggling:      maps.Clone(s.Struggling),
		StrategySuccess: maps.Clone(s.StrategySuccess),
		StyleSuccess:    maps.Clone(s.StyleSuccess),
		Numbers:         make(map[int]*NumberRecord, len(s.Numbers)),
	}
	for n, r := range s.Numbers {
		rec := *r
		c.Numbers[n] = &rec
	}
	return c
}
