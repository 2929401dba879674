// Package session runs a drill: it draws facts, serves hints from the
// strategy selector, grades answers and keeps the learner statistics
// current.
package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/timestable/internal/learner"
	"github.com/abhisek/timestable/internal/problemgen"
	"github.com/abhisek/timestable/internal/store"
	"github.com/abhisek/timestable/internal/strategy"
)

// DefaultRounds is the number of facts in a drill when Config leaves it unset.
const DefaultRounds = 10

// Config controls a drill.
type Config struct {
	// Rounds is the number of facts to ask.
	Rounds int

	// Discovery lets the learner explore strategies without the forced
	// visual array for struggling numbers.
	Discovery bool
}

// Deps are the collaborators of a session. Events and Logger may be nil.
type Deps struct {
	Selector  *strategy.Selector
	Learner   *learner.Service
	Generator *problemgen.Generator
	Events    store.EventRepo
	Logger    *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// StrategyResult tracks how one strategy fared in the session.
type StrategyResult struct {
	Strategy strategy.Name
	Category strategy.Category
	// Hints counts how often the strategy was shown.
	Hints int
	// Successes counts correct answers after it was the last hint shown.
	Successes int
}

// current is the fact being asked.
type current struct {
	fact     problemgen.Fact
	attempts int
	last     strategy.Name
	shownAt  time.Time
}
