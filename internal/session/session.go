package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/timestable/internal/diagnosis"
	"github.com/abhisek/timestable/internal/learner"
	"github.com/abhisek/timestable/internal/problemgen"
	"github.com/abhisek/timestable/internal/store"
	"github.com/abhisek/timestable/internal/strategy"
)

var (
	// ErrNoFact is returned by Hint and Answer before Next is called or
	// after the current fact was answered.
	ErrNoFact = errors.New("no fact is being asked")

	// ErrFinished is returned by Next once every round has been asked.
	ErrFinished = errors.New("drill finished")
)

// Session is one drill. It is not safe for concurrent use.
type Session struct {
	id   string
	cfg  Config
	deps Deps

	cur     *current
	started time.Time
	rounds  int

	questions   int
	correct     int
	hints       int
	results     map[strategy.Name]*StrategyResult
	transitions []learner.Transition
}

// New creates a session with a fresh ID.
func New(deps Deps, cfg Config) (*Session, error) {
	if deps.Selector == nil || deps.Learner == nil || deps.Generator == nil {
		return nil, fmt.Errorf("session: selector, learner and generator are required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if cfg.Rounds <= 0 {
		cfg.Rounds = DefaultRounds
	}

	s := &Session{
		id:      uuid.NewString(),
		cfg:     cfg,
		deps:    deps,
		started: deps.Now(),
		results: make(map[strategy.Name]*StrategyResult),
	}
	s.deps.Logger = deps.Logger.With(zap.String("session", s.id))
	return s, nil
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// Round returns the 1-based number of the fact being asked.
func (s *Session) Round() int { return s.rounds }

// Rounds returns the number of facts in the drill.
func (s *Session) Rounds() int { return s.cfg.Rounds }

// Current returns the fact being asked, if any.
func (s *Session) Current() (problemgen.Fact, bool) {
	if s.cur == nil {
		return problemgen.Fact{}, false
	}
	return s.cur.fact, true
}

// Next draws the next fact and resets its hint counter. An unanswered
// fact is skipped.
func (s *Session) Next() (problemgen.Fact, error) {
	if s.rounds >= s.cfg.Rounds {
		return problemgen.Fact{}, ErrFinished
	}
	f := s.deps.Generator.Next(s.deps.Learner.Stats().StrugglingNumbers())
	s.ask(f)
	return f, nil
}

func (s *Session) ask(f problemgen.Fact) {
	s.rounds++
	s.cur = &current{fact: f, shownAt: s.deps.Now()}
	s.deps.Logger.Debug("fact asked", zap.Int("round", s.rounds), zap.Stringer("fact", f))
}

// Hint explains the current fact. Each call rotates to the next suitable
// strategy.
func (s *Session) Hint(ctx context.Context) (*strategy.Explanation, error) {
	if s.cur == nil {
		return nil, ErrNoFact
	}
	f := s.cur.fact
	in := s.deps.Learner.SelectorInput(f.A, f.B, s.cur.attempts, s.cfg.Discovery)
	exp, err := s.deps.Selector.Select(in)
	if err != nil {
		return nil, fmt.Errorf("explain %v: %w", f, err)
	}

	attempt := s.cur.attempts
	s.cur.attempts++
	s.cur.last = exp.Strategy
	s.hints++
	s.result(exp.Strategy).Hints++

	forced := exp.Strategy == strategy.VisualArray
	s.deps.Logger.Debug("hint shown",
		zap.Stringer("fact", f),
		zap.Int("attempt", attempt),
		zap.String("strategy", string(exp.Strategy)),
		zap.Bool("forced", forced),
	)
	s.record(func(r store.EventRepo) error {
		return r.AppendHintEvent(ctx, store.HintEventData{
			SessionID: s.id,
			A:         f.A,
			B:         f.B,
			Attempt:   attempt,
			Strategy:  string(exp.Strategy),
			Category:  string(strategy.Classify(exp.Strategy)),
			Forced:    forced,
		})
	})
	return exp, nil
}

// Feedback is the outcome of an answer.
type Feedback struct {
	Fact     problemgen.Fact
	Correct  bool
	Expected int
	// Diagnosis is set for wrong answers.
	Diagnosis *diagnosis.Result
	// Strategy is the last hint shown for the fact, if any.
	Strategy strategy.Name
	// Transitions lists numbers that started or stopped struggling.
	Transitions []learner.Transition
}

// Answer grades text against the current fact. Input that is not a whole
// number returns problemgen.ErrNotANumber and leaves the fact open.
func (s *Session) Answer(ctx context.Context, text string) (*Feedback, error) {
	if s.cur == nil {
		return nil, ErrNoFact
	}
	value, err := problemgen.ParseAnswer(text)
	if err != nil {
		return nil, err
	}

	cur := s.cur
	s.cur = nil
	f := cur.fact
	elapsed := s.deps.Now().Sub(cur.shownAt)
	fb := &Feedback{
		Fact:     f,
		Correct:  value == f.Product(),
		Expected: f.Product(),
		Strategy: cur.last,
	}

	diag := diagnosis.CategoryUnclassified
	if !fb.Correct {
		res := diagnosis.Diagnose(&diagnosis.ClassifyInput{
			A:              f.A,
			B:              f.B,
			Answer:         value,
			ResponseTimeMs: elapsed.Milliseconds(),
			Accuracy:       s.deps.Learner.FactAccuracy(f.A, f.B),
		})
		fb.Diagnosis = &res
		diag = res.Category
	}

	fb.Transitions = s.deps.Learner.RecordAnswer(learner.Answer{
		A:         f.A,
		B:         f.B,
		Correct:   fb.Correct,
		Strategy:  cur.last,
		Diagnosis: diag,
	})
	s.transitions = append(s.transitions, fb.Transitions...)

	s.questions++
	if fb.Correct {
		s.correct++
		if cur.last != "" {
			s.result(cur.last).Successes++
		}
	}

	var diagName string
	if fb.Diagnosis != nil {
		diagName = string(fb.Diagnosis.Category)
	}
	s.deps.Logger.Debug("answer graded",
		zap.Stringer("fact", f),
		zap.Bool("correct", fb.Correct),
		zap.Duration("elapsed", elapsed),
		zap.String("diagnosis", diagName),
	)
	for _, t := range fb.Transitions {
		s.deps.Logger.Info("struggle flag changed", zap.Int("number", t.Number), zap.Bool("struggling", t.Struggling))
	}
	s.record(func(r store.EventRepo) error {
		return r.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:  s.id,
			A:          f.A,
			B:          f.B,
			Answer:     text,
			Correct:    fb.Correct,
			ResponseMs: elapsed.Milliseconds(),
			HintsUsed:  cur.attempts,
			Strategy:   string(cur.last),
			Diagnosis:  diagName,
		})
	})
	return fb, nil
}

func (s *Session) result(name strategy.Name) *StrategyResult {
	r, ok := s.results[name]
	if !ok {
		r = &StrategyResult{Strategy: name, Category: strategy.Classify(name)}
		s.results[name] = r
	}
	return r
}

// record appends an event. A store failure is logged and does not end
// the drill.
func (s *Session) record(fn func(store.EventRepo) error) {
	if s.deps.Events == nil {
		return
	}
	if err := fn(s.deps.Events); err != nil {
		s.deps.Logger.Warn("failed to record drill event", zap.Error(err))
	}
}
