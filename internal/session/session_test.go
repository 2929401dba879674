package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/abhisek/timestable/internal/diagnosis"
	"github.com/abhisek/timestable/internal/learner"
	"github.com/abhisek/timestable/internal/logging"
	"github.com/abhisek/timestable/internal/problemgen"
	"github.com/abhisek/timestable/internal/store"
	"github.com/abhisek/timestable/internal/strategy"
)

// recordingRepo implements the event appends of store.EventRepo.
type recordingRepo struct {
	store.EventRepo
	hints   []store.HintEventData
	answers []store.AnswerEventData
	err     error
}

func (r *recordingRepo) AppendHintEvent(_ context.Context, data store.HintEventData) error {
	r.hints = append(r.hints, data)
	return r.err
}

func (r *recordingRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	r.answers = append(r.answers, data)
	return r.err
}

// fakeClock advances only when told to.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	s       *Session
	learner *learner.Service
	repo    *recordingRepo
	clock   *fakeClock
	log     *logging.TestLogger
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	f := &fixture{
		learner: learner.NewService(nil, learner.DefaultConfig()),
		repo:    &recordingRepo{},
		clock:   &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		log:     logging.NewTestLogger(),
	}
	s, err := New(Deps{
		Selector:  strategy.New(nil),
		Learner:   f.learner,
		Generator: problemgen.NewGenerator(problemgen.DefaultConfig(), rand.NewPCG(1, 2)),
		Events:    f.repo,
		Logger:    f.log.Logger,
		Now:       f.clock.Now,
	}, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f.s = s
	return f
}

func TestNew_RequiresDeps(t *testing.T) {
	if _, err := New(Deps{}, Config{}); err == nil {
		t.Error("expected error for missing dependencies")
	}
}

func TestNew_Defaults(t *testing.T) {
	f := newFixture(t, Config{})
	if f.s.Rounds() != DefaultRounds {
		t.Errorf("Rounds = %d, want %d", f.s.Rounds(), DefaultRounds)
	}
	if len(f.s.ID()) != 36 {
		t.Errorf("ID %q is not a UUID", f.s.ID())
	}
}

func TestHint_RotatesAndRecords(t *testing.T) {
	f := newFixture(t, Config{})
	f.s.ask(problemgen.Fact{A: 9, B: 7})

	first, err := f.s.Hint(context.Background())
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if first.Strategy != strategy.Nines {
		t.Errorf("first hint = %s, want nines", first.Strategy)
	}
	second, err := f.s.Hint(context.Background())
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if second.Strategy == first.Strategy {
		t.Errorf("second hint repeated %s", first.Strategy)
	}

	if len(f.repo.hints) != 2 {
		t.Fatalf("recorded %d hints, want 2", len(f.repo.hints))
	}
	h := f.repo.hints[0]
	if h.SessionID != f.s.ID() || h.A != 9 || h.B != 7 || h.Attempt != 0 || h.Strategy != "nines" || h.Category != "pattern" || h.Forced {
		t.Errorf("hint event = %+v", h)
	}
	if f.repo.hints[1].Attempt != 1 {
		t.Errorf("second hint attempt = %d, want 1", f.repo.hints[1].Attempt)
	}
}

func TestHint_ForcedVisualForStrugglingNumber(t *testing.T) {
	f := newFixture(t, Config{})
	for range 3 {
		f.learner.RecordAnswer(learner.Answer{A: 7, B: 8, Diagnosis: diagnosis.CategoryUnclassified})
	}
	f.s.ask(problemgen.Fact{A: 7, B: 6})

	exp, err := f.s.Hint(context.Background())
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if exp.Strategy != strategy.VisualArray {
		t.Errorf("got %s, want visual_array", exp.Strategy)
	}
	if !f.repo.hints[0].Forced {
		t.Error("hint event should be marked forced")
	}
}

func TestHint_DiscoverySuppressesOverride(t *testing.T) {
	f := newFixture(t, Config{Discovery: true})
	for range 3 {
		f.learner.RecordAnswer(learner.Answer{A: 7, B: 8, Diagnosis: diagnosis.CategoryUnclassified})
	}
	f.s.ask(problemgen.Fact{A: 7, B: 6})

	exp, err := f.s.Hint(context.Background())
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if exp.Strategy == strategy.VisualArray {
		t.Error("discovery mode must not force the visual array")
	}
}

func TestHintAndAnswer_WithoutFact(t *testing.T) {
	f := newFixture(t, Config{})
	if _, err := f.s.Hint(context.Background()); !errors.Is(err, ErrNoFact) {
		t.Errorf("Hint: got %v, want ErrNoFact", err)
	}
	if _, err := f.s.Answer(context.Background(), "4"); !errors.Is(err, ErrNoFact) {
		t.Errorf("Answer: got %v, want ErrNoFact", err)
	}
}

func TestAnswer_CorrectAfterHint(t *testing.T) {
	f := newFixture(t, Config{})
	f.s.ask(problemgen.Fact{A: 6, B: 6})
	if _, err := f.s.Hint(context.Background()); err != nil {
		t.Fatalf("Hint: %v", err)
	}
	f.clock.Advance(4 * time.Second)

	fb, err := f.s.Answer(context.Background(), " 36 ")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !fb.Correct || fb.Diagnosis != nil || fb.Strategy != strategy.PureDoubles {
		t.Errorf("feedback = %+v", fb)
	}
	if got := f.learner.Stats().StrategySuccess[strategy.PureDoubles]; got != 1 {
		t.Errorf("pure_doubles success = %d, want 1", got)
	}

	ev := f.repo.answers[0]
	if !ev.Correct || ev.ResponseMs != 4000 || ev.HintsUsed != 1 || ev.Strategy != "pure_doubles" || ev.Answer != " 36 " {
		t.Errorf("answer event = %+v", ev)
	}
	if _, ok := f.s.Current(); ok {
		t.Error("answered fact should be closed")
	}
}

func TestAnswer_WrongIsDiagnosed(t *testing.T) {
	f := newFixture(t, Config{})
	f.s.ask(problemgen.Fact{A: 6, B: 7})
	f.clock.Advance(5 * time.Second)

	fb, err := f.s.Answer(context.Background(), "13")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if fb.Correct || fb.Expected != 42 {
		t.Errorf("feedback = %+v", fb)
	}
	if fb.Diagnosis == nil || fb.Diagnosis.Category != diagnosis.CategoryAddedInstead {
		t.Errorf("diagnosis = %+v, want added-instead", fb.Diagnosis)
	}
	if f.repo.answers[0].Diagnosis != "added-instead" {
		t.Errorf("event diagnosis = %q", f.repo.answers[0].Diagnosis)
	}
	if f.learner.Record(6).Misses != 1 {
		t.Error("a diagnosed wrong answer should count as a miss")
	}
}

func TestAnswer_SpeedRushNotCounted(t *testing.T) {
	f := newFixture(t, Config{})
	f.s.ask(problemgen.Fact{A: 6, B: 7})
	f.clock.Advance(500 * time.Millisecond)

	fb, err := f.s.Answer(context.Background(), "40")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if fb.Diagnosis.Category != diagnosis.CategorySpeedRush {
		t.Errorf("diagnosis = %s, want speed-rush", fb.Diagnosis.Category)
	}
	if f.learner.Record(6).Misses != 0 {
		t.Error("a rushed answer must not count as a miss")
	}
}

func TestAnswer_NotANumberKeepsFact(t *testing.T) {
	f := newFixture(t, Config{})
	f.s.ask(problemgen.Fact{A: 3, B: 4})

	if _, err := f.s.Answer(context.Background(), "twelve"); !errors.Is(err, problemgen.ErrNotANumber) {
		t.Fatalf("got %v, want ErrNotANumber", err)
	}
	if _, ok := f.s.Current(); !ok {
		t.Fatal("fact should stay open")
	}
	if len(f.repo.answers) != 0 {
		t.Error("unparsable input must not be recorded")
	}
}

func TestAnswer_StruggleTransitionLogged(t *testing.T) {
	f := newFixture(t, Config{Rounds: 5})
	for _, fact := range []problemgen.Fact{{A: 7, B: 8}, {A: 7, B: 3}, {A: 7, B: 6}} {
		f.s.ask(fact)
		f.clock.Advance(3 * time.Second)
		if _, err := f.s.Answer(context.Background(), "1"); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}
	f.log.AssertLogged(t, zapcore.InfoLevel, "struggle flag changed")

	sum := f.s.Summary()
	if len(sum.Struggling) != 1 || sum.Struggling[0] != 7 {
		t.Errorf("struggling = %v, want [7]", sum.Struggling)
	}
	if len(sum.Transitions) != 1 {
		t.Errorf("transitions = %v", sum.Transitions)
	}
}

func TestRecordFailureDoesNotStopDrill(t *testing.T) {
	f := newFixture(t, Config{})
	f.repo.err = errors.New("disk full")
	f.s.ask(problemgen.Fact{A: 2, B: 5})

	if _, err := f.s.Hint(context.Background()); err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if _, err := f.s.Answer(context.Background(), "10"); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	f.log.AssertLogged(t, zapcore.WarnLevel, "failed to record drill event")
}

func TestNext_StopsAfterRounds(t *testing.T) {
	f := newFixture(t, Config{Rounds: 3})
	for i := 1; i <= 3; i++ {
		fact, err := f.s.Next()
		if err != nil {
			t.Fatalf("Next %d: %v", i, err)
		}
		if f.s.Round() != i {
			t.Errorf("Round = %d, want %d", f.s.Round(), i)
		}
		if cur, ok := f.s.Current(); !ok || cur != fact {
			t.Errorf("Current = %v, %v", cur, ok)
		}
	}
	if _, err := f.s.Next(); !errors.Is(err, ErrFinished) {
		t.Errorf("got %v, want ErrFinished", err)
	}
}

func TestNext_ResetsAttempts(t *testing.T) {
	f := newFixture(t, Config{})
	f.s.ask(problemgen.Fact{A: 9, B: 7})
	f.s.Hint(context.Background())
	f.s.Hint(context.Background())

	f.s.ask(problemgen.Fact{A: 9, B: 7})
	exp, err := f.s.Hint(context.Background())
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if exp.Strategy != strategy.Nines {
		t.Errorf("new fact should start from the first strategy, got %s", exp.Strategy)
	}
}

func TestSummary(t *testing.T) {
	f := newFixture(t, Config{})
	ctx := context.Background()

	f.s.ask(problemgen.Fact{A: 5, B: 8})
	f.s.Hint(ctx)
	f.clock.Advance(3 * time.Second)
	f.s.Answer(ctx, "40")

	f.s.ask(problemgen.Fact{A: 9, B: 7})
	f.s.Hint(ctx)
	f.s.Hint(ctx)
	f.clock.Advance(3 * time.Second)
	f.s.Answer(ctx, "62")

	sum := f.s.Summary()
	if sum.Questions != 2 || sum.Correct != 1 || sum.Accuracy != 0.5 || sum.HintsUsed != 3 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Duration != 6*time.Second {
		t.Errorf("duration = %v, want 6s", sum.Duration)
	}
	if sum.SessionID != f.s.ID() {
		t.Error("summary session ID mismatch")
	}
	if len(sum.Strategies) != 3 {
		t.Fatalf("strategies = %+v", sum.Strategies)
	}
	// Ties on hint count are ordered by name.
	var fives StrategyResult
	for _, r := range sum.Strategies {
		if r.Strategy == strategy.Fives {
			fives = r
		}
		if r.Hints != 1 {
			t.Errorf("%s hints = %d, want 1", r.Strategy, r.Hints)
		}
	}
	if fives.Successes != 1 || fives.Category != strategy.CategoryCounting {
		t.Errorf("fives result = %+v", fives)
	}
	for i := 1; i < len(sum.Strategies); i++ {
		if sum.Strategies[i-1].Strategy > sum.Strategies[i].Strategy {
			t.Errorf("strategies not ordered by name: %v", sum.Strategies)
		}
	}
}
