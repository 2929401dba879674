package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version int                  `json:"version"`
	Learner *LearnerSnapshotData `json:"learner,omitempty"`
}

// LearnerSnapshotData is the persisted form of the learner statistics.
type LearnerSnapshotData struct {
	Struggling      []int                  `json:"struggling"`
	StrategySuccess map[string]int         `json:"strategy_success"`
	StyleSuccess    map[string]int         `json:"style_success"`
	Numbers         map[int]NumberSnapshot `json:"numbers"`
}

// NumberSnapshot is the per-number record inside a learner snapshot.
type NumberSnapshot struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
	Misses   int `json:"misses"`
	Streak   int `json:"streak"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. A zero Sequence is replaced by the
	// current global sequence.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// HintEventData records one explanation shown to the learner.
type HintEventData struct {
	SessionID string
	A, B      int
	Attempt   int
	Strategy  string
	Category  string
	Forced    bool
}

// AnswerEventData records one submitted answer.
type AnswerEventData struct {
	SessionID  string
	A, B       int
	Answer     string
	Correct    bool
	ResponseMs int64
	HintsUsed  int
	Strategy   string
	Diagnosis  string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendHintEvent(ctx context.Context, data HintEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error)
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
	StrategyHintCounts(ctx context.Context) ([]StrategyCount, error)
	NumberAccuracy(ctx context.Context) ([]NumberAccuracy, error)
}

// AnswerEvent is a stored answer event.
type AnswerEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM requests under one key (purpose or model).
type LLMUsage struct {
	Key          string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// StrategyCount reports how often a strategy was shown and how often the
// learner then answered correctly.
type StrategyCount struct {
	Strategy  string
	Hints     int
	Successes int
}

// NumberAccuracy is the answer record for facts involving one number.
type NumberAccuracy struct {
	Number   int
	Attempts int
	Correct  int
}

// Accuracy returns Correct / Attempts, or 0 with no attempts.
func (n NumberAccuracy) Accuracy() float64 {
	if n.Attempts == 0 {
		return 0
	}
	return float64(n.Correct) / float64(n.Attempts)
}
