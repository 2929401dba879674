package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// eventRepo implements EventRepo on raw SQL and the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// appendEvent runs an INSERT whose first two parameters are the sequence
// number and the timestamp.
func (r *eventRepo) appendEvent(ctx context.Context, query string, args ...any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	full := append([]any{seqNum, formatTime(time.Now())}, args...)
	_, err = r.db.ExecContext(ctx, query, full...)
	return err
}

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	err := r.appendEvent(ctx,
		`INSERT INTO hint_events (sequence, timestamp, session_id, operand_a, operand_b, attempt, strategy, category, forced)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.A, data.B, data.Attempt, data.Strategy, data.Category, data.Forced,
	)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	err := r.appendEvent(ctx,
		`INSERT INTO answer_events (sequence, timestamp, session_id, operand_a, operand_b, answer, correct, response_ms, hints_used, strategy, diagnosis)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.A, data.B, data.Answer, data.Correct, data.ResponseMs, data.HintsUsed, data.Strategy, data.Diagnosis,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error) {
	where, args := opts.filter()
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, timestamp, session_id, operand_a, operand_b, answer, correct, response_ms, hints_used, strategy, diagnosis
		 FROM answer_events`+where+` ORDER BY sequence DESC`+opts.limit(), args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var (
			e  AnswerEvent
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.SessionID, &e.A, &e.B, &e.Answer, &e.Correct,
			&e.ResponseMs, &e.HintsUsed, &e.Strategy, &e.Diagnosis); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		if e.Timestamp, err = parseTime(ts); err != nil {
			return nil, fmt.Errorf("parse answer timestamp: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) StrategyHintCounts(ctx context.Context) ([]StrategyCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT h.strategy, h.hints, COALESCE(a.successes, 0)
		FROM (SELECT strategy, COUNT(*) AS hints FROM hint_events GROUP BY strategy) h
		LEFT JOIN (
			SELECT strategy, SUM(correct) AS successes FROM answer_events
			WHERE strategy != '' GROUP BY strategy
		) a ON a.strategy = h.strategy
		ORDER BY h.hints DESC, h.strategy`)
	if err != nil {
		return nil, fmt.Errorf("query strategy counts: %w", err)
	}
	defer rows.Close()

	var out []StrategyCount
	for rows.Next() {
		var c StrategyCount
		if err := rows.Scan(&c.Strategy, &c.Hints, &c.Successes); err != nil {
			return nil, fmt.Errorf("scan strategy count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// NumberAccuracy counts every answer once for each distinct operand.
func (r *eventRepo) NumberAccuracy(ctx context.Context) ([]NumberAccuracy, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT n, COUNT(*), SUM(correct) FROM (
			SELECT operand_a AS n, correct FROM answer_events
			UNION ALL
			SELECT operand_b AS n, correct FROM answer_events WHERE operand_b != operand_a
		) GROUP BY n ORDER BY n`)
	if err != nil {
		return nil, fmt.Errorf("query number accuracy: %w", err)
	}
	defer rows.Close()

	var out []NumberAccuracy
	for rows.Next() {
		var n NumberAccuracy
		if err := rows.Scan(&n.Number, &n.Attempts, &n.Correct); err != nil {
			return nil, fmt.Errorf("scan number accuracy: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
