package store

import "time"

// timeLayout is fixed-width so that stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

const schema = `
CREATE TABLE IF NOT EXISTS global_sequence (
	id       INTEGER PRIMARY KEY CHECK (id = 1),
	next_val INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS snapshots (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	sequence  INTEGER NOT NULL,
	timestamp TEXT NOT NULL,
	data      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS hint_events (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	sequence   INTEGER NOT NULL UNIQUE,
	timestamp  TEXT NOT NULL,
	session_id TEXT NOT NULL,
	operand_a  INTEGER NOT NULL,
	operand_b  INTEGER NOT NULL,
	attempt    INTEGER NOT NULL,
	strategy   TEXT NOT NULL,
	category   TEXT NOT NULL,
	forced     INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS answer_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	sequence    INTEGER NOT NULL UNIQUE,
	timestamp   TEXT NOT NULL,
	session_id  TEXT NOT NULL,
	operand_a   INTEGER NOT NULL,
	operand_b   INTEGER NOT NULL,
	answer      TEXT NOT NULL,
	correct     INTEGER NOT NULL,
	response_ms INTEGER NOT NULL,
	hints_used  INTEGER NOT NULL DEFAULT 0,
	strategy    TEXT NOT NULL DEFAULT '',
	diagnosis   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS llm_events (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	sequence      INTEGER NOT NULL UNIQUE,
	timestamp     TEXT NOT NULL,
	provider      TEXT NOT NULL,
	model         TEXT NOT NULL,
	purpose       TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL DEFAULT 0,
	output_tokens INTEGER NOT NULL DEFAULT 0,
	latency_ms    INTEGER NOT NULL DEFAULT 0,
	success       INTEGER NOT NULL,
	error_message TEXT NOT NULL DEFAULT '',
	request_body  TEXT NOT NULL DEFAULT '',
	response_body TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_hint_events_session ON hint_events(session_id);
CREATE INDEX IF NOT EXISTS idx_answer_events_session ON answer_events(session_id);
CREATE INDEX IF NOT EXISTS idx_snapshots_timestamp ON snapshots(timestamp);
`
