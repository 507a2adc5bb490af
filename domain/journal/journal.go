// Package journal appends every decided click and screen transition of a
// run to a SQLite file, keyed by a per-run session id.
package journal

import (
	"database/sql"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id  TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL,
	ended_at    TEXT
);

CREATE TABLE IF NOT EXISTS clicks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	tick        INTEGER NOT NULL,
	screen      TEXT NOT NULL,
	target      TEXT NOT NULL,
	x           INTEGER NOT NULL,
	y           INTEGER NOT NULL,
	delivered   INTEGER NOT NULL,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE TABLE IF NOT EXISTS transitions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	tick        INTEGER NOT NULL,
	from_screen TEXT NOT NULL,
	to_screen   TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE INDEX IF NOT EXISTS idx_clicks_session ON clicks(session_id, tick);
`

// Journal writes one session's records.
type Journal struct {
	db        *sql.DB
	sessionID string
}

// Open creates or migrates the database at path and starts a new session.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: migrate: %w", err)
	}
	j := &Journal{db: db, sessionID: uuid.NewString()}
	if _, err := db.Exec(`INSERT INTO sessions (session_id, started_at) VALUES (?, ?)`,
		j.sessionID, now()); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: insert session: %w", err)
	}
	return j, nil
}

func now() string { return time.Now().UTC().Format(time.RFC3339Nano) }

// SessionID identifies this run's rows.
func (j *Journal) SessionID() string { return j.sessionID }

// RecordClick stores a decided click. delivered is false when the click
// was suppressed by the focus gate or the clicking toggle.
func (j *Journal) RecordClick(tick uint64, screen, target string, at image.Point, delivered bool) error {
	_, err := j.db.Exec(
		`INSERT INTO clicks (session_id, tick, screen, target, x, y, delivered, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.sessionID, int64(tick), screen, target, at.X, at.Y, delivered, now(),
	)
	if err != nil {
		return fmt.Errorf("journal: insert click: %w", err)
	}
	return nil
}

// RecordTransition stores a screen change.
func (j *Journal) RecordTransition(tick uint64, from, to string) error {
	_, err := j.db.Exec(
		`INSERT INTO transitions (session_id, tick, from_screen, to_screen, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		j.sessionID, int64(tick), from, to, now(),
	)
	if err != nil {
		return fmt.Errorf("journal: insert transition: %w", err)
	}
	return nil
}

// ScreenCount is a per-screen click total.
type ScreenCount struct {
	Screen    string
	Clicks    int
	Delivered int
}

// ClickSummary totals this session's clicks per screen, ordered by screen
// name.
func (j *Journal) ClickSummary() ([]ScreenCount, error) {
	rows, err := j.db.Query(
		`SELECT screen, COUNT(*), COALESCE(SUM(delivered), 0) FROM clicks
		 WHERE session_id = ? GROUP BY screen ORDER BY screen`, j.sessionID)
	if err != nil {
		return nil, fmt.Errorf("journal: query clicks: %w", err)
	}
	defer rows.Close()
	var out []ScreenCount
	for rows.Next() {
		var sc ScreenCount
		if err := rows.Scan(&sc.Screen, &sc.Clicks, &sc.Delivered); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// Transitions returns this session's transitions in tick order.
func (j *Journal) Transitions() ([][2]string, error) {
	rows, err := j.db.Query(
		`SELECT from_screen, to_screen FROM transitions WHERE session_id = ? ORDER BY id`, j.sessionID)
	if err != nil {
		return nil, fmt.Errorf("journal: query transitions: %w", err)
	}
	defer rows.Close()
	var out [][2]string
	for rows.Next() {
		var t [2]string
		if err := rows.Scan(&t[0], &t[1]); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Close marks the session ended and closes the database.
func (j *Journal) Close() error {
	if _, err := j.db.Exec(`UPDATE sessions SET ended_at = ? WHERE session_id = ?`, now(), j.sessionID); err != nil {
		j.db.Close()
		return fmt.Errorf("journal: end session: %w", err)
	}
	return j.db.Close()
}
