package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"datewheel-cli/internal/calendar"
	"datewheel-cli/internal/datewheel"

	_ "modernc.org/sqlite"
)

const journalSchemaVersion = "1"

// JournalEntry is one recorded date change.
type JournalEntry struct {
	Seq        int64         `json:"seq"`
	SessionID  string        `json:"sessionId"`
	Old        calendar.Date `json:"old"`
	New        calendar.Date `json:"new"`
	RecordedAt time.Time     `json:"recordedAt"`
}

// Journal appends date changes to a sqlite file. It is an audit trail only;
// nothing reads it back to restore a selection.
type Journal struct {
	db        *sql.DB
	path      string
	sessionID string

	now func() time.Time
}

var _ datewheel.Listener = (*Journal)(nil)

func OpenJournal(ctx context.Context, path string) (*Journal, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("journal: missing path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets a `journal list` read while a TUI session is writing.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateJournal(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	sessionID, err := newUUIDv4()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Journal{db: db, path: path, sessionID: sessionID, now: time.Now}, nil
}

func migrateJournal(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS changes (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			old_date TEXT NOT NULL,
			new_date TEXT NOT NULL,
			recorded_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_changes_session ON changes(session_id, seq);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}

	var v string
	err := db.QueryRowContext(ctx, `SELECT v FROM meta WHERE k = 'schema_version'`).Scan(&v)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = db.ExecContext(ctx, `INSERT INTO meta(k, v) VALUES('schema_version', ?)`, journalSchemaVersion)
		return err
	case err != nil:
		return err
	case v != journalSchemaVersion:
		return fmt.Errorf("journal: unsupported schema version %q", v)
	}
	return nil
}

func (j *Journal) Path() string      { return j.path }
func (j *Journal) SessionID() string { return j.sessionID }

func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

func (j *Journal) Append(ctx context.Context, old, new calendar.Date) (JournalEntry, error) {
	at := j.now().UTC()
	res, err := j.db.ExecContext(ctx,
		`INSERT INTO changes(session_id, old_date, new_date, recorded_at_unixms) VALUES(?, ?, ?, ?)`,
		j.sessionID, old.String(), new.String(), at.UnixMilli(),
	)
	if err != nil {
		return JournalEntry{}, err
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return JournalEntry{}, err
	}
	return JournalEntry{
		Seq:        seq,
		SessionID:  j.sessionID,
		Old:        old,
		New:        new,
		RecordedAt: time.UnixMilli(at.UnixMilli()).UTC(),
	}, nil
}

// DateChanged records the change; a write failure is returned to the picker.
func (j *Journal) DateChanged(_ *datewheel.Picker, old, new calendar.Date) error {
	_, err := j.Append(context.Background(), old, new)
	return err
}

// List returns the newest limit entries, oldest-first (limit 0 = all).
func (j *Journal) List(ctx context.Context, limit int) ([]JournalEntry, error) {
	q := `SELECT seq, session_id, old_date, new_date, recorded_at_unixms FROM changes ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := j.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []JournalEntry{}
	for rows.Next() {
		var (
			e        JournalEntry
			old, new string
			ms       int64
		)
		if err := rows.Scan(&e.Seq, &e.SessionID, &old, &new, &ms); err != nil {
			return nil, err
		}
		if e.Old, err = calendar.ParseDate(old); err != nil {
			return nil, fmt.Errorf("journal seq %d: %w", e.Seq, err)
		}
		if e.New, err = calendar.ParseDate(new); err != nil {
			return nil, fmt.Errorf("journal seq %d: %w", e.Seq, err)
		}
		e.RecordedAt = time.UnixMilli(ms).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, k := 0, len(out)-1; i < k; i, k = i+1, k-1 {
		out[i], out[k] = out[k], out[i]
	}
	return out, nil
}

func newUUIDv4() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	// RFC 4122 variant + v4
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		uint32(b[0])<<24|uint32(b[1])<<16|uint32(b[2])<<8|uint32(b[3]),
		uint16(b[4])<<8|uint16(b[5]),
		uint16(b[6])<<8|uint16(b[7]),
		uint16(b[8])<<8|uint16(b[9]),
		uint64(b[10])<<40|uint64(b[11])<<32|uint64(b[12])<<24|uint64(b[13])<<16|uint64(b[14])<<8|uint64(b[15]),
	), nil
}
