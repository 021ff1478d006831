package audit

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS audit_entries (
	seq           INTEGER PRIMARY KEY,
	ts            TEXT NOT NULL,
	previous_hash TEXT NOT NULL,
	payload       TEXT NOT NULL,
	hash          TEXT NOT NULL
)`

// SQLiteSink persists journal entries through database/sql. The ":memory:"
// DSN keeps the journal inspectable during a run without any state
// surviving a restart.
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLiteSink opens (or creates) the journal database at dsn.
func OpenSQLiteSink(dsn string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create audit schema: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

// Write inserts one sealed entry.
func (s *SQLiteSink) Write(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_entries (seq, ts, previous_hash, payload, hash)
		VALUES (?, ?, ?, ?, ?)`,
		e.Seq, e.Timestamp, e.PreviousHash, e.Payload, e.Hash)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// Entries reads every stored entry back in sequence order, suitable for
// VerifyChain.
func (s *SQLiteSink) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, ts, previous_hash, payload, hash
		FROM audit_entries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Seq, &e.Timestamp, &e.PreviousHash, &e.Payload, &e.Hash); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
