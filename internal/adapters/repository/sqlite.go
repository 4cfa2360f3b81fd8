package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/bizmatch/internal/domain/model"

	_ "modernc.org/sqlite"
)

// timeLayout is fixed-width so stored timestamps compare as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const schema = `
CREATE TABLE IF NOT EXISTS answer_sets (
	session_id TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_answer_sets_updated ON answer_sets(updated_at);
`

// SQLiteStore keeps answer sets in a single SQLite table.
type SQLiteStore struct {
	db   *sql.DB
	opts options
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at path and migrates it.
// Use ":memory:" for a throwaway database.
func NewSQLiteStore(ctx context.Context, path string, opts ...Option) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}
	if path == ":memory:" {
		// each pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite: pragma %q: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: migration: %w", err)
	}
	return NewSQLiteStoreWithDB(db, opts...), nil
}

// NewSQLiteStoreWithDB wraps an already migrated database handle. The
// store takes ownership of db.
func NewSQLiteStoreWithDB(db *sql.DB, opts ...Option) *SQLiteStore {
	return &SQLiteStore{db: db, opts: newOptions(opts)}
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) stamp() string {
	return s.opts.now().UTC().Format(timeLayout)
}

// cutoff returns the oldest live updated_at, or "" when sessions never expire.
func (s *SQLiteStore) cutoff() string {
	if s.opts.ttl <= 0 {
		return ""
	}
	return s.opts.now().Add(-s.opts.ttl).UTC().Format(timeLayout)
}

func (s *SQLiteStore) loadPayload(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, sessionID string) ([]model.Answer, error) {
	var payload string
	err := q.QueryRowContext(ctx,
		`SELECT payload FROM answer_sets WHERE session_id = ? AND updated_at > ?`,
		sessionID, s.cutoff(),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: load: %w", err)
	}
	return decode([]byte(payload))
}

// Load implements Store.
func (s *SQLiteStore) Load(ctx context.Context, sessionID string) (answers []model.Answer, err error) {
	defer func(start time.Time) { observe(BackendSQLite, "load", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return nil, err
	}
	return s.loadPayload(ctx, s.db, sessionID)
}

// Save implements Store.
func (s *SQLiteStore) Save(ctx context.Context, sessionID string, answers []model.Answer) (err error) {
	defer func(start time.Time) { observe(BackendSQLite, "save", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return err
	}
	payload, err := encode(answers)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO answer_sets (session_id, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		sessionID, string(payload), s.stamp(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save: %w", err)
	}
	return nil
}

// Append implements Store. The merge runs inside one transaction.
func (s *SQLiteStore) Append(ctx context.Context, sessionID string, answers ...model.Answer) (err error) {
	defer func(start time.Time) { observe(BackendSQLite, "append", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := s.loadPayload(ctx, tx, sessionID)
	if err != nil {
		return err
	}
	payload, err := encode(model.Merge(existing, answers...))
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE answer_sets SET payload = ?, updated_at = ? WHERE session_id = ?`,
		string(payload), s.stamp(), sessionID,
	); err != nil {
		return fmt.Errorf("sqlite: append: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(ctx context.Context, sessionID string) (err error) {
	defer func(start time.Time) { observe(BackendSQLite, "delete", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM answer_sets WHERE session_id = ? AND updated_at > ?`, sessionID, s.cutoff())
	if err != nil {
		return fmt.Errorf("sqlite: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: delete: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Purge removes expired sessions and returns how many were dropped.
func (s *SQLiteStore) Purge(ctx context.Context) (int64, error) {
	cutoff := s.cutoff()
	if cutoff == "" {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM answer_sets WHERE updated_at <= ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("sqlite: purge: %w", err)
	}
	return res.RowsAffected()
}
