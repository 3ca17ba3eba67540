// Package store persists session progress in SQLite, keyed by
// (profile, scope, session_id). Appends rewrite the full record list as one
// atomic snapshot, so a crash can never leave a session shorter than its
// last persisted state.
package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/shortscope/shortscope/pkg/domain"
)

//go:embed schema.sql
var schema string

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store provides durable, resumable persistence of sessions
type Store struct {
	db *sqlx.DB
}

// sessionRow mirrors the sessions table
type sessionRow struct {
	ID        int64  `db:"id"`
	Profile   string `db:"profile"`
	Scope     string `db:"scope"`
	SessionID string `db:"session_id"`
	Records   string `db:"records"`
}

// New opens the database, applies pragmas and initializes the schema
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:shortscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Append adds the record to the session and persists the full updated record
// list. The session row is created on first append.
func (s *Store) Append(ctx context.Context, sess *domain.Session, rec domain.ItemRecord) error {
	sess.Records = append(sess.Records, rec)
	if err := s.Save(ctx, sess); err != nil {
		sess.Records = sess.Records[:len(sess.Records)-1] // keep memory and disk in step
		return err
	}
	return nil
}

// Save upserts the session with its complete record list
func (s *Store) Save(ctx context.Context, sess *domain.Session) error {
	data, err := json.Marshal(sess.Records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO sessions (profile, scope, session_id, records, updated_at)
			VALUES (?, ?, ?, ?, datetime('now'))
			ON CONFLICT(profile, scope, session_id)
			DO UPDATE SET records = excluded.records, updated_at = excluded.updated_at
		`
		if _, err := s.db.ExecContext(ctx, query, sess.Profile, string(sess.Scope), sess.ID, string(data)); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save session: %w", err)}
		}
		return nil
	})
}

// ListSessions returns all session ids for a profile+scope in chronological
// order (session ids are generated from timestamps)
func (s *Store) ListSessions(ctx context.Context, profile string, scope domain.Scope) ([]string, error) {
	var ids []string
	query := "SELECT session_id FROM sessions WHERE profile = ? AND scope = ? ORDER BY session_id"
	if err := s.db.SelectContext(ctx, &ids, query, profile, string(scope)); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return ids, nil
}

// GetSession loads one session. A row whose records fail to parse comes back
// as an empty session rather than an error.
func (s *Store) GetSession(ctx context.Context, profile string, scope domain.Scope, sessionID string) (*domain.Session, error) {
	var row sessionRow
	query := "SELECT id, profile, scope, session_id, records FROM sessions WHERE profile = ? AND scope = ? AND session_id = ?"
	if err := s.db.GetContext(ctx, &row, query, profile, string(scope), sessionID); err != nil {
		return nil, fmt.Errorf("get session %s/%s/%s: %w", profile, scope, sessionID, err)
	}
	return rowToSession(&row), nil
}

// LatestIncomplete returns the most recent session for profile+scope if its
// record count is below target, nil if the latest session is complete or no
// sessions exist. Used to resume rather than start fresh.
func (s *Store) LatestIncomplete(ctx context.Context, profile string, scope domain.Scope, target int) (*domain.Session, error) {
	var row sessionRow
	query := `SELECT id, profile, scope, session_id, records FROM sessions
		WHERE profile = ? AND scope = ? ORDER BY session_id DESC LIMIT 1`
	err := s.db.GetContext(ctx, &row, query, profile, string(scope))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest session: %w", err)
	}

	sess := rowToSession(&row)
	if sess.Complete(target) {
		return nil, nil
	}
	return sess, nil
}

// CompletedCount counts sessions that reached the target length for
// profile+scope. Drives round-robin seed indexing and sufficiency checks.
func (s *Store) CompletedCount(ctx context.Context, profile string, scope domain.Scope, target int) (int, error) {
	sessions, err := s.loadRows(ctx, "profile = ? AND scope = ?", profile, string(scope))
	if err != nil {
		return 0, err
	}
	count := 0
	for _, sess := range sessions {
		if sess.Complete(target) {
			count++
		}
	}
	return count, nil
}

// LoadAll returns every session for a scope across all profiles, in
// (profile, session_id) order. Sessions with unparseable records are
// skipped with a warning, never failing the whole load.
func (s *Store) LoadAll(ctx context.Context, scope domain.Scope) ([]domain.Session, error) {
	return s.loadRows(ctx, "scope = ?", string(scope))
}

// LoadProfile returns every session for one profile+scope in session order
func (s *Store) LoadProfile(ctx context.Context, profile string, scope domain.Scope) ([]domain.Session, error) {
	return s.loadRows(ctx, "profile = ? AND scope = ?", profile, string(scope))
}

// Profiles returns distinct profile ids present in the store
func (s *Store) Profiles(ctx context.Context) ([]string, error) {
	var profiles []string
	if err := s.db.SelectContext(ctx, &profiles, "SELECT DISTINCT profile FROM sessions ORDER BY profile"); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// Scopes returns distinct scopes recorded for a profile
func (s *Store) Scopes(ctx context.Context, profile string) ([]domain.Scope, error) {
	var raw []string
	if err := s.db.SelectContext(ctx, &raw, "SELECT DISTINCT scope FROM sessions WHERE profile = ? ORDER BY scope", profile); err != nil {
		return nil, fmt.Errorf("list scopes: %w", err)
	}
	scopes := make([]domain.Scope, len(raw))
	for i, v := range raw {
		scopes[i] = domain.Scope(v)
	}
	return scopes, nil
}

func (s *Store) loadRows(ctx context.Context, where string, args ...any) ([]domain.Session, error) {
	var rows []sessionRow
	query := "SELECT id, profile, scope, session_id, records FROM sessions WHERE " + where +
		" ORDER BY profile, session_id"
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	sessions := make([]domain.Session, 0, len(rows))
	for i := range rows {
		sessions = append(sessions, *rowToSession(&rows[i]))
	}
	return sessions, nil
}

// rowToSession converts a row, degrading corrupt record payloads to an empty
// record list with a warning
func rowToSession(row *sessionRow) *domain.Session {
	sess := &domain.Session{
		Profile: row.Profile,
		Scope:   domain.Scope(row.Scope),
		ID:      row.SessionID,
	}
	if err := json.Unmarshal([]byte(row.Records), &sess.Records); err != nil {
		lgr.Printf("[WARN] corrupt records for session %s/%s/%s, treating as empty: %v",
			row.Profile, row.Scope, row.SessionID, err)
		sess.Records = nil
	}
	return sess
}
