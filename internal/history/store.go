// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists owner-scoped search sessions in SQLite so a
// search can be reloaded or paged through later without re-querying.
// Implements: prd002-session-store (R1-R4);
//
//	docs/ARCHITECTURE § Session Store.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-search/pkg/types"
)

const dbFile = "sessions.db"

// timeLayout is a fixed-width RFC 3339 form so stored timestamps sort
// lexicographically even within the same second.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const (
	defaultSnapshotLimit = 5
	defaultSnippetLength = 500
	defaultListLimit     = 20
)

// ErrNotFound reports that a session does not exist for the given owner.
// Ownership is enforced inside the lookup query, so a session belonging
// to someone else is indistinguishable from one that never existed.
var ErrNotFound = errors.New("session not found")

// Store manages the sessions SQLite database. The database is opened per
// operation and released on return; the Store itself holds only
// configuration, so it is safe for concurrent use.
type Store struct {
	path          string
	snapshotLimit int
	snippetLen    int
}

// NewStore prepares the sessions database under cfg.DataDir, creating the
// directory and schema if they do not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	s := &Store{
		path:          filepath.Join(dataDir, dbFile),
		snapshotLimit: cfg.SnapshotLimit,
		snippetLen:    cfg.SnippetLength,
	}
	if s.snapshotLimit <= 0 {
		s.snapshotLimit = defaultSnapshotLimit
	}
	if s.snippetLen <= 0 {
		s.snippetLen = defaultSnippetLength
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := createSchema(db); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

func createSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			owner TEXT NOT NULL,
			query TEXT NOT NULL,
			created_at TEXT NOT NULL,
			total INTEGER NOT NULL,
			snapshot TEXT NOT NULL,
			webenv TEXT,
			query_key TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_owner ON sessions(owner, created_at)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save writes one new session row for the owner: the record list is
// truncated to the snapshot limit, each record's text is shortened for
// storage economy, and the snapshot is serialized as YAML so the row
// stays inspectable without the remote service's schema. Returns the new
// session id. Sessions are immutable once written except for deletion.
func (s *Store) Save(ctx context.Context, owner, query string, res types.Result) (string, error) {
	snapshot := res.Records
	if len(snapshot) > s.snapshotLimit {
		snapshot = snapshot[:s.snapshotLimit]
	}
	trimmed := make([]types.Record, len(snapshot))
	for i, rec := range snapshot {
		trimmed[i] = s.trimRecord(rec)
	}

	data, err := yaml.Marshal(trimmed)
	if err != nil {
		return "", fmt.Errorf("marshaling snapshot: %w", err)
	}

	id := uuid.NewString()
	createdAt := time.Now().UTC().Format(timeLayout)

	db, err := s.open()
	if err != nil {
		return "", err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT INTO sessions (id, owner, query, created_at, total, snapshot, webenv, query_key)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, owner, query, createdAt, res.Total, string(data),
		res.Tokens.WebEnv, res.Tokens.QueryKey,
	)
	if err != nil {
		return "", fmt.Errorf("inserting session: %w", err)
	}
	return id, nil
}

// trimRecord bounds abstract and section text at the snippet length.
func (s *Store) trimRecord(rec types.Record) types.Record {
	rec.Abstract = snippet(rec.Abstract, s.snippetLen)
	if len(rec.Sections) > 0 {
		sections := make([]types.AbstractSection, len(rec.Sections))
		for i, sec := range rec.Sections {
			sections[i] = types.AbstractSection{
				Label: sec.Label,
				Text:  snippet(sec.Text, s.snippetLen),
			}
		}
		rec.Sections = sections
	}
	return rec
}

func snippet(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// List returns session summaries for the owner, newest first, at most
// limit entries. A non-positive limit applies the default bound.
func (s *Store) List(ctx context.Context, owner string, limit int) ([]types.SessionSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, query, created_at, total FROM sessions
		 WHERE owner = ? ORDER BY created_at DESC, id LIMIT ?`,
		owner, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var summaries []types.SessionSummary
	for rows.Next() {
		var (
			sum       types.SessionSummary
			createdAt string
		)
		if err := rows.Scan(&sum.ID, &sum.Query, &createdAt, &sum.Total); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			sum.CreatedAt = t
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// Get returns the full session, including the deserialized snapshot and
// the token pair. Returns ErrNotFound when no row matches the id and
// owner together; the two cases are never distinguished.
func (s *Store) Get(ctx context.Context, owner, sessionID string) (types.SearchSession, error) {
	db, err := s.open()
	if err != nil {
		return types.SearchSession{}, err
	}
	defer db.Close()

	var (
		sess      types.SearchSession
		createdAt string
		snapshot  string
		webEnv    sql.NullString
		queryKey  sql.NullString
	)
	err = db.QueryRowContext(ctx,
		`SELECT id, owner, query, created_at, total, snapshot, webenv, query_key
		 FROM sessions WHERE id = ? AND owner = ?`,
		sessionID, owner,
	).Scan(&sess.ID, &sess.Owner, &sess.Query, &createdAt, &sess.Total,
		&snapshot, &webEnv, &queryKey)

	if err == sql.ErrNoRows {
		return types.SearchSession{}, ErrNotFound
	}
	if err != nil {
		return types.SearchSession{}, fmt.Errorf("looking up session: %w", err)
	}

	if t, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
		sess.CreatedAt = t
	}
	if err := yaml.Unmarshal([]byte(snapshot), &sess.Snapshot); err != nil {
		return types.SearchSession{}, fmt.Errorf("parsing snapshot: %w", err)
	}
	if webEnv.Valid && queryKey.Valid {
		sess.Tokens = types.TokenPair{WebEnv: webEnv.String, QueryKey: queryKey.String}
	}
	return sess, nil
}

// Delete removes the session if it exists for the owner. Deleting a
// nonexistent id is not an error.
func (s *Store) Delete(ctx context.Context, owner, sessionID string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx,
		`DELETE FROM sessions WHERE id = ? AND owner = ?`, sessionID, owner,
	); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Clear removes every session belonging to the owner and reports how
// many were deleted.
func (s *Store) Clear(ctx context.Context, owner string) (int, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, `DELETE FROM sessions WHERE owner = ?`, owner)
	if err != nil {
		return 0, fmt.Errorf("clearing sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
