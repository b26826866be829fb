// Package profile persists call-site statistics across runs, so later
// sessions can warm caches and pick stub candidates from observed load
// rather than guesses.
package profile

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrSessionNotFound indicates the requested session doesn't exist.
var ErrSessionNotFound = errors.New("session not found")

// Store handles SQLite storage for call-site profiles.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// Open opens (creating if needed) a profile database at the given path.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating profile dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	// Create tables if needed
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		mode TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating sessions table: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS call_sites (
		session_id TEXT NOT NULL,
		owner TEXT NOT NULL,
		method TEXT NOT NULL,
		params TEXT NOT NULL,
		static INTEGER NOT NULL,
		hits INTEGER NOT NULL,
		calls INTEGER NOT NULL,
		PRIMARY KEY (session_id, owner, method, params)
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating call_sites table: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// Session describes one recording run.
type Session struct {
	ID        string
	StartedAt time.Time
	Mode      string
}

// beginSession inserts a session row; the Recorder supplies the id.
func (s *Store) beginSession(id, mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, started_at, mode) VALUES (?, ?, ?)",
		id, time.Now().Unix(), mode,
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// Sessions lists recorded sessions, newest first.
func (s *Store) Sessions() ([]Session, error) {
	rows, err := s.db.Query("SELECT id, started_at, mode FROM sessions ORDER BY started_at DESC")
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		var ts int64
		if err := rows.Scan(&sess.ID, &ts, &sess.Mode); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sess.StartedAt = time.Unix(ts, 0)
		out = append(out, sess)
	}
	return out, rows.Err()
}

// Site is one persisted call-site row. Owner and Params carry canonical
// type names.
type Site struct {
	Owner  string
	Method string
	Params []string
	Static bool
	Hits   uint64
	Calls  uint64
}

// writeSites upserts one session's call-site rows in a single transaction.
func (s *Store) writeSites(sessionID string, sites []Site) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO call_sites
		(session_id, owner, method, params, static, hits, calls)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, site := range sites {
		params, err := json.Marshal(site.Params)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("encoding params: %w", err)
		}
		static := 0
		if site.Static {
			static = 1
		}
		if _, err := stmt.Exec(sessionID, site.Owner, site.Method, string(params), static, site.Hits, site.Calls); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting call site: %w", err)
		}
	}
	return tx.Commit()
}

// SessionSites returns the call sites recorded under one session.
func (s *Store) SessionSites(sessionID string) ([]Site, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM sessions WHERE id = ?", sessionID).Scan(&n)
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	if n == 0 {
		return nil, ErrSessionNotFound
	}

	rows, err := s.db.Query(
		`SELECT owner, method, params, static, hits, calls
		 FROM call_sites WHERE session_id = ? ORDER BY hits DESC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying call sites: %w", err)
	}
	defer rows.Close()
	return scanSites(rows)
}

// HotSites aggregates call sites across all sessions, keeping those whose
// summed hits reach minHits, hottest first.
func (s *Store) HotSites(minHits int64) ([]Site, error) {
	rows, err := s.db.Query(
		`SELECT owner, method, params, static, SUM(hits), SUM(calls)
		 FROM call_sites
		 GROUP BY owner, method, params, static
		 HAVING SUM(hits) >= ?
		 ORDER BY SUM(hits) DESC`, minHits)
	if err != nil {
		return nil, fmt.Errorf("querying hot sites: %w", err)
	}
	defer rows.Close()
	return scanSites(rows)
}

func scanSites(rows *sql.Rows) ([]Site, error) {
	var out []Site
	for rows.Next() {
		var site Site
		var params string
		var static int
		if err := rows.Scan(&site.Owner, &site.Method, &params, &static, &site.Hits, &site.Calls); err != nil {
			return nil, fmt.Errorf("scanning call site: %w", err)
		}
		if err := json.Unmarshal([]byte(params), &site.Params); err != nil {
			return nil, fmt.Errorf("decoding params: %w", err)
		}
		site.Static = static != 0
		out = append(out, site)
	}
	return out, rows.Err()
}
