package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"skillscout/internal/model"
)

// SQLiteStore persists scan runs and their postings in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id         TEXT PRIMARY KEY,
		skills     TEXT NOT NULL,
		job_count  INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS postings (
		run_id    TEXT NOT NULL REFERENCES runs(id),
		position  INTEGER NOT NULL,
		title     TEXT NOT NULL,
		company   TEXT NOT NULL,
		location  TEXT NOT NULL,
		url       TEXT NOT NULL,
		posted_at TEXT,
		skill     TEXT NOT NULL,
		source    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_postings_run ON postings(run_id, position);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// SaveRun writes a run record and its postings atomically.
func (s *SQLiteStore) SaveRun(run model.ScanRun, postings []model.JobPosting) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("saving run %s: %w", run.ID, err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (id, skills, job_count, created_at) VALUES (?, ?, ?, ?)",
		run.ID,
		strings.Join(run.Skills, ","),
		run.JobCount,
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving run %s: %w", run.ID, err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO postings (run_id, position, title, company, location, url, posted_at, skill, source) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("saving run %s: %w", run.ID, err)
	}
	defer stmt.Close()

	for i, p := range postings {
		var postedAt any
		if p.PostedAt != nil {
			postedAt = p.PostedAt.UTC().Format(time.RFC3339)
		}
		if _, err := stmt.Exec(run.ID, i, p.Title, p.Company, p.Location, p.URL, postedAt, p.Skill, p.Source); err != nil {
			return fmt.Errorf("saving run %s: posting %d: %w", run.ID, i, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStore) ListRuns(limit int) ([]model.ScanRun, error) {
	rows, err := s.db.Query(
		"SELECT id, skills, job_count, created_at FROM runs ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []model.ScanRun
	for rows.Next() {
		var run model.ScanRun
		var skills, createdAt string
		if err := rows.Scan(&run.ID, &skills, &run.JobCount, &createdAt); err != nil {
			return nil, fmt.Errorf("listing runs: %w", err)
		}
		if skills != "" {
			run.Skills = strings.Split(skills, ",")
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			run.CreatedAt = t
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunPostings returns the postings of one run in their stored order.
func (s *SQLiteStore) RunPostings(runID string) ([]model.JobPosting, error) {
	rows, err := s.db.Query(
		"SELECT title, company, location, url, posted_at, skill, source FROM postings WHERE run_id = ? ORDER BY position", runID)
	if err != nil {
		return nil, fmt.Errorf("loading postings for %s: %w", runID, err)
	}
	defer rows.Close()

	var postings []model.JobPosting
	for rows.Next() {
		var p model.JobPosting
		var postedAt sql.NullString
		if err := rows.Scan(&p.Title, &p.Company, &p.Location, &p.URL, &postedAt, &p.Skill, &p.Source); err != nil {
			return nil, fmt.Errorf("loading postings for %s: %w", runID, err)
		}
		if postedAt.Valid {
			if t, err := time.Parse(time.RFC3339, postedAt.String); err == nil {
				p.PostedAt = &t
			}
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
