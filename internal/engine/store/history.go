// Package store persists match history (SQLite) and candidate profiles (Postgres).
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/anatolykoptev/go_jdmatch/internal/engine"
	"github.com/anatolykoptev/go_jdmatch/internal/engine/jdmatch"
	_ "modernc.org/sqlite"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	maxTitleRunes       = 120
)

// ErrNotFound is returned when a history entry or profile does not exist.
var ErrNotFound = errors.New("not found")

// HistoryEntry is a saved match, summarized for listing.
type HistoryEntry struct {
	ID            int64    `json:"id"`
	Candidate     string   `json:"candidate,omitempty"`
	Title         string   `json:"title,omitempty"`
	JobURL        string   `json:"job_url,omitempty"`
	Score         int      `json:"score"`
	Grade         string   `json:"grade"`
	MissingSkills []string `json:"missing_skills"`
	CreatedAt     string   `json:"created_at"`
}

// HistoryRecord is a history entry with the full stored result.
type HistoryRecord struct {
	Entry  HistoryEntry    `json:"entry"`
	Result *jdmatch.Result `json:"result"`
}

// HistoryFilter narrows ListMatches.
type HistoryFilter struct {
	Limit    int
	MinScore int
}

var (
	historyDB   *sql.DB
	historyOnce sync.Once
	historyErr  error
)

// historyPath resolves the database location: HISTORY_DB_PATH or $HOME/.go_jdmatch/history.db.
func historyPath() string {
	if p := engine.Cfg.HistoryDBPath; p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".go_jdmatch", "history.db")
}

// OpenHistory opens (or creates) the SQLite history database.
func OpenHistory() (*sql.DB, error) {
	historyOnce.Do(func() {
		dbPath := historyPath()
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			historyErr = fmt.Errorf("history: mkdir %s: %w", filepath.Dir(dbPath), err)
			return
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			historyErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initHistorySchema(db); err != nil {
			db.Close()
			historyErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		historyDB = db
	})
	return historyDB, historyErr
}

func initHistorySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS matches (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		candidate      TEXT,
		title          TEXT,
		job_url        TEXT,
		score          INTEGER NOT NULL,
		grade          TEXT NOT NULL,
		missing_skills TEXT NOT NULL,
		result         TEXT NOT NULL,
		created_at     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_matches_score ON matches(score)`)
	return err
}

// SaveMatch records a match result and returns its history id.
func SaveMatch(ctx context.Context, candidate string, posting *engine.Posting, r *jdmatch.Result) (int64, error) {
	if r == nil {
		return 0, errors.New("history: nil result")
	}
	db, err := OpenHistory()
	if err != nil {
		return 0, err
	}

	missing, err := json.Marshal(r.MissingSkills)
	if err != nil {
		return 0, fmt.Errorf("history: encode missing skills: %w", err)
	}
	full, err := json.Marshal(r)
	if err != nil {
		return 0, fmt.Errorf("history: encode result: %w", err)
	}

	var title, jobURL string
	if posting != nil {
		title = engine.TruncateRunes(engine.PostingTitle(posting.Title, posting.Text), maxTitleRunes, "")
		jobURL = posting.URL
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO matches (candidate, title, job_url, score, grade, missing_skills, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		candidate, title, jobURL, r.Score, r.Grade, string(missing), string(full),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("history: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("history: last id: %w", err)
	}
	engine.IncrHistoryWrites()
	return id, nil
}

// ListMatches returns saved matches newest first, with the total count matching the filter.
func ListMatches(ctx context.Context, f HistoryFilter) ([]HistoryEntry, int, error) {
	db, err := OpenHistory()
	if err != nil {
		return nil, 0, err
	}

	limit := clampLimit(f.Limit)

	rows, err := db.QueryContext(ctx,
		`SELECT id, candidate, title, job_url, score, grade, missing_skills, created_at
		 FROM matches WHERE score >= ? ORDER BY id DESC LIMIT ?`,
		f.MinScore, limit,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	entries := []HistoryEntry{}
	for rows.Next() {
		e, _, err := scanEntry(rows.Scan, false)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("history: rows: %w", err)
	}

	var total int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches WHERE score >= ?`, f.MinScore).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("history: count: %w", err)
	}
	return entries, total, nil
}

// GetMatch loads one saved match including its full result.
func GetMatch(ctx context.Context, id int64) (*HistoryRecord, error) {
	db, err := OpenHistory()
	if err != nil {
		return nil, err
	}
	row := db.QueryRowContext(ctx,
		`SELECT id, candidate, title, job_url, score, grade, missing_skills, created_at, result
		 FROM matches WHERE id = ?`, id)

	e, result, err := scanEntry(row.Scan, true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("history %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &HistoryRecord{Entry: e, Result: result}, nil
}

// clampLimit applies the listing default and caps at maxHistoryLimit.
func clampLimit(n int) int {
	switch {
	case n <= 0:
		return defaultHistoryLimit
	case n > maxHistoryLimit:
		return maxHistoryLimit
	}
	return n
}

// scanEntry reads one row; withResult expects the result column last.
func scanEntry(scan func(dest ...any) error, withResult bool) (HistoryEntry, *jdmatch.Result, error) {
	var e HistoryEntry
	var candidate, title, jobURL sql.NullString
	var missing, result string

	dest := []any{&e.ID, &candidate, &title, &jobURL, &e.Score, &e.Grade, &missing, &e.CreatedAt}
	if withResult {
		dest = append(dest, &result)
	}
	if err := scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, nil, err
		}
		return e, nil, fmt.Errorf("history: scan: %w", err)
	}
	e.Candidate = candidate.String
	e.Title = title.String
	e.JobURL = jobURL.String
	if err := json.Unmarshal([]byte(missing), &e.MissingSkills); err != nil || e.MissingSkills == nil {
		e.MissingSkills = []string{}
	}

	if !withResult {
		return e, nil, nil
	}
	var r jdmatch.Result
	if err := json.Unmarshal([]byte(result), &r); err != nil {
		return e, nil, fmt.Errorf("history: decode result: %w", err)
	}
	return e, &r, nil
}
