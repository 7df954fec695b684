// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one finished attempt at a maze.
type Run struct {
	ID         string
	Mode       string
	Difficulty string
	Rows       int
	Cols       int
	Won        bool
	Ranked     bool
	Elapsed    time.Duration
	Moves      int
	Score      int
	CreatedAt  time.Time
}

// RunFromSummary converts a game's run summary into a storable Run.
func RunFromSummary(s core.RunSummary) Run {
	return Run{
		Mode:       s.Mode,
		Difficulty: s.Difficulty,
		Rows:       s.Rows,
		Cols:       s.Cols,
		Won:        s.Won,
		Ranked:     s.Ranked,
		Elapsed:    s.Elapsed,
		Moves:      s.Moves,
		Score:      s.Score,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			ranked INTEGER NOT NULL DEFAULT 1,
			elapsed_ms INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_difficulty ON runs(difficulty);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(difficulty, won, ranked, elapsed_ms);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const timeLayout = "2006-01-02 15:04:05.000000"

// SaveRun records a finished run and returns its generated id.
// A zero CreatedAt is filled with the current time.
func (s *Store) SaveRun(r Run) (string, error) {
	r.ID = uuid.NewString()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, mode, difficulty, rows, cols, won, ranked, elapsed_ms, moves, score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Mode, r.Difficulty, r.Rows, r.Cols,
		r.Won, r.Ranked, r.Elapsed.Milliseconds(), r.Moves, r.Score,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return r.ID, nil
}

const runColumns = `id, mode, difficulty, rows, cols, won, ranked, elapsed_ms, moves, score, created_at`

// BestRuns returns the fastest ranked wins for a difficulty.
func (s *Store) BestRuns(difficulty string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE difficulty = ? AND won = 1 AND ranked = 1
		 ORDER BY elapsed_ms ASC, score DESC, created_at ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns returns the latest runs across all difficulties, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var elapsedMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Mode, &r.Difficulty, &r.Rows, &r.Cols,
			&r.Won, &r.Ranked, &elapsedMS, &r.Moves, &r.Score, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTimestamp handles both time.Time and string column values.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// BestTime returns the fastest ranked win for a difficulty.
// ok is false when no such run exists.
func (s *Store) BestTime(difficulty string) (best time.Duration, ok bool, err error) {
	var ms sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(elapsed_ms) FROM runs WHERE difficulty = ? AND won = 1 AND ranked = 1",
		difficulty,
	).Scan(&ms)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !ms.Valid {
		return 0, false, nil
	}

	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// ClearRuns deletes all runs for a difficulty, or every run when
// difficulty is empty.
func (s *Store) ClearRuns(difficulty string) error {
	var err error
	if difficulty == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE difficulty = ?", difficulty)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// DifficultyStats contains aggregated statistics for one difficulty.
// Times only consider ranked wins.
type DifficultyStats struct {
	Difficulty string
	Played     int
	Won        int
	BestTime   time.Duration
	AvgTime    time.Duration
	BestScore  int
	LastPlayed time.Time
}

// WinRate returns Won/Played, or 0 when nothing was played.
func (d DifficultyStats) WinRate() float64 {
	if d.Played == 0 {
		return 0
	}
	return float64(d.Won) / float64(d.Played)
}

const statsQuery = `
	SELECT difficulty,
	       COUNT(*),
	       COALESCE(SUM(won), 0),
	       COALESCE(MIN(CASE WHEN won = 1 AND ranked = 1 THEN elapsed_ms END), 0),
	       COALESCE(AVG(CASE WHEN won = 1 AND ranked = 1 THEN elapsed_ms END), 0),
	       COALESCE(MAX(score), 0),
	       MAX(created_at)
	FROM runs`

// GetDifficultyStats retrieves aggregated statistics for a difficulty.
// A difficulty with no runs yields zero stats, not an error.
func (s *Store) GetDifficultyStats(difficulty string) (*DifficultyStats, error) {
	rows, err := s.db.Query(statsQuery+` WHERE difficulty = ? GROUP BY difficulty`, difficulty)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get difficulty stats: %w", err)
	}

	stats, err := scanStats(rows)
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return &DifficultyStats{Difficulty: difficulty}, nil
	}
	return stats[0], nil
}

// GetAllDifficultyStats retrieves statistics for every difficulty that has runs.
func (s *Store) GetAllDifficultyStats() (map[string]*DifficultyStats, error) {
	rows, err := s.db.Query(statsQuery + ` GROUP BY difficulty`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all difficulty stats: %w", err)
	}

	list, err := scanStats(rows)
	if err != nil {
		return nil, err
	}
	stats := make(map[string]*DifficultyStats, len(list))
	for _, st := range list {
		stats[st.Difficulty] = st
	}
	return stats, nil
}

func scanStats(rows *sql.Rows) ([]*DifficultyStats, error) {
	defer rows.Close()

	var out []*DifficultyStats
	for rows.Next() {
		var st DifficultyStats
		var bestMS int64
		var avgMS float64
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Played, &st.Won, &bestMS, &avgMS, &st.BestScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(bestMS) * time.Millisecond
		st.AvgTime = time.Duration(avgMS * float64(time.Millisecond))
		st.LastPlayed = parseTimestamp(lastPlayed)
		out = append(out, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// RunByID retrieves a run by id. It returns ErrNotFound if there is none.
func (s *Store) RunByID(id string) (*Run, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrNotFound
	}
	return &runs[0], nil
}

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("storage: not found")
