// Package storage persists minigolf rounds and hole results in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Scores are strokes, so every "best" query sorts ascending.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Round is one completed pass over a course.
type Round struct {
	ID        int64
	GameID    string // registry mode, e.g. "minigolf"
	CourseID  string
	Strokes   int
	Par       int
	CreatedAt time.Time
}

// Diff returns strokes relative to par.
func (r Round) Diff() int {
	return r.Strokes - r.Par
}

// HoleResult is one sunk ball.
type HoleResult struct {
	ID        int64
	CourseID  string
	Hole      int
	Par       int
	Strokes   int
	CreatedAt time.Time
}

// HoleBest aggregates every result recorded for one hole.
type HoleBest struct {
	CourseID   string
	Hole       int
	Par        int
	Best       int
	Played     int
	AvgStrokes float64
}

// CourseStats contains aggregated round statistics for a course.
type CourseStats struct {
	CourseID     string
	RoundsPlayed int
	BestRound    int
	AvgStrokes   float64
	HolesPlayed  int
	HolesInOne   int
	LastPlayed   time.Time
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

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			course_id TEXT NOT NULL,
			strokes INTEGER NOT NULL,
			par INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_best ON rounds(course_id, strokes ASC);

		CREATE TABLE IF NOT EXISTS hole_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			course_id TEXT NOT NULL,
			hole INTEGER NOT NULL,
			par INTEGER NOT NULL,
			strokes INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_hole_results_hole ON hole_results(course_id, hole);
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

// SaveRound records a finished round and returns its ID.
func (s *Store) SaveRound(r Round) (int64, error) {
	if r.Strokes <= 0 {
		return 0, fmt.Errorf("storage: invalid round strokes %d", r.Strokes)
	}
	result, err := s.db.Exec(
		"INSERT INTO rounds (game_id, course_id, strokes, par) VALUES (?, ?, ?, ?)",
		r.GameID, r.CourseID, r.Strokes, r.Par,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}
	return insertedID(result)
}

// SaveHole records a sunk ball and returns its ID.
func (s *Store) SaveHole(h HoleResult) (int64, error) {
	if h.Strokes <= 0 {
		return 0, fmt.Errorf("storage: invalid hole strokes %d", h.Strokes)
	}
	result, err := s.db.Exec(
		"INSERT INTO hole_results (course_id, hole, par, strokes) VALUES (?, ?, ?, ?)",
		h.CourseID, h.Hole, h.Par, h.Strokes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save hole: %w", err)
	}
	return insertedID(result)
}

func insertedID(result sql.Result) (int64, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestRounds returns the lowest rounds on a course, oldest first on ties.
func (s *Store) BestRounds(courseID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, course_id, strokes, par, created_at
		 FROM rounds
		 WHERE course_id = ?
		 ORDER BY strokes ASC, id ASC
		 LIMIT ?`,
		courseID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.CourseID, &r.Strokes, &r.Par, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// BestRound returns the lowest round on a course.
// ok is false when the course has no rounds.
func (s *Store) BestRound(courseID string) (strokes int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(strokes) FROM rounds WHERE course_id = ?",
		courseID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best round: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// HoleBests returns per-hole personal bests for a course, by hole number.
func (s *Store) HoleBests(courseID string) ([]HoleBest, error) {
	rows, err := s.db.Query(
		`SELECT hole, MAX(par), MIN(strokes), COUNT(*), AVG(strokes)
		 FROM hole_results
		 WHERE course_id = ?
		 GROUP BY hole
		 ORDER BY hole ASC`,
		courseID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query hole bests: %w", err)
	}
	defer rows.Close()

	var bests []HoleBest
	for rows.Next() {
		b := HoleBest{CourseID: courseID}
		if err := rows.Scan(&b.Hole, &b.Par, &b.Best, &b.Played, &b.AvgStrokes); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		bests = append(bests, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return bests, nil
}

// BestHole returns the fewest strokes ever taken on one hole.
// ok is false when the hole has never been completed.
func (s *Store) BestHole(courseID string, hole int) (strokes int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(strokes) FROM hole_results WHERE course_id = ? AND hole = ?",
		courseID, hole,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best hole: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// GetCourseStats retrieves aggregated statistics for one course.
func (s *Store) GetCourseStats(courseID string) (*CourseStats, error) {
	stats := &CourseStats{CourseID: courseID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(strokes), 0), COALESCE(AVG(strokes), 0), MAX(created_at)
		 FROM rounds WHERE course_id = ?`,
		courseID,
	).Scan(&stats.RoundsPlayed, &stats.BestRound, &stats.AvgStrokes, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get course stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	var holeLast any
	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN strokes = 1 THEN 1 ELSE 0 END), 0), MAX(created_at)
		 FROM hole_results WHERE course_id = ?`,
		courseID,
	).Scan(&stats.HolesPlayed, &stats.HolesInOne, &holeLast)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get hole stats: %w", err)
	}
	if t := parseTime(holeLast); t.After(stats.LastPlayed) {
		stats.LastPlayed = t
	}

	return stats, nil
}

// CourseIDs returns every course with at least one recorded hole, sorted.
func (s *Store) CourseIDs() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT course_id FROM hole_results
		 UNION
		 SELECT course_id FROM rounds
		 ORDER BY course_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list courses: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ids, nil
}

// ClearCourse deletes every round and hole result for a course.
func (s *Store) ClearCourse(courseID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM rounds WHERE course_id = ?", courseID); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM hole_results WHERE course_id = ?", courseID); err != nil {
		return fmt.Errorf("storage: cannot clear holes: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
