// Package storage keeps the captain's service record: one row per finished
// session in a SQLite database. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies. Universe and session state are never stored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/picotrek/internal/sst"
)

// Store manages the SQLite database connection for the service record.
type Store struct {
	db *sql.DB
}

// Record is one finished session.
type Record struct {
	ID                int64
	Outcome           string
	Stardate          float64 // Stardate when the session ended
	Days              float64 // Days the session lasted
	HostilesDestroyed int
	HostilesRemaining int
	BasesRemaining    int
	Energy            float64
	CreatedAt         time.Time
}

// Won reports whether the session ended in victory.
func (r Record) Won() bool {
	return r.Outcome == sst.OutcomeVictory.String()
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
		CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			stardate REAL NOT NULL,
			days REAL NOT NULL,
			hostiles_destroyed INTEGER NOT NULL DEFAULT 0,
			hostiles_remaining INTEGER NOT NULL DEFAULT 0,
			bases_remaining INTEGER NOT NULL DEFAULT 0,
			energy REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_records_outcome ON records(outcome);
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

// SaveRecord stores a finished session and returns its ID.
func (s *Store) SaveRecord(r Record) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO records
		 (outcome, stardate, days, hostiles_destroyed, hostiles_remaining, bases_remaining, energy)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Outcome, r.Stardate, r.Days, r.HostilesDestroyed, r.HostilesRemaining, r.BasesRemaining, r.Energy,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveSummary implements sst.Recorder.
func (s *Store) SaveSummary(sum sst.Summary) error {
	_, err := s.SaveRecord(Record{
		Outcome:           sum.Outcome.String(),
		Stardate:          sum.Stardate,
		Days:              sum.Days,
		HostilesDestroyed: sum.HostilesDestroyed,
		HostilesRemaining: sum.HostilesRemaining,
		BasesRemaining:    sum.BasesRemaining,
		Energy:            sum.Energy,
	})
	return err
}

// Ensure Store implements sst.Recorder
var _ sst.Recorder = (*Store)(nil)

// RecentRecords returns the latest records, newest first.
func (s *Store) RecentRecords(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, stardate, days, hostiles_destroyed, hostiles_remaining,
		        bases_remaining, energy, created_at
		 FROM records
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Outcome,
			&r.Stardate,
			&r.Days,
			&r.HostilesDestroyed,
			&r.HostilesRemaining,
			&r.BasesRemaining,
			&r.Energy,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats aggregates the whole service record.
type Stats struct {
	Games             int
	Victories         int
	HostilesDestroyed int
	FastestVictory    float64 // Days; zero when there is no victory yet
	LastPlayed        time.Time
}

// Stats returns aggregated figures over every record.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var fastest sql.NullFloat64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(hostiles_destroyed), 0),
		        MIN(CASE WHEN outcome = ? THEN days END)
		 FROM records`,
		sst.OutcomeVictory.String(), sst.OutcomeVictory.String(),
	).Scan(&stats.Games, &stats.Victories, &stats.HostilesDestroyed, &fastest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if fastest.Valid {
		stats.FastestVictory = fastest.Float64
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM records ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRecords deletes the whole service record.
func (s *Store) ClearRecords() error {
	if _, err := s.db.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
