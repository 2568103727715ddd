package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/models"
)

// RunStore keeps operational bookkeeping for recommendation requests: one run
// row per request plus its log lines. Recommended records are never stored.
type RunStore struct {
	db *sql.DB
}

func NewRunStore(dbPath string) (*RunStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	store := &RunStore{db: db}
	if err := store.migrate(); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *RunStore) Close() error {
	return s.db.Close()
}

func (s *RunStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS search_runs (
		id TEXT PRIMARY KEY,
		location TEXT,
		search_url TEXT,
		started_at DATETIME,
		finished_at DATETIME,
		status TEXT,
		extracted INTEGER DEFAULT 0,
		ranked INTEGER DEFAULT 0,
		returned INTEGER DEFAULT 0,
		error_detail TEXT
	);

	CREATE TABLE IF NOT EXISTS search_logs (
		id INTEGER PRIMARY KEY,
		run_id TEXT,
		timestamp DATETIME,
		level TEXT,
		message TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON search_runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON search_runs(status, started_at);
	CREATE INDEX IF NOT EXISTS idx_logs_run ON search_logs(run_id, timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *RunStore) CreateRun(run *models.SearchRun) error {
	_, err := s.db.Exec(`
		INSERT INTO search_runs (id, location, search_url, started_at, status)
		VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Location, run.SearchURL, run.StartedAt, run.Status)
	return err
}

func (s *RunStore) UpdateRun(run *models.SearchRun) error {
	_, err := s.db.Exec(`
		UPDATE search_runs
		SET finished_at = ?, status = ?, extracted = ?, ranked = ?, returned = ?, error_detail = ?
		WHERE id = ?`,
		run.FinishedAt, run.Status, run.Extracted, run.Ranked, run.Returned, run.ErrorDetail, run.ID)
	return err
}

func (s *RunStore) Log(runID string, level models.LogLevel, message string) error {
	_, err := s.db.Exec(`
		INSERT INTO search_logs (run_id, timestamp, level, message)
		VALUES (?, ?, ?, ?)`,
		runID, time.Now(), level, message)
	return err
}

func (s *RunStore) RecentRuns(limit int) ([]models.SearchRun, error) {
	rows, err := s.db.Query(`
		SELECT id, location, search_url, started_at, finished_at, status,
			extracted, ranked, returned, COALESCE(error_detail, '')
		FROM search_runs
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.SearchRun
	for rows.Next() {
		var run models.SearchRun
		var finished sql.NullTime
		if err := rows.Scan(&run.ID, &run.Location, &run.SearchURL, &run.StartedAt,
			&finished, &run.Status, &run.Extracted, &run.Ranked, &run.Returned,
			&run.ErrorDetail); err != nil {
			return nil, err
		}
		if finished.Valid {
			run.FinishedAt = &finished.Time
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
