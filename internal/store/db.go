package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type Store struct {
	DB *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// WAL keeps readers (reporting commands) from blocking a run in progress.
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec(`PRAGMA synchronous=NORMAL;`); err != nil {
		return nil, fmt.Errorf("set synchronous: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func runMigrations(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id TEXT PRIMARY KEY,
  started_at INTEGER NOT NULL,
  finished_at INTEGER NOT NULL,
  total_jobs INTEGER NOT NULL,
  success_jobs INTEGER NOT NULL,
  failed_jobs INTEGER NOT NULL,
  avg_wait_ms REAL NOT NULL,
  avg_service_ms REAL NOT NULL,
  avg_turnaround_ms REAL NOT NULL,
  throughput_jobs_per_s REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS attempts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  run_id TEXT NOT NULL,
  ext_id INTEGER NOT NULL,
  priority INTEGER NOT NULL,
  attempt INTEGER NOT NULL,
  status TEXT NOT NULL CHECK (status IN ('PENDING','RUNNING','SUCCESS','FAILED')),
  fail_reason TEXT NOT NULL DEFAULT '',
  enqueue_ts INTEGER NOT NULL,
  start_ts INTEGER NOT NULL,
  end_ts INTEGER NOT NULL,
  wait_ms INTEGER NOT NULL,
  service_ms INTEGER NOT NULL,
  turnaround_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_run ON attempts(run_id);

CREATE TABLE IF NOT EXISTS config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);

INSERT OR IGNORE INTO config(key,value) VALUES ('max_retries','2');
INSERT OR IGNORE INTO config(key,value) VALUES ('backoff_base_ms','100');
INSERT OR IGNORE INTO config(key,value) VALUES ('backoff_cap_ms','30000');
`
	_, err := db.Exec(schema)
	return err
}
