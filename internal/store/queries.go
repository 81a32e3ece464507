package store

import (
	"context"

	"dispatchctl/internal/model"
)

// Run is a persisted run summary row.
type Run struct {
	ID string
	model.RunSummary
}

func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	q := `
		SELECT id, started_at, finished_at, total_jobs, success_jobs, failed_jobs,
		       avg_wait_ms, avg_service_ms, avg_turnaround_ms, throughput_jobs_per_s
		FROM runs
		ORDER BY started_at DESC
	`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.StartedAt, &r.FinishedAt, &r.TotalJobs, &r.SuccessJobs, &r.FailedJobs,
			&r.AvgWaitMs, &r.AvgServiceMs, &r.AvgTurnaroundMs, &r.ThroughputPerS,
		); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// ListAttempts returns a run's attempt records in the order they were
// recorded, which is the order the dispatcher completed them.
func (s *Store) ListAttempts(ctx context.Context, runID string) ([]model.Job, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT ext_id, priority, attempt, status, fail_reason,
		       enqueue_ts, start_ts, end_ts, wait_ms, service_ms, turnaround_ms
		FROM attempts
		WHERE run_id = ?
		ORDER BY id ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Job
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(
			&j.ExtID, &j.Priority, &j.Attempt, &j.Status, &j.FailReason,
			&j.EnqueueTS, &j.StartTS, &j.EndTS, &j.WaitMs, &j.ServiceMs, &j.TurnaroundMs,
		); err != nil {
			return nil, err
		}
		result = append(result, j)
	}
	return result, rows.Err()
}
