package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"dispatchctl/internal/model"
)

// RunRecorder binds attempt records to a single run row. It satisfies the
// engine's MetricsSink. The run ID is assigned up front so attempt rows can
// reference their run while it is still in flight.
type RunRecorder struct {
	store *Store
	RunID string
}

func (s *Store) NewRunRecorder() *RunRecorder {
	return &RunRecorder{store: s, RunID: uuid.NewString()}
}

func (r *RunRecorder) RecordAttempt(ctx context.Context, j model.Job) error {
	_, err := r.store.DB.ExecContext(ctx, `
INSERT INTO attempts (run_id, ext_id, priority, attempt, status, fail_reason,
                      enqueue_ts, start_ts, end_ts, wait_ms, service_ms, turnaround_ms)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, r.RunID, j.ExtID, j.Priority, j.Attempt, j.Status, j.FailReason,
		j.EnqueueTS, j.StartTS, j.EndTS, j.WaitMs, j.ServiceMs, j.TurnaroundMs)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

func (r *RunRecorder) RecordRunSummary(ctx context.Context, s model.RunSummary) error {
	_, err := r.store.DB.ExecContext(ctx, `
INSERT INTO runs (id, started_at, finished_at, total_jobs, success_jobs, failed_jobs,
                  avg_wait_ms, avg_service_ms, avg_turnaround_ms, throughput_jobs_per_s)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, r.RunID, s.StartedAt, s.FinishedAt, s.TotalJobs, s.SuccessJobs, s.FailedJobs,
		s.AvgWaitMs, s.AvgServiceMs, s.AvgTurnaroundMs, s.ThroughputPerS)
	if err != nil {
		return fmt.Errorf("record run summary: %w", err)
	}
	return nil
}
