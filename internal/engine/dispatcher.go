package engine

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"dispatchctl/internal/model"
	"dispatchctl/internal/retry"
	"dispatchctl/internal/sched"
	"dispatchctl/internal/telemetry"
)

// Source supplies the random inputs of a run.
type Source interface {
	Priority() int
	ServiceTime() time.Duration
	ShouldFail(attempt int) bool
}

// MetricsSink receives one record per attempt and the final run summary.
// Sink errors never abort a run; they are reported to the Console.
type MetricsSink interface {
	RecordAttempt(ctx context.Context, j model.Job) error
	RecordRunSummary(ctx context.Context, s model.RunSummary) error
}

// Console receives a human-readable line per attempt and the final summary
// block. Purely observational.
type Console interface {
	Attempt(j model.Job)
	Summary(s model.RunSummary)
	Error(err error)
}

// Dispatcher drains a priority queue of jobs through a single execution
// slot, applying backoff and priority aging on failure.
type Dispatcher struct {
	Policy  retry.Policy
	Source  Source
	Sink    MetricsSink
	Console Console

	// Limiter optionally caps the dispatch rate. Nil means unlimited.
	Limiter *rate.Limiter

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func New(src Source, sink MetricsSink, con Console) *Dispatcher {
	return &Dispatcher{
		Policy:  retry.Default(),
		Source:  src,
		Sink:    sink,
		Console: con,
		now:     time.Now,
		sleep:   sleepCtx,
	}
}

// Run seeds the queue with the given specs, drains it to completion and
// returns the run summary. The only error condition is context
// cancellation; a cancelled run records no summary.
func (d *Dispatcher) Run(ctx context.Context, specs []model.JobSpec) (model.RunSummary, error) {
	started := d.now()
	q := d.seed(specs, started.UnixMilli())

	var (
		successes, failures                int
		totalWait, totalService, totalTurn int64
	)

	for {
		telemetry.QueueDepthGauge.Set(float64(q.Len()))

		j, ok := q.Pop()
		if !ok {
			break
		}

		if d.Limiter != nil {
			if err := d.Limiter.Wait(ctx); err != nil {
				return model.RunSummary{}, err
			}
		}

		// The backoff delay is charged to this attempt's wait time: the
		// enqueue timestamp was reset at re-admission, before the delay.
		if j.Attempt > 0 {
			backoff := d.Policy.Delay(j.Attempt)
			telemetry.BackoffSleepGauge.Set(float64(backoff.Milliseconds()))
			if err := d.sleep(ctx, backoff); err != nil {
				return model.RunSummary{}, err
			}
		}

		j.Status = model.StatusRunning
		j.StartTS = d.now().UnixMilli()
		j.WaitMs = j.StartTS - j.EnqueueTS

		if err := d.sleep(ctx, d.Source.ServiceTime()); err != nil {
			return model.RunSummary{}, err
		}
		failed := d.Source.ShouldFail(j.Attempt)

		j.EndTS = d.now().UnixMilli()
		j.ServiceMs = j.EndTS - j.StartTS
		j.TurnaroundMs = j.EndTS - j.EnqueueTS

		telemetry.AttemptCounter.Inc()

		if !failed {
			j.Status = model.StatusSuccess
			j.FailReason = ""
			successes++
			totalWait += j.WaitMs
			totalService += j.ServiceMs
			totalTurn += j.TurnaroundMs
			d.record(ctx, *j)
			telemetry.SuccessCounter.Inc()
			continue
		}

		j.Status = model.StatusFailed
		j.FailReason = model.FailReasonSimulated
		d.record(ctx, *j)

		if d.Policy.Retryable(j.Attempt, j.MaxRetries) {
			d.readmit(q, j)
			telemetry.RetryCounter.Inc()
		} else {
			failures++
			telemetry.ExhaustedCounter.Inc()
		}
	}

	finished := d.now()
	s := d.summarize(started, finished, successes, failures, totalWait, totalService, totalTurn)

	if err := d.Sink.RecordRunSummary(ctx, s); err != nil {
		d.Console.Error(err)
	}
	d.Console.Summary(s)
	return s, nil
}

// seed admits all initial jobs. Enqueue timestamps are backdated in strictly
// increasing submission order so the FIFO tie-break is well-defined for jobs
// created within the same millisecond, while still preceding any start
// timestamp.
func (d *Dispatcher) seed(specs []model.JobSpec, t0 int64) *sched.Queue {
	q := sched.NewQueue()
	n := int64(len(specs))
	for i, spec := range specs {
		q.Push(&model.Job{
			ExtID:      spec.ExtID,
			Priority:   d.Source.Priority(),
			MaxRetries: spec.MaxRetries,
			EnqueueTS:  t0 - n + int64(i) + 1,
			Status:     model.StatusPending,
		})
	}
	return q
}

// readmit resets the job for its next attempt: incremented attempt counter,
// aged priority, fresh enqueue timestamp.
func (d *Dispatcher) readmit(q *sched.Queue, j *model.Job) {
	j.Attempt++
	j.Status = model.StatusPending
	j.Priority = d.Policy.Boosted(j.Priority)
	j.EnqueueTS = d.now().UnixMilli()
	j.StartTS = 0
	j.EndTS = 0
	j.WaitMs = 0
	j.ServiceMs = 0
	j.TurnaroundMs = 0
	q.Push(j)
}

func (d *Dispatcher) record(ctx context.Context, j model.Job) {
	if err := d.Sink.RecordAttempt(ctx, j); err != nil {
		d.Console.Error(err)
	}
	d.Console.Attempt(j)
}

func (d *Dispatcher) summarize(started, finished time.Time, successes, failures int, totalWait, totalService, totalTurn int64) model.RunSummary {
	s := model.RunSummary{
		StartedAt:   started.UnixMilli(),
		FinishedAt:  finished.UnixMilli(),
		TotalJobs:   successes + failures,
		SuccessJobs: successes,
		FailedJobs:  failures,
	}
	if successes > 0 {
		s.AvgWaitMs = float64(totalWait) / float64(successes)
		s.AvgServiceMs = float64(totalService) / float64(successes)
		s.AvgTurnaroundMs = float64(totalTurn) / float64(successes)
	}
	elapsed := finished.Sub(started)
	if elapsed < time.Millisecond {
		elapsed = time.Millisecond
	}
	s.ThroughputPerS = float64(successes) / elapsed.Seconds()
	return s
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
