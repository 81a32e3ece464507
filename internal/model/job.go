package model

// Job lifecycle states.
const (
	StatusPending = "PENDING"
	StatusRunning = "RUNNING"
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Priority bounds. Retry boosts never push a job above PriorityMax.
const (
	PriorityMin = 1
	PriorityMax = 10
)

// FailReasonSimulated tags attempts that failed the simulated outcome draw.
const FailReasonSimulated = "SIMULATED_FAILURE"

// JobSpec is the submission input for one job. Priority and service time
// are drawn at admission/execution time, not submitted.
type JobSpec struct {
	ExtID      int
	MaxRetries int
}

// Job is one unit of work across all its attempts. The external ID is stable
// across retries; EnqueueTS, the timing fields and Status are per-attempt.
// Timestamps are Unix milliseconds.
type Job struct {
	ExtID      int
	Priority   int
	Attempt    int
	MaxRetries int

	EnqueueTS int64
	StartTS   int64
	EndTS     int64

	WaitMs       int64
	ServiceMs    int64
	TurnaroundMs int64

	Status     string
	FailReason string
}

// RunSummary aggregates one full dispatch run. Averages cover successful
// jobs only; terminally failed jobs count toward TotalJobs and FailedJobs.
type RunSummary struct {
	StartedAt  int64
	FinishedAt int64

	TotalJobs   int
	SuccessJobs int
	FailedJobs  int

	AvgWaitMs       float64
	AvgServiceMs    float64
	AvgTurnaroundMs float64
	ThroughputPerS  float64
}
