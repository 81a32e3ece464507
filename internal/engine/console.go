package engine

import (
	"fmt"
	"io"

	"dispatchctl/internal/model"
)

// Printer writes the per-attempt lines and the summary block to Out.
type Printer struct {
	Out io.Writer
}

func (p *Printer) Attempt(j model.Job) {
	fmt.Fprintf(p.Out, "[job %d | prio=%d | att=%d] wait=%dms, service=%dms, turn=%dms -> %s",
		j.ExtID, j.Priority, j.Attempt, j.WaitMs, j.ServiceMs, j.TurnaroundMs, j.Status)
	if j.FailReason != "" {
		fmt.Fprintf(p.Out, " (%s)", j.FailReason)
	}
	fmt.Fprintln(p.Out)
}

func (p *Printer) Summary(s model.RunSummary) {
	fmt.Fprintf(p.Out, "\n=== RUN SUMMARY ===\n")
	fmt.Fprintf(p.Out, "Total jobs: %d\n", s.TotalJobs)
	fmt.Fprintf(p.Out, "Success:    %d\n", s.SuccessJobs)
	fmt.Fprintf(p.Out, "Failed:     %d\n", s.FailedJobs)
	fmt.Fprintf(p.Out, "Avg Wait:   %.2f ms\n", s.AvgWaitMs)
	fmt.Fprintf(p.Out, "Avg Service:%.2f ms\n", s.AvgServiceMs)
	fmt.Fprintf(p.Out, "Avg Turn:   %.2f ms\n", s.AvgTurnaroundMs)
	fmt.Fprintf(p.Out, "Throughput: %.2f jobs/s\n", s.ThroughputPerS)
}

func (p *Printer) Error(err error) {
	fmt.Fprintln(p.Out, "Sink error:", err)
}
