package engine

import (
	"bytes"
	"strings"
	"testing"

	"dispatchctl/internal/model"
)

func TestPrinterAttemptLine(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}

	p.Attempt(model.Job{
		ExtID: 7, Priority: 9, Attempt: 1,
		WaitMs: 120, ServiceMs: 310, TurnaroundMs: 430,
		Status: model.StatusFailed, FailReason: model.FailReasonSimulated,
	})

	got := buf.String()
	want := "[job 7 | prio=9 | att=1] wait=120ms, service=310ms, turn=430ms -> FAILED (SIMULATED_FAILURE)\n"
	if got != want {
		t.Errorf("Attempt line mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestPrinterOmitsEmptyFailReason(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}

	p.Attempt(model.Job{ExtID: 1, Status: model.StatusSuccess})

	if strings.Contains(buf.String(), "(") {
		t.Errorf("Success line should carry no reason suffix: %q", buf.String())
	}
}

func TestPrinterSummaryBlock(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}

	p.Summary(model.RunSummary{
		TotalJobs: 12, SuccessJobs: 11, FailedJobs: 1,
		AvgWaitMs: 52.5, AvgServiceMs: 301.25, AvgTurnaroundMs: 353.75,
		ThroughputPerS: 2.87,
	})

	out := buf.String()
	for _, want := range []string{
		"=== RUN SUMMARY ===",
		"Total jobs: 12",
		"Success:    11",
		"Failed:     1",
		"52.50 ms",
		"301.25 ms",
		"353.75 ms",
		"2.87 jobs/s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary block missing %q:\n%s", want, out)
		}
	}
}
