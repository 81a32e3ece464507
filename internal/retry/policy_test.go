package retry

import (
	"testing"
	"time"

	"dispatchctl/internal/model"
)

func TestDelayDoublesFromBase(t *testing.T) {
	p := Policy{Base: 100 * time.Millisecond, Cap: time.Minute, Boost: 1}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 800 * time.Millisecond},
		{5, 1600 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := p.Delay(tt.attempt); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestDelayCapped(t *testing.T) {
	p := Policy{Base: 100 * time.Millisecond, Cap: 500 * time.Millisecond, Boost: 1}

	if got := p.Delay(3); got != 400*time.Millisecond {
		t.Errorf("Delay(3) = %v, want 400ms (below cap)", got)
	}
	if got := p.Delay(4); got != 500*time.Millisecond {
		t.Errorf("Delay(4) = %v, want 500ms (capped)", got)
	}
	if got := p.Delay(20); got != 500*time.Millisecond {
		t.Errorf("Delay(20) = %v, want 500ms (capped)", got)
	}
}

func TestDelayZeroForInitialAttempt(t *testing.T) {
	p := Default()
	if got := p.Delay(0); got != 0 {
		t.Errorf("Delay(0) = %v, want 0", got)
	}
}

func TestRetryableBoundary(t *testing.T) {
	p := Default()

	tests := []struct {
		attempt    int
		maxRetries int
		want       bool
	}{
		{0, 0, false}, // no retry budget: first failure is terminal
		{0, 3, true},
		{2, 3, true},
		{3, 3, false}, // attempt == max-retries: terminal
		{4, 3, false},
	}
	for _, tt := range tests {
		if got := p.Retryable(tt.attempt, tt.maxRetries); got != tt.want {
			t.Errorf("Retryable(%d, %d) = %v, want %v", tt.attempt, tt.maxRetries, got, tt.want)
		}
	}
}

func TestBoostedMonotonicAndClamped(t *testing.T) {
	p := Default()

	for prio := model.PriorityMin; prio <= model.PriorityMax; prio++ {
		got := p.Boosted(prio)
		if got < prio {
			t.Errorf("Boosted(%d) = %d, decreased", prio, got)
		}
		if got > model.PriorityMax {
			t.Errorf("Boosted(%d) = %d, exceeds maximum %d", prio, got, model.PriorityMax)
		}
	}

	if got := p.Boosted(model.PriorityMax); got != model.PriorityMax {
		t.Errorf("Boosted at maximum = %d, want clamp to %d", got, model.PriorityMax)
	}
	if got := p.Boosted(5); got != 6 {
		t.Errorf("Boosted(5) = %d, want 6", got)
	}
}
