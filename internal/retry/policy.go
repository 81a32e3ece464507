// Package retry holds the post-failure decision logic: whether a failed
// attempt may run again, how long to back off first, and how the job's
// priority ages so retried work is not starved by fresh arrivals.
package retry

import (
	"time"

	"dispatchctl/internal/model"
)

// Policy computes retry decisions. The zero value disables backoff and
// priority aging; use Default for the standard configuration.
type Policy struct {
	// Base is the delay before the first retry. Each further retry doubles it.
	Base time.Duration
	// Cap bounds any single backoff delay. Zero means uncapped.
	Cap time.Duration
	// Boost is added to a job's priority on each re-admission, clamped to
	// model.PriorityMax.
	Boost int
}

// Default returns the standard policy: 100ms doubling backoff capped at 30s,
// +1 priority per retry.
func Default() Policy {
	return Policy{Base: 100 * time.Millisecond, Cap: 30 * time.Second, Boost: 1}
}

// Retryable reports whether a job that failed the given attempt (0-indexed)
// may be re-admitted. A job whose attempt equals its retry limit is terminal.
func (p Policy) Retryable(attempt, maxRetries int) bool {
	return attempt < maxRetries
}

// Delay returns the backoff before retry attempt n (1-indexed):
// Base, 2*Base, 4*Base, ... capped at Cap.
func (p Policy) Delay(attempt int) time.Duration {
	if attempt < 1 || p.Base <= 0 {
		return 0
	}
	d := p.Base << (attempt - 1)
	// Guard shift overflow for absurd attempt counts.
	if d < p.Base {
		d = p.Cap
	}
	if p.Cap > 0 && d > p.Cap {
		d = p.Cap
	}
	return d
}

// Boosted returns the aged priority for a re-admitted job.
func (p Policy) Boosted(priority int) int {
	priority += p.Boost
	if priority > model.PriorityMax {
		return model.PriorityMax
	}
	return priority
}
