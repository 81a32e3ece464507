// Package sim supplies the random inputs of a run: job priorities, simulated
// service durations, and per-attempt failure outcomes. It carries no
// scheduling policy.
package sim

import (
	"math"
	"math/rand/v2"
	"time"

	"dispatchctl/internal/model"
)

// Failure model: the base chance drops with each retry to mimic transient
// faults getting fixed, floored at a small positive minimum so success is
// never guaranteed.
const (
	failBase  = 0.20
	failDecay = 0.06
	failFloor = 0.02
)

// MinService is the lower bound on any drawn service duration.
const MinService = 30 * time.Millisecond

// Source draws priorities, service times and failure outcomes from a
// pseudo-random stream. Not safe for concurrent use.
type Source struct {
	rng    *rand.Rand
	mean   float64 // milliseconds
	stddev float64
}

// New returns a randomly seeded Source with normally distributed service
// times around mean with the given spread.
func New(mean, stddev time.Duration) *Source {
	return NewSeeded(mean, stddev, rand.Uint64())
}

// NewSeeded returns a deterministic Source for reproducible runs.
func NewSeeded(mean, stddev time.Duration, seed uint64) *Source {
	return &Source{
		rng:    rand.New(rand.NewPCG(seed, seed)),
		mean:   float64(mean.Milliseconds()),
		stddev: float64(stddev.Milliseconds()),
	}
}

// Priority draws a uniform scheduling priority in [PriorityMin, PriorityMax].
func (s *Source) Priority() int {
	return model.PriorityMin + s.rng.IntN(model.PriorityMax-model.PriorityMin+1)
}

// ServiceTime draws a simulated service duration, floored at MinService.
func (s *Source) ServiceTime() time.Duration {
	ms := s.rng.NormFloat64()*s.stddev + s.mean
	d := time.Duration(math.Round(ms)) * time.Millisecond
	if d < MinService {
		return MinService
	}
	return d
}

// ShouldFail decides the outcome of an execution attempt (0-indexed).
func (s *Source) ShouldFail(attempt int) bool {
	p := math.Max(failFloor, failBase-failDecay*float64(attempt))
	return s.rng.Float64() < p
}
