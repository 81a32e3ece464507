package sched

import (
	"container/heap"

	"dispatchctl/internal/model"
)

// Queue holds pending jobs and hands them out in dispatch order: higher
// priority first, earlier enqueue timestamp on a priority tie. It never
// mutates job fields. Not safe for concurrent use; the dispatcher owns it.
type Queue struct {
	h jobHeap
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push admits a pending job.
func (q *Queue) Push(j *model.Job) {
	heap.Push(&q.h, j)
}

// Pop removes and returns the next job to dispatch. The second return is
// false when the queue is empty.
func (q *Queue) Pop() (*model.Job, bool) {
	if q.h.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&q.h).(*model.Job), true
}

// Len reports the number of pending jobs.
func (q *Queue) Len() int {
	return q.h.Len()
}

type jobHeap []*model.Job

func (h jobHeap) Len() int { return len(h) }

func (h jobHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority > h[j].Priority
	}
	return h[i].EnqueueTS < h[j].EnqueueTS
}

func (h jobHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *jobHeap) Push(x any) { *h = append(*h, x.(*model.Job)) }

func (h *jobHeap) Pop() any {
	old := *h
	n := len(old)
	j := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return j
}
