package sched

import (
	"sync/atomic"

	"github.com/hiverun/hive/internal/runtime/concurrency"
)

// defaultQueueCapacity bounds each local queue and the inject queue.
// concurrency.MPMCQueue is a fixed-capacity lock-free ring buffer
// (Vyukov's algorithm); its internal algorithm is treated as an external
// collaborator here, so we adopt that one concrete implementation
// rather than inventing an unbounded alternative.
const defaultQueueCapacity = 1 << 16

// runQueue wraps concurrency.MPMCQueue[Actor] with the push/pop
// vocabulary a scheduler needs: a single owner pushes (local queues) or
// any caller pushes (inject queue), and any worker may pop.
type runQueue struct {
	q   *concurrency.MPMCQueue[Actor]
	len int64 // atomic; tracked so termination can assert emptiness without a destructive peek
}

func newRunQueue(capacity uint64) *runQueue {
	if capacity == 0 {
		capacity = defaultQueueCapacity
	}
	return &runQueue{q: concurrency.NewMPMCQueue[Actor](capacity)}
}

// push enqueues an actor. Returns false if the queue is saturated;
// callers treat that as the scheduling hint being dropped.
func (rq *runQueue) push(a Actor) bool {
	if rq.q.Enqueue(a) {
		atomic.AddInt64(&rq.len, 1)
		return true
	}
	return false
}

// pop dequeues an actor, or returns (nil, false) if empty.
func (rq *runQueue) pop() (Actor, bool) {
	var a Actor
	if rq.q.Dequeue(&a) {
		atomic.AddInt64(&rq.len, -1)
		return a, true
	}
	return nil, false
}

// empty reports whether the queue is (momentarily) empty, via the
// length counter rather than a destructive dequeue-and-requeue.
func (rq *runQueue) empty() bool {
	return atomic.LoadInt64(&rq.len) <= 0
}
