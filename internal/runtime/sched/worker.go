package sched

import (
	"sync/atomic"
)

// Worker is one scheduler per OS thread (here, one per pinned goroutine).
type Worker struct {
	id      int
	runtime *Runtime
	engine  Engine
	ctx     *Context

	local   *runQueue
	mailbox *mailbox

	// blockCount is maintained on every worker even though only the
	// coordinator's value is ever consulted.
	blockCount int32

	ackToken uint64
	ackCount int32

	terminate   atomic.Bool
	asioStopped bool
	asioNoisy   atomic.Bool

	lastVictim int

	muteMapping *muteMap

	counters workerCounters

	// tid stands in for the OS thread id the source tracks; Go gives
	// goroutines no portable OS thread identity without cgo, so this is
	// simply the worker's own index, used only for log correlation.
	tid int
	cpu int
}

func newWorker(id int, rt *Runtime) *Worker {
	w := &Worker{
		id:          id,
		runtime:     rt,
		engine:      rt.cfg.Engine,
		local:       newRunQueue(defaultQueueCapacity),
		mailbox:     newMailbox(),
		muteMapping: newMuteMap(),
		lastVictim:  id,
		tid:         id,
		cpu:         id,
	}
	w.ctx = &Context{WorkerID: id, w: w}
	return w
}

func (w *Worker) isCoordinator() bool { return w.id == 0 }

// run is the main worker loop: run whatever's scheduled, steal when
// idle, block and eventually terminate when the whole pool is idle.
func (w *Worker) run() {
	w.logStarted()
	actor, _ := popAny(w)

	for {
		if w.drainMailbox() && actor == nil {
			actor, _ = popAny(w)
		}

		if actor == nil {
			var ok bool
			actor, ok = w.steal()
			if !ok {
				assertf(w.localEmpty(), "worker %d terminating with non-empty local queue", w.id)
				w.logTerminated()
				return
			}
		}

		reschedule := w.engine.RunActor(w.ctx, actor, BATCH)
		follow, _ := popAny(w)

		switch {
		case reschedule && follow != nil:
			// FIFO fairness: the just-run actor goes to the tail,
			// the follow-on actor runs next.
			w.local.push(actor)
			actor = follow
		case reschedule && follow == nil:
			// Hot path: nothing else waiting, keep running the same
			// actor.
		default:
			actor = follow
		}
	}
}

func (w *Worker) localEmpty() bool {
	return w.local.empty()
}

// popAny tries the inject queue first to bound the latency external
// producers see, then the worker's own local queue.
func popAny(w *Worker) (Actor, bool) {
	if a, ok := w.runtime.inject.pop(); ok {
		return a, true
	}
	return w.local.pop()
}

func (w *Worker) drainMailbox() (runQueueChanged bool) {
	for _, msg := range w.mailbox.drainAll() {
		if w.applyControlMessage(msg) {
			runQueueChanged = true
		}
	}
	return runQueueChanged
}
