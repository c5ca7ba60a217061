package sched

import (
	stdrt "runtime"
	"sync/atomic"
	"time"
)

// cpuPause is the idle step used when Config.NoYield is set. Go has no
// portable CPU pause instruction, so it calls runtime.Gosched exactly as
// osYield does; it does not busy-spin.
func cpuPause() {
	stdrt.Gosched()
}

// osYield yields the current goroutine's turn, the default idle
// behavior.
func osYield() {
	stdrt.Gosched()
}

// quiescent runs the two-phase CNF/ACK protocol that confirms the whole
// pool, and the ASIO backend, have gone idle. t1/t2 are accepted for
// signature parity with the caller but not otherwise consulted here;
// the steal-gating elapsed-time check lives in steal() itself.
func (w *Worker) quiescent(t1, t2 time.Time) bool {
	if w.terminate.Load() {
		return true
	}

	if w.isCoordinator() && atomic.LoadInt32(&w.ackCount) == int32(w.runtime.schedulerCount()) {
		if w.asioStopped {
			w.runtime.logQuiescent()
			w.runtime.broadcast(schedMsg{kind: msgTerminate})
			w.ackToken++
			atomic.StoreInt32(&w.ackCount, 0)
		} else if err := w.runtime.asio.Stop(); err == nil {
			// ASIO stopped cleanly: no noisy registrants remain.
			w.asioStopped = true
			w.ackToken++
			atomic.StoreInt32(&w.ackCount, 0)
			// The second CNF/ACK round confirms no worker has since
			// unblocked (and thereby implicitly restarted ASIO).
			w.runtime.broadcast(schedMsg{kind: msgCNF, token: w.ackToken})
		} else {
			w.runtime.logASIOStopFailed(err)
		}
	}

	if w.runtime.cfg.NoYield {
		cpuPause()
	} else {
		osYield()
	}

	return false
}
