package sched

import "sync/atomic"

// applyControlMessage applies the effect of a single control message
// drained from this worker's mailbox. It returns whether processing the
// message placed new actors on the local queue.
func (w *Worker) applyControlMessage(msg schedMsg) (runQueueChanged bool) {
	switch msg.kind {
	case msgBlock:
		w.counters.addBlock()
		w.blockCount++
		if w.isCoordinator() &&
			w.runtime.detectQuiescence.Load() &&
			w.blockCount == int32(w.runtime.schedulerCount()) {
			w.runtime.broadcast(schedMsg{kind: msgCNF, token: w.ackToken})
		}

	case msgUnblock:
		w.counters.addUnblock()
		if w.asioStopped {
			_ = w.runtime.asio.Start()
			w.asioStopped = false
		}
		w.blockCount--
		// Bumping the token and zeroing the count cancels any in-flight
		// CNF/ACK round: stale ACKs for the old token are dropped below.
		w.ackToken++
		atomic.StoreInt32(&w.ackCount, 0)

	case msgCNF:
		w.runtime.sendTo(0, schedMsg{kind: msgACK, token: msg.token})

	case msgACK:
		if msg.token == w.ackToken {
			atomic.AddInt32(&w.ackCount, 1)
		}
		// Stale ACKs (mismatched token) are silently dropped.

	case msgTerminate:
		w.terminate.Store(true)

	case msgUnmuteActor:
		if w.unmuteSenders(msg.actor) {
			runQueueChanged = true
		}

	case msgNoisyASIO:
		w.asioNoisy.Store(true)

	case msgUnnoisyASIO:
		w.asioNoisy.Store(false)
	}
	return runQueueChanged
}
