package sched

import "time"

// chooseVictim advances lastVictim one slot backward (wrapping, skipping
// self) and returns that candidate worker, a rotating reverse linear
// scan. The caller is responsible for noticing a full rotation: after
// schedulerCount-1 consecutive failed attempts the rotation has come
// full circle without finding work, which steal() reports by resetting
// lastVictim to self.
func (w *Worker) chooseVictim() *Worker {
	n := w.runtime.schedulerCount()
	if n <= 1 {
		return nil
	}
	idx := w.lastVictim
	idx--
	if idx < 0 {
		idx = n - 1
	}
	if idx == w.id {
		idx--
		if idx < 0 {
			idx = n - 1
		}
	}
	w.lastVictim = idx
	return w.runtime.workers[idx]
}

// popAnyFrom tries the inject queue first, then victim's local queue,
// the same preference order a worker applies to itself, applied to a
// victim rather than self, so stealing never starves inject-queue
// producers.
func popAnyFrom(rt *Runtime, victim *Worker) (Actor, bool) {
	if a, ok := rt.inject.pop(); ok {
		return a, true
	}
	return victim.local.pop()
}

// steal hunts for runnable work across the pool, falling back to the
// BLOCK protocol once every victim comes up empty. Returns (nil, false)
// when the worker should terminate (quiescence reached).
func (w *Worker) steal() (Actor, bool) {
	stealStart := time.Now()
	blockSent := false
	rotationCount := 0 // full-rotation detector, resets lastVictim
	stealAttempts := 0 // BLOCK-emission gate, independent of rotationCount
	n := w.runtime.schedulerCount()

	for {
		var (
			actor  Actor
			ok     bool
			victim *Worker
		)
		if victim = w.chooseVictim(); victim != nil {
			actor, ok = popAnyFrom(w.runtime, victim)
			if !ok {
				rotationCount++
				if rotationCount >= n-1 {
					w.lastVictim = w.id
					rotationCount = 0
				}
			}
		} else {
			actor, ok = w.runtime.inject.pop()
		}

		if ok {
			w.counters.addSteal()
			if victim != nil {
				w.logStole(victim, actor)
			}
			if blockSent {
				w.runtime.sendTo(0, schedMsg{kind: msgUnblock})
				w.logUnblocked()
			}
			return actor, true
		}
		w.counters.addStealFail()

		// Drain our own mailbox; UNMUTE_ACTOR processing may have
		// placed actors on our local queue.
		if w.drainMailbox() {
			if a, ok := popAnyFrom(w.runtime, w); ok {
				w.counters.addSteal()
				if blockSent {
					w.runtime.sendTo(0, schedMsg{kind: msgUnblock})
					w.logUnblocked()
				}
				return a, true
			}
		}

		if w.quiescent(stealStart, time.Now()) {
			return nil, false
		}

		if !blockSent {
			stealAttempts++
			if stealAttempts >= n &&
				!w.asioNoisy.Load() &&
				time.Since(stealStart) > w.runtime.cfg.StealGate &&
				w.muteMapping.empty() {
				w.runtime.sendTo(0, schedMsg{kind: msgBlock})
				w.logBlocked()
				blockSent = true
			}
		}
	}
}
