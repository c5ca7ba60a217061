package sched

import "sync/atomic"

// muteEntry pairs a receiver with the set of senders currently muted
// on its behalf.
type muteEntry struct {
	receiver Actor
	senders  map[Actor]struct{}
}

// muteMap is private to its owning worker -- never accessed by other
// goroutines -- so it needs no internal synchronization.
type muteMap struct {
	byReceiver map[string]*muteEntry
}

func newMuteMap() *muteMap {
	return &muteMap{byReceiver: make(map[string]*muteEntry)}
}

func (mm *muteMap) empty() bool { return len(mm.byReceiver) == 0 }

// mute registers sender as muted against receiver's back-pressure.
// Pre-condition: sender != receiver, enforced as a fatal contract
// violation.
func (w *Worker) mute(sender, receiver Actor) {
	assertf(sender.ID() != receiver.ID(), "mute: sender and receiver are the same actor %q", sender.ID())

	entry, ok := w.muteMapping.byReceiver[receiver.ID()]
	if !ok {
		entry = &muteEntry{receiver: receiver, senders: make(map[Actor]struct{})}
		w.muteMapping.byReceiver[receiver.ID()] = entry
	}
	if _, already := entry.senders[sender]; !already {
		entry.senders[sender] = struct{}{}
		atomic.AddInt64(sender.Muted(), 1)
		w.counters.addMute()
	}
}

// unmuteSenders drops the mute count for every sender muted against
// receiver, rescheduling any that reach zero. Returns true iff any
// actor was rescheduled locally as a result.
func (w *Worker) unmuteSenders(receiver Actor) bool {
	entry, ok := w.muteMapping.byReceiver[receiver.ID()]
	if !ok {
		return false
	}
	delete(w.muteMapping.byReceiver, receiver.ID())

	rescheduledAny := false
	for sender := range entry.senders {
		if atomic.AddInt64(sender.Muted(), -1) != 0 {
			continue
		}
		if sender.Unscheduled() {
			continue
		}
		w.engine.UnmuteActor(sender)
		w.local.push(sender)
		w.counters.addUnmute()
		rescheduledAny = true
		// Broadcast unconditionally, even when sender was only ever a
		// sender on this worker, since some other scheduler's mute map
		// may also hold it as a receiver key.
		w.runtime.startGlobalUnmute(sender)
	}
	return rescheduledAny
}

// startGlobalUnmute broadcasts UNMUTE_ACTOR to every worker so that any
// OTHER scheduler holding actor as a receiver key in its own mute map can
// run unmuteSenders for it too (the transitive sender/receiver case).
func (rt *Runtime) startGlobalUnmute(actor Actor) {
	for _, w := range rt.workers {
		w.mailbox.send(schedMsg{kind: msgUnmuteActor, actor: actor})
	}
}
