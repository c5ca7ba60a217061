package actorengine

import "github.com/hiverun/hive/internal/runtime/sched"

// engine implements sched.Engine: RunActor drains up to batch messages
// from an ActorRef's mailbox via its Behavior.
type engine struct {
	sys *System
}

// RunActor satisfies sched.Engine.
func (e *engine) RunActor(sctx *sched.Context, a sched.Actor, batch int) bool {
	ref, ok := a.(*ActorRef)
	if !ok {
		return false
	}
	ctx := &Context{sys: e.sys, ref: ref, sctx: sctx}

	for i := 0; i < batch; i++ {
		msg, ok := ref.mailbox.dequeue()
		if !ok {
			break
		}
		if err := ref.behavior.Receive(ctx, msg); err != nil {
			e.sys.logErr(ref, err)
		}
	}

	if ref.mailbox.len() > 0 {
		return true
	}

	// Close the scheduled/len race: a concurrent Send may have enqueued
	// a message and lost its own CAS in send (seeing scheduled still true)
	// between our len() check above and the Store here. Re-check after
	// marking unscheduled and reclaim scheduling ourselves if so, or the
	// message would sit in the mailbox with nothing to wake it.
	ref.scheduled.Store(false)
	if ref.mailbox.len() > 0 && ref.scheduled.CompareAndSwap(false, true) {
		return true
	}
	return false
}

// UnmuteActor satisfies sched.Engine: nothing to clear here since
// ActorRef carries no engine-private muted shadow state beyond the
// scheduler's own counter.
func (e *engine) UnmuteActor(a sched.Actor) {}
