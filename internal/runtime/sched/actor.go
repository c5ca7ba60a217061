package sched

// Actor is the external collaborator contract this scheduler drives. The
// actor execution engine itself (how a batch of messages is actually
// processed) lives outside this package; the scheduler only needs enough
// of an actor's shape to queue it, mute it, and ask the engine to run it.
type Actor interface {
	// ID uniquely identifies the actor for logging and mute-map bookkeeping.
	ID() string

	// Muted returns the count of distinct (sender, receiver) muting
	// relations that currently reference this actor as sender. The
	// scheduler only ever increments/decrements it by one at a time;
	// callers elsewhere may read it for diagnostics.
	Muted() *int64

	// Unscheduled reports whether the actor has been removed from the
	// live set. unmuteSenders reads it and does not reschedule such an
	// actor when its last muting is released; an actor already on a run
	// queue is still run.
	Unscheduled() bool
}

// Engine is the external actor-execution engine that actually runs an
// actor's behavior against its mailbox.
type Engine interface {
	// RunActor executes up to batch messages of actor's mailbox and
	// reports whether the actor should be rescheduled (it still has
	// pending work or should keep its turn).
	RunActor(ctx *Context, actor Actor, batch int) (reschedule bool)

	// UnmuteActor clears whatever muted bookkeeping the engine itself
	// keeps on the actor, called once the scheduler's own mute map has
	// fully released it.
	UnmuteActor(actor Actor)
}

// Context is the per-worker execution context handed to the engine. It
// carries nothing the scheduler itself interprets beyond identifying
// which worker is driving it; w is nil for a context not bound to any
// live worker (a non-worker goroutine calling in from outside the pool).
type Context struct {
	WorkerID int

	w *Worker
}
