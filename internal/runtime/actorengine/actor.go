// Package actorengine is a minimal actor-execution engine: concrete
// enough to drive the sched package's scheduler end to end, reduced to
// what a scheduler-driving test double or demo program actually needs.
package actorengine

import (
	"sync/atomic"

	"github.com/hiverun/hive/internal/runtime/sched"
)

// ID identifies an actor within a System.
type ID uint64

// Message is the unit of communication between actors.
type Message struct {
	Sender  ID
	Payload any
}

// Behavior is the user-supplied actor logic: the single method the
// batch loop calls for each queued message.
type Behavior interface {
	Receive(ctx *Context, msg Message) error
}

// Context is handed to a Behavior's Receive call; it wraps the
// scheduler context so behaviors can mute/unmute senders and schedule
// new actors without importing sched directly.
type Context struct {
	sys  *System
	ref  *ActorRef
	sctx *sched.Context
}

// Self returns the actor currently processing a message.
func (c *Context) Self() *ActorRef { return c.ref }

// Mute asks the scheduler to back-pressure sender on behalf of the
// actor currently running (the overloaded receiver).
func (c *Context) Mute(sender *ActorRef) {
	c.sys.rt.Mute(c.sctx, sender, c.ref)
}

// Unmute releases every sender muted on behalf of the actor currently
// running, rescheduling any that reach zero outstanding mutings.
func (c *Context) Unmute() bool {
	return c.sys.rt.UnmuteSenders(c.sctx, c.ref)
}

// Send enqueues msg on target's mailbox and reschedules target if it
// was idle.
func (c *Context) Send(target *ActorRef, payload any) {
	c.sys.send(c.sctx, target, Message{Sender: c.ref.id, Payload: payload})
}

// ActorRef is the scheduler-visible handle for a spawned actor: it
// implements sched.Actor directly so the scheduler can queue, mute, and
// run it without a translation layer.
type ActorRef struct {
	id          ID
	name        string
	behavior    Behavior
	mailbox     *mailbox
	muted       int64
	unscheduled atomic.Bool
	scheduled   atomic.Bool
}

// ID satisfies sched.Actor.
func (r *ActorRef) ID() string { return r.name }

// Muted satisfies sched.Actor.
func (r *ActorRef) Muted() *int64 { return &r.muted }

// Unscheduled satisfies sched.Actor.
func (r *ActorRef) Unscheduled() bool { return r.unscheduled.Load() }

// Stop marks the actor unscheduled: once its last muting is released the
// scheduler does not reschedule it. It does not take the actor off a run
// queue it is already on, and a later Send still schedules it.
func (r *ActorRef) Stop() { r.unscheduled.Store(true) }
