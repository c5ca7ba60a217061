// Package sched implements a fixed pool of worker goroutines, each
// draining its own run queue, stealing work from siblings when idle,
// cooperating on whole-program quiescence detection with an external
// ASIO backend, and applying back-pressure ("muting") to senders that
// overwhelm a receiver.
package sched

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Runtime is the explicit top-level object holding everything that
// would otherwise live as package-level globals (scheduler array,
// inject queue, scheduler count): everything workers and external
// callers need is reachable from here.
type Runtime struct {
	workers []*Worker
	inject  *runQueue

	detectQuiescence atomic.Bool
	asio             *ASIOBackend
	cfg              Config
	logger           *slog.Logger

	eg     *errgroup.Group
	cancel context.CancelFunc

	mu          sync.Mutex
	started     bool
	joined      chan struct{}
	closeJoined sync.Once

	registerMu    sync.Mutex
	registerCount int
}

// schedulerCount is the fixed worker-pool size for this run.
func (rt *Runtime) schedulerCount() int { return len(rt.workers) }

// coordinator returns the worker that arbitrates BLOCK/ACK: worker 0
// by convention, made an explicit role rather than a magic index
// scattered across the codebase.
func (rt *Runtime) coordinator() *Worker { return rt.workers[0] }

func (rt *Runtime) sendTo(idx int, msg schedMsg) {
	rt.workers[idx].mailbox.send(msg)
}

func (rt *Runtime) broadcast(msg schedMsg) {
	for _, w := range rt.workers {
		w.mailbox.send(msg)
	}
}

// Schedule pushes to the calling worker's local queue if ctx identifies
// a live worker (the fast, single-producer path), otherwise pushes to
// the global inject queue.
func (rt *Runtime) Schedule(ctx *Context, actor Actor) {
	if ctx != nil && ctx.w != nil {
		ctx.w.local.push(actor)
		return
	}
	rt.inject.push(actor)
}

// Cores reports the worker-pool size.
func (rt *Runtime) Cores() uint32 { return uint32(len(rt.workers)) }

// Mute and UnmuteSenders are the ctx-addressed entry points exposed to
// engines; they operate on the mute map of whichever worker ctx
// identifies. Calling them with an external (non-worker) context is a
// contract violation: muting only ever happens while running on the
// worker that owns the sender.
func (rt *Runtime) Mute(ctx *Context, sender, receiver Actor) {
	assertf(ctx != nil && ctx.w != nil, "mute: called outside a worker context")
	ctx.w.mute(sender, receiver)
}

func (rt *Runtime) UnmuteSenders(ctx *Context, receiver Actor) bool {
	assertf(ctx != nil && ctx.w != nil, "unmute_senders: called outside a worker context")
	return ctx.w.unmuteSenders(receiver)
}

// StartGlobalUnmute is exposed directly for engines that detect, from
// outside a worker's own unmute pass, that an actor should be globally
// re-announced.
func (rt *Runtime) StartGlobalUnmute(actor Actor) { rt.startGlobalUnmute(actor) }

// NoisyASIO / UnnoisyASIO are the upcalls the ASIO subsystem makes when
// outstanding external event sources appear or drain.
func (rt *Runtime) NoisyASIO()   { rt.broadcast(schedMsg{kind: msgNoisyASIO}) }
func (rt *Runtime) UnnoisyASIO() { rt.broadcast(schedMsg{kind: msgUnnoisyASIO}) }
