package sched

import (
	"context"
	"fmt"
	stdrt "runtime"

	"golang.org/x/sync/errgroup"
)

// CycleDetector is an external collaborator invoked once during
// Shutdown, using the coordinator's context, to let a reference-cycle
// collector run a final pass before queues drain. Left unset, Shutdown
// skips the call.
type CycleDetector interface {
	Terminate(ctx *Context)
}

// Init derives the thread count, allocates the worker array, initializes
// every mailbox and local queue, the inject queue, and the ASIO backend,
// but does not start any worker goroutine -- that happens in Start.
func Init(opts ...Option) (*Runtime, error) {
	cfg := newConfig(opts...)
	if cfg.Engine == nil {
		return nil, fmt.Errorf("sched: init: %w", ErrNoEngine)
	}

	rt := &Runtime{
		inject: newRunQueue(defaultQueueCapacity),
		cfg:    cfg,
		logger: cfg.Logger,
		joined: make(chan struct{}),
	}

	rt.asio = cfg.ASIO
	if rt.asio == nil {
		rt.asio = NewDefaultASIO()
	}

	rt.workers = make([]*Worker, cfg.Threads)
	for i := range rt.workers {
		rt.workers[i] = newWorker(i, rt)
	}

	return rt, nil
}

// Start brings the pool up: it starts ASIO, sets detect_quiescence, and
// spawns one goroutine per worker. When library is false, Start blocks
// until every worker has joined (which only happens after a natural
// quiescence TERMINATE), then shuts down.
func (rt *Runtime) Start(library bool) error {
	rt.mu.Lock()
	if rt.started {
		rt.mu.Unlock()
		return ErrAlreadyStarted
	}
	rt.started = true
	rt.mu.Unlock()

	if err := rt.asio.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrASIOStartFailed, err)
	}
	rt.detectQuiescence.Store(!library)

	parent, cancel := context.WithCancel(context.Background())
	rt.cancel = cancel
	eg, _ := errgroup.WithContext(parent)
	rt.eg = eg

	for _, w := range rt.workers {
		w := w
		eg.Go(func() error {
			if !rt.cfg.NoPin {
				stdrt.LockOSThread()
				if err := pinToCPU(w.cpu); err != nil {
					rt.logger.Debug("cpu pin failed", "worker", w.id, "error", err)
				}
			}
			w.run()
			return nil
		})
	}

	if !library {
		err := eg.Wait()
		rt.closeJoined.Do(func() { close(rt.joined) })
		rt.shutdownQueues()
		return err
	}

	go func() {
		_ = eg.Wait()
		rt.closeJoined.Do(func() { close(rt.joined) })
	}()
	return nil
}

// Stop forces quiescence detection on, then waits for the natural
// TERMINATE/join sequence to complete. Returns ErrNotStarted if Start
// has not yet been called -- otherwise this would block forever
// waiting on a join that will never happen.
func (rt *Runtime) Stop() error {
	rt.mu.Lock()
	started := rt.started
	rt.mu.Unlock()
	if !started {
		return ErrNotStarted
	}

	rt.detectQuiescence.Store(true)
	<-rt.joined
	rt.shutdownQueues()
	return nil
}

// Shutdown cancels the worker goroutine group directly instead of
// waiting for natural quiescence, for callers that need an immediate,
// unconditional stop (tests, CLI interrupt handling). It still invokes
// the cycle detector and drains queues exactly as the natural path does.
func (rt *Runtime) Shutdown() {
	if rt.cancel != nil {
		rt.cancel()
	}
	rt.broadcast(schedMsg{kind: msgTerminate})
	if rt.eg != nil {
		_ = rt.eg.Wait()
	}
	rt.closeJoined.Do(func() { close(rt.joined) })
	rt.shutdownQueues()
}

func (rt *Runtime) shutdownQueues() {
	if rt.cfg.CycleDetector != nil {
		rt.cfg.CycleDetector.Terminate(rt.coordinator().ctx)
	}
	for _, w := range rt.workers {
		w.mailbox.drainAll()
	}
}

// RegisterThread lets a non-worker goroutine that wants to schedule
// actors get back a Context bound to no worker (w == nil), so Schedule
// falls through to the inject queue. Must be paired with
// UnregisterThread.
func (rt *Runtime) RegisterThread() *Context {
	rt.registerMu.Lock()
	rt.registerCount++
	rt.registerMu.Unlock()
	return &Context{WorkerID: -1}
}

// UnregisterThread releases a registration from RegisterThread; calling
// it without a matching RegisterThread is a programming contract
// violation.
func (rt *Runtime) UnregisterThread() {
	rt.registerMu.Lock()
	defer rt.registerMu.Unlock()
	assertf(rt.registerCount > 0, "%s", ErrRegisterImbalance.Error())
	rt.registerCount--
}
