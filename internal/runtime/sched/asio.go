package sched

import (
	"context"
	"errors"
	"net"
	"sync/atomic"

	asyncio "github.com/hiverun/hive/internal/runtime/asyncio"
)

// ErrASIONoisy is returned by ASIOBackend.Stop when outstanding external
// event registrations remain.
var ErrASIONoisy = errors.New("sched: asio backend has noisy registrants")

// ASIOBackend is the external asynchronous I/O subsystem contract:
// init/start/stop, surfaced here as Start/Stop, plus the ability for
// the scheduler to observe outstanding registrations so quiescent()
// never declares victory while external events are live.
type ASIOBackend struct {
	poller asyncio.Poller
	live   int64 // atomic count of registered connections
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPollerASIO wraps an asyncio.Poller as the scheduler's ASIO backend.
func NewPollerASIO(poller asyncio.Poller) *ASIOBackend {
	return &ASIOBackend{poller: poller}
}

// NewDefaultASIO returns the backend used when no ASIOBackend is
// configured: the portable goroutine-driven poller.
func NewDefaultASIO() *ASIOBackend {
	return NewPollerASIO(asyncio.NewOSPoller())
}

func (a *ASIOBackend) Start() error {
	a.ctx, a.cancel = context.WithCancel(context.Background())
	return a.poller.Start(a.ctx)
}

// Stop attempts to stop the backend, returning ErrASIONoisy if
// registrations are still outstanding.
func (a *ASIOBackend) Stop() error {
	if atomic.LoadInt64(&a.live) > 0 {
		return ErrASIONoisy
	}
	if a.cancel != nil {
		a.cancel()
	}
	return a.poller.Stop()
}

// Register/Deregister track outstanding external event sources ("noisy"
// registrants) in addition to delegating to the underlying poller.
func (a *ASIOBackend) Register(conn net.Conn, kinds []asyncio.EventType, h asyncio.Handler) error {
	if err := a.poller.Register(conn, kinds, h); err != nil {
		return err
	}
	atomic.AddInt64(&a.live, 1)
	return nil
}

func (a *ASIOBackend) Deregister(conn net.Conn) error {
	if err := a.poller.Deregister(conn); err != nil {
		return err
	}
	atomic.AddInt64(&a.live, -1)
	return nil
}

// Noisy reports whether any external registration is outstanding.
func (a *ASIOBackend) Noisy() bool { return atomic.LoadInt64(&a.live) > 0 }
