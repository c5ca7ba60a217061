package actorengine

import (
	"log/slog"
	"sync/atomic"

	"github.com/hiverun/hive/internal/runtime/concurrency"
	"github.com/hiverun/hive/internal/runtime/sched"
)

// System owns the actor registry and the sched.Runtime driving it,
// reduced to Spawn/Send plus the registry lookups the scheduler's
// mute/unmute path needs.
type System struct {
	rt     *sched.Runtime
	names  *concurrency.LockFreeMap[string, *ActorRef]
	logger *slog.Logger
	nextID uint64
}

// NewSystem builds a System and the sched.Runtime backing it; threads
// must be 0 (derive from CPU count) or explicit, matching sched.Init's
// own defaulting.
func NewSystem(logger *slog.Logger, opts ...sched.Option) (*System, error) {
	if logger == nil {
		logger = slog.Default()
	}
	sys := &System{
		names:  concurrency.NewStringLockFreeMap[*ActorRef](256),
		logger: logger,
	}
	eng := &engine{sys: sys}
	opts = append([]sched.Option{sched.WithEngine(eng), sched.WithLogger(logger)}, opts...)

	rt, err := sched.Init(opts...)
	if err != nil {
		return nil, err
	}
	sys.rt = rt
	return sys, nil
}

// Runtime exposes the underlying scheduler for Start/Stop/Shutdown.
func (s *System) Runtime() *sched.Runtime { return s.rt }

// Spawn registers a new actor under name and schedules it for its
// first run the moment it receives a message.
func (s *System) Spawn(name string, behavior Behavior, mailboxCapacity int) *ActorRef {
	ref := &ActorRef{
		id:       ID(atomic.AddUint64(&s.nextID, 1)),
		name:     name,
		behavior: behavior,
		mailbox:  newMailbox(mailboxCapacity),
	}
	s.names.Store(name, ref)
	return ref
}

// Lookup resolves a spawned actor by name, used by external callers
// that only have a name, not a live ActorRef.
func (s *System) Lookup(name string) (*ActorRef, bool) { return s.names.Load(name) }

// Send is the external-caller entry point for code running outside any
// worker: it pushes to the inject queue via a nil scheduler context.
func (s *System) Send(target *ActorRef, payload any) {
	s.send(nil, target, Message{Payload: payload})
}

func (s *System) send(sctx *sched.Context, target *ActorRef, msg Message) {
	if !target.mailbox.enqueue(msg) {
		s.logger.Debug("mailbox full, message dropped", "actor", target.name)
		return
	}
	if target.scheduled.CompareAndSwap(false, true) {
		s.rt.Schedule(sctx, target)
	}
}

func (s *System) logErr(ref *ActorRef, err error) {
	s.logger.Error("actor receive failed", "actor", ref.name, "error", err)
}
