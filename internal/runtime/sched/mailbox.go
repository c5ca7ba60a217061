package sched

import "sync"

// msgKind enumerates the scheduler's control-message protocol.
type msgKind int

const (
	msgBlock msgKind = iota
	msgUnblock
	msgCNF
	msgACK
	msgTerminate
	msgUnmuteActor
	msgNoisyASIO
	msgUnnoisyASIO
)

// schedMsg is the payload carried through a worker's mailbox. Only CNF/ACK
// carry a token; UNMUTE_ACTOR carries the actor reference.
type schedMsg struct {
	kind  msgKind
	token uint64
	actor Actor
}

// mailbox is a per-worker FIFO of control messages: single consumer (the
// owning worker), multi-producer (any worker, or the runtime, may push).
// Trimmed to a control-plane-only shape: no priority queue, no overflow
// policy -- control messages are never subject to back pressure.
type mailbox struct {
	mu   sync.Mutex
	msgs []schedMsg
}

func newMailbox() *mailbox {
	return &mailbox{}
}

func (m *mailbox) send(msg schedMsg) {
	m.mu.Lock()
	m.msgs = append(m.msgs, msg)
	m.mu.Unlock()
}

// drainAll removes and returns every currently queued message, preserving
// FIFO order. Non-blocking: an empty mailbox returns a nil slice.
func (m *mailbox) drainAll() []schedMsg {
	m.mu.Lock()
	if len(m.msgs) == 0 {
		m.mu.Unlock()
		return nil
	}
	out := m.msgs
	m.msgs = nil
	m.mu.Unlock()
	return out
}
