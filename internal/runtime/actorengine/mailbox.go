package actorengine

import "sync"

// mailbox is a bounded FIFO: a slice behind a mutex with a drop-newest
// overflow policy, since back-pressure here is the scheduler's
// mute/unmute job, not the mailbox's.
type mailbox struct {
	mu       sync.Mutex
	messages []Message
	capacity int
	dropped  uint64
}

func newMailbox(capacity int) *mailbox {
	if capacity <= 0 {
		capacity = 1024
	}
	return &mailbox{capacity: capacity}
}

func (m *mailbox) enqueue(msg Message) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) >= m.capacity {
		m.dropped++
		return false
	}
	m.messages = append(m.messages, msg)
	return true
}

func (m *mailbox) dequeue() (Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return Message{}, false
	}
	msg := m.messages[0]
	m.messages = m.messages[1:]
	return msg, true
}

func (m *mailbox) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}
