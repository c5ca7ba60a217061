package actorengine

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hiverun/hive/internal/runtime/sched"
)

type echoBehavior struct {
	received atomic.Int64
	reply    *ActorRef
}

func (b *echoBehavior) Receive(ctx *Context, msg Message) error {
	b.received.Add(1)
	if b.reply != nil {
		ctx.Send(b.reply, msg.Payload)
	}
	return nil
}

type countingBehavior struct {
	mu       sync.Mutex
	count    int
	wantDone chan struct{}
	want     int
}

func (b *countingBehavior) Receive(ctx *Context, msg Message) error {
	b.mu.Lock()
	b.count++
	done := b.count >= b.want
	b.mu.Unlock()
	if done {
		select {
		case b.wantDone <- struct{}{}:
		default:
		}
	}
	return nil
}

func TestSendRoutesThroughReplyActor(t *testing.T) {
	sys, err := NewSystem(nil, sched.WithThreads(2), sched.WithStealGate(2*time.Millisecond))
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	want := 10
	done := make(chan struct{}, 1)
	collector := &countingBehavior{wantDone: done, want: want}
	replyTo := sys.Spawn("collector", collector, 0)

	echo := &echoBehavior{reply: replyTo}
	pinger := sys.Spawn("pinger", echo, 0)

	go func() {
		if err := sys.Runtime().Start(true); err != nil {
			t.Errorf("Start: %v", err)
		}
	}()

	for i := 0; i < want; i++ {
		sys.Send(pinger, i)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("collector did not receive all echoed messages in time")
	}
	if got := echo.received.Load(); got != int64(want) {
		t.Fatalf("expected pinger to receive %d messages, got %d", want, got)
	}

	sys.Runtime().Shutdown()
}

func TestSpawnSendReceive(t *testing.T) {
	sys, err := NewSystem(nil, sched.WithThreads(2), sched.WithStealGate(2*time.Millisecond))
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	want := 50
	done := make(chan struct{}, 1)
	behavior := &countingBehavior{wantDone: done, want: want}
	target := sys.Spawn("counter", behavior, 0)

	go func() {
		if err := sys.Runtime().Start(true); err != nil {
			t.Errorf("Start: %v", err)
		}
	}()

	for i := 0; i < want; i++ {
		sys.Send(target, i)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("did not receive all messages in time")
	}

	sys.Runtime().Shutdown()
}

func TestLookupResolvesSpawnedActor(t *testing.T) {
	sys, err := NewSystem(nil, sched.WithThreads(1))
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	ref := sys.Spawn("named", &countingBehavior{wantDone: make(chan struct{}, 1), want: 1}, 0)

	got, ok := sys.Lookup("named")
	if !ok || got != ref {
		t.Fatalf("expected to resolve spawned actor by name, got %v %v", got, ok)
	}

	if _, ok := sys.Lookup("missing"); ok {
		t.Fatal("expected lookup miss for unregistered name")
	}
}

func TestMailboxFullDropsMessage(t *testing.T) {
	sys, err := NewSystem(nil, sched.WithThreads(1))
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	behavior := &countingBehavior{wantDone: make(chan struct{}, 1), want: 1}
	target := sys.Spawn("bounded", behavior, 1)

	// Fill the one-slot mailbox without a running scheduler to drain it.
	sys.Send(target, "first")
	sys.Send(target, "second")

	if got := target.mailbox.len(); got != 1 {
		t.Fatalf("expected mailbox len 1 after overflow, got %d", got)
	}
	if target.mailbox.dropped != 1 {
		t.Fatalf("expected one dropped message, got %d", target.mailbox.dropped)
	}
}
