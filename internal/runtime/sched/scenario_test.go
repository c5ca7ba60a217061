package sched

import (
	"testing"
	"time"
)

// TestEmptyProgramQuiescence: with no actors scheduled, all workers
// drive themselves to BLOCK, the coordinator runs the two-phase
// CNF/ACK round against ASIO, and every worker exits cleanly once
// TERMINATE is broadcast.
func TestEmptyProgramQuiescence(t *testing.T) {
	rt := newTestRuntime(t, 4, &fakeEngine{})

	done := make(chan error, 1)
	go func() { done <- rt.Start(false) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not reach quiescence and join in time")
	}
}

// TestSingleLongRunningActorNeverQuiesces: a perpetually-rescheduling
// actor keeps its worker busy, so the pool never reaches quiescence;
// Shutdown is needed to stop it.
func TestSingleLongRunningActorNeverQuiesces(t *testing.T) {
	reschedule := make(chan struct{})
	eng := &rescheduleForeverEngine{unblock: reschedule}
	rt := newTestRuntime(t, 4, eng)

	busy := &fakeActor{id: "busy"}
	rt.workers[0].local.push(busy)

	done := make(chan error, 1)
	go func() { done <- rt.Start(false) }()

	select {
	case <-done:
		t.Fatal("runtime quiesced with a perpetually runnable actor present")
	case <-time.After(100 * time.Millisecond):
	}

	close(reschedule)
	rt.Shutdown()
	<-done
}

type rescheduleForeverEngine struct {
	unblock chan struct{}
}

func (e *rescheduleForeverEngine) RunActor(ctx *Context, a Actor, batch int) bool {
	select {
	case <-e.unblock:
		return false
	default:
		return true
	}
}

func (e *rescheduleForeverEngine) UnmuteActor(a Actor) {}
