package asyncio

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// Test that HIVE_ASIO_WRITABLE_INTERVAL_MS affects Writable notification frequency.
// Note: the interval is cached after its first read, and earlier tests in this
// package have already read the default; reset the cache after setting the env
// so the poller below reads it, and reset it again when the test ends.
func TestWritableThrottling_EnvInterval(t *testing.T) {
	t.Setenv("HIVE_ASIO_WRITABLE_INTERVAL_MS", "10")
	writableOnce = sync.Once{}
	t.Cleanup(func() { writableOnce = sync.Once{} })

	p := NewDefaultPoller()
	if err := p.Start(context.Background()); err != nil { t.Fatal(err) }
	defer p.Stop()

	c1, c2 := net.Pipe()
	defer c1.Close(); defer c2.Close()

	var cnt int32
	if err := p.Register(c1, []EventType{Writable}, func(ev Event){ if ev.Type==Writable { atomic.AddInt32(&cnt,1) } }); err != nil { t.Fatal(err) }

	// Observe for 200ms; with ~10ms throttle we expect at least ~8 events.
	time.Sleep(200 * time.Millisecond)
	if got := atomic.LoadInt32(&cnt); got < 8 {
		t.Fatalf("too few writable notifications with 10ms interval: got=%d", got)
	}
}
