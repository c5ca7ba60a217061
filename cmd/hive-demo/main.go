// Command hive-demo drives the actor scheduler end to end: it spawns a
// small fan-out of worker actors, sends them messages round-robin from
// outside any worker context, waits a fixed 200ms, then logs each actor's
// tally and the pool's steal/block counters and shuts the pool down.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/hiverun/hive/internal/runtime/actorengine"
	"github.com/hiverun/hive/internal/runtime/sched"
)

type tallyBehavior struct {
	name      string
	processed atomic.Int64
}

func (b *tallyBehavior) Receive(ctx *actorengine.Context, msg actorengine.Message) error {
	b.processed.Add(1)
	return nil
}

func main() {
	threads := flag.Uint("threads", 0, "worker thread count (0 = CPU count)")
	fanout := flag.Int("fanout", 4, "number of worker actors")
	messages := flag.Int("messages", 10000, "messages to fan out across the pool")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	sys, err := actorengine.NewSystem(logger,
		sched.WithThreads(uint32(*threads)),
	)
	if err != nil {
		logger.Error("failed to build actor system", "error", err)
		os.Exit(1)
	}

	workers := make([]*tallyBehavior, *fanout)
	refs := make([]*actorengine.ActorRef, *fanout)
	for i := range workers {
		workers[i] = &tallyBehavior{name: fmt.Sprintf("worker-%d", i)}
		refs[i] = sys.Spawn(workers[i].name, workers[i], 4096)
	}

	go func() {
		if err := sys.Runtime().Start(true); err != nil {
			logger.Error("scheduler start failed", "error", err)
		}
	}()

	start := time.Now()
	for i := 0; i < *messages; i++ {
		sys.Send(refs[i%len(refs)], i)
	}

	time.Sleep(200 * time.Millisecond)
	elapsed := time.Since(start)

	var total int64
	for _, w := range workers {
		n := w.processed.Load()
		total += n
		logger.Info("worker tally", "actor", w.name, "processed", n)
	}

	stats := sys.Runtime().Stats()
	logger.Info("run complete",
		"elapsed", elapsed,
		"processed", total,
		"steals", stats.Steals,
		"blocks", stats.Blocks,
	)

	sys.Runtime().Shutdown()
}
