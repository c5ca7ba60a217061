package sched

import "sync/atomic"

// Stats is a point-in-time snapshot of scheduler activity: steal
// attempts, block/unblock transitions, and mute/unmute bookkeeping.
type Stats struct {
	Steals    uint64
	StealFail uint64
	Blocks    uint64
	Unblocks  uint64
	Mutes     uint64
	Unmutes   uint64
}

type workerCounters struct {
	steals    uint64
	stealFail uint64
	blocks    uint64
	unblocks  uint64
	mutes     uint64
	unmutes   uint64
}

func (c *workerCounters) addSteal()     { atomic.AddUint64(&c.steals, 1) }
func (c *workerCounters) addStealFail() { atomic.AddUint64(&c.stealFail, 1) }
func (c *workerCounters) addBlock()     { atomic.AddUint64(&c.blocks, 1) }
func (c *workerCounters) addUnblock()   { atomic.AddUint64(&c.unblocks, 1) }
func (c *workerCounters) addMute()      { atomic.AddUint64(&c.mutes, 1) }
func (c *workerCounters) addUnmute()    { atomic.AddUint64(&c.unmutes, 1) }

func (c *workerCounters) snapshot() Stats {
	return Stats{
		Steals:    atomic.LoadUint64(&c.steals),
		StealFail: atomic.LoadUint64(&c.stealFail),
		Blocks:    atomic.LoadUint64(&c.blocks),
		Unblocks:  atomic.LoadUint64(&c.unblocks),
		Mutes:     atomic.LoadUint64(&c.mutes),
		Unmutes:   atomic.LoadUint64(&c.unmutes),
	}
}

// Stats aggregates every worker's counters into a single snapshot.
func (rt *Runtime) Stats() Stats {
	var total Stats
	for _, w := range rt.workers {
		s := w.counters.snapshot()
		total.Steals += s.Steals
		total.StealFail += s.StealFail
		total.Blocks += s.Blocks
		total.Unblocks += s.Unblocks
		total.Mutes += s.Mutes
		total.Unmutes += s.Unmutes
	}
	return total
}
