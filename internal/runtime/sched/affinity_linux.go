//go:build linux

package sched

import "golang.org/x/sys/unix"

// pinToCPU binds the calling OS thread to a single CPU. The caller must
// already be locked to its OS thread (runtime.LockOSThread) or the pin
// only lasts until the goroutine migrates.
func pinToCPU(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}
