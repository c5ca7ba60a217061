//go:build !linux

package sched

// pinToCPU is a no-op on platforms without a portable affinity syscall
// surface in golang.org/x/sys/unix. Workers still run; they simply aren't
// bound to a specific core.
func pinToCPU(cpu int) error { return nil }
