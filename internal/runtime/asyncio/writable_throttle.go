package asyncio

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// getWritableInterval returns the throttling interval for Writable notifications.
// It reads HIVE_ASIO_WRITABLE_INTERVAL_MS (integer milliseconds).
// Defaults to 50ms. Clamped to [5ms, 5000ms] to avoid CPU spin or excessive delay.
// This function is safe on all platforms; the portable goroutine poller, the
// only poller in this package, uses it on every platform.
var (
	writableOnce sync.Once
	writableIntv time.Duration
)

func getWritableInterval() time.Duration {
	writableOnce.Do(func() {
		const (
			defMs = 50
			minMs = 5
			maxMs = 5000
		)
		ms := defMs
		if v := os.Getenv("HIVE_ASIO_WRITABLE_INTERVAL_MS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				if n < minMs {
					n = minMs
				} else if n > maxMs {
					n = maxMs
				}
				ms = n
			}
		}
		writableIntv = time.Duration(ms) * time.Millisecond
	})
	return writableIntv
}
