package sched

import (
	"context"
	"net"

	asyncio "github.com/hiverun/hive/internal/runtime/asyncio"
)

// stubPoller is a no-op asyncio.Poller for tests that need an ASIOBackend
// but never register real connections.
type stubPoller struct{}

func (s *stubPoller) Start(ctx context.Context) error { return nil }
func (s *stubPoller) Stop() error                      { return nil }
func (s *stubPoller) Register(conn net.Conn, kinds []asyncio.EventType, h asyncio.Handler) error {
	return nil
}
func (s *stubPoller) Deregister(conn net.Conn) error { return nil }
