package sched

import (
	"log/slog"
	stdrt "runtime"
	"time"
)

// BATCH is the maximum number of messages an actor processes per
// scheduling slot.
const BATCH = 100

// idleStealThreshold gates BLOCK emission on an elapsed wall-clock
// duration rather than a CPU cycle count, since Go exposes no cycle
// counter. Tuned to roughly a million cycles at a few GHz.
const idleStealThreshold = 300 * time.Microsecond

// Config holds the options recognized at Init.
type Config struct {
	Threads       uint32 // 0 => derive from CPU count
	NoYield       bool   // true => idle via cpuPause instead of osYield (both call runtime.Gosched)
	NoPin         bool   // disable CPU affinity pinning
	PinASIO       bool   // recorded only; nothing reads it and the ASIO backend is not pinned
	Logger        *slog.Logger
	Engine        Engine
	ASIO          *ASIOBackend
	CycleDetector CycleDetector
	StealGate     time.Duration // override for idleStealThreshold, 0 => default
}

// Option mutates a Config during Init, the functional-options shape used
// to build the *Config before constructing the owning Runtime.
type Option func(*Config)

// WithThreads sets the worker count. 0 (the default) derives it from
// runtime.NumCPU().
func WithThreads(n uint32) Option { return func(c *Config) { c.Threads = n } }

// WithNoYield selects cpuPause instead of osYield when a worker is idling
// inside the quiescence check. Both call runtime.Gosched, so the setting
// does not change how an idle worker behaves.
func WithNoYield(v bool) Option { return func(c *Config) { c.NoYield = v } }

// WithNoPin disables CPU affinity pinning for worker goroutines.
func WithNoPin(v bool) Option { return func(c *Config) { c.NoPin = v } }

// WithPinASIO sets Config.PinASIO. Nothing reads the flag: the ASIO
// backend is not pinned to any CPU.
func WithPinASIO(v bool) Option { return func(c *Config) { c.PinASIO = v } }

// WithLogger overrides the default slog.Logger.
func WithLogger(l *slog.Logger) Option { return func(c *Config) { c.Logger = l } }

// WithEngine supplies the actor execution engine. Required.
func WithEngine(e Engine) Option { return func(c *Config) { c.Engine = e } }

// WithASIO supplies the ASIO backend. Defaults to NewDefaultASIO().
func WithASIO(a *ASIOBackend) Option { return func(c *Config) { c.ASIO = a } }

// WithStealGate overrides the idle-cycles-before-BLOCK threshold, mostly
// useful to speed up tests.
func WithStealGate(d time.Duration) Option { return func(c *Config) { c.StealGate = d } }

// WithCycleDetector supplies the external cycle detector invoked once
// during Shutdown via the coordinator's context. Optional.
func WithCycleDetector(cd CycleDetector) Option { return func(c *Config) { c.CycleDetector = cd } }

func newConfig(opts ...Option) Config {
	cfg := Config{
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Threads == 0 {
		cfg.Threads = uint32(stdrt.NumCPU())
		if cfg.Threads == 0 {
			cfg.Threads = 1
		}
	}
	if cfg.StealGate <= 0 {
		cfg.StealGate = idleStealThreshold
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
