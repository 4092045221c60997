package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap/zapcore"
)

// Registry is a memoizing logger factory keyed by logger name. All
// loggers built by one registry share a single rotating-file sink, so
// records from every module land in the same file in write order.
// Asking twice for the same name returns the same instance.
type Registry struct {
	cfg Config

	mu      sync.Mutex
	sink    zapcore.WriteSyncer
	loggers map[string]Logger
}

// NewRegistry creates a registry for the given configuration. The log
// directory and file are not touched until the first Get call.
func NewRegistry(cfg Config) *Registry {
	cfg.SetDefaults()
	return &Registry{
		cfg:     cfg,
		loggers: make(map[string]Logger),
	}
}

// Get returns the logger registered under name, building and
// registering it on first use. The only error source is creating the
// log directory on the registry's first Get.
func (r *Registry) Get(name string) (Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l, nil
	}

	if r.sink == nil {
		sink, err := newFileSink(r.cfg)
		if err != nil {
			return nil, err
		}
		r.sink = sink
	}

	l := newWithSink(name, r.sink, parseLevel(r.cfg.Level))
	r.loggers[name] = l
	return l, nil
}

// MustGet is like Get but exits on error. Drop-in per-module usage:
//
//	var log = registry.MustGet("auth")
func (r *Registry) MustGet(name string) Logger {
	l, err := r.Get(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger %q: %v\n", name, err)
		os.Exit(1)
	}
	return l
}

// Sync flushes every logger the registry has handed out.
func (r *Registry) Sync() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for _, l := range r.loggers {
		if err := l.Sync(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// defaultRegistry backs the package-level Get for callers that are
// happy with the default logs/app.log location.
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Get returns a logger from the process-default registry
// (logs/app.log, 5MB rotation, 3 backups).
func Get(name string) (Logger, error) {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(Config{})
	})
	return defaultRegistry.Get(name)
}

// MustGet is like Get but exits on error.
func MustGet(name string) Logger {
	l, err := Get(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger %q: %v\n", name, err)
		os.Exit(1)
	}
	return l
}
