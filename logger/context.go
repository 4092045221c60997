package logger

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

// WithContext returns a new context with the given logger stored in it.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from the context.
// Returns a stderr-backed fallback logger if none is found, so errors
// are never silently discarded. Callers outside request paths should
// pass a logger explicitly rather than relying on context.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
		return l
	}

	return fallbackLogger()
}

var (
	fallbackLog  Logger
	fallbackOnce sync.Once
)

// fallbackLogger returns a shared warn-level logger writing to stderr
// in the same bracketed line format as file loggers. Initialized once;
// subsequent calls return the same instance.
func fallbackLogger() Logger {
	fallbackOnce.Do(func() {
		fallbackLog = newWithSink("fallback", zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	})

	return fallbackLog
}
