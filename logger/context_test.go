package logger_test

import (
	"context"
	"testing"

	"github.com/jonesrussell/logsift/logger"
)

func TestWithContext_FromContext_RoundTrip(t *testing.T) {
	t.Parallel()

	l := mustTestLogger(t)
	ctx := logger.WithContext(context.Background(), l)
	got := logger.FromContext(ctx)

	if got != l {
		t.Errorf("FromContext returned %v, want the same logger instance %v", got, l)
	}
}

func TestFromContext_NoLogger_ReturnsFallback(t *testing.T) {
	t.Parallel()

	got := logger.FromContext(context.Background())
	if got == nil {
		t.Fatal("FromContext on empty context returned nil, want non-nil fallback logger")
	}
}

func TestFromContext_FallbackIsUsable(t *testing.T) {
	t.Parallel()

	fallback := logger.FromContext(context.Background())

	// These calls must not panic. The fallback logger is warn-level,
	// so Debug/Info will be filtered, but the calls must still succeed.
	fallback.Debug("debug message")
	fallback.Info("info message")
	fallback.Warn("warn message")
	fallback.Error("error message")
	fallback.Warn("message with field", logger.String("key", "value"))
}

func TestWithContext_OverwritesPrevious(t *testing.T) {
	t.Parallel()

	first := mustTestLogger(t)
	second := mustTestLogger(t)

	ctx := logger.WithContext(context.Background(), first)
	ctx = logger.WithContext(ctx, second)

	got := logger.FromContext(ctx)
	if got != second {
		t.Error("FromContext returned the first logger, want the second (overwritten) logger")
	}
}

func TestFromContext_FallbackConsistency(t *testing.T) {
	t.Parallel()

	// Multiple calls to FromContext on empty contexts must return
	// the same fallback instance (singleton via sync.Once).
	a := logger.FromContext(context.Background())
	b := logger.FromContext(context.Background())

	if a == nil || b == nil {
		t.Fatal("expected non-nil fallback loggers")
	}
	if a != b {
		t.Error("FromContext returned different fallback instances, want the same singleton")
	}
}

// mustTestLogger creates a real file-backed logger in a temp directory,
// failing the test on error. Real loggers have distinct pointers,
// unlike the no-op logger, so identity checks are meaningful.
func mustTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	l, err := logger.New("test", logger.Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}

	return l
}
