package logger

// nopLogger discards everything. Useful in tests and as the default
// collaborator when a caller does not care about diagnostics.
type nopLogger struct{}

// NewNop creates a logger that does nothing.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(msg string, fields ...Field) {}
func (nopLogger) Info(msg string, fields ...Field)  {}
func (nopLogger) Warn(msg string, fields ...Field)  {}
func (nopLogger) Error(msg string, fields ...Field) {}

// Fatal does nothing and, unlike real loggers, does not exit.
func (nopLogger) Fatal(msg string, fields ...Field) {}

func (n nopLogger) With(fields ...Field) Logger { return n }

func (nopLogger) Sync() error { return nil }
