// Package errors provides shared error handling helpers for logsift
// packages and their consumers.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// WrapWithContext wraps an error with additional context information.
// Returns nil when err is nil so call sites can wrap unconditionally.
func WrapWithContext(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// WrapWithContextf wraps an error with formatted context information.
func WrapWithContextf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsNotFound reports whether err is a file-not-found condition, however
// deeply wrapped. Callers of filter.Filter use this to distinguish a
// missing log file from other access failures.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
