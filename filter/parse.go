// Package filter selects lines from bracket-prefixed log files by time
// range, severity tag, and source tag. It consumes the line format the
// logger package produces:
//
//	[2006-01-02 15:04:05] [LEVEL] [name] message
package filter

import (
	"strings"
	"time"

	"github.com/jonesrussell/logsift/logger"
)

// TimeLayout is the timestamp layout at the head of every record.
const TimeLayout = logger.TimeLayout

// tsDelim closes the timestamp bracket group and opens the level one.
const tsDelim = "] ["

// ParseLine extracts the leading timestamp from a log line. On success
// it returns the parsed time, the whitespace-trimmed line, and true.
// Lines that do not start with "[", lack the "] [" delimiter, or carry
// anything but an exact "2006-01-02 15:04:05" timestamp are not
// records: the zero time, an empty string, and false come back, and no
// error is ever raised. Malformed lines are the caller's normal input,
// not a failure.
func ParseLine(line string) (time.Time, string, bool) {
	if !strings.HasPrefix(line, "[") {
		return time.Time{}, "", false
	}

	end := strings.Index(line, tsDelim)
	if end < 0 {
		return time.Time{}, "", false
	}

	ts, err := time.Parse(TimeLayout, line[1:end])
	if err != nil {
		return time.Time{}, "", false
	}

	return ts, strings.TrimSpace(line), true
}
