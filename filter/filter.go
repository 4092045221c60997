package filter

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/logsift/errors"
	"github.com/jonesrussell/logsift/logger"
	"github.com/jonesrussell/logsift/metrics"
)

// maxLineBytes caps how long a single log line may grow before the
// scan fails. Rotated files are 5MB total, so 1MB per line is generous.
const maxLineBytes = 1 << 20

// Query describes which records to select. Start and End are inclusive
// bounds; the filter does not validate Start <= End, a reversed range
// simply matches nothing. Level and Page are optional: empty string
// means "do not filter on this".
type Query struct {
	// Start is the inclusive lower timestamp bound.
	Start time.Time
	// End is the inclusive upper timestamp bound.
	End time.Time
	// Level is a case-insensitive severity name. When set, the record
	// must contain "[LEVEL]" (uppercased) anywhere in its uppercased
	// text. This is deliberate substring matching, not field matching:
	// a message body containing the tag text also matches.
	Level string
	// Page is a case-insensitive source/module name, matched the same
	// way as Level but lowercased.
	Page string
}

// tags renders the optional predicates into the bracketed substrings
// searched for. Empty criteria render to empty strings.
func (q Query) tags() (levelTag, pageTag string) {
	if q.Level != "" {
		levelTag = "[" + strings.ToUpper(q.Level) + "]"
	}
	if q.Page != "" {
		pageTag = "[" + strings.ToLower(q.Page) + "]"
	}
	return levelTag, pageTag
}

// Scanner filters log files, reporting scan activity through an
// injected logger and optional metrics. A Scanner holds no per-scan
// state and is safe for concurrent use.
type Scanner struct {
	log     logger.Logger
	metrics *metrics.ScanMetrics
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithMetrics attaches scan metrics to the Scanner.
func WithMetrics(m *metrics.ScanMetrics) Option {
	return func(s *Scanner) {
		s.metrics = m
	}
}

// NewScanner creates a Scanner that logs scan diagnostics to log.
// A nil logger is replaced with a no-op one.
func NewScanner(log logger.Logger, opts ...Option) *Scanner {
	if log == nil {
		log = logger.NewNop()
	}

	s := &Scanner{log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Filter reads the log file at path once, front to back, and returns
// the trimmed lines whose timestamp falls within [q.Start, q.End] and
// which satisfy the level and page predicates, in file order. Lines
// that are not records are skipped silently. Failure to open or read
// the file is returned to the caller; use errors.IsNotFound to detect
// a missing file.
func (s *Scanner) Filter(path string, q Query) ([]string, error) {
	scanID := uuid.NewString()
	started := time.Now()

	f, err := os.Open(path)
	if err != nil {
		s.observeError()
		return nil, errors.WrapWithContextf(err, "open log file %s", path)
	}
	defer f.Close()

	levelTag, pageTag := q.tags()

	var (
		results  []string
		lines    int
		unparsed int
		outside  int
		offLevel int
		offPage  int
	)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		lines++

		ts, record, ok := ParseLine(sc.Text())
		if !ok {
			unparsed++
			continue
		}
		if ts.Before(q.Start) || ts.After(q.End) {
			outside++
			continue
		}
		if levelTag != "" && !strings.Contains(strings.ToUpper(record), levelTag) {
			offLevel++
			continue
		}
		if pageTag != "" && !strings.Contains(strings.ToLower(record), pageTag) {
			offPage++
			continue
		}

		results = append(results, record)
	}

	if err := sc.Err(); err != nil {
		s.observeError()
		return nil, errors.WrapWithContextf(err, "scan log file %s", path)
	}

	s.observeScan(lines, len(results), unparsed, outside, offLevel, offPage, time.Since(started))

	s.log.Debug("log scan complete",
		logger.String("scan_id", scanID),
		logger.String("path", path),
		logger.Int("lines", lines),
		logger.Int("matched", len(results)),
		logger.Int("unparsed", unparsed),
		logger.Duration("elapsed", time.Since(started)),
	)

	return results, nil
}

// observeScan records metrics for a completed scan, if metrics are attached.
func (s *Scanner) observeScan(lines, matched, unparsed, outside, offLevel, offPage int, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}

	s.metrics.ScansTotal.WithLabelValues("ok").Inc()
	s.metrics.LinesScanned.Add(float64(lines))
	s.metrics.RecordsMatched.Add(float64(matched))
	s.metrics.LinesSkipped.WithLabelValues(metrics.SkipUnparsed).Add(float64(unparsed))
	s.metrics.LinesSkipped.WithLabelValues(metrics.SkipTimeRange).Add(float64(outside))
	s.metrics.LinesSkipped.WithLabelValues(metrics.SkipLevel).Add(float64(offLevel))
	s.metrics.LinesSkipped.WithLabelValues(metrics.SkipPage).Add(float64(offPage))
	s.metrics.ScanDuration.Observe(elapsed.Seconds())
}

// observeError records a failed scan, if metrics are attached.
func (s *Scanner) observeError() {
	if s.metrics == nil {
		return
	}
	s.metrics.ScansTotal.WithLabelValues("error").Inc()
}

// Filter is the convenience form of Scanner.Filter with no diagnostics
// attached.
func Filter(path string, q Query) ([]string, error) {
	return NewScanner(logger.NewNop()).Filter(path, q)
}
