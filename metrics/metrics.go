// Package metrics provides Prometheus collectors for log scan activity.
// The package only registers collectors; exposing them over HTTP is the
// consumer's concern.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Skip reasons recorded by the lines_skipped_total counter.
const (
	// SkipUnparsed counts lines with no recognizable timestamp prefix.
	SkipUnparsed = "unparsed"
	// SkipTimeRange counts records outside the queried time range.
	SkipTimeRange = "time_range"
	// SkipLevel counts records rejected by the level predicate.
	SkipLevel = "level"
	// SkipPage counts records rejected by the page predicate.
	SkipPage = "page"
)

// ScanMetrics tracks log file scan activity.
type ScanMetrics struct {
	// ScansTotal counts completed scans, partitioned by outcome
	// ("ok" or "error").
	ScansTotal *prometheus.CounterVec
	// LinesScanned counts every line read across all scans.
	LinesScanned prometheus.Counter
	// RecordsMatched counts lines that passed every predicate.
	RecordsMatched prometheus.Counter
	// LinesSkipped counts rejected lines partitioned by reason.
	LinesSkipped *prometheus.CounterVec
	// ScanDuration observes wall time per scan in seconds.
	ScanDuration prometheus.Histogram
}

// NewScanMetrics creates the collectors and registers them on reg.
// Pass prometheus.DefaultRegisterer for process-global metrics.
func NewScanMetrics(reg prometheus.Registerer) *ScanMetrics {
	m := &ScanMetrics{
		ScansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logsift",
			Name:      "scans_total",
			Help:      "Completed log file scans by outcome.",
		}, []string{"outcome"}),
		LinesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logsift",
			Name:      "lines_scanned_total",
			Help:      "Lines read from log files.",
		}),
		RecordsMatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logsift",
			Name:      "records_matched_total",
			Help:      "Lines that matched every filter predicate.",
		}),
		LinesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logsift",
			Name:      "lines_skipped_total",
			Help:      "Lines rejected during scans, by reason.",
		}, []string{"reason"}),
		ScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "logsift",
			Name:      "scan_duration_seconds",
			Help:      "Wall time per log file scan.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.ScansTotal,
			m.LinesScanned,
			m.RecordsMatched,
			m.LinesSkipped,
			m.ScanDuration,
		)
	}

	return m
}
