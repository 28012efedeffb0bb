package models

import (
	"context"
)

// Store defines operations for the session results table
type Store interface {
	SaveResult(result PingResult) error
	GetResults() ([]PingResult, error)
	GetStats() ([]StoredStats, error)
	GetOutages(minFailures int) ([]Outage, error)
	Close() error
}

// Pinger defines ping execution operations
type Pinger interface {
	Ping(ctx context.Context, target string) PingResult
}

// OutputParser extracts the reply line and latency from ping output.
// ok is false when no recognizable reply line exists; hasRTT is false when the
// line was found but its latency could not be read.
type OutputParser interface {
	Parse(output string) (line string, rtt int, hasRTT bool, ok bool)
}

// Alerter sounds the audible alert
type Alerter interface {
	Alert() error
}

// ReportGenerator writes an end-of-session report
type ReportGenerator interface {
	GenerateReport(outputDir, destination string, stats Stats) (string, error)
}
