package models

import "time"

// Stats holds the running counters for one session.
// Latencies are whole milliseconds.
type Stats struct {
	Sent     int `json:"sent"`
	Received int `json:"received"`
	TotalRTT int `json:"total_rtt"`
	MinRTT   int `json:"min_rtt"`
	MaxRTT   int `json:"max_rtt"`
}

// Record folds one ping cycle into the counters. Every attempt counts as sent;
// only a parsed latency counts as received.
func (s *Stats) Record(result PingResult) {
	s.Sent++
	if !result.Success || !result.HasRTT {
		return
	}

	if s.Received == 0 || result.RTT < s.MinRTT {
		s.MinRTT = result.RTT
	}
	if s.Received == 0 || result.RTT > s.MaxRTT {
		s.MaxRTT = result.RTT
	}
	s.Received++
	s.TotalRTT += result.RTT
}

// Lost returns the number of pings without a parsed reply
func (s Stats) Lost() int {
	return s.Sent - s.Received
}

// LossPercent returns the loss percentage, or 0 when nothing was sent
func (s Stats) LossPercent() float64 {
	if s.Sent == 0 {
		return 0
	}
	return float64(s.Lost()) / float64(s.Sent) * 100
}

// AvgRTT returns the integer average latency, or 0 when nothing was received
func (s Stats) AvgRTT() int {
	if s.Received == 0 {
		return 0
	}
	return s.TotalRTT / s.Received
}

// Outage represents a run of consecutive failed pings
type Outage struct {
	Target       string    `json:"target"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	FailedChecks int       `json:"failed_checks"`
	Duration     string    `json:"duration"`
}

// StoredStats is the SQL-side aggregate of a session's results
type StoredStats struct {
	Target     string  `json:"target"`
	TotalPings int     `json:"total_pings"`
	Successful int     `json:"successful_pings"`
	AvgRTT     float64 `json:"avg_rtt"`
	MaxRTT     float64 `json:"max_rtt"`
	MinRTT     float64 `json:"min_rtt"`
}
