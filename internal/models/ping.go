package models

import "time"

// PingResult represents a single ping cycle
type PingResult struct {
	Timestamp time.Time `json:"timestamp"`
	Target    string    `json:"target"`
	Success   bool      `json:"success"` // ping process exited zero
	HasRTT    bool      `json:"has_rtt"`
	RTT       int       `json:"rtt_ms"` // milliseconds
	// Line is the matched reply line, trimmed. Empty when nothing matched.
	Line         string `json:"line"`
	Output       string `json:"output"`
	ErrorMessage string `json:"error_message"`
	// SpawnFailed is set when the ping process could not be started at all.
	SpawnFailed bool `json:"spawn_failed"`
}
