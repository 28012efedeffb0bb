// Package alert sounds the terminal bell.
package alert

import (
	"fmt"
	"io"
)

// Bell is the ASCII BEL control character
const Bell = "\a"

// ShouldAlert reports whether a ping outcome rings the bell.
// Normally successes ring; in inverse mode failures do.
func ShouldAlert(success, inverse bool) bool {
	return success != inverse
}

type syncer interface {
	Sync() error
}

// Terminal writes the bell to a terminal stream
type Terminal struct {
	w io.Writer
}

// New creates an alerter writing to w
func New(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Alert writes a single bell and flushes the stream when it supports it
func (t *Terminal) Alert() error {
	if _, err := io.WriteString(t.w, Bell); err != nil {
		return fmt.Errorf("failed to write bell: %w", err)
	}
	if s, ok := t.w.(syncer); ok {
		// stdout on a terminal may refuse fsync; the bell is already written
		_ = s.Sync()
	}
	return nil
}
