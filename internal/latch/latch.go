// Package latch provides a one-way shutdown flag.
package latch

import "sync/atomic"

// Latch starts open and can only ever be closed. Safe for concurrent use.
type Latch struct {
	closed atomic.Bool
}

// New creates an open latch
func New() *Latch {
	return &Latch{}
}

// Set closes the latch. It reports whether this call performed the transition.
func (l *Latch) Set() bool {
	return l.closed.CompareAndSwap(false, true)
}

// IsSet reports whether the latch has been closed
func (l *Latch) IsSet() bool {
	return l.closed.Load()
}
