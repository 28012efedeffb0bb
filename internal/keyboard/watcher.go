// Package keyboard watches the terminal for the quit key.
package keyboard

import (
	"io"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"aping/internal/latch"
)

const (
	// QuitKey ends the session
	QuitKey = 'q'
	// ctrlC arrives as input when the terminal does not turn it into a signal
	ctrlC = 0x03

	DefaultPollInterval = 100 * time.Millisecond
)

// Watcher sets the shutdown latch when the quit key is read
type Watcher struct {
	in     io.Reader
	latch  *latch.Latch
	poll   time.Duration
	logger log.Logger
}

// NewWatcher creates a watcher reading keys from in
func NewWatcher(in io.Reader, l *latch.Latch, logger log.Logger) *Watcher {
	return &Watcher{
		in:     in,
		latch:  l,
		poll:   DefaultPollInterval,
		logger: logger,
	}
}

// Run blocks until the latch is set, either by a quit key or by someone else.
// The reader goroutine may outlive Run while it is stuck in Read; it exits
// at its next key.
func (w *Watcher) Run() {
	keys := make(chan byte, 16)
	done := make(chan struct{})
	defer close(done)
	go w.readKeys(keys, done)

	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	for !w.latch.IsSet() {
		select {
		case key, ok := <-keys:
			if !ok {
				_ = level.Debug(w.logger).Log("msg", "Keyboard input closed")
				keys = nil
				continue
			}
			if key == QuitKey || key == ctrlC {
				_ = level.Debug(w.logger).Log("msg", "Quit key pressed", "key", key)
				w.latch.Set()
				return
			}
		case <-ticker.C:
		}
	}
}

func (w *Watcher) readKeys(keys chan<- byte, done <-chan struct{}) {
	defer close(keys)

	buf := make([]byte, 16)
	for {
		n, err := w.in.Read(buf)
		for _, b := range buf[:n] {
			select {
			case keys <- b:
			case <-done:
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				_ = level.Warn(w.logger).Log("msg", "Keyboard read failed", "err", err)
			}
			return
		}
	}
}
