//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package keyboard

import (
	"golang.org/x/term"
)

// enableKeyInput falls back to raw mode. Ctrl-C then arrives as a key and is
// handled by the watcher.
func enableKeyInput(fd int) (func() error, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}
