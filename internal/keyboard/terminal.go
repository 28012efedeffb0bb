package keyboard

import (
	"fmt"

	"golang.org/x/term"
)

// IsTerminal reports whether fd is a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// EnableKeyInput switches the terminal on fd to unbuffered, no-echo input so
// single keypresses can be read. The returned func restores the previous state.
func EnableKeyInput(fd int) (func() error, error) {
	restore, err := enableKeyInput(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to configure terminal: %w", err)
	}
	return restore, nil
}
