//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package keyboard

import (
	"golang.org/x/sys/unix"
)

// enableKeyInput clears canonical mode and echo only. Signal generation and
// output processing stay on, so Ctrl-C still raises SIGINT and newlines still
// return the carriage.
func enableKeyInput(fd int) (func() error, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	oldState := *termios

	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		return nil, err
	}

	return func() error {
		return unix.IoctlSetTermios(fd, ioctlWriteTermios, &oldState)
	}, nil
}
