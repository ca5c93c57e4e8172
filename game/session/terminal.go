package session

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal holds a terminal that was switched into raw mode
type Terminal struct {
	fd    int
	state *term.State
}

// IsTerminal reports whether f is connected to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// MakeRaw puts f into raw mode so single keystrokes can be read without
// waiting for Enter. Restore must be called before the process exits.
func MakeRaw(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return &Terminal{fd: fd, state: state}, nil
}

// Restore returns the terminal to the mode it had before MakeRaw
func (t *Terminal) Restore() error {
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}
