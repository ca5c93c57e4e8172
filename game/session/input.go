package session

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"
)

// QuitCommand ends the session
const QuitCommand = 'q'

const (
	ctrlC = 0x03
	ctrlD = 0x04
)

// CommandReader yields one recognised command at a time
type CommandReader interface {
	// ReadCommand blocks until one of w, a, s, d or q is read.
	// It returns io.EOF once the input is exhausted.
	ReadCommand() (rune, error)
}

// IsValidCommand reports whether r is one of the recognised command keys
func IsValidCommand(r rune) bool {
	switch r {
	case 'w', 'a', 's', 'd', QuitCommand:
		return true
	}
	return false
}

// LineReader reads commands from line-buffered input. The first non-space
// character of a line is the command and the rest of the line is discarded.
type LineReader struct {
	in *bufio.Reader
}

// NewLineReader creates a LineReader over r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{in: bufio.NewReader(r)}
}

// ReadCommand implements CommandReader
func (lr *LineReader) ReadCommand() (rune, error) {
	for {
		line, err := lr.in.ReadString('\n')
		if ch, ok := firstRune(line); ok && IsValidCommand(ch) {
			return ch, nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func firstRune(line string) (rune, bool) {
	for len(line) > 0 {
		r, size := utf8.DecodeRuneInString(line)
		if !unicode.IsSpace(r) {
			return r, true
		}
		line = line[size:]
	}
	return 0, false
}

// RawReader reads single keystrokes from a terminal in raw mode.
// Ctrl-C and Ctrl-D are treated as quit since raw mode disables signals.
type RawReader struct {
	in  io.Reader
	buf [1]byte
}

// NewRawReader creates a RawReader over r
func NewRawReader(r io.Reader) *RawReader {
	return &RawReader{in: r}
}

// ReadCommand implements CommandReader
func (rr *RawReader) ReadCommand() (rune, error) {
	for {
		if _, err := io.ReadFull(rr.in, rr.buf[:]); err != nil {
			if err == io.ErrUnexpectedEOF {
				err = io.EOF
			}
			return 0, err
		}

		ch := rune(rr.buf[0])
		switch {
		case ch == ctrlC || ch == ctrlD:
			return QuitCommand, nil
		case IsValidCommand(ch):
			return ch, nil
		}
	}
}
