package loader

import "io"

// SetStdinIsTerminal replaces the terminal check for the duration of a test.
func SetStdinIsTerminal(check func(io.Reader) bool) (restore func()) {
	prev := stdinIsTerminal
	stdinIsTerminal = check
	return func() { stdinIsTerminal = prev }
}
