package testutil

import (
	"bytes"

	"github.com/roach88/advent/internal/console"
)

// NewConsole returns a colourless console writing to a fresh buffer.
//
// Colour is disabled everywhere, including inside capture scopes, so the
// buffer holds plain text suitable for string and golden comparison.
func NewConsole() (*console.Console, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return console.New(buf, console.WithNoColor()), buf
}

// MemoryInputs serves exercise input from memory.
// Keys are "<year>/<day>/<part>"; a missing key falls back to "<year>/<day>".
type MemoryInputs map[string]string

// Read implements puzzle.Inputs.
func (m MemoryInputs) Read(year, day, part int) (string, error) {
	if text, ok := m[key(year, day, part)]; ok {
		return text, nil
	}
	if text, ok := m[key(year, day)]; ok {
		return text, nil
	}
	return "", &MissingInputError{Year: year, Day: day, Part: part}
}
