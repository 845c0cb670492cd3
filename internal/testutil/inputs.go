package testutil

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// MissingInputError is returned by MemoryInputs for unknown coordinates.
type MissingInputError struct {
	Year, Day, Part int
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("no input for %04d day %d part %d", e.Year, e.Day, e.Part)
}

func (e *MissingInputError) Unwrap() error {
	return fs.ErrNotExist
}

// InputKey builds the MemoryInputs key for a part, or for a whole day
// when part is omitted.
func InputKey(year, day int, part ...int) string {
	return key(append([]int{year, day}, part...)...)
}

func key(parts ...int) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = strconv.Itoa(p)
	}
	return strings.Join(s, "/")
}
