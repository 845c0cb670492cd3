// Package textgroup splits raw puzzle input into blank-line separated groups.
//
// A group is a contiguous run of non-blank lines. Whitespace-only lines are
// boundaries and never content. Every group is cropped so grid-like input
// comes out rectangular:
//
//   - the leading whitespace shared by all lines of the group is removed
//   - shorter lines are right-padded with spaces to the widest line
//
// Lines, Flat and Grid all assert that the input holds exactly one group.
// A second group means the exercise's parsing assumption is wrong, so the
// violation is reported as an error (or a panic from the Must variants)
// rather than silently merged.
package textgroup

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNotSingleGroup is returned when input expected to be one group is not.
var ErrNotSingleGroup = errors.New("input is not a single line group")

// GroupCountError reports how many groups were found when exactly one was expected.
type GroupCountError struct {
	Count int
}

func (e *GroupCountError) Error() string {
	return fmt.Sprintf("expected exactly 1 line group, found %d", e.Count)
}

func (e *GroupCountError) Unwrap() error {
	return ErrNotSingleGroup
}

// Groups splits text into cropped line groups.
// Runs of blank lines never produce empty groups.
func Groups(text string) [][]string {
	var groups [][]string
	var current []string
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				groups = append(groups, crop(current))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		groups = append(groups, crop(current))
	}
	return groups
}

// Lines returns the lines of text, which must form exactly one group.
func Lines(text string) ([]string, error) {
	groups := Groups(text)
	if len(groups) != 1 {
		return nil, &GroupCountError{Count: len(groups)}
	}
	return groups[0], nil
}

// Flat joins the single group of text into one string with no separator.
func Flat(text string) (string, error) {
	lines, err := Lines(text)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, ""), nil
}

// Grid returns the single group of text as rows of runes.
func Grid(text string) ([][]rune, error) {
	lines, err := Lines(text)
	if err != nil {
		return nil, err
	}
	grid := make([][]rune, len(lines))
	for i, line := range lines {
		grid[i] = []rune(line)
	}
	return grid, nil
}

// MustLines is like Lines but panics if text is not a single group.
func MustLines(text string) []string {
	lines, err := Lines(text)
	if err != nil {
		panic(err)
	}
	return lines
}

// MustFlat is like Flat but panics if text is not a single group.
func MustFlat(text string) string {
	flat, err := Flat(text)
	if err != nil {
		panic(err)
	}
	return flat
}

// MustGrid is like Grid but panics if text is not a single group.
func MustGrid(text string) [][]rune {
	grid, err := Grid(text)
	if err != nil {
		panic(err)
	}
	return grid
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// crop removes the common left margin and pads every line to the same width.
func crop(lines []string) []string {
	margin := -1
	for _, line := range lines {
		n := leadingSpace(line)
		if margin < 0 || n < margin {
			margin = n
		}
	}

	cropped := make([]string, len(lines))
	width := 0
	for i, line := range lines {
		cropped[i] = string([]rune(line)[margin:])
		if w := utf8.RuneCountInString(cropped[i]); w > width {
			width = w
		}
	}
	for i, line := range cropped {
		if pad := width - utf8.RuneCountInString(line); pad > 0 {
			cropped[i] = line + strings.Repeat(" ", pad)
		}
	}
	return cropped
}

func leadingSpace(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}
