// Package cases loads the example cases of an exercise day from YAML.
//
// A case file lives at io/y<year>/cases/d<dd>.yaml:
//
//	parts: 2
//	enable: [1, 2]
//	disable: []
//	cases:
//	  - part: 1
//	    input: |
//	      L68
//	      L30
//	    expected: 3
//	answers:
//	  1: 1132
//
// Every case marks its part runnable. enable and disable are applied after
// the cases, in that order. answers are the known results of the real input.
package cases

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultParts is the part count used when a file does not set parts.
const DefaultParts = 2

// ErrInvalidFile is wrapped by every validation error.
var ErrInvalidFile = errors.New("invalid case file")

// File is a decoded case file.
type File struct {
	// Parts is the number of parts the day has.
	Parts int `yaml:"parts,omitempty"`

	// Enable lists parts to run even without cases.
	Enable []int `yaml:"enable,omitempty"`

	// Disable lists parts not to run even with cases.
	Disable []int `yaml:"disable,omitempty"`

	// Cases are the example inputs in run order.
	Cases []Case `yaml:"cases,omitempty"`

	// Answers maps a part to the known answer of its real input.
	Answers map[int]any `yaml:"answers,omitempty"`
}

// Case is one example input and its expected answer.
type Case struct {
	Part     int    `yaml:"part"`
	Input    string `yaml:"input"`
	Expected any    `yaml:"expected"`
}

// Registrar receives the contents of a case file. *runner.Runner
// implements it.
type Registrar interface {
	AddCase(part int, input string, expected any)
	Enable(part int)
	Disable(part int)
	Expect(part int, answer any)
}

// DefaultPath returns the case file location for a day under root.
func DefaultPath(root string, year, day int) string {
	return filepath.Join(root, "io", fmt.Sprintf("y%04d", year), "cases", fmt.Sprintf("d%02d.yaml", day))
}

// Load reads and validates a case file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields, or fails validation.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadOptional is Load, except that a missing file yields an empty File
// with the given part count.
func LoadOptional(path string, parts int) (*File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		f := &File{Parts: parts}
		if err := f.Validate(); err != nil {
			return nil, err
		}
		return f, nil
	}
	return Load(path)
}

// Parse decodes and validates case file contents.
func Parse(data []byte) (*File, error) {
	var f File
	if len(bytes.TrimSpace(data)) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	if f.Parts == 0 {
		f.Parts = DefaultParts
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks part numbers, inputs, and expected answers.
func (f *File) Validate() error {
	if f.Parts < 1 {
		return fmt.Errorf("%w: parts must be at least 1, got %d", ErrInvalidFile, f.Parts)
	}
	inRange := func(field string, part int) error {
		if part < 1 || part > f.Parts {
			return fmt.Errorf("%w: %s part %d outside 1..%d", ErrInvalidFile, field, part, f.Parts)
		}
		return nil
	}

	for i, c := range f.Cases {
		if err := inRange(fmt.Sprintf("cases[%d]", i), c.Part); err != nil {
			return err
		}
		if strings.TrimSpace(c.Input) == "" {
			return fmt.Errorf("%w: cases[%d] input is empty", ErrInvalidFile, i)
		}
		if c.Expected == nil {
			return fmt.Errorf("%w: cases[%d] expected is required", ErrInvalidFile, i)
		}
	}
	for _, p := range f.Enable {
		if err := inRange("enable", p); err != nil {
			return err
		}
	}
	for _, p := range f.Disable {
		if err := inRange("disable", p); err != nil {
			return err
		}
	}
	for p, answer := range f.Answers {
		if err := inRange("answers", p); err != nil {
			return err
		}
		if answer == nil {
			return fmt.Errorf("%w: answers part %d is empty", ErrInvalidFile, p)
		}
	}
	return nil
}

// Apply registers the file's cases, then its enable and disable lists, then
// its answers.
func (f *File) Apply(r Registrar) {
	for _, c := range f.Cases {
		r.AddCase(c.Part, c.Input, c.Expected)
	}
	for _, p := range f.Enable {
		r.Enable(p)
	}
	for _, p := range f.Disable {
		r.Disable(p)
	}
	for _, p := range sortedKeys(f.Answers) {
		r.Expect(p, f.Answers[p])
	}
}

// CountByPart returns the number of cases per part, for every part from 1
// to Parts.
func (f *File) CountByPart() map[int]int {
	counts := make(map[int]int, f.Parts)
	for p := 1; p <= f.Parts; p++ {
		counts[p] = 0
	}
	for _, c := range f.Cases {
		counts[c.Part]++
	}
	return counts
}

func sortedKeys(m map[int]any) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
