// Package input locates and reads the raw input of an exercise part.
//
// Inputs live under <root>/io/y<year>/input. A part-specific file
// d<dd>p<pp>.in overrides the day-level file d<dd>.in shared by every part of
// the day. Text is returned unmodified apart from UTF-8 decoding; trimming
// and splitting are the parser's job.
package input

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
)

// NotFoundError reports that neither candidate input file exists.
type NotFoundError struct {
	PartPath string
	DayPath  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no input file: tried %s and %s", e.PartPath, e.DayPath)
}

func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// Resolver maps exercise coordinates to input files under Root.
type Resolver struct {
	Root string
}

// NewResolver creates a resolver rooted at root.
func NewResolver(root string) *Resolver {
	return &Resolver{Root: root}
}

// Dir returns the input directory for a year.
func (r *Resolver) Dir(year int) string {
	return filepath.Join(r.Root, "io", fmt.Sprintf("y%04d", year), "input")
}

// PartPath returns the part-specific input path.
func (r *Resolver) PartPath(year, day, part int) string {
	return filepath.Join(r.Dir(year), fmt.Sprintf("d%02dp%02d.in", day, part))
}

// DayPath returns the input path shared by all parts of a day.
func (r *Resolver) DayPath(year, day int) string {
	return filepath.Join(r.Dir(year), fmt.Sprintf("d%02d.in", day))
}

// Path returns the part-specific path if it exists, else the day path.
func (r *Resolver) Path(year, day, part int) (string, error) {
	partPath := r.PartPath(year, day, part)
	if exists(partPath) {
		return partPath, nil
	}
	dayPath := r.DayPath(year, day)
	if exists(dayPath) {
		return dayPath, nil
	}
	return "", &NotFoundError{PartPath: partPath, DayPath: dayPath}
}

// Read returns the raw input text of an exercise part.
func (r *Resolver) Read(year, day, part int) (string, error) {
	path, err := r.Path(year, day, part)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s as UTF-8: %w", path, err)
	}
	return string(text), nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
