// Package config loads the optional advent.cue configuration file.
//
// The file is plain CUE with top-level fields:
//
//	root:  "."
//	year:  2025
//	parts: 2
//	debug: false
//	color: true
//
// It is unified with the #Config schema, so a misspelt field or an out of
// range value is reported with its CUE position. Fields left out keep their
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "advent.cue"

// ErrInvalidConfig is wrapped by every schema violation.
var ErrInvalidConfig = errors.New("invalid config")

const schema = `
#Config: {
	root?:  string & != ""
	year?:  int & >=2015
	parts?: int & >=1 & <=25
	debug?: bool
	color?: bool
}
`

// Config is the resolved configuration.
type Config struct {
	// Root is the directory holding io/y<year>/input and io/y<year>/cases.
	Root string

	// Year is the exercise year used when a command does not name one.
	Year int

	// Parts is the part count used when a day has no case file.
	Parts int

	// Debug disables output capture.
	Debug bool

	// Color enables ANSI styling on the console.
	Color bool
}

// file mirrors the CUE fields; nil means not set.
type file struct {
	Root  *string `json:"root"`
	Year  *int    `json:"year"`
	Parts *int    `json:"parts"`
	Debug *bool   `json:"debug"`
	Color *bool   `json:"color"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Root:  ".",
		Year:  time.Now().Year(),
		Parts: 2,
		Color: true,
	}
}

// Load reads path and merges it over Default. A missing file is not an
// error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(path, data)
}

// Parse compiles CUE source, validates it against #Config and merges it
// over Default. filename is used in error positions.
func Parse(filename string, data []byte) (Config, error) {
	ctx := cuecontext.New()

	def := ctx.CompileString(schema).LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return Config{}, fmt.Errorf("compiling config schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := checkFields(value); err != nil {
		return Config{}, err
	}

	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var raw file
	if err := unified.Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return merge(Default(), raw), nil
}

// known lists the fields declared by #Config.
var known = map[string]bool{"root": true, "year": true, "parts": true, "debug": true, "color": true}

// checkFields rejects top-level fields #Config does not declare.
func checkFields(value cue.Value) error {
	iter, err := value.Fields()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	var unknown []string
	for iter.Next() {
		label := iter.Selector().Unquoted()
		if !known[label] {
			unknown = append(unknown, label)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: unknown fields %v", ErrInvalidConfig, unknown)
	}
	return nil
}

func merge(cfg Config, raw file) Config {
	if raw.Root != nil {
		cfg.Root = *raw.Root
	}
	if raw.Year != nil {
		cfg.Year = *raw.Year
	}
	if raw.Parts != nil {
		cfg.Parts = *raw.Parts
	}
	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
	}
	if raw.Color != nil {
		cfg.Color = *raw.Color
	}
	return cfg
}
