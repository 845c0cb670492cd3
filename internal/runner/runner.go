// Package runner drives the parts of one exercise day.
//
// A Runner holds the day's example cases per part and a table of which
// parts are runnable. Adding a case marks its part runnable; Enable and
// Disable override that. Run executes the requested part (or every part in
// ascending order) through puzzle.Unit.SolveAndReport.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/roach88/advent/internal/console"
	"github.com/roach88/advent/internal/puzzle"
	"github.com/roach88/advent/internal/registry"
)

// AllParts asks Run for every part in ascending order.
const AllParts = 0

// Runner executes the parts of one exercise day.
//
// Thread-safety: a Runner is not safe for concurrent use. Runs are
// synchronous and share one console.
type Runner struct {
	year     int
	day      int
	parts    int
	module   *registry.Module
	inputs   puzzle.Inputs
	runnable map[int]bool
	cases    map[int][]puzzle.Case
	expected map[int]any

	console *console.Console
	logger  *slog.Logger
	ids     IDGenerator
	debug   bool
	runID   string
}

// Option configures a Runner.
type Option func(*Runner)

// WithConsole sets the console receiving exercise output.
// Defaults to a console over os.Stdout.
func WithConsole(c *console.Console) Option {
	return func(r *Runner) {
		r.console = c
	}
}

// WithLogger sets the logger for run lifecycle events.
// Defaults to a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithIDGenerator sets the run id source. Defaults to UUIDv7.
func WithIDGenerator(g IDGenerator) Option {
	return func(r *Runner) {
		r.ids = g
	}
}

// WithDebug makes every capture scope pass output straight through.
func WithDebug(debug bool) Option {
	return func(r *Runner) {
		r.debug = debug
	}
}

// New loads the exercise module for year and day from reg.
//
// parts is the number of parts the day has; Run with AllParts iterates
// 1..parts. An error is returned when reg has nothing for the day.
func New(reg *registry.Registry, inputs puzzle.Inputs, year, day, parts int, opts ...Option) (*Runner, error) {
	if parts < 1 {
		return nil, fmt.Errorf("parts must be at least 1, got %d", parts)
	}
	module, err := reg.Day(year, day)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		year:     year,
		day:      day,
		parts:    parts,
		module:   module,
		inputs:   inputs,
		runnable: make(map[int]bool),
		cases:    make(map[int][]puzzle.Case),
		expected: make(map[int]any),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.console == nil {
		r.console = console.New(os.Stdout)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.ids == nil {
		r.ids = UUIDv7Generator{}
	}
	return r, nil
}

// AddCase appends an example case for part and marks the part runnable.
func (r *Runner) AddCase(part int, input string, expected any) {
	r.cases[part] = append(r.cases[part], puzzle.Case{Input: input, Expected: expected})
	r.runnable[part] = true
}

// Enable marks part runnable.
func (r *Runner) Enable(part int) {
	r.runnable[part] = true
}

// Disable marks part not runnable. Its cases are kept.
func (r *Runner) Disable(part int) {
	r.runnable[part] = false
}

// RunID returns the id of the most recent Run, or "" before the first.
func (r *Runner) RunID() string {
	return r.runID
}

// Expect sets the known answer for part's real input.
func (r *Runner) Expect(part int, answer any) {
	r.expected[part] = answer
}

// Runnable reports whether part will run.
func (r *Runner) Runnable(part int) bool {
	return r.runnable[part]
}

// Cases returns the example cases registered for part.
func (r *Runner) Cases(part int) []puzzle.Case {
	return r.cases[part]
}

// Run executes part, or every part from 1 to the day's part count when part
// is AllParts. Parts that are not runnable are skipped.
//
// Reports are returned for every part that ran, including the one that
// failed with an error. ctx is checked before each part.
func (r *Runner) Run(ctx context.Context, part int) ([]*puzzle.Report, error) {
	r.runID = r.ids.Generate()
	logger := r.logger.With(
		slog.String("run_id", r.runID),
		slog.String("exercise", fmt.Sprintf("y%04d/d%02d", r.year, r.day)),
	)

	targets := []int{part}
	if part == AllParts {
		targets = make([]int, 0, r.parts)
		for p := 1; p <= r.parts; p++ {
			targets = append(targets, p)
		}
	}

	var reports []*puzzle.Report
	for _, p := range targets {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		if !r.runnable[p] {
			logger.Debug("part skipped", slog.Int("part", p))
			continue
		}

		report, err := r.runPart(logger, p)
		if report != nil {
			reports = append(reports, report)
		}
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}

func (r *Runner) runPart(logger *slog.Logger, part int) (*puzzle.Report, error) {
	entry, err := r.module.Part(part)
	if err != nil {
		return nil, err
	}

	cases := r.cases[part]
	logger.Info("part started", slog.Int("part", part), slog.Int("cases", len(cases)))

	opts := []puzzle.Option{puzzle.WithDebug(r.debug)}
	if answer, ok := r.expected[part]; ok {
		opts = append(opts, puzzle.WithExpected(answer))
	}

	unit := puzzle.New(entry.Identity, entry.New(), r.inputs)
	report, err := unit.SolveAndReport(r.console, cases, opts...)
	if err != nil {
		logger.Error("part errored", slog.Int("part", part), slog.String("error", err.Error()))
		return report, err
	}

	logger.Info("part finished",
		slog.Int("part", part),
		slog.String("state", string(report.State)),
	)
	return report, nil
}
