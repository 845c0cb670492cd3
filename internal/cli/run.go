package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/advent/internal/cases"
	"github.com/roach88/advent/internal/input"
	"github.com/roach88/advent/internal/puzzle"
	"github.com/roach88/advent/internal/registry"
	"github.com/roach88/advent/internal/runner"
	"github.com/roach88/advent/internal/textgroup"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Year     int    // 0 uses the config year
	Part     int    // 0 runs every part
	Parts    int    // 0 uses the case file
	Cases    string // case file path; empty uses the default location
	Debug    bool
	Expected string

	// IDGenerator allows overriding the run id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator runner.IDGenerator
}

// PartResult is the outcome of one part.
type PartResult struct {
	Part    int            `json:"part"`
	Name    string         `json:"name"`
	State   puzzle.State   `json:"state"`
	Path    []puzzle.State `json:"path"`
	Cases   int            `json:"cases"`
	Answer  any            `json:"answer,omitempty"`
	Failure string         `json:"failure,omitempty"`
}

// RunResult holds the outcome of a run command.
type RunResult struct {
	RunID  string       `json:"run_id"`
	Year   int          `json:"year"`
	Day    int          `json:"day"`
	Parts  []PartResult `json:"parts"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

// String renders a one-line-per-part summary.
func (r RunResult) String() string {
	if len(r.Parts) == 0 {
		return fmt.Sprintf("No runnable parts for %d day %d.", r.Year, r.Day)
	}
	var sb strings.Builder
	for _, p := range r.Parts {
		mark := "✓"
		if p.State != puzzle.StateReported {
			mark = "✗"
		}
		fmt.Fprintf(&sb, "%s %s %s", mark, p.Name, p.State)
		if p.Failure != "" {
			fmt.Fprintf(&sb, " (%s)", p.Failure)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "%d passed, %d failed", r.Passed, r.Failed)
	return sb.String()
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <day>",
		Short: "Test and solve an exercise day",
		Long: `Test an exercise day against its examples, then solve the real input.

Examples come from io/y<year>/cases/d<dd>.yaml. A part runs when it has
examples or is listed under enable, and is not listed under disable.
Naming a part with --part runs it regardless.

Exit codes:
  0 - Every part that ran was solved
  1 - An example or expected answer did not match
  2 - Command error (unknown exercise, missing input, parse error, etc.)

Examples:
  advent run 1
  advent run 5 --year 2024 --part 2
  advent run 4 --debug
  advent run 1 --part 1 --expected 1132 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Year, "year", 0, "exercise year (defaults to config)")
	cmd.Flags().IntVarP(&opts.Part, "part", "p", 0, "run a single part (0 runs all)")
	cmd.Flags().IntVar(&opts.Parts, "parts", 0, "number of parts (defaults to the case file)")
	cmd.Flags().StringVar(&opts.Cases, "cases", "", "path to the case file")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "show all exercise output instead of capturing it")
	cmd.Flags().StringVar(&opts.Expected, "expected", "", "known answer of the real input (requires --part)")

	return cmd
}

func runDay(opts *RunOptions, dayArg string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	day, err := parseDay(dayArg)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInvalidArgs, "invalid day", err)
	}
	if opts.Part < 0 {
		return f.Fail(ExitCommandError, ErrCodeInvalidArgs, "invalid part", fmt.Errorf("%d is negative", opts.Part))
	}
	if opts.Expected != "" && opts.Part == runner.AllParts {
		return f.Fail(ExitCommandError, ErrCodeInvalidArgs, "invalid flags", errors.New("--expected requires --part"))
	}

	cfg, err := opts.settings()
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}
	year := cfg.Year
	if opts.Year != 0 {
		year = opts.Year
	}

	file, err := loadCaseFile(opts.Cases, cfg.Root, year, day, cfg.Parts)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCases, "failed to load cases", err)
	}
	parts := file.Parts
	if opts.Parts != 0 {
		parts = opts.Parts
	}

	logger := opts.logger(cmd)
	logger.Debug("run configured", "year", year, "day", day, "parts", parts, "root", cfg.Root)

	runnerOpts := []runner.Option{
		runner.WithConsole(opts.console(cmd, cfg)),
		runner.WithLogger(logger),
		runner.WithDebug(cfg.Debug || opts.Debug),
	}
	if opts.IDGenerator != nil {
		runnerOpts = append(runnerOpts, runner.WithIDGenerator(opts.IDGenerator))
	}
	r, err := runner.New(opts.registry(), input.NewResolver(cfg.Root), year, day, parts, runnerOpts...)
	if err != nil {
		return f.Fail(ExitCommandError, errorCode(err), "failed to load exercise", err)
	}

	file.Apply(r)
	if opts.Part != runner.AllParts {
		r.Enable(opts.Part)
	}
	if opts.Expected != "" {
		r.Expect(opts.Part, parseAnswer(opts.Expected))
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := r.Run(ctx, opts.Part)
	if err != nil {
		return f.Fail(ExitCommandError, errorCode(err), "run failed", err)
	}

	result := summarize(r.RunID(), year, day, reports)
	status := "ok"
	if result.Failed > 0 {
		status = "failed"
	}
	if opts.Format == "json" || opts.Verbose || len(result.Parts) == 0 {
		if err := f.Result(status, result); err != nil {
			return err
		}
	}
	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d part(s) failed", result.Failed))
	}
	return nil
}

// parseDay accepts "7", "07" and "d07".
func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(arg), "d"))
	if err != nil {
		return 0, fmt.Errorf("%q is not a day number", arg)
	}
	if day < 1 || day > 25 {
		return 0, fmt.Errorf("day %d outside 1..25", day)
	}
	return day, nil
}

// loadCaseFile loads an explicit case file strictly, or the default one if
// it exists.
func loadCaseFile(path, root string, year, day, parts int) (*cases.File, error) {
	if path != "" {
		return cases.Load(path)
	}
	return cases.LoadOptional(cases.DefaultPath(root, year, day), parts)
}

// parseAnswer reads a flag value the way a case file would, so "42"
// compares equal to an int answer and "abc" to a string one.
func parseAnswer(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil || v == nil {
		return s
	}
	switch v.(type) {
	case map[string]any, []any:
		return s
	}
	return v
}

func summarize(runID string, year, day int, reports []*puzzle.Report) RunResult {
	result := RunResult{
		RunID: runID,
		Year:  year,
		Day:   day,
		Parts: make([]PartResult, 0, len(reports)),
	}
	for _, report := range reports {
		result.Parts = append(result.Parts, PartResult{
			Part:    report.Identity.Part,
			Name:    report.Identity.Name(),
			State:   report.State,
			Path:    report.Path,
			Cases:   report.Cases,
			Answer:  report.Answer,
			Failure: report.Failure,
		})
		if report.Pass() {
			result.Passed++
		} else {
			result.Failed++
		}
	}
	return result
}

// errorCode maps harness errors to CLI error codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, registry.ErrDayNotFound),
		errors.Is(err, registry.ErrPartNotFound),
		errors.Is(err, registry.ErrDuplicate),
		errors.Is(err, puzzle.ErrInvalidClassName),
		errors.Is(err, puzzle.ErrInvalidYearFolder):
		return ErrCodeExercise
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeInput
	case errors.Is(err, textgroup.ErrNotSingleGroup),
		errors.Is(err, puzzle.ErrParsedType):
		return ErrCodeRun
	default:
		return ErrCodeGeneric
	}
}
