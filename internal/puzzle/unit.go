package puzzle

import (
	"fmt"
	"strings"

	"github.com/roach88/advent/internal/console"
)

const defaultDividerWidth = 42

// Unit runs one exercise part: example cases first, then the real input.
type Unit struct {
	id           Identity
	exercise     Exercise
	inputs       Inputs
	dividerWidth int
}

// New creates a unit for an exercise part. The identity is fixed for the
// lifetime of the unit.
func New(id Identity, exercise Exercise, inputs Inputs) *Unit {
	return &Unit{
		id:           id,
		exercise:     exercise,
		inputs:       inputs,
		dividerWidth: defaultDividerWidth,
	}
}

// Identity returns the unit's coordinates.
func (u *Unit) Identity() Identity {
	return u.id
}

// Name returns the compact name, e.g. "D07P02".
func (u *Unit) Name() string {
	return u.id.Name()
}

// FullName returns the readable name, e.g. "Day 7, Part 2".
func (u *Unit) FullName() string {
	return u.id.FullName()
}

// Header returns a banner titled "<full name> - msg". When updateDividerWidth
// is set, later dividers match the banner's width.
func (u *Unit) Header(msg string, updateDividerWidth bool) string {
	banner := console.Banner(u.FullName() + " - " + msg)
	if updateDividerWidth {
		width := 0
		for _, line := range strings.Split(banner, "\n") {
			width = max(width, len([]rune(line)))
		}
		u.dividerWidth = width
	}
	return banner
}

// Divider returns a styled rule of the given width; width <= 0 uses the
// width of the last tracked header.
func (u *Unit) Divider(out *console.Console, width int) string {
	if width <= 0 {
		width = u.dividerWidth
	}
	return out.Style(strings.Repeat("=", max(width, 1)), console.Black, console.Blue)
}

// IsSolved compares an answer with the expected value. On mismatch it
// writes a failure report to out and returns false.
func (u *Unit) IsSolved(out *console.Console, actual, expected any) bool {
	if Equal(actual, expected) {
		return true
	}
	out.Echo(fmt.Sprintf("%s\nExpected:\n%v\nSolution:\n%v", out.Fail("FAILED!"), expected, actual))
	if d := diff(expected, actual); d != "" {
		out.Echo("Diff (-expected +solution):\n" + d)
	}
	return false
}

// Test runs every case in order, each inside its own capture scope.
//
// No cases means success. The first mismatch flushes that case's buffered
// output and stops; a parse or solve error flushes and is returned.
func (u *Unit) Test(out *console.Console, cases []Case, opts ...Option) (bool, error) {
	cfg := newRunConfig(opts)
	if len(cases) == 0 {
		return true, nil
	}

	for i, tc := range cases {
		passed := true
		err := out.Capture(cfg.debug, func(c *console.Console, capture *console.Capture) error {
			c.Echo(u.Header(fmt.Sprintf("TEST %d", i), true))
			answer, err := u.compute(c, tc.Input)
			if err != nil {
				return err
			}
			if !u.IsSolved(c, answer, tc.Expected) {
				capture.Flush = true
				passed = false
				return nil
			}
			c.Echo(u.Divider(c, 0))
			return nil
		})
		if err != nil {
			return false, fmt.Errorf("%s test %d: %w", u.Name(), i, err)
		}
		if !passed {
			return false, nil
		}
	}
	return true, nil
}

// SolveAndReport tests the exercise against cases and, only if they all
// pass, solves the real input and prints the answer.
//
// Mismatches are not errors: they end the machine in FAILED and are
// reported through out. Errors are returned for configuration, input and
// parse failures.
func (u *Unit) SolveAndReport(out *console.Console, cases []Case, opts ...Option) (*Report, error) {
	cfg := newRunConfig(opts)
	report := newReport(u.id, len(cases))

	if len(cases) == 0 {
		report.advance(StateSkipTests)
	} else {
		report.advance(StateRunningTests)
		ok, err := u.Test(out, cases, opts...)
		if err != nil {
			report.fail(err.Error())
			return report, err
		}
		if !ok {
			report.fail("example case mismatch")
			return report, nil
		}
		report.advance(StateAllPass)
	}

	out.Echo(u.Header("SOLUTION", true))
	report.advance(StateComputing)

	raw, err := u.inputs.Read(u.id.Year, u.id.Day, u.id.Part)
	if err != nil {
		report.fail(err.Error())
		return report, err
	}

	var answer any
	solved := true
	err = out.Capture(cfg.debug, func(c *console.Console, capture *console.Capture) error {
		var err error
		answer, err = u.compute(c, raw)
		if err != nil {
			return err
		}
		if cfg.hasExpected {
			report.advance(StateChecking)
			if !u.IsSolved(c, answer, cfg.expected) {
				capture.Flush = true
				solved = false
			}
		}
		return nil
	})
	if err != nil {
		report.fail(err.Error())
		return report, fmt.Errorf("%s solution: %w", u.Name(), err)
	}
	if !solved {
		report.fail("solution mismatch")
		return report, nil
	}

	out.Echo(answer)
	report.Answer = answer
	report.advance(StateReported)
	return report, nil
}

func (u *Unit) compute(out *console.Console, raw string) (any, error) {
	data, err := u.exercise.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	answer, err := u.exercise.Solve(out, data)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	return answer, nil
}
