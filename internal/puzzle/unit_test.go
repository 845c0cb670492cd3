package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/console"
	"github.com/roach88/advent/internal/testutil"
)

var testID = Identity{Year: 2025, Day: 7, Part: 2}

// doubler parses an integer and doubles it.
type doubler struct {
	solves *int
}

func (d doubler) Parse(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

func (d doubler) Solve(out *console.Console, n int) (int, error) {
	if d.solves != nil {
		*d.solves++
	}
	out.Echo("doubling", n)
	return n * 2, nil
}

// failingSolver returns an error from Solve.
type failingSolver struct{}

func (failingSolver) Parse(raw string) (string, error) { return raw, nil }

func (failingSolver) Solve(out *console.Console, data string) (string, error) {
	out.Echo("about to fail on", data)
	return "", errors.New("no path found")
}

func newDoublerUnit(inputs Inputs) (*Unit, *int) {
	solves := 0
	return New(testID, Adapt[int, int](doubler{solves: &solves}), inputs), &solves
}

func TestTest_NoCasesPasses(t *testing.T) {
	unit, solves := newDoublerUnit(testutil.MemoryInputs{})
	out, buf := testutil.NewConsole()

	ok, err := unit.Test(out, nil)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, *solves)
	assert.Empty(t, buf.String())
}

func TestTest_PassingCaseIsQuiet(t *testing.T) {
	unit, solves := newDoublerUnit(testutil.MemoryInputs{})
	out, buf := testutil.NewConsole()

	ok, err := unit.Test(out, []Case{{Input: "21", Expected: 42}})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, *solves)
	assert.Empty(t, buf.String())
}

func TestTest_FailingCaseFlushesOnce(t *testing.T) {
	unit, _ := newDoublerUnit(testutil.MemoryInputs{})
	out, buf := testutil.NewConsole()

	ok, err := unit.Test(out, []Case{{Input: "21", Expected: 99}})

	require.NoError(t, err)
	assert.False(t, ok)

	output := buf.String()
	assert.Equal(t, 1, strings.Count(output, "| Day 7, Part 2 - TEST 0 |"))
	assert.Equal(t, 1, strings.Count(output, "FAILED!"))
	assert.Contains(t, output, "Expected:\n99\n")
	assert.Contains(t, output, "Solution:\n42\n")
	testutil.AssertGolden(t, "failing_case", buf.Bytes())
}

func TestTest_FirstFailureAbortsRemainingCases(t *testing.T) {
	unit, solves := newDoublerUnit(testutil.MemoryInputs{})
	out, buf := testutil.NewConsole()

	ok, err := unit.Test(out, []Case{
		{Input: "1", Expected: 2},
		{Input: "21", Expected: 99},
		{Input: "3", Expected: 6},
	})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, *solves)
	assert.NotContains(t, buf.String(), "TEST 0")
	assert.Contains(t, buf.String(), "TEST 1")
	assert.NotContains(t, buf.String(), "TEST 2")
}

func TestTest_ParseErrorFlushesAndReturns(t *testing.T) {
	unit, solves := newDoublerUnit(testutil.MemoryInputs{})
	out, buf := testutil.NewConsole()

	ok, err := unit.Test(out, []Case{{Input: "twenty-one", Expected: 42}})

	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "D07P02 test 0: parse:")
	assert.Zero(t, *solves)
	assert.Contains(t, buf.String(), "TEST 0")
}

func TestTest_SolveErrorFlushesDiagnostics(t *testing.T) {
	unit := New(testID, Adapt[string, string](failingSolver{}), testutil.MemoryInputs{})
	out, buf := testutil.NewConsole()

	_, err := unit.Test(out, []Case{{Input: "maze", Expected: "exit"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no path found")
	assert.Contains(t, buf.String(), "about to fail on maze")
}

func TestTest_DebugShowsPassingOutput(t *testing.T) {
	unit, _ := newDoublerUnit(testutil.MemoryInputs{})
	out, buf := testutil.NewConsole()

	ok, err := unit.Test(out, []Case{{Input: "21", Expected: 42}}, WithDebug(true))

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "doubling 21")
	assert.Contains(t, buf.String(), "TEST 0")
}

func TestSolveAndReport_EndToEnd(t *testing.T) {
	inputs := testutil.MemoryInputs{testutil.InputKey(2025, 7): "10\n"}
	unit, _ := newDoublerUnit(inputs)
	out, buf := testutil.NewConsole()

	report, err := unit.SolveAndReport(out, []Case{{Input: "21", Expected: 42}})

	require.NoError(t, err)
	assert.Equal(t, StateReported, report.State)
	assert.True(t, report.Pass())
	assert.True(t, report.Terminal())
	assert.Equal(t, 20, report.Answer)
	assert.Equal(t, []State{StateInit, StateRunningTests, StateAllPass, StateComputing, StateReported}, report.Path)
	assert.Equal(t, console.Banner("Day 7, Part 2 - SOLUTION")+"\n20\n", buf.String())
	assert.NotContains(t, buf.String(), "FAILED!")
}

func TestSolveAndReport_FailingCaseSkipsRealInput(t *testing.T) {
	// No input is registered: reading it would fail the call.
	unit, solves := newDoublerUnit(testutil.MemoryInputs{})
	out, buf := testutil.NewConsole()

	report, err := unit.SolveAndReport(out, []Case{{Input: "21", Expected: 99}})

	require.NoError(t, err)
	assert.Equal(t, StateFailed, report.State)
	assert.Equal(t, []State{StateInit, StateRunningTests, StateFailed}, report.Path)
	assert.Equal(t, 1, *solves)
	assert.Nil(t, report.Answer)
	assert.NotContains(t, buf.String(), "SOLUTION")
	assert.Equal(t, 1, strings.Count(buf.String(), "FAILED!"))
	assert.Equal(t, 1, strings.Count(buf.String(), "TEST 0"))
}

func TestSolveAndReport_NoCasesSkipsTests(t *testing.T) {
	inputs := testutil.MemoryInputs{testutil.InputKey(2025, 7, 2): "5"}
	unit, _ := newDoublerUnit(inputs)
	out, buf := testutil.NewConsole()

	report, err := unit.SolveAndReport(out, nil)

	require.NoError(t, err)
	assert.Equal(t, []State{StateInit, StateSkipTests, StateComputing, StateReported}, report.Path)
	assert.Equal(t, 10, report.Answer)
	assert.True(t, strings.HasSuffix(buf.String(), "\n10\n"))
}

func TestSolveAndReport_ExpectedMatches(t *testing.T) {
	inputs := testutil.MemoryInputs{testutil.InputKey(2025, 7): "10"}
	unit, _ := newDoublerUnit(inputs)
	out, buf := testutil.NewConsole()

	report, err := unit.SolveAndReport(out, nil, WithExpected(int64(20)))

	require.NoError(t, err)
	assert.Equal(t, StateReported, report.State)
	assert.Contains(t, report.Path, StateChecking)
	assert.True(t, strings.HasSuffix(buf.String(), "\n20\n"))
}

func TestSolveAndReport_ExpectedMismatchWithholdsAnswer(t *testing.T) {
	inputs := testutil.MemoryInputs{testutil.InputKey(2025, 7): "10"}
	unit, _ := newDoublerUnit(inputs)
	out, buf := testutil.NewConsole()

	report, err := unit.SolveAndReport(out, nil, WithExpected(21))

	require.NoError(t, err)
	assert.Equal(t, StateFailed, report.State)
	assert.Equal(t, "solution mismatch", report.Failure)
	assert.Equal(t, []State{StateInit, StateSkipTests, StateComputing, StateChecking, StateFailed}, report.Path)

	output := buf.String()
	assert.Contains(t, output, "SOLUTION")
	assert.Contains(t, output, "doubling 10")
	assert.Nil(t, report.Answer)
	assert.True(t, strings.HasSuffix(output, "Expected:\n21\nSolution:\n20\n"))
}

func TestSolveAndReport_MissingInputPropagates(t *testing.T) {
	unit, _ := newDoublerUnit(testutil.MemoryInputs{})
	out, _ := testutil.NewConsole()

	report, err := unit.SolveAndReport(out, []Case{{Input: "1", Expected: 2}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, StateFailed, report.State)
}

func TestSolveAndReport_TestErrorEndsFailed(t *testing.T) {
	unit, _ := newDoublerUnit(testutil.MemoryInputs{})
	out, _ := testutil.NewConsole()

	report, err := unit.SolveAndReport(out, []Case{{Input: "x", Expected: 2}})

	require.Error(t, err)
	assert.Equal(t, StateFailed, report.State)
}

func TestHeader_TracksDividerWidth(t *testing.T) {
	unit, _ := newDoublerUnit(testutil.MemoryInputs{})
	out, _ := testutil.NewConsole()

	assert.Equal(t, strings.Repeat("=", 42), unit.Divider(out, 0))

	header := unit.Header("TEST 0", false)
	assert.Equal(t, console.Banner("Day 7, Part 2 - TEST 0"), header)
	assert.Equal(t, strings.Repeat("=", 42), unit.Divider(out, 0))

	unit.Header("TEST 0", true)
	assert.Equal(t, strings.Repeat("=", 26), unit.Divider(out, 0))
	assert.Equal(t, "=====", unit.Divider(out, 5))
}

func TestIsSolved_ReportsSliceDiff(t *testing.T) {
	unit, _ := newDoublerUnit(testutil.MemoryInputs{})
	out, buf := testutil.NewConsole()

	assert.True(t, unit.IsSolved(out, []int{1, 2}, []int{1, 2}))
	assert.Empty(t, buf.String())

	assert.False(t, unit.IsSolved(out, []int{1, 3}, []int{1, 2}))
	assert.Contains(t, buf.String(), "Expected:\n[1 2]\nSolution:\n[1 3]")
	assert.Contains(t, buf.String(), "Diff (-expected +solution):")
}

func TestAdapt_RejectsWrongParsedType(t *testing.T) {
	ex := Adapt[int, int](doubler{})
	out, _ := testutil.NewConsole()

	_, err := ex.Solve(out, "not an int")
	assert.ErrorIs(t, err, ErrParsedType)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		actual, expected any
		want             bool
	}{
		{42, 42, true},
		{int64(42), 42, true},
		{42, "42", true},
		{"abc", "abc", true},
		{42, 43, false},
		{[]int{1, 2}, []int{1, 2}, true},
		{[]int{1, 2}, []int{2, 1}, false},
		{[]int{1}, 1, false},
		{nil, nil, true},
		{nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_%v", tt.actual, tt.expected), func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.actual, tt.expected))
		})
	}
}

type opaque struct {
	n int
}

func TestEqual_UnexportedFieldsFallBack(t *testing.T) {
	assert.True(t, Equal(opaque{n: 1}, opaque{n: 1}))
	assert.False(t, Equal(opaque{n: 1}, opaque{n: 2}))
}
