// Package puzzle defines the exercise contract and the test-then-solve
// machine that drives it.
//
// # Exercises
//
// An exercise part is a type named Day<day>Part<part> declared in a
// directory named y<year>. It implements Solver:
//
//	type Day1Part1 struct{}
//
//	func (Day1Part1) Parse(raw string) ([]int, error) { ... }
//	func (Day1Part1) Solve(out *console.Console, data []int) (int, error) { ... }
//
// ResolveIdentity derives the part's Identity from those two names once, at
// registration. A name that does not follow the convention is a
// configuration error.
//
// # Test then solve
//
// Unit.SolveAndReport runs the registered example cases first. Each case
// runs inside its own console capture scope, so a passing case prints
// nothing while a failing one flushes its full trace (header, diagnostics
// and the expected/actual report). Only when every case passes is the real
// input read, solved and printed:
//
//	INIT -> SKIP_TESTS | RUNNING_TESTS
//	RUNNING_TESTS -> ALL_PASS | FAILED
//	ALL_PASS, SKIP_TESTS -> COMPUTING
//	COMPUTING -> CHECKING (expected answer supplied) | REPORTED
//	CHECKING -> REPORTED | FAILED
//
// A mismatch is data, not an error: the returned Report ends in FAILED and
// the harness stays usable. Identity, input and parse failures are returned
// as errors.
package puzzle
