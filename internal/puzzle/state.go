package puzzle

import "fmt"

// State is a step of the test-then-solve machine.
//
//	INIT -> SKIP_TESTS -> COMPUTING
//	INIT -> RUNNING_TESTS -> ALL_PASS -> COMPUTING
//	RUNNING_TESTS -> FAILED
//	COMPUTING -> CHECKING -> REPORTED | FAILED
//	COMPUTING -> REPORTED | FAILED
type State string

const (
	StateInit         State = "INIT"
	StateSkipTests    State = "SKIP_TESTS"
	StateRunningTests State = "RUNNING_TESTS"
	StateAllPass      State = "ALL_PASS"
	StateComputing    State = "COMPUTING"
	StateChecking     State = "CHECKING"
	StateReported     State = "REPORTED"
	StateFailed       State = "FAILED"
)

// IsTerminal reports whether s ends the machine.
func IsTerminal(s State) bool {
	return s == StateReported || s == StateFailed
}

func isAllowedTransition(from, to State) bool {
	switch from {
	case StateInit:
		return to == StateSkipTests || to == StateRunningTests
	case StateSkipTests, StateAllPass:
		return to == StateComputing
	case StateRunningTests:
		return to == StateAllPass || to == StateFailed
	case StateComputing:
		return to == StateChecking || to == StateReported || to == StateFailed
	case StateChecking:
		return to == StateReported || to == StateFailed
	default:
		return false
	}
}

// Report is the outcome of SolveAndReport for one exercise part.
type Report struct {
	Identity Identity `json:"identity"`

	// State is the last state reached; terminal once SolveAndReport returns.
	State State `json:"state"`

	// Path lists every state visited, starting with INIT.
	Path []State `json:"path"`

	// Cases is the number of example cases that were registered.
	Cases int `json:"cases"`

	// Answer is the computed answer when State is REPORTED.
	Answer any `json:"answer,omitempty"`

	// Failure describes why the machine ended in FAILED.
	Failure string `json:"failure,omitempty"`
}

func newReport(id Identity, cases int) *Report {
	return &Report{
		Identity: id,
		State:    StateInit,
		Path:     []State{StateInit},
		Cases:    cases,
	}
}

// Pass reports whether the machine ended in REPORTED.
func (r *Report) Pass() bool {
	return r.State == StateReported
}

// Terminal reports whether the machine has finished.
func (r *Report) Terminal() bool {
	return IsTerminal(r.State)
}

// advance moves to the next state. Transitions are fixed by the harness,
// so a disallowed one is a bug and panics.
func (r *Report) advance(to State) {
	if !isAllowedTransition(r.State, to) {
		panic(fmt.Sprintf("puzzle: disallowed transition %s -> %s", r.State, to))
	}
	r.State = to
	r.Path = append(r.Path, to)
}

func (r *Report) fail(reason string) {
	r.advance(StateFailed)
	r.Failure = reason
}
