package puzzle

import (
	"fmt"

	"github.com/roach88/advent/internal/console"
)

// Solver is implemented by every exercise part.
//
// Parse turns raw input text into P; Solve computes the answer from it.
// Diagnostics go through out, which may be a capture buffer.
type Solver[P, A any] interface {
	Parse(raw string) (P, error)
	Solve(out *console.Console, data P) (A, error)
}

// Exercise is the type-erased form of a Solver used by the harness.
type Exercise interface {
	Parse(raw string) (any, error)
	Solve(out *console.Console, data any) (any, error)
}

// Adapt erases the type parameters of s.
func Adapt[P, A any](s Solver[P, A]) Exercise {
	return adapted[P, A]{solver: s}
}

type adapted[P, A any] struct {
	solver Solver[P, A]
}

func (a adapted[P, A]) Parse(raw string) (any, error) {
	data, err := a.solver.Parse(raw)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (a adapted[P, A]) Solve(out *console.Console, data any) (any, error) {
	var typed P
	if data != nil {
		var ok bool
		typed, ok = data.(P)
		if !ok {
			return nil, fmt.Errorf("%w: got %T, want %T", ErrParsedType, data, typed)
		}
	}
	answer, err := a.solver.Solve(out, typed)
	if err != nil {
		return nil, err
	}
	return answer, nil
}

// Unwrap returns the wrapped solver.
func (a adapted[P, A]) Unwrap() any {
	return a.solver
}

// Case is an example input with its expected answer.
type Case struct {
	Input    string `json:"input" yaml:"input"`
	Expected any    `json:"expected" yaml:"expected"`
}

// Inputs reads the real input of an exercise part.
type Inputs interface {
	Read(year, day, part int) (string, error)
}
