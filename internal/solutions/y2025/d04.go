package y2025

import (
	"github.com/roach88/advent/internal/console"
	"github.com/roach88/advent/internal/grid"
	"github.com/roach88/advent/internal/puzzle"
	"github.com/roach88/advent/internal/registry"
	"github.com/roach88/advent/internal/textgroup"
)

func init() {
	registry.Register(func() puzzle.Solver[[][]rune, int] { return Day4Part1{} })
	registry.Register(func() puzzle.Solver[[][]rune, int] { return Day4Part2{} })
}

const (
	roll    = '@'
	removed = 'x'

	// A forklift reaches a roll with fewer than this many rolls around it.
	crowded = 4
)

// Day4Part1 counts the paper rolls a forklift can reach.
type Day4Part1 struct{}

func (Day4Part1) Parse(raw string) ([][]rune, error) {
	return textgroup.Grid(raw)
}

func (Day4Part1) Solve(out *console.Console, floor [][]rune) (int, error) {
	return len(accessible(floor)), nil
}

// Day4Part2 removes reachable rolls until none are left reachable and
// counts the total removed.
type Day4Part2 struct{}

func (Day4Part2) Parse(raw string) ([][]rune, error) {
	return textgroup.Grid(raw)
}

func (Day4Part2) Solve(out *console.Console, floor [][]rune) (int, error) {
	floor = grid.Clone(floor)
	total := 0
	for round := 1; ; round++ {
		reachable := accessible(floor)
		if len(reachable) == 0 {
			break
		}
		for _, p := range reachable {
			floor[p.Y][p.X] = removed
		}
		total += len(reachable)
		out.Echo("round", round, "removed", len(reachable))
	}
	out.Echo(console.PrettyGrid(floor, 1))
	return total, nil
}

func accessible(floor [][]rune) []grid.Pt {
	var out []grid.Pt
	for _, p := range grid.Find(floor, roll) {
		n := 0
		for _, q := range p.Neighbors() {
			if c, ok := grid.At(floor, q); ok && c == roll {
				n++
			}
		}
		if n < crowded {
			out = append(out, p)
		}
	}
	return out
}
