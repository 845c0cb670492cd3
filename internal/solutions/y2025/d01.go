package y2025

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent/internal/console"
	"github.com/roach88/advent/internal/puzzle"
	"github.com/roach88/advent/internal/registry"
	"github.com/roach88/advent/internal/textgroup"
)

func init() {
	registry.Register(func() puzzle.Solver[[]Rotation, int] { return Day1Part1{} })
	registry.Register(func() puzzle.Solver[[]Rotation, int] { return Day1Part2{} })
}

const (
	dialSize  = 100
	dialStart = 50
)

// Rotation turns the dial Clicks steps; negative is left.
type Rotation struct {
	Clicks int
}

// Day1Part1 counts rotations that leave the dial pointing at zero.
type Day1Part1 struct{}

func (Day1Part1) Parse(raw string) ([]Rotation, error) {
	return parseRotations(raw)
}

func (Day1Part1) Solve(out *console.Console, rotations []Rotation) (int, error) {
	pos, zeros := dialStart, 0
	for _, r := range rotations {
		pos = mod(pos+r.Clicks, dialSize)
		if pos == 0 {
			zeros++
		}
	}
	out.Echo("final position", pos)
	return zeros, nil
}

// Day1Part2 counts every click that lands on zero, including those in the
// middle of a rotation.
type Day1Part2 struct{}

func (Day1Part2) Parse(raw string) ([]Rotation, error) {
	return parseRotations(raw)
}

func (Day1Part2) Solve(out *console.Console, rotations []Rotation) (int, error) {
	pos, zeros := dialStart, 0
	for _, r := range rotations {
		hits := zeroHits(pos, r.Clicks)
		out.Logger().Debug("rotate", "from", pos, "clicks", r.Clicks, "zeros", hits)
		zeros += hits
		pos = mod(pos+r.Clicks, dialSize)
	}
	return zeros, nil
}

// zeroHits counts the clicks of one rotation from pos that land on zero.
func zeroHits(pos, clicks int) int {
	if clicks >= 0 {
		return (pos + clicks) / dialSize
	}
	dist := -clicks
	if pos == 0 {
		return dist / dialSize
	}
	if dist < pos {
		return 0
	}
	return (dist-pos)/dialSize + 1
}

func parseRotations(raw string) ([]Rotation, error) {
	lines, err := textgroup.Lines(raw)
	if err != nil {
		return nil, err
	}
	rotations := make([]Rotation, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < 2 {
			return nil, fmt.Errorf("line %d: rotation %q too short", i+1, line)
		}
		n, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		switch line[0] {
		case 'L':
			n = -n
		case 'R':
		default:
			return nil, fmt.Errorf("line %d: unknown direction %q", i+1, line[0])
		}
		rotations = append(rotations, Rotation{Clicks: n})
	}
	return rotations, nil
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}
