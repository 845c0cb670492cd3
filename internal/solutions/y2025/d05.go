package y2025

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/roach88/advent/internal/console"
	"github.com/roach88/advent/internal/puzzle"
	"github.com/roach88/advent/internal/registry"
	"github.com/roach88/advent/internal/textgroup"
)

func init() {
	registry.Register(func() puzzle.Solver[Inventory, int] { return Day5Part1{} })
	registry.Register(func() puzzle.Solver[Inventory, int] { return Day5Part2{} })
}

// Span is an inclusive range of ingredient ids.
type Span struct {
	Lo, Hi int
}

// Inventory is the fresh id ranges followed by the available ids.
type Inventory struct {
	Fresh     []Span
	Available []int
}

// Day5Part1 counts available ingredients that fall in a fresh range.
type Day5Part1 struct{}

func (Day5Part1) Parse(raw string) (Inventory, error) {
	return parseInventory(raw)
}

func (Day5Part1) Solve(out *console.Console, inv Inventory) (int, error) {
	spans := merge(inv.Fresh)
	n := 0
	for _, id := range inv.Available {
		i := sort.Search(len(spans), func(i int) bool { return spans[i].Hi >= id })
		if i < len(spans) && spans[i].Lo <= id {
			n++
		}
	}
	return n, nil
}

// Day5Part2 counts every id the fresh ranges cover.
type Day5Part2 struct{}

func (Day5Part2) Parse(raw string) (Inventory, error) {
	return parseInventory(raw)
}

func (Day5Part2) Solve(out *console.Console, inv Inventory) (int, error) {
	spans := merge(inv.Fresh)
	out.Logger().Debug("merged ranges", "before", len(inv.Fresh), "after", len(spans))
	total := 0
	for _, s := range spans {
		total += s.Hi - s.Lo + 1
	}
	return total, nil
}

// merge sorts spans and joins overlapping or adjacent ones.
func merge(spans []Span) []Span {
	sorted := append([]Span(nil), spans...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	var out []Span
	for _, s := range sorted {
		if n := len(out); n > 0 && s.Lo <= out[n-1].Hi+1 {
			out[n-1].Hi = max(out[n-1].Hi, s.Hi)
			continue
		}
		out = append(out, s)
	}
	return out
}

func parseInventory(raw string) (Inventory, error) {
	groups := textgroup.Groups(raw)
	if len(groups) != 2 {
		return Inventory{}, fmt.Errorf("want 2 groups (ranges, ids), got %d", len(groups))
	}

	var inv Inventory
	for _, line := range groups[0] {
		lo, hi, ok := strings.Cut(strings.TrimSpace(line), "-")
		if !ok {
			return Inventory{}, fmt.Errorf("range %q: missing '-'", line)
		}
		a, err := strconv.Atoi(lo)
		if err != nil {
			return Inventory{}, fmt.Errorf("range %q: %w", line, err)
		}
		b, err := strconv.Atoi(hi)
		if err != nil {
			return Inventory{}, fmt.Errorf("range %q: %w", line, err)
		}
		if a > b {
			return Inventory{}, fmt.Errorf("range %q: start after end", line)
		}
		inv.Fresh = append(inv.Fresh, Span{Lo: a, Hi: b})
	}
	for _, line := range groups[1] {
		id, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return Inventory{}, fmt.Errorf("id %q: %w", line, err)
		}
		inv.Available = append(inv.Available, id)
	}
	return inv, nil
}
