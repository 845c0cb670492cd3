// Package grid has small helpers for exercises whose input is a character
// grid.
package grid

import "golang.org/x/exp/constraints"

// Point is a position; X grows to the right and Y grows downwards.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Pt is the common int point.
type Pt = Point[int]

// Directions to the four orthogonal neighbours, clockwise from up.
var orthogonal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Directions to all eight neighbours, clockwise from up.
var around = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Add returns p moved by d.
func (p Point[T]) Add(d Point[T]) Point[T] {
	return Point[T]{X: p.X + d.X, Y: p.Y + d.Y}
}

// MDist returns the manhattan distance between p and q.
func (p Point[T]) MDist(q Point[T]) T {
	return AbsDiff(p.X, q.X) + AbsDiff(p.Y, q.Y)
}

// Orthogonal returns the four neighbours sharing an edge with p.
func (p Point[T]) Orthogonal() []Point[T] {
	return p.offsets(orthogonal[:])
}

// Neighbors returns the eight neighbours of p, diagonals included.
func (p Point[T]) Neighbors() []Point[T] {
	return p.offsets(around[:])
}

func (p Point[T]) offsets(dirs [][2]int) []Point[T] {
	out := make([]Point[T], len(dirs))
	for i, d := range dirs {
		out[i] = Point[T]{X: p.X + T(d[0]), Y: p.Y + T(d[1])}
	}
	return out
}

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// In reports whether p addresses a cell of g. Rows may differ in length.
func In[C any](g [][]C, p Pt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

// At returns the cell at p, or zero and false when p is outside g.
func At[C any](g [][]C, p Pt) (C, bool) {
	if !In(g, p) {
		var zero C
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Find returns the positions of every cell equal to want, row by row.
func Find[C comparable](g [][]C, want C) []Pt {
	var out []Pt
	for y, row := range g {
		for x, c := range row {
			if c == want {
				out = append(out, Pt{X: x, Y: y})
			}
		}
	}
	return out
}

// Clone returns a deep copy of g.
func Clone[C any](g [][]C) [][]C {
	out := make([][]C, len(g))
	for i, row := range g {
		out[i] = append([]C(nil), row...)
	}
	return out
}
