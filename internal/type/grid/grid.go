// Released under an MIT license. See LICENSE.

// Package grid provides a square grid with a value stored in each cell.
package grid

// T (grid) is a square grid. Cells are stored in row-major order and
// addressed by column and row, both starting at zero.
type T[V any] struct {
	side  int
	cells []V
}

// New creates a grid with sides of length n.
func New[V any](n int) *T[V] {
	return &T[V]{side: n, cells: make([]V, n*n)}
}

// At returns the value stored at column c, row r.
func (g *T[V]) At(c, r int) V {
	return g.cells[g.index(c, r)]
}

// Set stores the value v at column c, row r.
func (g *T[V]) Set(c, r int, v V) {
	g.cells[g.index(c, r)] = v
}

// InBounds returns true if column c, row r is on the grid.
func (g *T[V]) InBounds(c, r int) bool {
	return c >= 0 && c < g.side && r >= 0 && r < g.side
}

// Size returns the length of a side.
func (g *T[V]) Size() int {
	return g.side
}

// Cells calls f for each cell in row-major order, stopping early if f
// returns false.
func (g *T[V]) Cells(f func(c, r int, v V) bool) {
	for i, v := range g.cells {
		if !f(i%g.side, i/g.side, v) {
			return
		}
	}
}

func (g *T[V]) index(c, r int) int {
	if !g.InBounds(c, r) {
		panic("grid: cell out of bounds")
	}

	return r*g.side + c
}
