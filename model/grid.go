package model

// Grid is a rectangular board of cells addressed by (x, y), x growing
// rightwards and y growing downwards. Width and height are fixed at
// construction and every access is bounds checked.
type Grid[T any] struct {
	cells  [][]T
	Width  int
	Height int
}

// NewGrid returns a width x height grid with every cell set to the
// zero value of T.
func NewGrid[T any](width, height int) *Grid[T] {
	cells := make([][]T, height)
	for y := range cells {
		cells[y] = make([]T, width)
	}
	return &Grid[T]{cells: cells, Width: width, Height: height}
}

// In reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the cell at (x, y). The second return value is false
// when the coordinates are out of bounds.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.In(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[y][x], true
}

// Set replaces the cell at (x, y). Out of bounds writes are silently
// dropped.
func (g *Grid[T]) Set(x, y int, value T) {
	if !g.In(x, y) {
		return
	}
	g.cells[y][x] = value
}

// at returns a pointer into the grid for in-package mutation.
func (g *Grid[T]) at(x, y int) *T {
	return &g.cells[y][x]
}

// Clone returns an independent copy of the grid. Mutating the copy
// never affects the source; search code relies on this when it tries
// hypothetical moves on a throwaway board.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([][]T, g.Height)
	for y, row := range g.cells {
		cells[y] = make([]T, g.Width)
		copy(cells[y], row)
	}
	return &Grid[T]{cells: cells, Width: g.Width, Height: g.Height}
}

// Rows exposes the cells row by row, top to bottom. The slices alias
// the grid, so callers treating them as read-only keeps the grid's
// invariants intact.
func (g *Grid[T]) Rows() [][]T {
	return g.cells
}

// Each calls fn for every cell in row-major order with a pointer to
// the cell, allowing in-place transformation of the whole board.
func (g *Grid[T]) Each(fn func(x, y int, cell *T)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(x, y, &g.cells[y][x])
		}
	}
}
