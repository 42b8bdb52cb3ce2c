package sim

import "fmt"

// Grid stores the lattice as a flat row-major array of cells.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("sim: grid dimensions %dx%d must be positive", w, h))
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Get returns the cell at (x, y). It is total over all integer coordinates:
// anything outside the grid yields a bare wall cell, so the streaming loop
// can read neighbors unconditionally and the domain edge acts as a wall.
func (g *Grid) Get(x, y int) Cell {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return Boundary
	}
	return g.cells[y*g.W+x]
}

// Set writes the cell at (x, y). Writing outside the grid is a logic error
// and panics rather than clamping.
func (g *Grid) Set(x, y int, v Cell) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		panic(fmt.Sprintf("sim: Set(%d, %d) outside %dx%d grid", x, y, g.W, g.H))
	}
	g.cells[y*g.W+x] = v
}

// Clear fills the grid with empty cells.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// FillRegion randomizes every cell in the rectangle, drawing each of the
// four direction slots as an independent Bernoulli trial with probability p.
// Previous contents, wall bits included, are overwritten.
func (g *Grid) FillRegion(x0, y0, w, h int, p float64, rng *RNG) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			var v Cell
			if rng.Bernoulli(p) {
				v |= Up
			}
			if rng.Bernoulli(p) {
				v |= Right
			}
			if rng.Bernoulli(p) {
				v |= Down
			}
			if rng.Bernoulli(p) {
				v |= Left
			}
			g.Set(x, y, v)
		}
	}
}

// FillBoundary paints the rectangle as solid wall.
func (g *Grid) FillBoundary(x0, y0, w, h int) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			g.Set(x, y, Boundary)
		}
	}
}

// SetBoundaryAtEdge paints the four one-cell-thick edges of the domain,
// closing it into a box.
func (g *Grid) SetBoundaryAtEdge() {
	g.FillBoundary(0, 0, 1, g.H)
	g.FillBoundary(0, 0, g.W, 1)
	g.FillBoundary(0, g.H-1, g.W, 1)
	g.FillBoundary(g.W-1, 0, 1, g.H)
}
