package render

import "lgca/internal/sim"

// Block aggregates one downscale x downscale tile of the grid: how many
// member cells carry a particle in each direction, and how many are walls.
type Block struct {
	Up, Right, Down, Left int
	Boundary              int
}

// BlockAt tallies the tile whose top-left cell is (bx*size, by*size).
func BlockAt(g *sim.Grid, bx, by, size int) Block {
	var b Block
	for y := by * size; y < (by+1)*size; y++ {
		for x := bx * size; x < (bx+1)*size; x++ {
			c := g.Get(x, y)
			if c&sim.Up != 0 {
				b.Up++
			}
			if c&sim.Right != 0 {
				b.Right++
			}
			if c&sim.Down != 0 {
				b.Down++
			}
			if c&sim.Left != 0 {
				b.Left++
			}
			if c&sim.Boundary != 0 {
				b.Boundary++
			}
		}
	}
	return b
}

// Total returns the particle count across all four directions.
func (b Block) Total() int { return b.Up + b.Right + b.Down + b.Left }
