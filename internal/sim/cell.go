package sim

import "math/bits"

// Cell packs one lattice site into a byte. The low four bits are one
// particle slot per cardinal direction; bit four marks the site as a solid
// wall. A wall cell at rest carries no particles — the directional bits on
// a wall only appear transiently while a reflection is in flight.
type Cell uint8

const (
	Left Cell = 1 << iota
	Down
	Right
	Up
	Boundary
)

const (
	// Empty is a site with no particles and no wall.
	Empty Cell = 0
	// Full is a site with all four direction slots occupied.
	Full = Up | Right | Down | Left
)

// Particles returns the number of occupied direction slots.
func (c Cell) Particles() int {
	return bits.OnesCount8(uint8(c & Full))
}

// ResolveCollisions applies the HPP collision rule to a streamed cell value.
// Fluid cells swap the two head-on pair states (Up+Down becomes Left+Right
// and vice versa); every other occupation pattern passes through unchanged,
// so particle count is always conserved. Wall cells instead reflect each
// particle back along its own axis and keep their wall bit.
func ResolveCollisions(c Cell) Cell {
	if c&Boundary == 0 {
		switch c {
		case Up | Down:
			return Left | Right
		case Left | Right:
			return Up | Down
		}
		return c
	}
	return reflect(c)
}

// reflect sends every particle in a wall cell back the way it came.
func reflect(c Cell) Cell {
	up := c & Up
	right := c & Right
	down := c & Down
	left := c & Left
	return up>>2 | right>>2 | down<<2 | left<<2 | Boundary
}
