package sim

// Source is a rectangular inflow region. Reapplying it before every step
// overwrites the rectangle with fresh random occupancy, so it behaves as a
// continuously forced boundary condition rather than a one-time seed.
type Source struct {
	X, Y int
	W, H int
	// Density is the per-direction occupation probability in [0, 1].
	Density float64
}

// Apply rewrites the source rectangle on the grid.
func (s Source) Apply(g *Grid, rng *RNG) {
	g.FillRegion(s.X, s.Y, s.W, s.H, s.Density, rng)
}
