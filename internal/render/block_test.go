package render

import (
	"testing"

	"lgca/internal/sim"
)

func TestBlockCounts(t *testing.T) {
	g := sim.NewGrid(4, 4)
	g.Set(0, 0, sim.Up|sim.Right)
	g.Set(1, 0, sim.Right)
	g.Set(0, 1, sim.Down|sim.Left|sim.Up)
	g.Set(1, 1, sim.Boundary)

	b := BlockAt(g, 0, 0, 2)
	if b.Up != 2 || b.Right != 2 || b.Down != 1 || b.Left != 1 || b.Boundary != 1 {
		t.Fatalf("counts = %+v", b)
	}
	if b.Total() != 6 {
		t.Fatalf("Total() = %d, want 6", b.Total())
	}

	if b := BlockAt(g, 1, 1, 2); b != (Block{}) {
		t.Fatalf("empty tile aggregated to %+v", b)
	}
}

func TestBoundaryDominatesBlock(t *testing.T) {
	g := sim.NewGrid(2, 2)
	g.Set(0, 0, sim.Full)
	g.Set(1, 0, sim.Full)
	g.Set(0, 1, sim.Full)
	g.Set(1, 1, sim.Boundary)

	b := BlockAt(g, 0, 0, 2)
	if got := DensityColor(b, 2); got != BoundaryColor {
		t.Fatalf("density color = %+v, want boundary color", got)
	}
	if got := VelocityColor(b, 2); got != BoundaryColor {
		t.Fatalf("velocity color = %+v, want boundary color", got)
	}
}

// A 4x4 closed box with a FULL 2x2 interior, downscaled by 2: every block
// straddles at least one wall cell, so the whole image must be walls.
func TestClosedBoxScenario(t *testing.T) {
	g := sim.NewGrid(4, 4)
	g.SetBoundaryAtEdge()
	g.FillRegion(1, 1, 2, 2, 1.0, sim.NewRNG(1))

	for by := 0; by < 2; by++ {
		for bx := 0; bx < 2; bx++ {
			b := BlockAt(g, bx, by, 2)
			if b.Boundary == 0 {
				t.Fatalf("block (%d, %d) has no wall cells", bx, by)
			}
			if got := DensityColor(b, 2); got != BoundaryColor {
				t.Fatalf("block (%d, %d) rendered %+v", bx, by, got)
			}
		}
	}
}
