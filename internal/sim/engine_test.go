package sim

import (
	"slices"
	"testing"
)

// totalParticles counts the occupied direction slots across the whole grid,
// wall cells included.
func totalParticles(g *Grid) int {
	n := 0
	for _, c := range g.Cells() {
		n += c.Particles()
	}
	return n
}

func TestStreamingMovesParticleOneCell(t *testing.T) {
	cur := NewGrid(9, 9)
	next := NewGrid(9, 9)
	cur.Set(4, 4, Right)

	Step(cur, next, 1)

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			want := Empty
			if x == 5 && y == 4 {
				want = Right
			}
			if got := next.Get(x, y); got != want {
				t.Fatalf("cell (%d, %d) = %05b, want %05b", x, y, got, want)
			}
		}
	}
}

func TestStreamingAllDirections(t *testing.T) {
	cases := []struct {
		dir    Cell
		dx, dy int
	}{
		{Right, 1, 0},
		{Left, -1, 0},
		{Up, 0, 1},
		{Down, 0, -1},
	}
	for _, c := range cases {
		cur := NewGrid(7, 7)
		next := NewGrid(7, 7)
		cur.Set(3, 3, c.dir)
		Step(cur, next, 1)
		if got := next.Get(3+c.dx, 3+c.dy); got != c.dir {
			t.Fatalf("direction %04b: destination holds %05b", c.dir, got)
		}
		if totalParticles(next) != 1 {
			t.Fatalf("direction %04b: particle duplicated or lost", c.dir)
		}
	}
}

func TestWallReflectsParticle(t *testing.T) {
	cur := NewGrid(5, 5)
	next := NewGrid(5, 5)
	cur.SetBoundaryAtEdge()
	cur.Set(3, 2, Right)

	// First step: the particle streams into the wall cell and is reflected
	// in place, never crossing the domain edge.
	Step(cur, next, 1)
	if got := next.Get(4, 2); got != Boundary|Left {
		t.Fatalf("wall cell holds %05b, want reflected particle", got)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 4; x++ {
			if p := next.Get(x, y) & Full; p != 0 {
				t.Fatalf("unexpected particle %04b at (%d, %d)", p, x, y)
			}
		}
	}

	// Second step: the reflected particle re-enters the fluid moving left.
	cur, next = next, cur
	Step(cur, next, 1)
	if got := next.Get(3, 2); got != Left {
		t.Fatalf("cell (3, 2) = %05b, want Left", got)
	}
	if got := next.Get(4, 2); got != Boundary {
		t.Fatalf("wall cell = %05b, want bare wall", got)
	}
}

func TestClosedBoxConservesMass(t *testing.T) {
	cur := NewGrid(16, 16)
	next := NewGrid(16, 16)
	cur.FillRegion(1, 1, 14, 14, 0.5, NewRNG(7))
	cur.SetBoundaryAtEdge()

	want := totalParticles(cur)
	for i := 0; i < 50; i++ {
		Step(cur, next, 1)
		cur, next = next, cur
		if got := totalParticles(cur); got != want {
			t.Fatalf("step %d: %d particles, want %d", i+1, got, want)
		}
	}
}

func TestParallelStepMatchesSequential(t *testing.T) {
	seqCur := NewGrid(33, 29)
	seqCur.FillRegion(0, 0, 33, 29, 0.4, NewRNG(11))
	seqCur.SetBoundaryAtEdge()
	seqCur.FillBoundary(10, 10, 4, 4)

	parCur := NewGrid(33, 29)
	copy(parCur.Cells(), seqCur.Cells())

	seqNext := NewGrid(33, 29)
	parNext := NewGrid(33, 29)
	for i := 0; i < 5; i++ {
		Step(seqCur, seqNext, 1)
		Step(parCur, parNext, 8)
		seqCur, seqNext = seqNext, seqCur
		parCur, parNext = parNext, parCur
		if !slices.Equal(seqCur.Cells(), parCur.Cells()) {
			t.Fatalf("parallel step diverged from sequential at step %d", i+1)
		}
	}
}

func TestStepRejectsMismatchedBuffers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Step with mismatched buffers did not panic")
		}
	}()
	Step(NewGrid(4, 4), NewGrid(4, 5), 1)
}
