package sim

import "sync"

// Step computes next from cur: every particle streams one cell along its
// own direction, then collisions are resolved on the streamed value. Each
// destination cell is a pure gather from cur, so cur is never written and
// next is never read — the two buffers must be distinct and equally sized.
//
// workers > 1 splits the rows across that many goroutines. The per-cell
// update reads only cur, so no synchronization is needed beyond the final
// barrier.
func Step(cur, next *Grid, workers int) {
	if cur.W != next.W || cur.H != next.H {
		panic("sim: Step buffers have different dimensions")
	}
	if workers > cur.H {
		workers = cur.H
	}
	if workers <= 1 {
		stepRows(cur, next, 0, cur.H)
		return
	}
	var wg sync.WaitGroup
	chunk := (cur.H + workers - 1) / workers
	for y0 := 0; y0 < cur.H; y0 += chunk {
		y1 := y0 + chunk
		if y1 > cur.H {
			y1 = cur.H
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			stepRows(cur, next, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

// stepRows updates the half-open row range [y0, y1). Streaming is expressed
// as a gather from the opposite side: the Down particle arriving here was
// the Down bit of the neighbor above, and so on. Off-grid neighbors are the
// wall sentinel, whose direction bits are zero, so nothing streams in
// through a plain edge. The cell's own wall bit is carried over unchanged —
// walls do not move.
func stepRows(cur, next *Grid, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < cur.W; x++ {
			streamed := cur.Get(x, y+1)&Down |
				cur.Get(x+1, y)&Left |
				cur.Get(x, y-1)&Up |
				cur.Get(x-1, y)&Right |
				cur.Get(x, y)&Boundary
			next.Set(x, y, ResolveCollisions(streamed))
		}
	}
}
