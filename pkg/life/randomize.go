package life

// Randomize clears the grid and seeds it with a random, deliberately
// lopsided pattern.
//
// It draws K in [0, N²/8) and then K raw indices in [0, N²/4). A raw index r
// at or past N/2 is remapped to r mod (N/2) + 2N·(r div N), which keeps
// seeds on even buffer rows in the left half of the top half of the grid.
// Each index is toggled, so repeats cancel out. Indices that land on the
// margin are dropped.
//
// With settling enabled the seeded pattern is advanced once before being
// returned; either way the grid ends at generation 0 and editable.
func (e *Engine) Randomize() {
	clear(e.cells)
	clear(e.counts)
	n := e.n
	total := n * n
	half := n / 2
	k := e.rng.IntN(total / 8)
	for j := 0; j < k; j++ {
		r := e.rng.IntN(total / 4)
		if r >= half {
			r = r%half + 2*n*(r/n)
		}
		if e.onMargin(r) {
			continue
		}
		e.cells[r] = !e.cells[r]
	}
	if e.settle {
		e.Advance()
	}
	e.gen = 0
	e.mode = Editable
	e.refreshView()
}
