package life

// Advance computes the next generation and increments the generation
// counter. Every count is final before any cell changes.
func (e *Engine) Advance() {
	e.scatter()
	e.fold()
	e.apply()
	e.gen++
	e.mode = Running
	e.refreshView()
}

// scatter adds one to each of the eight neighbors of every live playable
// cell. Neighbors on the edge land in the margin.
func (e *Engine) scatter() {
	n := e.n
	clear(e.counts)
	for row := 1; row < n-1; row++ {
		for col := 1; col < n-1; col++ {
			if !e.cells[row*n+col] {
				continue
			}
			up, mid, down := (row-1)*n+col, row*n+col, (row+1)*n+col
			e.counts[up-1]++
			e.counts[up]++
			e.counts[up+1]++
			e.counts[mid-1]++
			e.counts[mid+1]++
			e.counts[down-1]++
			e.counts[down]++
			e.counts[down+1]++
		}
	}
}

// fold moves every margin count onto the playable cell it stands for on the
// torus. Margin cells are only read, so the order of the additions does not
// matter.
func (e *Engine) fold() {
	n := e.n
	last := n - 2
	for i := 1; i <= last; i++ {
		e.counts[i*n+1] += e.counts[i*n+n-1]
		e.counts[i*n+last] += e.counts[i*n]
		e.counts[n+i] += e.counts[(n-1)*n+i]
		e.counts[last*n+i] += e.counts[i]
	}
	// Corners wrap diagonally.
	e.counts[n+1] += e.counts[n*n-1]
	e.counts[n+last] += e.counts[(n-1)*n]
	e.counts[last*n+1] += e.counts[n-1]
	e.counts[last*n+last] += e.counts[0]
}

func (e *Engine) apply() {
	n := e.n
	for row := 1; row < n-1; row++ {
		for col := 1; col < n-1; col++ {
			i := row*n + col
			k := e.counts[i]
			switch {
			case e.cells[i] && k != 2 && k != 3:
				e.cells[i] = false
			case !e.cells[i] && k == 3:
				e.cells[i] = true
			}
		}
	}
}
