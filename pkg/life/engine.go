// Package life implements Conway's Game of Life (B3/S23) on a fixed-size
// toroidal grid.
//
// The grid is stored as an N×N buffer whose outer ring is a wrap-around
// margin: a generation scatters neighbor counts from every live playable cell
// into its eight neighbors, margin included, and then folds the margin back
// onto the opposite playable edge. Callers address cells in playable
// coordinates, 0 <= row, col < N-2.
//
// An Engine is not safe for concurrent use. Hosts that drive Advance from a
// timer must serialize it with Toggle, Randomize and Initialize.
package life

import (
	"errors"

	"lifegame/pkg/core"
)

// DefaultSize is the side length, margin included, of a 100×100 playable grid.
const DefaultSize = 102

var (
	// ErrSize is returned by New for grids too small to hold a margin and a
	// playable cell.
	ErrSize = errors.New("life: grid size must be at least 3")
	// ErrLocked is returned by Toggle once the pattern has been advanced.
	ErrLocked = errors.New("life: pattern is locked after the first generation")
	// ErrOutOfRange is returned by Toggle for coordinates outside the
	// playable region.
	ErrOutOfRange = errors.New("life: cell outside the playable region")
)

// Mode reports whether the initial pattern can still be edited.
type Mode uint8

const (
	// Editable holds at generation 0; cells may be toggled.
	Editable Mode = iota
	// Running is entered by the first Advance and left only through
	// Initialize or Randomize.
	Running
)

func (m Mode) String() string {
	switch m {
	case Editable:
		return "editable"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Config controls engine construction.
type Config struct {
	// Size is the side length including the one-cell margin on each edge.
	Size int
	// Seed initializes the source used by Randomize.
	Seed int64
	// Settle makes Randomize run one hidden generation over the random seed
	// before handing the pattern back at generation 0.
	Settle bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: DefaultSize, Seed: 1, Settle: true}
}

// Engine owns the cell buffer, the neighbor counts and the generation
// counter.
type Engine struct {
	n      int
	cells  []bool
	counts []int
	view   []uint8

	gen    uint64
	mode   Mode
	settle bool
	rng    *core.RNG
}

// New allocates an engine with an all-dead grid at generation 0.
func New(cfg Config) (*Engine, error) {
	if cfg.Size < 3 {
		return nil, ErrSize
	}
	n := cfg.Size
	e := &Engine{
		n:      n,
		cells:  make([]bool, n*n),
		counts: make([]int, n*n),
		view:   make([]uint8, (n-2)*(n-2)),
		settle: cfg.Settle,
		rng:    core.NewRNG(cfg.Seed),
	}
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the playable grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.n - 2, H: e.n - 2} }

// Generation returns the number of generations advanced since the last
// Initialize or Randomize.
func (e *Engine) Generation() uint64 { return e.gen }

// Mode reports whether cells may currently be toggled.
func (e *Engine) Mode() Mode { return e.mode }

// Cells exposes the playable grid as a row-major 0/1 buffer. The slice is
// refreshed in place after every mutation and must not be modified.
func (e *Engine) Cells() []uint8 { return e.view }

// Alive reports the state of a playable cell. Out-of-range cells are dead.
func (e *Engine) Alive(row, col int) bool {
	if !e.inside(row, col) {
		return false
	}
	return e.cells[e.index(row, col)]
}

// Population counts the live playable cells.
func (e *Engine) Population() int {
	total := 0
	for _, c := range e.view {
		total += int(c)
	}
	return total
}

// Neighbors returns the live-neighbor count a playable cell had when the last
// generation was computed. It reports false for out-of-range cells.
func (e *Engine) Neighbors(row, col int) (int, bool) {
	if !e.inside(row, col) {
		return 0, false
	}
	return e.counts[e.index(row, col)], true
}

// Seed restarts the random source used by Randomize.
func (e *Engine) Seed(seed int64) { e.rng.Seed(seed) }

// Initialize kills every cell and returns to generation 0.
func (e *Engine) Initialize() {
	clear(e.cells)
	clear(e.counts)
	e.gen = 0
	e.mode = Editable
	e.refreshView()
}

// Toggle flips a playable cell. It fails with ErrLocked once the grid has
// advanced and with ErrOutOfRange for coordinates outside the playable
// region; no cell changes in either case.
func (e *Engine) Toggle(row, col int) error {
	if e.mode != Editable {
		return ErrLocked
	}
	if !e.inside(row, col) {
		return ErrOutOfRange
	}
	i := e.index(row, col)
	e.cells[i] = !e.cells[i]
	e.view[row*(e.n-2)+col] ^= 1
	return nil
}

func (e *Engine) inside(row, col int) bool {
	w := e.n - 2
	return row >= 0 && row < w && col >= 0 && col < w
}

// index maps playable coordinates onto the margin-laid-out buffer.
func (e *Engine) index(row, col int) int { return (row+1)*e.n + col + 1 }

func (e *Engine) onMargin(i int) bool {
	row, col := i/e.n, i%e.n
	return row == 0 || row == e.n-1 || col == 0 || col == e.n-1
}

func (e *Engine) refreshView() {
	n, w := e.n, e.n-2
	for row := 0; row < w; row++ {
		src := e.cells[(row+1)*n+1 : (row+1)*n+1+w]
		dst := e.view[row*w : (row+1)*w]
		for col, alive := range src {
			if alive {
				dst[col] = 1
				continue
			}
			dst[col] = 0
		}
	}
}
