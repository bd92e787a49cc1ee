package ui

import pcore "lifegame/pkg/core"

// NeighborSource exposes the per-cell neighbor counts behind the last
// generation.
type NeighborSource interface {
	Size() pcore.Size
	Neighbors(row, col int) (int, bool)
}

// collectNeighbors copies neighbor counts into dst in row-major order and
// returns the filled slice, growing dst when needed.
func collectNeighbors(dst []uint8, src NeighborSource) []uint8 {
	size := src.Size()
	total := size.Cells()
	if cap(dst) < total {
		dst = make([]uint8, total)
	}
	dst = dst[:total]
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			k, _ := src.Neighbors(row, col)
			dst[row*size.W+col] = uint8(k)
		}
	}
	return dst
}
