//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegame/internal/render"
)

// Overlay tints every cell by the neighbor count it had when the current
// generation was computed. Key 1 toggles it.
type Overlay struct {
	src     NeighborSource
	scale   int
	show    bool
	painter *render.GridPainter
	counts  []uint8
}

// NewOverlay constructs an overlay for the provided source.
func NewOverlay(src NeighborSource, scale int) *Overlay {
	size := src.Size()
	return &Overlay{
		src:     src,
		scale:   scale,
		painter: render.NewGridPainter(size.W, size.H),
	}
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.show }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	o.counts = collectNeighbors(o.counts, o.src)
	o.painter.BlitPalette(screen, o.counts, render.NeighborPalette(), o.scale, 0, 0)
}
