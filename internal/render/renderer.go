//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads binary cells into the painter image and draws it at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int, x, y float64) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.draw(dst, scale, x, y)
}

// BlitPalette uploads palette-indexed cells into the painter image and draws
// it at (x, y).
func (gp *GridPainter) BlitPalette(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int, x, y float64) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.draw(dst, scale, x, y)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int, x, y float64) {
	if scale <= 0 {
		scale = 1
	}
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
