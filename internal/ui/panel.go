//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Panel renders the control strip under the grid and routes clicks on it.
type Panel struct {
	controls Controls
	layout   panelLayout
	panel    *ebiten.Image
	pixel    *ebiten.Image
	offsetY  int
}

// NewPanel constructs a panel of the given width drawn offsetY pixels below
// the top of the screen.
func NewPanel(controls Controls, width, offsetY int) *Panel {
	if width < 1 {
		width = 1
	}
	p := &Panel{controls: controls, layout: layoutPanel(width), offsetY: offsetY}
	p.panel = ebiten.NewImage(width, PanelHeight)
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Update handles clicks on the panel. It reports whether the click landed on
// the panel so callers do not also treat it as a grid click.
func (p *Panel) Update() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if my < p.offsetY {
		return false
	}
	action := p.layout.hit(mx, my-p.offsetY)
	if action != ActionNone && enabled(p.controls, action) {
		dispatch(p.controls, action)
	}
	return true
}

// Draw paints the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	p.panel.Fill(color.RGBA{R: 232, G: 232, B: 231, A: 255})

	bar := p.layout.bar
	p.fillRect(bar, color.RGBA{R: 190, G: 190, B: 195, A: 255})
	fill := bar
	fill.Max.X = bar.Min.X + p.layout.speedFill(p.controls.Speed())
	fillColor := color.RGBA{R: 53, G: 132, B: 228, A: 255}
	if !p.controls.CanAdjustSpeed() {
		fillColor = color.RGBA{R: 150, G: 160, B: 175, A: 255}
	}
	p.fillRect(fill, fillColor)

	for _, b := range p.layout.buttons {
		active := b.action == ActionAuto && p.controls.Auto()
		p.drawButton(b.rect, b.label, enabled(p.controls, b.action), active)
	}

	face := basicfont.Face7x13
	ink := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	text.Draw(p.panel, p.controls.Label(), face, panelPadding, p.layout.labelY, ink)
	info := infoLine(p.controls.Parameters(), "population", "speed", "mode", "seed")
	text.Draw(p.panel, info, face, panelPadding, p.layout.infoY, color.RGBA{R: 90, G: 90, B: 95, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(p.offsetY))
	screen.DrawImage(p.panel, op)
}

func (p *Panel) fillRect(rect image.Rectangle, col color.RGBA) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	p.panel.DrawImage(p.pixel, op)
}

func (p *Panel) drawButton(rect image.Rectangle, label string, enabled, active bool) {
	bg := color.RGBA{R: 250, G: 250, B: 250, A: 255}
	fg := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	switch {
	case active:
		bg = color.RGBA{R: 200, G: 200, B: 205, A: 255}
	case !enabled:
		bg = color.RGBA{R: 238, G: 238, B: 236, A: 255}
		fg = color.RGBA{R: 160, G: 160, B: 165, A: 255}
	}
	p.fillRect(rect, color.RGBA{R: 180, G: 180, B: 185, A: 255})
	p.fillRect(rect.Inset(1), bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, fg)
}
