//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegame/internal/render"
	"lifegame/internal/ui"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	panel   *ui.Panel
	overlay *ui.Overlay

	scale int
}

// New constructs a Game for the provided controller.
func New(ctrl *Controller) *Game {
	size := ctrl.Size()
	scale := ctrl.CellPixels()
	return &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(size.W, size.H),
		panel:   ui.NewPanel(ctrl, size.W*scale, size.H*scale),
		overlay: ui.NewOverlay(ctrl, scale),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation when
// auto-stepping.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.ToggleAuto()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.ctrl.Random()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.ctrl.AdjustSpeed(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.ctrl.AdjustSpeed(1)
	}

	g.overlay.Update()
	if !g.panel.Update() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Click(ebiten.CursorPosition())
	}

	g.ctrl.Tick()
	return nil
}

// Draw renders the grid, the overlay and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.Cells(), render.LiveColor, render.DeadColor, g.scale, 0, 0)
	g.overlay.Draw(screen)
	g.panel.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize(g.ctrl)
}
