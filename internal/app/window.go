package app

import "lifegame/internal/ui"

// WindowSize returns the window dimensions: the grid at its cell size with
// the control panel underneath.
func WindowSize(c *Controller) (int, int) {
	size := c.Size()
	return size.W * c.CellPixels(), size.H*c.CellPixels() + ui.PanelHeight
}
