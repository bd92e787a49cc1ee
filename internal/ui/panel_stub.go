//go:build !ebiten

package ui

// Panel is a no-op placeholder for headless builds.
type Panel struct{}

// NewPanel returns nil in the headless build.
func NewPanel(Controls, int, int) *Panel { return nil }

// Update is a no-op in the headless build.
func (p *Panel) Update() bool { return false }

// Draw is a no-op in the headless build.
func (p *Panel) Draw(any) {}
