package ui

import (
	"image"
	"strings"

	"lifegame/internal/core"
)

// PanelHeight is the height in pixels of the control strip under the grid.
const PanelHeight = 100

// Controls is the command surface the panel drives.
type Controls interface {
	Reset() bool
	Random() bool
	Next() bool
	ToggleAuto()
	AdjustSpeed(delta int) bool

	CanReset() bool
	CanRandom() bool
	CanNext() bool
	CanAdjustSpeed() bool

	Auto() bool
	Speed() int
	Label() string
	Parameters() core.ParameterSnapshot
}

// Action identifies a panel control.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionAuto
	ActionNext
	ActionRandom
	ActionSlower
	ActionFaster
)

// speedStep is how far one click on - or + moves the speed scale.
const speedStep = 10

type panelButton struct {
	action Action
	label  string
	rect   image.Rectangle
}

// panelLayout positions the controls inside a panel of the given width.
// Coordinates are relative to the panel's top-left corner.
type panelLayout struct {
	width   int
	buttons []panelButton
	bar     image.Rectangle
	labelY  int
	infoY   int
}

func layoutPanel(width int) panelLayout {
	l := panelLayout{width: width}
	speedY := panelPadding
	minus := image.Rect(panelPadding, speedY, panelPadding+buttonSize, speedY+buttonSize)
	plus := image.Rect(width-panelPadding-buttonSize, speedY, width-panelPadding, speedY+buttonSize)
	l.bar = image.Rect(minus.Max.X+buttonGap, speedY+buttonSize/2-3, plus.Min.X-buttonGap, speedY+buttonSize/2+3)

	rowY := speedY + buttonSize + buttonGap
	names := []struct {
		action Action
		label  string
	}{
		{ActionReset, "Reset"},
		{ActionAuto, "Auto"},
		{ActionNext, "Next"},
		{ActionRandom, "Random"},
	}
	inner := width - 2*panelPadding - (len(names)-1)*buttonGap
	bw := inner / len(names)
	if bw < 1 {
		bw = 1
	}
	for i, n := range names {
		x := panelPadding + i*(bw+buttonGap)
		l.buttons = append(l.buttons, panelButton{action: n.action, label: n.label, rect: image.Rect(x, rowY, x+bw, rowY+buttonSize)})
	}
	l.buttons = append(l.buttons,
		panelButton{action: ActionSlower, label: "-", rect: minus},
		panelButton{action: ActionFaster, label: "+", rect: plus},
	)
	l.labelY = rowY + buttonSize + labelBaseline
	l.infoY = l.labelY + infoSpacing
	return l
}

// hit returns the control under (x, y), or ActionNone.
func (l panelLayout) hit(x, y int) Action {
	for _, b := range l.buttons {
		if pointInRect(x, y, b.rect) {
			return b.action
		}
	}
	return ActionNone
}

// speedFill returns how many pixels of the bar the current speed covers.
func (l panelLayout) speedFill(speed int) int {
	return l.bar.Dx() * core.ClampSpeed(speed) / core.MaxSpeed
}

// enabled reports whether an action is currently accepted.
func enabled(c Controls, a Action) bool {
	switch a {
	case ActionReset:
		return c.CanReset()
	case ActionAuto:
		return true
	case ActionNext:
		return c.CanNext()
	case ActionRandom:
		return c.CanRandom()
	case ActionSlower:
		return c.CanAdjustSpeed() && c.Speed() > core.MinSpeed
	case ActionFaster:
		return c.CanAdjustSpeed() && c.Speed() < core.MaxSpeed
	default:
		return false
	}
}

// dispatch runs an action and reports whether it was accepted.
func dispatch(c Controls, a Action) bool {
	switch a {
	case ActionReset:
		return c.Reset()
	case ActionAuto:
		c.ToggleAuto()
		return true
	case ActionNext:
		return c.Next()
	case ActionRandom:
		return c.Random()
	case ActionSlower:
		return c.AdjustSpeed(-speedStep)
	case ActionFaster:
		return c.AdjustSpeed(speedStep)
	default:
		return false
	}
}

// infoLine renders the parameter readout as "Label value" pairs.
func infoLine(s core.ParameterSnapshot, keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		p, ok := s.Lookup(key)
		if !ok {
			continue
		}
		parts = append(parts, p.Label+" "+p.Value)
	}
	return strings.Join(parts, "   ")
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding  = 8
	buttonSize    = 22
	buttonGap     = 6
	labelBaseline = 16
	infoSpacing   = 18
)
