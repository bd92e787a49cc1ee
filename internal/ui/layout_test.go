package ui

import (
	"testing"

	"lifegame/internal/core"
	pcore "lifegame/pkg/core"
)

type fakeControls struct {
	auto, randomLocked bool
	speed              int
	calls              []string
}

func (f *fakeControls) Reset() bool {
	f.calls = append(f.calls, "reset")
	return true
}

func (f *fakeControls) Random() bool {
	f.calls = append(f.calls, "random")
	return !f.randomLocked
}

func (f *fakeControls) Next() bool {
	f.calls = append(f.calls, "next")
	return true
}

func (f *fakeControls) ToggleAuto() {
	f.auto = !f.auto
	f.calls = append(f.calls, "auto")
}

func (f *fakeControls) AdjustSpeed(delta int) bool {
	f.speed = core.ClampSpeed(f.speed + delta)
	f.calls = append(f.calls, "speed")
	return true
}

func (f *fakeControls) CanReset() bool       { return !f.auto }
func (f *fakeControls) CanRandom() bool      { return !f.auto && !f.randomLocked }
func (f *fakeControls) CanNext() bool        { return !f.auto }
func (f *fakeControls) CanAdjustSpeed() bool { return !f.auto }
func (f *fakeControls) Auto() bool           { return f.auto }
func (f *fakeControls) Speed() int           { return f.speed }
func (f *fakeControls) Label() string        { return "Generation: 0" }

func (f *fakeControls) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Grid",
		Params: []core.Parameter{
			core.IntParam("population", "Population", 12),
			core.IntParam("speed", "Speed", int64(f.speed)),
		},
	}}}
}

func TestLayoutPanelButtonsFitAndDoNotOverlap(t *testing.T) {
	l := layoutPanel(500)
	if len(l.buttons) != 6 {
		t.Fatalf("layout has %d buttons, want 6", len(l.buttons))
	}
	for i, a := range l.buttons {
		if a.rect.Min.X < 0 || a.rect.Max.X > 500 || a.rect.Max.Y > PanelHeight {
			t.Fatalf("button %q out of panel bounds: %v", a.label, a.rect)
		}
		for _, b := range l.buttons[i+1:] {
			if a.rect.Overlaps(b.rect) {
				t.Fatalf("buttons %q and %q overlap", a.label, b.label)
			}
		}
	}
	if l.infoY >= PanelHeight {
		t.Fatalf("info line baseline %d below the panel", l.infoY)
	}
}

func TestLayoutPanelHit(t *testing.T) {
	l := layoutPanel(500)
	for _, b := range l.buttons {
		center := b.rect.Min.Add(b.rect.Size().Div(2))
		if got := l.hit(center.X, center.Y); got != b.action {
			t.Fatalf("hit at center of %q = %v, want %v", b.label, got, b.action)
		}
	}
	if got := l.hit(250, PanelHeight-1); got != ActionNone {
		t.Fatalf("hit on empty panel area = %v", got)
	}
}

func TestSpeedFill(t *testing.T) {
	l := layoutPanel(500)
	if l.speedFill(0) != 0 || l.speedFill(100) != l.bar.Dx() {
		t.Fatal("speed bar does not span the scale")
	}
	if l.speedFill(250) != l.bar.Dx() {
		t.Fatal("speed bar not clamped")
	}
}

func TestDispatchRespectsEnabled(t *testing.T) {
	f := &fakeControls{speed: 50}
	if !enabled(f, ActionNext) || !dispatch(f, ActionNext) {
		t.Fatal("Next not dispatched")
	}
	if len(f.calls) != 1 || f.calls[0] != "next" {
		t.Fatalf("calls = %v, want [next]", f.calls)
	}
	dispatch(f, ActionAuto)
	if !f.auto {
		t.Fatal("Auto did not toggle")
	}
	for _, a := range []Action{ActionReset, ActionNext, ActionRandom, ActionSlower, ActionFaster} {
		if enabled(f, a) {
			t.Fatalf("action %v enabled while auto-stepping", a)
		}
	}
	if !enabled(f, ActionAuto) {
		t.Fatal("Auto must stay enabled while auto-stepping")
	}
	if enabled(f, ActionNone) || dispatch(f, ActionNone) {
		t.Fatal("ActionNone must do nothing")
	}
}

func TestDispatchSpeed(t *testing.T) {
	f := &fakeControls{speed: 50}
	dispatch(f, ActionFaster)
	dispatch(f, ActionFaster)
	dispatch(f, ActionSlower)
	if f.speed != 60 {
		t.Fatalf("speed = %d, want 60", f.speed)
	}
	f.speed = core.MaxSpeed
	if enabled(f, ActionFaster) {
		t.Fatal("faster enabled at max speed")
	}
	f.speed = core.MinSpeed
	if enabled(f, ActionSlower) {
		t.Fatal("slower enabled at min speed")
	}
}

func TestInfoLine(t *testing.T) {
	f := &fakeControls{speed: 30}
	got := infoLine(f.Parameters(), "population", "missing", "speed")
	if got != "Population 12   Speed 30" {
		t.Fatalf("info line = %q", got)
	}
}

type gridCounts struct {
	w, h int
}

func (g gridCounts) Size() pcore.Size { return pcore.Size{W: g.w, H: g.h} }

func (g gridCounts) Neighbors(row, col int) (int, bool) {
	return (row + col) % 9, true
}

func TestCollectNeighbors(t *testing.T) {
	src := gridCounts{w: 4, h: 3}
	got := collectNeighbors(nil, src)
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	if got[1*4+3] != 4 || got[2*4+2] != 4 || got[0] != 0 {
		t.Fatalf("unexpected counts %v", got)
	}
	again := collectNeighbors(got, src)
	if &again[0] != &got[0] {
		t.Fatal("buffer with enough capacity was reallocated")
	}
}
