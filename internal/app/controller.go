package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lifegame/internal/core"
	pcore "lifegame/pkg/core"
	"lifegame/pkg/life"
)

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	// Cell is the on-screen size of one cell in pixels.
	Cell int
	// Speed is the initial speed scale position.
	Speed int
	// Seed is reported on the panel.
	Seed   int64
	Logger *slog.Logger
	// Clock drives the auto-step trigger; nil uses time.Now.
	Clock func() time.Time
}

// Controller turns panel and pointer input into engine calls. It keeps the
// window rules: while auto-stepping only the Auto toggle is live, Random is
// locked from the first manual step until the next Reset, and the speed is
// read when auto-stepping starts.
//
// All methods must be called from one goroutine; the engine relies on that
// for serialization.
type Controller struct {
	engine *life.Engine
	log    *slog.Logger
	step   *core.FixedStep
	cell   int
	seed   int64

	speed         int
	auto          bool
	randomEnabled bool
}

// NewController wraps an engine.
func NewController(engine *life.Engine, opts ControllerOptions) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cell := opts.Cell
	if cell <= 0 {
		cell = 1
	}
	speed := core.ClampSpeed(opts.Speed)
	return &Controller{
		engine:        engine,
		log:           logger,
		step:          core.NewFixedStepWithClock(core.SpeedInterval(speed), opts.Clock),
		cell:          cell,
		seed:          opts.Seed,
		speed:         speed,
		randomEnabled: true,
	}
}

// Reset clears the grid and unlocks Random.
func (c *Controller) Reset() bool {
	if !c.CanReset() {
		return false
	}
	c.randomEnabled = true
	c.engine.Initialize()
	c.log.Debug("grid reset")
	return true
}

// Random reseeds the grid with a random pattern.
func (c *Controller) Random() bool {
	if !c.CanRandom() {
		return false
	}
	c.engine.Randomize()
	c.log.Debug("grid randomized", "population", c.engine.Population())
	return true
}

// Next advances one generation. Stepping away from generation 0 locks Random.
func (c *Controller) Next() bool {
	if !c.CanNext() {
		return false
	}
	if c.engine.Generation() == 0 {
		c.randomEnabled = false
	}
	c.engine.Advance()
	c.log.Debug("stepped", "generation", c.engine.Generation())
	return true
}

// SetAuto starts or stops automatic stepping.
func (c *Controller) SetAuto(on bool) {
	if on == c.auto {
		return
	}
	c.auto = on
	if on {
		c.randomEnabled = false
		c.step.SetInterval(core.SpeedInterval(c.speed))
		c.step.Reset()
		c.log.Info("auto-step started", "speed", c.speed, "interval", c.step.Interval())
		return
	}
	c.log.Info("auto-step stopped", "generation", c.engine.Generation())
}

// ToggleAuto flips automatic stepping.
func (c *Controller) ToggleAuto() { c.SetAuto(!c.auto) }

// SetSpeed moves the speed scale. It is ignored while auto-stepping.
func (c *Controller) SetSpeed(speed int) bool {
	if !c.CanAdjustSpeed() {
		return false
	}
	c.speed = core.ClampSpeed(speed)
	return true
}

// AdjustSpeed moves the speed scale by delta.
func (c *Controller) AdjustSpeed(delta int) bool { return c.SetSpeed(c.speed + delta) }

// Click toggles the cell under a pointer position given in grid pixels.
func (c *Controller) Click(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	row, col := y/c.cell, x/c.cell
	if err := c.engine.Toggle(row, col); err != nil {
		c.log.Debug("toggle rejected", "row", row, "col", col, "locked", errors.Is(err, life.ErrLocked))
		return false
	}
	return true
}

// Tick advances one generation when auto-stepping and the interval has
// elapsed. It is meant to be called once per frame.
func (c *Controller) Tick() bool {
	if !c.auto || !c.step.ShouldStep() {
		return false
	}
	c.engine.Advance()
	return true
}

// CanReset reports whether Reset is currently accepted.
func (c *Controller) CanReset() bool { return !c.auto }

// CanNext reports whether Next is currently accepted.
func (c *Controller) CanNext() bool { return !c.auto }

// CanRandom reports whether Random is currently accepted.
func (c *Controller) CanRandom() bool { return !c.auto && c.randomEnabled }

// CanAdjustSpeed reports whether the speed scale is live.
func (c *Controller) CanAdjustSpeed() bool { return !c.auto }

// Auto reports whether automatic stepping is on.
func (c *Controller) Auto() bool { return c.auto }

// Speed returns the speed scale position.
func (c *Controller) Speed() int { return c.speed }

// Label returns the generation caption.
func (c *Controller) Label() string {
	return fmt.Sprintf("Generation: %d", c.engine.Generation())
}

// Size returns the playable grid size.
func (c *Controller) Size() pcore.Size { return c.engine.Size() }

// CellPixels returns the on-screen size of one cell.
func (c *Controller) CellPixels() int { return c.cell }

// Cells exposes the engine's render buffer.
func (c *Controller) Cells() []uint8 { return c.engine.Cells() }

// Neighbors reports the neighbor count behind the last generation.
func (c *Controller) Neighbors(row, col int) (int, bool) { return c.engine.Neighbors(row, col) }

// Parameters captures the values shown on the panel.
func (c *Controller) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.UintParam("generation", "Generation", c.engine.Generation()),
				core.IntParam("population", "Population", int64(c.engine.Population())),
				core.StringParam("mode", "Mode", c.engine.Mode().String()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("speed", "Speed", int64(c.speed)),
				core.BoolParam("auto", "Auto", c.auto),
				core.IntParam("seed", "Seed", c.seed),
			},
		},
	}}
}
