package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"lifegame/internal/core"
	pcore "lifegame/pkg/core"
	"lifegame/pkg/life"
)

// Config represents the environment and command-line parameters for the
// application. Flags override environment values.
type Config struct {
	Size     int    `env:"LIFEGAME_SIZE" envDefault:"102"`
	Cell     int    `env:"LIFEGAME_CELL" envDefault:"5"`
	Speed    int    `env:"LIFEGAME_SPEED" envDefault:"50"`
	Seed     int64  `env:"LIFEGAME_SEED" envDefault:"0"`
	Settle   bool   `env:"LIFEGAME_SETTLE" envDefault:"true"`
	LogLevel string `env:"LIFEGAME_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig loads the environment, then parses args with fs. Callers may
// register extra flags on fs beforehand.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length including the wrap margin")
	fs.IntVar(&c.Cell, "cell", c.Cell, "pixels per cell")
	fs.IntVar(&c.Speed, "speed", c.Speed, "auto-step speed, 0 (slow) to 100 (fast)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for Random, 0 picks one at startup")
	fs.BoolVar(&c.Settle, "settle", c.Settle, "advance a random pattern once before showing it")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Size < 3 {
		errs = append(errs, fmt.Errorf("size %d: must be at least 3", c.Size))
	}
	if c.Cell < 1 {
		errs = append(errs, fmt.Errorf("cell %d: must be at least 1", c.Cell))
	}
	if c.Speed < core.MinSpeed || c.Speed > core.MaxSpeed {
		errs = append(errs, fmt.Errorf("speed %d: must be within [%d, %d]", c.Speed, core.MinSpeed, core.MaxSpeed))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// EngineConfig builds the engine configuration. A zero seed is replaced with
// a fresh one, which is written back to c so it can be reported.
func (c *Config) EngineConfig() (life.Config, error) {
	if c.Seed == 0 {
		seed, err := pcore.NewSeed()
		if err != nil {
			return life.Config{}, err
		}
		c.Seed = seed
	}
	return life.Config{Size: c.Size, Seed: c.Seed, Settle: c.Settle}, nil
}

// NewLogger returns a text logger at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
