//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"lifegame/internal/app"
	"lifegame/pkg/life"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := app.ParseConfig(flag.NewFlagSet("lifegame", flag.ContinueOnError), args)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return err
	}
	engine, err := life.New(engineCfg)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	ctrl := app.NewController(engine, app.ControllerOptions{
		Cell:   cfg.Cell,
		Speed:  cfg.Speed,
		Seed:   cfg.Seed,
		Logger: logger,
	})

	w, h := app.WindowSize(ctrl)
	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	logger.Info("starting", "size", cfg.Size, "seed", cfg.Seed, "settle", cfg.Settle)
	if err := ebiten.RunGame(app.New(ctrl)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
