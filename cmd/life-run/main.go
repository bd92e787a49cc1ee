// Command life-run seeds a grid with Random, runs it for a number of
// generations and prints the result as text.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"lifegame/internal/app"
	"lifegame/pkg/life"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out, logOut io.Writer, args []string) error {
	fs := flag.NewFlagSet("life-run", flag.ContinueOnError)
	fs.SetOutput(logOut)
	steps := fs.Int("steps", 100, "generations to run after seeding")
	every := fs.Int("every", 0, "print the grid every k generations (0 prints only the final grid)")
	cfg, err := app.ParseConfig(fs, args)
	if err != nil {
		return err
	}
	if *steps < 0 || *every < 0 {
		return errors.New("steps and every must not be negative")
	}
	logger := cfg.NewLogger(logOut)

	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return err
	}
	engine, err := life.New(engineCfg)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	engine.Randomize()
	logger.Info("seeded", "seed", cfg.Seed, "settle", cfg.Settle, "population", engine.Population())

	w := bufio.NewWriter(out)
	defer w.Flush()
	for i := 0; i < *steps; i++ {
		if *every > 0 && i%*every == 0 {
			if err := printGrid(w, engine); err != nil {
				return err
			}
		}
		engine.Advance()
		logger.Debug("advanced", "generation", engine.Generation(), "population", engine.Population())
	}
	if err := printGrid(w, engine); err != nil {
		return err
	}
	return w.Flush()
}

func printGrid(w io.Writer, e *life.Engine) error {
	size := e.Size()
	if _, err := fmt.Fprintf(w, "Generation: %d\nPopulation: %d\n", e.Generation(), e.Population()); err != nil {
		return err
	}
	cells := e.Cells()
	line := make([]byte, size.W+1)
	line[size.W] = '\n'
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			line[col] = '.'
			if cells[row*size.W+col] != 0 {
				line[col] = '#'
			}
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
