//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"puzzlebox/internal/app"
	"puzzlebox/internal/maze"
)

func main() {
	width := flag.Int("width", 40, "grid width (0 = derive from geometry)")
	height := flag.Int("height", 20, "grid height (0 = derive from geometry)")
	helix := flag.Int("helix", 0, "helical seam pitch")
	nubs := flag.Int("nubs", 1, "radial copies of the maze")
	complexity := flag.Int("complexity", 5, "carve complexity, -10..10")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	cellPx := flag.Int("scale", 12, "pixels per maze cell")
	flag.Parse()

	cfg := maze.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Params.Helix = *helix
	cfg.Params.Nubs = *nubs
	cfg.Params.Complexity = *complexity
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game, err := app.New(cfg, *cellPx, zerolog.Nop())
	if err != nil {
		log.Fatal(err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("puzzlebox maze preview")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
