//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"puzzlebox/internal/maze"
	"puzzlebox/internal/render"
	"puzzlebox/internal/solver"
)

// Game previews generated mazes in a window. Keys: R regenerate with the
// same seed, S regenerate with a fresh seed, V toggle the replicated view,
// P toggle the solution overlay, Q/Escape quit.
type Game struct {
	cfg maze.Config
	log zerolog.Logger

	res *maze.Result
	sol *solver.Solution

	frame *ebiten.Image

	cellPx   int
	showViz  bool
	showPath bool
}

// New constructs a Game and generates the first maze.
func New(cfg maze.Config, cellPx int, log zerolog.Logger) (*Game, error) {
	g := &Game{cfg: cfg, log: log, cellPx: cellPx, showViz: true}
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) regenerate() error {
	res, err := maze.Generate(g.cfg, g.log)
	if err != nil {
		return err
	}
	g.res = res
	g.sol = nil
	if sol, err := solver.Solve(res); err == nil {
		g.sol = sol
	} else {
		g.log.Warn().Err(err).Int64("seed", g.cfg.Seed).Msg("candidate did not solve")
	}
	g.frame = nil
	return nil
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.regenerate(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.cfg.Seed = time.Now().UnixNano()
		if err := g.regenerate(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.showViz = !g.showViz
		g.frame = nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.showPath = !g.showPath
		g.frame = nil
	}
	return nil
}

// Draw renders the current maze raster.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		opts := render.RasterOptions{UseViz: g.showViz, CellPx: g.cellPx}
		if g.showPath {
			opts.Solution = g.sol
		}
		img := render.Raster(g.res, opts)
		g.frame = ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
		g.frame.WritePixels(img.Pix)
	}
	screen.DrawImage(g.frame, nil)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows := g.res.MaxY - g.res.MinY + 1
	return g.res.Grid.W*g.cellPx + 1, rows*g.cellPx + 1
}
