package maze

import (
	"github.com/rs/zerolog"

	"puzzlebox/pkg/rng"
)

// Generate runs the full pipeline: mark bounds, stamp the park, carve (or
// fill the calibration pattern), open the exit channel, replicate sectors,
// and locate the entrance. Deterministic for a given config and seed. The
// logger is an optional trace sink; pass zerolog.Nop() to silence it.
func Generate(cfg Config, log zerolog.Logger) (*Result, error) {
	lay, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	p := cfg.Params
	if p.Nubs < 1 {
		p.Nubs = 1
	}

	g := NewGrid(lay.W, lay.H, p.Helix, p.Nubs)
	markOutOfSpan(g, lay, cfg.Geometry)
	startX, startY := stampPark(g, p)

	log.Debug().
		Int("w", g.W).Int("h", g.H).
		Int("helix", p.Helix).Int("nubs", p.Nubs).
		Int64("seed", cfg.Seed).
		Msg("carving maze")

	var maxx int
	if p.Test {
		maxx = testFill(g, p.SectorExit)
	} else {
		r := rng.New(cfg.Seed)
		maxx = carve(g, r, p.Complexity, p.SectorExit, startX, startY, log)
	}
	carveEntry(g, maxx)

	minY, maxY := rowSpan(g)

	viz := g.Clone()
	if p.Nubs > 1 {
		replicate(g, viz, maxx, maxY)
	}

	entranceX := -1
	for x := 0; x < g.W/p.Nubs; x++ {
		if g.At(x, minY)&FlagInvalid == 0 {
			entranceX = x
			break
		}
	}

	return &Result{
		Grid:       g,
		Viz:        viz,
		MinY:       minY,
		MaxY:       maxY,
		MaxX:       maxx,
		EntranceX:  entranceX,
		EntryAngle: 360 * float64(maxx) / float64(g.W),
		Seed:       cfg.Seed,
	}, nil
}
