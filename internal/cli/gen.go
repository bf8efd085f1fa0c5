package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"puzzlebox/internal/maze"
	"puzzlebox/internal/mazefile"
	"puzzlebox/internal/render"
	"puzzlebox/internal/solver"
)

// mazeFlags is the flag surface shared by gen, batch, and the GUI viewer.
type mazeFlags struct {
	width      int
	height     int
	radius     float64
	heightMM   float64
	step       float64
	thickness  float64
	margin     float64
	helix      int
	nubs       int
	complexity int
	seed       int64
	test       bool
	parkVert   bool
	noGlyph    bool
	inside     bool
	sectorExit bool
}

func (f *mazeFlags) bind(cmd *cobra.Command) {
	d := maze.DefaultConfig()
	cmd.Flags().IntVar(&f.width, "width", 0, "explicit grid width (overrides geometry)")
	cmd.Flags().IntVar(&f.height, "height", 0, "explicit grid height (overrides geometry)")
	cmd.Flags().Float64Var(&f.radius, "radius", d.Geometry.Radius, "cylinder radius (mm)")
	cmd.Flags().Float64Var(&f.heightMM, "part-height", d.Geometry.Height, "part height (mm)")
	cmd.Flags().Float64Var(&f.step, "step", d.Geometry.Step, "maze cell pitch (mm)")
	cmd.Flags().Float64Var(&f.thickness, "thickness", d.Geometry.Thickness, "wall thickness (mm)")
	cmd.Flags().Float64Var(&f.margin, "margin", d.Geometry.Margin, "rim clearance (mm)")
	cmd.Flags().IntVar(&f.helix, "helix", d.Params.Helix, "helical seam pitch")
	cmd.Flags().IntVar(&f.nubs, "nubs", d.Params.Nubs, "radial copies of the maze")
	cmd.Flags().IntVar(&f.complexity, "complexity", d.Params.Complexity, "carve complexity, -10..10")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "RNG seed (0 = time-based)")
	cmd.Flags().BoolVar(&f.test, "test", false, "trivial all-open calibration pattern")
	cmd.Flags().BoolVar(&f.parkVert, "park-vertical", false, "carve the park notch vertically")
	cmd.Flags().BoolVar(&f.noGlyph, "no-glyph", false, "skip the decorative glyph")
	cmd.Flags().BoolVar(&f.inside, "inside", false, "inner part of a telescoping pair")
	cmd.Flags().BoolVar(&f.sectorExit, "sector-exit", false, "restrict the exit to the canonical sector")
}

func (f *mazeFlags) config() maze.Config {
	cfg := maze.DefaultConfig()
	cfg.Width = f.width
	cfg.Height = f.height
	cfg.Geometry.Radius = f.radius
	cfg.Geometry.Height = f.heightMM
	cfg.Geometry.Step = f.step
	cfg.Geometry.Thickness = f.thickness
	cfg.Geometry.Margin = f.margin
	cfg.Params.Helix = f.helix
	cfg.Params.Nubs = f.nubs
	cfg.Params.Complexity = f.complexity
	cfg.Params.Test = f.test
	cfg.Params.ParkVert = f.parkVert
	cfg.Params.Glyph = !f.noGlyph
	cfg.Params.Inside = f.inside
	cfg.Params.SectorExit = f.sectorExit
	cfg.Seed = f.seed
	return cfg
}

func newGenCmd() *cobra.Command {
	var flags mazeFlags
	var out, pngOut, commentsOut string
	var useViz bool

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a maze and write it to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg := flags.config()
			if cfg.Seed == 0 {
				cfg.Seed = randomSeed()
			}
			res, err := maze.Generate(cfg, log)
			if err != nil {
				return err
			}
			sol, err := solver.Solve(res)
			if err != nil {
				log.Warn().Err(err).Msg("generated maze does not solve; use a different seed")
			}

			if out != "" {
				if err := writeMazeFile(out, res, useViz); err != nil {
					return err
				}
				log.Info().Str("path", out).Msg("maze file written")
			}
			if pngOut != "" {
				if err := writePNG(pngOut, res, sol, useViz); err != nil {
					return err
				}
				log.Info().Str("path", pngOut).Msg("png written")
			}
			if commentsOut != "" {
				if err := writeComments(commentsOut, res, cfg.Params.Inside); err != nil {
					return err
				}
				log.Info().Str("path", commentsOut).Msg("comment block written")
			}
			if out == "" && pngOut == "" && commentsOut == "" {
				fmt.Fprint(cmd.OutOrStdout(), render.Text(res, render.TextOptions{UseViz: useViz, Solution: sol}))
			}
			log.Info().
				Int64("seed", cfg.Seed).
				Int("w", res.Grid.W).Int("h", res.Grid.H).
				Int("exit_col", res.MaxX).Int("entrance_col", res.EntranceX).
				Msg("maze generated")
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the maze file here")
	cmd.Flags().StringVar(&pngOut, "png", "", "write a PNG raster here")
	cmd.Flags().StringVar(&commentsOut, "comments", "", "write the embedded comment block here")
	cmd.Flags().BoolVar(&useViz, "viz", false, "export the replicated grid")
	return cmd
}

func writeMazeFile(path string, res *maze.Result, useViz bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return mazefile.Write(f, mazefile.FromResult(res, useViz))
}

func writePNG(path string, res *maze.Result, sol *solver.Solution, useViz bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	img := render.Raster(res, render.RasterOptions{UseViz: useViz, Solution: sol})
	return render.WritePNG(f, img)
}

func writeComments(path string, res *maze.Result, inside bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return mazefile.WriteBlock(f, "//", mazefile.BlockFromResult(res, inside))
}
