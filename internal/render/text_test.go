package render

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"puzzlebox/internal/maze"
	"puzzlebox/internal/solver"
)

func smallResult(t *testing.T) *maze.Result {
	t.Helper()
	// 3x2: corridor (0,0)->(1,0)->(1,1), exit column 1.
	g := maze.NewGrid(3, 2, 0, 1)
	g.Carve(0, 0, maze.Right)
	g.Carve(1, 0, maze.Up)
	g.Or(1, 1, maze.FlagUp)
	g.Or(2, 1, maze.FlagInvalid)
	return &maze.Result{Grid: g, Viz: g.Clone(), MinY: 0, MaxY: 1, MaxX: 1, EntranceX: 0}
}

func TestTextLayout(t *testing.T) {
	out := Text(smallResult(t), TextOptions{ShowInvalid: true})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "+---+ E +---+", lines[0])
	// Top cell row: wall left of (0,1), open interior, invalid shading.
	require.Equal(t, "|   |   |###|", lines[1])
	// Passage between (1,1) and (1,0) leaves the wall row open.
	require.Equal(t, "+---+   +---+", lines[2])
	// Bottom cells: (0,0)-(1,0) passage opens the shared wall.
	require.Equal(t, "|       |   |", lines[3])
	require.Equal(t, "+---+---+---+", lines[4])
}

func TestTextSolutionOverlay(t *testing.T) {
	res := smallResult(t)
	sol, err := solver.Solve(res)
	require.NoError(t, err)
	out := Text(res, TextOptions{Solution: sol})
	require.Contains(t, out, " S ")
	require.Contains(t, out, " U ")
}

func TestUnicodeLayout(t *testing.T) {
	out := Unicode(smallResult(t), TextOptions{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "┌───┬ E ┬───┐", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "│"))
	require.True(t, strings.HasPrefix(lines[4], "└"))
	require.True(t, strings.HasSuffix(lines[4], "┘"))
}

func TestRasterDimensionsAndClasses(t *testing.T) {
	res := smallResult(t)
	img := Raster(res, RasterOptions{CellPx: 4})
	require.Equal(t, 3*4+1, img.Bounds().Dx())
	require.Equal(t, 2*4+1, img.Bounds().Dy())

	// Interior of the invalid cell (2,1) maps to the top-right block.
	inv := DefaultPalette[classInvalid]
	r, g, b, _ := img.At(2*4+2, 2).RGBA()
	require.Equal(t, uint32(inv.R), r>>8)
	require.Equal(t, uint32(inv.G), g>>8)
	require.Equal(t, uint32(inv.B), b>>8)

	// Exit notch over column 1.
	exitCol := DefaultPalette[classExit]
	r, g, b, _ = img.At(1*4+2, 0).RGBA()
	require.Equal(t, uint32(exitCol.R), r>>8)
	require.Equal(t, uint32(exitCol.G), g>>8)
	require.Equal(t, uint32(exitCol.B), b>>8)
}

func TestRasterOnGenerated(t *testing.T) {
	cfg := maze.DefaultConfig()
	cfg.Width = 16
	cfg.Height = 8
	cfg.Seed = 3
	cfg.Params.Glyph = false
	res, err := maze.Generate(cfg, zerolog.Nop())
	require.NoError(t, err)
	img := Raster(res, RasterOptions{UseViz: true})
	require.NotNil(t, img)
	require.Equal(t, 16*8+1, img.Bounds().Dx())
}
