package solver

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"puzzlebox/internal/maze"
)

// corridorResult builds a 5x4 maze with a single winding corridor:
// (0,0) right to (2,0), up to (2,3).
func corridorResult(t *testing.T) *maze.Result {
	t.Helper()
	g := maze.NewGrid(5, 4, 0, 1)
	g.Carve(0, 0, maze.Right)
	g.Carve(1, 0, maze.Right)
	g.Carve(2, 0, maze.Up)
	g.Carve(2, 1, maze.Up)
	g.Carve(2, 2, maze.Up)
	return &maze.Result{
		Grid:      g,
		Viz:       g.Clone(),
		MinY:      0,
		MaxY:      3,
		MaxX:      2,
		EntranceX: 0,
	}
}

func TestSolveCorridor(t *testing.T) {
	res := corridorResult(t)
	sol, err := Solve(res)
	require.NoError(t, err)
	require.Len(t, sol.Path, 6)

	letters := make([]byte, len(sol.Path))
	for i, c := range sol.Path {
		letters[i] = c.Letter
	}
	require.Equal(t, "SRUUUU", string(letters))
	require.Equal(t, 6, sol.ReachableCount)
	require.Empty(t, sol.Path[1].Branches)
}

func TestSolveBranchAnalysis(t *testing.T) {
	res := corridorResult(t)
	// Side branch off the corridor at (2,1): two cells to the right.
	res.Grid.Carve(2, 1, maze.Right)
	res.Grid.Carve(3, 1, maze.Right)

	sol, err := Solve(res)
	require.NoError(t, err)

	var cell *SolutionCell
	for i := range sol.Path {
		if sol.Path[i].X == 2 && sol.Path[i].Y == 1 {
			cell = &sol.Path[i]
		}
	}
	require.NotNil(t, cell)
	b, ok := cell.Branches[maze.Right]
	require.True(t, ok)
	require.Equal(t, 3, b.DestX)
	require.Equal(t, 1, b.DestY)
	require.Equal(t, 2, b.ComponentSize)
	require.False(t, b.OnSolution)
}

func TestSolveUnreachableExit(t *testing.T) {
	g := maze.NewGrid(5, 4, 0, 1)
	g.Carve(0, 0, maze.Right)
	// Exit cell is isolated.
	res := &maze.Result{Grid: g, Viz: g.Clone(), MinY: 0, MaxY: 3, MaxX: 4, EntranceX: 0}
	_, err := Solve(res)
	var derr *DefectError
	require.ErrorAs(t, err, &derr)
}

func TestSolveNoEntrance(t *testing.T) {
	g := maze.NewGrid(5, 4, 0, 1)
	res := &maze.Result{Grid: g, Viz: g.Clone(), MaxY: 3, EntranceX: -1}
	_, err := Solve(res)
	var derr *DefectError
	require.ErrorAs(t, err, &derr)
}

func TestReachabilityCountIdentity(t *testing.T) {
	cfg := maze.DefaultConfig()
	cfg.Width = 20
	cfg.Height = 10
	cfg.Seed = 42
	cfg.Params.Complexity = 7
	cfg.Params.Glyph = false
	res, err := maze.Generate(cfg, zerolog.Nop())
	require.NoError(t, err)

	sol, err := Solve(res)
	require.NoError(t, err)

	g := res.Grid
	usable, unreached := 0, 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y)&maze.FlagInvalid != 0 {
				continue
			}
			usable++
			if !sol.Reachable[g.Index(x, y)] {
				unreached++
			}
		}
	}
	require.Equal(t, usable-unreached, sol.ReachableCount)

	// The carving endpoint must be reachable, and the path ends there.
	last := sol.Path[len(sol.Path)-1]
	require.Equal(t, res.MaxX, last.X)
	require.Equal(t, res.MaxY, last.Y)
	require.Equal(t, byte('U'), last.Letter)
	require.Equal(t, byte('S'), sol.Path[0].Letter)
}

func TestSolveHelixWrapPath(t *testing.T) {
	// Corridor that wraps the seam: (6,0) right to (0,1) with helix 1.
	g := maze.NewGrid(7, 3, 1, 1)
	g.Carve(5, 0, maze.Right)
	g.Carve(6, 0, maze.Right) // wraps to (0,1)
	g.Carve(0, 1, maze.Up)
	res := &maze.Result{Grid: g, Viz: g.Clone(), MinY: 0, MaxY: 2, MaxX: 0, EntranceX: 5}
	sol, err := Solve(res)
	require.NoError(t, err)
	letters := make([]byte, len(sol.Path))
	for i, c := range sol.Path {
		letters[i] = c.Letter
	}
	require.Equal(t, "SRUU", string(letters))
}
