package maze

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func explicitConfig(w, h, helix, nubs int, seed int64, complexity int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = seed
	cfg.Params.Helix = helix
	cfg.Params.Nubs = nubs
	cfg.Params.Complexity = complexity
	cfg.Params.Glyph = false
	return cfg
}

// checkReciprocal verifies the symmetric-passage invariant over actual flags.
func checkReciprocal(t *testing.T, g *Grid) {
	t.Helper()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			for _, d := range Dirs {
				if v&d.Bit() == 0 {
					continue
				}
				dx, dy := d.Step()
				nx, ny := g.Normalize(x+dx, y+dy)
				if ny < 0 || ny >= g.H {
					continue // entry channel opens through the rim
				}
				require.NotZerof(t, g.At(nx, ny)&d.Opposite().Bit(),
					"cell (%d,%d) dir %c has no reciprocal at (%d,%d)", x, y, d.Letter(), nx, ny)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := explicitConfig(20, 10, 0, 1, 42, 7)
	a, err := Generate(cfg, zerolog.Nop())
	require.NoError(t, err)
	b, err := Generate(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, a.Grid.Cells(), b.Grid.Cells())
	require.Equal(t, a.Viz.Cells(), b.Viz.Cells())
	require.Equal(t, a.MaxX, b.MaxX)
	require.Equal(t, a.EntranceX, b.EntranceX)
}

func TestGenerateScenario20x10(t *testing.T) {
	res, err := Generate(explicitConfig(20, 10, 0, 1, 42, 7), zerolog.Nop())
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.EntranceX, 0)
	require.Less(t, res.EntranceX, res.Grid.W)
	require.GreaterOrEqual(t, res.MaxX, 0)
	require.Less(t, res.MaxX, res.Grid.W)
	require.LessOrEqual(t, res.MinY, res.MaxY)
	checkReciprocal(t, res.Grid)
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a, err := Generate(explicitConfig(20, 10, 0, 1, 1, 7), zerolog.Nop())
	require.NoError(t, err)
	b, err := Generate(explicitConfig(20, 10, 0, 1, 2, 7), zerolog.Nop())
	require.NoError(t, err)
	require.NotEqual(t, a.Grid.Cells(), b.Grid.Cells())
}

func TestGenerateComplexityRange(t *testing.T) {
	for _, c := range []int{-10, -3, 0, 3, 10} {
		res, err := Generate(explicitConfig(16, 8, 0, 1, 7, c), zerolog.Nop())
		require.NoError(t, err, "complexity %d", c)
		checkReciprocal(t, res.Grid)
	}
}

func TestGenerateNubsReplication(t *testing.T) {
	cfg := explicitConfig(20, 10, 0, 2, 42, 7)
	res, err := Generate(cfg, zerolog.Nop())
	require.NoError(t, err)
	checkReciprocal(t, res.Grid)

	// Re-run the replication walk to recover the visited set, then check
	// every visited cell matches its symmetric partner in the viz grid.
	viz := res.Grid.Clone()
	visited := replicate(res.Grid, viz, res.MaxX, res.MaxY)
	sector := res.Sector()
	w := res.Grid.W
	for y := 0; y < res.Grid.H; y++ {
		for x := 0; x < w; x++ {
			if !visited[y*w+x] {
				continue
			}
			require.Equal(t, res.Viz.At(x, y), res.Viz.At((x+sector)%w, y),
				"sector mismatch at (%d,%d)", x, y)
		}
	}
}

func TestGenerateTestPattern(t *testing.T) {
	cfg := explicitConfig(12, 6, 0, 1, 0, 0)
	cfg.Params.Test = true
	res, err := Generate(cfg, zerolog.Nop())
	require.NoError(t, err)

	g := res.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y)&FlagInvalid != 0 {
				continue
			}
			nx, ny := g.Normalize(x+1, y)
			if ny < 0 || ny >= g.H || g.At(nx, ny)&FlagInvalid != 0 {
				continue
			}
			require.NotZero(t, g.At(x, y)&FlagRight, "cell (%d,%d) not opened right", x, y)
			require.NotZero(t, g.At(nx, ny)&FlagLeft, "cell (%d,%d) not opened left", nx, ny)
		}
	}
	// Every valid cell keeps both horizontal passages around the wrap, so
	// the calibration pattern has no dead ends.
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			if v&FlagInvalid != 0 {
				continue
			}
			require.GreaterOrEqual(t, Degree(v), 2, "dead end at (%d,%d)", x, y)
		}
	}
	// Exit column extends while the row two below the top stays valid.
	require.Equal(t, g.W-1, res.MaxX)
}

func TestGenerateEntryChannel(t *testing.T) {
	res, err := Generate(explicitConfig(20, 10, 0, 1, 42, 7), zerolog.Nop())
	require.NoError(t, err)
	// The exit cell at the top of its column opens upward.
	top := res.Grid.At(res.MaxX, res.Grid.H-1)
	require.NotZero(t, top&FlagUp)
}

func TestLayoutTooSmall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 2
	cfg.Height = 5
	_, err := Generate(cfg, zerolog.Nop())
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, 2, cerr.W)
}

func TestLayoutTooShortForPark(t *testing.T) {
	// The park occupies the bottom helix+2 rows, so this height cannot
	// hold it and must be rejected up front rather than carved.
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 1
	cfg.Params.Helix = 2
	_, err := Generate(cfg, zerolog.Nop())
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, 1, cerr.H)
	require.Equal(t, 2, cerr.Helix)

	cfg.Height = 4
	cfg.Params.ParkVert = true
	_, err = Generate(cfg, zerolog.Nop())
	require.ErrorAs(t, err, &cerr)
}

func TestLayoutNegativeHelix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 8
	cfg.Params.Helix = -1
	_, err := Generate(cfg, zerolog.Nop())
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, -1, cerr.Helix)
}

func TestLayoutGeometryDerivation(t *testing.T) {
	cfg := DefaultConfig()
	lay, err := cfg.Layout()
	require.NoError(t, err)
	// 2*pi*(25-1.6)/3 = 49.00..., floored and snapped to a nub multiple.
	require.Equal(t, 49, lay.W)
	require.Greater(t, lay.H, 0)

	cfg.Params.Nubs = 4
	lay, err = cfg.Layout()
	require.NoError(t, err)
	require.Equal(t, 48, lay.W)
	require.Zero(t, lay.W%4)
}

func TestGeometryBoundsMarking(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Glyph = false
	res, err := Generate(cfg, zerolog.Nop())
	require.NoError(t, err)
	// The derived grid keeps one spare row below and above the span, so
	// the bottom row must be invalid everywhere except the entry channel.
	g := res.Grid
	invalid := 0
	for x := 0; x < g.W; x++ {
		if g.At(x, 0)&FlagInvalid != 0 {
			invalid++
		}
	}
	require.NotZero(t, invalid)
	require.Less(t, res.MinY, res.MaxY)
}
