package mazefile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockRoundTrip(t *testing.T) {
	res := generated(t)
	b := BlockFromResult(res, false)
	require.Equal(t, "OUTSIDE", b.Orientation)
	require.Equal(t, res.MaxY-res.MinY+1, b.H)
	require.Len(t, b.Rows, b.H)

	var buf bytes.Buffer
	require.NoError(t, WriteBlock(&buf, "//", b))

	got, err := ParseBlock(&buf)
	require.NoError(t, err)
	require.Equal(t, b.Orientation, got.Orientation)
	require.Equal(t, b.W, got.W)
	require.Equal(t, b.H, got.H)
	require.Equal(t, b.MaxX, got.MaxX)
	require.Equal(t, b.Helix, got.Helix)
	require.Equal(t, b.MinY, got.MinY)
	require.Equal(t, b.MaxY, got.MaxY)
	require.Equal(t, b.EntranceX, got.EntranceX)
	require.Equal(t, b.ExitX, got.ExitX)
	require.Equal(t, b.Rows, got.Rows)
}

func TestBlockParseBuriedInExport(t *testing.T) {
	in := strings.Join([]string{
		"cylinder(h=50, r=25);",
		"// Part 2 of 4",
		"// MAZE_START INSIDE 3 2 1 0 4 5 0 1",
		"// MAZE_ROW 4 01 02 00",
		"// MAZE_ROW 5 04 08 80",
		"// MAZE_END",
		"translate([0,0,1]);",
	}, "\n")
	b, err := ParseBlock(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "INSIDE", b.Orientation)
	require.Equal(t, 3, b.W)
	require.Equal(t, 4, b.MinY)
	require.Equal(t, 0, b.EntranceX)
	require.Equal(t, 1, b.ExitX)
	require.Equal(t, []uint8{0x04, 0x08, 0x80}, b.Rows[1])
}

func TestBlockParseLegacyHeader(t *testing.T) {
	in := strings.Join([]string{
		"// MAZE_START OUTSIDE 2 1 1 0 3 3",
		"// MAZE_ROW 3 0a 0b",
		"// MAZE_END",
	}, "\n")
	b, err := ParseBlock(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, -1, b.EntranceX)
	require.Equal(t, b.MaxX, b.ExitX)
}

func TestBlockParseErrors(t *testing.T) {
	var perr *ParseError

	_, err := ParseBlock(strings.NewReader("nothing here"))
	require.ErrorAs(t, err, &perr)

	_, err = ParseBlock(strings.NewReader("// MAZE_ROW 0 00"))
	require.ErrorAs(t, err, &perr)

	in := "// MAZE_START OUTSIDE 2 1 0 0 0 0 0 0\n// MAZE_ROW 0 00 01\n"
	_, err = ParseBlock(strings.NewReader(in))
	require.ErrorAs(t, err, &perr)
	require.Contains(t, perr.Msg, "MAZE_END")

	in = "// MAZE_START OUTSIDE 2 1 0 0 0 0 0 0\n// MAZE_END\n"
	_, err = ParseBlock(strings.NewReader(in))
	require.ErrorAs(t, err, &perr)
	require.Contains(t, perr.Msg, "missing MAZE_ROW")

	in = "// MAZE_START OUTSIDE 2 1 0 0 0 0 0 0\n// MAZE_ROW 0 00 zz\n// MAZE_END\n"
	_, err = ParseBlock(strings.NewReader(in))
	require.ErrorAs(t, err, &perr)
}
