package render

import (
	"strings"

	"puzzlebox/internal/maze"
)

// Unicode renders the maze with box-drawing walls. Layout matches Text: one
// border row, then alternating cell and wall rows from MaxY down to MinY.
func Unicode(res *maze.Result, opts TextOptions) string {
	g := grid(res, opts)
	letters := solutionLetters(g, opts.Solution)
	exit := exitColumns(res)

	var sb strings.Builder
	sb.WriteRune('┌')
	for x := 0; x < g.W; x++ {
		if exit[x] {
			sb.WriteString(" E ")
		} else {
			sb.WriteString("───")
		}
		if x == g.W-1 {
			sb.WriteRune('┐')
		} else {
			sb.WriteRune('┬')
		}
	}
	sb.WriteByte('\n')

	for y := res.MaxY; y >= res.MinY; y-- {
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			if v&maze.FlagLeft != 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune('│')
			}
			switch {
			case v&maze.FlagInvalid != 0 && opts.ShowInvalid:
				sb.WriteString("███")
			case letters[g.Index(x, y)] != 0:
				sb.WriteByte(' ')
				sb.WriteByte(letters[g.Index(x, y)])
				sb.WriteByte(' ')
			default:
				sb.WriteString("   ")
			}
		}
		if g.At(g.W-1, y)&maze.FlagRight != 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteRune('│')
		}
		sb.WriteByte('\n')

		last := y == res.MinY
		if last {
			sb.WriteRune('└')
		} else {
			sb.WriteRune('├')
		}
		for x := 0; x < g.W; x++ {
			if g.At(x, y)&maze.FlagDown != 0 && !last {
				sb.WriteString("   ")
			} else {
				sb.WriteString("───")
			}
			switch {
			case last && x == g.W-1:
				sb.WriteRune('┘')
			case last:
				sb.WriteRune('┴')
			case x == g.W-1:
				sb.WriteRune('┤')
			default:
				sb.WriteRune('┼')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
