// Package render produces human-readable and raster views of generated
// mazes. The text forms match the unwrapped-cylinder layout embedded in CAD
// exports: row MaxY prints first, exits are marked over every nub copy.
package render

import (
	"strings"

	"puzzlebox/internal/maze"
	"puzzlebox/internal/solver"
)

// TextOptions controls the text renderers.
type TextOptions struct {
	UseViz      bool // render the replicated grid instead of the carved one
	ShowInvalid bool // shade invalid cells with '#'
	Solution    *solver.Solution
}

// Text renders the maze with ASCII walls:
//
//	+ E +---+
//	| S     |
//	+---+---+
func Text(res *maze.Result, opts TextOptions) string {
	g := grid(res, opts)
	letters := solutionLetters(g, opts.Solution)
	exit := exitColumns(res)

	var sb strings.Builder
	// Top border with exit markers.
	sb.WriteByte('+')
	for x := 0; x < g.W; x++ {
		if exit[x] {
			sb.WriteString(" E ")
		} else {
			sb.WriteString("---")
		}
		sb.WriteByte('+')
	}
	sb.WriteByte('\n')

	for y := res.MaxY; y >= res.MinY; y-- {
		// Cell row: left walls and interiors.
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			if v&maze.FlagLeft != 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('|')
			}
			switch {
			case v&maze.FlagInvalid != 0 && opts.ShowInvalid:
				sb.WriteString("###")
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
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')

		// Wall row below.
		sb.WriteByte('+')
		for x := 0; x < g.W; x++ {
			if g.At(x, y)&maze.FlagDown != 0 {
				sb.WriteString("   ")
			} else {
				sb.WriteString("---")
			}
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func grid(res *maze.Result, opts TextOptions) *maze.Grid {
	if opts.UseViz {
		return res.Viz
	}
	return res.Grid
}

func exitColumns(res *maze.Result) []bool {
	cols := make([]bool, res.Grid.W)
	for _, x := range res.ExitColumns() {
		cols[x] = true
	}
	return cols
}

func solutionLetters(g *maze.Grid, sol *solver.Solution) []byte {
	letters := make([]byte, g.W*g.H)
	if sol == nil {
		return letters
	}
	for _, c := range sol.Path {
		letters[g.Index(c.X, c.Y)] = c.Letter
	}
	return letters
}
