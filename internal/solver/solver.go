// Package solver checks connectivity of a generated maze and derives the
// solution path from the entrance to the carving endpoint.
package solver

import (
	"fmt"

	"puzzlebox/internal/maze"
	"puzzlebox/pkg/deque"
)

// Branch describes one untaken exit of a path cell: where it leads, how much
// maze lies beyond it, and whether the destination is itself on the solution.
type Branch struct {
	DestX, DestY  int
	ComponentSize int
	OnSolution    bool
}

// SolutionCell is one step of the solved path. Letter is 'S' for the start,
// 'U' for the final climb out, otherwise the move toward the exit.
type SolutionCell struct {
	X, Y     int
	Letter   byte
	Branches map[maze.Dir]Branch
}

// Solution holds the reachability bitmap and the shortest entrance-to-exit
// path of a maze.
type Solution struct {
	Path           []SolutionCell // entrance first
	Reachable      []bool         // indexed by Grid.Index
	ReachableCount int
}

// DefectError marks a structurally broken candidate maze. The process keeps
// running; the caller regenerates with a fresh seed.
type DefectError struct {
	Reason string
}

func (e *DefectError) Error() string {
	return fmt.Sprintf("maze defect: %s", e.Reason)
}

// step moves one cell in direction d. Horizontal moves wrap around the
// cylinder and shift the row by the helix pitch; vertical moves are bounded.
// ok is false when the destination row is out of range.
func step(g *maze.Grid, x, y int, d maze.Dir) (int, int, bool) {
	dx, dy := d.Step()
	if dx != 0 {
		nx, ny := g.Normalize(x+dx, y)
		if ny < 0 || ny >= g.H {
			return 0, 0, false
		}
		return nx, ny, true
	}
	ny := y + dy
	if ny < 0 || ny >= g.H {
		return 0, 0, false
	}
	return x, ny, true
}

// Reachable flood-fills from (startX, startY) over carved passages, skipping
// invalid cells, and returns the visited bitmap and count.
func Reachable(g *maze.Grid, startX, startY int) ([]bool, int) {
	seen := make([]bool, g.W*g.H)
	q := deque.New[[2]int](g.W * g.H / 4)
	q.PushBack([2]int{startX, startY})
	seen[g.Index(startX, startY)] = true
	count := 0
	for {
		p, ok := q.PopFront()
		if !ok {
			break
		}
		count++
		v := g.At(p[0], p[1])
		for _, d := range maze.Dirs {
			if v&d.Bit() == 0 {
				continue
			}
			nx, ny, ok := step(g, p[0], p[1], d)
			if !ok || seen[g.Index(nx, ny)] || g.At(nx, ny)&maze.FlagInvalid != 0 {
				continue
			}
			seen[g.Index(nx, ny)] = true
			q.PushBack([2]int{nx, ny})
		}
	}
	return seen, count
}

// Solve produces the reachability bitmap and the shortest path from the
// entrance (EntranceX, MinY) to the exit (MaxX, MaxY). A missing entrance or
// an unreachable exit yields a DefectError.
func Solve(res *maze.Result) (*Solution, error) {
	g := res.Grid
	if res.EntranceX < 0 {
		return nil, &DefectError{Reason: "no valid entrance cell on the bottom row"}
	}

	reachable, count := Reachable(g, res.EntranceX, res.MinY)

	parent := make([]int, g.W*g.H)
	for i := range parent {
		parent[i] = -1
	}
	start := g.Index(res.EntranceX, res.MinY)
	goal := g.Index(res.MaxX, res.MaxY)
	parent[start] = start

	q := deque.New[[2]int](g.W * g.H / 4)
	q.PushBack([2]int{res.EntranceX, res.MinY})
	found := false
	for !found {
		p, ok := q.PopFront()
		if !ok {
			break
		}
		if g.Index(p[0], p[1]) == goal {
			found = true
			break
		}
		v := g.At(p[0], p[1])
		for _, d := range [4]maze.Dir{maze.Right, maze.Left, maze.Up, maze.Down} {
			if v&d.Bit() == 0 {
				continue
			}
			nx, ny, ok := step(g, p[0], p[1], d)
			if !ok {
				continue
			}
			ni := g.Index(nx, ny)
			if parent[ni] >= 0 || g.At(nx, ny)&maze.FlagInvalid != 0 {
				continue
			}
			parent[ni] = g.Index(p[0], p[1])
			q.PushBack([2]int{nx, ny})
		}
	}
	if !found {
		return nil, &DefectError{Reason: "exit unreachable from entrance"}
	}

	// Reconstruct exit-to-entrance, then reverse.
	var rev [][2]int
	for i := goal; ; i = parent[i] {
		rev = append(rev, [2]int{i % g.W, i / g.W})
		if i == start {
			break
		}
	}
	path := make([]SolutionCell, len(rev))
	for i := range rev {
		p := rev[len(rev)-1-i]
		path[i] = SolutionCell{X: p[0], Y: p[1]}
	}

	onPath := make([]bool, g.W*g.H)
	for _, c := range path {
		onPath[g.Index(c.X, c.Y)] = true
	}

	sol := &Solution{Path: path, Reachable: reachable, ReachableCount: count}
	annotate(g, sol, onPath)
	return sol, nil
}

// annotate assigns direction letters and fills the untaken-branch records.
func annotate(g *maze.Grid, sol *Solution, onPath []bool) {
	path := sol.Path
	for i := range path {
		c := &path[i]
		var entered, exited maze.Dir
		hasEntered, hasExited := false, false
		if i > 0 {
			entered = dirBetween(g, path[i-1].X, path[i-1].Y, c.X, c.Y).Opposite()
			hasEntered = true
		}
		if i < len(path)-1 {
			exited = dirBetween(g, c.X, c.Y, path[i+1].X, path[i+1].Y)
			hasExited = true
		}

		switch {
		case i == 0:
			c.Letter = 'S'
		case i == len(path)-1:
			c.Letter = 'U' // final climb out through the rim
		default:
			c.Letter = exited.Letter()
		}

		v := g.At(c.X, c.Y)
		for _, d := range maze.Dirs {
			if v&d.Bit() == 0 {
				continue
			}
			if (hasEntered && d == entered) || (hasExited && d == exited) {
				continue
			}
			nx, ny, ok := step(g, c.X, c.Y, d)
			if !ok || g.At(nx, ny)&maze.FlagInvalid != 0 {
				continue
			}
			if c.Branches == nil {
				c.Branches = make(map[maze.Dir]Branch)
			}
			c.Branches[d] = Branch{
				DestX:         nx,
				DestY:         ny,
				ComponentSize: componentBeyond(g, c.X, c.Y, nx, ny),
				OnSolution:    onPath[g.Index(nx, ny)],
			}
		}
	}
}

// dirBetween returns the direction of the single-step move from (x0,y0) to
// (x1,y1), accounting for horizontal wrap.
func dirBetween(g *maze.Grid, x0, y0, x1, y1 int) maze.Dir {
	dx := ((x1-x0)%g.W + g.W) % g.W
	switch {
	case dx == 1:
		return maze.Right
	case dx == g.W-1:
		return maze.Left
	case y1 > y0:
		return maze.Up
	default:
		return maze.Down
	}
}

// componentBeyond sizes the region reachable from (sx, sy) without crossing
// back through the path cell (px, py), so the solution side is not counted.
func componentBeyond(g *maze.Grid, px, py, sx, sy int) int {
	seen := make([]bool, g.W*g.H)
	seen[g.Index(px, py)] = true
	seen[g.Index(sx, sy)] = true
	q := deque.New[[2]int](16)
	q.PushBack([2]int{sx, sy})
	count := 0
	for {
		p, ok := q.PopFront()
		if !ok {
			break
		}
		count++
		v := g.At(p[0], p[1])
		for _, d := range maze.Dirs {
			if v&d.Bit() == 0 {
				continue
			}
			nx, ny, ok := step(g, p[0], p[1], d)
			if !ok || seen[g.Index(nx, ny)] || g.At(nx, ny)&maze.FlagInvalid != 0 {
				continue
			}
			seen[g.Index(nx, ny)] = true
			q.PushBack([2]int{nx, ny})
		}
	}
	return count
}
