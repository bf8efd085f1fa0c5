package maze

import (
	"github.com/rs/zerolog"

	"puzzlebox/pkg/deque"
	"puzzlebox/pkg/rng"
)

// Direction weights biasing the carve toward vertical-looking corridors.
// Selection walks the cumulative ranges in the order right, left, down, up.
const (
	biasRight = 1
	biasLeft  = 2
	biasDown  = 1
	biasUp    = 4
)

type frontierNode struct {
	x, y  int
	depth int
}

// carve runs the biased random backtracker from the start cell and returns
// the exit column: the column of the deepest cell sitting at the top of its
// usable span (restricted to the canonical sector when sectorExit is set).
//
// complexity in [-10, 10] steers the frontier: a draw below |complexity|
// pushes the new cell at the front (depth-first, long corridors), otherwise
// at the back (breadth-first, fan-like branching). Non-positive complexity
// additionally keeps the current cell at the front on the same draw, so the
// walk backtracks locally instead of abandoning the branch.
func carve(g *Grid, r *rng.RNG, complexity int, sectorExit bool, startX, startY int, log zerolog.Logger) int {
	sector := g.W / g.Nubs
	maxx, maxDepth := 0, 0
	c := complexity
	if c < 0 {
		c = -c
	}

	frontier := deque.New[frontierNode](g.W * g.H / 4)
	frontier.PushBack(frontierNode{x: startX, y: startY})

	for {
		p, ok := frontier.PopFront()
		if !ok {
			break
		}
		x, y := p.x, p.y

		n := 0
		if g.Lookup(x+1, y) == 0 {
			n += biasRight
		}
		if g.Lookup(x-1, y) == 0 {
			n += biasLeft
		}
		if g.Lookup(x, y-1) == 0 {
			n += biasDown
		}
		if g.Lookup(x, y+1) == 0 {
			n += biasUp
		}
		if n == 0 {
			continue
		}

		v := r.IntN(n)
		switch {
		case g.Lookup(x+1, y) == 0 && subNeg(&v, biasRight):
			x, y = g.Carve(x, y, Right)
		case g.Lookup(x-1, y) == 0 && subNeg(&v, biasLeft):
			x, y = g.Carve(x, y, Left)
		case g.Lookup(x, y-1) == 0 && subNeg(&v, biasDown):
			x, y = g.Carve(x, y, Down)
		default:
			x, y = g.Carve(x, y, Up)
		}

		// Deepest cell at the top of a usable column becomes the exit.
		if p.depth > maxDepth && g.Lookup(x, y+1)&FlagInvalid != 0 &&
			(!sectorExit || x < sector) {
			maxDepth = p.depth
			maxx = x
		}

		next := frontierNode{x: x, y: y, depth: p.depth + 1}
		draw := r.IntN(10)
		if draw < c {
			frontier.PushFront(next)
		} else {
			frontier.PushBack(next)
		}
		if complexity <= 0 && draw < -complexity {
			frontier.PushFront(p)
		} else {
			frontier.PushBack(p)
		}
	}

	log.Debug().Int("path_length", maxDepth).Int("exit_col", maxx).Msg("carve complete")
	return maxx
}

// subNeg subtracts w from *v and reports whether it went negative, driving
// the cumulative-weight direction pick.
func subNeg(v *int, w int) bool {
	*v -= w
	return *v < 0
}

// testFill replaces carving with the all-open calibration pattern: every
// horizontally adjacent pair of valid cells is connected. The exit column is
// extended rightward while the row two below the top stays valid.
func testFill(g *Grid, sectorExit bool) int {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Lookup(x, y)&FlagInvalid != 0 || g.Lookup(x+1, y)&FlagInvalid != 0 {
				continue
			}
			g.Carve(x, y, Right)
		}
	}
	maxx := 0
	if !sectorExit {
		for maxx+1 < g.W && g.Lookup(maxx+1, g.H-2)&FlagInvalid == 0 {
			maxx++
		}
	}
	return maxx
}
