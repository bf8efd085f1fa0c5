package score

import (
	"puzzlebox/internal/maze"
	"puzzlebox/internal/solver"
)

// Path-quality tuning constants.
const (
	qualityUpBonus     = 2.0
	qualityBranchScale = 0.1
	qualityDownPenalty = 1.5
	qualityTurnBonus   = 0.5
)

// PathQuality walks the solved path and accumulates a difficulty estimate.
// The first two cells (the entrance stub) are skipped. It is only used to
// rank independently generated candidates, never to steer carving.
func PathQuality(sol *solver.Solution) float64 {
	if sol == nil || len(sol.Path) <= 2 {
		return 0
	}
	q := 0.0
	prevHorizontal := false
	havePrev := false
	for i := 2; i < len(sol.Path); i++ {
		c := sol.Path[i]
		var horizontal bool
		switch c.Letter {
		case 'U':
			q += qualityUpBonus + qualityBranchScale*float64(largestBranch(c))
		case 'D':
			q -= qualityDownPenalty
		case 'L', 'R':
			horizontal = true
		default:
			havePrev = false
			continue
		}
		if havePrev && horizontal != prevHorizontal {
			q += qualityTurnBonus
		}
		prevHorizontal = horizontal
		havePrev = true
	}
	return q
}

func largestBranch(c solver.SolutionCell) int {
	best := 0
	for _, d := range maze.Dirs {
		if b, ok := c.Branches[d]; ok && b.ComponentSize > best {
			best = b.ComponentSize
		}
	}
	return best
}
