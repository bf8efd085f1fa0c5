// Package score computes structural metrics and ranking signals for
// generated mazes.
package score

import (
	"fmt"
	"strconv"
	"strings"

	"puzzlebox/internal/maze"
	"puzzlebox/internal/solver"
)

// Weights for the linear structural score. Unreachable and DeadEnd carry
// negative defaults so those terms penalize.
type Weights struct {
	Connected   float64 `json:"connected"`
	Unreachable float64 `json:"unreachable"`
	DeadEnd     float64 `json:"dead_end"`
	Branching   float64 `json:"branching"`
	AvgDegree   float64 `json:"avg_degree"`
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Connected:   2,
		Unreachable: -5,
		DeadEnd:     -1,
		Branching:   1,
		AvgDegree:   1,
	}
}

// ParseWeights overrides defaults from a "key=value,key=value" string using
// the keys connected, unreachable, dead_end, branching, avg_degree.
func ParseWeights(s string) (Weights, error) {
	w := DefaultWeights()
	if s == "" {
		return w, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, vs, ok := strings.Cut(part, "=")
		if !ok {
			return w, fmt.Errorf("weight %q must be key=value", part)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(vs), 64)
		if err != nil {
			return w, fmt.Errorf("weight %q: %w", part, err)
		}
		switch strings.TrimSpace(k) {
		case "connected":
			w.Connected = v
		case "unreachable":
			w.Unreachable = v
		case "dead_end":
			w.DeadEnd = v
		case "branching":
			w.Branching = v
		case "avg_degree":
			w.AvgDegree = v
		default:
			return w, fmt.Errorf("unknown weight key %q", k)
		}
	}
	return w, nil
}

// Metrics are the structural measurements of one maze grid.
type Metrics struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	TotalCells       int     `json:"total_cells"`
	InvalidCells     int     `json:"invalid_cells"`
	UsableCells      int     `json:"usable_cells"`
	LargestComponent int     `json:"largest_component"`
	UnreachableCells int     `json:"unreachable_cells"`
	DeadEnds         int     `json:"dead_ends"`
	BranchingCells   int     `json:"branching_cells"`
	AvgDegree        float64 `json:"avg_degree"`
	DegreeCounts     [5]int  `json:"deg_counts"`
}

// Analyze measures a grid: invalid count, degree histogram, dead ends
// (degree <= 1), branching cells (degree >= 3), average degree, and the
// largest connected component over all valid cells. Unreachable counts the
// valid cells outside that largest component.
func Analyze(g *maze.Grid) Metrics {
	m := Metrics{
		Width:      g.W,
		Height:     g.H,
		TotalCells: g.W * g.H,
	}
	var degSum int
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			if v&maze.FlagInvalid != 0 {
				m.InvalidCells++
				continue
			}
			d := maze.Degree(v)
			m.DegreeCounts[d]++
			degSum += d
			if d <= 1 {
				m.DeadEnds++
			}
			if d >= 3 {
				m.BranchingCells++
			}
		}
	}
	m.UsableCells = m.TotalCells - m.InvalidCells
	if m.UsableCells > 0 {
		m.AvgDegree = float64(degSum) / float64(m.UsableCells)
	}

	seen := make([]bool, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if seen[g.Index(x, y)] || g.At(x, y)&maze.FlagInvalid != 0 {
				continue
			}
			n := componentFrom(g, x, y, seen)
			if n > m.LargestComponent {
				m.LargestComponent = n
			}
		}
	}
	m.UnreachableCells = m.UsableCells - m.LargestComponent
	return m
}

// componentFrom floods one component and marks it in seen.
func componentFrom(g *maze.Grid, x, y int, seen []bool) int {
	local, n := solver.Reachable(g, x, y)
	for i, v := range local {
		if v {
			seen[i] = true
		}
	}
	return n
}

// Score combines the metric ratios into the weighted ranking value.
func (m Metrics) Score(w Weights) float64 {
	usable := float64(m.UsableCells)
	if usable == 0 {
		usable = 1
	}
	s := 0.0
	s += w.Connected * float64(m.LargestComponent) / usable
	s += w.Unreachable * float64(m.UnreachableCells) / usable
	s += w.DeadEnd * float64(m.DeadEnds) / usable
	s += w.Branching * float64(m.BranchingCells) / usable
	s += w.AvgDegree * m.AvgDegree / 4
	return s
}
