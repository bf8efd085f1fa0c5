package maze

// Result is one fully generated maze. It is populated once by Generate and
// read-only afterward.
type Result struct {
	Grid *Grid // carved structure, source of truth for solving/scoring
	Viz  *Grid // post-replication copy used for rendering and export

	MinY int // first row containing any valid cell
	MaxY int // last row containing any valid cell
	MaxX int // exit column (carving endpoint)

	// EntranceX is the fixed entrance column at row MinY, or -1 when the
	// bottom row has no valid cell in the first sector.
	EntranceX int

	// EntryAngle is the exit position in degrees around the cylinder.
	EntryAngle float64

	Seed int64
}

// ResultFromGrid rebuilds a Result around an existing grid, recomputing the
// row span and entrance. Used when a maze comes back from disk rather than
// from Generate; the visualization grid is shared with the source.
func ResultFromGrid(g *Grid, exitX int) *Result {
	minY, maxY := rowSpan(g)
	entranceX := -1
	for x := 0; x < g.W/g.Nubs; x++ {
		if g.At(x, minY)&FlagInvalid == 0 {
			entranceX = x
			break
		}
	}
	return &Result{
		Grid:       g,
		Viz:        g,
		MinY:       minY,
		MaxY:       maxY,
		MaxX:       exitX,
		EntranceX:  entranceX,
		EntryAngle: 360 * float64(exitX) / float64(g.W),
	}
}

// Sector returns the width of one nub sector.
func (r *Result) Sector() int { return r.Grid.W / r.Grid.Nubs }

// ExitColumns returns the exit column of every nub copy.
func (r *Result) ExitColumns() []int {
	cols := make([]int, r.Grid.Nubs)
	for n := range cols {
		cols[n] = (r.MaxX + n*r.Sector()) % r.Grid.W
	}
	return cols
}
