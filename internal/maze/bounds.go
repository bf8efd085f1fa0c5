package maze

// markOutOfSpan flags every cell whose physical centre falls outside the
// printable span. Explicit-size layouts keep the whole grid usable.
func markOutOfSpan(g *Grid, lay Layout, geo Geometry) {
	if lay.explicit {
		return
	}
	lo := geo.Base + geo.Step/2 + geo.Step/8
	hi := geo.Height - geo.Step/2 - geo.Margin - geo.Step/8
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			z := geo.Step*float64(y) + lay.Y0 + lay.Dy*float64(x)
			if z < lo || z > hi {
				g.Or(x, y, FlagInvalid)
			}
		}
	}
}

// stampPark carves the fixed park notch near the bottom row and, when the
// sector is large enough, the decorative "A" glyph beside it. It returns the
// start cell for the random carve. These edits happen before any randomized
// carving and are never overwritten.
func stampPark(g *Grid, p Params) (int, int) {
	sector := g.W / g.Nubs
	if p.ParkVert {
		x, y := 0, 0
		for n := 0; n < p.Helix+2; n++ {
			g.Or(0, n, FlagUp|FlagDown)
			x, y = 0, n+1
			g.Or(x, y, FlagDown)
		}
		if !p.Inside && p.Glyph && sector > 2 && g.H > p.Helix+4 {
			g.Or(x, y, FlagDown|FlagUp|FlagRight)
			g.Or(x, y+1, FlagDown|FlagRight)
			g.Or(x+1, y, FlagDown|FlagUp|FlagLeft)
			g.Or(x+1, y+1, FlagDown|FlagLeft)
			g.Or(x+1, y-1, FlagUp)
			x++
			y--
		}
		return x, y
	}
	g.Or(0, p.Helix+1, FlagRight)
	x, y := 1, p.Helix+1
	g.Or(x, y, FlagLeft)
	if !p.Inside && p.Glyph && sector > 3 && g.H > p.Helix+3 {
		g.Or(x, y, FlagLeft|FlagRight|FlagUp)
		g.Or(x+1, y, FlagLeft|FlagUp)
		g.Or(x+1, y+1, FlagLeft|FlagDown)
		g.Or(x, y+1, FlagLeft|FlagRight|FlagDown)
		g.Or(x-1, y+1, FlagRight)
		x--
		y++
	}
	return x, y
}

// carveEntry opens the exit channel: in every sector, the column aligned with
// the exit is carved down through the invalid cap so the maze connects to the
// open top of the part.
func carveEntry(g *Grid, maxx int) {
	sector := g.W / g.Nubs
	for x := maxx % sector; x < g.W; x += sector {
		y := g.H - 1
		for y > 0 && g.At(x, y)&FlagInvalid != 0 {
			g.Or(x, y, FlagUp|FlagDown)
			y--
		}
		g.Or(x, y, FlagUp)
	}
}

// rowSpan returns the first and last rows containing any valid cell.
func rowSpan(g *Grid) (minY, maxY int) {
	minY, maxY = 0, g.H-1
	for y := 0; y < g.H; y++ {
		if rowHasValid(g, y) {
			minY = y
			break
		}
	}
	for y := g.H - 1; y >= 0; y-- {
		if rowHasValid(g, y) {
			maxY = y
			break
		}
	}
	return minY, maxY
}

func rowHasValid(g *Grid, y int) bool {
	for x := 0; x < g.W; x++ {
		if g.At(x, y)&FlagInvalid == 0 {
			return true
		}
	}
	return false
}
