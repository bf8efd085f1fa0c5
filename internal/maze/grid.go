package maze

// Grid stores the flag bytes of a cylindrical maze in row-major order.
// Horizontal motion wraps modulo W; each wrap shifts y by the helix pitch.
// With nubs > 1 the pattern repeats every W/nubs columns around the cylinder.
type Grid struct {
	W, H  int
	Helix int
	Nubs  int
	cells []uint8
}

// NewGrid allocates an all-walled grid. W must be a positive multiple of nubs.
func NewGrid(w, h, helix, nubs int) *Grid {
	if nubs < 1 {
		nubs = 1
	}
	return &Grid{W: w, H: h, Helix: helix, Nubs: nubs, cells: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the raw flags at (x, y). Coordinates must be in range.
func (g *Grid) At(x, y int) uint8 { return g.cells[y*g.W+x] }

// Or sets flag bits on the cell at (x, y).
func (g *Grid) Or(x, y int, flags uint8) { g.cells[y*g.W+x] |= flags }

// Normalize wraps x into [0, W), shifting y by the helix pitch on each wrap.
// The returned y may be out of range; callers must bounds-check it.
func (g *Grid) Normalize(x, y int) (int, int) {
	for x < 0 {
		x += g.W
		y -= g.Helix
	}
	for x >= g.W {
		x -= g.W
		y += g.Helix
	}
	return x, y
}

// Lookup returns the OR of the flags of every physical cell (x, y) maps to,
// folding in all nub repeats. Out-of-range rows contribute the invalid flag.
// When the helix pitch equals the nub count, each repeat advance drops y by
// one extra row to keep the seam aligned.
func (g *Grid) Lookup(x, y int) uint8 {
	x, y = g.Normalize(x, y)
	var v uint8
	for n := g.Nubs; ; {
		if y < 0 || y >= g.H {
			v |= FlagInvalid
		} else {
			v |= g.cells[y*g.W+x]
		}
		n--
		if n == 0 {
			break
		}
		x += g.W / g.Nubs
		for x >= g.W {
			x -= g.W
			y += g.Helix
		}
		if g.Helix == g.Nubs {
			y--
		}
	}
	return v
}

// Carve opens the passage from (x, y) in direction d, setting the reciprocal
// bit on the neighbor, and returns the neighbor's normalized coordinates.
// The neighbor row must be in range; Lookup guards that before carving.
func (g *Grid) Carve(x, y int, d Dir) (int, int) {
	g.cells[y*g.W+x] |= d.Bit()
	dx, dy := d.Step()
	nx, ny := g.Normalize(x+dx, y+dy)
	g.cells[ny*g.W+nx] |= d.Opposite().Bit()
	return nx, ny
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, Helix: g.Helix, Nubs: g.Nubs, cells: make([]uint8, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}
