package render

import (
	"image"
	"image/color"

	"puzzlebox/internal/maze"
	"puzzlebox/internal/solver"
)

// Pixel classes composing the raster; indices into the palette.
const (
	classPassage uint8 = iota
	classWall
	classInvalid
	classSolution
	classExit
)

// DefaultPalette colors passages dark, walls light, invalid cells red-brown,
// the solution path green, and the exit channel gold.
var DefaultPalette = []color.RGBA{
	{0x20, 0x20, 0x28, 0xff},
	{0xd8, 0xd8, 0xd0, 0xff},
	{0x60, 0x30, 0x28, 0xff},
	{0x30, 0xa0, 0x48, 0xff},
	{0xd0, 0xa8, 0x20, 0xff},
}

// RasterOptions controls the raster renderer.
type RasterOptions struct {
	UseViz   bool
	CellPx   int // pixels per cell including the 1px wall line, min 3
	Solution *solver.Solution
	Palette  []color.RGBA
}

// Raster draws the valid span of the maze into an RGBA image, one cellPx
// square per cell with walls on the left and bottom edges.
func Raster(res *maze.Result, opts RasterOptions) *image.RGBA {
	g := res.Grid
	if opts.UseViz {
		g = res.Viz
	}
	cellPx := opts.CellPx
	if cellPx < 3 {
		cellPx = 8
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	rows := res.MaxY - res.MinY + 1
	w := g.W*cellPx + 1
	h := rows*cellPx + 1
	classes := make([]uint8, w*h)
	for i := range classes {
		classes[i] = classWall
	}

	onPath := make([]bool, g.W*g.H)
	if opts.Solution != nil {
		for _, c := range opts.Solution.Path {
			onPath[g.Index(c.X, c.Y)] = true
		}
	}
	exit := exitColumns(res)

	for y := res.MinY; y <= res.MaxY; y++ {
		// Image rows grow downward; maze rows grow upward.
		py := (res.MaxY - y) * cellPx
		for x := 0; x < g.W; x++ {
			px := x * cellPx
			v := g.At(x, y)
			fill := classPassage
			switch {
			case v&maze.FlagInvalid != 0:
				fill = classInvalid
			case onPath[g.Index(x, y)]:
				fill = classSolution
			}
			for iy := 1; iy < cellPx; iy++ {
				for ix := 1; ix < cellPx; ix++ {
					classes[(py+iy)*w+px+ix] = fill
				}
			}
			// Open the walls where passages exist.
			if v&maze.FlagLeft != 0 {
				for iy := 1; iy < cellPx; iy++ {
					classes[(py+iy)*w+px] = fill
				}
			}
			if v&maze.FlagDown != 0 {
				for ix := 1; ix < cellPx; ix++ {
					classes[(py+cellPx)*w+px+ix] = fill
				}
			}
			if y == res.MaxY && exit[x] && v&maze.FlagUp != 0 {
				for ix := 1; ix < cellPx; ix++ {
					classes[py*w+px+ix] = classExit
				}
			}
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillPaletteRGBA(img.Pix, classes, palette)
	return img
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
