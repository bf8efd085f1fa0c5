package maze

import (
	"fmt"
	"math"
	"strconv"
)

// Params holds the knobs that shape the carved structure.
type Params struct {
	Helix      int  // vertical shift per horizontal wrap (0 = straight seam)
	Nubs       int  // radial copies of the pattern
	Complexity int  // [-10, 10]; positive = long winding corridors
	Test       bool // trivial all-open calibration pattern instead of carving
	ParkVert   bool // park notch carved vertically instead of the L/R pair
	Glyph      bool // decorative "A" near the park when space permits
	SectorExit bool // restrict the exit column to the canonical sector
	Inside     bool // inner part of a telescoping pair
}

// Geometry describes the printable cylinder wall the maze is carved into.
// All lengths are millimetres.
type Geometry struct {
	Radius    float64
	Height    float64
	Base      float64 // base height plus stacking offsets
	Step      float64 // maze cell pitch
	Thickness float64 // wall thickness eaten from the radius
	Margin    float64 // clearance kept below the rim
}

// Config controls one maze generation. When Width and Height are set they
// override the geometric derivation and no cells are marked out of span,
// which is the mode calibration runs use.
type Config struct {
	Width  int
	Height int

	Seed int64

	Geometry Geometry
	Params   Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed: 1,
		Geometry: Geometry{
			Radius:    25,
			Height:    50,
			Base:      1.6,
			Step:      3,
			Thickness: 1.6,
			Margin:    0.4,
		},
		Params: Params{
			Helix:      0,
			Nubs:       1,
			Complexity: 5,
			Glyph:      true,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["helix"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Helix = parsed
		}
	}
	if v, ok := cfg["nubs"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Nubs = parsed
		}
	}
	if v, ok := cfg["complexity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= -10 && parsed <= 10 {
			c.Params.Complexity = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Geometry.Radius = parsed
		}
	}
	if v, ok := cfg["height_mm"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Geometry.Height = parsed
		}
	}
	if v, ok := cfg["step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Geometry.Step = parsed
		}
	}
	return c
}

// Layout is the derived grid geometry used by the boundary marker.
type Layout struct {
	W, H int
	Y0   float64 // physical height of row 0 cell centres at x=0
	Dy   float64 // per-column height drift from the helix
	// true when W/H were given explicitly and no span marking applies
	explicit bool
}

// Layout computes the grid dimensions. A ConfigurationError is returned when
// the derived grid is too small to carve.
func (c Config) Layout() (Layout, error) {
	p := c.Params
	nubs := p.Nubs
	if nubs < 1 {
		nubs = 1
	}
	if p.Helix < 0 {
		return Layout{}, &ConfigurationError{W: c.Width, H: c.Height, Helix: p.Helix}
	}
	if c.Width > 0 && c.Height > 0 {
		w := c.Width / nubs * nubs
		lay := Layout{W: w, H: c.Height, explicit: true}
		if lay.W < 3 || lay.H < p.Helix+3 {
			return Layout{}, &ConfigurationError{W: lay.W, H: lay.H, Helix: p.Helix}
		}
		return lay, nil
	}
	geo := c.Geometry
	r := geo.Radius
	if p.Inside {
		r += geo.Thickness
	} else {
		r -= geo.Thickness
	}
	w := int(r*2*math.Pi/geo.Step) / nubs * nubs
	span := geo.Height - geo.Base - geo.Margin - geo.Step/8
	if p.ParkVert {
		span -= geo.Step / 4
	}
	h := int(span/geo.Step) + 2 + p.Helix
	lay := Layout{
		W:  w,
		H:  h,
		Y0: geo.Base + geo.Step/2 - geo.Step*float64(p.Helix+1) + geo.Step/8,
	}
	if w > 0 && p.Helix != 0 {
		lay.Dy = geo.Step * float64(p.Helix) / float64(w)
	}
	if lay.W < 3 || lay.H < p.Helix+3 {
		return Layout{}, &ConfigurationError{W: lay.W, H: lay.H, Helix: p.Helix}
	}
	return lay, nil
}

// ConfigurationError reports a physically infeasible grid size. The park rows
// occupy the bottom Helix+2 rows, so a usable grid needs at least Helix+3.
type ConfigurationError struct {
	W, H  int
	Helix int
}

func (e *ConfigurationError) Error() string {
	if e.Helix < 0 {
		return fmt.Sprintf("helix %d must be non-negative", e.Helix)
	}
	return fmt.Sprintf("maze grid %dx%d too small (need width >= 3, height >= %d)", e.W, e.H, e.Helix+3)
}
