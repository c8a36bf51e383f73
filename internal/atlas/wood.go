package atlas

import "math"

// BarkConfig colours a vertical-grain bark tile.
type BarkConfig struct {
	Light RGBA
	Dark  RGBA
	Knot  RGBA
}

// Bark paints two-colour vertical stripes whose boundary drifts with a
// sine wave keyed on the row and tile index, so trunks don't repeat as
// flat columns. Periodic per-column shading adds depth; a sparse
// modular hash drops knot flecks.
func Bark(cfg BarkConfig) Painter {
	return func(t TileHandle, index int) {
		for y := 0; y < Tile; y++ {
			wave := int(2.0 * math.Sin(float64(y+index*3)*0.35))
			for x := 0; x < Tile; x++ {
				c := cfg.Light
				if floorDiv(x+wave, 2)&1 != 0 {
					c = cfg.Dark
				}
				if x%4 == 0 {
					c = c.Add(-8, -8, -8)
				}
				if x%4 == 2 {
					c = c.Add(6, 6, 6)
				}
				if (x*5+y*7+index)%47 == 0 {
					c = cfg.Knot
				}
				t.Set(x, y, c)
			}
		}
	}
}

// BirchBark is its own painter: checkerboard base/shade alternation,
// a periodic vertical striation, and two independent scar overlays at
// different moduli.
func BirchBark() Painter {
	base := RGBA{228, 223, 203, 255}
	shade := RGBA{208, 202, 182, 255}
	scar := RGBA{74, 74, 72, 255}
	return func(t TileHandle, index int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				c := base
				if (x+y)&1 != 0 {
					c = shade
				}
				if x%5 == 0 {
					c = c.Add(-6, -6, -6)
				}
				if (y*3+x*7+index)%19 == 0 {
					c = scar
				}
				if (y*5+x*11+index)%43 == 0 {
					c = RGBA{56, 56, 54, 255}
				}
				t.Set(x, y, c)
			}
		}
	}
}

// LogTopConfig colours the sawn end of a log.
type LogTopConfig struct {
	Outer RGBA
	Inner RGBA
	Ring  RGBA
}

// LogTop selects inner vs outer colour by distance from the tile centre
// and overlays concentric annual rings wherever distance mod 2 lands
// near 1.
func LogTop(cfg LogTopConfig) Painter {
	const (
		centre     = (Tile - 1) * 0.5
		rimRadius  = 5.8
		ringBand   = 0.18
		ringPeriod = 2.0
	)
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				dx := float64(x) - centre
				dy := float64(y) - centre
				d := math.Sqrt(dx*dx + dy*dy)
				c := cfg.Inner
				if d > rimRadius {
					c = cfg.Outer
				}
				if math.Abs(math.Mod(d, ringPeriod)-1.0) < ringBand {
					c = cfg.Ring
				}
				t.Set(x, y, c)
			}
		}
	}
}

// LeavesConfig colours a foliage tile. C0 is the bulk colour, C1 and C2
// the highlight and shadow buckets.
type LeavesConfig struct {
	C0, C1, C2 RGBA
	Seed       int
}

// Leaves buckets a per-pixel modular hash into three colours and punches
// fully transparent holes wherever the hash is at or below the cutout
// threshold, giving the ragged silhouette. Everything else is opaque.
func Leaves(cfg LeavesConfig) Painter {
	const cutout = 35
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				h := (x*17 + y*29 + cfg.Seed*19) & 255
				c := cfg.C0
				if h > 210 {
					c = cfg.C1
				} else if h > 180 {
					c = cfg.C2
				}
				c.A = 255
				if h <= cutout {
					c.A = 0
				}
				t.Set(x, y, c)
			}
		}
	}
}
