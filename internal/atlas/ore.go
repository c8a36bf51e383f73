package atlas

import "math"

// OreConfig names the three deposit colours for an ore tile. A is the
// dominant deposit colour, B and C its companion shades; the grain
// thresholds and vein bands pick between them. Seed varies the grain
// and vein directions per ore so tiles don't share layouts.
type OreConfig struct {
	A, B, C RGBA
	Seed    int
}

// Ore paints deposits over the shared stone base. Application order is
// load-bearing: grain first, then vein band 1, then band 0, then the
// intersection rule; later writes override earlier ones.
func Ore(cfg OreConfig) Painter {
	return func(t TileHandle, _ int) {
		seed := cfg.Seed

		// Two randomized micro-vein directions per tile.
		a0 := Hash2(seed, 11, 91) * math.Pi
		a1 := Hash2(seed, 17, 133) * math.Pi
		vx0, vy0 := math.Cos(a0), math.Sin(a0)
		vx1, vy1 := math.Cos(a1), math.Sin(a1)

		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				h := (x*29 + y*53 + seed*41) & 255

				// Exact stone base so ore blocks blend with stone.
				c := stonePixel(x, y, stoneSeed)

				// Sparse granular deposits.
				if h > 245 {
					c = cfg.A
				} else if h > 237 {
					c = cfg.B
				} else if h > 230 {
					c = cfg.C
				}

				// Perpendicular distance to each vein line through the
				// tile centre, gated by a secondary hash so the bands
				// stay broken rather than ruler-straight.
				fx := float64(x) - Tile*0.5
				fy := float64(y) - Tile*0.5
				d0 := math.Abs(fx*(-vy0) + fy*vx0)
				d1 := math.Abs(fx*(-vy1) + fy*vx1)
				n0 := Hash2(x+seed*3, y+seed*7, 17)
				n1 := Hash2(x+seed*5, y+seed*11, 23)
				if d0 < 0.95 && n0 > 0.52 {
					c = cfg.B
				}
				if d1 < 0.70 && n1 > 0.70 {
					c = cfg.A
				}
				if d0 < 0.45 && d1 < 0.45 && n0+n1 > 1.35 {
					c = cfg.A
				}

				t.Set(x, y, c)
			}
		}
	}
}
