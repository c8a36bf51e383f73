package atlas

// Water combines a linear coordinate ramp with hash jitter into a short
// repeating wave index, then blends base towards highlight by it. The
// fixed partial alpha is what makes submerged blocks show through.
func Water() Painter {
	base := RGBA{34, 86, 164, 255}
	high := RGBA{54, 120, 220, 255}
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				wave := float64((x*3+y*2+int(6*Hash2(x, y, 77)))%9) / 8.0
				c := mix(base, high, wave)
				c.A = 165
				t.Set(x, y, c)
			}
		}
	}
}

// Ice is the same wave construction as Water on a paler palette, with a
// longer period and full alpha.
func Ice() Painter {
	base := RGBA{138, 186, 224, 255}
	high := RGBA{166, 220, 244, 255}
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				wave := float64((x*5+y*3+int(5*Hash2(x+13, y+19, 91)))%11) / 10.0
				t.Set(x, y, mix(base, high, wave))
			}
		}
	}
}

// CactusSide rotates three greens by (x+y) mod 3, forces the first and
// last columns to a darker rib colour, and drops highlight flecks on a
// 4x3 grid. Fleck placement runs after the edge override on purpose:
// the corner flecks land on the ribs too.
func CactusSide() Painter {
	greens := [3]RGBA{
		{52, 132, 64, 255},
		{61, 151, 74, 255},
		{42, 112, 52, 255},
	}
	edge := RGBA{32, 90, 42, 255}
	fleck := RGBA{78, 176, 90, 255}
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				c := greens[(x+y)%3]
				if x == 0 || x == Tile-1 {
					c = edge
				}
				if x%4 == 0 && y%3 == 0 {
					c = fleck
				}
				t.Set(x, y, c)
			}
		}
	}
}

// CactusTop reuses the generic noise painter with the cactus palette.
func CactusTop() Painter {
	return Noise(NoiseConfig{
		Base: RGBA{83, 169, 95, 255},
		A:    RGBA{104, 190, 115, 255},
		B:    RGBA{63, 142, 74, 255},
	})
}
