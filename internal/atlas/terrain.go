package atlas

var stonePalette = Palette{
	{110, 110, 114, 255},
	{102, 102, 106, 255},
	{122, 122, 127, 255},
	{96, 96, 100, 255},
}

// stonePixel is the base-material formula for a single stone pixel.
// The ore painter starts from the exact same formula so deposits blend
// into surrounding stone instead of sitting on a mismatched background.
func stonePixel(x, y, seed int) RGBA {
	c := stonePalette.pick(Hash2(x+seed*17, y+seed*23, seed))
	// Sparse darker flecks break up palette repetition.
	if (x*5+y*3+seed)%19 == 0 {
		c = RGBA{88, 88, 92, 255}
	}
	return c
}

func Stone(seed int) Painter {
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				t.Set(x, y, stonePixel(x, y, seed))
			}
		}
	}
}

func Dirt(seed int) Painter {
	pal := Palette{
		{123, 87, 58, 255},
		{111, 78, 52, 255},
		{139, 98, 65, 255},
		{98, 69, 46, 255},
	}
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				c := pal.pick(Hash2(x+seed*13, y+seed*19, seed))
				if (x+y+seed)%11 == 0 {
					c = c.Add(8, 6, 4)
				}
				t.Set(x, y, c)
			}
		}
	}
}

func Sand() Painter {
	pal := Palette{
		{224, 204, 148, 255},
		{214, 192, 136, 255},
		{236, 216, 164, 255},
		{200, 180, 124, 255},
	}
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				c := pal.pick(Hash2(x*9+37, y*11+73, 5))
				// Faint diagonal ripple shadows.
				if (x-y)%13 == 0 {
					c = c.Add(-10, -8, -6)
				}
				t.Set(x, y, c)
			}
		}
	}
}

func GrassTop() Painter {
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				n := Hash2(x*3+17, y*5+31, 2)
				c := RGBA{68, 140, 58, 255}
				if n > 0.75 {
					c = RGBA{92, 168, 74, 255}
				} else if n < 0.2 {
					c = RGBA{56, 118, 50, 255}
				}
				if (x+y)%9 == 0 {
					c = c.Add(0, 10, 0)
				}
				t.Set(x, y, c)
			}
		}
	}
}

// GrassSide paints a grass fringe over dirt: the top four rows and the
// rest each run their own hash channel against a two-colour threshold.
func GrassSide() Painter {
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				var c RGBA
				if y < 4 {
					if Hash2(x*7+11, y*5+19, 3) > 0.35 {
						c = RGBA{72, 146, 62, 255}
					} else {
						c = RGBA{60, 128, 54, 255}
					}
				} else {
					if Hash2(x*5+13, y*7+29, 4) > 0.4 {
						c = RGBA{122, 86, 58, 255}
					} else {
						c = RGBA{108, 76, 51, 255}
					}
				}
				t.Set(x, y, c)
			}
		}
	}
}
