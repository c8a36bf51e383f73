package atlas

// Painter fills exactly one tile rectangle. The tile index is passed in
// because several patterns key their modular formulas on it to keep
// otherwise identical materials from repeating.
//
// Painters are total and deterministic: the same handle, index and
// configuration always produce byte-identical pixels.
type Painter func(t TileHandle, index int)

// Solid paints one colour over the whole tile. With the zero colour it
// doubles as the transparent air tile.
func Solid(c RGBA) Painter {
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				t.Set(x, y, c)
			}
		}
	}
}

// GradientConfig drives a vertical top-to-bottom blend.
type GradientConfig struct {
	Top    RGBA
	Bottom RGBA
}

func Gradient(cfg GradientConfig) Painter {
	return func(t TileHandle, _ int) {
		for y := 0; y < Tile; y++ {
			c := mix(cfg.Top, cfg.Bottom, float64(y)/(Tile-1))
			for x := 0; x < Tile; x++ {
				t.Set(x, y, c)
			}
		}
	}
}

// NoiseConfig drives the generic three-colour noise painter used for
// gravel, clay, snow, sandstone and the cactus top. A covers the rare
// bucket, B the mid bucket; which one is lighter varies per material.
type NoiseConfig struct {
	Base RGBA
	A    RGBA
	B    RGBA
}

// Noise picks between three colours with a cheap modular bit formula
// over (x, y, tile index). Not hash-quality on purpose: the banding it
// produces reads as grit at tile scale.
func Noise(cfg NoiseConfig) Painter {
	return func(t TileHandle, index int) {
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				h := (x*37 + y*71 + index*97) & 15
				c := cfg.Base
				if h > 12 {
					c = cfg.A
				} else if h > 9 {
					c = cfg.B
				}
				t.Set(x, y, c)
			}
		}
	}
}
