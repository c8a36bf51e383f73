package atlas

import "math"

// Crack paints one of the translucent block-damage overlays. The tile
// starts fully transparent; 3+stage synthetic cracks are walked as line
// segments from hash-derived origins and angles, stamping a colour
// whose alpha grows with the stage. Samples falling outside the tile
// are skipped, not clamped. From stage 4 on every stamped sample also
// stamps one darker neighbour, alternating left/right by crack index
// and step parity, which visually thickens the crack.
func Crack(stage int) Painter {
	return func(t TileHandle, _ int) {
		clear := RGBA{}
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				t.Set(x, y, clear)
			}
		}

		alpha := uint8(38 + stage*14)
		lines := 3 + stage
		for i := 0; i < lines; i++ {
			a := Hash2(i+stage*3, 17, 101) * math.Pi * 2.0
			ox := Hash2(i+stage*5, 31, 111) * (Tile - 1)
			oy := Hash2(i+stage*7, 47, 127) * (Tile - 1)
			vx := math.Cos(a)
			vy := math.Sin(a)
			length := 4 + int(Hash2(i+stage, 53, 131)*10)

			for s := -length; s <= length; s++ {
				x := int(math.Round(ox + vx*float64(s)))
				y := int(math.Round(oy + vy*float64(s)))
				if x < 0 || x >= Tile || y < 0 || y >= Tile {
					continue
				}
				t.Set(x, y, RGBA{236, 236, 236, alpha})
				if stage >= 4 {
					x2 := x + 1
					if (i+s)&1 != 0 {
						x2 = x - 1
					}
					if x2 >= 0 && x2 < Tile {
						t.Set(x2, y, RGBA{210, 210, 210, alpha - 10})
					}
				}
			}
		}
	}
}
