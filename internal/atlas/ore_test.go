package atlas

import "testing"

var coalConfig = OreConfig{
	A:    RGBA{58, 58, 58, 255},
	B:    RGBA{36, 36, 36, 255},
	C:    RGBA{82, 82, 82, 255},
	Seed: TileCoalOre,
}

func TestOrePixels(t *testing.T) {
	c := paintTile(Ore(coalConfig), TileCoalOre)
	cases := []struct {
		x, y int
		want RGBA
	}{
		{0, 0, RGBA{110, 110, 114, 255}},
		{8, 8, RGBA{110, 110, 114, 255}},
		{12, 3, RGBA{102, 102, 106, 255}},
		{4, 13, RGBA{96, 96, 100, 255}},
	}
	for _, tc := range cases {
		if got := tilePixel(c, TileCoalOre, tc.x, tc.y); got != tc.want {
			t.Errorf("coal ore (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

// Wherever no deposit or vein fires, the ore tile must carry the exact
// stone base pixel, so ore blocks blend into surrounding stone.
func TestOreReusesStoneBase(t *testing.T) {
	c := paintTile(Ore(coalConfig), TileCoalOre)
	ores := map[RGBA]bool{
		coalConfig.A: true,
		coalConfig.B: true,
		coalConfig.C: true,
	}
	base := 0
	for y := 0; y < Tile; y++ {
		for x := 0; x < Tile; x++ {
			px := tilePixel(c, TileCoalOre, x, y)
			if ores[px] {
				continue
			}
			if px != stonePixel(x, y, stoneSeed) {
				t.Fatalf("ore base (%d,%d) = %v, differs from stone formula", x, y, px)
			}
			base++
		}
	}
	if base == 0 {
		t.Fatal("no base-stone pixels at all; deposits cover the whole tile")
	}
}

// Different seeds must lay out different deposits, or every ore would
// share one pattern with recoloured pixels.
func TestOreSeedsDiffer(t *testing.T) {
	cfg2 := coalConfig
	cfg2.Seed = TileIronOre
	a := paintTile(Ore(coalConfig), TileCoalOre)
	b := paintTile(Ore(cfg2), TileCoalOre)
	same := 0
	for y := 0; y < Tile; y++ {
		for x := 0; x < Tile; x++ {
			if tilePixel(a, TileCoalOre, x, y) == tilePixel(b, TileCoalOre, x, y) {
				same++
			}
		}
	}
	if same == Tile*Tile {
		t.Fatal("seeds 10 and 12 produced identical ore tiles")
	}
}
