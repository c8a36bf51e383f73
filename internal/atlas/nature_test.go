package atlas

import "testing"

func TestWaterPixelsAndAlpha(t *testing.T) {
	c := paintTile(Water(), TileWater)
	cases := []struct {
		x, y int
		want RGBA
	}{
		{0, 0, RGBA{39, 94, 178, 165}},
		{5, 9, RGBA{34, 86, 164, 165}},
		{15, 15, RGBA{46, 107, 199, 165}},
	}
	for _, tc := range cases {
		if got := tilePixel(c, TileWater, tc.x, tc.y); got != tc.want {
			t.Errorf("water (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
	for y := 0; y < Tile; y++ {
		for x := 0; x < Tile; x++ {
			if a := tilePixel(c, TileWater, x, y).A; a != 165 {
				t.Fatalf("water (%d,%d) alpha = %d, want 165", x, y, a)
			}
		}
	}
}

func TestIcePixelsOpaque(t *testing.T) {
	c := paintTile(Ice(), TileIce)
	if got := tilePixel(c, TileIce, 0, 0); got != (RGBA{146, 196, 230, 255}) {
		t.Fatalf("ice (0,0) = %v", got)
	}
	if got := tilePixel(c, TileIce, 5, 9); got != (RGBA{138, 186, 224, 255}) {
		t.Fatalf("ice (5,9) = %v", got)
	}
	for y := 0; y < Tile; y++ {
		for x := 0; x < Tile; x++ {
			if a := tilePixel(c, TileIce, x, y).A; a != 255 {
				t.Fatalf("ice (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func TestCactusSidePixels(t *testing.T) {
	c := paintTile(CactusSide(), TileCactusSide)
	cases := []struct {
		x, y int
		want RGBA
	}{
		{0, 0, RGBA{78, 176, 90, 255}},  // fleck wins over the edge rib
		{1, 0, RGBA{61, 151, 74, 255}},
		{2, 1, RGBA{52, 132, 64, 255}},
		{15, 3, RGBA{32, 90, 42, 255}},  // right rib
		{4, 3, RGBA{78, 176, 90, 255}},  // fleck grid
	}
	for _, tc := range cases {
		if got := tilePixel(c, TileCactusSide, tc.x, tc.y); got != tc.want {
			t.Errorf("cactus side (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}
