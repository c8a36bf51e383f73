package atlas

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestImageCopiesPixels(t *testing.T) {
	c := Generate()
	img := c.Image()
	if !bytes.Equal(img.Pix, c.Pix) {
		t.Fatal("Image pixel data differs from canvas")
	}
	img.Pix[0] = 0xFF
	if c.Pix[0] == 0xFF {
		t.Fatal("mutating the image leaked into the canvas")
	}
}

func TestWritePNG(t *testing.T) {
	c := Generate()
	path := filepath.Join(t.TempDir(), "out", "atlas.png")
	if err := c.WritePNG(path); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		t.Fatalf("decoded size %dx%d, want %dx%d", b.Dx(), b.Dy(), Width, Height)
	}

	// Stone sits at column 4, row 0; its corner is opaque so the
	// round trip through premultiplied color is exact.
	want := tilePixel(c, TileStone, 0, 0)
	r, g, bl, a := img.At(TileStone*Tile, 0).RGBA()
	got := RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}
	if got != want {
		t.Fatalf("decoded stone corner = %v, want %v", got, want)
	}
}

func TestUVRect(t *testing.T) {
	const eps = 1e-6
	u0, v0, u1, v1 := UVRect(9)
	for name, got := range map[string]float32{
		"u0": u0 - 0.125078125,
		"v0": v0 - 0.125078125,
		"u1": u1 - 0.249921875,
		"v1": v1 - 0.249921875,
	} {
		if math.Abs(float64(got)) > eps {
			t.Errorf("tile 9 %s off by %g", name, got)
		}
	}

	for idx := 0; idx < Cols*Rows; idx++ {
		u0, v0, u1, v1 := UVRect(idx)
		if !(u0 < u1 && v0 < v1) {
			t.Fatalf("tile %d rect degenerate: (%g,%g)-(%g,%g)", idx, u0, v0, u1, v1)
		}
		if u0 < 0 || v0 < 0 || u1 > 1 || v1 > 1 {
			t.Fatalf("tile %d rect escapes [0,1]: (%g,%g)-(%g,%g)", idx, u0, v0, u1, v1)
		}
	}
}

func TestTileAverageColors(t *testing.T) {
	c := Generate()
	avgs := c.TileAverageColors()
	if len(avgs) != Cols*Rows {
		t.Fatalf("got %d averages, want %d", len(avgs), Cols*Rows)
	}

	// Fully transparent tiles fall back to mid grey.
	if avgs[TileAir] != [3]float32{0.5, 0.5, 0.5} {
		t.Errorf("air average = %v, want mid grey", avgs[TileAir])
	}

	// Stone is opaque, so the weighted mean is the plain mean.
	want := [3]float32{0.4143995, 0.4143995, 0.43079045}
	for i := range want {
		if diff := math.Abs(float64(avgs[TileStone][i] - want[i])); diff > 1e-4 {
			t.Errorf("stone average channel %d = %g, want %g", i, avgs[TileStone][i], want[i])
		}
	}
}
