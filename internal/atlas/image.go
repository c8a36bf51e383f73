package atlas

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Image copies the canvas into a stdlib RGBA image. The pixel layouts
// match byte for byte, so this is a straight copy.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	copy(img.Pix, c.Pix)
	return img
}

// WritePNG encodes the finished canvas to path, creating the parent
// directory if needed. The canvas itself is never modified; an encoder
// failure propagates and nothing retries.
func (c *Canvas) WritePNG(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, c.Image()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// UVRect returns the texture coordinates (u0,v0,u1,v1) for a tile. A
// hundredth-of-a-pixel inset keeps linear samplers from bleeding the
// neighbouring tile across the edge without visibly cropping borders.
func UVRect(index int) (u0, v0, u1, v1 float32) {
	tx := index % Cols
	ty := index / Cols
	const (
		insetU = float32(0.01) / Width
		insetV = float32(0.01) / Height
	)
	u0 = float32(tx*Tile)/Width + insetU
	u1 = float32((tx+1)*Tile)/Width - insetU
	v0 = float32(ty*Tile)/Height + insetV
	v1 = float32((ty+1)*Tile)/Height - insetV
	return
}

// TileAverageColors computes the alpha-weighted mean RGB of every tile,
// normalized to [0,1]. The renderer uses these for map pixels and
// distant fog colouring. Fully transparent tiles fall back to mid grey.
func (c *Canvas) TileAverageColors() [][3]float32 {
	out := make([][3]float32, Cols*Rows)
	for t := range out {
		x0 := (t % Cols) * Tile
		y0 := (t / Cols) * Tile
		var sumR, sumG, sumB, sumA uint64
		for y := 0; y < Tile; y++ {
			for x := 0; x < Tile; x++ {
				px := c.At(x0+x, y0+y)
				a := uint64(px.A)
				sumR += uint64(px.R) * a
				sumG += uint64(px.G) * a
				sumB += uint64(px.B) * a
				sumA += a
			}
		}
		if sumA > 0 {
			out[t] = [3]float32{
				float32(sumR) / float32(sumA) / 255.0,
				float32(sumG) / float32(sumA) / 255.0,
				float32(sumB) / float32(sumA) / 255.0,
			}
		} else {
			out[t] = [3]float32{0.5, 0.5, 0.5}
		}
	}
	return out
}
