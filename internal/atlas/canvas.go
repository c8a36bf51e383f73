package atlas

// Canvas is the full atlas pixel buffer, Width x Height RGBA8, row-major.
// A fresh canvas is fully transparent. Painters never touch it directly;
// they write through the TileHandle for their own tile rectangle.
type Canvas struct {
	Pix []uint8 // RGBA8
}

func NewCanvas() *Canvas {
	return &Canvas{Pix: make([]uint8, Width*Height*4)}
}

// Tile returns the write handle for one tile rectangle.
// column = index mod Cols, row = index div Cols.
func (c *Canvas) Tile(index int) TileHandle {
	return TileHandle{
		canvas: c,
		ox:     (index % Cols) * Tile,
		oy:     (index / Cols) * Tile,
	}
}

// At reads back the pixel at absolute atlas coordinates.
func (c *Canvas) At(x, y int) RGBA {
	o := (y*Width + x) * 4
	return RGBA{R: c.Pix[o+0], G: c.Pix[o+1], B: c.Pix[o+2], A: c.Pix[o+3]}
}

// TileHandle addresses exactly one Tile x Tile rectangle of a Canvas.
// Writes outside [0,Tile) are dropped, so a painter cannot spill into a
// neighbouring tile no matter what coordinates it computes.
type TileHandle struct {
	canvas *Canvas
	ox, oy int
}

func (t TileHandle) Set(x, y int, col RGBA) {
	if x < 0 || x >= Tile || y < 0 || y >= Tile {
		return
	}
	o := ((t.oy+y)*Width + t.ox + x) * 4
	p := t.canvas.Pix
	p[o+0] = col.R
	p[o+1] = col.G
	p[o+2] = col.B
	p[o+3] = col.A
}

// At reads back a pixel inside the handle's rectangle. Out-of-range
// reads return transparent.
func (t TileHandle) At(x, y int) RGBA {
	if x < 0 || x >= Tile || y < 0 || y >= Tile {
		return RGBA{}
	}
	return t.canvas.At(t.ox+x, t.oy+y)
}
