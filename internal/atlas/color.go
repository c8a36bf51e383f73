package atlas

// RGBA is an 8-bit per channel colour.
type RGBA struct {
	R, G, B, A uint8
}

// Add returns the colour shifted by the given channel deltas, clamped to
// [0,255]. Alpha is kept as-is.
func (c RGBA) Add(dr, dg, db int) RGBA {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: c.A}
}

// clampChan truncates a float channel value into [0,255].
func clampChan(v float64) uint8 {
	i := int(v)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return uint8(i)
}

// mix linearly interpolates a and b by t, truncating each channel the
// way the integer pixel math everywhere else does. The result is opaque.
func mix(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: clampChan(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clampChan(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clampChan(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

// Palette is a small ordered list of colours shared by the speckled
// materials; entries are picked by quantized hash bucket.
type Palette []RGBA

// pick selects an entry from a hash value in [0,1]. The 0.01 margin keeps
// a value of exactly 1.0 from truncating past the last entry.
func (p Palette) pick(v float64) RGBA {
	return p[int(v*(float64(len(p))-0.01))]
}
