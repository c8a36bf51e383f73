package atlas

// Hash2 maps integer pixel coordinates and a seed to a value in [0,1].
// Three large odd constants decorrelate the axes, a xor/shift plus a
// multiply avalanche the bits, and the low 16 bits are normalized by
// 65535. Pure integer arithmetic, so adjacent coordinates come out
// visually unrelated and the result is identical on every platform.
func Hash2(x, y, seed int) float64 {
	v := uint32(x*73856093) ^ uint32(y*19349663) ^ uint32(seed*83492791)
	v ^= v >> 13
	v *= 1274126177
	return float64(v&0xFFFF) / 65535.0
}
