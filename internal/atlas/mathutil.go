package atlas

// floorDiv performs mathematical floor division for integers. The bark
// stripe formula divides a possibly negative offset coordinate and needs
// -1/2 == -1, not Go's truncated 0.
func floorDiv(a, b int) int {
	q := a / b
	r := a % b
	if (r != 0) && ((r < 0) != (b < 0)) {
		q--
	}
	return q
}
