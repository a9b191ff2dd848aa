package render

// DitherMatrix holds 2×2 ordered-dither thresholds, row-major. A pixel is lit
// when its shade level is at least the threshold for its position.
type DitherMatrix [4]uint8

var (
	// Primary is the dither pattern used for every coarse block and for odd
	// columns at full resolution.
	Primary = DitherMatrix{1, 3, 4, 2}
	// Secondary is Primary with its rows swapped, used for even columns at
	// full resolution.
	Secondary = DitherMatrix{4, 2, 1, 3}
)

// Threshold returns the threshold for block position (dx, dy).
func (m DitherMatrix) Threshold(dx, dy int) uint8 {
	return m[(dy&1)*2+(dx&1)]
}

// Lit reports whether a shade level is lit at block position (dx, dy).
func (m DitherMatrix) Lit(level uint8, dx, dy int) bool {
	return level >= m.Threshold(dx, dy)
}

// fullThreshold is the full-resolution threshold for pixel (x, y).
func fullThreshold(x, y int) uint8 {
	m := Primary
	if x&1 == 0 {
		m = Secondary
	}
	return m[y&1]
}
