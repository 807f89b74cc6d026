package sculpt

import "math"

// PaintWeights computes the per-sample alpha block a paint request writes
// over a window. (cx, cy) and r are in buffer-local grid units; strength is
// clamped to [0,1]. The painter always uses the smooth falloff shape, and
// every sample at or beyond the radius is zero. The result is row-major,
// width x height.
func PaintWeights(width, height int, cx, cy, r, strength float64) []byte {
	alpha := make([]byte, width*height)
	strength = clamp01(strength)
	if r <= 0 || strength == 0 {
		return alpha
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := normDist(x, y, cx, cy, r)
			if d >= 1 {
				continue
			}
			w := FalloffSmooth.Weight(d)
			alpha[y*width+x] = byte(math.Floor(strength * 255 * w))
		}
	}
	return alpha
}
