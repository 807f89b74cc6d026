package sculpt

import (
	"math"

	"github.com/Faultbox/terraforge/pkg/heightfield"
	"github.com/Faultbox/terraforge/pkg/noise"
)

// deltaScale converts a unit-range brush parameter to quantized height
// units: a full-intensity stroke moves a sample by this many steps.
const deltaScale = 8000

// Canyon noise tuning. The edge perturbation is low frequency so walls
// wander slowly; the wall-band perturbation is higher frequency grit.
const (
	canyonEdgeFrequency = 0.05
	canyonWallFrequency = 0.25
	canyonWallScale     = 2000
)

// terraNoise backs the noise and canyon kernels. Fixed seed: identical
// operations always carve identical terrain.
var terraNoise = noise.New(noise.DefaultSeed)

// Reseed replaces the generator behind the noise and canyon kernels.
// Results stay reproducible for a given seed. Not safe to call while
// operations are running.
func Reseed(seed int64) {
	terraNoise = noise.New(seed)
}

// kernelFunc mutates buf in place. prior is a read-only snapshot of the
// buffer taken before the operation started; kernels that read neighbor or
// center values use it instead of the partially mutated buffer.
type kernelFunc func(buf, prior *heightfield.Buffer, cx, cy, r float64, op Op)

var kernels = map[Kind]kernelFunc{
	KindRaise:   applyRaise,
	KindLower:   applyLower,
	KindFlatten: applyFlatten,
	KindSmooth:  applySmooth,
	KindNoise:   applyNoise,
	KindCrater:  applyCrater,
	KindCanyon:  applyCanyon,
}

// Apply runs the kernel for op.Kind over buf. The brush center (cx, cy)
// and radius r are in buffer-local grid units. It reports whether the
// kind was recognized; a recognized operation over a degenerate window or
// radius is a no-op, not an error.
func Apply(op Op, buf *heightfield.Buffer, cx, cy, r float64) bool {
	k, ok := kernels[op.Kind]
	if !ok {
		return false
	}
	if r <= 0 || buf == nil || buf.Width <= 0 || buf.Height <= 0 {
		return true
	}
	op = op.Clamped()
	k(buf, buf.Clone(), cx, cy, r, op)
	return true
}

// normDist returns the normalized brush distance of sample (x, y).
func normDist(x, y int, cx, cy, r float64) float64 {
	return math.Hypot(float64(x)-cx, float64(y)-cy) / r
}

func applyRaise(buf, _ *heightfield.Buffer, cx, cy, r float64, op Op) {
	shiftHeights(buf, cx, cy, r, op, op.Intensity*deltaScale)
}

func applyLower(buf, _ *heightfield.Buffer, cx, cy, r float64, op Op) {
	shiftHeights(buf, cx, cy, r, op, -op.Intensity*deltaScale)
}

func shiftHeights(buf *heightfield.Buffer, cx, cy, r float64, op Op, delta float64) {
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			w := op.Falloff.Weight(normDist(x, y, cx, cy, r))
			if w == 0 {
				continue
			}
			buf.Set(x, y, heightfield.ClampSample(float64(buf.At(x, y))+delta*w))
		}
	}
}

func applyFlatten(buf, prior *heightfield.Buffer, cx, cy, r float64, op Op) {
	// The flatten target is the pre-operation height at the clamped center.
	tx := clampIndex(int(math.Round(cx)), buf.Width)
	ty := clampIndex(int(math.Round(cy)), buf.Height)
	target := float64(prior.At(tx, ty))

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			w := op.Falloff.Weight(normDist(x, y, cx, cy, r))
			if w == 0 {
				continue
			}
			old := float64(buf.At(x, y))
			buf.Set(x, y, heightfield.ClampSample(lerp(old, target, w*op.Intensity)))
		}
	}
}

func applySmooth(buf, prior *heightfield.Buffer, cx, cy, r float64, op Op) {
	// Border samples stay untouched: they have no full 3x3 neighborhood.
	for y := 1; y < buf.Height-1; y++ {
		for x := 1; x < buf.Width-1; x++ {
			w := op.Falloff.Weight(normDist(x, y, cx, cy, r))
			if w == 0 {
				continue
			}
			var sum float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sum += float64(prior.At(x+dx, y+dy))
				}
			}
			avg := sum / 9
			old := float64(buf.At(x, y))
			buf.Set(x, y, heightfield.ClampSample(lerp(old, avg, w*op.Intensity)))
		}
	}
}

func applyNoise(buf, _ *heightfield.Buffer, cx, cy, r float64, op Op) {
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			w := op.Falloff.Weight(normDist(x, y, cx, cy, r))
			if w == 0 {
				continue
			}
			n := terraNoise.Fractal(float64(x), float64(y), op.Frequency, op.Octaves)
			delta := n * op.Amplitude * op.Intensity * deltaScale * w
			buf.Set(x, y, heightfield.ClampSample(float64(buf.At(x, y))+delta))
		}
	}
}

// Crater zone boundaries in normalized distance: bowl, rim ramp, rim decay.
const (
	craterBowlEdge  = 0.7
	craterRimEdge   = 1.0
	craterOuterEdge = 1.3
)

func applyCrater(buf, _ *heightfield.Buffer, cx, cy, r float64, op Op) {
	floorDepth := -op.Depth * deltaScale * craterBowlEdge
	rim := op.RimHeight * deltaScale

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			d := normDist(x, y, cx, cy, r)
			if d >= craterOuterEdge {
				continue
			}
			var delta float64
			switch {
			case d < craterBowlEdge:
				// Bowl: full depth at the center, easing 30% toward the edge.
				delta = -op.Depth * deltaScale * (1 - 0.3*smoothstep01(d/craterBowlEdge))
			case d < craterRimEdge:
				// Ramp from the bowl floor up to the full rim at d=1.
				t := (d - craterBowlEdge) / (craterRimEdge - craterBowlEdge)
				delta = floorDepth*(1-t) + rim*math.Sin(t*math.Pi/2)
			default:
				// Rim decays back to grade.
				t := (d - craterRimEdge) / (craterOuterEdge - craterRimEdge)
				delta = rim * (1 - smoothstep01(t))
			}
			buf.Set(x, y, heightfield.ClampSample(float64(buf.At(x, y))+delta))
		}
	}
}

func applyCanyon(buf, _ *heightfield.Buffer, cx, cy, r float64, op Op) {
	perpX, perpY := -op.DirY, op.DirX
	halfWidth := op.Width / 2
	if halfWidth <= 0 {
		return
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			offX := float64(x) - cx
			offY := float64(y) - cy
			along := math.Abs(offX*op.DirX + offY*op.DirY)
			perp := math.Abs(offX*perpX + offY*perpY)

			lengthFalloff := 1 - smoothstep01(along/r)
			if lengthFalloff == 0 {
				continue
			}

			// Jag the wall with slow noise so the edge is not a ruler line.
			fx, fy := float64(x), float64(y)
			effHalf := halfWidth
			if op.Roughness > 0 {
				jag := terraNoise.Sample(fx*canyonEdgeFrequency, fy*canyonEdgeFrequency)
				effHalf = halfWidth * (1 + 0.3*op.Roughness*jag)
				if effHalf <= 0 {
					continue
				}
			}

			ratio := perp / effHalf
			var widthFalloff float64
			switch {
			case ratio < 0.6:
				widthFalloff = 1
			case ratio < 1.0:
				widthFalloff = 1 - smoothstep01((ratio-0.6)/0.4)
			default:
				continue
			}

			delta := -op.Depth * deltaScale * widthFalloff * lengthFalloff
			if widthFalloff < 1 {
				// Grit on the wall transition band only.
				grit := terraNoise.Sample(fx*canyonWallFrequency, fy*canyonWallFrequency)
				delta += grit * op.Roughness * canyonWallScale * (1 - widthFalloff)
			}
			buf.Set(x, y, heightfield.ClampSample(float64(buf.At(x, y))+delta))
		}
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
