// Package sculpt implements the brush falloff model and the deformation
// kernels that mutate windowed heightfield buffers.
package sculpt

import "strings"

// Falloff selects how brush influence decays with normalized distance
// from the brush center.
type Falloff int

// Falloff kinds.
const (
	FalloffHard Falloff = iota
	FalloffLinear
	FalloffSmooth
)

// String returns the lowercase falloff name.
func (f Falloff) String() string {
	switch f {
	case FalloffHard:
		return "hard"
	case FalloffLinear:
		return "linear"
	case FalloffSmooth:
		return "smooth"
	default:
		return "unknown"
	}
}

// ParseFalloff maps a falloff name to its kind. Unrecognized names fall
// back to the smooth falloff; ok reports whether the name matched.
func ParseFalloff(s string) (f Falloff, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hard":
		return FalloffHard, true
	case "linear":
		return FalloffLinear, true
	case "smooth", "":
		return FalloffSmooth, true
	default:
		return FalloffSmooth, false
	}
}

// Weight maps a normalized brush distance d = distance/radius to an
// influence weight in [0, 1]. Total over all inputs: d >= 1 is always 0
// and d <= 0 is always 1.
func (f Falloff) Weight(d float64) float64 {
	if d >= 1 {
		return 0
	}
	if d <= 0 {
		return 1
	}
	switch f {
	case FalloffHard:
		if d < 0.95 {
			return 1
		}
		return 0
	case FalloffLinear:
		return 1 - d
	default:
		t := 1 - d
		return t * t * (3 - 2*t)
	}
}

// smoothstep01 is the cubic Hermite 3t^2-2t^3 with t clamped to [0, 1].
func smoothstep01(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
