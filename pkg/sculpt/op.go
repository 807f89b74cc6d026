package sculpt

import (
	"math"
	"strings"
)

// Kind identifies a deformation kernel. The set is closed: request parsing
// resolves type names once, and everything downstream dispatches on Kind.
type Kind int

// Kernel kinds. KindUnknown marks an unrecognized type name; the engine
// skips such operations without failing the request.
const (
	KindUnknown Kind = iota
	KindRaise
	KindLower
	KindFlatten
	KindSmooth
	KindNoise
	KindCrater
	KindCanyon
)

// String returns the lowercase kernel name.
func (k Kind) String() string {
	switch k {
	case KindRaise:
		return "raise"
	case KindLower:
		return "lower"
	case KindFlatten:
		return "flatten"
	case KindSmooth:
		return "smooth"
	case KindNoise:
		return "noise"
	case KindCrater:
		return "crater"
	case KindCanyon:
		return "canyon"
	default:
		return "unknown"
	}
}

// ParseKind resolves an operation type name. Unrecognized names map to
// KindUnknown.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raise":
		return KindRaise
	case "lower":
		return KindLower
	case "flatten":
		return KindFlatten
	case "smooth":
		return KindSmooth
	case "noise":
		return KindNoise
	case "crater":
		return KindCrater
	case "canyon":
		return KindCanyon
	default:
		return KindUnknown
	}
}

// Op carries the kernel kind and its kind-specific parameters. The brush
// center and radius are resolved to grid space by the caller and passed to
// Apply separately; Width is likewise expected in grid units by the time
// the kernel runs.
type Op struct {
	Kind    Kind
	Falloff Falloff

	Intensity float64 // raise/lower/flatten/smooth/noise strength, [0,1]
	Depth     float64 // crater/canyon excavation depth
	RimHeight float64 // crater rim lift

	Frequency float64 // noise base frequency
	Octaves   int     // noise accumulation rounds, [1,8]
	Amplitude float64 // noise output scale, [0,1]

	DirX, DirY float64 // canyon direction, normalized by Clamped
	Width      float64 // canyon full width
	Roughness  float64 // canyon edge jaggedness, [0,1]
}

// Clamped returns a copy with every parameter forced into its nominal
// range. Out-of-range values are a soft condition: they clamp, they never
// reject the operation.
func (op Op) Clamped() Op {
	op.Intensity = clamp01(op.Intensity)
	op.Amplitude = clamp01(op.Amplitude)
	op.Roughness = clamp01(op.Roughness)
	if op.Depth < 0 {
		op.Depth = 0
	}
	if op.RimHeight < 0 {
		op.RimHeight = 0
	}
	if op.Width < 0 {
		op.Width = 0
	}
	if op.Octaves < 1 {
		op.Octaves = 1
	}
	if op.Octaves > 8 {
		op.Octaves = 8
	}
	if op.Frequency <= 0 {
		op.Frequency = 0.05
	}

	// Canyon direction must be a unit vector; a zero vector defaults to +X.
	l := math.Hypot(op.DirX, op.DirY)
	if l == 0 {
		op.DirX, op.DirY = 1, 0
	} else {
		op.DirX /= l
		op.DirY /= l
	}
	return op
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
