package sculpt

import (
	"math"
	"testing"
)

func TestFalloffWeight_Bounds(t *testing.T) {
	kinds := []Falloff{FalloffHard, FalloffLinear, FalloffSmooth}
	for _, f := range kinds {
		for d := -0.5; d <= 2.0; d += 0.01 {
			w := f.Weight(d)
			if w < 0 || w > 1 {
				t.Fatalf("%v.Weight(%v) = %v outside [0,1]", f, d, w)
			}
		}
		if f.Weight(0) != 1 {
			t.Errorf("%v.Weight(0) = %v, expected 1", f, f.Weight(0))
		}
		if f.Weight(-3) != 1 {
			t.Errorf("%v.Weight(-3) = %v, expected 1", f, f.Weight(-3))
		}
		if f.Weight(1) != 0 {
			t.Errorf("%v.Weight(1) = %v, expected 0", f, f.Weight(1))
		}
		if f.Weight(5) != 0 {
			t.Errorf("%v.Weight(5) = %v, expected 0", f, f.Weight(5))
		}
	}
}

func TestFalloffWeight_Shapes(t *testing.T) {
	tests := []struct {
		f    Falloff
		d    float64
		want float64
	}{
		{FalloffHard, 0.5, 1},
		{FalloffHard, 0.94, 1},
		{FalloffHard, 0.96, 0},
		{FalloffLinear, 0.25, 0.75},
		{FalloffLinear, 0.5, 0.5},
		{FalloffSmooth, 0.5, 0.5},
		{FalloffSmooth, 0.25, 0.84375},
	}
	for _, tc := range tests {
		if got := tc.f.Weight(tc.d); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%v.Weight(%v) = %v, expected %v", tc.f, tc.d, got, tc.want)
		}
	}
}

func TestParseFalloff(t *testing.T) {
	tests := []struct {
		in     string
		want   Falloff
		wantOK bool
	}{
		{"hard", FalloffHard, true},
		{"Linear", FalloffLinear, true},
		{"smooth", FalloffSmooth, true},
		{"", FalloffSmooth, true},
		{"gaussian", FalloffSmooth, false},
	}
	for _, tc := range tests {
		got, ok := ParseFalloff(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseFalloff(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"raise", KindRaise},
		{"Lower", KindLower},
		{"flatten", KindFlatten},
		{"smooth", KindSmooth},
		{"noise", KindNoise},
		{"crater", KindCrater},
		{"canyon", KindCanyon},
		{"terraform", KindUnknown},
		{"", KindUnknown},
	}
	for _, tc := range tests {
		if got := ParseKind(tc.in); got != tc.want {
			t.Errorf("ParseKind(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestOpClamped(t *testing.T) {
	op := Op{
		Kind:      KindNoise,
		Intensity: 2.5,
		Amplitude: -1,
		Roughness: 7,
		Depth:     -0.5,
		RimHeight: -0.5,
		Width:     -3,
		Octaves:   20,
		Frequency: -1,
	}
	c := op.Clamped()

	if c.Intensity != 1 || c.Amplitude != 0 || c.Roughness != 1 {
		t.Errorf("unit-range params not clamped: %+v", c)
	}
	if c.Depth != 0 || c.RimHeight != 0 || c.Width != 0 {
		t.Errorf("negative magnitudes not clamped: %+v", c)
	}
	if c.Octaves != 8 {
		t.Errorf("octaves = %d, expected clamp to 8", c.Octaves)
	}
	if c.Frequency <= 0 {
		t.Errorf("frequency not defaulted: %v", c.Frequency)
	}

	if c = (Op{Octaves: -3}).Clamped(); c.Octaves != 1 {
		t.Errorf("octaves = %d, expected clamp to 1", c.Octaves)
	}
}

func TestOpClamped_DirectionNormalized(t *testing.T) {
	c := (Op{DirX: 3, DirY: 4}).Clamped()
	if math.Abs(math.Hypot(c.DirX, c.DirY)-1) > 1e-12 {
		t.Errorf("direction (%v,%v) not unit length", c.DirX, c.DirY)
	}

	c = (Op{}).Clamped()
	if c.DirX != 1 || c.DirY != 0 {
		t.Errorf("zero direction did not default to +X: (%v,%v)", c.DirX, c.DirY)
	}
}
