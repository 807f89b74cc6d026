// Package heightfield provides the sample grid types, windowed access and
// world/grid coordinate math used by the sculpting engine.
package heightfield

import "math"

// Sample value range. SampleMax is 65534: the top value of the uint16 range
// is reserved and never written, so every clamp lands below it.
const (
	SampleMin      uint16 = 0
	SampleMax      uint16 = 65534
	SampleBaseline uint16 = 32768 // zero relative elevation
)

// ClampSample converts a computed height to a storable sample,
// rounding to nearest and saturating at the valid range.
func ClampSample(v float64) uint16 {
	if v <= float64(SampleMin) {
		return SampleMin
	}
	if v >= float64(SampleMax) {
		return SampleMax
	}
	return uint16(math.Round(v))
}

// Buffer is a rectangular block of height samples, row-major.
// Kernels operate on Buffers copied out of a Store window.
type Buffer struct {
	Samples []uint16
	Width   int
	Height  int
}

// NewBuffer allocates a Width x Height buffer filled with the baseline value.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		Samples: make([]uint16, width*height),
		Width:   width,
		Height:  height,
	}
	for i := range b.Samples {
		b.Samples[i] = SampleBaseline
	}
	return b
}

// At returns the sample at (x, y). Coordinates are buffer-local.
func (b *Buffer) At(x, y int) uint16 {
	return b.Samples[y*b.Width+x]
}

// Set stores a sample at (x, y).
func (b *Buffer) Set(x, y int, v uint16) {
	b.Samples[y*b.Width+x] = v
}

// Clone returns a deep copy. Smoothing kernels read neighbor values from a
// clone so that one operation never observes its own partial writes.
func (b *Buffer) Clone() *Buffer {
	samples := make([]uint16, len(b.Samples))
	copy(samples, b.Samples)
	return &Buffer{Samples: samples, Width: b.Width, Height: b.Height}
}
