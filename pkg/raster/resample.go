package raster

import (
	"github.com/Faultbox/terraforge/pkg/heightfield"
)

// heightSpan is the sample distance a full-range source value maps to at
// scaleZ 1.0: half of the usable range on either side of the baseline.
const heightSpan = 16384

// Resample maps the raster onto a dstWidth x dstHeight heightfield buffer.
// Each destination sample takes the nearest source sample (no sub-pixel
// interpolation; bilinear would silently change import results), converts
// it to a signed normalized height in [-1, 1], and scales it by scaleZ
// around the baseline. The result saturates at the valid sample range.
func Resample(src *Raster, dstWidth, dstHeight int, scaleZ float64) (*heightfield.Buffer, error) {
	if src == nil || src.Width <= 0 || src.Height <= 0 {
		return nil, ErrEmptyRaster
	}
	if dstWidth <= 0 || dstHeight <= 0 {
		return nil, ErrEmptyRaster
	}

	buf := &heightfield.Buffer{
		Samples: make([]uint16, dstWidth*dstHeight),
		Width:   dstWidth,
		Height:  dstHeight,
	}
	for y := 0; y < dstHeight; y++ {
		sy := sourceIndex(y, dstHeight, src.Height)
		for x := 0; x < dstWidth; x++ {
			sx := sourceIndex(x, dstWidth, src.Width)
			n := float64(src.At(sx, sy))/65535*2 - 1
			buf.Set(x, y, heightfield.ClampSample(float64(heightfield.SampleBaseline)+n*scaleZ*heightSpan))
		}
	}
	return buf, nil
}

// sourceIndex maps destination coordinate i onto the source axis, flooring
// to the nearest valid source sample.
func sourceIndex(i, dstLen, srcLen int) int {
	if dstLen <= 1 {
		return 0
	}
	s := int(float64(i) / float64(dstLen-1) * float64(srcLen-1))
	if s < 0 {
		return 0
	}
	if s > srcLen-1 {
		return srcLen - 1
	}
	return s
}

// FromBuffer snapshots a heightfield buffer as a raster, preserving the
// quantized sample values verbatim. Used to export sculpt results.
func FromBuffer(buf *heightfield.Buffer) *Raster {
	samples := make([]uint16, len(buf.Samples))
	copy(samples, buf.Samples)
	return &Raster{
		Width:   buf.Width,
		Height:  buf.Height,
		Samples: samples,
	}
}
