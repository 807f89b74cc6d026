// Package raster decodes external heightmap rasters into 16-bit grayscale
// sample grids and resamples them onto heightfield resolutions.
package raster

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	// Registered for image.Decode auto-detection. PNG and JPEG come from
	// the standard library; BMP and TIFF from golang.org/x/image.
	_ "image/jpeg"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Raster format errors.
var (
	ErrEmptyRaster   = errors.New("raster has zero width or height")
	ErrTruncatedData = errors.New("truncated raster data")
)

// Raster is a decoded grayscale heightmap with 16-bit samples, row-major.
// Its resolution is independent of any heightfield it is imported onto.
type Raster struct {
	Width   int
	Height  int
	Samples []uint16
}

// At returns the sample at (x, y) without bounds checking.
func (r *Raster) At(x, y int) uint16 { return r.Samples[y*r.Width+x] }

// Range returns the minimum and maximum sample values.
func (r *Raster) Range() (min, max uint16) {
	if len(r.Samples) == 0 {
		return 0, 0
	}
	min, max = r.Samples[0], r.Samples[0]
	for _, s := range r.Samples {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max
}

// Decode reads any registered image format (PNG, JPEG, BMP, TIFF) and
// converts it to 16-bit grayscale. An undecodable or empty image is a hard
// failure.
func Decode(data []byte) (*Raster, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding raster: %w", err)
	}
	r, err := fromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s raster: %w", format, err)
	}
	return r, nil
}

// DecodeFile reads and decodes a raster from disk.
func DecodeFile(path string) (*Raster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading raster file: %w", err)
	}
	return Decode(data)
}

// DecodeR16 reads a headerless little-endian 16-bit raw buffer. The caller
// supplies the dimensions since the format carries none.
func DecodeR16(data []byte, width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyRaster
	}
	if len(data) < width*height*2 {
		return nil, fmt.Errorf("%w: need %d bytes for %dx%d, have %d",
			ErrTruncatedData, width*height*2, width, height, len(data))
	}
	r := &Raster{
		Width:   width,
		Height:  height,
		Samples: make([]uint16, width*height),
	}
	for i := range r.Samples {
		r.Samples[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return r, nil
}

// fromImage converts a decoded image to 16-bit grayscale samples.
func fromImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyRaster
	}
	r := &Raster{
		Width:   w,
		Height:  h,
		Samples: make([]uint16, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.Gray16Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
			r.Samples[y*w+x] = g.Y
		}
	}
	return r, nil
}

// ToImage converts the raster back to a 16-bit grayscale image.
func (r *Raster) ToImage() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			img.SetGray16(x, y, color.Gray16{Y: r.At(x, y)})
		}
	}
	return img
}

// EncodePNG writes the raster as a 16-bit grayscale PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.ToImage())
}

// EncodeBMP writes the raster as an 8-bit grayscale BMP. BMP has no 16-bit
// grayscale mode, so the high byte wins.
func (r *Raster) EncodeBMP(w io.Writer) error {
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(r.At(x, y) >> 8)})
		}
	}
	return bmp.Encode(w, img)
}

// EncodeR16 writes the raster as a headerless little-endian raw buffer.
func (r *Raster) EncodeR16(w io.Writer) error {
	buf := make([]byte, len(r.Samples)*2)
	for i, s := range r.Samples {
		binary.LittleEndian.PutUint16(buf[i*2:], s)
	}
	_, err := w.Write(buf)
	return err
}
