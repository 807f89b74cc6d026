package heightfield

import "fmt"

// Store is the windowed access contract the host terrain object implements.
// The engine never touches the full sample grid: every operation reads one
// window, mutates a local Buffer, and writes the window back.
type Store interface {
	// Extent returns the heightfield resolution in samples.
	Extent() (width, height int)

	// ReadWindow copies the samples covered by win into a new Buffer.
	ReadWindow(win Window) (*Buffer, error)

	// WriteWindow copies buf back over the samples covered by win.
	WriteWindow(win Window, buf *Buffer) error
}

// Grid is an in-memory Store. The engine's host keeps its persistent
// heightfields in one of these; tests use it directly.
type Grid struct {
	width   int
	height  int
	samples []uint16
}

// NewGrid allocates a width x height grid filled with the baseline sample.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:   width,
		height:  height,
		samples: make([]uint16, width*height),
	}
	for i := range g.samples {
		g.samples[i] = SampleBaseline
	}
	return g
}

// Extent implements Store.
func (g *Grid) Extent() (int, int) { return g.width, g.height }

// At returns the sample at (x, y) without bounds checking.
func (g *Grid) At(x, y int) uint16 { return g.samples[y*g.width+x] }

// Set stores a sample at (x, y) without bounds checking.
func (g *Grid) Set(x, y int, v uint16) { g.samples[y*g.width+x] = v }

// ReadWindow implements Store.
func (g *Grid) ReadWindow(win Window) (*Buffer, error) {
	if err := g.checkWindow(win); err != nil {
		return nil, err
	}
	buf := &Buffer{
		Samples: make([]uint16, win.Area()),
		Width:   win.Dx(),
		Height:  win.Dy(),
	}
	for y := 0; y < buf.Height; y++ {
		srcRow := (win.MinY+y)*g.width + win.MinX
		copy(buf.Samples[y*buf.Width:(y+1)*buf.Width], g.samples[srcRow:srcRow+buf.Width])
	}
	return buf, nil
}

// WriteWindow implements Store.
func (g *Grid) WriteWindow(win Window, buf *Buffer) error {
	if err := g.checkWindow(win); err != nil {
		return err
	}
	if buf.Width != win.Dx() || buf.Height != win.Dy() {
		return fmt.Errorf("buffer %dx%d does not match window %dx%d",
			buf.Width, buf.Height, win.Dx(), win.Dy())
	}
	for y := 0; y < buf.Height; y++ {
		dstRow := (win.MinY+y)*g.width + win.MinX
		copy(g.samples[dstRow:dstRow+buf.Width], buf.Samples[y*buf.Width:(y+1)*buf.Width])
	}
	return nil
}

func (g *Grid) checkWindow(win Window) error {
	if win.Empty() {
		return fmt.Errorf("empty window [%d,%d]-[%d,%d]", win.MinX, win.MinY, win.MaxX, win.MaxY)
	}
	if win.MinX < 0 || win.MinY < 0 || win.MaxX >= g.width || win.MaxY >= g.height {
		return fmt.Errorf("window [%d,%d]-[%d,%d] outside %dx%d grid",
			win.MinX, win.MinY, win.MaxX, win.MaxY, g.width, g.height)
	}
	return nil
}
