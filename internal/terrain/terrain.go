// Package terrain hosts the persistent heightfields and their weight
// layers. It owns the full sample grids; the engine only ever reads and
// writes bounded windows through the heightfield.Store contract.
package terrain

import (
	"errors"
	"fmt"

	"github.com/Faultbox/terraforge/pkg/heightfield"
)

// Host lookup errors.
var (
	ErrTerrainNotFound = errors.New("terrain not found")
	ErrLayerNotFound   = errors.New("layer not found")
	ErrEmptyExtent     = errors.New("terrain has no resolvable extent")
)

// Terrain is one named heightfield with its placement metadata and weight
// layers. Not safe for concurrent use: callers invoke the engine from the
// thread that owns the terrain.
type Terrain struct {
	ID string

	grid   *heightfield.Grid
	origin [2]float64
	cell   [2]float64
	layers map[string][]byte
}

// New creates a terrain with a baseline-filled width x height grid.
// cellX/cellY are world units per grid cell.
func New(id string, width, height int, originX, originY, cellX, cellY float64) *Terrain {
	if cellX <= 0 {
		cellX = 1
	}
	if cellY <= 0 {
		cellY = 1
	}
	return &Terrain{
		ID:     id,
		grid:   heightfield.NewGrid(width, height),
		origin: [2]float64{originX, originY},
		cell:   [2]float64{cellX, cellY},
		layers: make(map[string][]byte),
	}
}

// Extent implements heightfield.Store.
func (t *Terrain) Extent() (int, int) { return t.grid.Extent() }

// ReadWindow implements heightfield.Store.
func (t *Terrain) ReadWindow(win heightfield.Window) (*heightfield.Buffer, error) {
	return t.grid.ReadWindow(win)
}

// WriteWindow implements heightfield.Store.
func (t *Terrain) WriteWindow(win heightfield.Window, buf *heightfield.Buffer) error {
	return t.grid.WriteWindow(win, buf)
}

// Transform returns the world/grid mapping for this terrain.
func (t *Terrain) Transform() heightfield.Transform {
	return heightfield.Transform{
		OriginX: t.origin[0],
		OriginY: t.origin[1],
		CellX:   t.cell[0],
		CellY:   t.cell[1],
	}
}

// HeightAt returns the sample at a grid coordinate, for tooling and tests.
func (t *Terrain) HeightAt(x, y int) (uint16, bool) {
	w, h := t.grid.Extent()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, false
	}
	return t.grid.At(x, y), true
}

// AddLayer declares a weight layer, zero-filled. Declaring the same name
// again resets it.
func (t *Terrain) AddLayer(name string) {
	w, h := t.grid.Extent()
	t.layers[name] = make([]byte, w*h)
}

// Layer returns a layer's full weight map.
func (t *Terrain) Layer(name string) ([]byte, bool) {
	l, ok := t.layers[name]
	return l, ok
}

// LayerNames lists the declared layers.
func (t *Terrain) LayerNames() []string {
	names := make([]string, 0, len(t.layers))
	for name := range t.layers {
		names = append(names, name)
	}
	return names
}

// WriteLayerWindow overwrites the alpha values of one layer over a window.
// The layer must already exist; the engine never creates layers.
func (t *Terrain) WriteLayerWindow(name string, win heightfield.Window, alpha []byte) error {
	layer, ok := t.layers[name]
	if !ok {
		return fmt.Errorf("%w: %q on terrain %q", ErrLayerNotFound, name, t.ID)
	}
	if len(alpha) != win.Area() {
		return fmt.Errorf("alpha block %d does not cover window area %d", len(alpha), win.Area())
	}
	w, h := t.grid.Extent()
	if win.MinX < 0 || win.MinY < 0 || win.MaxX >= w || win.MaxY >= h {
		return fmt.Errorf("window [%d,%d]-[%d,%d] outside %dx%d layer",
			win.MinX, win.MinY, win.MaxX, win.MaxY, w, h)
	}
	for y := 0; y < win.Dy(); y++ {
		dst := (win.MinY+y)*w + win.MinX
		copy(layer[dst:dst+win.Dx()], alpha[y*win.Dx():(y+1)*win.Dx()])
	}
	return nil
}

// Registry tracks live terrains by id.
type Registry struct {
	terrains map[string]*Terrain
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{terrains: make(map[string]*Terrain)}
}

// Add registers a terrain, replacing any existing terrain with the same id.
func (r *Registry) Add(t *Terrain) {
	r.terrains[t.ID] = t
}

// Get resolves a terrain id.
func (r *Registry) Get(id string) (*Terrain, error) {
	t, ok := r.terrains[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTerrainNotFound, id)
	}
	return t, nil
}

// Remove drops a terrain from the registry.
func (r *Registry) Remove(id string) {
	delete(r.terrains, id)
}
