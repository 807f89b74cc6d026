package heightfield

import "math"

// Window is an inclusive rectangle of grid coordinates, always clamped to
// the heightfield extent before any read or write.
type Window struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Dx returns the window width in samples.
func (w Window) Dx() int { return w.MaxX - w.MinX + 1 }

// Dy returns the window height in samples.
func (w Window) Dy() int { return w.MaxY - w.MinY + 1 }

// Area returns the number of samples covered by the window.
func (w Window) Area() int { return w.Dx() * w.Dy() }

// Empty reports whether the window covers no samples. Callers treat an
// empty window as a no-op, never as an error.
func (w Window) Empty() bool { return w.MaxX < w.MinX || w.MaxY < w.MinY }

// Clamp restricts the window to a width x height extent.
func (w Window) Clamp(width, height int) Window {
	if w.MinX < 0 {
		w.MinX = 0
	}
	if w.MinY < 0 {
		w.MinY = 0
	}
	if w.MaxX > width-1 {
		w.MaxX = width - 1
	}
	if w.MaxY > height-1 {
		w.MaxY = height - 1
	}
	return w
}

// Transform maps between world space and grid space. Origin is the world
// position of grid cell (0,0); CellX/CellY are world units per grid cell.
// The host supplies a Transform per call; nothing here is cached.
type Transform struct {
	OriginX, OriginY float64
	CellX, CellY     float64
}

// GridCenter converts a world position to the nearest grid cell.
func (t Transform) GridCenter(worldX, worldY float64) (int, int) {
	cx := int(math.Round((worldX - t.OriginX) / t.CellX))
	cy := int(math.Round((worldY - t.OriginY) / t.CellY))
	return cx, cy
}

// GridRadius converts a world radius to grid units, rounding up so the
// window never undershoots the brush support. Cells are assumed square for
// the radius; anisotropic grids use CellX.
func (t Transform) GridRadius(radius float64) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Ceil(radius / t.CellX))
}

// BrushWindow derives the clamped window touched by a brush of radius r
// centered at grid cell (cx, cy), on a width x height heightfield.
// For a non-empty heightfield the result is at least 1x1: a center outside
// the extent degenerates to the nearest valid clamp.
func BrushWindow(cx, cy, r, width, height int) Window {
	w := Window{
		MinX: cx - r,
		MinY: cy - r,
		MaxX: cx + r,
		MaxY: cy + r,
	}
	w = w.Clamp(width, height)

	// A fully out-of-range brush clamps to the nearest border sample.
	if w.MinX > width-1 {
		w.MinX = width - 1
	}
	if w.MinY > height-1 {
		w.MinY = height - 1
	}
	if w.MaxX < 0 {
		w.MaxX = 0
	}
	if w.MaxY < 0 {
		w.MaxY = 0
	}
	if w.MaxX < w.MinX {
		w.MaxX = w.MinX
	}
	if w.MaxY < w.MinY {
		w.MaxY = w.MinY
	}
	return w
}
