package engine

import (
	"errors"
	"testing"

	"github.com/Faultbox/terraforge/internal/terrain"
)

// newTestEngine builds an engine with one 5x5 terrain at unit cell size,
// so world coordinates equal grid coordinates.
func newTestEngine() (*Engine, *terrain.Terrain) {
	reg := terrain.NewRegistry()
	t := terrain.New("test", 5, 5, 0, 0, 1, 1)
	reg.Add(t)
	return New(reg, nil), t
}

func heightAt(t *testing.T, tr *terrain.Terrain, x, y int) uint16 {
	t.Helper()
	h, ok := tr.HeightAt(x, y)
	if !ok {
		t.Fatalf("height lookup (%d,%d) out of extent", x, y)
	}
	return h
}

func TestSculpt_RaiseScenario(t *testing.T) {
	e, tr := newTestEngine()

	res, err := e.Sculpt(SculptRequest{
		TerrainID: "test",
		Operations: []Operation{
			{Type: "raise", Center: [2]float64{2, 2}, Radius: 2, Intensity: 1, Falloff: "linear"},
		},
	})
	if err != nil {
		t.Fatalf("Sculpt failed: %v", err)
	}

	if res.OperationsCompleted != 1 {
		t.Errorf("operations_completed = %d, expected 1", res.OperationsCompleted)
	}
	// Center plus 4 edge neighbors plus 4 diagonals change; the axis
	// samples at d=1 and beyond do not.
	if res.VerticesModified != 9 {
		t.Errorf("vertices_modified = %d, expected 9", res.VerticesModified)
	}
	if got := heightAt(t, tr, 2, 2); got != 40768 {
		t.Errorf("center = %d, expected 40768", got)
	}
	if got := heightAt(t, tr, 0, 0); got != 32768 {
		t.Errorf("corner = %d, expected unchanged 32768", got)
	}
}

func TestSculpt_UnknownTypeSkipped(t *testing.T) {
	e, tr := newTestEngine()

	res, err := e.Sculpt(SculptRequest{
		TerrainID: "test",
		Operations: []Operation{
			{Type: "raise", Center: [2]float64{2, 2}, Radius: 2, Intensity: 1, Falloff: "linear"},
			{Type: "terraform", Center: [2]float64{2, 2}, Radius: 2, Intensity: 1},
			{Type: "lower", Center: [2]float64{2, 2}, Radius: 2, Intensity: 1, Falloff: "linear"},
		},
	})
	if err != nil {
		t.Fatalf("Sculpt failed: %v", err)
	}
	if res.OperationsCompleted != 2 {
		t.Errorf("operations_completed = %d, expected 2 (unknown type skipped)", res.OperationsCompleted)
	}
	// Raise then lower with identical parameters cancels out.
	if got := heightAt(t, tr, 2, 2); got != 32768 {
		t.Errorf("center = %d, expected 32768 after raise+lower", got)
	}
}

func TestSculpt_OperationsSeeEarlierResults(t *testing.T) {
	e, tr := newTestEngine()

	_, err := e.Sculpt(SculptRequest{
		TerrainID: "test",
		Operations: []Operation{
			{Type: "raise", Center: [2]float64{2, 2}, Radius: 2, Intensity: 1, Falloff: "linear"},
			{Type: "flatten", Center: [2]float64{2, 2}, Radius: 10, Intensity: 1, Falloff: "hard"},
		},
	})
	if err != nil {
		t.Fatalf("Sculpt failed: %v", err)
	}
	// The flatten target is the center height after the raise, so the
	// whole field lands on the raised value.
	if got := heightAt(t, tr, 0, 0); got != 40768 {
		t.Errorf("corner = %d, expected flattened to raised center 40768", got)
	}
}

func TestSculpt_TerrainNotFound(t *testing.T) {
	e, _ := newTestEngine()
	_, err := e.Sculpt(SculptRequest{TerrainID: "nope"})
	if !errors.Is(err, terrain.ErrTerrainNotFound) {
		t.Errorf("expected ErrTerrainNotFound, got %v", err)
	}
}

func TestSculpt_OffFieldBrushIsNoOp(t *testing.T) {
	e, tr := newTestEngine()

	res, err := e.Sculpt(SculptRequest{
		TerrainID: "test",
		Operations: []Operation{
			{Type: "raise", Center: [2]float64{100, 100}, Radius: 2, Intensity: 1, Falloff: "linear"},
		},
	})
	if err != nil {
		t.Fatalf("Sculpt failed: %v", err)
	}
	// The window degenerates to a clamped border sample outside the
	// brush support: an empty result, not an error.
	if res.OperationsCompleted != 1 {
		t.Errorf("operations_completed = %d, expected 1", res.OperationsCompleted)
	}
	if res.VerticesModified != 0 {
		t.Errorf("vertices_modified = %d, expected 0", res.VerticesModified)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := heightAt(t, tr, x, y); got != 32768 {
				t.Fatalf("(%d,%d) = %d, expected untouched 32768", x, y, got)
			}
		}
	}
}

func TestSculpt_WorldToGridUsesTransform(t *testing.T) {
	reg := terrain.NewRegistry()
	// Cells are 100 world units, origin at -200: world (0,0) is grid (2,2).
	tr := terrain.New("scaled", 5, 5, -200, -200, 100, 100)
	reg.Add(tr)
	e := New(reg, nil)

	_, err := e.Sculpt(SculptRequest{
		TerrainID: "scaled",
		Operations: []Operation{
			{Type: "raise", Center: [2]float64{0, 0}, Radius: 200, Intensity: 1, Falloff: "linear"},
		},
	})
	if err != nil {
		t.Fatalf("Sculpt failed: %v", err)
	}
	if got := heightAt(t, tr, 2, 2); got != 40768 {
		t.Errorf("grid center = %d, expected 40768", got)
	}
}
