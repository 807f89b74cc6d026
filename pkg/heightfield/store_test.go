package heightfield

import "testing"

func TestGrid_Baseline(t *testing.T) {
	g := NewGrid(8, 8)
	w, h := g.Extent()
	if w != 8 || h != 8 {
		t.Fatalf("expected 8x8 extent, got %dx%d", w, h)
	}
	if g.At(3, 5) != SampleBaseline {
		t.Errorf("expected baseline %d, got %d", SampleBaseline, g.At(3, 5))
	}
}

func TestGrid_WindowRoundTrip(t *testing.T) {
	g := NewGrid(16, 16)
	win := Window{MinX: 2, MinY: 3, MaxX: 6, MaxY: 8}

	buf, err := g.ReadWindow(win)
	if err != nil {
		t.Fatalf("ReadWindow failed: %v", err)
	}
	if buf.Width != 5 || buf.Height != 6 {
		t.Fatalf("expected 5x6 buffer, got %dx%d", buf.Width, buf.Height)
	}

	buf.Set(0, 0, 1000)
	buf.Set(4, 5, 2000)
	if err := g.WriteWindow(win, buf); err != nil {
		t.Fatalf("WriteWindow failed: %v", err)
	}

	if g.At(2, 3) != 1000 {
		t.Errorf("expected 1000 at (2,3), got %d", g.At(2, 3))
	}
	if g.At(6, 8) != 2000 {
		t.Errorf("expected 2000 at (6,8), got %d", g.At(6, 8))
	}
	// A sample outside the window is untouched.
	if g.At(7, 8) != SampleBaseline {
		t.Errorf("sample outside window changed to %d", g.At(7, 8))
	}
}

func TestGrid_WindowOutOfBounds(t *testing.T) {
	g := NewGrid(4, 4)

	if _, err := g.ReadWindow(Window{MinX: 0, MinY: 0, MaxX: 4, MaxY: 3}); err == nil {
		t.Error("expected error for window past the extent")
	}
	if _, err := g.ReadWindow(Window{MinX: -1, MinY: 0, MaxX: 2, MaxY: 2}); err == nil {
		t.Error("expected error for negative window")
	}
	if _, err := g.ReadWindow(Window{MinX: 3, MinY: 3, MaxX: 2, MaxY: 2}); err == nil {
		t.Error("expected error for inverted window")
	}
}

func TestGrid_WriteWindowSizeMismatch(t *testing.T) {
	g := NewGrid(8, 8)
	buf := NewBuffer(2, 2)
	err := g.WriteWindow(Window{MinX: 0, MinY: 0, MaxX: 3, MaxY: 3}, buf)
	if err == nil {
		t.Error("expected error for mismatched buffer size")
	}
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	buf := NewBuffer(3, 3)
	buf.Set(1, 1, 42)

	snap := buf.Clone()
	buf.Set(1, 1, 99)

	if snap.At(1, 1) != 42 {
		t.Errorf("clone mutated with original: got %d", snap.At(1, 1))
	}
}
