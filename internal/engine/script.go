package engine

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/terraforge/internal/terrain"
)

// Script errors.
var (
	ErrNoTerrainDecl = errors.New("script declares no terrain")
	ErrBadExtent     = errors.New("terrain extent must be positive")
)

// Script is a whole terrain-editing session in one YAML document: one
// terrain declaration followed by an optional import, ordered brush
// operations, and paint passes.
type Script struct {
	Terrain    TerrainDecl  `yaml:"terrain"`
	Import     *ImportDecl  `yaml:"import,omitempty"`
	Operations []Operation  `yaml:"operations,omitempty"`
	Paint      []PaintDecl  `yaml:"paint,omitempty"`
	Output     OutputDecl   `yaml:"output,omitempty"`
}

// TerrainDecl declares the terrain a script edits: resolution, placement
// and the weight layers available for painting.
type TerrainDecl struct {
	ID       string     `yaml:"id"`
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Origin   [2]float64 `yaml:"origin,omitempty"`
	CellSize [2]float64 `yaml:"cell_size,omitempty"`
	Layers   []string   `yaml:"layers,omitempty"`
}

// ImportDecl seeds the heightfield from an external raster before any
// brush runs.
type ImportDecl struct {
	Source    string  `yaml:"source"`
	ScaleZ    float64 `yaml:"scale_z,omitempty"`
	RawWidth  int     `yaml:"raw_width,omitempty"`
	RawHeight int     `yaml:"raw_height,omitempty"`
}

// PaintDecl is one paint pass over a declared layer.
type PaintDecl struct {
	Layer    string     `yaml:"layer"`
	Position [2]float64 `yaml:"position"`
	Radius   float64    `yaml:"radius"`
	Strength float64    `yaml:"strength"`
}

// OutputDecl names the files a script run writes.
type OutputDecl struct {
	Heightmap string `yaml:"heightmap,omitempty"`
}

// LoadScript reads and validates a script file. Missing required fields
// are hard failures.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks the script's required fields.
func (s *Script) Validate() error {
	if s.Terrain.ID == "" {
		return ErrNoTerrainDecl
	}
	if s.Terrain.Width <= 0 || s.Terrain.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadExtent, s.Terrain.Width, s.Terrain.Height)
	}
	if s.Import != nil && s.Import.Source == "" {
		return errors.New("import block missing source")
	}
	for i, p := range s.Paint {
		if p.Layer == "" {
			return fmt.Errorf("paint %d missing layer name", i)
		}
	}
	return nil
}

// ScriptResult aggregates everything one script run did.
type ScriptResult struct {
	Import *ImportResult `yaml:"import,omitempty"`
	Sculpt SculptResult  `yaml:"sculpt"`
	Paint  []PaintResult `yaml:"paint,omitempty"`
}

// RunScript creates the declared terrain, registers it, and applies the
// script's import, operations and paint passes in order.
func (e *Engine) RunScript(s *Script) (*ScriptResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cellX, cellY := s.Terrain.CellSize[0], s.Terrain.CellSize[1]
	t := terrain.New(s.Terrain.ID, s.Terrain.Width, s.Terrain.Height,
		s.Terrain.Origin[0], s.Terrain.Origin[1], cellX, cellY)
	for _, layer := range s.Terrain.Layers {
		t.AddLayer(layer)
	}
	e.terrains.Add(t)

	var res ScriptResult
	if s.Import != nil {
		ir, err := e.Import(ImportRequest{
			TerrainID:  s.Terrain.ID,
			SourcePath: s.Import.Source,
			ScaleZ:     s.Import.ScaleZ,
			RawWidth:   s.Import.RawWidth,
			RawHeight:  s.Import.RawHeight,
		})
		if err != nil {
			return nil, err
		}
		res.Import = &ir
	}

	if len(s.Operations) > 0 {
		sr, err := e.Sculpt(SculptRequest{
			TerrainID:  s.Terrain.ID,
			Operations: s.Operations,
		})
		if err != nil {
			return nil, err
		}
		res.Sculpt = sr
	}

	for _, p := range s.Paint {
		pr, err := e.Paint(PaintRequest{
			TerrainID: s.Terrain.ID,
			LayerName: p.Layer,
			Position:  p.Position,
			Radius:    p.Radius,
			Strength:  p.Strength,
		})
		if err != nil {
			return nil, err
		}
		res.Paint = append(res.Paint, pr)
	}
	return &res, nil
}
