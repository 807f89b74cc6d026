package engine

import (
	"github.com/Faultbox/terraforge/pkg/heightfield"
	"github.com/Faultbox/terraforge/pkg/sculpt"
)

// SculptRequest is an ordered batch of brush operations for one terrain.
type SculptRequest struct {
	TerrainID  string      `yaml:"terrain_id" json:"terrain_id"`
	Operations []Operation `yaml:"operations" json:"operations"`
}

// Operation is the wire shape of one brush stroke. Type and falloff names
// are resolved to their closed kinds once, before any kernel runs.
type Operation struct {
	Type    string     `yaml:"type" json:"type"`
	Center  [2]float64 `yaml:"center" json:"center"`
	Radius  float64    `yaml:"radius" json:"radius"`
	Falloff string     `yaml:"falloff,omitempty" json:"falloff,omitempty"`

	Intensity float64 `yaml:"intensity,omitempty" json:"intensity,omitempty"`
	Depth     float64 `yaml:"depth,omitempty" json:"depth,omitempty"`
	RimHeight float64 `yaml:"rim_height,omitempty" json:"rim_height,omitempty"`

	Frequency float64 `yaml:"frequency,omitempty" json:"frequency,omitempty"`
	Octaves   int     `yaml:"octaves,omitempty" json:"octaves,omitempty"`
	Amplitude float64 `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`

	Direction [2]float64 `yaml:"direction,omitempty" json:"direction,omitempty"`
	Width     float64    `yaml:"width,omitempty" json:"width,omitempty"`
	Roughness float64    `yaml:"roughness,omitempty" json:"roughness,omitempty"`
}

// resolve converts the wire operation to a kernel op, translating the
// canyon width from world units to grid units. ok is false for an unknown
// type name; an unrecognized falloff falls back to smooth.
func (o Operation) resolve(tf heightfield.Transform) (sculpt.Op, bool) {
	kind := sculpt.ParseKind(o.Type)
	if kind == sculpt.KindUnknown {
		return sculpt.Op{}, false
	}
	falloff, _ := sculpt.ParseFalloff(o.Falloff)
	return sculpt.Op{
		Kind:      kind,
		Falloff:   falloff,
		Intensity: o.Intensity,
		Depth:     o.Depth,
		RimHeight: o.RimHeight,
		Frequency: o.Frequency,
		Octaves:   o.Octaves,
		Amplitude: o.Amplitude,
		DirX:      o.Direction[0],
		DirY:      o.Direction[1],
		Width:     o.Width / tf.CellX,
		Roughness: o.Roughness,
	}, true
}

// SculptResult summarizes one sculpt request.
type SculptResult struct {
	OperationsCompleted int `yaml:"operations_completed" json:"operations_completed"`
	VerticesModified    int `yaml:"vertices_modified" json:"vertices_modified"`
}

// ImportRequest replaces a terrain's whole heightfield from an external
// raster. SourcePath may be a local file or a URL. RawWidth/RawHeight are
// required only for headerless .r16/.raw sources.
type ImportRequest struct {
	TerrainID  string  `yaml:"terrain_id" json:"terrain_id"`
	SourcePath string  `yaml:"source_path" json:"source_path"`
	ScaleZ     float64 `yaml:"scale_z" json:"scale_z"`
	RawWidth   int     `yaml:"raw_width,omitempty" json:"raw_width,omitempty"`
	RawHeight  int     `yaml:"raw_height,omitempty" json:"raw_height,omitempty"`
}

// ImportResult summarizes one import.
type ImportResult struct {
	ImageWidth       int `yaml:"image_width" json:"image_width"`
	ImageHeight      int `yaml:"image_height" json:"image_height"`
	LandscapeWidth   int `yaml:"landscape_width" json:"landscape_width"`
	LandscapeHeight  int `yaml:"landscape_height" json:"landscape_height"`
	VerticesModified int `yaml:"vertices_modified" json:"vertices_modified"`
}

// PaintRequest blends alpha onto an existing weight layer.
type PaintRequest struct {
	TerrainID string     `yaml:"terrain_id" json:"terrain_id"`
	LayerName string     `yaml:"layer_name" json:"layer_name"`
	Position  [2]float64 `yaml:"position" json:"position"`
	Radius    float64    `yaml:"radius" json:"radius"`
	Strength  float64    `yaml:"strength" json:"strength"`
}

// PaintResult summarizes one paint request.
type PaintResult struct {
	LayerName       string `yaml:"layer_name" json:"layer_name"`
	VerticesPainted int    `yaml:"vertices_painted" json:"vertices_painted"`
}
