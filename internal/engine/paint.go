package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/terraforge/internal/terrain"
	"github.com/Faultbox/terraforge/pkg/heightfield"
	"github.com/Faultbox/terraforge/pkg/sculpt"
)

// Paint overwrites the alpha weights of an existing layer over the brush
// window, using the smooth falloff shape. The layer must already be
// declared on the terrain: painting never creates layers, and an unknown
// layer name fails before anything is written.
func (e *Engine) Paint(req PaintRequest) (PaintResult, error) {
	t, err := e.terrains.Get(req.TerrainID)
	if err != nil {
		return PaintResult{}, err
	}
	if _, ok := t.Layer(req.LayerName); !ok {
		return PaintResult{}, fmt.Errorf("%w: %q on terrain %q",
			terrain.ErrLayerNotFound, req.LayerName, req.TerrainID)
	}
	width, height := t.Extent()
	if width <= 0 || height <= 0 {
		return PaintResult{LayerName: req.LayerName}, nil
	}

	tf := t.Transform()
	cx, cy := tf.GridCenter(req.Position[0], req.Position[1])
	r := tf.GridRadius(req.Radius)
	win := heightfield.BrushWindow(cx, cy, r, width, height)

	alpha := sculpt.PaintWeights(win.Dx(), win.Dy(),
		float64(cx-win.MinX), float64(cy-win.MinY), float64(r), req.Strength)
	if err := t.WriteLayerWindow(req.LayerName, win, alpha); err != nil {
		return PaintResult{}, err
	}

	e.log.Info("layer painted",
		zap.String("terrain", req.TerrainID),
		zap.String("layer", req.LayerName),
		zap.Int("vertices", win.Area()))

	return PaintResult{
		LayerName:       req.LayerName,
		VerticesPainted: win.Area(),
	}, nil
}
