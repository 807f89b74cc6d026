// Package engine applies sculpt, import and paint requests to registered
// terrains. Every operation is a windowed read-modify-write: one read, one
// kernel pass over a local buffer, one write.
package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terraforge/internal/terrain"
	"github.com/Faultbox/terraforge/pkg/heightfield"
	"github.com/Faultbox/terraforge/pkg/sculpt"
)

// Engine executes terrain edit requests. It is synchronous and
// single-threaded: callers invoke it from the thread that owns the
// terrains.
type Engine struct {
	terrains     *terrain.Registry
	log          *zap.Logger
	fetchTimeout time.Duration
}

// New creates an engine over a terrain registry. A nil logger disables
// logging.
func New(reg *terrain.Registry, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{terrains: reg, log: log}
}

// SetFetchTimeout bounds how long a remote heightmap download may take.
// Zero means no limit.
func (e *Engine) SetFetchTimeout(d time.Duration) { e.fetchTimeout = d }

// Terrains exposes the registry for hosts that create terrains directly.
func (e *Engine) Terrains() *terrain.Registry { return e.terrains }

// Sculpt applies an ordered list of brush operations to one terrain.
// Operations run strictly sequentially: each sees the results of the ones
// before it. Operations with an unknown type are skipped and not counted
// as completed; a degenerate brush window is a no-op, not an error.
func (e *Engine) Sculpt(req SculptRequest) (SculptResult, error) {
	t, err := e.terrains.Get(req.TerrainID)
	if err != nil {
		return SculptResult{}, err
	}
	width, height := t.Extent()
	var res SculptResult
	if width <= 0 || height <= 0 {
		return res, nil
	}
	tf := t.Transform()

	for i, o := range req.Operations {
		op, ok := o.resolve(tf)
		if !ok {
			e.log.Debug("skipping unknown operation type",
				zap.String("terrain", req.TerrainID),
				zap.Int("index", i),
				zap.String("type", o.Type))
			continue
		}

		cx, cy := tf.GridCenter(o.Center[0], o.Center[1])
		r := tf.GridRadius(o.Radius)
		win := heightfield.BrushWindow(cx, cy, r, width, height)

		buf, err := t.ReadWindow(win)
		if err != nil {
			return res, err
		}
		before := buf.Clone()

		sculpt.Apply(op, buf, float64(cx-win.MinX), float64(cy-win.MinY), float64(r))

		if err := t.WriteWindow(win, buf); err != nil {
			return res, err
		}
		res.OperationsCompleted++
		res.VerticesModified += countChanged(before, buf)
	}

	e.log.Info("sculpt applied",
		zap.String("terrain", req.TerrainID),
		zap.Int("operations", res.OperationsCompleted),
		zap.Int("vertices", res.VerticesModified))
	return res, nil
}

// countChanged reports how many samples differ between two buffers.
func countChanged(before, after *heightfield.Buffer) int {
	n := 0
	for i := range after.Samples {
		if after.Samples[i] != before.Samples[i] {
			n++
		}
	}
	return n
}
