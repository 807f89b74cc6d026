package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"
	"go.uber.org/zap"

	"github.com/Faultbox/terraforge/internal/terrain"
	"github.com/Faultbox/terraforge/pkg/heightfield"
	"github.com/Faultbox/terraforge/pkg/raster"
)

// Import decodes an external heightmap and resamples it over the whole
// extent of the target terrain. A bad source or an empty terrain is a hard
// failure: nothing is mutated.
func (e *Engine) Import(req ImportRequest) (ImportResult, error) {
	t, err := e.terrains.Get(req.TerrainID)
	if err != nil {
		return ImportResult{}, err
	}
	width, height := t.Extent()
	if width <= 0 || height <= 0 {
		return ImportResult{}, fmt.Errorf("%w: %q", terrain.ErrEmptyExtent, req.TerrainID)
	}

	local, cleanup, err := e.fetchSource(req.SourcePath)
	if err != nil {
		return ImportResult{}, err
	}
	defer cleanup()

	src, err := decodeSource(local, req)
	if err != nil {
		return ImportResult{}, err
	}

	scaleZ := req.ScaleZ
	if scaleZ == 0 {
		scaleZ = 1
	}
	buf, err := raster.Resample(src, width, height, scaleZ)
	if err != nil {
		return ImportResult{}, err
	}

	win := heightfield.Window{MinX: 0, MinY: 0, MaxX: width - 1, MaxY: height - 1}
	if err := t.WriteWindow(win, buf); err != nil {
		return ImportResult{}, err
	}

	e.log.Info("heightmap imported",
		zap.String("terrain", req.TerrainID),
		zap.String("source", req.SourcePath),
		zap.Int("image_width", src.Width),
		zap.Int("image_height", src.Height),
		zap.Float64("scale_z", scaleZ))

	return ImportResult{
		ImageWidth:       src.Width,
		ImageHeight:      src.Height,
		LandscapeWidth:   width,
		LandscapeHeight:  height,
		VerticesModified: width * height,
	}, nil
}

// decodeSource picks the decoder by extension: headerless raw buffers need
// explicit dimensions, everything else goes through image auto-detection.
func decodeSource(path string, req ImportRequest) (*raster.Raster, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".r16", ".raw":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading raw heightmap: %w", err)
		}
		return raster.DecodeR16(data, req.RawWidth, req.RawHeight)
	default:
		return raster.DecodeFile(path)
	}
}

// fetchSource resolves a source path. Local paths pass through untouched;
// anything with a URL scheme is downloaded to a temp file first, bounded
// by the engine's fetch timeout.
func (e *Engine) fetchSource(src string) (string, func(), error) {
	if !strings.Contains(src, "://") {
		return src, func() {}, nil
	}
	tmpDir, err := os.MkdirTemp("", "terraforge-import")
	if err != nil {
		return "", nil, fmt.Errorf("creating download dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	name := filepath.Base(strings.SplitN(src, "?", 2)[0])
	if name == "" || name == "." || name == "/" {
		name = "heightmap"
	}
	dst := filepath.Join(tmpDir, name)

	ctx := context.Background()
	if e.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.fetchTimeout)
		defer cancel()
	}
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("fetching %s: %w", src, err)
	}
	return dst, cleanup, nil
}
