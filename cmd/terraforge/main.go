// terraforge runs terrain sculpt scripts: build a heightfield, carve it
// with brush operations, paint its layers and write the result out.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/terraforge/internal/config"
	"github.com/Faultbox/terraforge/internal/engine"
	"github.com/Faultbox/terraforge/internal/logger"
	"github.com/Faultbox/terraforge/internal/terrain"
	"github.com/Faultbox/terraforge/pkg/heightfield"
	"github.com/Faultbox/terraforge/pkg/raster"
	"github.com/Faultbox/terraforge/pkg/sculpt"
)

var flagScript = flag.String("script", "", "Path to sculpt script (YAML)")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var rot logger.Rotation
	if cfg.Logging.LogFile != "" {
		rot = logger.DefaultRotation(cfg.Logging.LogFile)
	}
	log := logger.New(cfg.Logging.Level, rot, true)
	defer log.Sync()

	if *flagScript == "" {
		fmt.Fprintln(os.Stderr, "Usage: terraforge -script <file.yaml> [-config <file>] [-seed N] [-out <dir>]")
		os.Exit(1)
	}

	sculpt.Reseed(cfg.Engine.NoiseSeed)

	script, err := engine.LoadScript(*flagScript)
	if err != nil {
		log.Fatal("script rejected", zap.Error(err))
	}

	eng := engine.New(terrain.NewRegistry(), log)
	eng.SetFetchTimeout(cfg.Import.FetchTimeout)

	res, err := eng.RunScript(script)
	if err != nil {
		log.Fatal("script failed", zap.Error(err))
	}

	if res.Import != nil {
		fmt.Printf("Imported: %dx%d raster onto %dx%d terrain\n",
			res.Import.ImageWidth, res.Import.ImageHeight,
			res.Import.LandscapeWidth, res.Import.LandscapeHeight)
	}
	fmt.Printf("Sculpted: %d operations, %d vertices modified\n",
		res.Sculpt.OperationsCompleted, res.Sculpt.VerticesModified)
	for _, p := range res.Paint {
		fmt.Printf("Painted:  %s (%d vertices)\n", p.LayerName, p.VerticesPainted)
	}

	if script.Output.Heightmap != "" {
		path := script.Output.Heightmap
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Output.Dir, path)
		}
		if err := writeHeightmap(eng, script.Terrain.ID, path); err != nil {
			log.Fatal("writing heightmap", zap.Error(err))
		}
		fmt.Printf("Written:  %s\n", path)
	}
}

// writeHeightmap exports the terrain's full heightfield, picking the codec
// by the output extension.
func writeHeightmap(eng *engine.Engine, terrainID, path string) error {
	t, err := eng.Terrains().Get(terrainID)
	if err != nil {
		return err
	}
	width, height := t.Extent()
	buf, err := t.ReadWindow(heightfield.Window{MinX: 0, MinY: 0, MaxX: width - 1, MaxY: height - 1})
	if err != nil {
		return err
	}
	r := raster.FromBuffer(buf)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".r16", ".raw":
		return r.EncodeR16(f)
	case ".bmp":
		return r.EncodeBMP(f)
	default:
		return r.EncodePNG(f)
	}
}
