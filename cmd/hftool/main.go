// hftool is a CLI utility for inspecting and converting heightmap rasters.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/terraforge/pkg/heightfield"
	"github.com/Faultbox/terraforge/pkg/raster"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "convert", "conv":
		cmdConvert(args)
	case "flat":
		cmdFlat(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hftool - heightmap raster utility

Usage:
  hftool <command> [options]

Commands:
  info <file> [-w N -h N]            Show raster dimensions and height range
  convert <in> <out> [-w N -h N]     Convert between png/bmp/r16 formats
  flat <out> <width> <height>        Write a baseline heightmap

Raw .r16/.raw files have no header; pass -w and -h for them.

Examples:
  hftool info terrain.png
  hftool info terrain.r16 -w 512 -h 512
  hftool convert terrain.r16 terrain.png -w 512 -h 512
  hftool flat blank.png 256 256`)
}

// loadRaster decodes any supported heightmap file, using explicit
// dimensions for headerless raw data.
func loadRaster(path string, width, height int) (*raster.Raster, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".r16", ".raw":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return raster.DecodeR16(data, width, height)
	default:
		return raster.DecodeFile(path)
	}
}

func saveRaster(r *raster.Raster, path string) error {
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

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	width := fs.Int("w", 0, "Raw raster width")
	height := fs.Int("h", 0, "Raw raster height")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hftool info <file> [-w N -h N]")
		os.Exit(1)
	}

	r, err := loadRaster(fs.Arg(0), *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lo, hi := r.Range()
	fmt.Printf("File:    %s\n", fs.Arg(0))
	fmt.Printf("Size:    %dx%d (%d samples)\n", r.Width, r.Height, len(r.Samples))
	fmt.Printf("Range:   %d .. %d\n", lo, hi)
	fmt.Printf("Span:    %.1f%% of full scale\n", float64(hi-lo)/65535*100)
	if lo == hi && lo == heightfield.SampleBaseline {
		fmt.Println("Flat baseline terrain")
	}
}

func cmdConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	width := fs.Int("w", 0, "Raw raster width")
	height := fs.Int("h", 0, "Raw raster height")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: hftool convert <in> <out> [-w N -h N]")
		os.Exit(1)
	}

	r, err := loadRaster(fs.Arg(0), *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := saveRaster(r, fs.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Converted: %s -> %s (%dx%d)\n", fs.Arg(0), fs.Arg(1), r.Width, r.Height)
}

func cmdFlat(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: hftool flat <out> <width> <height>")
		os.Exit(1)
	}

	width, err := strconv.Atoi(args[1])
	if err != nil || width <= 0 {
		fmt.Fprintf(os.Stderr, "Bad width: %s\n", args[1])
		os.Exit(1)
	}
	height, err := strconv.Atoi(args[2])
	if err != nil || height <= 0 {
		fmt.Fprintf(os.Stderr, "Bad height: %s\n", args[2])
		os.Exit(1)
	}

	r := raster.FromBuffer(heightfield.NewBuffer(width, height))
	if err := saveRaster(r, args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Written: %s (%dx%d baseline)\n", args[0], width, height)
}
