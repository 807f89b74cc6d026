package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagSeed   = flag.Int64("seed", 0, "Noise generator seed (0 keeps the configured seed)")
	flagOut    = flag.String("out", "", "Output directory for generated files")
	flagScaleZ = flag.Float64("scale-z", 0, "Height scale applied to imported rasters")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Engine.NoiseSeed = *flagSeed
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagScaleZ > 0 {
		cfg.Import.ScaleZ = *flagScaleZ
	}
}
