// Package noise provides deterministic 2D coherent noise with multi-octave
// compositing for the noise and canyon brushes.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters. A single internal octave: fractal layering is done
// here so each accumulation round maps to exactly one noise lookup.
const (
	alpha = 2.0
	beta  = 2.0
)

// DefaultSeed keeps brush results reproducible across runs. Identical
// inputs always produce identical terrain.
const DefaultSeed int64 = 1973

// Generator produces coherent 2D noise in [-1, 1]. It is stateless after
// construction; samples depend only on the seed and the input coordinates.
type Generator struct {
	p *perlin.Perlin
}

// New creates a Generator for the given seed.
func New(seed int64) *Generator {
	return &Generator{p: perlin.NewPerlin(alpha, beta, 1, seed)}
}

// Sample returns one octave of coherent noise at (x, y), clamped to [-1, 1].
func (g *Generator) Sample(x, y float64) float64 {
	v := g.p.Noise2D(x, y)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// Fractal accumulates octave rounds starting at (frequency, 1.0), doubling
// the frequency and halving the amplitude each round, and normalizes by the
// total amplitude so the result stays in [-1, 1].
func (g *Generator) Fractal(x, y, frequency float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	total := 0.0
	totalAmp := 0.0
	freq := frequency
	amp := 1.0
	for i := 0; i < octaves; i++ {
		total += g.Sample(x*freq, y*freq) * amp
		totalAmp += amp
		freq *= 2
		amp *= 0.5
	}
	if totalAmp == 0 {
		return 0
	}
	v := total / totalAmp
	if math.IsNaN(v) {
		return 0
	}
	return v
}
