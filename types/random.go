package types

import "math/rand/v2"

// The Sampler interface is implemented by uniform [0, 1) number generators.
// *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// A PixelSampler is a Sampler whose sequence is derived from a root seed and
// a pixel index. Reseeding it with the same pair always replays the same
// sequence, so the samples drawn for a pixel do not depend on which worker
// traces it. A PixelSampler is not safe for concurrent use.
type PixelSampler struct {
	seed uint64
	src  *rand.PCG
	rng  *rand.Rand
}

// Create a new pixel sampler for the given root seed.
func NewPixelSampler(seed uint64) *PixelSampler {
	src := rand.NewPCG(seed, 0)
	return &PixelSampler{
		seed: seed,
		src:  src,
		rng:  rand.New(src),
	}
}

// Restart the sequence for the pixel with the given index.
func (ps *PixelSampler) Reseed(pixelIndex uint64) {
	ps.src.Seed(ps.seed, pixelIndex)
}

// Draw a uniform value in [0, 1).
func (ps *PixelSampler) Float64() float64 {
	return ps.rng.Float64()
}
