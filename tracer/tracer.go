package tracer

import (
	"image/color"
	"math"
	"time"

	"github.com/tichavskym/ray-tracer/scene"
	"github.com/tichavskym/ray-tracer/types"
)

// Rays are only allowed to hit surfaces further than this from their origin.
// Scattered rays start exactly on a surface and floating point error would
// otherwise let them re-hit it.
const MinHitDistance = 0.001

// Tracer settings shared by all tracers taking part in a render.
type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of jittered samples per pixel.
	SamplesPerPixel uint32

	// Max number of bounces per sample.
	MaxDepth uint32

	// Root seed for the per-pixel random generators.
	Seed uint64
}

// Tracer statistics.
type Stats struct {
	// The number of rows traced.
	Rows uint32

	// The time spent tracing rows.
	RenderTime time.Duration
}

// A Tracer shades complete scanlines. Each pixel gets its own random sequence
// derived from the seed and the pixel index so the output does not depend on
// which tracer processes a row. Tracers are not safe for concurrent use; a
// render uses one tracer per worker.
type Tracer struct {
	id      string
	sc      *scene.Scene
	opts    Options
	sampler *types.PixelSampler
	stats   Stats
}

// Create a new tracer for the given scene. The scene and its camera are
// only read.
func New(id string, sc *scene.Scene, opts Options) *Tracer {
	return &Tracer{
		id:      id,
		sc:      sc,
		opts:    opts,
		sampler: types.NewPixelSampler(opts.Seed),
	}
}

// Get tracer id.
func (tr *Tracer) Id() string {
	return tr.id
}

// Retrieve tracer statistics.
func (tr *Tracer) Stats() Stats {
	return tr.stats
}

// Reset tracer statistics.
func (tr *Tracer) ResetStats() {
	tr.stats = Stats{}
}

// Trace row y (0 is the top row) and write the resolved pixels into out,
// which must hold FrameW entries.
func (tr *Tracer) TraceRow(y uint32, out []color.RGBA) {
	start := time.Now()

	cam := tr.sc.Camera
	uScale := 1.0 / denominator(tr.opts.FrameW)
	vScale := 1.0 / denominator(tr.opts.FrameH)
	// Image rows grow downwards while v grows upwards.
	row := float64(tr.opts.FrameH - 1 - y)

	for x := uint32(0); x < tr.opts.FrameW; x++ {
		tr.sampler.Reseed(uint64(y)*uint64(tr.opts.FrameW) + uint64(x))

		var acc types.Accumulator
		for s := uint32(0); s < tr.opts.SamplesPerPixel; s++ {
			u := (float64(x) + tr.sampler.Float64()) * uScale
			v := (row + tr.sampler.Float64()) * vScale
			acc.AddSample(Shade(cam.Ray(u, v), tr.sc, tr.opts.MaxDepth, tr.sampler))
		}
		out[x] = acc.Resolve(tr.opts.SamplesPerPixel)
	}

	tr.stats.Rows++
	tr.stats.RenderTime += time.Since(start)
}

// Resolve the color carried back along r. Each bounce spends one unit of
// depth; a path that runs out of depth or is absorbed contributes black.
func Shade(r types.Ray, sc *scene.Scene, depth uint32, s types.Sampler) types.Color {
	if depth == 0 {
		return types.Black
	}

	var rec scene.HitRecord
	if !sc.Hit(r, MinHitDistance, math.Inf(1), &rec) {
		return Background(r)
	}

	scattered, attenuation, ok := rec.Material.Scatter(&rec, r, s)
	if !ok {
		return types.Black
	}
	return attenuation.Attenuate(Shade(scattered, sc, depth-1, s))
}

// Sky gradient from white at the horizon below to light blue overhead.
func Background(r types.Ray) types.Color {
	t := 0.5 * (r.UnitDir().Y() + 1.0)
	return types.Lerp(types.White, types.SkyBlue, t)
}

// Pixel centers span [0, 1]; a single pixel wide frame maps to 0.
func denominator(size uint32) float64 {
	if size <= 1 {
		return 1
	}
	return float64(size - 1)
}
