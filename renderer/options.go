package renderer

import (
	"math"
	"runtime"

	"github.com/tichavskym/ray-tracer/tracer"
)

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples.
	SamplesPerPixel uint32

	// Max number of bounces per sample.
	MaxDepth uint32

	// Number of worker goroutines.
	NumWorkers uint32

	// Root seed for per-pixel sampling. Renders with the same seed and
	// options produce identical images.
	Seed uint64
}

// Default render options: a 16:9 frame 400 pixels wide with one worker per CPU.
func DefaultOptions() Options {
	return Options{
		FrameW:          400,
		FrameH:          FrameHeight(400, 16.0/9.0),
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      uint32(runtime.NumCPU()),
	}
}

// Calculate the frame height for a frame width and aspect ratio.
func FrameHeight(frameW uint32, aspectRatio float64) uint32 {
	return uint32(math.Round(float64(frameW) / aspectRatio))
}

func (opts Options) tracerOptions() tracer.Options {
	return tracer.Options{
		FrameW:          opts.FrameW,
		FrameH:          opts.FrameH,
		SamplesPerPixel: opts.SamplesPerPixel,
		MaxDepth:        opts.MaxDepth,
		Seed:            opts.Seed,
	}
}
