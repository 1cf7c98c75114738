package renderer

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/tichavskym/ray-tracer/scene"
	"github.com/tichavskym/ray-tracer/tracer"
)

// A traced scanline.
type rowResult struct {
	// Index of the worker that traced the row.
	worker int

	// Row index; 0 is the top row.
	y uint32

	pixels []color.RGBA
}

// A fixed set of workers, each owning a tracer. Workers pull row indices
// from a shared job channel and push traced rows to a result channel.
type pool struct {
	tracers []*tracer.Tracer

	// Frame dims shared with every tracer.
	frameW uint32
	frameH uint32
}

// Create a pool with size workers.
func newPool(size uint32, sc *scene.Scene, opts tracer.Options) (*pool, error) {
	if size == 0 {
		return nil, ErrNoWorkers
	}

	p := &pool{
		tracers: make([]*tracer.Tracer, size),
		frameW:  opts.FrameW,
		frameH:  opts.FrameH,
	}
	for i := range p.tracers {
		p.tracers[i] = tracer.New(fmt.Sprintf("worker-%d", i), sc, opts)
	}
	return p, nil
}

// Trace every frame row. The returned channel yields each row exactly once
// and is closed after the last worker exits.
func (p *pool) run() <-chan rowResult {
	frameW, frameH := p.frameW, p.frameH
	jobs := make(chan uint32, frameH)
	results := make(chan rowResult, len(p.tracers))

	var wg sync.WaitGroup
	wg.Add(len(p.tracers))
	for workerIndex, tr := range p.tracers {
		go func(workerIndex int, tr *tracer.Tracer) {
			defer wg.Done()
			logger.Debugf("[%s] started", tr.Id())
			for y := range jobs {
				pixels := make([]color.RGBA, frameW)
				tr.TraceRow(y, pixels)
				results <- rowResult{worker: workerIndex, y: y, pixels: pixels}
			}
			logger.Debugf("[%s] exiting", tr.Id())
		}(workerIndex, tr)
	}

	go func() {
		for y := uint32(0); y < frameH; y++ {
			jobs <- y
		}
		close(jobs)

		wg.Wait()
		close(results)
	}()

	return results
}
