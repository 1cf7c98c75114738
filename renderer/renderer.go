package renderer

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/tichavskym/ray-tracer/log"
	"github.com/tichavskym/ray-tracer/scene"
)

var logger = log.New("renderer")

// Render calls on the same renderer share its tracers and are serialized;
// concurrent callers wait for the frame in progress.
type Renderer interface {
	// Render frame.
	Render() (*image.RGBA, error)

	// Shutdown renderer and release its workers.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// A renderer that splits the frame into scanlines and traces them using a
// fixed pool of workers. The renderer is the only writer of the frame buffer.
type defaultRenderer struct {
	sync.Mutex

	options Options

	pool  *pool
	stats FrameStats
}

// Create a new default renderer for the given scene. The scene and its camera
// must not be modified while rendering.
func NewDefault(sc *scene.Scene, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidFrame
	}
	if opts.SamplesPerPixel == 0 {
		return nil, ErrInvalidSampling
	}

	p, err := newPool(opts.NumWorkers, sc, opts.tracerOptions())
	if err != nil {
		return nil, err
	}

	logger.Debugf("created pool with %d workers", opts.NumWorkers)
	return &defaultRenderer{
		options: opts,
		pool:    p,
	}, nil
}

// Render frame. Rows may complete in any order; each result carries its row
// index and is copied into place.
func (r *defaultRenderer) Render() (*image.RGBA, error) {
	r.Lock()
	defer r.Unlock()

	if r.pool == nil {
		return nil, ErrClosed
	}

	frameW, frameH := r.options.FrameW, r.options.FrameH
	frame := image.NewRGBA(image.Rect(0, 0, int(frameW), int(frameH)))
	for _, tr := range r.pool.tracers {
		tr.ResetStats()
	}

	start := time.Now()
	done := make([]bool, frameH)
	var completed uint32
	for res := range r.pool.run() {
		if done[res.y] {
			panic(fmt.Sprintf("renderer: row %d delivered twice", res.y))
		}
		done[res.y] = true

		for x, c := range res.pixels {
			frame.SetRGBA(x, int(res.y), c)
		}

		completed++
		logger.Infof("[%s] traced scanline %d; scanlines remaining: %d", r.pool.tracers[res.worker].Id(), res.y, frameH-completed)
	}

	if completed != frameH {
		panic(fmt.Sprintf("renderer: expected %d rows; got %d", frameH, completed))
	}

	r.updateStats(time.Since(start))
	logger.Noticef("rendered %dx%d frame in %d ms", frameW, frameH, r.stats.RenderTime.Nanoseconds()/1000000)
	return frame, nil
}

// Shutdown renderer.
func (r *defaultRenderer) Close() {
	r.Lock()
	r.pool = nil
	r.Unlock()
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	r.Lock()
	defer r.Unlock()
	return r.stats
}

func (r *defaultRenderer) updateStats(renderTime time.Duration) {
	r.stats.RenderTime = renderTime
	r.stats.Workers = make([]WorkerStat, len(r.pool.tracers))
	for idx, tr := range r.pool.tracers {
		trStats := tr.Stats()
		r.stats.Workers[idx] = WorkerStat{
			Id:           tr.Id(),
			Rows:         trStats.Rows,
			FramePercent: 100.0 * float32(trStats.Rows) / float32(r.options.FrameH),
			RenderTime:   trStats.RenderTime,
		}
	}
}
