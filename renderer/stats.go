package renderer

import "time"

type WorkerStat struct {
	// The worker's tracer id.
	Id string

	// The number of rows traced and the percentage of total frame area
	// they represent.
	Rows         uint32
	FramePercent float32

	// Time spent tracing the rows.
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual worker stats.
	Workers []WorkerStat

	// Total render time for entire frame.
	RenderTime time.Duration
}
