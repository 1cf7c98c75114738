package renderer

import "errors"

var (
	ErrNoWorkers        = errors.New("renderer: worker pool needs at least one worker")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInvalidFrame     = errors.New("renderer: frame dimensions must be non-zero")
	ErrInvalidSampling  = errors.New("renderer: samples per pixel must be non-zero")
	ErrClosed           = errors.New("renderer: renderer is closed")
)
