package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/tichavskym/ray-tracer/renderer"
	"github.com/tichavskym/ray-tracer/scene"
	"github.com/tichavskym/ray-tracer/scene/reader"
	"github.com/urfave/cli"
)

// Flags accepted by the render command.
var RenderFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Value: 400,
		Usage: "frame width",
	},
	cli.Float64Flag{
		Name:  "aspect",
		Value: 16.0 / 9.0,
		Usage: "frame aspect ratio; the frame height is round(width / aspect)",
	},
	cli.Float64Flag{
		Name:  "viewport-height",
		Value: 2.0,
		Usage: "camera viewport height",
	},
	cli.Float64Flag{
		Name:  "focal-length",
		Value: 1.0,
		Usage: "distance between the camera and the viewport",
	},
	cli.IntFlag{
		Name:  "spp",
		Value: 100,
		Usage: "samples per pixel",
	},
	cli.IntFlag{
		Name:  "depth",
		Value: 50,
		Usage: "max number of bounces per sample",
	},
	cli.IntFlag{
		Name:  "workers",
		Value: runtime.NumCPU(),
		Usage: "number of worker goroutines",
	},
	cli.Uint64Flag{
		Name:  "seed",
		Value: 0,
		Usage: "seed for the per-pixel random generators",
	},
	cli.StringFlag{
		Name:  "scene, s",
		Usage: "scene file path or http(s) URL; the built-in scene is used if omitted",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "frame.png",
		Usage: "image filename for the rendered frame (.png, .bmp, .tif, .tiff, .ppm or - for stdout)",
	},
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	// Fail before rendering if the frame cannot be written
	imgFile := ctx.String("out")
	encode, err := encoderFor(imgFile)
	if err != nil {
		return err
	}

	aspect := ctx.Float64("aspect")
	if !(aspect > 0) {
		return errors.New("aspect ratio must be positive")
	}
	for _, name := range []string{"viewport-height", "focal-length"} {
		if !(ctx.Float64(name) > 0) {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	for _, name := range []string{"width", "spp", "depth", "workers"} {
		if ctx.Int(name) < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	opts := renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          renderer.FrameHeight(uint32(ctx.Int("width")), aspect),
		SamplesPerPixel: uint32(ctx.Int("spp")),
		MaxDepth:        uint32(ctx.Int("depth")),
		NumWorkers:      uint32(ctx.Int("workers")),
		Seed:            ctx.Uint64("seed"),
	}

	sc, err := loadScene(ctx.String("scene"))
	if err != nil {
		return err
	}
	sc.SetCamera(scene.NewCamera(ctx.Float64("viewport-height"), aspect, ctx.Float64("focal-length")))
	logger.Debugf("%s", sc.Camera)

	r, err := renderer.NewDefault(sc, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Noticef("rendering %dx%d frame with %d spp using %d workers", opts.FrameW, opts.FrameH, opts.SamplesPerPixel, opts.NumWorkers)
	frame, err := r.Render()
	if err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	return writeFrame(imgFile, frame, encode)
}

// Read a scene from a file or URL or fall back to the built-in scene.
func loadScene(location string) (*scene.Scene, error) {
	if location == "" {
		logger.Info("using built-in scene")
		return scene.Default(), nil
	}

	logger.Noticef("reading scene: %s", location)
	return reader.ReadScene(location)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
