package main

import (
	"os"

	"github.com/tichavskym/ray-tracer/cmd"
	"github.com/tichavskym/ray-tracer/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "ray-tracer"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug, info, notice, warning or error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame",
			Description: `
Render a scene of spheres by tracing SPP jittered rays through each pixel and
bouncing them off diffuse and metal surfaces up to DEPTH times. Scanlines are
distributed across a pool of workers; renders with the same seed and options
produce identical images regardless of the worker count.

The frame encoding is selected by the extension of the output file.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderFrame,
		},
		{
			Name:  "scene",
			Usage: "inspect and export scene files",
			Subcommands: []cli.Command{
				{
					Name:      "info",
					Usage:     "display scene materials and spheres",
					ArgsUsage: "[scene_file]",
					Action:    cmd.ShowSceneInfo,
				},
				{
					Name:  "export",
					Usage: "write a scene in the text scene format",
					Description: `
Read a scene file (or use the built-in scene if no file is given) and write it
out in the text scene format. The output can be edited and passed to the render
command with --scene.`,
					ArgsUsage: "[scene_file]",
					Flags:     cmd.ExportFlags,
					Action:    cmd.ExportScene,
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("ray-tracer").Error(err)
		os.Exit(1)
	}
}
