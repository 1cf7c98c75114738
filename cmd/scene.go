package cmd

import (
	"errors"

	"github.com/tichavskym/ray-tracer/scene/writer"
	"github.com/urfave/cli"
)

// Flags accepted by the scene export command.
var ExportFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "out, o",
		Value: "scene.txt",
		Usage: "filename for the exported scene",
	},
}

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() > 1 {
		return errors.New("expected at most one scene file argument")
	}

	sc, err := loadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sc.Stats())
	return nil
}

// Write a scene in the text scene format. The scene is read from the first
// argument or, if that is omitted, the built-in scene is used.
func ExportScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	outFile := ctx.String("out")
	if outFile == "" {
		return errors.New("missing output scene file")
	}
	if ctx.NArg() > 1 {
		return errors.New("expected at most one scene file argument")
	}

	sc, err := loadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sc.Stats())
	return writer.WriteScene(sc, outFile)
}
