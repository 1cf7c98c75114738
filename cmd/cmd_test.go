package cmd

import (
	"bytes"
	"flag"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testContext(t *testing.T, flags []cli.Flag, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range flags {
		f.Apply(set)
	}
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 10, 255})
	img.SetRGBA(1, 0, color.RGBA{1, 2, 3, 255})
	return img
}

func TestEncoderFor(t *testing.T) {
	type spec struct {
		path   string
		expErr bool
	}

	specs := []spec{
		{"frame.png", false},
		{"frame.PNG", false},
		{"frame.bmp", false},
		{"frame.tif", false},
		{"frame.tiff", false},
		{"frame.ppm", false},
		{"-", false},
		{"frame.jpg", true},
		{"frame", true},
	}

	for specIndex, s := range specs {
		_, err := encoderFor(s.path)
		if s.expErr != (err != nil) {
			t.Fatalf("[spec %d] expected error to be %t; got %v", specIndex, s.expErr, err)
		}
	}
}

func TestEncodePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := encodePPM(&buf, testImage()); err != nil {
		t.Fatal(err)
	}

	expOutput := "P3\n2 1\n255\n255 0 10\n1 2 3\n"
	if buf.String() != expOutput {
		t.Fatalf("expected output %q; got %q", expOutput, buf.String())
	}
}

func TestWriteFrameFormats(t *testing.T) {
	type spec struct {
		ext    string
		decode func(io.Reader) (image.Image, error)
	}

	specs := []spec{
		{".png", png.Decode},
		{".bmp", bmp.Decode},
		{".tiff", tiff.Decode},
	}

	src := testImage()
	for specIndex, s := range specs {
		path := filepath.Join(t.TempDir(), "frame"+s.ext)
		encode, err := encoderFor(path)
		if err != nil {
			t.Fatalf("[spec %d] %v", specIndex, err)
		}
		if err = writeFrame(path, src, encode); err != nil {
			t.Fatalf("[spec %d] %v", specIndex, err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("[spec %d] %v", specIndex, err)
		}
		img, err := s.decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("[spec %d] %v", specIndex, err)
		}

		for x := 0; x < 2; x++ {
			er, eg, eb, _ := src.At(x, 0).RGBA()
			r, g, b, _ := img.At(x, 0).RGBA()
			if er != r || eg != g || eb != b {
				t.Fatalf("[spec %d] expected pixel %d to be (%d, %d, %d); got (%d, %d, %d)", specIndex, x, er, eg, eb, r, g, b)
			}
		}
	}
}

func TestRenderFrame(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.ppm")
	ctx := testContext(t, RenderFlags,
		"--width", "8",
		"--spp", "2",
		"--depth", "3",
		"--workers", "2",
		"--out", out,
	)

	if err := RenderFrame(ctx); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	// 8 / (16 / 9) = 4.5 rounds up to 5 rows.
	expHeader := "P3\n8 5\n255\n"
	if !strings.HasPrefix(string(data), expHeader) {
		t.Fatalf("expected output to start with %q; got %q", expHeader, string(data[:len(expHeader)]))
	}
	if lines := strings.Count(string(data), "\n"); lines != 3+8*5 {
		t.Fatalf("expected %d lines; got %d", 3+8*5, lines)
	}
}

func TestRenderFrameErrors(t *testing.T) {
	dir := t.TempDir()

	type spec struct {
		args     []string
		expError string
	}

	specs := []spec{
		{[]string{"--out", filepath.Join(dir, "frame.gif")}, "unsupported image format '.gif'; use one of .png, .bmp, .tif, .tiff or .ppm"},
		{[]string{"--aspect", "0", "--out", filepath.Join(dir, "frame.png")}, "aspect ratio must be positive"},
		{[]string{"--viewport-height", "0", "--focal-length", "0", "--out", filepath.Join(dir, "frame.png")}, "viewport-height must be positive"},
		{[]string{"--focal-length", "-1", "--out", filepath.Join(dir, "frame.png")}, "focal-length must be positive"},
		{[]string{"--spp", "-1", "--out", filepath.Join(dir, "frame.png")}, "spp must not be negative"},
		{[]string{"--workers", "0", "--width", "4", "--out", filepath.Join(dir, "frame.png")}, "renderer: worker pool needs at least one worker"},
	}

	for specIndex, s := range specs {
		err := RenderFrame(testContext(t, RenderFlags, s.args...))
		if err == nil || err.Error() != s.expError {
			t.Fatalf("[spec %d] expected error %q; got %v", specIndex, s.expError, err)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "frame.png")); !os.IsNotExist(err) {
		t.Fatalf("expected no frame to be written; got %v", err)
	}
}

func TestExportAndRenderScene(t *testing.T) {
	dir := t.TempDir()
	sceneFile := filepath.Join(dir, "default.scene")

	if err := ExportScene(testContext(t, ExportFlags, "--out", sceneFile)); err != nil {
		t.Fatal(err)
	}
	if err := ShowSceneInfo(testContext(t, nil, sceneFile)); err != nil {
		t.Fatal(err)
	}

	// Re-export the exported file; the output must be identical.
	copyFile := filepath.Join(dir, "copy.scene")
	if err := ExportScene(testContext(t, ExportFlags, "--out", copyFile, sceneFile)); err != nil {
		t.Fatal(err)
	}
	orig, _ := os.ReadFile(sceneFile)
	copied, _ := os.ReadFile(copyFile)
	if !bytes.Equal(orig, copied) {
		t.Fatalf("expected re-exported scene to match:\n%s\ngot:\n%s", orig, copied)
	}

	out := filepath.Join(dir, "frame.png")
	ctx := testContext(t, RenderFlags,
		"--scene", sceneFile,
		"--width", "4",
		"--spp", "1",
		"--depth", "2",
		"--workers", "1",
		"--out", out,
	)
	if err := RenderFrame(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}
}

func TestSceneCommandErrors(t *testing.T) {
	if err := ShowSceneInfo(testContext(t, nil, "a", "b")); err == nil {
		t.Fatal("expected an error for multiple scene arguments")
	}
	if err := ShowSceneInfo(testContext(t, nil, filepath.Join(t.TempDir(), "missing.scene"))); err == nil {
		t.Fatal("expected an error for a missing scene file")
	}
	if err := ExportScene(testContext(t, ExportFlags, "--out", "")); err == nil {
		t.Fatal("expected an error for an empty output path")
	}
}

func TestSetupLogging(t *testing.T) {
	flags := []cli.Flag{
		cli.StringFlag{Name: "log-level"},
	}
	set := flag.NewFlagSet("global", flag.ContinueOnError)
	for _, f := range flags {
		f.Apply(set)
	}
	if err := set.Parse([]string{"--log-level", "loud"}); err != nil {
		t.Fatal(err)
	}
	parent := cli.NewContext(cli.NewApp(), set, nil)
	ctx := cli.NewContext(cli.NewApp(), flag.NewFlagSet("child", flag.ContinueOnError), parent)

	if err := setupLogging(ctx); err == nil {
		t.Fatal("expected an error for an unknown log level")
	}
}
