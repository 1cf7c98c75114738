package cmd

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Writing a frame to this path streams it to stdout as PNG.
const stdoutPath = "-"

type frameEncoder func(w io.Writer, img image.Image) error

// Select an image encoder based on the extension of the output path.
func encoderFor(path string) (frameEncoder, error) {
	if path == stdoutPath {
		return png.Encode, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return encodeTIFF, nil
	case ".ppm":
		return encodePPM, nil
	}

	return nil, fmt.Errorf("unsupported image format '%s'; use one of .png, .bmp, .tif, .tiff or .ppm", ext)
}

// Encode frame and write it to path.
func writeFrame(path string, img image.Image, encode frameEncoder) error {
	start := time.Now()

	if path == stdoutPath {
		return encode(os.Stdout, img)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = encode(f, img); err != nil {
		return fmt.Errorf("could not encode frame: %w", err)
	}
	if err = f.Close(); err != nil {
		return err
	}

	logger.Noticef("wrote frame to %s in %d ms", path, time.Since(start).Nanoseconds()/1000000)
	return nil
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

// Write img as a plain (P3) portable pixmap.
func encodePPM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8)
		}
	}

	return bw.Flush()
}
