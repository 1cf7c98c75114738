package types

import (
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// Linear RGB light energy. Channels are unbounded while sampling.
type Color f64.Vec3

var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	SkyBlue = Color{0.5, 0.7, 1.0}
)

func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

func (c Color) R() float64 { return c[0] }
func (c Color) G() float64 { return c[1] }
func (c Color) B() float64 { return c[2] }

// Add a color.
func (c Color) Add(c2 Color) Color {
	return Color{c[0] + c2[0], c[1] + c2[1], c[2] + c2[2]}
}

// Multiply each channel with the matching channel of an attenuation color.
func (c Color) Attenuate(by Color) Color {
	return Color{c[0] * by[0], c[1] * by[1], c[2] * by[2]}
}

// Multiply all channels with a scalar.
func (c Color) Scale(s float64) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s}
}

// Linearly blend from a (t = 0) to b (t = 1).
func Lerp(a, b Color, t float64) Color {
	return a.Scale(1.0 - t).Add(b.Scale(t))
}

// An Accumulator sums the samples taken for a single pixel.
type Accumulator struct {
	sum Color
}

// Add a sample. No clamping takes place until the samples are resolved.
func (a *Accumulator) AddSample(c Color) {
	a.sum = a.sum.Add(c)
}

// Average the accumulated samples, apply gamma 2 correction and map each
// channel to [0, 255].
func (a *Accumulator) Resolve(samplesPerPixel uint32) color.RGBA {
	scale := 1.0 / float64(samplesPerPixel)
	return color.RGBA{
		R: toByte(a.sum[0] * scale),
		G: toByte(a.sum[1] * scale),
		B: toByte(a.sum[2] * scale),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	return uint8(256.0 * clamp(math.Sqrt(v), 0.0, 0.999))
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
