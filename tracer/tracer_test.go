package tracer

import (
	"image/color"
	"math"
	"testing"

	"github.com/tichavskym/ray-tracer/scene"
	"github.com/tichavskym/ray-tracer/types"
)

const (
	testFrameW = 400
	testFrameH = 225
)

func singleSphereScene(t *testing.T) *scene.Scene {
	sc := scene.NewScene()
	sc.SetCamera(scene.NewCamera(2.0, 16.0/9.0, 1.0))

	mat := scene.NewLambertian(types.RGB(0.5, 0.5, 0.5))
	if err := sc.AddMaterial(mat); err != nil {
		t.Fatal(err)
	}
	if err := sc.AddSphere(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, mat)); err != nil {
		t.Fatal(err)
	}
	return sc
}

func testOptions() Options {
	return Options{
		FrameW:          testFrameW,
		FrameH:          testFrameH,
		SamplesPerPixel: 4,
		MaxDepth:        10,
		Seed:            42,
	}
}

func TestShadeDepthExhausted(t *testing.T) {
	sc := singleSphereScene(t)
	sampler := types.NewPixelSampler(0)

	rays := []types.Ray{
		types.NewRay(types.Vec3{}, types.XYZ(0, 0, -1)),
		types.NewRay(types.Vec3{}, types.XYZ(0, 1, 0)),
		types.NewRay(types.XYZ(3, 3, 3), types.XYZ(-1, 0, 0)),
	}
	for specIndex, r := range rays {
		if got := Shade(r, sc, 0, sampler); got != types.Black {
			t.Fatalf("[spec %d] expected black at depth 0; got %v", specIndex, got)
		}
	}
}

func TestShadeMiss(t *testing.T) {
	sc := singleSphereScene(t)
	r := types.NewRay(types.Vec3{}, types.XYZ(0, 1, 0))

	exp := Background(r)
	if got := Shade(r, sc, 5, types.NewPixelSampler(0)); got != exp {
		t.Fatalf("expected background %v; got %v", exp, got)
	}
}

func TestShadeAbsorbed(t *testing.T) {
	sc := scene.NewScene()
	mat := scene.NewMetal(types.White, 1.0)
	sc.AddMaterial(mat)
	sc.AddSphere(scene.NewSphere(types.XYZ(0, 0, -2), 0.5, mat))

	// The draws (0.5, 0.5, 0.25) map to the point (0, 0, -0.5) so the fuzz
	// perturbation is (0, 0, -1) and cancels the head-on reflection (0, 0, 1).
	sampler := &cycleSampler{values: []float64{0.5, 0.5, 0.25}}
	got := Shade(types.NewRay(types.Vec3{}, types.XYZ(0, 0, -1)), sc, 5, sampler)
	if got != types.Black {
		t.Fatalf("expected absorbed ray to shade black; got %v", got)
	}
}

func TestBackground(t *testing.T) {
	type spec struct {
		dir types.Vec3
		exp types.Color
	}

	specs := []spec{
		{types.XYZ(0, 1, 0), types.SkyBlue},
		{types.XYZ(0, -1, 0), types.White},
		{types.XYZ(0, 0, -1), types.RGB(0.75, 0.85, 1.0)},
		{types.XYZ(0, 10, 0), types.SkyBlue},
	}

	for specIndex, s := range specs {
		got := Background(types.NewRay(types.Vec3{}, s.dir))
		for c := 0; c < 3; c++ {
			if math.Abs(got[c]-s.exp[c]) > 1e-9 {
				t.Fatalf("[spec %d] expected %v; got %v", specIndex, s.exp, got)
			}
		}
	}
}

func TestCenterPixelHitsSphere(t *testing.T) {
	sc := singleSphereScene(t)
	tr := New("test", sc, testOptions())

	y := uint32(testFrameH / 2)
	row := make([]color.RGBA, testFrameW)
	tr.TraceRow(y, row)

	// The sphere scatters with albedo 0.5 so the blue channel cannot reach
	// the background's fully saturated value.
	center := row[testFrameW/2]
	if center.B == 255 {
		t.Fatalf("expected center pixel to show the sphere; got %v", center)
	}
	if center.A != 255 {
		t.Fatalf("expected opaque pixel; got alpha %d", center.A)
	}
}

func TestTopLeftPixelIsBackground(t *testing.T) {
	sc := singleSphereScene(t)
	opts := testOptions()
	tr := New("test", sc, opts)

	row := make([]color.RGBA, testFrameW)
	tr.TraceRow(0, row)

	// Replay the sampling sequence of pixel (0, 0). No bounces take place
	// so the jitter draws are the only values consumed.
	sampler := types.NewPixelSampler(opts.Seed)
	sampler.Reseed(0)
	var acc types.Accumulator
	for s := uint32(0); s < opts.SamplesPerPixel; s++ {
		u := sampler.Float64() * (1.0 / float64(testFrameW-1))
		v := (float64(testFrameH-1) + sampler.Float64()) * (1.0 / float64(testFrameH-1))
		acc.AddSample(Background(sc.Camera.Ray(u, v)))
	}

	exp := acc.Resolve(opts.SamplesPerPixel)
	if row[0] != exp {
		t.Fatalf("expected top-left pixel to be background %v; got %v", exp, row[0])
	}
}

func TestTraceRowDeterministic(t *testing.T) {
	sc := singleSphereScene(t)
	opts := testOptions()

	y := uint32(testFrameH / 2)
	rowA := make([]color.RGBA, testFrameW)
	rowB := make([]color.RGBA, testFrameW)

	trA := New("a", sc, opts)
	trA.TraceRow(y, rowA)

	// Trace other rows first so the second tracer's generator is in a
	// different state when it reaches row y.
	trB := New("b", sc, opts)
	scratch := make([]color.RGBA, testFrameW)
	trB.TraceRow(0, scratch)
	trB.TraceRow(y+1, scratch)
	trB.TraceRow(y, rowB)

	for x := range rowA {
		if rowA[x] != rowB[x] {
			t.Fatalf("[pixel %d] expected %v; got %v", x, rowA[x], rowB[x])
		}
	}

	if stats := trB.Stats(); stats.Rows != 3 {
		t.Fatalf("expected tracer stats to report 3 rows; got %d", stats.Rows)
	}
	trB.ResetStats()
	if stats := trB.Stats(); stats.Rows != 0 || stats.RenderTime != 0 {
		t.Fatalf("expected stats to be reset; got %+v", stats)
	}
}

func TestTraceRowSeedChangesOutput(t *testing.T) {
	sc := singleSphereScene(t)
	optsA := testOptions()
	optsB := testOptions()
	optsB.Seed = optsA.Seed + 1

	y := uint32(testFrameH / 2)
	rowA := make([]color.RGBA, testFrameW)
	rowB := make([]color.RGBA, testFrameW)
	New("a", sc, optsA).TraceRow(y, rowA)
	New("b", sc, optsB).TraceRow(y, rowB)

	for x := range rowA {
		if rowA[x] != rowB[x] {
			return
		}
	}
	t.Fatal("expected different seeds to produce a different row")
}

func TestSinglePixelFrame(t *testing.T) {
	sc := singleSphereScene(t)
	opts := testOptions()
	opts.FrameW, opts.FrameH = 1, 1

	row := make([]color.RGBA, 1)
	New("test", sc, opts).TraceRow(0, row)
	if row[0].A != 255 {
		t.Fatalf("expected an opaque pixel; got %v", row[0])
	}
}

type cycleSampler struct {
	values []float64
	next   int
}

func (s *cycleSampler) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
