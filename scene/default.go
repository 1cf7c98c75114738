package scene

import "github.com/tichavskym/ray-tracer/types"

// Build the stock scene: a diffuse sphere flanked by a polished and a brushed
// metal sphere, resting on a large diffuse ground sphere. The scene has no
// camera attached.
func Default() *Scene {
	ground := NewLambertian(types.RGB(0.8, 0.8, 0.0))
	ground.Name = "ground"
	center := NewLambertian(types.RGB(0.7, 0.3, 0.3))
	center.Name = "center"
	left := NewMetal(types.RGB(0.8, 0.8, 0.8), 0.3)
	left.Name = "left"
	right := NewMetal(types.RGB(0.8, 0.6, 0.2), 1.0)
	right.Name = "right"

	sc := NewScene()
	for _, mat := range []*Material{ground, center, left, right} {
		// Materials are fresh; this cannot fail.
		_ = sc.AddMaterial(mat)
	}

	for _, sp := range []*Sphere{
		NewSphere(types.XYZ(0, -100.5, -1), 100, ground),
		NewSphere(types.XYZ(0, 0, -1), 0.5, center),
		NewSphere(types.XYZ(-1, 0, -1), 0.5, left),
		NewSphere(types.XYZ(1, 0, -1), 0.5, right),
	} {
		_ = sc.AddSphere(sp)
	}

	return sc
}
