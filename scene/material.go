package scene

import "github.com/tichavskym/ray-tracer/types"

type MaterialType uint8

const (
	// Diffuse surface that scatters light in random directions.
	LambertianMaterial MaterialType = iota

	// Reflective surface with an optional fuzzy reflection.
	MetalMaterial
)

func (t MaterialType) String() string {
	switch t {
	case LambertianMaterial:
		return "lambertian"
	case MetalMaterial:
		return "metal"
	}
	return "unknown"
}

// Defines a scene material. Materials are read-only once created and can be
// shared between spheres.
type Material struct {
	// The type of the material.
	Type MaterialType

	// An optional name used by scene files.
	Name string

	// Fraction of incoming light reflected per channel.
	Albedo types.Color

	// Reflection perturbation in [0, 1] (metal materials only).
	Fuzz float64
}

// Create a diffuse material.
func NewLambertian(albedo types.Color) *Material {
	return &Material{
		Type:   LambertianMaterial,
		Albedo: albedo,
	}
}

// Create a metal material. Fuzz values outside [0, 1] are clamped.
func NewMetal(albedo types.Color, fuzz float64) *Material {
	if fuzz > 1 {
		fuzz = 1
	} else if fuzz < 0 {
		fuzz = 0
	}
	return &Material{
		Type:   MetalMaterial,
		Albedo: albedo,
		Fuzz:   fuzz,
	}
}

// Scatter an incoming ray that hit a surface with this material. The method
// returns the outgoing ray and the attenuation to apply to the light it
// carries back. If ok is false the ray was absorbed.
func (m *Material) Scatter(hit *HitRecord, rayIn types.Ray, s types.Sampler) (scattered types.Ray, attenuation types.Color, ok bool) {
	switch m.Type {
	case LambertianMaterial:
		dir := hit.Normal.Add(types.RandomUnitVec3(s))
		if dir.NearZero() {
			dir = hit.Normal
		}
		return types.NewRay(hit.Point, dir), m.Albedo, true
	case MetalMaterial:
		reflected := reflect(rayIn.UnitDir(), hit.Normal)
		scattered = types.NewRay(hit.Point, reflected.Add(types.RandomUnitVec3(s).Mul(m.Fuzz)))
		return scattered, m.Albedo, scattered.Dir.Dot(hit.Normal) > 0
	}

	return types.Ray{}, types.Black, false
}

// Mirror v about the surface normal n.
func reflect(v, n types.Vec3) types.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}
