package scene

import (
	"math"

	"github.com/tichavskym/ray-tracer/types"
)

type Sphere struct {
	Center types.Vec3
	Radius float64

	// The sphere material. Must be added to the scene before the sphere.
	Material *Material
}

// Create new sphere.
func NewSphere(center types.Vec3, radius float64, material *Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect ray with the sphere. Only intersections whose ray parameter lies
// in (tMin, tMax) count. When the ray crosses the sphere twice the nearer
// intersection is reported. If there is no valid intersection rec is left
// untouched and false is returned.
//
// Points on the ray satisfy |O + tD - C|^2 = r^2 which expands to a quadratic
// in t with a = D.D, b = 2 D.(O-C) and c = (O-C).(O-C) - r^2.
func (s *Sphere) Hit(r types.Ray, tMin, tMax float64, rec *HitRecord) bool {
	oc := r.Origin.Sub(s.Center)
	a := r.Dir.Dot(r.Dir)
	b := 2.0 * r.Dir.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-b - sqrtD) / (2 * a)
	// Negated so that NaN roots from degenerate rays are rejected.
	if !(root > tMin && root < tMax) {
		root = (-b + sqrtD) / (2 * a)
		if !(root > tMin && root < tMax) {
			return false
		}
	}

	rec.T = root
	rec.Point = r.At(root)
	rec.Normal = rec.Point.Sub(s.Center).Div(s.Radius)
	rec.Material = s.Material
	return true
}
