package types

// A ray is the parametric line P(t) = Origin + t * Dir. The direction is not
// normalized.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// Evaluate the ray at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Get the normalized ray direction. The result is undefined for rays with a
// zero length direction.
func (r Ray) UnitDir() Vec3 {
	return r.Dir.Normalize()
}
