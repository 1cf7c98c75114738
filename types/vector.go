package types

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Components whose magnitude is below this value are treated as zero.
const nearZeroEpsilon = 1e-7

type Vec3 f64.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Divide a 3 component vector by a scalar. Dividing by zero yields Inf/NaN
// components.
func (v Vec3) Div(s float64) Vec3 {
	return v.Mul(1.0 / s)
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float64 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Get the squared vector length.
func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

// Get 3 component vector length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize 3 component vector. The caller must ensure that v is not the zero
// vector.
func (v Vec3) Normalize() Vec3 {
	return v.Div(v.Len())
}

// Returns true if all vector components are close to zero.
func (v Vec3) NearZero() bool {
	return math.Abs(v[0]) < nearZeroEpsilon &&
		math.Abs(v[1]) < nearZeroEpsilon &&
		math.Abs(v[2]) < nearZeroEpsilon
}

// Generate a random unit vector. Points are drawn from the [-1, 1) cube until
// one lands inside the unit sphere and then projected onto its surface, which
// gives a uniform distribution of directions.
func RandomUnitVec3(s Sampler) Vec3 {
	for {
		p := Vec3{
			2*s.Float64() - 1,
			2*s.Float64() - 1,
			2*s.Float64() - 1,
		}
		lenSq := p.LenSq()
		if lenSq == 0 || lenSq >= 1 {
			continue
		}
		return p.Div(math.Sqrt(lenSq))
	}
}
