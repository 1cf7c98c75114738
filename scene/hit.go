package scene

import "github.com/tichavskym/ray-tracer/types"

// Stores information about the closest ray-surface intersection found so far.
type HitRecord struct {
	// Intersection point.
	Point types.Vec3

	// Outward facing unit normal at Point.
	Normal types.Vec3

	// Ray parameter at the intersection.
	T float64

	// The material of the surface that was hit.
	Material *Material
}
