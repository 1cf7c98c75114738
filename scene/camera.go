package scene

import (
	"fmt"

	"github.com/tichavskym/ray-tracer/types"
)

// The camera models an image sensor placed focalLength units in front of an
// eye located at the origin and looking down the -Z axis. It is immutable once
// created and may be shared by concurrent tracers.
type Camera struct {
	Origin          types.Vec3
	Horizontal      types.Vec3
	Vertical        types.Vec3
	LowerLeftCorner types.Vec3
}

// Create a camera whose viewport has the given height and aspect ratio.
func NewCamera(viewportHeight, aspectRatio, focalLength float64) *Camera {
	origin := types.Vec3{}
	horizontal := types.XYZ(aspectRatio*viewportHeight, 0, 0)
	vertical := types.XYZ(0, viewportHeight, 0)

	return &Camera{
		Origin:     origin,
		Horizontal: horizontal,
		Vertical:   vertical,
		LowerLeftCorner: origin.
			Sub(horizontal.Div(2)).
			Sub(vertical.Div(2)).
			Sub(types.XYZ(0, 0, focalLength)),
	}
}

// Generate a ray from the eye through the viewport point with normalized
// coordinates (u, v). (0, 0) maps to the lower-left viewport corner.
func (c *Camera) Ray(u, v float64) types.Ray {
	return types.NewRay(
		c.Origin,
		c.LowerLeftCorner.Add(c.Horizontal.Mul(u)).Add(c.Vertical.Mul(v)).Sub(c.Origin),
	)
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera:\nOrigin : (%3.3f, %3.3f, %3.3f)\nLL     : (%3.3f, %3.3f, %3.3f)\nH      : (%3.3f, %3.3f, %3.3f)\nV      : (%3.3f, %3.3f, %3.3f)",
		c.Origin[0], c.Origin[1], c.Origin[2],
		c.LowerLeftCorner[0], c.LowerLeftCorner[1], c.LowerLeftCorner[2],
		c.Horizontal[0], c.Horizontal[1], c.Horizontal[2],
		c.Vertical[0], c.Vertical[1], c.Vertical[2],
	)
}
