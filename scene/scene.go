package scene

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/tichavskym/ray-tracer/types"
)

// A scene is an ordered list of spheres plus the materials they use and the
// camera that views them. Scenes are populated before rendering and must not
// be modified while a render is in progress.
type Scene struct {
	Camera *Camera

	Materials []*Material
	Spheres   []*Sphere
}

func NewScene() *Scene {
	return &Scene{
		Materials: make([]*Material, 0),
		Spheres:   make([]*Sphere, 0),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Add a material to the scene.
func (s *Scene) AddMaterial(material *Material) error {
	for _, mat := range s.Materials {
		if mat == material {
			return ErrDuplicateMaterial
		}
	}
	s.Materials = append(s.Materials, material)
	return nil
}

// Add a sphere to the scene.
func (s *Scene) AddSphere(sphere *Sphere) error {
	for _, sp := range s.Spheres {
		if sp == sphere {
			return ErrDuplicateSphere
		}
	}
	if sphere.Radius <= 0 {
		return ErrInvalidRadius
	}
	if sphere.Material == nil {
		return ErrNoMaterial
	}
	for _, mat := range s.Materials {
		if mat == sphere.Material {
			s.Spheres = append(s.Spheres, sphere)
			return nil
		}
	}

	return ErrUnknownMaterial
}

// Find the closest intersection of r with any scene sphere in (tMin, tMax).
// Every sphere is tested and the upper bound shrinks with each accepted hit,
// so the result does not depend on sphere order.
func (s *Scene) Hit(r types.Ray, tMin, tMax float64, rec *HitRecord) bool {
	hitAnything := false
	closest := tMax
	for _, sp := range s.Spheres {
		if sp.Hit(r, tMin, closest, rec) {
			hitAnything = true
			closest = rec.T
		}
	}
	return hitAnything
}

// Build a table with the scene materials and spheres.
func (s *Scene) Stats() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Material", "Type", "Albedo", "Fuzz", "Spheres"})
	for _, mat := range s.Materials {
		var users int
		for _, sp := range s.Spheres {
			if sp.Material == mat {
				users++
			}
		}
		table.Append([]string{
			mat.Name,
			mat.Type.String(),
			fmt.Sprintf("(%.3f, %.3f, %.3f)", mat.Albedo[0], mat.Albedo[1], mat.Albedo[2]),
			fmt.Sprintf("%.3f", mat.Fuzz),
			fmt.Sprintf("%d", users),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%d", len(s.Spheres))})
	table.Render()

	return buf.String()
}
