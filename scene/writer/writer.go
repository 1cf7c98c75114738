package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/tichavskym/ray-tracer/log"
	"github.com/tichavskym/ray-tracer/scene"
)

var logger = log.New("scene-writer")

// Write scene definition to a file using the text scene format.
func WriteScene(sc *scene.Scene, sceneFile string) error {
	logger.Infof("writing scene to %s", sceneFile)
	start := time.Now()

	f, err := os.Create(sceneFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = Write(sc, f); err != nil {
		return err
	}

	logger.Infof("wrote %d materials and %d spheres in %d ms", len(sc.Materials), len(sc.Spheres), time.Since(start).Nanoseconds()/1000000)
	return f.Close()
}

// Write scene definition to w. Materials without a name, or whose name
// clashes with an earlier material, are assigned a generated one.
func Write(sc *scene.Scene, w io.Writer) error {
	bw := bufio.NewWriter(w)

	names := make(map[*scene.Material]string, len(sc.Materials))
	used := make(map[string]struct{}, len(sc.Materials))
	for matIndex, mat := range sc.Materials {
		name := mat.Name
		if _, taken := used[name]; name == "" || taken {
			name = fmt.Sprintf("material_%d", matIndex)
		}
		names[mat] = name
		used[name] = struct{}{}

		switch mat.Type {
		case scene.LambertianMaterial:
			fmt.Fprintf(bw, "newmtl %s lambertian %s %s %s\n", name, ftoa(mat.Albedo[0]), ftoa(mat.Albedo[1]), ftoa(mat.Albedo[2]))
		case scene.MetalMaterial:
			fmt.Fprintf(bw, "newmtl %s metal %s %s %s %s\n", name, ftoa(mat.Albedo[0]), ftoa(mat.Albedo[1]), ftoa(mat.Albedo[2]), ftoa(mat.Fuzz))
		default:
			return fmt.Errorf("writer: unsupported material type %s", mat.Type)
		}
	}

	var curMaterial *scene.Material
	for _, sp := range sc.Spheres {
		if sp.Material != curMaterial {
			name, exists := names[sp.Material]
			if !exists {
				return scene.ErrUnknownMaterial
			}
			fmt.Fprintf(bw, "usemtl %s\n", name)
			curMaterial = sp.Material
		}
		fmt.Fprintf(bw, "sphere %s %s %s %s\n", ftoa(sp.Center[0]), ftoa(sp.Center[1]), ftoa(sp.Center[2]), ftoa(sp.Radius))
	}

	return bw.Flush()
}

// Format v with the fewest digits that parse back to the same value.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
