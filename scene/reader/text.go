package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/tichavskym/ray-tracer/asset"
	"github.com/tichavskym/ray-tracer/log"
	"github.com/tichavskym/ray-tracer/scene"
	"github.com/tichavskym/ray-tracer/types"
)

var logger = log.New("scene-reader")

// Parses the line oriented scene format:
//
//	# comment
//	newmtl <name> lambertian <r> <g> <b>
//	newmtl <name> metal <r> <g> <b> <fuzz>
//	usemtl <name>
//	sphere <cx> <cy> <cz> <radius>
//
// Spheres use the material selected by the last usemtl statement.
type textSceneReader struct {
	sc *scene.Scene

	// Defined materials by name.
	materials map[string]*scene.Material

	// Currently selected material.
	curMaterial *scene.Material
}

func newTextSceneReader() *textSceneReader {
	return &textSceneReader{
		sc:        scene.NewScene(),
		materials: make(map[string]*scene.Material),
	}
}

// Read scene definition.
func (p *textSceneReader) Read(res *asset.Resource) (*scene.Scene, error) {
	var lineNum int
	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx != -1 {
			line = line[:idx]
		}
		lineTokens := strings.Fields(line)
		if len(lineTokens) == 0 {
			continue
		}

		var err error
		switch lineTokens[0] {
		case "newmtl":
			err = p.parseMaterial(lineTokens)
		case "usemtl":
			if len(lineTokens) != 2 {
				err = fmt.Errorf("unsupported syntax for 'usemtl'; expected 1 argument; got %d", len(lineTokens)-1)
				break
			}
			mat, exists := p.materials[lineTokens[1]]
			if !exists {
				err = fmt.Errorf("undefined material with name '%s'", lineTokens[1])
				break
			}
			p.curMaterial = mat
		case "sphere":
			err = p.parseSphere(lineTokens)
		default:
			err = fmt.Errorf("unknown statement '%s'", lineTokens[0])
		}

		if err != nil {
			return nil, emitError(res.Path(), lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, emitError(res.Path(), lineNum, err)
	}

	logger.Infof("read %d materials and %d spheres from %s", len(p.sc.Materials), len(p.sc.Spheres), res.Name())
	return p.sc, nil
}

func (p *textSceneReader) parseMaterial(lineTokens []string) error {
	if len(lineTokens) < 3 {
		return fmt.Errorf("unsupported syntax for 'newmtl'; expected at least 2 arguments; got %d", len(lineTokens)-1)
	}

	name, kind := lineTokens[1], lineTokens[2]
	if _, exists := p.materials[name]; exists {
		return fmt.Errorf("material '%s' already defined", name)
	}

	// Shift tokens so that the albedo parser sees <kind> <r> <g> <b> ...
	albedo, err := parseVec3(lineTokens[2:])
	if err != nil {
		return err
	}

	var mat *scene.Material
	switch kind {
	case "lambertian":
		if len(lineTokens) != 6 {
			return fmt.Errorf("unsupported syntax for 'lambertian'; expected 3 arguments; got %d", len(lineTokens)-3)
		}
		mat = scene.NewLambertian(types.Color(albedo))
	case "metal":
		if len(lineTokens) != 7 {
			return fmt.Errorf("unsupported syntax for 'metal'; expected 4 arguments; got %d", len(lineTokens)-3)
		}
		fuzz, err := parseFloat64(lineTokens[5:])
		if err != nil {
			return err
		}
		mat = scene.NewMetal(types.Color(albedo), fuzz)
	default:
		return fmt.Errorf("unsupported material type '%s'", kind)
	}
	mat.Name = name

	if err = p.sc.AddMaterial(mat); err != nil {
		return err
	}
	p.materials[name] = mat
	return nil
}

func (p *textSceneReader) parseSphere(lineTokens []string) error {
	if len(lineTokens) != 5 {
		return fmt.Errorf("unsupported syntax for 'sphere'; expected 4 arguments; got %d", len(lineTokens)-1)
	}
	if p.curMaterial == nil {
		return fmt.Errorf("no material selected; use 'usemtl' before 'sphere'")
	}

	center, err := parseVec3(lineTokens)
	if err != nil {
		return err
	}
	radius, err := parseFloat64(lineTokens[3:])
	if err != nil {
		return err
	}

	return p.sc.AddSphere(scene.NewSphere(center, radius, p.curMaterial))
}

// Prefix err with the file and line where it occurred.
func emitError(file string, line int, err error) error {
	return fmt.Errorf("[%s: %d] error: %w", file, line, err)
}

// Parse the first argument of a row as a float.
func parseFloat64(lineTokens []string) (float64, error) {
	if len(lineTokens) < 2 {
		return 0, fmt.Errorf("unsupported syntax for '%s'; expected 1 argument; got %d", lineTokens[0], len(lineTokens)-1)
	}

	return strconv.ParseFloat(lineTokens[1], 64)
}

// Parse the first three arguments of a row as a Vec3.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf("unsupported syntax for '%s'; expected 3 arguments; got %d", lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 64)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = coord
	}
	return v, nil
}
