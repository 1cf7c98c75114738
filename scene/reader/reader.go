package reader

import (
	"github.com/tichavskym/ray-tracer/asset"
	"github.com/tichavskym/ray-tracer/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from a local file or a http(s) URL.
func ReadScene(location string) (*scene.Scene, error) {
	res, err := asset.Open(location)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	var r Reader = newTextSceneReader()
	return r.Read(res)
}
