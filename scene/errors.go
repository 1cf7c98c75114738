package scene

import "errors"

var (
	ErrDuplicateMaterial = errors.New("scene: material already added")
	ErrDuplicateSphere   = errors.New("scene: sphere already added")
	ErrNoMaterial        = errors.New("scene: no material assigned to sphere")
	ErrUnknownMaterial   = errors.New("scene: sphere references unknown material; ensure that the material is added to the scene before adding the sphere")
	ErrInvalidRadius     = errors.New("scene: sphere radius must be positive")
)
