package config

import (
	"errors"
	"fmt"
	"io/fs"
)

// Tuning file names inside a tuning directory.
const (
	PhysicsFile    = "physics.yaml"
	IdleCameraFile = "idle_camera.yaml"
)

// Tuning bundles the gameplay tuning documents.
type Tuning struct {
	Physics    Physics
	IdleCamera IdleCamera
}

// DefaultTuning returns the built-in tuning.
func DefaultTuning() Tuning {
	return Tuning{
		Physics:    DefaultPhysics(),
		IdleCamera: DefaultIdleCamera(),
	}
}

// LoadTuning reads the tuning documents from fsys. A missing document keeps
// its defaults; a broken one is an error.
func LoadTuning(fsys fs.FS) (Tuning, error) {
	t := DefaultTuning()

	data, err := fs.ReadFile(fsys, PhysicsFile)
	switch {
	case err == nil:
		if t.Physics, err = ParsePhysics(data); err != nil {
			return Tuning{}, fmt.Errorf("%s: %w", PhysicsFile, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Tuning{}, fmt.Errorf("failed to read %s: %w", PhysicsFile, err)
	}

	data, err = fs.ReadFile(fsys, IdleCameraFile)
	switch {
	case err == nil:
		if t.IdleCamera, err = ParseIdleCamera(data); err != nil {
			return Tuning{}, fmt.Errorf("%s: %w", IdleCameraFile, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Tuning{}, fmt.Errorf("failed to read %s: %w", IdleCameraFile, err)
	}

	return t, nil
}
