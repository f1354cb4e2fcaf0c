package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// ErrNoCamera is returned when validating a scene without a camera
var ErrNoCamera = errors.New("scene has no camera")

// Scene contains all the elements needed for rendering.
// A scene exclusively owns its shapes and is read-only once rendering starts.
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	Shapes         []geometry.Shape // Objects in the scene
	SamplingConfig SamplingConfig
}

// SamplingConfig contains the scene's recommended rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of paths traced per pixel
	MaxBounces      int // Maximum surface interactions per path
}

// NewScene creates an empty scene with the given camera
func NewScene(name string, camera *geometry.Camera, config SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		Camera:         camera,
		Shapes:         make([]geometry.Shape, 0),
		SamplingConfig: config,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// ClosestHit finds the nearest intersection along ray with a linear scan.
// Only a strictly closer hit replaces the current one, so the earliest added
// shape wins exact distance ties.
func (s *Scene) ClosestHit(ray core.Ray) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	for _, shape := range s.Shapes {
		hit, ok := shape.Hit(ray)
		if !ok {
			continue
		}
		if closest == nil || hit.T < closest.T {
			closest = hit
		}
	}
	return closest, closest != nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// Validate checks that the scene has a camera and that every shape carries a valid material
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrNoCamera
	}
	for i, shape := range s.Shapes {
		mat := shape.Surface()
		if mat == nil {
			return fmt.Errorf("shape %d (%T) has no material", i, shape)
		}
		if err := mat.Validate(); err != nil {
			return fmt.Errorf("shape %d (%T): %w", i, shape, err)
		}
	}
	return nil
}
