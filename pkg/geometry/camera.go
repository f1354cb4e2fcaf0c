package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

// ErrDegenerateCamera is returned when a camera cannot build an orthonormal view
var ErrDegenerateCamera = errors.New("camera orientation is not orthonormal")

// orthonormalTolerance bounds the drift accepted from a look-at construction
const orthonormalTolerance = 1e-6

// Camera generates primary rays. It looks down its local -Z axis; larger
// focal lengths narrow the field of view.
type Camera struct {
	Position    core.Vec3
	Orientation core.Mat4
	FocalLength float64
}

// NewCamera creates a camera from an existing orientation
func NewCamera(position core.Vec3, orientation core.Mat4, focalLength float64) (*Camera, error) {
	if focalLength <= 0 {
		return nil, fmt.Errorf("invalid focal length %g", focalLength)
	}
	if !orientation.IsOrthonormal(orthonormalTolerance) {
		return nil, ErrDegenerateCamera
	}

	return &Camera{
		Position:    position,
		Orientation: orientation,
		FocalLength: focalLength,
	}, nil
}

// NewLookAtCamera creates a camera at position looking along direction
func NewLookAtCamera(position, direction, up core.Vec3, focalLength float64) (*Camera, error) {
	camera, err := NewCamera(position, core.LookAt(direction, up), focalLength)
	if err != nil {
		return nil, fmt.Errorf("look-at camera %v -> %v: %w", position, direction, err)
	}
	return camera, nil
}

// GetRay generates the primary ray through pixel (i, j) of a width x height
// image, with j = 0 at the top row
func (c *Camera) GetRay(i, j, width, height int) core.Ray {
	x := 2*float64(i)/float64(width) - 1
	y := 2*float64(height-1-j)/float64(height) - 1

	local := core.NewVec3(x, y, -c.FocalLength).Normalize()
	direction := c.Orientation.TransformDirection(local).Normalize()

	return core.NewRay(c.Position, direction)
}
