package scene

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
)

// CameraConfig describes a look-at camera. Zero fields in an override keep the base value.
type CameraConfig struct {
	Position    core.Vec3
	Direction   core.Vec3
	Up          core.Vec3
	FocalLength float64
}

// defaultCameraConfig places the camera at the origin looking down -Z
func defaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:    core.NewVec3(0, 0, 0),
		Direction:   core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		FocalLength: 2.0,
	}
}

// MergeCameraConfig merges a partial camera config with a base config
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if !override.Position.IsZero() {
		result.Position = override.Position
	}
	if !override.Direction.IsZero() {
		result.Direction = override.Direction
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if override.FocalLength > 0 {
		result.FocalLength = override.FocalLength
	}

	return result
}

// buildCamera applies the first override, if any, and constructs the camera
func buildCamera(base CameraConfig, overrides []CameraConfig) (*geometry.Camera, error) {
	config := base
	if len(overrides) > 0 {
		config = MergeCameraConfig(base, overrides[0])
	}
	return geometry.NewLookAtCamera(config.Position, config.Direction, config.Up, config.FocalLength)
}
