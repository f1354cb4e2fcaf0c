package scene

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// NewCornellScene creates a Cornell box with one sphere of every preset material
func NewCornellScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	camera, err := buildCamera(defaultCameraConfig(), cameraOverrides)
	if err != nil {
		return nil, err
	}

	s := NewScene("cornell", camera, SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 300,
		MaxBounces:      7,
	})

	addCornellWalls(s)

	s.Add(
		geometry.NewSphere(core.NewVec3(-0.4, -0.3, -0.7), 0.25, material.Diffuse),
		geometry.NewSphere(core.NewVec3(-0.4, 0.3, -0.7), 0.25, material.Glossy),
		geometry.NewSphere(core.NewVec3(0.4, -0.3, -0.7), 0.25, material.Mirror),
		geometry.NewSphere(core.NewVec3(0.4, 0.3, -0.7), 0.25, material.FresnelGlass),
		geometry.NewSphere(core.NewVec3(0, -0.65, -0.7), 0.25, material.Tomato),
	)

	return s, nil
}

// NewCubeScene creates a Cornell box holding two cubes built from quads
func NewCubeScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	camera, err := buildCamera(defaultCameraConfig(), cameraOverrides)
	if err != nil {
		return nil, err
	}

	s := NewScene("cubes", camera, SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 300,
		MaxBounces:      7,
	})

	addCornellWalls(s)

	s.Add(geometry.NewCube(core.NewVec3(-0.7, -1, -0.9), 0.5, material.Tomato)...)
	s.Add(geometry.NewCube(core.NewVec3(0.1, -1, -0.7), 0.4, material.FresnelGlass)...)
	s.Add(geometry.NewSphere(core.NewVec3(0.3, -0.35, -0.5), 0.2, material.Glossy))

	return s, nil
}

// addCornellWalls encloses the [-1,1]^3 box: red left wall, green right wall,
// a glowing roof and a mirror at the far end
func addCornellWalls(s *Scene) {
	red := material.Diffuse.With(func(m *material.Material) { m.Albedo = core.NewVec3(1, 0, 0) })
	green := material.Diffuse.With(func(m *material.Material) { m.Albedo = core.NewVec3(0, 1, 0) })

	s.Add(
		geometry.NewPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), red),
		geometry.NewPlane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), green),
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), material.Diffuse),
		geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), material.WhiteLight),
		geometry.NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), material.Mirror),
		geometry.NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), material.Diffuse),
	)
}
