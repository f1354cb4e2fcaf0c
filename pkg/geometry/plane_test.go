package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

func TestPlane_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), material.Diffuse)

	tests := []struct {
		name           string
		ray            core.Ray
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "from above",
			ray:            core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)),
			expectHit:      true,
			expectedT:      1,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "from below flips the normal",
			ray:            core.NewRay(core.NewVec3(3, -2, 1), core.NewVec3(0, 1, 0)),
			expectHit:      true,
			expectedT:      2,
			expectedNormal: core.NewVec3(0, -1, 0),
		},
		{
			name:           "oblique",
			ray:            core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize()),
			expectHit:      true,
			expectedT:      math.Sqrt2,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:      "pointing away",
			ray:       core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)),
			expectHit: false,
		},
		{
			name:      "parallel above",
			ray:       core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "parallel in plane",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := plane.Hit(tt.ray)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !tt.expectHit {
				if hit != nil {
					t.Error("Expected nil record on a miss")
				}
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if math.Abs(hit.Point.Y) > 1e-9 {
				t.Errorf("Expected hit point on the plane, got %v", hit.Point)
			}
		})
	}
}
