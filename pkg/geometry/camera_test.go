package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCamera_GetRay(t *testing.T) {
	camera, err := NewLookAtCamera(core.NewVec3(0, 1, 3), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		i, j      int
		direction core.Vec3
	}{
		{"center", 2, 1, core.NewVec3(0, 0, -1)},
		{"top left", 0, 0, core.NewVec3(-1, 0.5, -2).Normalize()},
		{"bottom row", 2, 3, core.NewVec3(0, -1, -2).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.i, tt.j, 4, 4)
			if ray.Origin != camera.Position {
				t.Errorf("Expected origin at camera position, got %v", ray.Origin)
			}
			if diff := cmp.Diff(tt.direction, ray.Direction, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Direction mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCamera_Orientation(t *testing.T) {
	camera, err := NewLookAtCamera(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	center := camera.GetRay(50, 49, 100, 100)
	// y = 2*(100-1-49)/100 - 1 = 0
	if center.Direction.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected center ray along +X, got %v", center.Direction)
	}

	// Rays toward the top row tilt up whatever the view direction
	top := camera.GetRay(50, 0, 100, 100)
	if top.Direction.Y <= 0 {
		t.Errorf("Expected top row to look up, got %v", top.Direction)
	}
	if math.Abs(top.Direction.Length()-1) > 1e-9 {
		t.Errorf("Expected unit direction, got %v", top.Direction)
	}
}

func TestCamera_FocalLengthNarrowsView(t *testing.T) {
	wide, _ := NewLookAtCamera(core.Vec3{}, core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 1)
	narrow, _ := NewLookAtCamera(core.Vec3{}, core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 4)

	forward := core.NewVec3(0, 0, -1)
	wideCos := wide.GetRay(0, 0, 10, 10).Direction.Dot(forward)
	narrowCos := narrow.GetRay(0, 0, 10, 10).Direction.Dot(forward)
	if narrowCos <= wideCos {
		t.Errorf("Expected corner ray closer to forward for longer focal length: %f <= %f", narrowCos, wideCos)
	}
}

func TestNewCamera_Errors(t *testing.T) {
	_, err := NewLookAtCamera(core.Vec3{}, core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), 2)
	if !errors.Is(err, ErrDegenerateCamera) {
		t.Errorf("Expected ErrDegenerateCamera, got %v", err)
	}

	if _, err := NewCamera(core.Vec3{}, core.Identity(), 0); err == nil {
		t.Error("Expected error for zero focal length")
	}
}
