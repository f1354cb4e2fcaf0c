package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMat4_Mul(t *testing.T) {
	translate := Identity()
	translate.M[0][3] = 1
	translate.M[1][3] = 2
	translate.M[2][3] = 3

	scale := Identity()
	scale.M[0][0] = 2
	scale.M[1][1] = 2
	scale.M[2][2] = 2

	// Scale first, then translate
	m := translate.Mul(scale)

	if got := m.TransformPosition(NewVec3(1, 1, 1)); !cmp.Equal(got, NewVec3(3, 4, 5), approx) {
		t.Errorf("Expected (3,4,5), got %v", got)
	}

	// Directions ignore translation
	if got := m.TransformDirection(NewVec3(1, 0, 0)); !cmp.Equal(got, NewVec3(2, 0, 0), approx) {
		t.Errorf("Expected (2,0,0), got %v", got)
	}

	if got := Identity().Mul(m); got != m {
		t.Errorf("Expected identity product to be a no-op, got %v", got)
	}
}

func TestMat4_MulVec4(t *testing.T) {
	m := Identity()
	m.M[3][3] = 2
	got := m.MulVec4(Vec4{1, 2, 3, 4})
	if got != (Vec4{1, 2, 3, 8}) {
		t.Errorf("Expected (1,2,3,8), got %v", got)
	}
}

func TestLookAt(t *testing.T) {
	tests := []struct {
		name      string
		direction Vec3
		up        Vec3
	}{
		{"looking down -z", NewVec3(0, 0, -1), NewVec3(0, 1, 0)},
		{"looking down +x", NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"oblique", NewVec3(1, -0.5, -2), NewVec3(0, 1, 0)},
		{"unnormalized direction", NewVec3(0, -3, -3), NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := LookAt(tt.direction, tt.up)

			if !m.IsOrthonormal(1e-9) {
				t.Fatalf("Expected orthonormal basis, got %v", m)
			}

			// The camera-space forward ray maps onto the look direction
			forward := m.TransformDirection(NewVec3(0, 0, -1))
			if diff := cmp.Diff(tt.direction.Normalize(), forward, approx); diff != "" {
				t.Errorf("Forward mismatch (-want +got):\n%s", diff)
			}

			// Right axis stays horizontal for a y-up world
			right := m.Column(0)
			if math.Abs(right.Y) > 1e-9 {
				t.Errorf("Expected horizontal right axis, got %v", right)
			}
		})
	}
}

func TestLookAt_IdentityForDefaultView(t *testing.T) {
	m := LookAt(NewVec3(0, 0, -1), NewVec3(0, 1, 0))
	if diff := cmp.Diff(Identity(), m, approx); diff != "" {
		t.Errorf("Expected identity (-want +got):\n%s", diff)
	}
}

func TestMat4_IsOrthonormal_Rejects(t *testing.T) {
	m := Identity()
	m.M[0][0] = 2
	if m.IsOrthonormal(1e-9) {
		t.Error("Expected scaled basis to be rejected")
	}

	// Degenerate: direction parallel to up collapses the right axis
	if LookAt(NewVec3(0, 1, 0), NewVec3(0, 1, 0)).IsOrthonormal(1e-9) {
		t.Error("Expected degenerate look-at basis to be rejected")
	}
}
