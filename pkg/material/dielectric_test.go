package material

import (
	"math"
	"testing"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

func TestFresnel(t *testing.T) {
	tests := []struct {
		name     string
		f0       float64
		cosine   float64
		expected float64
	}{
		{"normal incidence returns f0", 0.04, 1, 0.04},
		{"grazing incidence reflects fully", 0.04, 0, 1},
		{"perfect mirror", 1, 0.3, 1},
		{"half angle", 0, 0.5, math.Pow(0.5, 5)},
		{"back-facing clamps to grazing", 0.2, -0.5, 1},
		{"cosine above one clamps", 0.2, 1.5, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fresnel(tt.f0, tt.cosine); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	tests := []struct {
		name   string
		n1, n2 float64
		angle  float64 // incidence angle in degrees
	}{
		{"air to glass 45", 1.0, 1.5, 45},
		{"air to glass 10", 1.0, 1.5, 10},
		{"glass to air 30", 1.5, 1.0, 30},
		{"same medium", 1.2, 1.2, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theta := tt.angle * math.Pi / 180
			dir := core.NewVec3(math.Sin(theta), -math.Cos(theta), 0)

			refracted, ok := Refract(dir, normal, tt.n1, tt.n2)
			if !ok {
				t.Fatal("Expected refraction")
			}
			if math.Abs(refracted.Length()-1) > 1e-9 {
				t.Errorf("Expected unit direction, got length %f", refracted.Length())
			}
			if refracted.Y >= 0 {
				t.Errorf("Expected transmitted ray below the surface, got %v", refracted)
			}

			// n1 sin(theta1) = n2 sin(theta2)
			sinOut := refracted.X
			if math.Abs(tt.n1*math.Sin(theta)-tt.n2*sinOut) > 1e-9 {
				t.Errorf("Snell's law violated: %f != %f", tt.n1*math.Sin(theta), tt.n2*sinOut)
			}
		})
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	dir := core.NewVec3(0, -1, 0)
	refracted, ok := Refract(dir, core.NewVec3(0, 1, 0), 1.0, 1.2)
	if !ok {
		t.Fatal("Expected refraction")
	}
	if refracted.Subtract(dir).Length() > 1e-9 {
		t.Errorf("Expected undeviated ray, got %v", refracted)
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Critical angle for 1.5 -> 1.0 is about 41.8 degrees
	theta := 60 * math.Pi / 180
	dir := core.NewVec3(math.Sin(theta), -math.Cos(theta), 0)

	if _, ok := Refract(dir, core.NewVec3(0, 1, 0), 1.5, 1.0); ok {
		t.Error("Expected total internal reflection past the critical angle")
	}
}

func TestNextMedium(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		n        float64
		expected float64
	}{
		{"entering from air", AirIndex, 1.2, 1.2},
		{"leaving to air", 1.2, 1.2, AirIndex},
		{"entering from another volume", 1.3, 1.2, 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextMedium(tt.current, tt.n); got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
