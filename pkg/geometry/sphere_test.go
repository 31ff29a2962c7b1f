package geometry

import (
	stdmath "math"
	"testing"

	"github.com/whitted-go/raytracer/pkg/material"
	"github.com/whitted-go/raytracer/pkg/math"
)

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    math.Tuple
		expectedT []float64
	}{
		{
			name:      "through the center",
			origin:    math.NewPoint(0, 0, -5),
			expectedT: []float64{4, 6},
		},
		{
			name:      "tangent yields two equal ts",
			origin:    math.NewPoint(0, 1, -5),
			expectedT: []float64{5, 5},
		},
		{
			name:      "miss yields nothing",
			origin:    math.NewPoint(0, 2, -5),
			expectedT: nil,
		},
		{
			name:      "from inside",
			origin:    math.NewPoint(0, 0, 0),
			expectedT: []float64{-1, 1},
		},
		{
			name:      "sphere behind the ray",
			origin:    math.NewPoint(0, 0, 5),
			expectedT: []float64{-6, -4},
		},
	}

	sphere := NewSphere()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, math.NewVector(0, 0, 1))
			xs := Intersect(sphere, ray)

			if len(xs) != len(tt.expectedT) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expectedT), len(xs))
			}
			for i, expected := range tt.expectedT {
				if !math.Equals(xs[i].T, expected) {
					t.Errorf("Intersection %d: expected t=%v, got t=%v", i, expected, xs[i].T)
				}
				if xs[i].Object.ID() != sphere.ID() {
					t.Errorf("Intersection %d: expected the sphere as object", i)
				}
			}
		})
	}
}

func TestSphere_IntersectTransformed(t *testing.T) {
	ray := math.NewRay(math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1))

	scaled := NewSphere()
	if err := scaled.SetTransform(math.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	xs := Intersect(scaled, ray)
	if len(xs) != 2 || !math.Equals(xs[0].T, 3) || !math.Equals(xs[1].T, 7) {
		t.Errorf("Expected ts (3, 7), got %v", xs)
	}

	translated := NewSphere()
	if err := translated.SetTransform(math.Translation(5, 0, 0)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	if xs := Intersect(translated, ray); len(xs) != 0 {
		t.Errorf("Expected translated sphere to be missed, got %v", xs)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere()
	sqrt3Over3 := stdmath.Sqrt(3) / 3

	tests := []struct {
		name     string
		point    math.Tuple
		expected math.Tuple
	}{
		{"on the x axis", math.NewPoint(1, 0, 0), math.NewVector(1, 0, 0)},
		{"on the y axis", math.NewPoint(0, 1, 0), math.NewVector(0, 1, 0)},
		{"on the z axis", math.NewPoint(0, 0, 1), math.NewVector(0, 0, 1)},
		{"nonaxial", math.NewPoint(sqrt3Over3, sqrt3Over3, sqrt3Over3), math.NewVector(sqrt3Over3, sqrt3Over3, sqrt3Over3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalAt(sphere, tt.point)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			// Normals come back normalized
			if !got.Equals(got.Normalize()) {
				t.Error("Expected normal to be a unit vector")
			}
		})
	}
}

func TestSphere_NormalAtOnTransformedSphere(t *testing.T) {
	sphere := NewSphere()
	if err := sphere.SetTransform(math.Translation(0, 1, 0)); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	got := NormalAt(sphere, math.NewPoint(0, 1.70711, -0.70711))
	if !got.Equals(math.NewVector(0, 0.70711, -0.70711)) {
		t.Errorf("Expected (0, 0.70711, -0.70711), got %v", got)
	}

	sphere = NewSphere()
	transform := math.Scaling(1, 0.5, 1).Mul(math.RotationZ(stdmath.Pi / 5))
	if err := sphere.SetTransform(transform); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	got = NormalAt(sphere, math.NewPoint(0, stdmath.Sqrt2/2, -stdmath.Sqrt2/2))
	if !got.Equals(math.NewVector(0, 0.97014, -0.24254)) {
		t.Errorf("Expected (0, 0.97014, -0.24254), got %v", got)
	}
}

func TestSphere_Defaults(t *testing.T) {
	sphere := NewSphere()

	if !sphere.Transform().Equals(math.Identity()) {
		t.Error("Expected default transform to be identity")
	}
	if !sphere.CastsShadow() {
		t.Error("Expected shapes to cast shadows by default")
	}
	if sphere.Material().Ambient != 0.1 {
		t.Errorf("Expected default material, got ambient %v", sphere.Material().Ambient)
	}
}

func TestGlassSphere(t *testing.T) {
	sphere := NewGlassSphere()

	mat := sphere.Material()
	if mat.Transparency != 1.0 {
		t.Errorf("Expected transparency 1.0, got %v", mat.Transparency)
	}
	if mat.RefractiveIndex != material.RefractionGlass {
		t.Errorf("Expected refractive index 1.5, got %v", mat.RefractiveIndex)
	}
}
