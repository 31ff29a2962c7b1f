package geometry

import (
	stdmath "math"
	"testing"

	"github.com/whitted-go/raytracer/pkg/math"
)

func TestCone_LocalIntersectWalls(t *testing.T) {
	cone := NewCone()

	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		t1, t2    float64
	}{
		{"through the tip region", math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1), 5, 5},
		{"at an angle", math.NewPoint(0, 0, -5), math.NewVector(1, 1, 1), 8.66025, 8.66025},
		{"crossing both halves", math.NewPoint(1, 1, -5), math.NewVector(-0.5, -1, 1), 4.55006, 49.44994},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, tt.direction.Normalize())
			xs := cone.LocalIntersect(ray)
			if len(xs) != 2 {
				t.Fatalf("Expected 2 intersections, got %d", len(xs))
			}
			if !math.Equals(xs[0].T, tt.t1) || !math.Equals(xs[1].T, tt.t2) {
				t.Errorf("Expected ts (%v, %v), got (%v, %v)", tt.t1, tt.t2, xs[0].T, xs[1].T)
			}
		})
	}
}

func TestCone_LocalIntersectParallelToOneHalf(t *testing.T) {
	cone := NewCone()

	// The quadratic degenerates to a linear equation here
	ray := math.NewRay(math.NewPoint(0, 0, -1), math.NewVector(0, 1, 1).Normalize())
	xs := cone.LocalIntersect(ray)

	if len(xs) != 1 {
		t.Fatalf("Expected 1 intersection, got %d", len(xs))
	}
	if !math.Equals(xs[0].T, 0.35355) {
		t.Errorf("Expected t=0.35355, got %v", xs[0].T)
	}
}

func TestCone_CappedIntersect(t *testing.T) {
	cone := NewCone()
	cone.Minimum = -0.5
	cone.Maximum = 0.5
	cone.Closed = true

	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		count     int
	}{
		{"parallel miss", math.NewPoint(0, 0, -5), math.NewVector(0, 1, 0), 0},
		{"through cap and wall", math.NewPoint(0, 0, -0.25), math.NewVector(0, 1, 1), 2},
		{"up the axis through both caps", math.NewPoint(0, 0, -0.25), math.NewVector(0, 1, 0), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, tt.direction.Normalize())
			if xs := cone.LocalIntersect(ray); len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCone_LocalNormalAt(t *testing.T) {
	cone := NewCone()

	tests := []struct {
		point    math.Tuple
		expected math.Tuple
	}{
		{math.NewPoint(0, 0, 0), math.NewVector(0, 0, 0)},
		{math.NewPoint(1, 1, 1), math.NewVector(1, -stdmath.Sqrt2, 1)},
		{math.NewPoint(-1, -1, 0), math.NewVector(-1, 1, 0)},
	}

	for _, tt := range tests {
		if got := cone.LocalNormalAt(tt.point); !got.Equals(tt.expected) {
			t.Errorf("Normal at %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}
