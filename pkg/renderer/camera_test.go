package renderer

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/whitted-go/raytracer/pkg/math"
)

func TestNewCamera_Defaults(t *testing.T) {
	c := NewCamera(160, 120, stdmath.Pi/2)

	if c.HSize != 160 || c.VSize != 120 {
		t.Errorf("Expected 160x120, got %dx%d", c.HSize, c.VSize)
	}
	if c.FieldOfView != stdmath.Pi/2 {
		t.Errorf("Expected field of view pi/2, got %v", c.FieldOfView)
	}
	if !c.Transform().Equals(math.Identity()) {
		t.Error("Expected identity view transform")
	}
}

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name         string
		hsize, vsize int
	}{
		{"horizontal canvas", 200, 125},
		{"vertical canvas", 125, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(tt.hsize, tt.vsize, stdmath.Pi/2)
			if !math.Equals(c.PixelSize(), 0.01) {
				t.Errorf("Expected pixel size 0.01, got %v", c.PixelSize())
			}
		})
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	sqrt2over2 := stdmath.Sqrt(2) / 2

	t.Run("through the center of the canvas", func(t *testing.T) {
		c := NewCamera(201, 101, stdmath.Pi/2)

		ray := c.RayForPixel(100, 50)

		if !ray.Origin.Equals(math.NewPoint(0, 0, 0)) {
			t.Errorf("Unexpected origin %v", ray.Origin)
		}
		if !ray.Direction.Equals(math.NewVector(0, 0, -1)) {
			t.Errorf("Unexpected direction %v", ray.Direction)
		}
	})

	t.Run("through a corner of the canvas", func(t *testing.T) {
		c := NewCamera(201, 101, stdmath.Pi/2)

		ray := c.RayForPixel(0, 0)

		if !ray.Origin.Equals(math.NewPoint(0, 0, 0)) {
			t.Errorf("Unexpected origin %v", ray.Origin)
		}
		if !ray.Direction.Equals(math.NewVector(0.66519, 0.33259, -0.66851)) {
			t.Errorf("Unexpected direction %v", ray.Direction)
		}
	})

	t.Run("with a transformed camera", func(t *testing.T) {
		c := NewCamera(201, 101, stdmath.Pi/2)
		transform := math.RotationY(stdmath.Pi / 4).Mul(math.Translation(0, -2, 5))
		if err := c.SetTransform(transform); err != nil {
			t.Fatalf("SetTransform failed: %v", err)
		}

		ray := c.RayForPixel(100, 50)

		if !ray.Origin.Equals(math.NewPoint(0, 2, -5)) {
			t.Errorf("Unexpected origin %v", ray.Origin)
		}
		if !ray.Direction.Equals(math.NewVector(sqrt2over2, 0, -sqrt2over2)) {
			t.Errorf("Unexpected direction %v", ray.Direction)
		}
	})
}

func TestCamera_RayForPixelIsDeterministic(t *testing.T) {
	c := NewCamera(21, 11, stdmath.Pi/3)

	first := c.RayForPixel(7, 3)
	second := c.RayForPixel(7, 3)

	if !first.Origin.Equals(second.Origin) || !first.Direction.Equals(second.Direction) {
		t.Error("Expected identical rays for identical pixel coordinates")
	}
}

func TestCamera_SetTransformRejectsNonInvertible(t *testing.T) {
	c := NewCamera(100, 100, stdmath.Pi/2)

	err := c.SetTransform(math.Scaling(0, 0, 0))
	if !errors.Is(err, math.ErrNotInvertible) {
		t.Fatalf("Expected ErrNotInvertible, got %v", err)
	}
	if !c.Transform().Equals(math.Identity()) {
		t.Error("Expected transform to remain identity after rejection")
	}
}
