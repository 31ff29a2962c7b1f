package renderer

import (
	stdmath "math"
	"strings"
	"testing"

	"github.com/whitted-go/raytracer/pkg/geometry"
	"github.com/whitted-go/raytracer/pkg/lights"
	"github.com/whitted-go/raytracer/pkg/material"
	"github.com/whitted-go/raytracer/pkg/math"
	"github.com/whitted-go/raytracer/pkg/world"
)

func TestRender_DefaultWorld(t *testing.T) {
	w := world.Default()
	cam := NewCamera(11, 11, stdmath.Pi/2)
	view := math.ViewTransform(
		math.NewPoint(0, 0, -5),
		math.NewPoint(0, 0, 0),
		math.NewVector(0, 1, 0),
	)
	if err := cam.SetTransform(view); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}

	img, err := Render(cam, w, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	got := img.PixelAt(5, 5)
	expected := math.NewColor(0.38066, 0.47583, 0.2855)
	tolerance := 1e-4
	if stdmath.Abs(got.R-expected.R) > tolerance ||
		stdmath.Abs(got.G-expected.G) > tolerance ||
		stdmath.Abs(got.B-expected.B) > tolerance {
		t.Errorf("Expected center pixel %v, got %v", expected, got)
	}
}

// flatRedWorld builds a scene where every camera ray hits an unlit red
// plane, so every rendered pixel has a known color.
func flatRedWorld(t *testing.T) (*world.World, *Camera) {
	t.Helper()

	floor := geometry.NewPlane()
	m := material.New()
	m.Color = math.NewColor(1, 0, 0)
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0
	floor.SetMaterial(m)

	w := world.New()
	w.Objects = []geometry.Shape{floor}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(math.NewPoint(0, 10, 0), math.White()),
	}

	cam := NewCamera(8, 6, stdmath.Pi/3)
	view := math.ViewTransform(
		math.NewPoint(0, 5, 0),
		math.NewPoint(0, 0, 0),
		math.NewVector(0, 0, 1),
	)
	if err := cam.SetTransform(view); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	return w, cam
}

func TestRender_CoversEveryPixel(t *testing.T) {
	w, cam := flatRedWorld(t)

	img, err := Render(cam, w, Config{NumWorkers: 3}, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	red := math.NewColor(1, 0, 0)
	for y := 0; y < cam.VSize; y++ {
		for x := 0; x < cam.HSize; x++ {
			if !img.PixelAt(x, y).Equals(red) {
				t.Fatalf("Pixel (%d, %d): expected %v, got %v", x, y, red, img.PixelAt(x, y))
			}
		}
	}
}

func TestRender_SameResultForAnyWorkerCount(t *testing.T) {
	w := world.Default()
	newCam := func() *Camera {
		cam := NewCamera(9, 7, stdmath.Pi/2)
		view := math.ViewTransform(
			math.NewPoint(0, 0, -5),
			math.NewPoint(0, 0, 0),
			math.NewVector(0, 1, 0),
		)
		if err := cam.SetTransform(view); err != nil {
			t.Fatalf("SetTransform failed: %v", err)
		}
		return cam
	}

	reference, err := Render(newCam(), w, Config{NumWorkers: 1}, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Worker counts above VSize must clamp, not misbehave
	for _, workers := range []int{2, 3, 100} {
		cam := newCam()
		img, err := Render(cam, w, Config{NumWorkers: workers}, nil)
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		for y := 0; y < cam.VSize; y++ {
			for x := 0; x < cam.HSize; x++ {
				if img.PixelAt(x, y) != reference.PixelAt(x, y) {
					t.Fatalf("Pixel (%d, %d) differs with %d workers", x, y, workers)
				}
			}
		}
	}
}

func TestRender_WorkerPanicAbortsRender(t *testing.T) {
	faulty := geometry.NewTestShape()
	faulty.IntersectFunc = func(math.Ray) geometry.Intersections {
		panic("bad intersection")
	}

	w := world.New()
	w.Objects = []geometry.Shape{faulty}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(math.NewPoint(-10, 10, -10), math.White()),
	}
	cam := NewCamera(4, 4, stdmath.Pi/2)

	img, err := Render(cam, w, Config{NumWorkers: 2}, nil)

	if err == nil {
		t.Fatal("Expected a panicking worker to fail the render")
	}
	if img != nil {
		t.Error("Expected no canvas when the render fails")
	}
	// The error names the worker and the row it died on
	if !strings.Contains(err.Error(), "render worker") || !strings.Contains(err.Error(), "row") {
		t.Errorf("Expected error naming worker and row, got %q", err.Error())
	}
}

func TestRender_LogsProgress(t *testing.T) {
	w, cam := flatRedWorld(t)

	var messages []string
	logger := logFunc(func(format string, args ...interface{}) {
		messages = append(messages, format)
	})

	if _, err := Render(cam, w, DefaultConfig(), logger); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(messages) == 0 {
		t.Error("Expected at least one log message")
	}
}

type logFunc func(format string, args ...interface{})

func (f logFunc) Printf(format string, args ...interface{}) {
	f(format, args...)
}
